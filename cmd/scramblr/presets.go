package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/varelse/scramblr/internal/engine"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range engine.Presets() {
				c := p.Config
				flags := ""
				if c.PreserveSpaces {
					flags += " preserve-spaces"
				}
				if c.PreservePunctuation {
					flags += " preserve-punctuation"
				}
				if c.PreserveCase {
					flags += " preserve-case"
				}
				fmt.Printf("%-14s %s/%s%s\n    %s\n", p.Name, c.Mode, c.Intensity, flags, p.Desc)
			}
		},
	}
}
