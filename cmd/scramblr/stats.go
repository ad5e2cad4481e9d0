package main

import (
	"github.com/spf13/cobra"

	"github.com/varelse/scramblr/internal/engine"
)

func newStatsCmd() *cobra.Command {
	var opts engine.Options
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print character, word and line counts without transforming",
		Example: `  scramblr stats -i note.txt
  echo "hello world" | scramblr stats --stdin`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return engine.RunStats(opts)
		},
	}
	bindInputFlags(cmd, &opts)
	return cmd
}
