package main

import (
	"github.com/spf13/cobra"

	"github.com/varelse/scramblr/internal/engine"
)

func newWatchCmd(stop <-chan struct{}) *cobra.Command {
	var opts engine.Options
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-scramble the input file every time it changes",
		Example: `  scramblr watch -i note.txt --mode words
  scramblr watch -i note.txt -o scrambled.txt --preset classic`,
	}
	bindInputFlags(cmd, &opts)
	modeName, intensityName := bindConfigFlags(cmd, &opts)
	fl := cmd.Flags()
	fl.StringVarP(&opts.OutputFile, "output", "o", "", "output file (default: stdout)")
	fl.BoolVarP(&opts.Quiet, "quiet", "q", false, "suppress progress lines")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := resolveConfigFlags(cmd, &opts, *modeName, *intensityName); err != nil {
			return err
		}
		return engine.WatchFile(opts, stop)
	}
	return cmd
}
