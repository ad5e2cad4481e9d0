package main

import (
	"github.com/spf13/cobra"

	"github.com/varelse/scramblr/internal/engine"
)

func newScrambleCmd() *cobra.Command {
	var opts engine.Options
	cmd := &cobra.Command{
		Use:   "scramble",
		Short: "Scramble input text and write the result",
		Example: `  scramblr scramble -i note.txt -o scrambled.txt --mode words
  scramblr scramble -t "hello world" --preset readable
  cat note.txt | scramblr scramble --stdin --stdout --mode lines --seed 42
  scramblr scramble -i note.txt -o out.txt --variants 5`,
	}
	bindInputFlags(cmd, &opts)
	modeName, intensityName := bindConfigFlags(cmd, &opts)
	fl := cmd.Flags()
	fl.StringVarP(&opts.OutputFile, "output", "o", "", "output file")
	fl.BoolVar(&opts.UseStdout, "stdout", false, "write result to stdout")
	fl.Int64Var(&opts.Seed, "seed", 0, "RNG seed for reproducible output (unset = random)")
	fl.IntVar(&opts.Variants, "variants", 0, "generate N variants with distinct seeds")
	fl.BoolVar(&opts.Report, "report", false, "print a session report to stderr")
	fl.BoolVarP(&opts.Quiet, "quiet", "q", false, "suppress banner and stats")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := resolveConfigFlags(cmd, &opts, *modeName, *intensityName); err != nil {
			return err
		}
		opts.Seeded = cmd.Flags().Changed("seed")
		// Inline text with no destination prints to stdout.
		if opts.Text != "" && opts.OutputFile == "" && !opts.UseStdout {
			opts.UseStdout = true
			opts.Quiet = true
		}
		return engine.Run(opts)
	}
	return cmd
}
