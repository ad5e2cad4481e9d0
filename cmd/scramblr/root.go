package main

import (
	"github.com/spf13/cobra"

	"github.com/varelse/scramblr/internal/engine"
)

func newRootCmd(stop <-chan struct{}) *cobra.Command {
	root := &cobra.Command{
		Use:   "scramblr",
		Short: "Scramble text with interchangeable randomization algorithms",
		Long: `scramblr shuffles the characters, words or lines of a text while
optionally preserving spacing, punctuation and letter case. Smart mode keeps
the first and last letter of every word so the result stays half-readable.`,
		Version:       engine.VersionFull(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newScrambleCmd(),
		newStatsCmd(),
		newWatchCmd(stop),
		newPresetsCmd(),
	)
	return root
}

// bindInputFlags registers the shared input flags (file, inline text, stdin).
func bindInputFlags(cmd *cobra.Command, opts *engine.Options) {
	fl := cmd.Flags()
	fl.StringVarP(&opts.InputFile, "input", "i", "", "input file")
	fl.StringVarP(&opts.Text, "text", "t", "", "inline input text")
	fl.BoolVar(&opts.UseStdin, "stdin", false, "read input from stdin")
	fl.BoolVar(&opts.Normalize, "normalize", false, "NFC-normalize input before processing")
}

// bindConfigFlags registers the scramble configuration flags and returns the
// string receivers for the enum flags, parsed in resolveConfigFlags.
func bindConfigFlags(cmd *cobra.Command, opts *engine.Options) (modeName, intensityName *string) {
	fl := cmd.Flags()
	mode := fl.StringP("mode", "m", "characters", "scramble mode (characters|words|lines|smart)")
	intensity := fl.StringP("intensity", "n", "medium", "shuffle intensity (low|medium|high)")
	fl.BoolVar(&opts.Config.PreserveSpaces, "preserve-spaces", false, "characters mode: keep whitespace at its positions")
	fl.BoolVar(&opts.Config.PreservePunctuation, "preserve-punctuation", false, "characters mode: keep punctuation at its positions")
	fl.BoolVar(&opts.Config.PreserveCase, "preserve-case", false, "restore per-position case after scrambling")
	fl.StringVarP(&opts.Preset, "preset", "p", "", "built-in preset (see `scramblr presets`)")
	fl.StringVar(&opts.ConfigFile, "config", "", "preset file (.yaml, .yml or .toml)")
	return mode, intensity
}

// resolveConfigFlags parses the enum flags and records which configuration
// flags were set explicitly, so presets only fill the gaps.
func resolveConfigFlags(cmd *cobra.Command, opts *engine.Options, modeName, intensityName string) error {
	var err error
	if opts.Config.Mode, err = engine.ParseMode(modeName); err != nil {
		return err
	}
	if opts.Config.Intensity, err = engine.ParseIntensity(intensityName); err != nil {
		return err
	}
	fl := cmd.Flags()
	opts.ModeSet = fl.Changed("mode")
	opts.IntensitySet = fl.Changed("intensity")
	opts.PreserveSpacesSet = fl.Changed("preserve-spaces")
	opts.PreservePunctuationSet = fl.Changed("preserve-punctuation")
	opts.PreserveCaseSet = fl.Changed("preserve-case")
	return nil
}
