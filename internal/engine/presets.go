package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Preset is a named scramble configuration.
type Preset struct {
	Name   string
	Desc   string
	Config Config
}

// Built-in presets, from mildest to most destructive.
var presets = []Preset{
	{
		Name: "gentle",
		Desc: "reorder words, single pass",
		Config: Config{
			Mode:      ModeWords,
			Intensity: IntensityLow,
		},
	},
	{
		Name: "classic",
		Desc: "shuffle letters, keep spacing, punctuation and case",
		Config: Config{
			Mode:                ModeCharacters,
			Intensity:           IntensityMedium,
			PreserveSpaces:      true,
			PreservePunctuation: true,
			PreserveCase:        true,
		},
	},
	{
		Name: "chaos",
		Desc: "shuffle every character, five passes, no preservation",
		Config: Config{
			Mode:      ModeCharacters,
			Intensity: IntensityHigh,
		},
	},
	{
		Name: "readable",
		Desc: "keep first/last letters so words stay guessable",
		Config: Config{
			Mode:         ModeSmart,
			Intensity:    IntensityMedium,
			PreserveCase: true,
		},
	},
	{
		Name: "shuffle-lines",
		Desc: "reorder whole lines",
		Config: Config{
			Mode:      ModeLines,
			Intensity: IntensityMedium,
		},
	},
}

// Presets returns the built-in presets in display order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// LookupPreset finds a built-in preset by name (case-insensitive).
func LookupPreset(name string) (Preset, error) {
	for _, p := range presets {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("unknown preset: %s", name)
}

// fileConfig mirrors Config with optional fields so a preset file only
// overrides the keys it names.
type fileConfig struct {
	Preset              *string `yaml:"preset" toml:"preset"`
	Mode                *string `yaml:"mode" toml:"mode"`
	Intensity           *string `yaml:"intensity" toml:"intensity"`
	PreserveSpaces      *bool   `yaml:"preserve_spaces" toml:"preserve_spaces"`
	PreservePunctuation *bool   `yaml:"preserve_punctuation" toml:"preserve_punctuation"`
	PreserveCase        *bool   `yaml:"preserve_case" toml:"preserve_case"`
}

func loadConfigFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("config file %s: unsupported extension (want .yaml, .yml or .toml)", path)
	}
	return &fc, nil
}

// applyPresetDefaults fills Options fields the user left unset, first from
// the config file (when given), then from the preset. Explicit flags always
// win; the file wins over the preset it may itself name.
func applyPresetDefaults(opts *Options) error {
	if opts.ConfigFile != "" {
		fc, err := loadConfigFile(opts.ConfigFile)
		if err != nil {
			return err
		}
		if fc.Preset != nil && opts.Preset == "" {
			opts.Preset = *fc.Preset
		}
		if fc.Mode != nil && !opts.ModeSet {
			m, err := ParseMode(*fc.Mode)
			if err != nil {
				return err
			}
			opts.Config.Mode = m
			opts.ModeSet = true
		}
		if fc.Intensity != nil && !opts.IntensitySet {
			n, err := ParseIntensity(*fc.Intensity)
			if err != nil {
				return err
			}
			opts.Config.Intensity = n
			opts.IntensitySet = true
		}
		if fc.PreserveSpaces != nil && !opts.PreserveSpacesSet {
			opts.Config.PreserveSpaces = *fc.PreserveSpaces
			opts.PreserveSpacesSet = true
		}
		if fc.PreservePunctuation != nil && !opts.PreservePunctuationSet {
			opts.Config.PreservePunctuation = *fc.PreservePunctuation
			opts.PreservePunctuationSet = true
		}
		if fc.PreserveCase != nil && !opts.PreserveCaseSet {
			opts.Config.PreserveCase = *fc.PreserveCase
			opts.PreserveCaseSet = true
		}
	}
	if opts.Preset != "" {
		p, err := LookupPreset(opts.Preset)
		if err != nil {
			return err
		}
		if !opts.ModeSet {
			opts.Config.Mode = p.Config.Mode
		}
		if !opts.IntensitySet {
			opts.Config.Intensity = p.Config.Intensity
		}
		if !opts.PreserveSpacesSet {
			opts.Config.PreserveSpaces = p.Config.PreserveSpaces
		}
		if !opts.PreservePunctuationSet {
			opts.Config.PreservePunctuation = p.Config.PreservePunctuation
		}
		if !opts.PreserveCaseSet {
			opts.Config.PreserveCase = p.Config.PreserveCase
		}
	}
	return nil
}
