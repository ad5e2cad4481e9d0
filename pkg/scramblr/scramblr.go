// Package scramblr exposes the scramble engine for library use. The engine
// is stateless and safe to call from multiple goroutines; each call builds
// its own RNG.
package scramblr

import (
	"github.com/varelse/scramblr/internal/engine"
)

type (
	Config    = engine.Config
	Result    = engine.Result
	Mode      = engine.Mode
	Intensity = engine.Intensity
)

const (
	ModeCharacters = engine.ModeCharacters
	ModeWords      = engine.ModeWords
	ModeLines      = engine.ModeLines
	ModeSmart      = engine.ModeSmart

	IntensityLow    = engine.IntensityLow
	IntensityMedium = engine.IntensityMedium
	IntensityHigh   = engine.IntensityHigh
)

// Scramble transforms text per cfg with a randomly seeded RNG.
func Scramble(text string, cfg Config) Result {
	var seed int64
	return engine.Scramble(text, cfg, engine.InitRNG(&seed, false))
}

// ScrambleSeeded transforms text per cfg deterministically from seed.
func ScrambleSeeded(text string, cfg Config, seed int64) Result {
	return engine.Scramble(text, cfg, engine.InitRNG(&seed, true))
}
