package scramblr

import (
	"testing"
)

func TestScrambleLengthInvariant(t *testing.T) {
	text := "The quick brown fox"
	res := Scramble(text, Config{Mode: ModeCharacters, Intensity: IntensityMedium})
	if len(res.ScrambledText) != len(text) {
		t.Errorf("length changed: %q", res.ScrambledText)
	}
	if res.OriginalText != text {
		t.Error("original text must be echoed unchanged")
	}
}

func TestScrambleSeededDeterministic(t *testing.T) {
	text := "seeded calls are reproducible"
	cfg := Config{Mode: ModeWords, Intensity: IntensityHigh}
	a := ScrambleSeeded(text, cfg, 42)
	b := ScrambleSeeded(text, cfg, 42)
	if a.ScrambledText != b.ScrambledText {
		t.Error("same seed should produce identical output")
	}
}

func TestScrambleEmpty(t *testing.T) {
	res := Scramble("", Config{Mode: ModeSmart})
	if res.ScrambledText != "" || res.CharactersCount != 0 || res.WordsCount != 0 || res.LinesCount != 0 {
		t.Errorf("empty input should short-circuit: %+v", res)
	}
}
