package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

// TestRunToFile: inline text in, scrambled file out, counts intact.
func TestRunToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.txt")
	opts := Options{
		Text:       "alpha beta gamma",
		OutputFile: out,
		Quiet:      true,
		Seeded:     true,
		Seed:       42,
		Config:     Config{Mode: ModeWords, Intensity: IntensityMedium},
	}
	if err := Run(opts); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	got := sorted(strings.Fields(string(data)))
	want := sorted(strings.Fields(opts.Text))
	if !equalStrings(got, want) {
		t.Errorf("words multiset changed: %q", string(data))
	}
}

// TestRunDeterministicSeed: same seed, identical file content.
func TestRunDeterministicSeed(t *testing.T) {
	dir := t.TempDir()
	base := Options{
		Text:   "determinism through the cli path",
		Quiet:  true,
		Seeded: true,
		Seed:   1337,
		Config: Config{Mode: ModeCharacters, Intensity: IntensityHigh},
	}
	var outputs []string
	for i := 0; i < 2; i++ {
		opts := base
		opts.OutputFile = filepath.Join(dir, fmt.Sprintf("out%d.txt", i))
		if err := Run(opts); err != nil {
			t.Fatal(err)
		}
		data, err := os.ReadFile(opts.OutputFile)
		if err != nil {
			t.Fatal(err)
		}
		outputs = append(outputs, string(data))
	}
	if outputs[0] != outputs[1] {
		t.Error("same seed should produce identical output files")
	}
}

// TestRunVariants: N variant files with the expected names.
func TestRunVariants(t *testing.T) {
	dir := t.TempDir()
	opts := Options{
		Text:       "variant generation input text",
		OutputFile: filepath.Join(dir, "out.txt"),
		Quiet:      true,
		Variants:   3,
		Config:     Config{Mode: ModeCharacters, Intensity: IntensityLow},
	}
	if err := Run(opts); err != nil {
		t.Fatal(err)
	}
	for i := 1; i <= 3; i++ {
		name := filepath.Join(dir, fmt.Sprintf("out.v%d.txt", i))
		if _, err := os.Stat(name); err != nil {
			t.Errorf("variant %d missing: %v", i, err)
		}
	}
}

// TestRunVariantsStdoutConflict mirrors the flag validation.
func TestRunVariantsStdoutConflict(t *testing.T) {
	opts := Options{Text: "x", UseStdout: true, Variants: 2, Quiet: true}
	if err := Run(opts); err == nil {
		t.Error("variants with stdout should error")
	}
}

// TestRunMissingInput: orchestration-level validation.
func TestRunMissingInput(t *testing.T) {
	if err := Run(Options{Quiet: true, UseStdout: true}); err == nil {
		t.Error("missing input should error")
	}
	if err := Run(Options{Quiet: true, Text: "x"}); err == nil {
		t.Error("missing output should error")
	}
}

// TestRunPresetThroughRunner: preset resolution happens inside Run.
func TestRunPresetThroughRunner(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.txt")
	opts := Options{
		Text:       "Hello, World!",
		OutputFile: out,
		Quiet:      true,
		Seeded:     true,
		Seed:       7,
		Preset:     "classic",
	}
	if err := Run(opts); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)
	// classic preserves spaces, punctuation and case layout.
	if len(got) != len(opts.Text) {
		t.Fatalf("length changed: %q", got)
	}
	for i, c := range got {
		if !isAlnum(c) && byte(c) != opts.Text[i] {
			t.Errorf("position %d: %q moved, want %q fixed", i, c, opts.Text[i])
		}
	}
}

// TestRunUnknownPreset surfaces the lookup error.
func TestRunUnknownPreset(t *testing.T) {
	opts := Options{Text: "x", UseStdout: true, Quiet: true, Preset: "bogus"}
	if err := Run(opts); err == nil || !strings.Contains(err.Error(), "unknown preset") {
		t.Errorf("expected unknown preset error, got: %v", err)
	}
}

// TestWatchFileInitial: watch produces the initial output, then honors stop.
func TestWatchFileInitial(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.txt")
	if err := os.WriteFile(in, []byte("watch me scramble"), 0644); err != nil {
		t.Fatal(err)
	}
	stop := make(chan struct{})
	close(stop)
	opts := Options{
		InputFile:  in,
		OutputFile: out,
		Quiet:      true,
		Config:     Config{Mode: ModeCharacters, Intensity: IntensityLow},
	}
	if err := WatchFile(opts, stop); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	a := sortedRunes(string(data))
	b := sortedRunes("watch me scramble")
	if a != b {
		t.Errorf("character multiset changed: %q", string(data))
	}
}

func sortedRunes(s string) string {
	rs := []rune(s)
	sort.Slice(rs, func(i, j int) bool { return rs[i] < rs[j] })
	return string(rs)
}
