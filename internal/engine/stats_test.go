package engine

import (
	"math"
	"testing"
)

func TestComputeStatsCounts(t *testing.T) {
	tests := []struct {
		text  string
		chars int
		words int
		lines int
	}{
		{"hello world", 11, 2, 1},
		{"one\ntwo\nthree", 13, 3, 3},
		{"  padded  ", 10, 1, 1},
		{"trailing\n", 9, 1, 2},
		{"", 0, 0, 0},
		{"   ", 0, 0, 0},
	}
	for _, tt := range tests {
		s := ComputeStats(tt.text)
		if s.Characters != tt.chars || s.Words != tt.words || s.Lines != tt.lines {
			t.Errorf("ComputeStats(%q) = %d/%d/%d, want %d/%d/%d",
				tt.text, s.Characters, s.Words, s.Lines, tt.chars, tt.words, tt.lines)
		}
	}
}

func TestComputeStatsEntropy(t *testing.T) {
	// Uniform two-symbol text has exactly 1 bit/symbol.
	s := ComputeStats("abababab")
	if math.Abs(s.Entropy-1.0) > 1e-9 {
		t.Errorf("entropy = %f, want 1.0", s.Entropy)
	}
	if s.UniqueSymbols != 2 {
		t.Errorf("unique = %d, want 2", s.UniqueSymbols)
	}
	if s.AlnumRatio != 1.0 {
		t.Errorf("alnum_ratio = %f, want 1.0", s.AlnumRatio)
	}
}

func TestComputeStatsAlnumRatio(t *testing.T) {
	s := ComputeStats("ab!!")
	if s.AlnumRatio != 0.5 {
		t.Errorf("alnum_ratio = %f, want 0.5", s.AlnumRatio)
	}
}
