package engine

import (
	"fmt"
	"math"
	"os"
	"strings"
)

// Stats holds descriptive measures for a text. Characters, Words and Lines
// follow the engine's counting rules exactly; the remaining fields are
// extra diagnostics for the CLI.
type Stats struct {
	Characters    int     // rune count, untrimmed
	Words         int     // whitespace-delimited tokens in the trimmed text
	Lines         int     // newline-delimited segments (>=1 for non-empty text)
	SizeBytes     int     // UTF-8 byte size
	UniqueSymbols int     // number of distinct runes
	Entropy       float64 // approximate entropy (bits per symbol)
	AlnumRatio    float64 // alphanumeric runes / total runes (0-1)
}

// ComputeStats computes stats for a text. Empty or whitespace-only input
// yields all-zero counts, mirroring the scramble short-circuit.
func ComputeStats(text string) Stats {
	var s Stats
	if strings.TrimSpace(text) == "" {
		return s
	}
	runes := []rune(text)
	s.Characters = len(runes)
	s.Words = len(strings.Fields(text))
	s.Lines = len(strings.Split(text, "\n"))
	s.SizeBytes = len(text)

	freq := make(map[rune]int)
	alnum := 0
	for _, r := range runes {
		freq[r]++
		if isAlnum(r) {
			alnum++
		}
	}
	s.UniqueSymbols = len(freq)
	s.AlnumRatio = float64(alnum) / float64(len(runes))
	n := float64(len(runes))
	for _, c := range freq {
		p := float64(c) / n
		s.Entropy -= p * math.Log2(p)
	}
	return s
}

// PrintStats prints stats to stderr (if !quiet).
func PrintStats(s Stats, quiet bool) {
	if quiet {
		return
	}
	fmt.Fprintf(os.Stderr, "%sStats:%s chars=%s%d%s | words=%s%d%s | lines=%s%d%s | unique=%d | entropy=%.2f | alnum_ratio=%.2f\n",
		Cyan, Reset, Green, s.Characters, Reset, Green, s.Words, Reset, Green, s.Lines, Reset,
		s.UniqueSymbols, s.Entropy, s.AlnumRatio)
}
