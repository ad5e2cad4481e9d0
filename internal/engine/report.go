package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// Report holds one scramble session's data for reporting.
type Report struct {
	SessionID  string        `json:"sessionId"`
	InputPath  string        `json:"inputPath"`
	OutputPath string        `json:"outputPath"`
	Mode       string        `json:"mode"`
	Intensity  string        `json:"intensity"`
	Preset     string        `json:"preset,omitempty"`
	Seed       int64         `json:"seed"`
	Characters int           `json:"characters"`
	Words      int           `json:"words"`
	Lines      int           `json:"lines"`
	InputSize  int           `json:"inputSize"`
	OutputSize int           `json:"outputSize"`
	Entropy    float64       `json:"entropy,omitempty"`
	Duration   time.Duration `json:"duration,omitempty"`
}

// BuildReport assembles a report from one completed invocation.
func BuildReport(opts Options, res Result, st Stats, d time.Duration) Report {
	inputPath := opts.InputFile
	if opts.Text != "" {
		inputPath = "<text>"
	} else if opts.UseStdin || inputPath == "" {
		inputPath = "<stdin>"
	}
	outputPath := opts.OutputFile
	if opts.UseStdout {
		outputPath = "<stdout>"
	}
	return Report{
		SessionID:  uuid.New().String(),
		InputPath:  inputPath,
		OutputPath: outputPath,
		Mode:       opts.Config.Mode.String(),
		Intensity:  opts.Config.Intensity.String(),
		Preset:     opts.Preset,
		Seed:       opts.Seed,
		Characters: res.CharactersCount,
		Words:      res.WordsCount,
		Lines:      res.LinesCount,
		InputSize:  len(res.OriginalText),
		OutputSize: len(res.ScrambledText),
		Entropy:    st.Entropy,
		Duration:   d,
	}
}

// ToJSON returns the report as indented JSON (for scripting/CI use).
func (r *Report) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// PrintReport writes the report to stderr.
func PrintReport(r Report) {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintf(os.Stderr, "%s%s=== scramblr report ===%s\n", Bold, Cyan, Reset)
	fmt.Fprintf(os.Stderr, "%sSession:%s   %s\n", Yellow, Reset, r.SessionID)
	fmt.Fprintf(os.Stderr, "%sInput:%s     %s\n", Yellow, Reset, r.InputPath)
	fmt.Fprintf(os.Stderr, "%sOutput:%s    %s\n", Yellow, Reset, r.OutputPath)
	fmt.Fprintf(os.Stderr, "%sMode:%s      %s%s%s | %sIntensity:%s %s%s%s\n",
		Yellow, Reset, Green, r.Mode, Reset, Yellow, Reset, Green, r.Intensity, Reset)
	if r.Preset != "" {
		fmt.Fprintf(os.Stderr, "%sPreset:%s    %s\n", Yellow, Reset, r.Preset)
	}
	fmt.Fprintf(os.Stderr, "%sCounts:%s    chars=%d words=%d lines=%d\n", Yellow, Reset, r.Characters, r.Words, r.Lines)
	fmt.Fprintf(os.Stderr, "%sSizes:%s     in=%d out=%d bytes\n", Yellow, Reset, r.InputSize, r.OutputSize)
	fmt.Fprintf(os.Stderr, "%sEntropy:%s   %.2f bits/symbol\n", Yellow, Reset, r.Entropy)
	fmt.Fprintf(os.Stderr, "%sSeed:%s      %d\n", Yellow, Reset, r.Seed)
	if r.Duration > 0 {
		fmt.Fprintf(os.Stderr, "%sDuration:%s  %s\n", Yellow, Reset, r.Duration.Round(time.Microsecond))
	}
	fmt.Fprintf(os.Stderr, "%s%s=======================%s\n", Bold, Cyan, Reset)
}
