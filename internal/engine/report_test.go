package engine

import (
	"strings"
	"testing"
	"time"
)

func TestBuildReport(t *testing.T) {
	opts := Options{
		Text:   "hello world",
		Seed:   42,
		Preset: "classic",
		Config: Config{Mode: ModeWords, Intensity: IntensityHigh},
	}
	res := Scramble(opts.Text, opts.Config, nil)
	st := ComputeStats(opts.Text)
	r := BuildReport(opts, res, st, 5*time.Millisecond)
	if r.SessionID == "" {
		t.Error("session id must be set")
	}
	if r.InputPath != "<text>" {
		t.Errorf("input path = %q, want <text>", r.InputPath)
	}
	if r.OutputPath != "" && !strings.HasPrefix(r.OutputPath, "<") {
		t.Errorf("unexpected output path %q", r.OutputPath)
	}
	if r.Mode != "words" || r.Intensity != "high" {
		t.Errorf("mode/intensity = %s/%s", r.Mode, r.Intensity)
	}
	if r.Characters != 11 || r.Words != 2 || r.Lines != 1 {
		t.Errorf("counts = %d/%d/%d", r.Characters, r.Words, r.Lines)
	}
}

func TestReportToJSON(t *testing.T) {
	r := Report{SessionID: "abc", Mode: "smart", Intensity: "medium", Seed: 7}
	data, err := r.ToJSON()
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{`"sessionId"`, `"mode"`, `"seed"`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("json missing %s: %s", key, data)
		}
	}
}
