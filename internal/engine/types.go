package engine

import (
	"fmt"
	"regexp"
	"strings"
)

// Mode selects the scrambling algorithm.
type Mode int

const (
	ModeCharacters Mode = iota
	ModeWords
	ModeLines
	ModeSmart
)

func (m Mode) String() string {
	switch m {
	case ModeWords:
		return "words"
	case ModeLines:
		return "lines"
	case ModeSmart:
		return "smart"
	default:
		return "characters"
	}
}

// ParseMode parses a mode name (case-insensitive). Unknown names are an
// error at this boundary; inside the engine an out-of-range Mode value
// behaves as ModeCharacters.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "characters", "chars":
		return ModeCharacters, nil
	case "words":
		return ModeWords, nil
	case "lines":
		return ModeLines, nil
	case "smart":
		return ModeSmart, nil
	}
	return ModeCharacters, fmt.Errorf("unknown mode: %s (characters|words|lines|smart)", s)
}

// Intensity maps to a Fisher-Yates pass count.
type Intensity int

const (
	IntensityLow    Intensity = iota // 1 pass
	IntensityMedium                  // 3 passes
	IntensityHigh                    // 5 passes
)

func (n Intensity) String() string {
	switch n {
	case IntensityLow:
		return "low"
	case IntensityHigh:
		return "high"
	default:
		return "medium"
	}
}

// Passes returns the shuffle pass count for the intensity.
func (n Intensity) Passes() int {
	switch n {
	case IntensityLow:
		return 1
	case IntensityHigh:
		return 5
	default:
		return 3
	}
}

func ParseIntensity(s string) (Intensity, error) {
	switch strings.ToLower(s) {
	case "low":
		return IntensityLow, nil
	case "medium", "med":
		return IntensityMedium, nil
	case "high":
		return IntensityHigh, nil
	}
	return IntensityMedium, fmt.Errorf("unknown intensity: %s (low|medium|high)", s)
}

// Config is the per-call scramble configuration. The engine never mutates it.
type Config struct {
	Mode                Mode
	Intensity           Intensity
	PreserveSpaces      bool // Characters mode: whitespace stays at its positions
	PreservePunctuation bool // Characters mode: non-alphanumerics stay at their positions
	PreserveCase        bool // restore per-position case after scrambling
}

// Result is the outcome of one scramble invocation.
type Result struct {
	OriginalText    string
	ScrambledText   string
	Mode            Mode
	CharactersCount int
	WordsCount      int
	LinesCount      int
}

// Options holds one CLI invocation's settings (engine Config plus I/O and
// orchestration concerns owned by the caller, not the scramble core).
type Options struct {
	Config     Config
	InputFile  string
	OutputFile string
	Text       string // inline input, bypasses file/stdin
	UseStdin   bool
	UseStdout  bool
	Normalize  bool // NFC-normalize input before scrambling
	Preset     string
	ConfigFile string
	Seed       int64
	Seeded     bool
	Variants   int // generate N variants with distinct seeds
	Report     bool
	Quiet      bool

	// Explicit-flag markers: presets and config files only fill fields the
	// user did not set on the command line.
	ModeSet                bool
	IntensitySet           bool
	PreserveSpacesSet      bool
	PreservePunctuationSet bool
	PreserveCaseSet        bool
}

var (
	// reWhitespaceRun matches one maximal whitespace run; Words mode keeps
	// these runs as tokens so inter-word spacing survives the shuffle.
	reWhitespaceRun = regexp.MustCompile(`\s+`)
	// reWord matches a maximal run of word characters for Smart mode.
	reWord = regexp.MustCompile(`\w+`)
)
