package engine

import (
	"fmt"
	"runtime"
	"strings"
)

const version = "0.3.0"

// bannerColor is the colored banner for CLI output.
var bannerColor = Cyan + "scramblr" + Reset + " | v." + version + " | " + Gray + "text scrambling toolkit" + Reset

// PrintBanner prints the banner (for interactive mode).
func PrintBanner() {
	fmt.Println(bannerColor)
}

// Version returns the version string.
func Version() string {
	return version
}

// VersionFull returns version with Go and platform info.
func VersionFull() string {
	return fmt.Sprintf("scramblr v%s (%s/%s, %s)", version, runtime.GOOS, runtime.GOARCH, runtime.Version())
}

// ErrorHint returns a helpful hint for common errors.
func ErrorHint(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "file not found"):
		return "Check the path with -i. Use absolute paths or run from the project directory."
	case strings.Contains(msg, "not valid UTF-8"):
		return "Re-save the file as UTF-8 (with or without BOM) in your editor."
	case strings.Contains(msg, "missing input"):
		return "Specify input: scramblr scramble -i note.txt -o scrambled.txt --mode words"
	case strings.Contains(msg, "unknown mode"):
		return "Valid modes: characters, words, lines, smart."
	case strings.Contains(msg, "unknown intensity"):
		return "Valid intensities: low (1 pass), medium (3), high (5)."
	case strings.Contains(msg, "unknown preset"):
		return "Run `scramblr presets` to list available presets."
	case strings.Contains(msg, "too large"):
		return "The input exceeds the safety limit. Split large files first."
	case strings.Contains(msg, "config file"):
		return "Preset files are YAML or TOML; the format is picked by extension."
	}
	return ""
}
