package engine

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// maxInputSize is a safety limit to prevent memory exhaustion (100 MB).
const maxInputSize = 100 * 1024 * 1024

// utf8BOM is the UTF-8 Byte Order Mark (EF BB BF).
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// stripBOM removes the UTF-8 BOM from the beginning of data if present.
// Kept out of the scramble pool: a BOM counted as a character would skew
// every count and occupy a shuffle slot.
func stripBOM(data []byte) []byte {
	return bytes.TrimPrefix(data, utf8BOM)
}

func readAllInput(opts Options) ([]byte, error) {
	if opts.Text != "" {
		return []byte(opts.Text), nil
	}
	if opts.UseStdin {
		data, err := io.ReadAll(io.LimitReader(bufio.NewReader(os.Stdin), maxInputSize+1))
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		if len(data) > maxInputSize {
			return nil, fmt.Errorf("input too large (>%d bytes, safety limit)", maxInputSize)
		}
		return stripBOM(data), nil
	}
	fi, err := os.Stat(opts.InputFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %s", opts.InputFile)
		}
		return nil, fmt.Errorf("reading input: %w", err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("input is a directory, not a file: %s", opts.InputFile)
	}
	if fi.Size() > maxInputSize {
		return nil, fmt.Errorf("file too large (%d bytes, max %d)", fi.Size(), maxInputSize)
	}
	data, err := os.ReadFile(opts.InputFile)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return stripBOM(data), nil
}

// validateUTF8 checks that data is valid UTF-8. Empty input is fine here:
// the engine defines an empty result for it.
func validateUTF8(data []byte) error {
	if !utf8.Valid(data) {
		return errors.New("input is not valid UTF-8 — save it as UTF-8 (with or without BOM)")
	}
	return nil
}

// variantOutName derives the output name for variant i, e.g. note.v2.txt.
func variantOutName(base string, i int) string {
	if base == "" {
		return fmt.Sprintf("scrambled.v%d.txt", i)
	}
	if idx := strings.LastIndex(base, "."); idx > strings.LastIndex(base, "/") {
		return fmt.Sprintf("%s.v%d%s", base[:idx], i, base[idx:])
	}
	return fmt.Sprintf("%s.v%d.txt", base, i)
}

func requireInOut(opts Options) error {
	if !opts.UseStdin && opts.InputFile == "" && opts.Text == "" {
		return errors.New("missing input (use -i <file>, --stdin, or -t <text>)")
	}
	if !opts.UseStdout && opts.OutputFile == "" {
		return errors.New("missing output (use -o <file> or --stdout)")
	}
	return nil
}
