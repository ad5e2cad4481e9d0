package engine

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// Run executes one scramble invocation (or a variants batch) per opts.
func Run(opts Options) error {
	if !opts.Quiet {
		fmt.Fprintln(os.Stderr, bannerColor)
	}
	if err := applyPresetDefaults(&opts); err != nil {
		return err
	}
	if opts.Variants < 0 {
		return fmt.Errorf("invalid --variants: %d", opts.Variants)
	}
	if opts.Variants > 0 && opts.UseStdout {
		return errors.New("cannot use --variants with --stdout")
	}
	if err := requireInOut(opts); err != nil {
		return err
	}
	text, err := loadInputText(opts)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" && !opts.Quiet {
		fmt.Fprintf(os.Stderr, "%sWarning:%s input is empty or whitespace-only; output will be empty\n", Yellow, Reset)
	}
	if opts.Variants > 0 {
		if !opts.Quiet {
			fmt.Fprintf(os.Stderr, "%sVariants:%s generating %d outputs...\n", Cyan, Reset, opts.Variants)
		}
		for i := 1; i <= opts.Variants; i++ {
			tmp := opts
			tmp.Seeded = true
			tmp.Seed = time.Now().UnixNano() + int64(i*137)
			tmp.Quiet = true
			tmp.OutputFile = variantOutName(opts.OutputFile, i)
			if err := processOnce(tmp, text); err != nil {
				return fmt.Errorf("variant %d/%d failed: %w", i, opts.Variants, err)
			}
			if !opts.Quiet {
				fmt.Fprintf(os.Stderr, "%sWrote:%s [%d/%d] %s\n", Green, Reset, i, opts.Variants, tmp.OutputFile)
			}
		}
		return nil
	}
	return processOnce(opts, text)
}

// loadInputText reads, validates and (optionally) NFC-normalizes the input.
func loadInputText(opts Options) (string, error) {
	data, err := readAllInput(opts)
	if err != nil {
		return "", fmt.Errorf("input: %w", err)
	}
	if err := validateUTF8(data); err != nil {
		return "", err
	}
	text := string(data)
	if opts.Normalize {
		text = norm.NFC.String(text)
	}
	return text, nil
}

func processOnce(opts Options, text string) error {
	start := time.Now()
	r := InitRNG(&opts.Seed, opts.Seeded)
	opts.Seeded = true
	res := Scramble(text, opts.Config, r)
	st := ComputeStats(text)
	if !opts.Quiet {
		fmt.Fprintf(os.Stderr, "%sSeed:%s %d %s(re-run with --seed %d for the same output)%s\n",
			Yellow, Reset, opts.Seed, Gray, opts.Seed, Reset)
		PrintStats(st, false)
	}
	if opts.Report {
		PrintReport(BuildReport(opts, res, st, time.Since(start)))
	}
	return writeOutput(opts, res.ScrambledText)
}

func writeOutput(opts Options, payload string) error {
	if opts.UseStdout {
		if _, err := os.Stdout.WriteString(payload); err != nil {
			return err
		}
		if payload != "" && !strings.HasSuffix(payload, "\n") {
			_, err := os.Stdout.WriteString("\n")
			return err
		}
		return nil
	}
	if dir := filepath.Dir(opts.OutputFile); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(opts.OutputFile, []byte(payload), 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	if !opts.Quiet {
		fmt.Fprintf(os.Stderr, "%sWrote:%s %s\n", Green, Reset, opts.OutputFile)
	}
	return nil
}

// RunStats analyzes the input and prints stats without transforming it.
func RunStats(opts Options) error {
	if !opts.UseStdin && opts.InputFile == "" && opts.Text == "" {
		return errors.New("missing input (use -i <file>, --stdin, or -t <text>)")
	}
	text, err := loadInputText(opts)
	if err != nil {
		return err
	}
	st := ComputeStats(text)
	fmt.Printf("characters:  %d\n", st.Characters)
	fmt.Printf("words:       %d\n", st.Words)
	fmt.Printf("lines:       %d\n", st.Lines)
	fmt.Printf("bytes:       %d\n", st.SizeBytes)
	fmt.Printf("unique:      %d\n", st.UniqueSymbols)
	fmt.Printf("entropy:     %.2f\n", st.Entropy)
	fmt.Printf("alnum_ratio: %.2f\n", st.AlnumRatio)
	return nil
}
