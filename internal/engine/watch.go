package engine

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce coalesces the burst of fsnotify events an editor save emits.
const watchDebounce = 100 * time.Millisecond

// WatchFile re-scrambles the input file every time it changes, until stop
// closes. Each regeneration uses a fresh seed. This is the "recompute on
// every change" collaborator: debouncing and history live here, the engine
// stays stateless.
func WatchFile(opts Options, stop <-chan struct{}) error {
	if opts.InputFile == "" {
		return errors.New("missing input (watch needs -i <file>)")
	}
	if opts.OutputFile == "" {
		opts.UseStdout = true
	}
	if err := applyPresetDefaults(&opts); err != nil {
		return err
	}
	absInput, err := filepath.Abs(opts.InputFile)
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watcher: %w", err)
	}
	defer w.Close()
	// Watch the directory: editors that save via rename would silently drop
	// a watch placed on the file itself.
	if err := w.Add(filepath.Dir(absInput)); err != nil {
		return fmt.Errorf("watcher: %w", err)
	}

	hist := NewHistory(0)
	regen := func() error {
		text, err := loadInputText(opts)
		if err != nil {
			return err
		}
		tmp := opts
		tmp.Seeded = false
		r := InitRNG(&tmp.Seed, false)
		res := Scramble(text, tmp.Config, r)
		if err := writeOutput(tmp, res.ScrambledText); err != nil {
			return err
		}
		hist.Add(res.ScrambledText, tmp.Seed)
		if !opts.Quiet {
			fmt.Fprintf(os.Stderr, "%sRegenerated:%s #%d seed=%d chars=%d\n",
				Green, Reset, hist.Len(), tmp.Seed, res.CharactersCount)
		}
		return nil
	}

	if err := regen(); err != nil {
		return err
	}
	if !opts.Quiet {
		fmt.Fprintf(os.Stderr, "%sWatching:%s %s (Ctrl+C to stop)\n", Cyan, Reset, opts.InputFile)
	}

	debounce := time.NewTimer(watchDebounce)
	if !debounce.Stop() {
		<-debounce.C
	}
	pending := false
	for {
		select {
		case <-stop:
			if !opts.Quiet {
				fmt.Fprintf(os.Stderr, "%sStopped:%s %d outputs generated\n", Cyan, Reset, hist.Len())
			}
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			evAbs, err := filepath.Abs(ev.Name)
			if err != nil || evAbs != absInput {
				continue
			}
			if pending {
				if !debounce.Stop() {
					select {
					case <-debounce.C:
					default:
					}
				}
			}
			debounce.Reset(watchDebounce)
			pending = true
		case <-debounce.C:
			pending = false
			if err := regen(); err != nil {
				// The file may be mid-save; report and keep watching.
				fmt.Fprintf(os.Stderr, "%sWarning:%s %v\n", Yellow, Reset, err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "%sWarning:%s watcher: %v\n", Yellow, Reset, err)
		}
	}
}
