package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/varelse/scramblr/internal/engine"
)

func main() {
	// First Ctrl+C asks long-running commands (watch) to stop; a second
	// one forces exit.
	stop := make(chan struct{})
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		close(stop)
		<-sig
		fmt.Fprintln(os.Stderr, "\n\033[33mInterrupted.\033[0m")
		os.Exit(130)
	}()

	if err := newRootCmd(stop).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%sError:%s %v\n", engine.Red, engine.Reset, err)
		if hint := engine.ErrorHint(err); hint != "" {
			fmt.Fprintf(os.Stderr, "%sHint:%s %s\n", engine.Gray, engine.Reset, hint)
		}
		os.Exit(1)
	}
}
