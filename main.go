package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/matrix-rain/core"
	"github.com/lixenwraith/matrix-rain/engine"
	"golang.org/x/term"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, debugLog, err := loadOptions(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "matrix-rain: %v\n", err)
		return 2
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "matrix-rain: stdout is not a terminal")
		return 1
	}

	if logFile := setupLogging(debugLog); logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	core.RegisterScreen(screen)
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	app, err := NewApp(screen, opts)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "matrix-rain: %v\n", err)
		return 1
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "matrix-rain: %v\n", err)
		return 1
	}
	return 0
}

// loadOptions layers defaults, the optional config file, MATRIX_* env and flags
func loadOptions(args []string) (engine.Options, bool, error) {
	fs := flag.NewFlagSet("matrix-rain", flag.ContinueOnError)
	fromFlags := engine.DefaultOptions()
	engine.RegisterFlags(fs, &fromFlags)
	configPath := fs.String("config", "", "path to a TOML config file")
	debugLog := fs.Bool("debug", false, "write a debug log under logs/")

	if err := fs.Parse(args); err != nil {
		return engine.Options{}, false, err
	}

	opts := engine.DefaultOptions()
	if *configPath != "" {
		if err := engine.LoadFile(*configPath, &opts); err != nil {
			return engine.Options{}, false, err
		}
	}
	if err := engine.ApplyEnv(&opts); err != nil {
		return engine.Options{}, false, err
	}
	engine.ApplyFlags(fs, fromFlags, &opts)

	if err := opts.Validate(); err != nil {
		return engine.Options{}, false, err
	}
	return opts, *debugLog, nil
}
