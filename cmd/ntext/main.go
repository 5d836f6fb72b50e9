//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

// ABOUTME: CLI entry point for ntext with terminal crash recovery
// ABOUTME: Parses flags, loads settings, runs the editor or key-code mode on the controlling tty

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mauromedda/ntext/internal/config"
	pilog "github.com/mauromedda/ntext/internal/log"
	"github.com/mauromedda/ntext/internal/mode/interactive"
	"github.com/mauromedda/ntext/internal/mode/keycodes"
	"github.com/mauromedda/ntext/pkg/tui/terminal"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("ntext %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run loads settings and drives the selected mode. Both modes restore
// the terminal before returning, error or not.
func run(args cliArgs) error {
	path := args.configPath
	if path == "" {
		path = config.DefaultFile()
	}
	settings, err := config.Load(path, version)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	pilog.SetLevel(settings.Level())
	if args.verbose {
		pilog.SetLevel(pilog.LevelDebug)
	}

	restoreLog, err := redirectLog(settings.LogFile)
	if err != nil {
		return err
	}
	defer restoreLog()

	km, err := settings.Keymap()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	term := terminal.NewProcessTerminal()
	defer terminal.RestoreOnPanic(term)

	// ISIG is off in raw mode, so these only arrive from outside the tty.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	if args.keycodes {
		pilog.Info("key-code mode")
		return keycodes.Run(ctx, term)
	}

	app := interactive.NewFromDeps(interactive.AppDeps{
		Terminal: term,
		Welcome:  settings.Welcome,
		Keymap:   km,
		Clamp:    settings.Clamp(),
	})
	if err := app.Run(ctx); err != nil {
		pilog.Error("session ended: %v", err)
		return err
	}
	pilog.Info("session ended")
	return nil
}

// redirectLog keeps log lines off the tty while it is in raw mode: they
// go to logFile when one is configured and are discarded otherwise. The
// returned func puts the previous destination back.
func redirectLog(logFile string) (func(), error) {
	if logFile == "" {
		prev := pilog.SetOutput(io.Discard)
		return func() { pilog.SetOutput(prev) }, nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	prev := pilog.SetOutput(f)
	return func() {
		pilog.SetOutput(prev)
		_ = f.Close()
	}, nil
}
