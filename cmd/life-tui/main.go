package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"lifegame/internal/config"
	"lifegame/internal/logging"
	"lifegame/internal/session"
	"lifegame/internal/tui"

	"github.com/gdamore/tcell/v2"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("life-tui", flag.ContinueOnError)
	cfg := config.Default()
	cfg.Bind(fs)
	logFile := fs.String("log-file", "", "write logs to this file; logs are discarded when empty")
	if err := fs.Parse(args); err != nil {
		return err
	}

	catalog, err := cfg.Resolve(fs)
	if err != nil {
		return err
	}

	// The terminal is owned by tcell, so logs go to a file or nowhere.
	logger := logging.Discard()
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		logger = logging.New(cfg.LogLevel, cfg.LogFormat, f)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithLogger(ctx, logger)

	sess, err := session.New(ctx, *cfg, catalog)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	err = tui.New(screen, sess, logger).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
