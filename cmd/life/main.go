//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"lifegame/internal/app"
	"lifegame/internal/config"
	"lifegame/internal/logging"
	"lifegame/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := config.Default()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	catalog, err := cfg.Resolve(flag.CommandLine)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	ctx := logging.WithLogger(context.Background(), logger)

	sess, err := session.New(ctx, *cfg, catalog)
	if err != nil {
		logger.Error("session setup failed", "error", err)
		os.Exit(1)
	}

	game := app.New(sess, logger)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game loop exited", "error", err)
		os.Exit(1)
	}
}
