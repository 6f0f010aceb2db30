// Command life-run steps a grid without a display and prints it as text.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"lifegame/internal/config"
	"lifegame/internal/logging"
	"lifegame/internal/render"
	"lifegame/internal/session"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(out, logW io.Writer, args []string) error {
	fs := flag.NewFlagSet("life-run", flag.ContinueOnError)
	fs.SetOutput(logW)
	cfg := config.Default()
	cfg.Pattern = config.PatternRandom
	cfg.Bind(fs)
	generations := fs.Int("generations", 10, "number of generations to compute")
	every := fs.Int("every", 0, "print the grid every N generations; 0 prints only the last")
	stopEmpty := fs.Bool("stop-empty", false, "stop early once the population reaches zero")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *generations < 0 || *every < 0 {
		return fmt.Errorf("generations and every must not be negative")
	}

	catalog, err := cfg.Resolve(fs)
	if err != nil {
		return err
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := logging.WithLogger(context.Background(), logger)

	sess, err := session.New(ctx, *cfg, catalog)
	if err != nil {
		return err
	}

	printFrame := func() error {
		if _, err := fmt.Fprintln(out, sess.Status()); err != nil {
			return err
		}
		return render.WriteText(out, sess.Grid(), 'O', '.')
	}

	sess.Start()
	for i := 1; i <= *generations; i++ {
		sess.Tick()
		if *every > 0 && i%*every == 0 && i != *generations {
			if err := printFrame(); err != nil {
				return err
			}
		}
		if *stopEmpty && sess.Grid().Population() == 0 {
			logger.Info("population died out", "generation", sess.Status().Generation)
			break
		}
	}
	sess.Pause()

	logger.Debug("run finished", "generation", sess.Status().Generation, "population", sess.Grid().Population())
	return printFrame()
}
