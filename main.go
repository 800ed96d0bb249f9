package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"alien-descent/game"
)

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdout, os.Stderr))
}

// realMain returns the process exit status so deferred cleanup runs first
func realMain(args []string, stdout, stderr io.Writer) int {
	cfg, err := LoadConfig(args)
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 2
	}

	logger, closer, err := newLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "logger: %v\n", err)
		return 2
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := run(ctx, cfg, logger)
	if err != nil {
		logger.Error("run failed", "err", err)
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	if cfg.Headless && !cfg.Frames {
		fmt.Fprintf(stdout, "final score %d after %d turns\n", res.Score, res.Turns)
	}
	return 0
}

// sessionFactory builds a fresh game session with its own id and logger
type sessionFactory func() (*game.State, *log.Logger)

func newSessionFactory(cfg Config, logger *log.Logger) sessionFactory {
	return func() (*game.State, *log.Logger) {
		session := uuid.NewString()
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		state := game.NewState(game.Config{
			ScreenWidth: cfg.Width,
			Seed:        seed,
			Session:     session,
		})
		sessionLog := logger.With("session", session)
		sessionLog.Info("session started", "seed", seed, "width", state.Width(), "tick", cfg.Tick, "aliens", state.AlienCount())
		return state, sessionLog
	}
}

// run plays in the configured mode until the game ends or the player quits
func run(ctx context.Context, cfg Config, logger *log.Logger) (Result, error) {
	if cfg.Frames && !cfg.Headless {
		return Result{}, errors.New("-frames requires -headless")
	}

	sound := newSoundPlayer(cfg.Sound, logger)
	defer sound.Close()

	opts := RunnerOptions{
		Interval: cfg.Tick,
		MaxTicks: cfg.MaxTicks,
		OnTick:   sound.TickDone,
	}
	newSession := newSessionFactory(cfg, logger)

	if cfg.Headless {
		if cfg.Frames {
			opts.Sinks = append(opts.Sinks, newFrameWriter(os.Stdout))
		}
		state, sessionLog := newSession()
		opts.Logger = sessionLog
		runner := NewRunner(state, opts)
		defer runner.Stop()
		return runner.Run(ctx)
	}
	return runTerminal(ctx, cfg.Width, newSession, opts)
}

// runTerminal plays sessions back to back until the player quits. Game over
// shows the banner; the restart key starts a new session with a fresh score.
func runTerminal(ctx context.Context, width float64, newSession sessionFactory, opts RunnerOptions) (Result, error) {
	view, err := newTerminalView(width)
	if err != nil {
		return Result{}, err
	}
	defer view.Close()
	opts.Sinks = append(opts.Sinks, view)

	state, sessionLog := newSession()
	opts.Logger = sessionLog
	runner := NewRunner(state, opts)
	view.Attach(runner)

	quit := make(chan struct{})
	go func() {
		view.Input()
		close(quit)
	}()

	for {
		res, err := runner.Run(ctx)
		runner.Stop()
		if err != nil || !res.Over {
			return res, err
		}

		view.ShowGameOver(res.Score)
		select {
		case <-quit:
			return res, nil
		case <-ctx.Done():
			return res, nil
		case <-view.Restarts():
		}

		state, sessionLog = newSession()
		opts.Logger = sessionLog
		runner = NewRunner(state, opts)
		view.Attach(runner)
	}
}
