package main

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"alien-descent/game"
)

// FrameSink receives a snapshot after every tick and every applied command
type FrameSink interface {
	Frame(snap game.Snapshot) error
}

// RunnerOptions configures a Runner
type RunnerOptions struct {
	Interval time.Duration
	MaxTicks int
	Logger   *log.Logger
	Sinks    []FrameSink
	OnTick   func(game.TickResult)
}

// Result is what a finished run reports back
type Result struct {
	Score int
	Turns int
	Over  bool
}

// Runner drives a game.State at a fixed cadence. Its goroutine is the only
// mutator of the state: pause is a flag checked before each tick and every
// other command is queued and applied between ticks.
type Runner struct {
	state  *game.State
	opts   RunnerOptions
	logger *log.Logger

	paused   atomic.Bool
	cmds     chan func(*game.State)
	stop     chan struct{}
	stopOnce sync.Once
}

// NewRunner creates a runner for the given state
func NewRunner(state *game.State, opts RunnerOptions) *Runner {
	if opts.Interval <= 0 {
		opts.Interval = 50 * time.Millisecond
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		state:  state,
		opts:   opts,
		logger: logger,
		cmds:   make(chan func(*game.State), 64),
		stop:   make(chan struct{}),
	}
}

// Run ticks until the game is over, MaxTicks is reached, Stop is called or
// ctx is done. A sink error aborts the run.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	ticker := time.NewTicker(r.opts.Interval)
	defer ticker.Stop()

	if err := r.publish(); err != nil {
		return r.result(), err
	}

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("run cancelled", "turn", r.state.Turn())
			return r.result(), nil
		case <-r.stop:
			return r.result(), nil
		case cmd := <-r.cmds:
			cmd(r.state)
			if err := r.publish(); err != nil {
				return r.result(), err
			}
		case <-ticker.C:
			if r.paused.Load() {
				continue
			}
			res := r.state.Tick()
			r.logTick(res)
			if r.opts.OnTick != nil {
				r.opts.OnTick(res)
			}
			if err := r.publish(); err != nil {
				return r.result(), err
			}
			if res.Over {
				r.logger.Info("game over", "score", r.state.Score(), "turns", r.state.Turn())
				return r.result(), nil
			}
			if r.opts.MaxTicks > 0 && r.state.Turn() >= r.opts.MaxTicks {
				r.logger.Warn("tick limit reached", "turns", r.state.Turn(), "aliens", r.state.AlienCount())
				return r.result(), nil
			}
		}
	}
}

func (r *Runner) logTick(res game.TickResult) {
	if res.Detached > 0 {
		r.logger.Debug("aliens detached", "turn", res.Turn, "count", res.Detached)
	}
	if res.Escaped > 0 {
		r.logger.Debug("aliens escaped", "turn", res.Turn, "count", res.Escaped, "score", r.state.Score())
	}
	if res.Kills > 0 {
		r.logger.Debug("aliens shot", "turn", res.Turn, "count", res.Kills, "left", r.state.AlienCount())
	}
}

func (r *Runner) publish() error {
	if len(r.opts.Sinks) == 0 {
		return nil
	}
	snap := r.state.Snapshot()
	for _, s := range r.opts.Sinks {
		if err := s.Frame(snap); err != nil {
			return fmt.Errorf("publish frame %d: %w", snap.Turn, err)
		}
	}
	return nil
}

func (r *Runner) result() Result {
	return Result{
		Score: r.state.Score(),
		Turns: r.state.Turn(),
		Over:  r.state.Over(),
	}
}

// Stop ends the run loop
func (r *Runner) Stop() {
	r.stopOnce.Do(func() { close(r.stop) })
}

// Pause suspends ticking
func (r *Runner) Pause() {
	if r.paused.CompareAndSwap(false, true) {
		r.logger.Info("paused")
	}
}

// Resume continues ticking
func (r *Runner) Resume() {
	if r.paused.CompareAndSwap(true, false) {
		r.logger.Info("resumed")
	}
}

// TogglePause flips the pause flag and returns the new value
func (r *Runner) TogglePause() bool {
	if r.paused.Load() {
		r.Resume()
		return false
	}
	r.Pause()
	return true
}

// Paused reports whether ticking is suspended
func (r *Runner) Paused() bool {
	return r.paused.Load()
}

// Shift queues a formation shift of one step left (dir < 0) or right
func (r *Runner) Shift(dir int) {
	dx := game.ShiftStep
	if dir < 0 {
		dx = -dx
	}
	r.enqueue(func(s *game.State) {
		if !s.ShiftFormation(dx) {
			r.logger.Debug("shift rejected", "dx", dx)
		}
	})
}

// SubmitPath queues new raw drag samples for aliens to follow
func (r *Runner) SubmitPath(points []game.Point) {
	r.enqueue(r.pathCmd(points, false))
}

// ResumeWithPath queues the samples and lifts the pause in the same command,
// so the first tick after resuming already sees the new path
func (r *Runner) ResumeWithPath(points []game.Point) {
	r.enqueue(r.pathCmd(points, true))
}

func (r *Runner) pathCmd(points []game.Point, resume bool) func(*game.State) {
	raw := make([]game.Point, len(points))
	copy(raw, points)
	return func(s *game.State) {
		n := s.SetPath(raw)
		r.logger.Info("path set", "samples", len(raw), "steps", n)
		if resume {
			r.Resume()
		}
	}
}

func (r *Runner) enqueue(cmd func(*game.State)) {
	select {
	case r.cmds <- cmd:
	case <-r.stop:
	}
}
