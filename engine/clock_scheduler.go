package engine

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/botball/core"
	"github.com/lixenwraith/botball/parameter"
	"github.com/lixenwraith/botball/status"
)

// RenderFunc receives a snapshot on every frame
type RenderFunc func(Snapshot)

// Loop drives a Match on a fixed tick and renders on an independent cadence
//
// Scheduling:
//   - Deadlines advance by the interval; falling MaxTickBehind intervals behind resyncs
//   - Each tick runs on its own goroutine; a deadline reached while one is in flight is skipped
//   - The scheduler waits at most tickTimeout for a tick; a tick that overruns or outlives Shutdown never commits
type Loop struct {
	match *Match
	step  func(abandoned func() bool) // one tick; Match.TickUnless unless replaced in tests

	tickInterval  time.Duration
	tickTimeout   time.Duration
	frameInterval time.Duration
	render        RenderFunc

	inFlight atomic.Bool
	running  atomic.Bool
	stopped  atomic.Bool

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup // scheduler and render loops
	tickWG   sync.WaitGroup // in-flight ticks

	// Cached metric pointers
	statSkipped  *atomic.Int64
	statOverruns *atomic.Int64
	statFrames   *atomic.Int64
}

// NewLoop creates a stopped loop; zero durations take the parameter defaults
// render may be nil for headless runs
func NewLoop(m *Match, tickInterval, tickTimeout, frameInterval time.Duration, render RenderFunc) *Loop {
	if tickInterval <= 0 {
		tickInterval = parameter.TickInterval
	}
	if tickTimeout <= 0 {
		tickTimeout = parameter.TickTimeout
	}
	if frameInterval <= 0 {
		frameInterval = parameter.FrameInterval
	}
	reg := m.Registry()
	return &Loop{
		match:         m,
		step:          m.TickUnless,
		tickInterval:  tickInterval,
		tickTimeout:   tickTimeout,
		frameInterval: frameInterval,
		render:        render,
		stopChan:      make(chan struct{}),
		statSkipped:   reg.Ints.Get(status.KeySkipped),
		statOverruns:  reg.Ints.Get(status.KeyOverruns),
		statFrames:    reg.Ints.Get(status.KeyFrames),
	}
}

// Start launches the scheduler and render loops once; later calls and calls after Shutdown do nothing
func (l *Loop) Start() {
	if l.stopped.Load() || !l.running.CompareAndSwap(false, true) {
		return
	}
	l.wg.Add(1)
	core.Go(l.schedulerLoop)
	if l.render != nil {
		l.wg.Add(1)
		core.Go(l.renderLoop)
	}
}

// Running reports whether Start has run and Shutdown has not
func (l *Loop) Running() bool {
	return l.running.Load()
}

// Shutdown stops both loops and waits for them and any in-flight tick until ctx expires
func (l *Loop) Shutdown(ctx context.Context) error {
	l.stopOnce.Do(func() {
		l.stopped.Store(true)
		l.running.Store(false)
		close(l.stopChan)
	})

	done := make(chan struct{})
	core.Go(func() {
		l.wg.Wait()
		l.tickWG.Wait()
		close(done)
	})

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Wrapf(ErrShutdownTimeout, "loop: %v", ctx.Err())
	}
}

// Stop is Shutdown bounded by parameter.ShutdownTimeout
func (l *Loop) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), parameter.ShutdownTimeout)
	defer cancel()
	return l.Shutdown(ctx)
}

func (l *Loop) schedulerLoop() {
	defer l.wg.Done()

	deadline := time.Now().Add(l.tickInterval)
	timer := time.NewTimer(l.tickInterval)
	defer timer.Stop()

	for {
		select {
		case <-l.stopChan:
			return
		case <-timer.C:
		}

		now := time.Now()
		l.dispatch()

		deadline = deadline.Add(l.tickInterval)
		if now.Sub(deadline) > parameter.MaxTickBehind*l.tickInterval {
			deadline = now.Add(l.tickInterval)
		}
		timer.Reset(max(time.Until(deadline), 0))
	}
}

// dispatch starts one tick unless the previous one is still running, then waits for it within tickTimeout
func (l *Loop) dispatch() {
	if !l.inFlight.CompareAndSwap(false, true) {
		n := l.statSkipped.Add(1)
		log.Printf("engine: tick skipped, previous tick still running (%d skipped)", n)
		return
	}

	var abandoned atomic.Bool
	done := make(chan struct{})
	l.tickWG.Add(1)
	core.Go(func() {
		defer l.tickWG.Done()
		defer l.inFlight.Store(false)
		defer close(done)
		l.step(abandoned.Load)
	})

	wait := time.NewTimer(l.tickTimeout)
	defer wait.Stop()
	select {
	case <-done:
	case <-wait.C:
		abandoned.Store(true)
		n := l.statOverruns.Add(1)
		log.Printf("engine: tick exceeded %v, abandoning it (%d overruns)", l.tickTimeout, n)
	case <-l.stopChan:
		abandoned.Store(true)
	}
}

func (l *Loop) renderLoop() {
	defer l.wg.Done()

	ticker := time.NewTicker(l.frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stopChan:
			return
		case <-ticker.C:
			l.render(l.match.Snapshot())
			l.statFrames.Add(1)
		}
	}
}
