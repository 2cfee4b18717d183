// Package loop runs a scene at a fixed frame rate on its own goroutine.
package loop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tilegame/internal/core"
)

var (
	// ErrSurfaceUnavailable is returned by Surface.LockCanvas when there is
	// nothing to draw on this frame. The frame still updates and the present
	// step is skipped.
	ErrSurfaceUnavailable = errors.New("loop: surface unavailable")

	// ErrAlreadyStarted is returned by a second call to Start.
	ErrAlreadyStarted = errors.New("loop: already started")
)

// State is the run state of the loop.
type State int32

const (
	Running State = iota
	Paused
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// Surface is the render target. LockCanvas hands out a canvas for one frame
// and UnlockCanvasAndPost presents it.
type Surface interface {
	LockCanvas() (core.Canvas, error)
	UnlockCanvasAndPost(c core.Canvas)
}

// Scene is driven once per frame. The loop holds the scene's lock across
// Update and Draw.
type Scene interface {
	sync.Locker
	Update()
	Draw(c core.Canvas)
}

// Loop drives a Scene onto a Surface.
type Loop struct {
	scene    Scene
	surface  Surface
	interval time.Duration
	logger   *log.Logger

	state   atomic.Int32
	run     atomic.Bool
	started atomic.Bool
	frames  atomic.Uint64

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// New creates a loop ticking tickRate times per second. A non-positive rate
// falls back to 30. A nil logger discards output.
func New(scene Scene, surface Surface, tickRate int, logger *log.Logger) *Loop {
	if tickRate <= 0 {
		tickRate = 30
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loop{
		scene:    scene,
		surface:  surface,
		interval: time.Second / time.Duration(tickRate),
		logger:   logger,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the loop goroutine in the Running state. The loop exits when
// ctx is done or Stop is called. A loop can only be started once.
func (l *Loop) Start(ctx context.Context) error {
	if !l.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}
	l.state.Store(int32(Running))
	l.run.Store(true)
	go l.runLoop(ctx)
	return nil
}

// Pause stops movement processing. Frames are still drawn.
func (l *Loop) Pause() {
	if l.state.CompareAndSwap(int32(Running), int32(Paused)) {
		l.logger.Debug("loop paused")
	}
}

// Unpause resumes movement processing from the next frame.
func (l *Loop) Unpause() {
	if l.state.CompareAndSwap(int32(Paused), int32(Running)) {
		l.logger.Debug("loop unpaused")
	}
}

// TogglePause flips between Running and Paused and returns the new state.
func (l *Loop) TogglePause() State {
	if l.State() == Running {
		l.Pause()
	} else {
		l.Unpause()
	}
	return l.State()
}

// State returns the current run state.
func (l *Loop) State() State {
	return State(l.state.Load())
}

// Frames returns how many frames have run.
func (l *Loop) Frames() uint64 {
	return l.frames.Load()
}

// Stop clears the run flag and blocks until the loop goroutine has exited.
// It is safe to call more than once. Stopping a loop that was never started
// makes any later Start fail.
func (l *Loop) Stop() {
	l.run.Store(false)
	l.stopOnce.Do(func() { close(l.stop) })
	if l.started.CompareAndSwap(false, true) {
		close(l.done)
		return
	}
	<-l.done
}

// Done is closed once the loop goroutine exits.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

func (l *Loop) runLoop(ctx context.Context) {
	defer close(l.done)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.logger.Info("loop started", "interval", l.interval)
	for l.run.Load() {
		l.frame()

		select {
		case <-ctx.Done():
			l.run.Store(false)
		case <-l.stop:
		case <-ticker.C:
		}
	}
	l.logger.Info("loop stopped", "frames", l.frames.Load())
}

// frame runs one update/draw cycle. The canvas is presented after the scene
// lock is released, even if the scene panicked.
func (l *Loop) frame() {
	c, err := l.surface.LockCanvas()
	if err != nil {
		if !errors.Is(err, ErrSurfaceUnavailable) {
			l.logger.Warn("lock canvas failed", "err", err)
		}
		c = nil
	}

	l.step(c)
	l.frames.Add(1)

	if c != nil {
		l.surface.UnlockCanvasAndPost(c)
	}
}

func (l *Loop) step(c core.Canvas) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("frame panicked", "panic", r, "frame", l.frames.Load())
		}
	}()

	l.scene.Lock()
	defer l.scene.Unlock()

	if l.State() == Running {
		l.scene.Update()
	}
	l.scene.Draw(c)
}
