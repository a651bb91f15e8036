package animation

import (
	"context"
	"sync"
	"time"
)

// Config contains pulse timing values.
type Config struct {
	Interval time.Duration
	// Cycles is the number of on/off pairs; zero pulses until stopped.
	Cycles int
}

// DefaultConfig pulses twice a second until stopped.
func DefaultConfig() Config {
	return Config{Interval: 500 * time.Millisecond}
}

// Engine alternates a highlight on and off, used to draw attention to a
// finished timer.
type Engine struct {
	mu     sync.Mutex
	config Config
	update func(on bool)
	cancel context.CancelFunc
}

// New creates a pulse engine. update is called from the engine goroutine.
func New(config Config, update func(on bool)) *Engine {
	if config.Interval <= 0 {
		config.Interval = DefaultConfig().Interval
	}
	return &Engine{
		config: config,
		update: update,
	}
}

// Start begins pulsing, replacing any pulse already running. The highlight
// is always left on when the pulse ends or is stopped.
func (engine *Engine) Start(ctx context.Context) {
	engine.start(ctx, func(runCtx context.Context) {
		defer engine.update(true)
		on := true
		for cycle := 0; engine.config.Cycles == 0 || cycle < engine.config.Cycles*2; cycle++ {
			engine.update(on)
			if !sleepWithContext(runCtx, engine.config.Interval) {
				return
			}
			on = !on
		}
	})
}

// Stop terminates any active pulse.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.cancel != nil {
		engine.cancel()
		engine.cancel = nil
	}
}

func (engine *Engine) start(parent context.Context, run func(context.Context)) {
	engine.mu.Lock()
	if engine.cancel != nil {
		engine.cancel()
	}
	runCtx, cancel := context.WithCancel(parent)
	engine.cancel = cancel
	engine.mu.Unlock()

	go run(runCtx)
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
