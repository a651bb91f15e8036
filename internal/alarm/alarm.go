// Package alarm plays the short beep sequence that marks the end of a
// countdown. Ringing is fire-and-forget: it never blocks the caller and
// audio failures are swallowed.
package alarm

import (
	"context"
	"time"

	"countertimer/internal/core/model"
)

// Beeper sounds a single short alert.
type Beeper interface {
	Beep() error
}

// Silent is a Beeper that makes no sound.
type Silent struct{}

// Beep does nothing.
func (Silent) Beep() error { return nil }

// Alarm repeats a beep a fixed number of times with a fixed gap.
type Alarm struct {
	beeper Beeper
	config model.AlarmConfig
	sleep  func(context.Context, time.Duration) bool
	onRing func()
}

// New creates an alarm. A nil beeper is treated as Silent.
func New(beeper Beeper, config model.AlarmConfig) *Alarm {
	if beeper == nil {
		beeper = Silent{}
	}
	if config.Repeats <= 0 {
		config.Repeats = model.DefaultAlarmConfig().Repeats
	}
	if config.Gap < 0 {
		config.Gap = 0
	}
	return &Alarm{
		beeper: beeper,
		config: config,
		sleep:  sleepWithContext,
	}
}

// SetOnRing registers a callback invoked synchronously by Ring before the
// beep sequence is launched. The desktop app uses it for notifications.
func (alarm *Alarm) SetOnRing(handler func()) {
	alarm.onRing = handler
}

// Ring starts the beep sequence on a detached goroutine.
func (alarm *Alarm) Ring() {
	if alarm.onRing != nil {
		alarm.onRing()
	}
	go alarm.Play(context.Background())
}

// Play beeps config.Repeats times, waiting config.Gap after each beep. It
// returns early when ctx is cancelled.
func (alarm *Alarm) Play(ctx context.Context) {
	for i := 0; i < alarm.config.Repeats; i++ {
		_ = alarm.beeper.Beep()
		if !alarm.sleep(ctx, alarm.config.Gap) {
			return
		}
	}
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
