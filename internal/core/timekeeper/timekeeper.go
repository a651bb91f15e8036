package timekeeper

import (
	"sync"
	"time"

	"countertimer/internal/core/model"
)

// Alarm is rung once each time a run reaches zero. Ring must not block.
type Alarm interface {
	Ring()
}

// Config contains runtime options for TimeKeeper.
type Config struct {
	Ticker Ticker
	Alarm  Alarm
}

// TimeKeeper is the countdown state machine. All transitions are serialized
// by its mutex, including ticks delivered from the ticker goroutine.
type TimeKeeper struct {
	mu           sync.Mutex
	config       model.TimeKeeperConfig
	ticker       Ticker
	alarm        Alarm
	total        int
	remaining    int
	running      bool
	finished     bool
	editing      bool
	draft        string
	subscription Subscription
	generation   uint64
	events       []chan Event
	closed       bool
}

// New creates an idle TimeKeeper holding config.DefaultSeconds.
func New(config model.TimeKeeperConfig, options Config) *TimeKeeper {
	config = config.Normalized()
	if options.Ticker == nil {
		options.Ticker = SystemTicker
	}

	return &TimeKeeper{
		config:    config,
		ticker:    options.Ticker,
		alarm:     options.Alarm,
		total:     config.DefaultSeconds,
		remaining: config.DefaultSeconds,
	}
}

// SetAlarm replaces the alarm rung on completion.
func (keeper *TimeKeeper) SetAlarm(alarm Alarm) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.alarm = alarm
}

// Subscribe registers a new observer channel. Slow observers miss events
// rather than stall the state machine.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	if keeper.closed {
		close(ch)
	} else {
		keeper.events = append(keeper.events, ch)
	}
	keeper.mu.Unlock()
	return ch
}

// Config returns the active configuration.
func (keeper *TimeKeeper) Config() model.TimeKeeperConfig {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	config := keeper.config
	config.Presets = append([]int(nil), keeper.config.Presets...)
	return config
}

// UpdateConfig replaces presets and bounds for later transitions. An idle
// timer still holding the previous default duration switches to the new
// one; any other duration and any active run are left alone.
func (keeper *TimeKeeper) UpdateConfig(config model.TimeKeeperConfig) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		return
	}
	previous := keeper.config.DefaultSeconds
	keeper.config = config.Normalized()
	if keeper.stateLocked() == StateIdle && keeper.total == previous && keeper.remaining == keeper.total {
		keeper.total = keeper.config.DefaultSeconds
		keeper.remaining = keeper.total
	}
	keeper.emitLocked(EventStateChange)
}

// Snapshot returns a copy of the current state.
func (keeper *TimeKeeper) Snapshot() Snapshot {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.snapshotLocked()
}

// SelectPreset cancels any run or edit and loads minutes as the new duration.
func (keeper *TimeKeeper) SelectPreset(minutes int) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		return
	}
	keeper.stopTickerLocked()
	keeper.editing = false
	keeper.draft = ""
	keeper.total = keeper.config.Clamp(minutes * 60)
	keeper.remaining = keeper.total
	keeper.finished = false
	keeper.emitLocked(EventStateChange)
}

// Start begins a run, or restarts one that has finished. A stopped run
// resumes from where it was stopped.
func (keeper *TimeKeeper) Start() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed || keeper.running {
		return
	}
	keeper.editing = false
	keeper.draft = ""
	if keeper.finished || keeper.remaining <= 0 {
		keeper.remaining = keeper.total
	}
	if keeper.total <= 0 {
		return
	}
	keeper.finished = false
	keeper.running = true
	keeper.generation++
	generation := keeper.generation
	keeper.subscription = keeper.ticker.Every(keeper.config.TickInterval, func() {
		keeper.tick(generation)
	})
	keeper.emitLocked(EventStateChange)
}

// Stop pauses a run without touching the remaining time.
func (keeper *TimeKeeper) Stop() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed || !keeper.running {
		return
	}
	keeper.stopTickerLocked()
	keeper.emitLocked(EventStateChange)
}

// Toggle stops a running timer and starts any other.
func (keeper *TimeKeeper) Toggle() {
	if keeper.Snapshot().Running {
		keeper.Stop()
		return
	}
	keeper.Start()
}

// Reset returns to Idle with the full duration loaded.
func (keeper *TimeKeeper) Reset() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		return
	}
	keeper.stopTickerLocked()
	keeper.editing = false
	keeper.draft = ""
	keeper.remaining = keeper.total
	keeper.finished = false
	keeper.emitLocked(EventStateChange)
}

// Tick advances the current run by one second. It is what the ticker
// delivers; calling it while not running does nothing.
func (keeper *TimeKeeper) Tick() {
	keeper.mu.Lock()
	generation := keeper.generation
	keeper.mu.Unlock()
	keeper.tick(generation)
}

// BeginEdit opens the text editor seeded with the displayed time. It is
// ignored while running.
func (keeper *TimeKeeper) BeginEdit() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed || keeper.running || keeper.editing {
		return
	}
	keeper.editing = true
	keeper.draft = keeper.snapshotLocked().Display()
	keeper.emitLocked(EventStateChange)
}

// SetDraft replaces the in-progress edit text.
func (keeper *TimeKeeper) SetDraft(text string) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if !keeper.editing {
		return
	}
	keeper.draft = text
}

// CommitEdit parses text and, when valid, loads it as the new duration
// clamped to the configured bounds. The edit closes either way; an
// unparseable value leaves the duration and remaining time untouched and
// returns ErrInvalidTime.
func (keeper *TimeKeeper) CommitEdit(text string) error {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed || !keeper.editing {
		return nil
	}
	keeper.editing = false
	keeper.draft = ""

	seconds, err := ParseTime(text)
	if err != nil {
		keeper.emitLocked(EventStateChange)
		return err
	}
	keeper.total = keeper.config.Clamp(seconds)
	keeper.remaining = keeper.total
	keeper.finished = false
	keeper.emitLocked(EventStateChange)
	return nil
}

// CancelEdit discards the draft and returns to the pre-edit state.
func (keeper *TimeKeeper) CancelEdit() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed || !keeper.editing {
		return
	}
	keeper.editing = false
	keeper.draft = ""
	keeper.emitLocked(EventStateChange)
}

// Close releases the tick subscription and closes observers. The
// TimeKeeper ignores every call afterwards.
func (keeper *TimeKeeper) Close() {
	keeper.mu.Lock()
	if keeper.closed {
		keeper.mu.Unlock()
		return
	}
	keeper.stopTickerLocked()
	keeper.closed = true
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (keeper *TimeKeeper) tick(generation uint64) {
	keeper.mu.Lock()
	if keeper.closed || !keeper.running || generation != keeper.generation {
		keeper.mu.Unlock()
		return
	}

	if keeper.remaining > 0 {
		keeper.remaining--
	}
	if keeper.remaining > 0 {
		keeper.emitLocked(EventTick)
		keeper.mu.Unlock()
		return
	}

	keeper.stopTickerLocked()
	keeper.finished = true
	alarm := keeper.alarm
	keeper.emitLocked(EventFinished)
	keeper.mu.Unlock()

	if alarm != nil {
		alarm.Ring()
	}
}

// stopTickerLocked is the only place a subscription is released.
func (keeper *TimeKeeper) stopTickerLocked() {
	if keeper.subscription != nil {
		keeper.subscription.Stop()
		keeper.subscription = nil
	}
	keeper.running = false
	keeper.generation++
}

func (keeper *TimeKeeper) stateLocked() State {
	switch {
	case keeper.editing:
		return StateEditing
	case keeper.running:
		return StateRunning
	case keeper.finished:
		return StateFinished
	default:
		return StateIdle
	}
}

func (keeper *TimeKeeper) snapshotLocked() Snapshot {
	return Snapshot{
		State:     keeper.stateLocked(),
		Total:     keeper.total,
		Remaining: keeper.remaining,
		Running:   keeper.running,
		Finished:  keeper.finished,
		Editing:   keeper.editing,
		Draft:     keeper.draft,
	}
}

func (keeper *TimeKeeper) emitLocked(eventType EventType) {
	snapshot := keeper.snapshotLocked()
	event := Event{
		Type:     eventType,
		State:    snapshot.State,
		Snapshot: snapshot,
		At:       time.Now(),
	}
	for _, ch := range keeper.events {
		select {
		case ch <- event:
		default:
		}
	}
}
