// Package tui provides a Bubble Tea frontend for the counter and timer.
package tui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"countertimer/internal/core/counter"
	"countertimer/internal/core/timekeeper"
	"countertimer/internal/prefs"
)

const (
	pulseInterval = 500 * time.Millisecond
	pulseCycles   = 3
)

// Options configures the terminal frontend.
type Options struct {
	Keeper    *timekeeper.TimeKeeper
	Counter   *counter.Counter
	ThemeName string
	ShowHelp  bool
	PrefsPath string
}

// eventMsg carries a TimeKeeper event into the Bubble Tea loop.
type eventMsg timekeeper.Event

// pulseMsg advances the finished-time blink.
type pulseMsg struct {
	left int
}

// Model is the root Bubble Tea state.
type Model struct {
	keeper    *timekeeper.TimeKeeper
	counter   *counter.Counter
	events    <-chan timekeeper.Event
	prefsPath string

	snapshot timekeeper.Snapshot
	input    textinput.Model
	keys     keyMap
	help     help.Model
	theme    Theme
	styles   Styles
	showHelp bool
	dimmed   bool
	width    int
	notice   string
}

// New creates the model and subscribes to keeper events.
func New(opts Options) Model {
	counterValue := opts.Counter
	if counterValue == nil {
		counterValue = counter.New()
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	input := textinput.New()
	input.Placeholder = "MM:SS"
	input.CharLimit = 8
	input.Width = 8

	theme := GetTheme(opts.ThemeName)

	return Model{
		keeper:    opts.Keeper,
		counter:   counterValue,
		events:    opts.Keeper.Subscribe(16),
		prefsPath: prefsPath,
		snapshot:  opts.Keeper.Snapshot(),
		input:     input,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		theme:     theme,
		styles:    theme.Styles(),
		showHelp:  opts.ShowHelp,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.snapshot.Editing {
			return m.handleEditKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case eventMsg:
		m.snapshot = msg.Snapshot
		cmds := []tea.Cmd{waitForEvent(m.events)}
		if msg.Type == timekeeper.EventFinished {
			m.dimmed = false
			cmds = append(cmds, pulseCmd(pulseCycles*2))
		}
		return m, tea.Batch(cmds...)

	case pulseMsg:
		if !m.snapshot.Finished || msg.left <= 0 {
			m.dimmed = false
			return m, nil
		}
		m.dimmed = !m.dimmed
		return m, pulseCmd(msg.left - 1)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.keeper.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m = m.savePrefs()

	case key.Matches(msg, m.keys.Increment):
		m.counter.Increment()

	case key.Matches(msg, m.keys.Decrement):
		m.counter.Decrement()

	case key.Matches(msg, m.keys.ResetCounter):
		m.counter.Reset()

	case key.Matches(msg, m.keys.Toggle):
		m.keeper.Toggle()

	case key.Matches(msg, m.keys.ResetTimer):
		m.keeper.Reset()

	case key.Matches(msg, m.keys.Edit):
		if m.snapshot.Running {
			return m, nil
		}
		m.keeper.BeginEdit()
		m.input.SetValue(m.keeper.Snapshot().Draft)
		m.input.CursorEnd()
		cmd := m.input.Focus()
		return m.sync(), cmd

	case key.Matches(msg, m.keys.Preset):
		m.selectPreset(msg.String())

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.styles = m.theme.Styles()
		m = m.savePrefs()
	}

	return m.sync(), nil
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		// invalid input leaves the previous duration in place
		_ = m.keeper.CommitEdit(m.input.Value())
		m.input.Blur()
		return m.sync(), nil

	case key.Matches(msg, m.keys.Cancel):
		m.keeper.CancelEdit()
		m.input.Blur()
		return m.sync(), nil

	case msg.Type == tea.KeyCtrlC:
		m.keeper.Close()
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.keeper.SetDraft(m.input.Value())
	return m.sync(), cmd
}

func (m Model) selectPreset(digit string) {
	index, err := strconv.Atoi(digit)
	if err != nil {
		return
	}
	presets := m.keeper.Config().Presets
	if index < 1 || index > len(presets) {
		return
	}
	m.keeper.SelectPreset(presets[index-1])
}

// savePrefs persists the theme and help visibility. A failed write is shown
// in the status line until the next successful save.
func (m Model) savePrefs() Model {
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, ShowHelp: m.showHelp}); err != nil {
		m.notice = "prefs not saved: " + err.Error()
		return m
	}
	m.notice = ""
	return m
}

// sync refreshes the cached snapshot after a synchronous transition so the
// next render does not wait for the event round trip.
func (m Model) sync() Model {
	m.snapshot = m.keeper.Snapshot()
	if !m.snapshot.Finished {
		m.dimmed = false
	}
	return m
}

func waitForEvent(events <-chan timekeeper.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return nil
		}
		return eventMsg(event)
	}
}

func pulseCmd(left int) tea.Cmd {
	return tea.Tick(pulseInterval, func(time.Time) tea.Msg {
		return pulseMsg{left: left}
	})
}
