package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"countertimer/internal/core/timekeeper"
)

// View implements tea.Model.
func (m Model) View() string {
	counterPanel := m.styles.Panel.Render(lipgloss.JoinVertical(lipgloss.Center,
		m.styles.Title.Render("Counter"),
		m.styles.Value.Render(strconv.Itoa(m.counter.Value())),
	))

	timerPanel := m.styles.Panel.Render(lipgloss.JoinVertical(lipgloss.Center,
		m.styles.Title.Render("Timer"),
		m.renderClock(),
		m.styles.Label.Render(m.statusLine()),
		m.renderPresets(),
	))

	sections := []string{lipgloss.JoinHorizontal(lipgloss.Top, counterPanel, " ", timerPanel)}
	if m.showHelp {
		sections = append(sections, m.help.FullHelpView(m.keys.FullHelp()))
	} else {
		sections = append(sections, m.help.ShortHelpView(m.keys.ShortHelp()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (m Model) renderClock() string {
	if m.snapshot.Editing {
		return m.input.View()
	}
	text := m.snapshot.Display()
	switch {
	case m.snapshot.Finished && m.dimmed:
		return m.styles.Dimmed.Render(text)
	case m.snapshot.Finished:
		return m.styles.Finished.Render(text)
	default:
		return m.styles.Clock.Render(text)
	}
}

func (m Model) statusLine() string {
	if m.notice != "" {
		return m.notice
	}
	switch m.snapshot.State {
	case timekeeper.StateRunning:
		return "running"
	case timekeeper.StateFinished:
		return "finished"
	case timekeeper.StateEditing:
		return "enter to set, esc to cancel"
	default:
		return "stopped"
	}
}

func (m Model) renderPresets() string {
	presets := m.keeper.Config().Presets
	parts := make([]string, 0, len(presets))
	for i, minutes := range presets {
		label := fmt.Sprintf("%d:%dm", i+1, minutes)
		if !m.snapshot.Running && m.snapshot.Total == minutes*60 {
			parts = append(parts, m.styles.Active.Render(label))
			continue
		}
		parts = append(parts, m.styles.Preset.Render(label))
	}
	return strings.Join(parts, " ")
}
