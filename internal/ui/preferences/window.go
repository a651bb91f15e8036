package preferences

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"countertimer/internal/core/model"
	"countertimer/internal/core/timekeeper"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window     fyne.Window
	settings   Settings
	onSave     func(Settings)
	presets    *widget.Entry
	duration   *widget.Entry
	repeats    *widget.Entry
	sound      *widget.Check
	notify     *widget.Check
	errorLabel *widget.Label
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("CounterTimer Settings")

	presets := widget.NewEntry()
	presets.SetPlaceHolder("5, 10, 15")
	duration := widget.NewEntry()
	duration.SetPlaceHolder("MM:SS")
	repeats := widget.NewEntry()
	repeats.SetPlaceHolder(fmt.Sprintf("1-%d", model.MaxAlarmRepeats))

	sound := widget.NewCheck("Play alarm sound", nil)
	notify := widget.NewCheck("Show notification when the timer ends", nil)

	errorLabel := widget.NewLabel("")
	errorLabel.Hide()

	form := container.NewVBox(
		widget.NewLabelWithStyle("Timer", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewBorder(nil, nil, widget.NewLabel("Presets"), widget.NewLabel("min"), presets),
		container.NewBorder(nil, nil, widget.NewLabel("Default duration"), nil, duration),
		widget.NewLabelWithStyle("Alarm", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewBorder(nil, nil, widget.NewLabel("Beeps"), nil, repeats),
		sound,
		notify,
		errorLabel,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	content := container.NewBorder(nil, buttons, nil, nil, form)
	window.SetContent(content)
	window.Resize(fyne.NewSize(380, 320))

	prefs := &Window{
		window:     window,
		onSave:     onSave,
		presets:    presets,
		duration:   duration,
		repeats:    repeats,
		sound:      sound,
		notify:     notify,
		errorLabel: errorLabel,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.presets.SetText(FormatPresets(settings.Presets))
	prefs.duration.SetText(timekeeper.FormatTime(int(settings.DefaultDuration / time.Second)))
	prefs.repeats.SetText(strconv.Itoa(settings.AlarmRepeats))
	prefs.sound.SetChecked(settings.SoundEnabled)
	prefs.notify.SetChecked(settings.NotifyOnFinish)
	prefs.errorLabel.Hide()
}

func (prefs *Window) handleSave() {
	settings, err := prefs.collect()
	if err != nil {
		prefs.errorLabel.SetText(err.Error())
		prefs.errorLabel.Show()
		return
	}

	prefs.errorLabel.Hide()
	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func (prefs *Window) collect() (Settings, error) {
	settings := prefs.settings

	presets, err := ParsePresets(prefs.presets.Text)
	if err != nil {
		return settings, err
	}
	settings.Presets = presets

	seconds, err := timekeeper.ParseTime(prefs.duration.Text)
	if err != nil || seconds < model.MinSeconds || seconds > model.MaxSeconds {
		return settings, fmt.Errorf("default duration: use MM:SS or minutes, up to %s", timekeeper.FormatTime(model.MaxSeconds))
	}
	settings.DefaultDuration = time.Duration(seconds) * time.Second

	repeats, ok := parsePositiveInt(prefs.repeats.Text)
	if !ok || repeats > model.MaxAlarmRepeats {
		return settings, fmt.Errorf("beeps: use a whole number from 1 to %d", model.MaxAlarmRepeats)
	}
	settings.AlarmRepeats = repeats
	settings.SoundEnabled = prefs.sound.Checked
	settings.NotifyOnFinish = prefs.notify.Checked
	return settings, nil
}

// ParsePresets reads a comma or space separated list of minutes. Duplicates
// are dropped and the result is sorted.
func ParsePresets(text string) ([]int, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == ';'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("presets: at least one value is required")
	}

	seen := make(map[int]bool, len(fields))
	presets := make([]int, 0, len(fields))
	for _, field := range fields {
		minutes, ok := parsePositiveInt(field)
		if !ok || minutes > 90 {
			return nil, fmt.Errorf("presets: %q is not a whole number of minutes between 1 and 90", field)
		}
		if seen[minutes] {
			continue
		}
		seen[minutes] = true
		presets = append(presets, minutes)
	}
	sort.Ints(presets)
	return presets, nil
}

// FormatPresets is the inverse of ParsePresets.
func FormatPresets(presets []int) string {
	parts := make([]string, len(presets))
	for i, minutes := range presets {
		parts[i] = strconv.Itoa(minutes)
	}
	return strings.Join(parts, ", ")
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
