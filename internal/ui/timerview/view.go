// Package timerview renders the countdown section of the main window and
// forwards user actions to a TimeKeeper.
package timerview

import (
	"context"
	"fmt"
	"image/color"

	"countertimer/internal/core/timekeeper"
	"countertimer/internal/ui/animation"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// View displays a TimeKeeper. Methods other than Watch must be called on the
// Fyne UI goroutine.
type View struct {
	keeper    *timekeeper.TimeKeeper
	face      *clockFace
	entry     *timeEntry
	presetRow *fyne.Container
	presets   []int
	buttons   []*widget.Button
	toggle    *widget.Button
	reset     *widget.Button
	pulse     *animation.Engine
	pulsing   bool
	dimmed    bool
	container *fyne.Container
}

// New builds the timer section for keeper.
func New(keeper *timekeeper.TimeKeeper) *View {
	view := &View{keeper: keeper}

	view.face = newClockFace(theme.Color(theme.ColorNameForeground), view.beginEdit)
	view.entry = newTimeEntry()
	view.entry.onCommit = view.commitEdit
	view.entry.onCancel = view.cancelEdit
	view.entry.OnChanged = func(text string) {
		keeper.SetDraft(text)
	}
	view.entry.Hide()

	view.presetRow = container.NewHBox()
	view.toggle = widget.NewButton("Start", view.Toggle)
	view.reset = widget.NewButton("Reset", func() {
		keeper.Reset()
		view.Refresh()
	})

	view.pulse = animation.New(animation.DefaultConfig(), func(on bool) {
		fyne.Do(func() {
			view.dimmed = !on
			view.Refresh()
		})
	})

	title := widget.NewLabelWithStyle("Timer", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	view.container = container.NewVBox(
		title,
		container.NewStack(view.face, view.entry),
		container.NewCenter(view.presetRow),
		container.NewCenter(container.NewHBox(view.toggle, view.reset)),
	)

	view.SetPresets(keeper.Config().Presets)
	view.Refresh()
	return view
}

// Content returns the canvas object to place in a window.
func (view *View) Content() fyne.CanvasObject {
	return view.container
}

// Watch re-renders on every TimeKeeper event until the keeper is closed.
func (view *View) Watch(events <-chan timekeeper.Event) {
	go func() {
		for range events {
			fyne.Do(view.Refresh)
		}
		view.pulse.Stop()
	}()
}

// Toggle starts or stops the countdown.
func (view *View) Toggle() {
	view.keeper.Toggle()
	view.Refresh()
}

// SetPresets rebuilds the preset button row.
func (view *View) SetPresets(presets []int) {
	view.presets = append([]int(nil), presets...)
	view.buttons = view.buttons[:0]
	objects := make([]fyne.CanvasObject, 0, len(presets))
	for _, minutes := range view.presets {
		minutes := minutes
		button := widget.NewButton(fmt.Sprintf("%dm", minutes), func() {
			view.keeper.SelectPreset(minutes)
			view.Refresh()
		})
		view.buttons = append(view.buttons, button)
		objects = append(objects, button)
	}
	view.presetRow.Objects = objects
	view.presetRow.Refresh()
	view.Refresh()
}

// Refresh redraws every widget from the current TimeKeeper snapshot.
func (view *View) Refresh() {
	snapshot := view.keeper.Snapshot()

	view.updatePulse(snapshot.Finished)
	view.face.set(snapshot.Display(), view.faceColor(snapshot.Finished))

	if snapshot.Editing {
		view.showEditor(snapshot.Draft)
	} else {
		view.hideEditor()
	}

	switch {
	case snapshot.Running:
		view.toggle.SetText("Stop")
		view.toggle.Importance = widget.MediumImportance
		view.reset.Hide()
	case snapshot.Finished:
		view.toggle.SetText("Restart")
		view.toggle.Importance = widget.HighImportance
		view.reset.Show()
	default:
		view.toggle.SetText("Start")
		view.toggle.Importance = widget.HighImportance
		view.reset.Show()
	}
	view.toggle.Refresh()

	for i, button := range view.buttons {
		importance := widget.MediumImportance
		if snapshot.Total == view.presets[i]*60 && !snapshot.Running {
			importance = widget.HighImportance
		}
		if button.Importance != importance {
			button.Importance = importance
			button.Refresh()
		}
	}
}

func (view *View) beginEdit() {
	view.keeper.BeginEdit()
	view.Refresh()
}

// commitEdit ignores ErrInvalidTime: an unparseable entry simply closes the
// editor and the previous duration stays on the clock.
func (view *View) commitEdit(text string) {
	_ = view.keeper.CommitEdit(text)
	view.Refresh()
}

func (view *View) cancelEdit() {
	view.keeper.CancelEdit()
	view.Refresh()
}

func (view *View) showEditor(draft string) {
	if view.entry.active {
		return
	}
	view.entry.active = true
	view.entry.SetText(draft)
	view.face.Hide()
	view.entry.Show()
	if app := fyne.CurrentApp(); app != nil {
		if canvas := app.Driver().CanvasForObject(view.entry); canvas != nil {
			canvas.Focus(view.entry)
		}
	}
}

func (view *View) hideEditor() {
	view.entry.active = false
	if view.entry.Visible() {
		view.entry.Hide()
	}
	if !view.face.Visible() {
		view.face.Show()
	}
}

func (view *View) updatePulse(finished bool) {
	if finished == view.pulsing {
		return
	}
	view.pulsing = finished
	if finished {
		view.pulse.Start(context.Background())
		return
	}
	view.pulse.Stop()
	view.dimmed = false
}

func (view *View) faceColor(finished bool) color.Color {
	if !finished {
		return theme.Color(theme.ColorNameForeground)
	}
	if view.dimmed {
		r, g, b, _ := theme.Color(theme.ColorNameError).RGBA()
		return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 0x70}
	}
	return theme.Color(theme.ColorNameError)
}
