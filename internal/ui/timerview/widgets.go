package timerview

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

const clockTextSize = 48

// clockFace is the MM:SS readout. Tapping it opens the editor.
type clockFace struct {
	widget.BaseWidget
	text     *canvas.Text
	onTapped func()
}

func newClockFace(textColor color.Color, onTapped func()) *clockFace {
	text := canvas.NewText("00:00", textColor)
	text.Alignment = fyne.TextAlignCenter
	text.TextSize = clockTextSize
	text.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}

	face := &clockFace{text: text, onTapped: onTapped}
	face.ExtendBaseWidget(face)
	return face
}

func (face *clockFace) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(face.text)
}

func (face *clockFace) Tapped(*fyne.PointEvent) {
	if face.onTapped != nil {
		face.onTapped()
	}
}

func (face *clockFace) set(text string, textColor color.Color) {
	if face.text.Text == text && face.text.Color == textColor {
		return
	}
	face.text.Text = text
	face.text.Color = textColor
	face.text.Refresh()
}

// timeEntry is the inline editor shown in place of the clock face. Enter
// and focus loss commit, Escape cancels.
type timeEntry struct {
	widget.Entry
	active   bool
	onCommit func(string)
	onCancel func()
}

func newTimeEntry() *timeEntry {
	entry := &timeEntry{}
	entry.ExtendBaseWidget(entry)
	entry.SetPlaceHolder("MM:SS")
	entry.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	entry.OnSubmitted = func(text string) {
		entry.finish(func() {
			if entry.onCommit != nil {
				entry.onCommit(text)
			}
		})
	}
	return entry
}

func (entry *timeEntry) TypedKey(key *fyne.KeyEvent) {
	if key.Name == fyne.KeyEscape {
		entry.finish(func() {
			if entry.onCancel != nil {
				entry.onCancel()
			}
		})
		return
	}
	entry.Entry.TypedKey(key)
}

func (entry *timeEntry) FocusLost() {
	entry.Entry.FocusLost()
	text := entry.Text
	entry.finish(func() {
		if entry.onCommit != nil {
			entry.onCommit(text)
		}
	})
}

// finish runs action once per edit session.
func (entry *timeEntry) finish(action func()) {
	if !entry.active {
		return
	}
	entry.active = false
	action()
}
