// Package counterview renders the counter section of the main window.
package counterview

import (
	"strconv"

	"countertimer/internal/core/counter"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const valueTextSize = 48

// View owns a counter and the widgets that display it. All methods must be
// called on the Fyne UI goroutine.
type View struct {
	counter   *counter.Counter
	value     *canvas.Text
	minus     *widget.Button
	reset     *widget.Button
	plus      *widget.Button
	container *fyne.Container
}

// New creates a counter view starting at zero.
func New() *View {
	view := &View{counter: counter.New()}

	title := widget.NewLabelWithStyle("Counter", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	view.value = canvas.NewText("0", theme.Color(theme.ColorNameForeground))
	view.value.Alignment = fyne.TextAlignCenter
	view.value.TextSize = valueTextSize
	view.value.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}

	view.minus = widget.NewButtonWithIcon("", theme.ContentRemoveIcon(), view.Decrement)
	view.reset = widget.NewButton("Reset", view.Reset)
	view.plus = widget.NewButtonWithIcon("", theme.ContentAddIcon(), view.Increment)

	view.container = container.NewVBox(
		title,
		view.value,
		container.NewCenter(container.NewHBox(view.minus, view.reset, view.plus)),
	)
	return view
}

// Content returns the canvas object to place in a window.
func (view *View) Content() fyne.CanvasObject {
	return view.container
}

// Increment adds one and refreshes the display.
func (view *View) Increment() {
	view.counter.Increment()
	view.refresh()
}

// Decrement subtracts one and refreshes the display.
func (view *View) Decrement() {
	view.counter.Decrement()
	view.refresh()
}

// Reset zeroes the counter and refreshes the display.
func (view *View) Reset() {
	view.counter.Reset()
	view.refresh()
}

// Value returns the current counter value.
func (view *View) Value() int {
	return view.counter.Value()
}

// Text returns the text currently shown.
func (view *View) Text() string {
	return view.value.Text
}

func (view *View) refresh() {
	view.value.Text = strconv.Itoa(view.counter.Value())
	view.value.Refresh()
}
