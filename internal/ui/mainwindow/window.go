// Package mainwindow assembles the counter and timer sections into the
// application window and binds the keyboard shortcuts.
package mainwindow

import (
	"countertimer/internal/ui/counterview"
	"countertimer/internal/ui/timerview"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	minWidth  = 340
	minHeight = 480
)

// Window is the main application window.
type Window struct {
	window  fyne.Window
	counter *counterview.View
	timer   *timerview.View
}

// New creates the window. Closing it hides to the tray when hideOnClose is set.
func New(app fyne.App, title string, counter *counterview.View, timer *timerview.View, hideOnClose bool) *Window {
	window := app.NewWindow(title)
	mainWindow := &Window{
		window:  window,
		counter: counter,
		timer:   timer,
	}

	content := container.NewVBox(
		counter.Content(),
		widget.NewSeparator(),
		timer.Content(),
	)
	window.SetContent(container.NewPadded(content))
	window.Resize(fyne.NewSize(minWidth, minHeight))
	window.Canvas().SetOnTypedRune(mainWindow.handleRune)

	if hideOnClose {
		window.SetCloseIntercept(func() {
			window.Hide()
		})
	}
	return mainWindow
}

// Show displays the window and brings it to the front.
func (mainWindow *Window) Show() {
	mainWindow.window.Show()
	mainWindow.window.RequestFocus()
}

// Window exposes the underlying Fyne window.
func (mainWindow *Window) Window() fyne.Window {
	return mainWindow.window
}

// handleRune only sees runes that no focused widget consumed, so typing in
// the time editor never triggers a shortcut.
func (mainWindow *Window) handleRune(r rune) {
	switch r {
	case '-', '_':
		mainWindow.counter.Decrement()
	case '=', '+':
		mainWindow.counter.Increment()
	case ' ':
		mainWindow.timer.Toggle()
	}
}
