package counterview

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
)

func TestView_ButtonsDriveCounter(t *testing.T) {
	app := test.NewTempApp(t)
	// the test theme has no bold monospace face
	app.Settings().SetTheme(theme.DefaultTheme())
	view := New()
	window := test.NewWindow(view.Content())
	defer window.Close()

	test.Tap(view.plus)
	test.Tap(view.plus)
	test.Tap(view.minus)
	assert.Equal(t, 1, view.Value())
	assert.Equal(t, "1", view.Text())

	test.Tap(view.reset)
	test.Tap(view.minus)
	assert.Equal(t, "-1", view.Text())
}
