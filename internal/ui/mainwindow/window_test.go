package mainwindow

import (
	"testing"
	"time"

	"countertimer/internal/core/model"
	"countertimer/internal/core/timekeeper"
	"countertimer/internal/ui/counterview"
	"countertimer/internal/ui/timerview"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
)

type idleTicker struct{}

type idleSubscription struct{}

func (idleSubscription) Stop() {}

func (idleTicker) Every(_ time.Duration, _ func()) timekeeper.Subscription {
	return idleSubscription{}
}

func TestWindow_Shortcuts(t *testing.T) {
	app := test.NewTempApp(t)
	app.Settings().SetTheme(theme.DefaultTheme())
	keeper := timekeeper.New(model.DefaultTimeKeeperConfig(), timekeeper.Config{Ticker: idleTicker{}})
	defer keeper.Close()

	counter := counterview.New()
	mainWindow := New(app, "CounterTimer", counter, timerview.New(keeper), false)
	defer mainWindow.Window().Close()

	mainWindow.handleRune('=')
	mainWindow.handleRune('+')
	mainWindow.handleRune('-')
	assert.Equal(t, 1, counter.Value())

	mainWindow.handleRune(' ')
	assert.True(t, keeper.Snapshot().Running)
	mainWindow.handleRune(' ')
	assert.False(t, keeper.Snapshot().Running)

	mainWindow.handleRune('x')
	assert.Equal(t, 1, counter.Value())
}
