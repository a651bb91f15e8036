package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"countertimer/internal/alarm"
	"countertimer/internal/core/counter"
	"countertimer/internal/core/timekeeper"
	"countertimer/internal/platform"
	"countertimer/internal/prefs"
	"countertimer/internal/storage"
	"countertimer/internal/tui"
)

const appName = "CounterTimer"

func main() {
	os.Exit(run())
}

func run() int {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "countertimer-tui: load .env: %v\n", err)
	}

	configDir := flag.String("config-dir", os.Getenv("COUNTERTIMER_CONFIG_DIR"), "settings directory (optional)")
	prefsPath := flag.String("prefs", prefs.DefaultPath(), "terminal preferences path (optional)")
	theme := flag.String("theme", "", "override theme name (optional)")
	flag.Parse()

	dir := *configDir
	if dir == "" {
		resolved, err := storage.DefaultDir(appName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "countertimer-tui: %v\n", err)
			return 1
		}
		dir = resolved
	}

	settings, err := storage.LoadSettings(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "countertimer-tui: %v\n", err)
	}

	userPrefs, err := prefs.Load(*prefsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "countertimer-tui: %v\n", err)
	}
	if *theme != "" {
		userPrefs.Theme = *theme
	}

	var beeper alarm.Beeper = alarm.Silent{}
	if settings.SoundEnabled && os.Getenv("COUNTERTIMER_MUTE") != "1" {
		beeper = platform.TerminalBell{Writer: os.Stderr}
	}

	keeper := timekeeper.New(settings.TimeKeeperConfig(), timekeeper.Config{
		Alarm: alarm.New(beeper, settings.AlarmConfig()),
	})
	defer keeper.Close()

	model := tui.New(tui.Options{
		Keeper:    keeper,
		Counter:   counter.New(),
		ThemeName: userPrefs.Theme,
		ShowHelp:  userPrefs.ShowHelp,
		PrefsPath: *prefsPath,
	})

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "countertimer-tui: %v\n", err)
		return 1
	}
	return 0
}
