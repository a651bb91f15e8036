package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"countertimer/internal/alarm"
	"countertimer/internal/core/timekeeper"
	"countertimer/internal/platform"
	"countertimer/internal/storage"
	"countertimer/internal/ui/counterview"
	"countertimer/internal/ui/mainwindow"
	"countertimer/internal/ui/preferences"
	"countertimer/internal/ui/timerview"
	"countertimer/internal/ui/tray"
	"countertimer/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/joho/godotenv"
)

const (
	appName = "CounterTimer"
	appID   = "com.countertimer.app"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("load .env: %v", err)
	}

	configDir := flag.String("config-dir", os.Getenv("COUNTERTIMER_CONFIG_DIR"), "settings directory (optional)")
	flag.Parse()

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if signalErr := platform.SignalRunning(appName); signalErr != nil {
			log.Printf("single instance: %v", signalErr)
		}
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	settingsDir := *configDir
	if settingsDir == "" {
		settingsDir, err = storage.DefaultDir(appName)
		if err != nil {
			log.Printf("settings dir: %v", err)
		}
	}

	settings := preferences.DefaultSettings()
	if settingsDir != "" {
		loaded, loadErr := storage.LoadSettings(settingsDir)
		if loadErr != nil {
			log.Printf("load settings: %v", loadErr)
		}
		settings = loaded
	}

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(resources.MustIcon(resources.AppIcon))

	muted := os.Getenv("COUNTERTIMER_MUTE") == "1"
	keeper := timekeeper.New(settings.TimeKeeperConfig(), timekeeper.Config{})
	keeper.SetAlarm(newAlarm(fyneApp, settings, muted))

	counterView := counterview.New()
	timerView := timerview.New(keeper)
	timerView.Watch(keeper.Subscribe(5))

	desktopApp, hasTray := fyneApp.(desktop.App)
	if !hasTray {
		log.Printf("system tray unsupported on this platform")
	}
	mainWindow := mainwindow.New(fyneApp, appName, counterView, timerView, hasTray)

	var trayManager *tray.Manager
	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		settings = updated
		if settingsDir != "" {
			if err := storage.SaveSettings(settingsDir, settings); err != nil {
				log.Printf("save settings: %v", err)
			}
		}
		keeper.UpdateConfig(settings.TimeKeeperConfig())
		keeper.SetAlarm(newAlarm(fyneApp, settings, muted))
		timerView.SetPresets(settings.Presets)
		if trayManager != nil {
			trayManager.SetPresets(settings.Presets)
		}
	})

	if hasTray {
		trayManager = tray.New(desktopApp, settings.Presets, tray.Callbacks{
			OnShow: mainWindow.Show,
			OnToggle: func() {
				timerView.Toggle()
			},
			OnReset: func() {
				keeper.Reset()
			},
			OnPreset: func(minutes int) {
				keeper.SelectPreset(minutes)
			},
			OnPreferences: prefsWindow.Show,
			OnQuit: func() {
				keeper.Close()
				fyneApp.Quit()
			},
		})
		desktopApp.SetSystemTrayIcon(resources.MustIcon(resources.AppIcon))
		trayManager.SetStatus(keeper.Snapshot().Display())

		events := keeper.Subscribe(5)
		go func() {
			for event := range events {
				snapshot := event.Snapshot
				fyne.Do(func() {
					trayManager.SetStatus(trayStatus(snapshot))
					trayManager.SetRunning(snapshot.Running)
				})
			}
		}()
	}

	go guard.Serve(func() {
		fyne.Do(mainWindow.Show)
	})

	fyneApp.Lifecycle().SetOnStopped(keeper.Close)
	mainWindow.Show()
	fyneApp.Run()
}

func newAlarm(fyneApp fyne.App, settings preferences.Settings, muted bool) *alarm.Alarm {
	var beeper alarm.Beeper = alarm.Silent{}
	if settings.SoundEnabled && !muted {
		speakerBeeper, err := platform.NewSpeakerBeeper()
		if err != nil {
			log.Printf("audio unavailable, alarm is silent: %v", err)
		} else {
			beeper = speakerBeeper
		}
	}

	ring := alarm.New(beeper, settings.AlarmConfig())
	if settings.NotifyOnFinish {
		ring.SetOnRing(func() {
			fyne.Do(func() {
				fyneApp.SendNotification(fyne.NewNotification(appName, "Time's up!"))
			})
		})
	}
	return ring
}

func trayStatus(snapshot timekeeper.Snapshot) string {
	switch {
	case snapshot.Running:
		return snapshot.Display() + " left"
	case snapshot.Finished:
		return "finished"
	default:
		return snapshot.Display()
	}
}
