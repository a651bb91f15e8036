package timekeeper

import (
	"testing"
	"time"

	"countertimer/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKeeper(t *testing.T) (*TimeKeeper, *fakeTicker, *countingAlarm) {
	t.Helper()
	ticker := &fakeTicker{}
	alarm := &countingAlarm{}
	keeper := New(model.DefaultTimeKeeperConfig(), Config{Ticker: ticker, Alarm: alarm})
	t.Cleanup(keeper.Close)
	return keeper, ticker, alarm
}

func TestNew_Defaults(t *testing.T) {
	keeper, _, _ := newTestKeeper(t)
	snapshot := keeper.Snapshot()
	assert.Equal(t, StateIdle, snapshot.State)
	assert.Equal(t, 300, snapshot.Total)
	assert.Equal(t, 300, snapshot.Remaining)
	assert.Equal(t, "05:00", snapshot.Display())
}

func TestStart_RegistersOneSecondTick(t *testing.T) {
	keeper, ticker, _ := newTestKeeper(t)
	keeper.Start()

	require.Equal(t, 1, ticker.live())
	assert.Equal(t, []time.Duration{time.Second}, ticker.intervals)
	assert.Equal(t, StateRunning, keeper.Snapshot().State)

	keeper.Start()
	assert.Equal(t, 1, ticker.live(), "second Start must not register another tick")
}

func TestTick_Decrements(t *testing.T) {
	keeper, ticker, _ := newTestKeeper(t)
	keeper.Start()
	ticker.fireN(3)

	snapshot := keeper.Snapshot()
	assert.Equal(t, 297, snapshot.Remaining)
	assert.Equal(t, "04:57", snapshot.Display())
}

func TestStart_NoopWhenTotalIsZero(t *testing.T) {
	keeper, ticker, _ := newTestKeeper(t)
	keeper.mu.Lock()
	keeper.total = 0
	keeper.remaining = 0
	keeper.mu.Unlock()

	keeper.Start()

	snapshot := keeper.Snapshot()
	assert.False(t, snapshot.Running)
	assert.Equal(t, 0, ticker.live())
}

func TestOneSecondRun_FinishesAndRingsOnce(t *testing.T) {
	keeper, ticker, alarm := newTestKeeper(t)
	require.NoError(t, editTo(keeper, "0:01"))
	require.Equal(t, 1, keeper.Snapshot().Total)

	keeper.Start()
	ticker.fire()

	snapshot := keeper.Snapshot()
	assert.Equal(t, StateFinished, snapshot.State)
	assert.Equal(t, 0, snapshot.Remaining)
	assert.False(t, snapshot.Running)
	assert.True(t, snapshot.Finished)
	assert.Equal(t, 1, alarm.count())
	assert.Equal(t, 0, ticker.live())
	assert.Equal(t, 1, ticker.last().stopped, "subscription released exactly once")

	keeper.Tick()
	ticker.fire()
	assert.Equal(t, 0, keeper.Snapshot().Remaining)
	assert.Equal(t, 1, alarm.count())
}

func TestStart_AfterFinishRestartsFromTotal(t *testing.T) {
	keeper, ticker, _ := newTestKeeper(t)
	keeper.SelectPreset(5)
	keeper.Start()
	ticker.fireN(300)
	require.True(t, keeper.Snapshot().Finished)

	keeper.Start()
	snapshot := keeper.Snapshot()
	assert.True(t, snapshot.Running)
	assert.False(t, snapshot.Finished)
	assert.Equal(t, 300, snapshot.Remaining)
}

func TestStop_KeepsRemainingAndResumes(t *testing.T) {
	keeper, ticker, _ := newTestKeeper(t)
	keeper.Start()
	ticker.fireN(10)
	keeper.Stop()

	snapshot := keeper.Snapshot()
	assert.Equal(t, StateIdle, snapshot.State)
	assert.Equal(t, 290, snapshot.Remaining)
	assert.Equal(t, 300, snapshot.DisplaySeconds())
	assert.Equal(t, 0, ticker.live())

	keeper.Stop()
	assert.Equal(t, 1, ticker.last().stopped)

	keeper.Start()
	ticker.fire()
	assert.Equal(t, 289, keeper.Snapshot().Remaining)
}

func TestStop_OnFinishedStaysFinished(t *testing.T) {
	keeper, ticker, _ := newTestKeeper(t)
	require.NoError(t, editTo(keeper, "0:02"))
	keeper.Start()
	ticker.fireN(2)

	keeper.Stop()
	assert.Equal(t, StateFinished, keeper.Snapshot().State)
}

func TestSelectPreset_WhileRunningStopsRun(t *testing.T) {
	keeper, ticker, _ := newTestKeeper(t)
	keeper.Start()
	ticker.fireN(5)

	keeper.SelectPreset(10)

	snapshot := keeper.Snapshot()
	assert.False(t, snapshot.Running)
	assert.False(t, snapshot.Finished)
	assert.Equal(t, 600, snapshot.Total)
	assert.Equal(t, 600, snapshot.Remaining)
	assert.Equal(t, 0, ticker.live())

	ticker.fire()
	assert.Equal(t, 600, keeper.Snapshot().Remaining)
}

func TestSelectPreset_ClampsToBounds(t *testing.T) {
	keeper, _, _ := newTestKeeper(t)
	keeper.SelectPreset(120)
	assert.Equal(t, model.MaxSeconds, keeper.Snapshot().Total)

	keeper.SelectPreset(0)
	assert.Equal(t, model.MinSeconds, keeper.Snapshot().Total)
}

func TestReset_FromEveryState(t *testing.T) {
	setups := map[string]func(*TimeKeeper, *fakeTicker){
		"idle": func(*TimeKeeper, *fakeTicker) {},
		"running": func(keeper *TimeKeeper, ticker *fakeTicker) {
			keeper.Start()
			ticker.fireN(7)
		},
		"stopped": func(keeper *TimeKeeper, ticker *fakeTicker) {
			keeper.Start()
			ticker.fireN(7)
			keeper.Stop()
		},
		"finished": func(keeper *TimeKeeper, ticker *fakeTicker) {
			_ = editTo(keeper, "0:03")
			keeper.Start()
			ticker.fireN(3)
		},
		"editing": func(keeper *TimeKeeper, _ *fakeTicker) {
			keeper.BeginEdit()
		},
	}

	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			keeper, ticker, _ := newTestKeeper(t)
			setup(keeper, ticker)

			keeper.Reset()

			snapshot := keeper.Snapshot()
			assert.Equal(t, StateIdle, snapshot.State)
			assert.Equal(t, snapshot.Total, snapshot.Remaining)
			assert.False(t, snapshot.Finished)
			assert.False(t, snapshot.Editing)
			assert.False(t, snapshot.Running)
			assert.Equal(t, 0, ticker.live())
		})
	}
}

func TestBeginEdit_SeedsDraftWithDisplay(t *testing.T) {
	keeper, _, _ := newTestKeeper(t)
	keeper.SelectPreset(25)
	keeper.BeginEdit()

	snapshot := keeper.Snapshot()
	assert.Equal(t, StateEditing, snapshot.State)
	assert.Equal(t, "25:00", snapshot.Draft)
}

func TestBeginEdit_IgnoredWhileRunning(t *testing.T) {
	keeper, _, _ := newTestKeeper(t)
	keeper.Start()
	keeper.BeginEdit()

	snapshot := keeper.Snapshot()
	assert.False(t, snapshot.Editing)
	assert.Equal(t, StateRunning, snapshot.State)
}

func TestCommitEdit_Clamps(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"0", 1},
		{"0:00", 1},
		{"99999", 5400},
		{"90:01", 5400},
		{"12:34", 754},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			keeper, _, _ := newTestKeeper(t)
			require.NoError(t, editTo(keeper, tt.text))
			snapshot := keeper.Snapshot()
			assert.Equal(t, tt.want, snapshot.Total)
			assert.Equal(t, tt.want, snapshot.Remaining)
			assert.Equal(t, StateIdle, snapshot.State)
		})
	}
}

func TestCommitEdit_InvalidLeavesDurationAlone(t *testing.T) {
	keeper, ticker, _ := newTestKeeper(t)
	keeper.Start()
	ticker.fireN(4)
	keeper.Stop()
	before := keeper.Snapshot()

	keeper.BeginEdit()
	err := keeper.CommitEdit("5:60")
	require.ErrorIs(t, err, ErrInvalidTime)

	after := keeper.Snapshot()
	assert.False(t, after.Editing)
	assert.Equal(t, before.Total, after.Total)
	assert.Equal(t, before.Remaining, after.Remaining)
}

func TestCommitEdit_ClearsFinished(t *testing.T) {
	keeper, ticker, _ := newTestKeeper(t)
	require.NoError(t, editTo(keeper, "0:01"))
	keeper.Start()
	ticker.fire()
	require.Equal(t, StateFinished, keeper.Snapshot().State)

	require.NoError(t, editTo(keeper, "2"))
	snapshot := keeper.Snapshot()
	assert.False(t, snapshot.Finished)
	assert.Equal(t, 120, snapshot.Remaining)
}

func TestCommitEdit_WithoutBeginIsIgnored(t *testing.T) {
	keeper, _, _ := newTestKeeper(t)
	require.NoError(t, keeper.CommitEdit("10"))
	assert.Equal(t, 300, keeper.Snapshot().Total)
}

func TestCancelEdit_ReturnsToPriorState(t *testing.T) {
	keeper, ticker, _ := newTestKeeper(t)
	require.NoError(t, editTo(keeper, "0:01"))
	keeper.Start()
	ticker.fire()

	keeper.BeginEdit()
	keeper.SetDraft("42")
	keeper.CancelEdit()

	snapshot := keeper.Snapshot()
	assert.Equal(t, StateFinished, snapshot.State)
	assert.Equal(t, "", snapshot.Draft)
	assert.Equal(t, 1, snapshot.Total)
}

func TestStart_DiscardsOpenEdit(t *testing.T) {
	keeper, _, _ := newTestKeeper(t)
	keeper.BeginEdit()
	keeper.Start()

	snapshot := keeper.Snapshot()
	assert.False(t, snapshot.Editing)
	assert.True(t, snapshot.Running)
}

func TestTick_IgnoredWhenNotRunning(t *testing.T) {
	keeper, _, alarm := newTestKeeper(t)
	keeper.Tick()
	assert.Equal(t, 300, keeper.Snapshot().Remaining)
	assert.Equal(t, 0, alarm.count())
}

func TestTick_StaleSubscriptionIsDropped(t *testing.T) {
	keeper, ticker, _ := newTestKeeper(t)
	keeper.Start()
	stale := ticker.last()
	keeper.Stop()
	keeper.Start()

	stale.fn()
	assert.Equal(t, 300, keeper.Snapshot().Remaining)

	ticker.last().fn()
	assert.Equal(t, 299, keeper.Snapshot().Remaining)
}

func TestClose_ReleasesSubscriptionAndObservers(t *testing.T) {
	ticker := &fakeTicker{}
	keeper := New(model.DefaultTimeKeeperConfig(), Config{Ticker: ticker})
	events := keeper.Subscribe(4)
	keeper.Start()
	subscription := ticker.last()

	keeper.Close()
	keeper.Close()

	assert.Equal(t, 1, subscription.stopped)
	subscription.fn()
	assert.Equal(t, 300, keeper.Snapshot().Remaining)

	for range events {
	}
	_, open := <-keeper.Subscribe(1)
	assert.False(t, open)
}

func TestSubscribe_ReceivesEvents(t *testing.T) {
	keeper, ticker, _ := newTestKeeper(t)
	require.NoError(t, editTo(keeper, "0:02"))
	events := keeper.Subscribe(16)

	keeper.Start()
	ticker.fireN(2)

	var types []EventType
	for len(events) > 0 {
		types = append(types, (<-events).Type)
	}
	assert.Equal(t, []EventType{EventStateChange, EventTick, EventFinished}, types)
}

func TestUpdate_DispatchesMessages(t *testing.T) {
	keeper, ticker, _ := newTestKeeper(t)

	snapshot, err := keeper.Update(SelectPresetMsg{Minutes: 15})
	require.NoError(t, err)
	assert.Equal(t, 900, snapshot.Total)

	snapshot, _ = keeper.Update(ToggleMsg{})
	assert.True(t, snapshot.Running)
	require.Equal(t, 1, ticker.live())

	snapshot, _ = keeper.Update(TickMsg{})
	assert.Equal(t, 899, snapshot.Remaining)

	snapshot, _ = keeper.Update(ToggleMsg{})
	assert.False(t, snapshot.Running)

	keeper.Update(BeginEditMsg{})
	keeper.Update(DraftMsg{Text: "abc"})
	_, err = keeper.Update(CommitEditMsg{Text: "abc"})
	assert.ErrorIs(t, err, ErrInvalidTime)

	snapshot, _ = keeper.Update(ResetMsg{})
	assert.Equal(t, 900, snapshot.Remaining)
}

func TestUpdateConfig_KeepsCurrentRun(t *testing.T) {
	keeper, ticker, _ := newTestKeeper(t)
	keeper.Start()
	ticker.fireN(2)

	config := model.DefaultTimeKeeperConfig()
	config.Presets = []int{1, 2}
	keeper.UpdateConfig(config)

	snapshot := keeper.Snapshot()
	assert.True(t, snapshot.Running)
	assert.Equal(t, 298, snapshot.Remaining)
	assert.Equal(t, []int{1, 2}, keeper.Config().Presets)
}

func TestUpdateConfig_IdleAtDefaultAdoptsNewDefault(t *testing.T) {
	keeper, _, _ := newTestKeeper(t)

	config := model.DefaultTimeKeeperConfig()
	config.DefaultSeconds = 600
	keeper.UpdateConfig(config)

	snapshot := keeper.Snapshot()
	assert.Equal(t, StateIdle, snapshot.State)
	assert.Equal(t, 600, snapshot.Total)
	assert.Equal(t, 600, snapshot.Remaining)
	assert.Equal(t, "10:00", snapshot.Display())
}

func TestUpdateConfig_KeepsChosenOrPausedDuration(t *testing.T) {
	config := model.DefaultTimeKeeperConfig()
	config.DefaultSeconds = 600

	keeper, _, _ := newTestKeeper(t)
	require.NoError(t, editTo(keeper, "2:00"))
	keeper.UpdateConfig(config)
	assert.Equal(t, 120, keeper.Snapshot().Total)

	paused, ticker, _ := newTestKeeper(t)
	paused.Start()
	ticker.fireN(3)
	paused.Stop()
	paused.UpdateConfig(config)
	snapshot := paused.Snapshot()
	assert.Equal(t, 300, snapshot.Total)
	assert.Equal(t, 297, snapshot.Remaining)

	editing, _, _ := newTestKeeper(t)
	editing.BeginEdit()
	editing.UpdateConfig(config)
	assert.Equal(t, 300, editing.Snapshot().Total, "an open edit keeps the old duration")
}

func TestSystemTicker_DeliversUntilStopped(t *testing.T) {
	fired := make(chan struct{}, 16)
	subscription := SystemTicker.Every(5*time.Millisecond, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("ticker never fired")
	}
	subscription.Stop()
	subscription.Stop()
}

func editTo(keeper *TimeKeeper, text string) error {
	keeper.BeginEdit()
	return keeper.CommitEdit(text)
}
