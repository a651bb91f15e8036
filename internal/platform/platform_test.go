package platform

import (
	"bytes"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortFromName_StableAndInRange(t *testing.T) {
	port := portFromName("CounterTimer")
	assert.Equal(t, port, portFromName("CounterTimer"))
	assert.GreaterOrEqual(t, port, 20000)
	assert.LessOrEqual(t, port, 39999)
}

func TestSingleInstance_SecondLaunchActivatesFirst(t *testing.T) {
	name := fmt.Sprintf("countertimer-test-%d-%d", os.Getpid(), time.Now().UnixNano())

	guard, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	defer guard.Release()

	_, err = AcquireSingleInstance(name)
	require.ErrorIs(t, err, ErrAlreadyRunning)

	activated := make(chan struct{}, 1)
	go guard.Serve(func() { activated <- struct{}{} })

	require.NoError(t, SignalRunning(name))
	select {
	case <-activated:
	case <-time.After(2 * time.Second):
		t.Fatal("running instance was not activated")
	}
}

func TestInstanceGuard_NilIsSafe(t *testing.T) {
	var guard *InstanceGuard
	assert.NoError(t, guard.Release())
	assert.Equal(t, "", guard.Address())
	guard.Serve(nil)
}

func TestTerminalBell_WritesBEL(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, TerminalBell{Writer: &out}.Beep())
	assert.Equal(t, "\a", out.String())
	assert.NoError(t, TerminalBell{}.Beep())
}

func TestSineTone_StaysInRange(t *testing.T) {
	samples := make([][2]float64, 512)
	n, ok := sineTone(beep.SampleRate(8000), 440).Stream(samples)
	require.True(t, ok)
	require.Equal(t, len(samples), n)
	for _, sample := range samples {
		assert.LessOrEqual(t, sample[0], 1.0)
		assert.GreaterOrEqual(t, sample[0], -1.0)
	}
}
