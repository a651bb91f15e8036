package platform

import (
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

const (
	beepSampleRate = beep.SampleRate(44100)
	beepFrequency  = 880.0
	beepLength     = 180 * time.Millisecond
)

var (
	speakerOnce sync.Once
	speakerErr  error
)

// SpeakerBeeper plays a short sine tone through the default audio device.
type SpeakerBeeper struct {
	sampleRate beep.SampleRate
	frequency  float64
	length     time.Duration
	volume     float64
}

// NewSpeakerBeeper initialises the audio device once per process.
func NewSpeakerBeeper() (*SpeakerBeeper, error) {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(beepSampleRate, beepSampleRate.N(time.Second/10))
	})
	if speakerErr != nil {
		return nil, fmt.Errorf("init speaker: %w", speakerErr)
	}
	return &SpeakerBeeper{
		sampleRate: beepSampleRate,
		frequency:  beepFrequency,
		length:     beepLength,
		volume:     -1,
	}, nil
}

// Beep queues one tone and returns immediately.
func (beeper *SpeakerBeeper) Beep() error {
	tone := beep.Take(beeper.sampleRate.N(beeper.length), sineTone(beeper.sampleRate, beeper.frequency))
	speaker.Play(&effects.Volume{
		Streamer: tone,
		Base:     2,
		Volume:   beeper.volume,
	})
	return nil
}

func sineTone(sampleRate beep.SampleRate, frequency float64) beep.Streamer {
	step := frequency / float64(sampleRate)
	position := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			value := math.Sin(2 * math.Pi * step * float64(position))
			samples[i][0] = value
			samples[i][1] = value
			position++
		}
		return len(samples), true
	})
}

// TerminalBell rings the terminal bell by writing BEL to Writer.
type TerminalBell struct {
	Writer io.Writer
}

// Beep writes a single BEL byte.
func (bell TerminalBell) Beep() error {
	if bell.Writer == nil {
		return nil
	}
	_, err := bell.Writer.Write([]byte{'\a'})
	return err
}
