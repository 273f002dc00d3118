package audio

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/pkg/errors"
)

const (
	sampleRate = beep.SampleRate(44100)
)

var (
	initialized bool
	muted       atomic.Bool
)

// Init initializes the audio system
func Init() error {
	if initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Second/30))
	if err != nil {
		return errors.Wrap(err, "init speaker")
	}

	initialized = true
	return nil
}

// Close shuts down the audio system
func Close() {
	if initialized {
		speaker.Close()
		initialized = false
	}
}

// SetMuted silences or restores every sound
func SetMuted(m bool) {
	muted.Store(m)
}

// ToggleMute flips the mute flag and returns the new value
func ToggleMute() bool {
	m := !muted.Load()
	muted.Store(m)
	return m
}

// Muted reports whether sounds are silenced
func Muted() bool {
	return muted.Load()
}

func enabled() bool {
	return initialized && !muted.Load()
}

// squareWave generates a square wave tone (more retro/8-bit feel)
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, false
			}
			val := 0.2 // volume
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}

// PlayPaddleHit plays the sound for ball hitting a paddle
func PlayPaddleHit() {
	if !enabled() {
		return
	}
	speaker.Play(squareWave(880, 50*time.Millisecond))
}

// PlayWallBounce plays the sound for ball hitting top/bottom wall
func PlayWallBounce() {
	if !enabled() {
		return
	}
	speaker.Play(squareWave(440, 30*time.Millisecond))
}

// PlayPointWon plays a rising arpeggio when the player scores
func PlayPointWon() {
	if !enabled() {
		return
	}
	speaker.Play(beep.Seq(
		squareWave(330, 100*time.Millisecond),
		squareWave(440, 100*time.Millisecond),
		squareWave(660, 150*time.Millisecond),
	))
}

// PlayPointLost plays a descending tone when the AI scores
func PlayPointLost() {
	if !enabled() {
		return
	}
	speaker.Play(beep.Seq(
		squareWave(660, 100*time.Millisecond),
		squareWave(440, 100*time.Millisecond),
		squareWave(330, 150*time.Millisecond),
	))
}

// PlayServe plays a short blip when a new ball is served
func PlayServe() {
	if !enabled() {
		return
	}
	speaker.Play(squareWave(660, 40*time.Millisecond))
}
