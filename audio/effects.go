package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/transporters/core"
	"github.com/lixenwraith/transporters/parameter"
)

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// newEnvelope wraps s, ending the stream after duration
func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	if remaining := e.totalSamples - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if left := e.totalSamples - e.position; left < e.releaseSamples {
			vol = float64(left) / float64(e.releaseSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newTone returns a shaped sine blip at freq Hz
func newTone(rate beep.SampleRate, freq float64, duration time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, err
	}
	edge := duration / 4
	shaped := newEnvelope(sine, duration, edge, edge, rate)
	return &effects.Volume{Streamer: shaped, Base: 2, Volume: parameter.EffectVolume}, nil
}

// newSound builds a fresh streamer for a sound type
func newSound(rate beep.SampleRate, sound core.SoundType) (beep.Streamer, error) {
	switch sound {
	case core.SoundTurn:
		return newTone(rate, parameter.TurnToneHz, parameter.TurnToneDuration)
	case core.SoundDrop:
		return newTone(rate, parameter.DropToneHz, parameter.DropToneDuration)
	}
	return nil, nil
}
