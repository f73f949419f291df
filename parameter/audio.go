package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 48000

	// AudioBufferDuration determines latency of the speaker
	AudioBufferDuration = 100 * time.Millisecond
)

// Sound effects
const (
	// TurnToneHz is played when an agent reverses at a rail end
	TurnToneHz       = 880.0
	TurnToneDuration = 60 * time.Millisecond

	// DropToneHz is played when a dragged handle is released
	DropToneHz       = 440.0
	DropToneDuration = 40 * time.Millisecond

	// EffectVolume is the beep effects.Volume exponent, base 2
	EffectVolume = -2.0

	// MinSoundGap suppresses bursts when many agents turn in the same tick
	MinSoundGap = 50 * time.Millisecond
)
