package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/transporters/core"
	"github.com/lixenwraith/transporters/engine"
	"github.com/lixenwraith/transporters/parameter"
)

const (
	sampleRate = beep.SampleRate(parameter.AudioSampleRate)
)

// SoundManager plays short feedback tones through a single speaker mixer
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool

	lastPlayed [core.SoundTypeCount]time.Time
	now        func() time.Time
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Initialize sets up the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
// beep has no speaker Close, clearing the mixer stops output
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Play queues a sound effect, dropping repeats within MinSoundGap
func (sm *SoundManager) Play(sound core.SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sound < 0 || sound >= core.SoundTypeCount {
		return
	}
	if !sm.admit(sound) {
		return
	}

	streamer, err := newSound(sampleRate, sound)
	if err != nil || streamer == nil {
		engine.Logger().Warn("sound unavailable", "sound", sound, "error", err)
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// admit applies the per-sound rate limit, caller holds mu
func (sm *SoundManager) admit(sound core.SoundType) bool {
	now := sm.now()
	if now.Sub(sm.lastPlayed[sound]) < parameter.MinSoundGap {
		return false
	}
	sm.lastPlayed[sound] = now
	return true
}

var _ engine.AudioPlayer = (*SoundManager)(nil)
