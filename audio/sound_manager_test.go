package audio

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/transporters/core"
	"github.com/lixenwraith/transporters/parameter"
)

// drain counts samples until the streamer ends, with a safety cap
func drain(t *testing.T, s interface {
	Stream([][2]float64) (int, bool)
}) (total int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never ended")
	return 0, 0
}

func TestSoundDurations(t *testing.T) {
	tests := []struct {
		sound    core.SoundType
		duration time.Duration
	}{
		{core.SoundTurn, parameter.TurnToneDuration},
		{core.SoundDrop, parameter.DropToneDuration},
	}

	for _, tt := range tests {
		s, err := newSound(sampleRate, tt.sound)
		if err != nil {
			t.Fatalf("newSound(%d): %v", tt.sound, err)
		}
		total, peak := drain(t, s)
		if want := sampleRate.N(tt.duration); total != want {
			t.Errorf("sound %d: %d samples, want %d", tt.sound, total, want)
		}
		if peak <= 0 || peak > 1 {
			t.Errorf("sound %d: peak amplitude %v outside (0, 1]", tt.sound, peak)
		}
	}
}

func TestUnknownSound(t *testing.T) {
	s, err := newSound(sampleRate, core.SoundTypeCount)
	if s != nil || err != nil {
		t.Errorf("unknown sound = %v, %v", s, err)
	}
}

func TestAdmitRateLimit(t *testing.T) {
	sm := NewSoundManager()
	clock := time.Unix(1000, 0)
	sm.now = func() time.Time { return clock }

	if !sm.admit(core.SoundTurn) {
		t.Fatal("first sound rejected")
	}
	if sm.admit(core.SoundTurn) {
		t.Error("repeat inside MinSoundGap admitted")
	}
	if !sm.admit(core.SoundDrop) {
		t.Error("different sound rejected")
	}

	clock = clock.Add(parameter.MinSoundGap)
	if !sm.admit(core.SoundTurn) {
		t.Error("sound after MinSoundGap rejected")
	}
}

func TestPlayWithoutSpeakerIsNoop(t *testing.T) {
	sm := NewSoundManager()
	sm.Play(core.SoundTurn)
	if sm.mixer.Len() != 0 {
		t.Errorf("mixer has %d streamers before Initialize", sm.mixer.Len())
	}
	sm.Cleanup()
}
