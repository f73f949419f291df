package engine

import "github.com/lixenwraith/transporters/core"

// AudioPlayer plays sound effects; implemented by audio.SoundManager
// Keeps systems independent of the audio backend
type AudioPlayer interface {
	Play(sound core.SoundType)
}
