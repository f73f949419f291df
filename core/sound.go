package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundTurn SoundType = iota // Agent reverses at a rail end
	SoundDrop                  // Dragged handle released
	SoundTypeCount
)
