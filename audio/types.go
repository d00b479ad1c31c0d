package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundWhistle     SoundType = iota // Kick-off and stoppage
	SoundLongWhistle                  // Full time
	SoundHorn                         // Goal
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundWhistle:
		return "whistle"
	case SoundLongWhistle:
		return "long_whistle"
	case SoundHorn:
		return "horn"
	default:
		return "unknown"
	}
}

// Player plays a sound effect without blocking
type Player interface {
	Play(SoundType)
}
