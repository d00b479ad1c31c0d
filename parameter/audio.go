package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume is the default master volume (0-1)
	AudioMasterVolume = 0.5
)

// Referee Whistle
const (
	WhistleDuration     = 350 * time.Millisecond
	LongWhistleDuration = 1200 * time.Millisecond
	WhistleFrequency    = 2800.0 // Hz, pea whistle pitch
	WhistleTrill        = 28.0   // Hz, pea rattle modulation
	WhistleAmplitude    = 0.25
	WhistleAttack       = 10 * time.Millisecond
	WhistleRelease      = 60 * time.Millisecond
)

// Goal Horn
const (
	HornDuration  = 900 * time.Millisecond
	HornFrequency = 220.0 // Hz, root; a major third is layered on top
	HornAmplitude = 0.3
	HornAttack    = 30 * time.Millisecond
	HornRelease   = 250 * time.Millisecond
)
