package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/botball/parameter"
)

// Environment keys
const (
	EnvAudioEnabled = "BOTBALL_AUDIO_ENABLED"
	EnvMasterVolume = "BOTBALL_MASTER_VOLUME"
	EnvSFXVolumes   = "BOTBALL_SFX_VOLUMES"
	EnvSampleRate   = "BOTBALL_SAMPLE_RATE"
)

// AudioConfig holds audio settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0-1
	EffectVolumes map[SoundType]float64
	SampleRate    int
}

// DefaultAudioConfig returns audio on at half volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: parameter.AudioMasterVolume,
		EffectVolumes: map[SoundType]float64{
			SoundWhistle:     0.8,
			SoundLongWhistle: 0.8,
			SoundHorn:        1.0,
		},
		SampleRate: parameter.AudioSampleRate,
	}
}

// LoadAudioConfig loads audio configuration from environment variables
// Malformed values keep their defaults
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is 0-100
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	// Effect volumes as JSON, e.g. {"horn": 0.5}
	if effectVols := os.Getenv(EnvSFXVolumes); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for st := range soundTypeCount {
				if v, ok := volumes[st.String()]; ok {
					cfg.EffectVolumes[st] = min(max(v, 0), 1)
				}
			}
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

// Volume returns the effective 0-1 volume of a sound
func (c *AudioConfig) Volume(s SoundType) float64 {
	v, ok := c.EffectVolumes[s]
	if !ok {
		v = 1
	}
	return c.MasterVolume * v
}
