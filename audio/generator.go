package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/botball/parameter"
)

// envelope is a linear attack, flat sustain, linear release over a fixed length
type envelope struct {
	attack, release, total int
}

func newEnvelope(sr beep.SampleRate, attack, release, total time.Duration) envelope {
	return envelope{attack: sr.N(attack), release: sr.N(release), total: sr.N(total)}
}

func (e envelope) at(pos int) float64 {
	switch {
	case pos >= e.total:
		return 0
	case pos < e.attack:
		return float64(pos) / float64(e.attack)
	case pos > e.total-e.release:
		return float64(e.total-pos) / float64(e.release)
	}
	return 1
}

// WhistleGenerator generates a referee pea whistle: a high tone with a fast rattle
type WhistleGenerator struct {
	sr  beep.SampleRate
	env envelope
	pos int
}

// NewWhistleGenerator creates a whistle lasting d
func NewWhistleGenerator(sr beep.SampleRate, d time.Duration) *WhistleGenerator {
	return &WhistleGenerator{
		sr:  sr,
		env: newEnvelope(sr, parameter.WhistleAttack, parameter.WhistleRelease, d),
	}
}

func (g *WhistleGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.env.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.env.total {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)

		// The pea modulates pitch and loudness at the trill rate
		trill := math.Sin(2 * math.Pi * parameter.WhistleTrill * t)
		freq := parameter.WhistleFrequency * (1 + 0.02*trill)
		amp := parameter.WhistleAmplitude * (0.75 + 0.25*trill) * g.env.at(g.pos)
		sample := amp * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *WhistleGenerator) Err() error {
	return nil
}

// HornGenerator generates a stadium air horn: a buzzy major third
type HornGenerator struct {
	sr  beep.SampleRate
	env envelope
	pos int
}

// NewHornGenerator creates a horn lasting parameter.HornDuration
func NewHornGenerator(sr beep.SampleRate) *HornGenerator {
	return &HornGenerator{
		sr:  sr,
		env: newEnvelope(sr, parameter.HornAttack, parameter.HornRelease, parameter.HornDuration),
	}
}

func (g *HornGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.env.total {
		return 0, false
	}
	third := parameter.HornFrequency * 1.25
	for i := range samples {
		if g.pos >= g.env.total {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)

		// Saw-like stack of harmonics per voice
		sample := 0.0
		for h := 1.0; h <= 4; h++ {
			sample += math.Sin(2*math.Pi*parameter.HornFrequency*h*t) / h
			sample += 0.7 * math.Sin(2*math.Pi*third*h*t) / h
		}
		sample *= parameter.HornAmplitude / 3.5 * g.env.at(g.pos)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *HornGenerator) Err() error {
	return nil
}

// newStreamer builds the generator for a sound type
func newStreamer(sr beep.SampleRate, s SoundType) beep.Streamer {
	switch s {
	case SoundLongWhistle:
		return NewWhistleGenerator(sr, parameter.LongWhistleDuration)
	case SoundHorn:
		return NewHornGenerator(sr)
	default:
		return NewWhistleGenerator(sr, parameter.WhistleDuration)
	}
}
