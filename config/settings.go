// Package config holds process-level settings for the botball binary.
// Values come from defaults, an optional .env file and BOTBALL_ environment
// variables, then command-line flags; Validate runs once all are applied.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/lixenwraith/botball/engine"
	"github.com/lixenwraith/botball/formation"
	"github.com/lixenwraith/botball/parameter"
)

// Environment keys; each mirrors a command-line flag
const (
	EnvPrefix    = "BOTBALL_"
	EnvWidth     = EnvPrefix + "WIDTH"
	EnvHeight    = EnvPrefix + "HEIGHT"
	EnvMinutes   = EnvPrefix + "MINUTES"
	EnvSpeed     = EnvPrefix + "SPEED"
	EnvTickRate  = EnvPrefix + "TICK_RATE"
	EnvFrameRate = EnvPrefix + "FRAME_RATE"
	EnvSeed      = EnvPrefix + "SEED"
	EnvFormation = EnvPrefix + "FORMATION"
	EnvScenario  = EnvPrefix + "SCENARIO"
	EnvSaveTo    = EnvPrefix + "SAVE"
	EnvSpectate  = EnvPrefix + "SPECTATE"
	EnvHeadless  = EnvPrefix + "HEADLESS"
	EnvDebug     = EnvPrefix + "DEBUG"
	EnvNoAudio   = EnvPrefix + "NO_AUDIO"
	EnvEmpty     = EnvPrefix + "EMPTY"
	EnvKeymap    = EnvPrefix + "KEYMAP"

	// EnvFile names the .env file itself; read before flags are parsed
	EnvFile = EnvPrefix + "ENV_FILE"
)

// DefaultEnvFile is read from the working directory when present
const DefaultEnvFile = ".env"

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid setting")

// Settings is the resolved process configuration
type Settings struct {
	Width     float64
	Height    float64
	Minutes   int
	Speed     float64
	TickRate  int // ticks per second
	FrameRate int // frames per second
	Seed      int64
	Formation string

	Scenario string // TOML layout loaded at startup
	SaveTo   string // TOML layout written on save and exit
	Keymap   string // TOML key binding overrides

	SpectateAddr string // empty disables the spectator server
	Headless     bool
	Debug        bool
	Audio        bool
	Empty        bool // start without the default 5v5
}

// Default returns settings matching the engine defaults
func Default() Settings {
	return Settings{
		Width:     parameter.FieldWidth,
		Height:    parameter.FieldHeight,
		Minutes:   parameter.MatchMinutes,
		Speed:     parameter.GameSpeed,
		TickRate:  parameter.TickRate,
		FrameRate: int(time.Second / parameter.FrameInterval),
		Seed:      1,
		Formation: parameter.DefaultFormation,
		Audio:     true,
	}
}

// LoadEnvFile exports variables from path into the process environment
// Variables already set win; a missing file is not an error
func LoadEnvFile(path string) error {
	if path == "" {
		path = DefaultEnvFile
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Wrapf(err, "load env file %s", path)
	}
	return nil
}

// Validate checks every field against the engine limits
func (s Settings) Validate() error {
	switch {
	case s.Width < parameter.MinFieldWidth || s.Width > parameter.MaxFieldWidth:
		return errors.Wrapf(ErrInvalid, "width %.0f", s.Width)
	case s.Height < parameter.MinFieldHeight || s.Height > parameter.MaxFieldHeight:
		return errors.Wrapf(ErrInvalid, "height %.0f", s.Height)
	case s.Minutes < parameter.MinMatchMinutes || s.Minutes > parameter.MaxMatchMinutes:
		return errors.Wrapf(ErrInvalid, "minutes %d", s.Minutes)
	case s.Speed < parameter.MinGameSpeed || s.Speed > parameter.MaxGameSpeed:
		return errors.Wrapf(ErrInvalid, "speed %.2f", s.Speed)
	case s.TickRate < 1 || s.TickRate > 1000:
		return errors.Wrapf(ErrInvalid, "tick rate %d", s.TickRate)
	case s.FrameRate < 1 || s.FrameRate > 240:
		return errors.Wrapf(ErrInvalid, "frame rate %d", s.FrameRate)
	}
	if _, err := formation.Lookup(s.Formation); err != nil {
		return errors.Wrapf(ErrInvalid, "formation: %v", err)
	}
	return nil
}

// MatchOptions converts settings to engine options
func (s Settings) MatchOptions() engine.Options {
	return engine.Options{
		Width:     s.Width,
		Height:    s.Height,
		Minutes:   s.Minutes,
		Speed:     s.Speed,
		Seed:      s.Seed,
		Formation: s.Formation,
	}
}

// TickInterval is the simulation period
func (s Settings) TickInterval() time.Duration {
	return time.Second / time.Duration(s.TickRate)
}

// TickTimeout bounds one tick before it counts as an overrun
func (s Settings) TickTimeout() time.Duration {
	return 4 * s.TickInterval()
}

// FrameInterval is the render period
func (s Settings) FrameInterval() time.Duration {
	return time.Second / time.Duration(s.FrameRate)
}
