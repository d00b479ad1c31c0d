package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/lixenwraith/botball/config"
)

func main() {
	// Flags read their EnvVar during parsing, so the .env file goes first
	if err := config.LoadEnvFile(os.Getenv(config.EnvFile)); err != nil {
		fmt.Fprintf(os.Stderr, "botball: %v\n", err)
	}

	def := config.Default()

	app := cli.NewApp()
	app.Name = "botball"
	app.Usage = "Robot football arena in the terminal"
	app.Description = "Two teams of autonomous robots play on a field with obstacles; keyboard and mouse drive the match"
	app.Flags = []cli.Flag{
		cli.Float64Flag{Name: "width", Value: def.Width, Usage: "Field width", EnvVar: config.EnvWidth},
		cli.Float64Flag{Name: "height", Value: def.Height, Usage: "Field height", EnvVar: config.EnvHeight},
		cli.IntFlag{Name: "minutes", Value: def.Minutes, Usage: "Match length in minutes", EnvVar: config.EnvMinutes},
		cli.Float64Flag{Name: "speed", Value: def.Speed, Usage: "Game speed multiplier (0.1-2.0)", EnvVar: config.EnvSpeed},
		cli.IntFlag{Name: "tick-rate", Value: def.TickRate, Usage: "Simulation ticks per second", EnvVar: config.EnvTickRate},
		cli.IntFlag{Name: "frame-rate", Value: def.FrameRate, Usage: "Render frames per second", EnvVar: config.EnvFrameRate},
		cli.Int64Flag{Name: "seed", Value: def.Seed, Usage: "Seed for obstacle placement", EnvVar: config.EnvSeed},
		cli.StringFlag{Name: "formation", Value: def.Formation, Usage: "Default formation for both teams", EnvVar: config.EnvFormation},
		cli.StringFlag{Name: "scenario", Usage: "Load a TOML layout at startup", EnvVar: config.EnvScenario},
		cli.StringFlag{Name: "save", Usage: "Write the TOML layout here on save and exit", EnvVar: config.EnvSaveTo},
		cli.StringFlag{Name: "keymap", Usage: "TOML key binding overrides", EnvVar: config.EnvKeymap},
		cli.StringFlag{Name: "spectate", Usage: "Serve the spectator feed on this address (e.g. :8080)", EnvVar: config.EnvSpectate},
		cli.BoolFlag{Name: "headless", Usage: "Run one match without the terminal UI and print events", EnvVar: config.EnvHeadless},
		cli.BoolFlag{Name: "debug", Usage: "Write logs to logs/botball.log", EnvVar: config.EnvDebug},
		cli.BoolFlag{Name: "no-audio", Usage: "Disable referee sounds", EnvVar: config.EnvNoAudio},
		cli.BoolFlag{Name: "empty", Usage: "Start without the default 5v5 teams", EnvVar: config.EnvEmpty},
	}
	app.Action = func(c *cli.Context) error {
		s := settingsFrom(c)
		if err := s.Validate(); err != nil {
			return cli.NewExitError(err.Error(), 2)
		}
		if err := run(s); err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "botball: %v\n", err)
		os.Exit(1)
	}
}

func settingsFrom(c *cli.Context) config.Settings {
	return config.Settings{
		Width:        c.Float64("width"),
		Height:       c.Float64("height"),
		Minutes:      c.Int("minutes"),
		Speed:        c.Float64("speed"),
		TickRate:     c.Int("tick-rate"),
		FrameRate:    c.Int("frame-rate"),
		Seed:         c.Int64("seed"),
		Formation:    c.String("formation"),
		Scenario:     c.String("scenario"),
		SaveTo:       c.String("save"),
		Keymap:       c.String("keymap"),
		SpectateAddr: c.String("spectate"),
		Headless:     c.Bool("headless"),
		Debug:        c.Bool("debug"),
		Audio:        !c.Bool("no-audio"),
		Empty:        c.Bool("empty"),
	}
}
