package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/lixenwraith/botball/audio"
	"github.com/lixenwraith/botball/config"
	"github.com/lixenwraith/botball/core"
	"github.com/lixenwraith/botball/engine"
	"github.com/lixenwraith/botball/event"
	"github.com/lixenwraith/botball/scenario"
	"github.com/lixenwraith/botball/spectate"
	"github.com/lixenwraith/botball/status"
)

// defaultSavePath is used by the save key when no --save path is set
const defaultSavePath = "botball.toml"

// app is the wired process: match, scheduler and optional surfaces
type app struct {
	settings config.Settings
	router   *event.Router
	reg      *status.Registry
	match    *engine.Match
	sound    *audio.SoundManager
}

func run(s config.Settings) error {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	logFile := setupLogging(s.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	a, err := newApp(s)
	if err != nil {
		return err
	}
	defer a.close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if s.SpectateAddr != "" {
		srv := spectate.NewServer(a.match, a.reg, log.Writer())
		a.router.Register(srv)
		core.Go(func() {
			if err := srv.ListenAndServe(ctx, s.SpectateAddr); err != nil {
				log.Printf("spectate: %v", err)
			}
		})
	}

	if s.Headless {
		err = runHeadless(ctx, a, os.Stdout)
	} else {
		err = runTUI(ctx, a)
	}

	if s.SaveTo != "" {
		if serr := a.save(); serr != nil && err == nil {
			err = serr
		}
	}
	return err
}

func newApp(s config.Settings) (*app, error) {
	a := &app{
		settings: s,
		router:   event.NewRouter(),
		reg:      status.NewRegistry(),
	}

	m, err := engine.NewMatch(s.MatchOptions(), a.router, a.reg)
	if err != nil {
		return nil, err
	}
	a.match = m

	switch {
	case s.Scenario != "":
		if err := scenario.Load(s.Scenario, m); err != nil {
			return nil, err
		}
	case !s.Empty:
		m.PopulateDefaultTeams()
	}

	if s.Audio {
		cfg := audio.LoadAudioConfig()
		a.sound = audio.NewSoundManager(cfg)
		if err := a.sound.Initialize(); err != nil {
			log.Printf("audio: %v (continuing without audio)", err)
		}
		a.router.Register(audio.NewReferee(a.sound))
	}
	return a, nil
}

// save writes the layout to the configured path
func (a *app) save() error {
	path := a.settings.SaveTo
	if path == "" {
		path = defaultSavePath
	}
	if err := scenario.Save(path, a.match); err != nil {
		return errors.Wrap(err, "save")
	}
	log.Printf("botball: saved layout to %s", path)
	return nil
}

func (a *app) close() {
	if a.sound != nil {
		a.sound.Cleanup()
	}
}

// loop builds the scheduler from settings
func (a *app) loop(render engine.RenderFunc) *engine.Loop {
	s := a.settings
	return engine.NewLoop(a.match, s.TickInterval(), s.TickTimeout(), s.FrameInterval(), render)
}

// stopLoop shuts the scheduler down and reports a timeout
func stopLoop(l *engine.Loop) {
	if err := l.Stop(); err != nil {
		log.Printf("engine: %v", err)
		fmt.Fprintf(os.Stderr, "botball: %v\n", err)
	}
}
