package main

import (
	"context"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/botball/core"
	"github.com/lixenwraith/botball/engine"
	"github.com/lixenwraith/botball/event"
	"github.com/lixenwraith/botball/input"
	"github.com/lixenwraith/botball/render"
)

// runTUI owns the terminal until quit, interrupt or a closed screen
func runTUI(ctx context.Context, a *app) error {
	km, err := loadKeymap(a.settings.Keymap)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "terminal")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "terminal init")
	}
	core.SetCrashFinalizer(screen)
	defer func() {
		core.SetCrashFinalizer(nil)
		screen.Fini()
	}()
	screen.EnableMouse()
	screen.HideCursor()

	mailbox := event.NewMailbox()
	unregister := a.router.Register(&event.MailboxHandler{Mailbox: mailbox, Types: render.BannerTypes()})
	defer unregister()

	renderer := render.NewTerminalRenderer(screen, mailbox)
	loop := a.loop(func(s engine.Snapshot) { renderer.RenderFrame(s) })
	loop.Start()
	defer stopLoop(loop)

	machine := input.NewMachine(km)
	dispatcher := input.NewDispatcher(a.match)
	dispatcher.OnSave = a.save

	// Interrupts unblock PollEvent by posting an interrupt event
	core.Go(func() {
		<-ctx.Done()
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	})

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			screen.Sync()
		}

		quit, err := dispatcher.Apply(machine.Process(ev), renderer.Viewport())
		if err != nil {
			log.Printf("input: %v", err)
		}
		if quit {
			return nil
		}
	}
}

// loadKeymap merges overrides from path onto the default bindings
func loadKeymap(path string) (*input.Keymap, error) {
	if path == "" {
		return input.DefaultKeymap(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "keymap")
	}
	override, err := input.LoadKeymap(data)
	if err != nil {
		return nil, err
	}
	return input.MergeKeymap(input.DefaultKeymap(), override), nil
}
