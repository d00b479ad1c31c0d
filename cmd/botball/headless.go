package main

import (
	"context"
	"fmt"
	"io"
	"log"
)

// runHeadless plays one match to full time, printing events to out
func runHeadless(ctx context.Context, a *app, out io.Writer) error {
	reporter := newConsoleReporter(out)
	unregister := a.router.Register(reporter)
	defer unregister()

	loop := a.loop(nil)
	loop.Start()
	defer stopLoop(loop)

	if err := a.match.Start(); err != nil {
		return err
	}

	select {
	case <-reporter.Ended():
	case <-ctx.Done():
		a.match.Pause()
		log.Printf("botball: interrupted")
	}

	s := a.match.Snapshot()
	fmt.Fprintf(out, "Final: Red %d - %d Blue (%s)\n", s.RedScore, s.BlueScore, s.Outcome)
	return nil
}
