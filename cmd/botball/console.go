package main

import (
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/ttacon/chalk"

	"github.com/lixenwraith/botball/core"
	"github.com/lixenwraith/botball/event"
)

// consoleReporter prints match events for headless runs
type consoleReporter struct {
	mu  sync.Mutex
	out io.Writer

	// ended is closed on GameEnded
	ended     chan struct{}
	endedOnce sync.Once
}

func newConsoleReporter(out io.Writer) *consoleReporter {
	return &consoleReporter{out: out, ended: make(chan struct{})}
}

func teamColor(t core.Team) chalk.Color {
	if t == core.TeamRed {
		return chalk.Red
	}
	return chalk.Blue
}

// HandleEvent implements event.Handler
func (c *consoleReporter) HandleEvent(ev event.GameEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch p := ev.Payload.(type) {
	case event.GoalPayload:
		fmt.Fprintf(c.out, "%s[%s] GOAL %s%s  Red %d - %d Blue\n",
			teamColor(p.Team), core.FormatClock(math.Floor(p.Elapsed)), p.Team, chalk.Reset, p.Red, p.Blue)
	case event.TimePayload:
		// One line per remaining minute
		if secs := int(math.Round(p.Remaining)); secs > 0 && secs%60 == 0 {
			fmt.Fprintf(c.out, "%s%s remaining%s\n", chalk.Yellow, core.FormatClock(p.Remaining), chalk.Reset)
		}
	case event.EndPayload:
		color := chalk.Magenta
		if team, ok := p.Outcome.Winner(); ok {
			color = teamColor(team)
		}
		fmt.Fprintf(c.out, "%sFULL TIME: %s%s  Red %d - %d Blue\n", color, p.Outcome, chalk.Reset, p.Red, p.Blue)
		c.endedOnce.Do(func() { close(c.ended) })
	default:
		switch ev.Type {
		case event.EventMatchStarted:
			fmt.Fprintf(c.out, "%sKick-off%s\n", chalk.Green, chalk.Reset)
		case event.EventMatchPaused:
			fmt.Fprintf(c.out, "%sPaused%s\n", chalk.Yellow, chalk.Reset)
		}
	}
}

// EventTypes implements event.Handler
func (c *consoleReporter) EventTypes() []event.EventType {
	return event.AllTypes()
}

// Ended is closed once the final whistle is reported
func (c *consoleReporter) Ended() <-chan struct{} {
	return c.ended
}
