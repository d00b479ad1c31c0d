package render

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/botball/engine"
	"github.com/lixenwraith/botball/event"
	"github.com/lixenwraith/botball/parameter"
)

// TerminalRenderer draws match snapshots onto a tcell screen
// RenderFrame is called from the render loop; Viewport may be read from the input goroutine
type TerminalRenderer struct {
	screen  tcell.Screen
	mailbox *event.Mailbox // Optional; drives banners

	mu       sync.Mutex
	viewport Viewport

	banner      string
	bannerLeft  int
	bannerStyle tcell.Style
}

// NewTerminalRenderer creates a renderer; mailbox may be nil
func NewTerminalRenderer(screen tcell.Screen, mailbox *event.Mailbox) *TerminalRenderer {
	return &TerminalRenderer{
		screen:  screen,
		mailbox: mailbox,
	}
}

// BannerTypes are the events the renderer's mailbox should receive
func BannerTypes() []event.EventType {
	return []event.EventType{event.EventGoalScored, event.EventGameEnded, event.EventMatchReset}
}

// Viewport returns the mapping used by the last frame
func (r *TerminalRenderer) Viewport() Viewport {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.viewport
}

// RenderFrame draws one complete frame and shows it
func (r *TerminalRenderer) RenderFrame(s engine.Snapshot) {
	r.consumeEvents()

	w, h := r.screen.Size()
	vp := NewViewport(s.Field, 0, parameter.TopMargin, w, h-parameter.TopMargin-parameter.BottomMargin)
	r.mu.Lock()
	r.viewport = vp
	r.mu.Unlock()

	bg := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', bg)

	c := canvas{screen: r.screen, vp: vp}
	c.drawPitch(s.Field)
	c.drawObstacles(s.Obstacles)
	if s.Debug {
		c.drawDebug(s)
	}
	c.drawRobots(s)
	c.drawBall(s.Ball)

	r.drawStatusBar(s, w)
	r.drawFooter(s, w, h)

	r.screen.Show()
}

// consumeEvents turns the newest banner event into a banner
func (r *TerminalRenderer) consumeEvents() {
	if r.bannerLeft > 0 {
		r.bannerLeft--
	}
	if r.mailbox == nil {
		return
	}
	ev, ok := r.mailbox.Take()
	if !ok {
		return
	}
	switch p := ev.Payload.(type) {
	case event.GoalPayload:
		r.setBanner(" GOAL! "+p.Team.String()+" ", tcell.StyleDefault.Background(TeamColor(p.Team)).Foreground(RgbStatusText).Bold(true))
	case event.EndPayload:
		r.setBanner(" FULL TIME: "+p.Outcome.String()+" ", tcell.StyleDefault.Background(RgbBanner).Foreground(RgbStatusText).Bold(true))
	default:
		if ev.Type == event.EventMatchReset {
			r.bannerLeft = 0
		}
	}
}

func (r *TerminalRenderer) setBanner(text string, style tcell.Style) {
	r.banner = text
	r.bannerStyle = style
	r.bannerLeft = parameter.BannerFrames
}
