package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/botball/core"
	"github.com/lixenwraith/botball/engine"
	"github.com/lixenwraith/botball/parameter"
)

// HelpEntries lists the default key bindings, most essential first
var HelpEntries = []string{
	"q quit", "space start/pause", "r reset", "p 5v5", "k/K kick", "a/A add", "x remove",
	"o/O obstacle", "+/- speed", "[/] minutes", "f/F formation", "d debug", "s save",
}

// HelpText joins whole help entries until the next one would pass width columns
func HelpText(width int) string {
	var b strings.Builder
	for _, e := range HelpEntries {
		n := utf8.RuneCountInString(e)
		if b.Len() > 0 {
			n += 2
		}
		if utf8.RuneCountInString(b.String())+n > width {
			break
		}
		if b.Len() > 0 {
			b.WriteString("  ")
		}
		b.WriteString(e)
	}
	return b.String()
}

// StatusText is the one-line match summary shown on the top bar
func StatusText(s engine.Snapshot) string {
	return fmt.Sprintf(" RED %d : %d BLUE │ %s │ %s │ x%.1f │ %s v %s │ tick %d ",
		s.RedScore, s.BlueScore,
		core.FormatClock(s.Remaining),
		s.Phase,
		s.Speed,
		s.RedFormation, s.BlueFormation,
		s.Tick,
	)
}

func drawText(screen tcell.Screen, x, y, maxX int, text string, style tcell.Style) int {
	for _, ch := range text {
		if x >= maxX {
			break
		}
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

func (r *TerminalRenderer) drawStatusBar(s engine.Snapshot, w int) {
	style := tcell.StyleDefault.Background(PhaseColor(s.Phase)).Foreground(RgbStatusText)
	for x := range w {
		r.screen.SetContent(x, 0, ' ', nil, style)
	}
	drawText(r.screen, 0, 0, w, StatusText(s), style)
}

func (r *TerminalRenderer) drawFooter(s engine.Snapshot, w, h int) {
	if h < parameter.TopMargin+parameter.BottomMargin+1 {
		return
	}
	bg := tcell.StyleDefault.Background(RgbBackground)

	// Banner, else newest history line
	y := h - 2
	switch {
	case r.bannerLeft > 0:
		drawText(r.screen, 1, y, w, r.banner, r.bannerStyle)
	case len(s.History) > 0:
		drawText(r.screen, 1, y, w, s.History[len(s.History)-1], bg.Foreground(RgbLines))
	}
	drawText(r.screen, 1, h-1, w, HelpText(w-1), bg.Foreground(RgbHint))
}
