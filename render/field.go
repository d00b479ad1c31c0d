package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/botball/core"
	"github.com/lixenwraith/botball/vmath"
)

// canvas draws world geometry through a viewport
type canvas struct {
	screen tcell.Screen
	vp     Viewport
}

func (c canvas) set(p vmath.Vec2, ch rune, style tcell.Style) {
	x, y := c.vp.ToCell(p)
	c.screen.SetContent(x, y, ch, nil, style)
}

// background returns the pitch style under cell (x, y)
func (c canvas) background(x int) tcell.Style {
	stripe := (x - c.vp.OffX) / 4
	if stripe%2 == 0 {
		return tcell.StyleDefault.Background(RgbPitch)
	}
	return tcell.StyleDefault.Background(RgbPitchAlt)
}

// over returns style with the pitch background of the cell at p
func (c canvas) over(p vmath.Vec2, fg tcell.Color) tcell.Style {
	x, _ := c.vp.ToCell(p)
	return c.background(x).Foreground(fg)
}

func (c canvas) drawPitch(f core.Field) {
	area := f.Area()
	x0, y0 := c.vp.ToCell(area.Min())
	x1, y1 := c.vp.ToCell(area.Max())
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.screen.SetContent(x, y, ' ', nil, c.background(x))
		}
	}

	line := func(x int) tcell.Style { return c.background(x).Foreground(RgbLines) }

	// Touch lines and goal lines
	for x := x0; x <= x1; x++ {
		c.screen.SetContent(x, y0, '─', nil, line(x))
		c.screen.SetContent(x, y1, '─', nil, line(x))
	}
	for y := y0; y <= y1; y++ {
		c.screen.SetContent(x0, y, '│', nil, line(x0))
		c.screen.SetContent(x1, y, '│', nil, line(x1))
	}
	c.screen.SetContent(x0, y0, '┌', nil, line(x0))
	c.screen.SetContent(x1, y0, '┐', nil, line(x1))
	c.screen.SetContent(x0, y1, '└', nil, line(x0))
	c.screen.SetContent(x1, y1, '┘', nil, line(x1))

	// Halfway line and center circle
	mx, _ := c.vp.ToCell(f.Center())
	for y := y0 + 1; y < y1; y++ {
		c.screen.SetContent(mx, y, '┊', nil, line(mx))
	}
	radius := f.CenterCircleRadius()
	for i := range 24 {
		a := float64(i) * 2 * math.Pi / 24
		c.set(f.Center().Add(vmath.Vec2{X: math.Cos(a), Y: math.Sin(a)}.Scale(radius)), '·', c.over(f.Center(), RgbLines))
	}
	c.set(f.Center(), '+', c.over(f.Center(), RgbLines))

	// Penalty boxes and spots
	for _, team := range []core.Team{core.TeamRed, core.TeamBlue} {
		c.drawBox(f.PenaltyArea(team), RgbLines, '┈', '┊')
		c.set(f.PenaltySpot(team), '·', c.over(f.PenaltySpot(team), RgbLines))
		c.drawGoal(f, team)
	}
}

// drawBox outlines an area with light strokes
func (c canvas) drawBox(a core.Area, fg tcell.Color, horiz, vert rune) {
	x0, y0 := c.vp.ToCell(a.Min())
	x1, y1 := c.vp.ToCell(a.Max())
	for x := x0; x <= x1; x++ {
		c.screen.SetContent(x, y0, horiz, nil, c.background(x).Foreground(fg))
		c.screen.SetContent(x, y1, horiz, nil, c.background(x).Foreground(fg))
	}
	for y := y0 + 1; y < y1; y++ {
		c.screen.SetContent(x0, y, vert, nil, c.background(x0).Foreground(fg))
		c.screen.SetContent(x1, y, vert, nil, c.background(x1).Foreground(fg))
	}
}

// drawGoal fills the notch behind the goal line in the defending team's color
func (c canvas) drawGoal(f core.Field, team core.Team) {
	g := f.Goal(team)
	x0, y0 := c.vp.ToCell(g.Min())
	x1, y1 := c.vp.ToCell(g.Max())
	style := tcell.StyleDefault.Background(RgbBackground).Foreground(TeamColor(team))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.screen.SetContent(x, y, '▒', nil, style)
		}
	}
	// Open mouth on the goal line
	lx, _ := c.vp.ToCell(vmath.Vec2{X: f.GoalLineX(team), Y: g.Y})
	for y := y0; y <= y1; y++ {
		c.screen.SetContent(lx, y, '┆', nil, c.background(lx).Foreground(RgbGoal))
	}
}
