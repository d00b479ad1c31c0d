package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/botball/core"
	"github.com/lixenwraith/botball/engine"
	"github.com/lixenwraith/botball/navigation"
	"github.com/lixenwraith/botball/vmath"
)

// headingArrows is indexed by heading octant; 0 degrees points +X, 90 points down
var headingArrows = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// HeadingArrow returns the arrow nearest to heading degrees
func HeadingArrow(deg float64) rune {
	oct := int((vmath.NormalizeDegrees(deg)+22.5)/45) % 8
	return headingArrows[oct]
}

func (c canvas) drawObstacles(obstacles []core.Obstacle) {
	for i := range obstacles {
		o := &obstacles[i]
		style := tcell.StyleDefault.Background(RgbBackground).Foreground(ObstacleColor(o.Color))
		ch := '█'
		if o.Shape == core.ShapeCircle {
			ch = '▓'
		}

		x0, y0 := c.vp.ToCell(o.Pos)
		x1, y1 := c.vp.ToCell(o.Pos.Add(vmath.Vec2{X: o.Width, Y: o.Height}))
		drawn := false
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				if o.ContainsPoint(c.vp.ToWorld(x, y)) {
					c.screen.SetContent(x, y, ch, nil, style)
					drawn = true
				}
			}
		}
		// Thin walls can fall between cell centers
		if !drawn {
			c.set(o.Center(), ch, style)
		}
	}
}

func (c canvas) drawRobots(s engine.Snapshot) {
	for _, r := range s.Robots() {
		center := r.Center()
		fg := TeamColor(r.Team)
		style := tcell.StyleDefault.Background(fg).Foreground(RgbStatusText).Bold(true)
		c.set(center, r.Role.Glyph(), style)

		// Arrow one cell ahead along the heading
		ahead := center.Add(vmath.HeadingVector(r.Heading).Scale(r.Width))
		ax, ay := c.vp.ToCell(ahead)
		if cx, cy := c.vp.ToCell(center); ax != cx || ay != cy {
			c.set(ahead, HeadingArrow(r.Heading), c.over(ahead, fg))
		}
	}
}

func (c canvas) drawBall(b core.Ball) {
	c.set(b.Pos, '●', c.over(b.Pos, RgbBall).Bold(true))
}

// drawDebug shows sensor beams and decision targets
func (c canvas) drawDebug(s engine.Snapshot) {
	for _, rv := range s.Robots() {
		if !rv.HasDecision {
			continue
		}
		r := rv.Robot
		beams := navigation.BeamSegments(&r)
		for i, seg := range beams {
			fg := RgbBeam
			if rv.Beams[i] {
				fg = RgbBeamHit
			}
			for step := 1; step <= 4; step++ {
				p := seg.A.Lerp(seg.B, float64(step)/4)
				c.set(p, '·', c.over(p, fg))
			}
		}
		c.set(rv.Target, 'x', c.over(rv.Target, RgbTarget))
	}
}
