package core

import (
	"math"

	"github.com/lixenwraith/botball/parameter"
	"github.com/lixenwraith/botball/vmath"
)

// Field is the immutable playing-area geometry
// Play happens inside [Border, Border+Width] x [Border, Border+Height]
// Goal mouths are cut into the left and right lines, each with a notch GoalDepth deep
type Field struct {
	Width, Height float64
	Border        float64
	GoalWidth     float64
	GoalDepth     float64
}

// NewField creates a field with default border and goal sizes
func NewField(width, height float64) Field {
	return Field{
		Width:     width,
		Height:    height,
		Border:    parameter.BorderWidth,
		GoalWidth: parameter.GoalWidth,
		GoalDepth: parameter.GoalDepth,
	}
}

// DefaultField returns the 600x400 field
func DefaultField() Field {
	return NewField(parameter.FieldWidth, parameter.FieldHeight)
}

func (f Field) Left() float64   { return f.Border }
func (f Field) Right() float64  { return f.Border + f.Width }
func (f Field) Top() float64    { return f.Border }
func (f Field) Bottom() float64 { return f.Border + f.Height }

// TotalWidth includes both borders
func (f Field) TotalWidth() float64 { return f.Width + 2*f.Border }

// TotalHeight includes both borders
func (f Field) TotalHeight() float64 { return f.Height + 2*f.Border }

// Center returns the center spot
func (f Field) Center() vmath.Vec2 {
	return vmath.Vec2{X: f.Border + f.Width/2, Y: f.Border + f.Height/2}
}

// Area returns the playing area
func (f Field) Area() Area {
	return Area{X: f.Border, Y: f.Border, Width: f.Width, Height: f.Height}
}

// GoalTop is the upper post's Y
func (f Field) GoalTop() float64 {
	return (f.Height-f.GoalWidth)/2 + f.Border
}

// GoalBottom is the lower post's Y
func (f Field) GoalBottom() float64 {
	return f.GoalTop() + f.GoalWidth
}

// InMouth reports whether y lies between the posts
func (f Field) InMouth(y float64) bool {
	return y >= f.GoalTop() && y <= f.GoalBottom()
}

// GoalLineX returns the goal line defended by team
func (f Field) GoalLineX(team Team) float64 {
	if team == TeamRed {
		return f.Left()
	}
	return f.Right()
}

// GoalCenter returns the mouth center of the goal defended by team
func (f Field) GoalCenter(team Team) vmath.Vec2 {
	return vmath.Vec2{X: f.GoalLineX(team), Y: f.Border + f.Height/2}
}

// Goal returns the notch rectangle behind the goal line defended by team
func (f Field) Goal(team Team) Area {
	x := f.Left() - f.GoalDepth
	if team == TeamBlue {
		x = f.Right()
	}
	return Area{X: x, Y: f.GoalTop(), Width: f.GoalDepth, Height: f.GoalWidth}
}

// PenaltyArea returns the box in front of the goal defended by team
func (f Field) PenaltyArea(team Team) Area {
	w := f.Width / 6
	h := f.Height / 2
	x := f.Left()
	if team == TeamBlue {
		x = f.Right() - w
	}
	return Area{X: x, Y: f.Border + (f.Height-h)/2, Width: w, Height: h}
}

// InPenaltyArea reports whether p lies in the penalty box of team's goal
func (f Field) InPenaltyArea(team Team, p vmath.Vec2) bool {
	return f.PenaltyArea(team).Contains(p)
}

// PenaltySpot returns the spot in front of team's goal
func (f Field) PenaltySpot(team Team) vmath.Vec2 {
	d := f.Width / 8
	c := f.GoalCenter(team)
	if team == TeamRed {
		c.X += d
	} else {
		c.X -= d
	}
	return c
}

// CenterCircleRadius is min(width, height)/8
func (f Field) CenterCircleRadius() float64 {
	return math.Min(f.Width, f.Height) / 8
}

func (f Field) InCenterCircle(p vmath.Vec2) bool {
	return p.Dist(f.Center()) <= f.CenterCircleRadius()
}

// OutOfBounds reports whether p lies outside the playing area
func (f Field) OutOfBounds(p vmath.Vec2) bool {
	return !f.Area().Contains(p)
}

// InDefensiveHalf reports whether x lies in the half team defends
func (f Field) InDefensiveHalf(team Team, x float64) bool {
	mid := f.Center().X
	if team == TeamRed {
		return x < mid
	}
	return x > mid
}

// Mirror maps a relative X for team: Red uses x, Blue uses 1-x
func Mirror(team Team, relX float64) float64 {
	if team == TeamBlue {
		return 1 - relX
	}
	return relX
}

// Relative converts relative coordinates in [0,1] to an absolute point
func (f Field) Relative(relX, relY float64) vmath.Vec2 {
	return vmath.Vec2{X: f.Border + relX*f.Width, Y: f.Border + relY*f.Height}
}

// ClampBox clamps a box's top-left so the box stays within the field minus margin
// Reports whether the position changed
func (f Field) ClampBox(pos vmath.Vec2, w, h, margin float64) (vmath.Vec2, bool) {
	minX, maxX := f.Left()+margin, f.Right()-w-margin
	minY, maxY := f.Top()+margin, f.Bottom()-h-margin
	if maxX < minX {
		maxX = minX
	}
	if maxY < minY {
		maxY = minY
	}
	c := vmath.Vec2{X: vmath.Clamp(pos.X, minX, maxX), Y: vmath.Clamp(pos.Y, minY, maxY)}
	return c, c != pos
}

// Rescale maps a point proportionally from field f into field to
func (f Field) Rescale(p vmath.Vec2, to Field) vmath.Vec2 {
	rx := (p.X - f.Border) / f.Width
	ry := (p.Y - f.Border) / f.Height
	return vmath.Vec2{X: to.Border + rx*to.Width, Y: to.Border + ry*to.Height}
}
