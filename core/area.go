package core

import (
	"math"

	"github.com/lixenwraith/botball/vmath"
)

// Area represents an axis-aligned rectangle in arena units
type Area struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
}

func (a Area) Min() vmath.Vec2 {
	return vmath.Vec2{X: a.X, Y: a.Y}
}

func (a Area) Max() vmath.Vec2 {
	return vmath.Vec2{X: a.X + a.Width, Y: a.Y + a.Height}
}

func (a Area) Center() vmath.Vec2 {
	return vmath.Vec2{X: a.X + a.Width/2, Y: a.Y + a.Height/2}
}

// Contains reports whether p lies inside the area, edges included
func (a Area) Contains(p vmath.Vec2) bool {
	return p.X >= a.X && p.X <= a.X+a.Width && p.Y >= a.Y && p.Y <= a.Y+a.Height
}

// Overlaps reports whether two areas intersect with positive overlap
func (a Area) Overlaps(b Area) bool {
	return a.X < b.X+b.Width && b.X < a.X+a.Width &&
		a.Y < b.Y+b.Height && b.Y < a.Y+a.Height
}

// Inflate grows the area by m on every side
func (a Area) Inflate(m float64) Area {
	return Area{X: a.X - m, Y: a.Y - m, Width: a.Width + 2*m, Height: a.Height + 2*m}
}

// DistanceTo returns the distance from p to the nearest point of the area, 0 inside
func (a Area) DistanceTo(p vmath.Vec2) float64 {
	dx := math.Max(math.Max(a.X-p.X, 0), p.X-(a.X+a.Width))
	dy := math.Max(math.Max(a.Y-p.Y, 0), p.Y-(a.Y+a.Height))
	return math.Hypot(dx, dy)
}
