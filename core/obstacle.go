package core

import (
	"math"

	"github.com/lixenwraith/botball/parameter"
	"github.com/lixenwraith/botball/vmath"
)

// Obstacle is a static body placed on the field
// Edges are derived from position and size and rebuilt by every mutator
type Obstacle struct {
	Shape  Shape
	Pos    vmath.Vec2 // Top-left of the bounding box
	Width  float64
	Height float64
	Color  string

	edges []vmath.Segment
}

// NewObstacle creates an obstacle with its edge cache built
func NewObstacle(shape Shape, pos vmath.Vec2, width, height float64, color string) Obstacle {
	o := Obstacle{Shape: shape, Pos: pos, Width: width, Height: height, Color: color}
	o.rebuildEdges()
	return o
}

// MoveTo repositions the obstacle and rebuilds its edges
func (o *Obstacle) MoveTo(pos vmath.Vec2) {
	o.Pos = pos
	o.rebuildEdges()
}

// Resize changes dimensions and rebuilds its edges
func (o *Obstacle) Resize(width, height float64) {
	o.Width, o.Height = width, height
	o.rebuildEdges()
}

// Edges returns the cached outline; callers must not modify it
func (o *Obstacle) Edges() []vmath.Segment {
	if o.edges == nil {
		o.rebuildEdges()
	}
	return o.edges
}

// Clone returns a copy with its own edge slice
func (o Obstacle) Clone() Obstacle {
	c := o
	c.edges = append([]vmath.Segment(nil), o.edges...)
	return c
}

func (o *Obstacle) Bounds() Area {
	return Area{X: o.Pos.X, Y: o.Pos.Y, Width: o.Width, Height: o.Height}
}

func (o *Obstacle) Center() vmath.Vec2 {
	return o.Bounds().Center()
}

// ContainsPoint reports whether p lies inside the obstacle outline
func (o *Obstacle) ContainsPoint(p vmath.Vec2) bool {
	switch o.Shape {
	case ShapeCircle:
		rx, ry := o.Width/2, o.Height/2
		if rx == 0 || ry == 0 {
			return false
		}
		c := o.Center()
		dx, dy := (p.X-c.X)/rx, (p.Y-c.Y)/ry
		return dx*dx+dy*dy <= 1
	default:
		return o.Bounds().Contains(p)
	}
}

// DistanceTo returns the distance from p to the outline, 0 inside
func (o *Obstacle) DistanceTo(p vmath.Vec2) float64 {
	if o.ContainsPoint(p) {
		return 0
	}
	best := math.Inf(1)
	for _, e := range o.Edges() {
		if d := e.DistanceTo(p); d < best {
			best = d
		}
	}
	return best
}

func (o *Obstacle) rebuildEdges() {
	switch o.Shape {
	case ShapeCircle:
		o.edges = circleEdges(o.Center(), o.Width/2, o.Height/2, parameter.CircleSegments)
	default:
		x, y, w, h := o.Pos.X, o.Pos.Y, o.Width, o.Height
		o.edges = []vmath.Segment{
			vmath.Seg(x, y, x+w, y),
			vmath.Seg(x+w, y, x+w, y+h),
			vmath.Seg(x+w, y+h, x, y+h),
			vmath.Seg(x, y+h, x, y),
		}
	}
}

// circleEdges approximates an ellipse inscribed in the bounding box
// Vertices land on the four axis extremes so the outline bounds equal the box
func circleEdges(c vmath.Vec2, rx, ry float64, n int) []vmath.Segment {
	pts := make([]vmath.Vec2, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = vmath.Vec2{X: c.X + rx*math.Cos(a), Y: c.Y + ry*math.Sin(a)}
	}
	edges := make([]vmath.Segment, n)
	for i := range pts {
		edges[i] = vmath.Segment{A: pts[i], B: pts[(i+1)%n]}
	}
	return edges
}
