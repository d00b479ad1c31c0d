package core

import (
	"math"
	"testing"

	"github.com/lixenwraith/botball/vmath"
)

const geomEps = 1e-9

func assertEdgeBounds(t *testing.T, o *Obstacle) {
	t.Helper()
	lo, hi := vmath.SegmentsBounds(o.Edges())
	if math.Abs(lo.X-o.Pos.X) > geomEps || math.Abs(lo.Y-o.Pos.Y) > geomEps {
		t.Errorf("%s: expected edge min (%v,%v), got %v", o.Shape, o.Pos.X, o.Pos.Y, lo)
	}
	if math.Abs(hi.X-(o.Pos.X+o.Width)) > geomEps || math.Abs(hi.Y-(o.Pos.Y+o.Height)) > geomEps {
		t.Errorf("%s: expected edge max (%v,%v), got %v", o.Shape, o.Pos.X+o.Width, o.Pos.Y+o.Height, hi)
	}
}

func TestObstacleEdgesFollowReposition(t *testing.T) {
	moves := []vmath.Vec2{{X: 100, Y: 80}, {X: 0, Y: 0}, {X: 333.5, Y: 12.25}}

	for _, shape := range []Shape{ShapeWall, ShapeRectangle, ShapeCircle} {
		o := NewObstacle(shape, vmath.Vec2{X: 50, Y: 60}, 40, 30, "gray")
		assertEdgeBounds(t, &o)

		for _, m := range moves {
			o.MoveTo(m)
			assertEdgeBounds(t, &o)
		}

		o.Resize(70, 25)
		assertEdgeBounds(t, &o)
	}
}

func TestObstacleEdgeCounts(t *testing.T) {
	box := NewObstacle(ShapeRectangle, vmath.Vec2{}, 10, 10, "")
	if n := len(box.Edges()); n != 4 {
		t.Errorf("Expected 4 box edges, got %d", n)
	}
	circle := NewObstacle(ShapeCircle, vmath.Vec2{}, 10, 10, "")
	if n := len(circle.Edges()); n != 16 {
		t.Errorf("Expected 16 circle edges, got %d", n)
	}
}

func TestObstacleContainsAndDistance(t *testing.T) {
	circle := NewObstacle(ShapeCircle, vmath.Vec2{X: 0, Y: 0}, 20, 20, "")

	if !circle.ContainsPoint(vmath.Vec2{X: 10, Y: 10}) {
		t.Error("Expected circle to contain its center")
	}
	if circle.ContainsPoint(vmath.Vec2{X: 1, Y: 1}) {
		t.Error("Expected circle to exclude its bounding box corner")
	}
	if d := circle.DistanceTo(vmath.Vec2{X: 10, Y: 10}); d != 0 {
		t.Errorf("Expected 0 distance inside, got %v", d)
	}

	wall := NewObstacle(ShapeWall, vmath.Vec2{X: 0, Y: 0}, 10, 10, "")
	if d := wall.DistanceTo(vmath.Vec2{X: 13, Y: 14}); math.Abs(d-5) > geomEps {
		t.Errorf("Expected distance 5 to wall corner, got %v", d)
	}
}

func TestObstacleCloneIsIndependent(t *testing.T) {
	o := NewObstacle(ShapeWall, vmath.Vec2{X: 5, Y: 5}, 10, 10, "")
	c := o.Clone()
	o.MoveTo(vmath.Vec2{X: 100, Y: 100})
	assertEdgeBounds(t, &c)
	if c.Pos != (vmath.Vec2{X: 5, Y: 5}) {
		t.Errorf("Expected clone to keep its position, got %v", c.Pos)
	}
}
