package physics

import (
	"math"

	"github.com/lixenwraith/botball/core"
	"github.com/lixenwraith/botball/parameter"
	"github.com/lixenwraith/botball/vmath"
)

// contactSlop ignores overlaps below float noise so resolved pairs stay resolved
const contactSlop = 1e-6

// pairNormal returns the unit vector from a to b
// Coincident centers fall back to DefaultNormal, negated when flip is set
func pairNormal(a, b vmath.Vec2, flip bool) (vmath.Vec2, float64) {
	delta := b.Sub(a)
	d := delta.Len()
	if d == 0 {
		n := vmath.DefaultNormal
		if flip {
			n = n.Scale(-1)
		}
		return n, 0
	}
	return delta.Scale(1 / d), d
}

// resolveBallRobot treats the robot as a circle of radius width/2
func resolveBallRobot(b *core.Ball, r *core.Robot) bool {
	rc := r.Center()
	minDist := b.Radius + r.Radius()
	n, d := pairNormal(rc, b.Pos, false)
	if d >= minDist-contactSlop {
		return false
	}

	b.Pos = rc.Add(n.Scale(minDist))

	// Closing speed relative to the robot's own motion
	vn := b.Vel.Sub(r.Velocity()).Dot(n)
	if vn < 0 {
		b.Vel = b.Vel.Sub(n.Scale((1 + parameter.BallRobotRestitution) * vn))
	}
	b.CapSpeed()
	return true
}

// resolveRobotPair splits the overlap evenly; closing robots stop instead of bouncing
func resolveRobotPair(w *World, a, b *core.Robot) bool {
	minDist := (a.Width + b.Width) / 2
	n, d := pairNormal(a.Center(), b.Center(), a.ID > b.ID)
	if d >= minDist-contactSlop {
		return false
	}

	closing := b.Velocity().Sub(a.Velocity()).Dot(n) < 0
	separatePair(w, a, b, n, minDist-d)

	if closing {
		a.Stop()
		b.Stop()
	}
	return true
}

// separatePair moves a against n and b along n by gap in total
// A share undone by a line or obstacle is handed to the other robot
func separatePair(w *World, a, b *core.Robot, n vmath.Vec2, gap float64) {
	half := gap / 2
	a.Pos = a.Pos.Sub(n.Scale(half))
	b.Pos = b.Pos.Add(n.Scale(half))

	if lost := blockedShare(w, a, n.Scale(-1)); lost > 0 {
		b.Pos = b.Pos.Add(n.Scale(lost))
		blockedShare(w, b, n)
	} else if lost := blockedShare(w, b, n); lost > 0 {
		a.Pos = a.Pos.Sub(n.Scale(lost))
		blockedShare(w, a, n.Scale(-1))
	}
}

// blockedShare settles r against the field and nearby obstacles after a push
// along dir and returns how much of that push was undone
func blockedShare(w *World, r *core.Robot, dir vmath.Vec2) float64 {
	before := r.Pos
	clampRobot(r, w.Field)
	for _, idx := range candidates(w, r.Bounds().Inflate(parameter.BroadPhaseMargin)) {
		resolveRobotObstacle(r, &w.Obstacles[idx])
	}
	clampRobot(r, w.Field)
	return math.Max(0, -r.Pos.Sub(before).Dot(dir))
}

// clampRobot keeps the robot's box inside the field, stopping it on contact
// A zero field leaves the robot untouched
func clampRobot(r *core.Robot, f core.Field) bool {
	if f.Width <= 0 || f.Height <= 0 {
		return false
	}
	pos, moved := f.ClampBox(r.Pos, r.Width, r.Height, parameter.BoundaryMargin)
	if !moved {
		return false
	}
	r.Pos = pos
	r.Stop()
	return true
}

// resolveBallObstacle bounces the ball off the nearest edge of the obstacle outline
func resolveBallObstacle(b *core.Ball, o *core.Obstacle) bool {
	edges := o.Edges()
	if len(edges) == 0 {
		return false
	}

	best := -1
	bestDist := math.Inf(1)
	var bestPoint vmath.Vec2
	for i, e := range edges {
		cp := e.ClosestPoint(b.Pos)
		if d := b.Pos.Dist(cp); d < bestDist {
			best, bestDist, bestPoint = i, d, cp
		}
	}

	inside := o.ContainsPoint(b.Pos)
	if !inside && bestDist >= b.Radius-contactSlop {
		return false
	}

	// Outward normal: from surface toward the ball, or away from the obstacle center
	var n vmath.Vec2
	if bestDist > 0 {
		n = b.Pos.Sub(bestPoint).Scale(1 / bestDist)
		if inside {
			n = n.Scale(-1)
		}
	} else {
		n = edges[best].Normal()
		if n.Dot(bestPoint.Sub(o.Center())) < 0 {
			n = n.Scale(-1)
		}
	}

	depth := b.Radius - bestDist
	if inside {
		depth = b.Radius + bestDist
	}

	if b.Vel.Dot(n) < 0 {
		b.Vel = b.Vel.Reflect(n).Scale(parameter.ObstacleDampening)
	}
	b.Pos = b.Pos.Add(n.Scale(depth + contactSlop))
	return true
}

// resolveRobotObstacle pushes the robot's box out along the center-to-center normal
// The push is the shortest travel along that normal that separates the boxes on either axis
func resolveRobotObstacle(r *core.Robot, o *core.Obstacle) bool {
	rb, ob := r.Bounds(), o.Bounds()
	if !rb.Overlaps(ob) {
		return false
	}

	delta := rb.Center().Sub(ob.Center())
	n := delta.NormalizeOr(vmath.DefaultNormal)

	hx := (rb.Width + ob.Width) / 2
	hy := (rb.Height + ob.Height) / 2
	push := math.Inf(1)
	if n.X != 0 {
		push = math.Min(push, (hx-math.Abs(delta.X))/math.Abs(n.X))
	}
	if n.Y != 0 {
		push = math.Min(push, (hy-math.Abs(delta.Y))/math.Abs(n.Y))
	}
	if math.IsInf(push, 0) || push < 0 {
		push = 0
	}

	r.Pos = r.Pos.Add(n.Scale(push + parameter.SeparationEpsilon))
	r.Stop()
	return true
}

// forceSeparation is the escape valve after the pass bound: every pair still
// overlapping is pushed to contact plus epsilon and its closing motion removed
func forceSeparation(w *World) int {
	n := 0

	if w.Ball != nil {
		b := w.Ball
		for _, r := range w.Robots {
			rc := r.Center()
			minDist := b.Radius + r.Radius()
			normal, d := pairNormal(rc, b.Pos, false)
			if d >= minDist-contactSlop {
				continue
			}
			b.Pos = rc.Add(normal.Scale(minDist + parameter.SeparationEpsilon))
			if vn := b.Vel.Dot(normal); vn < 0 {
				b.Vel = b.Vel.Sub(normal.Scale(vn))
			}
			n++
		}
	}

	for i := 0; i < len(w.Robots); i++ {
		for j := i + 1; j < len(w.Robots); j++ {
			a, b := w.Robots[i], w.Robots[j]
			minDist := (a.Width + b.Width) / 2
			normal, d := pairNormal(a.Center(), b.Center(), a.ID > b.ID)
			if d >= minDist-contactSlop {
				continue
			}
			separatePair(w, a, b, normal, minDist-d+parameter.SeparationEpsilon)
			a.Stop()
			b.Stop()
			n++
		}
	}

	for _, r := range w.Robots {
		for _, idx := range candidates(w, r.Bounds().Inflate(parameter.BroadPhaseMargin)) {
			if resolveRobotObstacle(r, &w.Obstacles[idx]) {
				n++
			}
		}
		if clampRobot(r, w.Field) {
			n++
		}
	}

	return n
}
