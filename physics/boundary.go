package physics

import (
	"math"

	"github.com/lixenwraith/botball/core"
	"github.com/lixenwraith/botball/parameter"
)

// bounceBoundary keeps the ball inside the field and goal notches
func bounceBoundary(b *core.Ball, f core.Field) {
	r := b.Radius

	if b.Pos.Y-r < f.Top() {
		b.Pos.Y = f.Top() + r
		b.Vel.Y = math.Abs(b.Vel.Y) * parameter.BoundaryDampening
	} else if b.Pos.Y+r > f.Bottom() {
		b.Pos.Y = f.Bottom() - r
		b.Vel.Y = -math.Abs(b.Vel.Y) * parameter.BoundaryDampening
	}

	bounceGoalLine(b, f, f.Left(), 1)
	bounceGoalLine(b, f, f.Right(), -1)
}

// bounceGoalLine handles one end line; dir is +1 when the field lies toward +X
// The mouth is open; behind it the notch is GoalDepth deep with posts at its rows
func bounceGoalLine(b *core.Ball, f core.Field, line, dir float64) {
	r := b.Radius
	behind := dir * (line - b.Pos.X) // > 0 once the center crosses the line
	back := f.GoalDepth

	switch {
	case f.InMouth(b.Pos.Y):
		// Back of the net
		if behind+r > back {
			b.Pos.X = line - dir*(back-r)
			b.Vel.X = dir * math.Abs(b.Vel.X) * parameter.BoundaryDampening
		}

	case behind > 0:
		// Inside the notch but outside the mouth rows: post hit
		if behind+r > back {
			b.Pos.X = line - dir*(back-r)
		}
		if dir*b.Vel.X < 0 {
			b.Vel.X = -b.Vel.X * parameter.PostRestitution
		}
		if math.Abs(b.Vel.Y) < parameter.PostMinNudge {
			nudge := parameter.PostMinNudge
			if b.Pos.Y > f.GoalBottom() {
				nudge = -nudge
			}
			b.Vel.Y = nudge
		}

	case behind+r > 0:
		// Field line
		b.Pos.X = line + dir*r
		b.Vel.X = dir * math.Abs(b.Vel.X) * parameter.BoundaryDampening
	}
}

// applyFriction decays ball velocity and snaps it to rest below the threshold
func applyFriction(b *core.Ball) {
	b.Vel = b.Vel.Scale(b.Friction)
	if b.Speed() < parameter.BallMinSpeed {
		b.Stop()
	}
}
