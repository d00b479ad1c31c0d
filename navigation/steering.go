package navigation

import (
	"math"

	"github.com/lixenwraith/botball/core"
	"github.com/lixenwraith/botball/parameter"
	"github.com/lixenwraith/botball/vmath"
)

// Steer turns r toward target by at most TurnRate, then accelerates when
// roughly facing it and brakes otherwise
func Steer(r *core.Robot, target vmath.Vec2, speedCap float64) {
	bearing := vmath.HeadingOf(target.Sub(r.Center()))
	diff := vmath.AngleDiff(r.Heading, bearing)
	turn := vmath.Clamp(diff, -r.TurnRate, r.TurnRate)
	r.SetHeading(r.Heading + turn)

	if math.Abs(diff-turn) < parameter.FacingThreshold {
		r.Accelerate(speedCap)
	} else {
		r.Brake()
	}
}

// Avoid turns one full step away from the blocked side and brakes
func Avoid(r *core.Robot, hits Beams) {
	r.SetHeading(r.Heading + hits.AvoidDirection()*r.TurnRate)
	r.Brake()
}

// Separation returns the repulsive displacement from robots closer than MinSpacing
// Opponents push harder than teammates
func Separation(v *View, self *core.Robot) vmath.Vec2 {
	c := self.Center()
	var sum vmath.Vec2

	for i := range v.Robots {
		other := &v.Robots[i]
		if other.ID == self.ID {
			continue
		}
		delta := c.Sub(other.Center())
		d := delta.Len()
		if d >= parameter.MinSpacing {
			continue
		}

		var dir vmath.Vec2
		if d == 0 {
			// Lower ID goes -X, matching the physics pair split
			dir = vmath.DefaultNormal
			if self.ID < other.ID {
				dir = dir.Scale(-1)
			}
		} else {
			dir = delta.Scale(1 / d)
		}

		weight := 1.0
		if other.Team != self.Team {
			weight = parameter.OpponentWeight
		}
		strength := (parameter.MinSpacing - d) / parameter.MinSpacing * parameter.SeparationGain * weight
		sum = sum.Add(dir.Scale(strength))
	}
	return sum
}

// ClampToField keeps r inside the field; a clamp stops the robot like a collision
// Idempotent: a clamped robot is not moved or stopped again
func ClampToField(r *core.Robot, field core.Field) bool {
	pos := r.Pos
	if !pos.IsFinite() {
		pos = field.Center().Sub(vmath.Vec2{X: r.Width / 2, Y: r.Height / 2})
	}
	clamped, changed := field.ClampBox(pos, r.Width, r.Height, parameter.BoundaryMargin)
	if changed || clamped != r.Pos {
		r.Pos = clamped
		r.Stop()
		return true
	}
	return false
}
