// Package navigation is the per-robot reactive controller: role targeting,
// sensor-fan obstacle avoidance, steering, spacing and boundary clamping.
// Decisions for a tick are computed from one View before any robot moves.
package navigation

import (
	"github.com/lixenwraith/botball/core"
	"github.com/lixenwraith/botball/parameter"
	"github.com/lixenwraith/botball/physics"
	"github.com/lixenwraith/botball/vmath"
)

// View is the read-only world all decisions of one tick are computed from
type View struct {
	Field     core.Field
	Ball      core.Ball
	Robots    []core.Robot
	Obstacles []core.Obstacle
	Index     *physics.ObstacleIndex
	// Targets holds formation targets (box centers) by robot
	Targets map[core.RobotID]vmath.Vec2
}

func (v *View) nearbyObstacles(area core.Area) []int {
	if v.Index != nil {
		return v.Index.Query(area)
	}
	out := make([]int, len(v.Obstacles))
	for i := range out {
		out[i] = i
	}
	return out
}

// Mode is the branch a decision took
type Mode uint8

const (
	ModeSeek Mode = iota
	ModeAvoid
	ModeHold
)

func (m Mode) String() string {
	switch m {
	case ModeSeek:
		return "seek"
	case ModeAvoid:
		return "avoid"
	case ModeHold:
		return "hold"
	default:
		return "unknown"
	}
}

// Decision is the outcome for one robot, applied after all robots decided
type Decision struct {
	ID           core.RobotID
	Heading      float64
	Speed        float64
	Displacement vmath.Vec2
	Target       vmath.Vec2
	Mode         Mode
	Beams        Beams
}

// Decide computes one robot's decision without mutating the view
func Decide(v *View, self core.Robot) Decision {
	target, speedCap, hold := targetFor(v, &self)
	hits := Sense(v, &self)

	d := Decision{ID: self.ID, Target: target, Beams: hits}

	r := self
	switch {
	case hits.Any():
		d.Mode = ModeAvoid
		Avoid(&r, hits)
	case hold:
		d.Mode = ModeHold
		r.Brake()
	default:
		d.Mode = ModeSeek
		Steer(&r, target, speedCap)
	}

	if disp := Separation(v, &self); disp != (vmath.Vec2{}) {
		d.Displacement = disp
		r.Brake()
	}

	d.Heading = r.Heading
	d.Speed = r.Speed
	return d
}

// DecideAll computes decisions for every robot in view order
func DecideAll(v *View) []Decision {
	out := make([]Decision, len(v.Robots))
	for i := range v.Robots {
		out[i] = Decide(v, v.Robots[i])
	}
	return out
}

// Apply commits a decision and clamps the robot into the field
// Reports whether the clamp moved the robot
func Apply(r *core.Robot, d Decision, field core.Field) bool {
	r.SetHeading(d.Heading)
	r.SetSpeed(d.Speed)
	r.Pos = r.Pos.Add(d.Displacement)
	return ClampToField(r, field)
}

// ApplyAll commits decisions by robot ID and returns the number of clamps
func ApplyAll(robots []*core.Robot, decisions []Decision, field core.Field) int {
	byID := make(map[core.RobotID]*core.Robot, len(robots))
	for _, r := range robots {
		byID[r.ID] = r
	}
	clamps := 0
	for _, d := range decisions {
		if r, ok := byID[d.ID]; ok && Apply(r, d, field) {
			clamps++
		}
	}
	return clamps
}

// targetFor picks the role target, the speed cap, and whether the robot has arrived
func targetFor(v *View, r *core.Robot) (target vmath.Vec2, speedCap float64, hold bool) {
	f := v.Field
	ball := v.Ball.Pos
	c := r.Center()
	speedCap = r.MaxSpeed
	formationTarget, hasFormation := v.Targets[r.ID]

	switch r.Role {
	case core.RoleGoalkeeper:
		x := f.GoalLineX(r.Team) + side(r.Team)*(parameter.GoalkeeperOffset+r.Width/2)
		if hasFormation {
			x = formationTarget.X
		}
		lo := f.GoalTop() - parameter.GoalkeeperReach
		hi := f.GoalBottom() + parameter.GoalkeeperReach
		target = vmath.Vec2{X: x, Y: vmath.Clamp(ball.Y, lo, hi)}
		hold = c.Dist(target) < parameter.ArrivalRadius

	case core.RoleDefender:
		switch {
		case f.InDefensiveHalf(r.Team, ball.X):
			target = intercept(f, r.Team, &v.Ball)
		case hasFormation:
			target = formationTarget
		default:
			target = f.Relative(core.Mirror(r.Team, parameter.DefenderLine), 0.5)
		}
		hold = c.Dist(target) < parameter.ArrivalRadius

	case core.RoleAttacker:
		target = ball
		speedCap = r.MaxSpeed * vmath.Clamp(c.Dist(ball)/parameter.ApproachRadius, parameter.ApproachMinFactor, 1)

	default:
		target = c
		hold = true
	}
	return target, speedCap, hold
}

// intercept projects the ball forward and keeps the point in team's half
func intercept(f core.Field, team core.Team, b *core.Ball) vmath.Vec2 {
	p := b.Pos.Add(b.Vel.Scale(parameter.InterceptLookahead))
	mid := f.Center().X
	if team == core.TeamRed {
		p.X = vmath.Clamp(p.X, f.Left(), mid)
	} else {
		p.X = vmath.Clamp(p.X, mid, f.Right())
	}
	p.Y = vmath.Clamp(p.Y, f.Top(), f.Bottom())
	return p
}

// side is +1 when team's field lies toward +X from its goal line
func side(team core.Team) float64 {
	if team == core.TeamRed {
		return 1
	}
	return -1
}
