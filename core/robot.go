package core

import (
	"github.com/lixenwraith/botball/parameter"
	"github.com/lixenwraith/botball/vmath"
)

// RobotID is a stable handle that survives roster reordering
type RobotID uint32

// Robot is one autonomous player
// Pos is the top-left of the collision box; heading in degrees [0,360)
type Robot struct {
	ID      RobotID
	Team    Team
	Role    Role
	Pos     vmath.Vec2
	Heading float64
	Speed   float64

	MaxSpeed     float64
	Acceleration float64
	TurnRate     float64
	SensorRange  float64
	SensorFOV    float64
	Width        float64
	Height       float64
}

// NewRobot creates a robot at pos facing the opposing goal
func NewRobot(id RobotID, team Team, role Role, pos vmath.Vec2) Robot {
	heading := 0.0
	if team == TeamBlue {
		heading = 180
	}
	return Robot{
		ID:           id,
		Team:         team,
		Role:         role,
		Pos:          pos,
		Heading:      heading,
		MaxSpeed:     parameter.RobotMaxSpeed,
		Acceleration: parameter.RobotAcceleration,
		TurnRate:     parameter.RobotTurnRate,
		SensorRange:  parameter.SensorRange,
		SensorFOV:    parameter.SensorFOV,
		Width:        parameter.RobotSize,
		Height:       parameter.RobotSize,
	}
}

// Center returns the center of the collision box
func (r *Robot) Center() vmath.Vec2 {
	return vmath.Vec2{X: r.Pos.X + r.Width/2, Y: r.Pos.Y + r.Height/2}
}

// SetCenter moves the robot so its box is centered on c
func (r *Robot) SetCenter(c vmath.Vec2) {
	r.Pos = vmath.Vec2{X: c.X - r.Width/2, Y: c.Y - r.Height/2}
}

// Velocity returns speed along heading
func (r *Robot) Velocity() vmath.Vec2 {
	return vmath.HeadingVector(r.Heading).Scale(r.Speed)
}

// Bounds returns the axis-aligned collision box
func (r *Robot) Bounds() Area {
	return Area{X: r.Pos.X, Y: r.Pos.Y, Width: r.Width, Height: r.Height}
}

// Radius is the circle radius used against the ball
func (r *Robot) Radius() float64 {
	return r.Width / 2
}

// SetHeading stores the heading in canonical range
func (r *Robot) SetHeading(deg float64) {
	r.Heading = vmath.NormalizeDegrees(deg)
}

// SetSpeed stores the speed clamped to [0, MaxSpeed]
func (r *Robot) SetSpeed(s float64) {
	r.Speed = vmath.Clamp(s, 0, r.MaxSpeed)
}

// Accelerate raises speed by one acceleration step up to limit
func (r *Robot) Accelerate(limit float64) {
	if limit > r.MaxSpeed {
		limit = r.MaxSpeed
	}
	if r.Speed > limit {
		r.Brake()
		if r.Speed < limit {
			r.Speed = limit
		}
		return
	}
	r.SetSpeed(min(r.Speed+r.Acceleration, limit))
}

// Brake lowers speed by the braking step, floor 0
func (r *Robot) Brake() {
	r.SetSpeed(r.Speed - parameter.RobotBrakeFactor*r.Acceleration)
}

// Stop zeroes speed, the collision response
func (r *Robot) Stop() {
	r.Speed = 0
}

// Forward returns the unit heading vector
func (r *Robot) Forward() vmath.Vec2 {
	return vmath.HeadingVector(r.Heading)
}
