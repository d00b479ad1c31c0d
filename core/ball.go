package core

import (
	"github.com/lixenwraith/botball/parameter"
	"github.com/lixenwraith/botball/vmath"
)

// Ball is the simulated ball; Pos is the center
type Ball struct {
	Pos      vmath.Vec2
	Vel      vmath.Vec2
	Radius   float64
	Friction float64
	MaxSpeed float64
}

// NewBall creates a ball at rest at pos
func NewBall(pos vmath.Vec2) Ball {
	return Ball{
		Pos:      pos,
		Radius:   parameter.BallRadius,
		Friction: parameter.BallFriction,
		MaxSpeed: parameter.BallMaxSpeed,
	}
}

func (b Ball) Speed() float64 {
	return b.Vel.Len()
}

// Stop zeroes velocity
func (b *Ball) Stop() {
	b.Vel = vmath.Vec2{}
}

// Place moves the ball to pos at rest
func (b *Ball) Place(pos vmath.Vec2) {
	b.Pos = pos
	b.Vel = vmath.Vec2{}
}

// CapSpeed limits velocity to MaxSpeed
func (b *Ball) CapSpeed() {
	b.Vel = b.Vel.ClampLen(b.MaxSpeed)
}

// Bounds returns the ball's bounding box
func (b Ball) Bounds() Area {
	return Area{X: b.Pos.X - b.Radius, Y: b.Pos.Y - b.Radius, Width: 2 * b.Radius, Height: 2 * b.Radius}
}
