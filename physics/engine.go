package physics

import (
	"github.com/lixenwraith/botball/core"
	"github.com/lixenwraith/botball/parameter"
)

// World is the mutable view one physics step operates on
// Ball and Robots are mutated in place; Obstacles and Field are read-only
type World struct {
	Ball      *core.Ball
	Robots    []*core.Robot
	Obstacles []core.Obstacle
	Field     core.Field
	Index     *ObstacleIndex // Optional broad phase
}

// Report summarizes one step
type Report struct {
	// CheckGoal is set when the ball center lies on or beyond a goal line
	CheckGoal bool
	// Iterations is the number of resolution passes run
	Iterations int
	// Contacts counts resolved pairs across all passes
	Contacts int
	// Forced is set when the pass bound was hit and forced separation ran
	Forced bool
	// Clamped counts robots pulled back inside the field lines
	Clamped int
}

// Engine runs fixed-step integration and iterative collision resolution
type Engine struct {
	MaxIterations int
}

// NewEngine creates an engine with the default iteration bound
func NewEngine() *Engine {
	return &Engine{MaxIterations: parameter.MaxCollisionIterations}
}

// Step advances the world by one tick
func (e *Engine) Step(w *World) Report {
	var rep Report

	integrate(w)

	maxIter := e.MaxIterations
	if maxIter < 1 {
		maxIter = 1
	}

	settled := false
	for rep.Iterations < maxIter {
		rep.Iterations++
		n, clamped := resolvePass(w)
		rep.Contacts += n
		rep.Clamped += clamped
		if n == 0 {
			settled = true
			break
		}
	}

	if !settled {
		rep.Forced = true
		rep.Contacts += forceSeparation(w)
	}

	if w.Ball != nil {
		bounceBoundary(w.Ball, w.Field)
		applyFriction(w.Ball)
		rep.CheckGoal = w.Ball.Pos.X <= w.Field.Left() || w.Ball.Pos.X >= w.Field.Right()
	}

	return rep
}

// integrate moves every body once by its current velocity
func integrate(w *World) {
	if w.Ball != nil {
		w.Ball.Pos = w.Ball.Pos.Add(w.Ball.Vel)
	}
	for _, r := range w.Robots {
		r.Pos = r.Pos.Add(r.Velocity())
	}
}

// resolvePass runs one detect-and-resolve sweep over all four pair classes,
// then pulls robots back inside the field; clamps count as contacts
func resolvePass(w *World) (n, clamped int) {
	if w.Ball != nil {
		for _, r := range w.Robots {
			if resolveBallRobot(w.Ball, r) {
				n++
			}
		}
	}

	for i := 0; i < len(w.Robots); i++ {
		for j := i + 1; j < len(w.Robots); j++ {
			if resolveRobotPair(w, w.Robots[i], w.Robots[j]) {
				n++
			}
		}
	}

	if len(w.Obstacles) > 0 && w.Ball != nil {
		for _, idx := range candidates(w, w.Ball.Bounds().Inflate(parameter.BroadPhaseMargin)) {
			if resolveBallObstacle(w.Ball, &w.Obstacles[idx]) {
				n++
			}
		}
	}

	for _, r := range w.Robots {
		for _, idx := range candidates(w, r.Bounds().Inflate(parameter.BroadPhaseMargin)) {
			if resolveRobotObstacle(r, &w.Obstacles[idx]) {
				n++
			}
		}
	}

	for _, r := range w.Robots {
		if clampRobot(r, w.Field) {
			clamped++
		}
	}
	return n + clamped, clamped
}

// ApplyKick adds an impulse to the ball and clamps the resulting speed
func ApplyKick(b *core.Ball, dx, dy float64) {
	b.Vel.X += dx
	b.Vel.Y += dy
	if !b.Vel.IsFinite() {
		b.Stop()
		return
	}
	b.CapSpeed()
}
