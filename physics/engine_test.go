package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/botball/core"
	"github.com/lixenwraith/botball/parameter"
	"github.com/lixenwraith/botball/vmath"
)

func newTestWorld() (*World, *core.Ball) {
	f := core.DefaultField()
	ball := core.NewBall(f.Center())
	return &World{Ball: &ball, Field: f}, &ball
}

func TestFrictionConvergesToRest(t *testing.T) {
	directions := []vmath.Vec2{{X: 1, Y: 0}, {X: 0.6, Y: 0.8}, {X: -1, Y: 0.3}}
	e := NewEngine()

	for _, dir := range directions {
		w, ball := newTestWorld()
		ball.Vel = dir.Normalize().Scale(parameter.BallMaxSpeed)

		prev := ball.Speed()
		ticks := 0
		for ball.Speed() > 0 {
			e.Step(w)
			ticks++
			if s := ball.Speed(); s > prev+1e-9 {
				t.Fatalf("Expected non-increasing speed, got %v after %v", s, prev)
			}
			prev = ball.Speed()
			if ticks > 300 {
				t.Fatalf("Expected rest within 300 ticks, speed still %v", ball.Speed())
			}
		}
	}
}

func TestKickSpeedCap(t *testing.T) {
	w, ball := newTestWorld()
	e := NewEngine()

	ApplyKick(ball, 40, -30)
	if s := ball.Speed(); math.Abs(s-parameter.BallMaxSpeed) > 1e-9 {
		t.Errorf("Expected kick clamped to %v, got %v", parameter.BallMaxSpeed, s)
	}

	e.Step(w)
	if s := ball.Speed(); s > parameter.BallMaxSpeed {
		t.Errorf("Expected speed <= %v after tick, got %v", parameter.BallMaxSpeed, s)
	}

	ApplyKick(ball, math.Inf(1), 0)
	if !ball.Vel.IsFinite() {
		t.Errorf("Expected finite velocity after bad kick, got %v", ball.Vel)
	}
}

func TestCoincidentRobotsSeparate(t *testing.T) {
	w, _ := newTestWorld()
	w.Ball.Pos = vmath.Vec2{X: 500, Y: 350}

	a := core.NewRobot(1, core.TeamRed, core.RoleAttacker, vmath.Vec2{X: 200, Y: 200})
	b := core.NewRobot(2, core.TeamBlue, core.RoleDefender, vmath.Vec2{X: 200, Y: 200})
	w.Robots = []*core.Robot{&a, &b}

	NewEngine().Step(w)

	d := a.Center().Dist(b.Center())
	minDist := (a.Width + b.Width) / 2
	if d < minDist-1e-3 {
		t.Errorf("Expected separation >= %v, got %v", minDist, d)
	}
	if !a.Pos.IsFinite() || !b.Pos.IsFinite() {
		t.Errorf("Expected finite positions, got %v and %v", a.Pos, b.Pos)
	}
}

func TestCoincidentRobotsAtLineSeparate(t *testing.T) {
	f := core.DefaultField()

	cases := []struct {
		name string
		x    float64
	}{
		{"left line", f.Left()},
		{"right line", f.Right() - parameter.RobotSize},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, _ := newTestWorld()
			a := core.NewRobot(1, core.TeamRed, core.RoleAttacker, vmath.Vec2{X: tc.x, Y: f.Top() + 100})
			b := core.NewRobot(2, core.TeamBlue, core.RoleDefender, vmath.Vec2{X: tc.x, Y: f.Top() + 100})
			a.Speed, b.Speed = 0, 0
			w.Robots = []*core.Robot{&a, &b}

			rep := NewEngine().Step(w)

			if d := a.Center().Dist(b.Center()); d < parameter.RobotSize-1e-3 {
				t.Errorf("Expected separation >= %v, got %v", parameter.RobotSize, d)
			}
			for _, r := range w.Robots {
				if _, moved := f.ClampBox(r.Pos, r.Width, r.Height, parameter.BoundaryMargin); moved {
					t.Errorf("Robot %d outside the field at %v", r.ID, r.Pos)
				}
			}
			if rep.Forced {
				t.Errorf("Expected the pair to settle without forced separation")
			}
		})
	}
}

func TestSeparationIntoObstacleHandsOff(t *testing.T) {
	w, _ := newTestWorld()
	w.Ball.Pos = vmath.Vec2{X: 600, Y: 400}
	w.Obstacles = []core.Obstacle{
		core.NewObstacle(core.ShapeRectangle, vmath.Vec2{X: 300, Y: 150}, 40, 40, "gray"),
	}
	w.Index = NewObstacleIndex(w.Obstacles)

	// Red touches the obstacle's left face; blue overlaps red from the left
	red := core.NewRobot(1, core.TeamRed, core.RoleAttacker, vmath.Vec2{X: 280, Y: 160})
	blue := core.NewRobot(2, core.TeamBlue, core.RoleAttacker, vmath.Vec2{X: 265, Y: 160})
	red.Speed, blue.Speed = 0, 0
	w.Robots = []*core.Robot{&red, &blue}

	NewEngine().Step(w)

	if d := red.Center().Dist(blue.Center()); d < parameter.RobotSize-1e-3 {
		t.Errorf("Expected robots apart by >= %v, got %v", parameter.RobotSize, d)
	}
	for _, r := range w.Robots {
		if r.Bounds().Overlaps(w.Obstacles[0].Bounds()) {
			t.Errorf("Robot %d overlaps obstacle: %v vs %v", r.ID, r.Bounds(), w.Obstacles[0].Bounds())
		}
	}
}

func TestForcedSeparationStaysInField(t *testing.T) {
	w, _ := newTestWorld()
	f := w.Field
	pos := vmath.Vec2{X: f.Left(), Y: f.Top()}
	a := core.NewRobot(1, core.TeamRed, core.RoleAttacker, pos)
	b := core.NewRobot(2, core.TeamRed, core.RoleDefender, pos)
	c := core.NewRobot(3, core.TeamBlue, core.RoleAttacker, pos)
	w.Robots = []*core.Robot{&a, &b, &c}

	e := &Engine{MaxIterations: 1}
	e.Step(w)

	for _, r := range w.Robots {
		if _, moved := f.ClampBox(r.Pos, r.Width, r.Height, parameter.BoundaryMargin); moved {
			t.Errorf("Robot %d outside the field at %v", r.ID, r.Pos)
		}
	}
}

func TestClosingRobotsStop(t *testing.T) {
	w, _ := newTestWorld()
	a := core.NewRobot(1, core.TeamRed, core.RoleAttacker, vmath.Vec2{X: 200, Y: 200})
	b := core.NewRobot(2, core.TeamBlue, core.RoleAttacker, vmath.Vec2{X: 218, Y: 200})
	a.Speed, b.Speed = 2, 2 // a faces 0°, b faces 180°
	w.Robots = []*core.Robot{&a, &b}

	NewEngine().Step(w)

	if a.Speed != 0 || b.Speed != 0 {
		t.Errorf("Expected both robots stopped, got %v and %v", a.Speed, b.Speed)
	}
}

func TestForcedSeparationFallback(t *testing.T) {
	w, _ := newTestWorld()
	a := core.NewRobot(1, core.TeamRed, core.RoleAttacker, vmath.Vec2{X: 300, Y: 200})
	b := core.NewRobot(2, core.TeamRed, core.RoleAttacker, vmath.Vec2{X: 300, Y: 200})
	c := core.NewRobot(3, core.TeamBlue, core.RoleAttacker, vmath.Vec2{X: 300, Y: 200})
	a.Speed, b.Speed, c.Speed = 1, 1, 1
	w.Robots = []*core.Robot{&a, &b, &c}

	e := &Engine{MaxIterations: 1}
	rep := e.Step(w)

	if !rep.Forced {
		t.Fatal("Expected forced separation when the pass bound is hit")
	}
	if rep.Iterations != 1 {
		t.Errorf("Expected 1 iteration, got %d", rep.Iterations)
	}
	for _, r := range w.Robots {
		if !r.Pos.IsFinite() {
			t.Errorf("Robot %d has non-finite position %v", r.ID, r.Pos)
		}
	}
}

func TestBallRobotRestitution(t *testing.T) {
	w, ball := newTestWorld()
	r := core.NewRobot(1, core.TeamRed, core.RoleAttacker, vmath.Vec2{X: 300, Y: 210})
	w.Robots = []*core.Robot{&r}

	// Ball left of the robot moving right into it
	ball.Pos = vmath.Vec2{X: 292, Y: 220}
	ball.Vel = vmath.Vec2{X: 4, Y: 0}

	NewEngine().Step(w)

	if ball.Vel.X >= 0 {
		t.Errorf("Expected ball to bounce back, got velocity %v", ball.Vel)
	}
	want := 4 * parameter.BallRobotRestitution * parameter.BallFriction
	if math.Abs(math.Abs(ball.Vel.X)-want) > 1e-6 {
		t.Errorf("Expected rebound speed %v, got %v", want, math.Abs(ball.Vel.X))
	}
	if d := ball.Pos.Dist(r.Center()); d < ball.Radius+r.Radius()-1e-3 {
		t.Errorf("Expected ball outside robot, distance %v", d)
	}
}

func TestBallAtRobotCenterUsesDefaultNormal(t *testing.T) {
	w, ball := newTestWorld()
	r := core.NewRobot(1, core.TeamRed, core.RoleAttacker, vmath.Vec2{X: 300, Y: 200})
	w.Robots = []*core.Robot{&r}
	ball.Pos = r.Center()

	NewEngine().Step(w)

	if !ball.Pos.IsFinite() || !ball.Vel.IsFinite() {
		t.Fatalf("Expected finite ball state, got pos %v vel %v", ball.Pos, ball.Vel)
	}
	if ball.Pos.X <= r.Center().X {
		t.Errorf("Expected ball pushed along +X, got %v", ball.Pos)
	}
}

func TestBallObstacleBounce(t *testing.T) {
	w, ball := newTestWorld()
	w.Obstacles = []core.Obstacle{core.NewObstacle(core.ShapeWall, vmath.Vec2{X: 300, Y: 150}, 20, 100, "gray")}
	w.Index = NewObstacleIndex(w.Obstacles)

	ball.Pos = vmath.Vec2{X: 292, Y: 200}
	ball.Vel = vmath.Vec2{X: 5, Y: 0}

	NewEngine().Step(w)

	if ball.Vel.X >= 0 {
		t.Errorf("Expected reflected velocity, got %v", ball.Vel)
	}
	want := 5 * parameter.ObstacleDampening * parameter.BallFriction
	if math.Abs(math.Abs(ball.Vel.X)-want) > 1e-6 {
		t.Errorf("Expected rebound speed %v, got %v", want, math.Abs(ball.Vel.X))
	}
	if ball.Pos.X+ball.Radius > 300+1e-3 {
		t.Errorf("Expected ball pushed out of wall, got x=%v", ball.Pos.X)
	}
}

func TestBallObstacleDegenerateEdge(t *testing.T) {
	w, ball := newTestWorld()
	// Zero-width wall has two zero-length edges
	w.Obstacles = []core.Obstacle{core.NewObstacle(core.ShapeWall, vmath.Vec2{X: 300, Y: 200}, 0, 0, "gray")}

	ball.Pos = vmath.Vec2{X: 300, Y: 200}
	ball.Vel = vmath.Vec2{X: -1, Y: 0}

	NewEngine().Step(w)

	if !ball.Pos.IsFinite() || !ball.Vel.IsFinite() {
		t.Fatalf("Expected finite ball state, got pos %v vel %v", ball.Pos, ball.Vel)
	}
}

func TestRobotObstaclePushOut(t *testing.T) {
	w, _ := newTestWorld()
	w.Ball.Pos = vmath.Vec2{X: 100, Y: 100}
	w.Obstacles = []core.Obstacle{
		core.NewObstacle(core.ShapeRectangle, vmath.Vec2{X: 300, Y: 200}, 40, 40, "gray"),
		core.NewObstacle(core.ShapeCircle, vmath.Vec2{X: 450, Y: 300}, 40, 40, "gray"),
	}
	w.Index = NewObstacleIndex(w.Obstacles)

	a := core.NewRobot(1, core.TeamRed, core.RoleAttacker, vmath.Vec2{X: 285, Y: 205})
	b := core.NewRobot(2, core.TeamRed, core.RoleAttacker, vmath.Vec2{X: 460, Y: 310})
	a.Speed, b.Speed = 0, 1
	w.Robots = []*core.Robot{&a, &b}

	NewEngine().Step(w)

	for i, r := range w.Robots {
		if r.Bounds().Overlaps(w.Obstacles[i].Bounds()) {
			t.Errorf("Robot %d still overlaps obstacle: %v vs %v", r.ID, r.Bounds(), w.Obstacles[i].Bounds())
		}
		if r.Speed != 0 {
			t.Errorf("Expected robot %d stopped, got speed %v", r.ID, r.Speed)
		}
	}
}

func TestFieldLineBounce(t *testing.T) {
	w, ball := newTestWorld()
	// Left line, well above the mouth
	ball.Pos = vmath.Vec2{X: 26, Y: 100}
	ball.Vel = vmath.Vec2{X: -4, Y: 0}

	rep := NewEngine().Step(w)

	if ball.Vel.X <= 0 {
		t.Errorf("Expected bounce off left line, got %v", ball.Vel)
	}
	if ball.Pos.X-ball.Radius < w.Field.Left()-1e-9 {
		t.Errorf("Expected ball inside field, got x=%v", ball.Pos.X)
	}
	if rep.CheckGoal {
		t.Error("Expected no goal check for a line bounce")
	}
}

func TestMouthIsOpen(t *testing.T) {
	w, ball := newTestWorld()
	ball.Pos = vmath.Vec2{X: 23, Y: w.Field.Center().Y}
	ball.Vel = vmath.Vec2{X: -4, Y: 0}

	rep := NewEngine().Step(w)

	if !rep.CheckGoal {
		t.Errorf("Expected goal check after crossing the line, ball at %v", ball.Pos)
	}
	if ball.Pos.X > w.Field.Left() {
		t.Errorf("Expected ball behind the goal line, got x=%v", ball.Pos.X)
	}
}

func TestGoalPostHit(t *testing.T) {
	f := core.DefaultField()
	ball := core.NewBall(vmath.Vec2{X: f.Left() - 10, Y: f.GoalTop() - 3})
	ball.Vel = vmath.Vec2{X: -2, Y: 0}

	bounceBoundary(&ball, f)

	if ball.Vel.X <= 0 {
		t.Errorf("Expected outward horizontal bounce, got %v", ball.Vel)
	}
	if math.Abs(ball.Vel.X-2*parameter.PostRestitution) > 1e-9 {
		t.Errorf("Expected post restitution, got %v", ball.Vel.X)
	}
	if ball.Vel.Y < parameter.PostMinNudge {
		t.Errorf("Expected vertical nudge toward the mouth, got %v", ball.Vel.Y)
	}

	// Lower post nudges upward
	low := core.NewBall(vmath.Vec2{X: f.Right() + 10, Y: f.GoalBottom() + 3})
	bounceBoundary(&low, f)
	if low.Vel.Y > -parameter.PostMinNudge {
		t.Errorf("Expected upward nudge at lower post, got %v", low.Vel.Y)
	}
}

func TestObstacleIndexMatchesBruteForce(t *testing.T) {
	obstacles := []core.Obstacle{
		core.NewObstacle(core.ShapeWall, vmath.Vec2{X: 50, Y: 50}, 30, 10, ""),
		core.NewObstacle(core.ShapeCircle, vmath.Vec2{X: 200, Y: 200}, 40, 40, ""),
		core.NewObstacle(core.ShapeRectangle, vmath.Vec2{X: 400, Y: 100}, 60, 60, ""),
		core.NewObstacle(core.ShapeWall, vmath.Vec2{X: 210, Y: 180}, 5, 100, ""),
	}
	ix := NewObstacleIndex(obstacles)
	if ix.Len() != len(obstacles) {
		t.Fatalf("Expected %d indexed, got %d", len(obstacles), ix.Len())
	}

	queries := []core.Area{
		{X: 0, Y: 0, Width: 100, Height: 100},
		{X: 190, Y: 190, Width: 30, Height: 30},
		{X: 500, Y: 500, Width: 10, Height: 10},
		{X: 0, Y: 0, Width: 700, Height: 500},
	}

	for _, q := range queries {
		var want []int
		for i := range obstacles {
			if q.Overlaps(obstacles[i].Bounds()) {
				want = append(want, i)
			}
		}
		got := ix.Query(q)
		if len(got) != len(want) {
			t.Errorf("Query %v: expected %v, got %v", q, want, got)
			continue
		}
		for i := range got {
			if got[i] != want[i] {
				t.Errorf("Query %v: expected %v, got %v", q, want, got)
				break
			}
		}
	}
}
