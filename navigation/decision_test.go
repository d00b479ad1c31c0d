package navigation

import (
	"math"
	"testing"

	"github.com/lixenwraith/botball/core"
	"github.com/lixenwraith/botball/parameter"
	"github.com/lixenwraith/botball/physics"
	"github.com/lixenwraith/botball/vmath"
)

func newView(robots ...core.Robot) *View {
	f := core.DefaultField()
	return &View{
		Field:  f,
		Ball:   core.NewBall(f.Center()),
		Robots: robots,
	}
}

func robotAt(id core.RobotID, team core.Team, role core.Role, cx, cy float64) core.Robot {
	r := core.NewRobot(id, team, role, vmath.Vec2{})
	r.SetCenter(vmath.Vec2{X: cx, Y: cy})
	return r
}

func TestTurnIsBounded(t *testing.T) {
	r := robotAt(1, core.TeamRed, core.RoleAttacker, 400, 220)
	v := newView(r)
	v.Ball.Pos = vmath.Vec2{X: 200, Y: 220} // directly behind

	d := Decide(v, r)

	if diff := math.Abs(vmath.AngleDiff(r.Heading, d.Heading)); diff > r.TurnRate+1e-9 {
		t.Errorf("Expected turn <= %v, got %v", r.TurnRate, diff)
	}
	if d.Speed != 0 {
		t.Errorf("Expected braking while facing away, got speed %v", d.Speed)
	}
}

func TestAttackerAcceleratesWhenFacing(t *testing.T) {
	r := robotAt(1, core.TeamRed, core.RoleAttacker, 100, 220)
	v := newView(r)

	d := Decide(v, r)

	if d.Mode != ModeSeek {
		t.Errorf("Expected seek, got %v", d.Mode)
	}
	if math.Abs(d.Speed-r.Acceleration) > 1e-9 {
		t.Errorf("Expected speed %v after one step, got %v", r.Acceleration, d.Speed)
	}
}

func TestAttackerSlowsOnApproach(t *testing.T) {
	r := robotAt(1, core.TeamRed, core.RoleAttacker, 305, 220)
	r.Speed = r.MaxSpeed
	v := newView(r)

	d := Decide(v, r)

	if d.Speed >= r.MaxSpeed {
		t.Errorf("Expected slowdown near the ball, got %v", d.Speed)
	}
}

func TestSpeedStaysInRange(t *testing.T) {
	for _, start := range []float64{0, 0.2, 2.9, 3} {
		r := robotAt(1, core.TeamBlue, core.RoleDefender, 500, 100)
		r.Speed = start
		d := Decide(newView(r), r)
		if d.Speed < 0 || d.Speed > r.MaxSpeed {
			t.Errorf("Start %v: speed %v out of range", start, d.Speed)
		}
		if d.Heading < 0 || d.Heading >= 360 {
			t.Errorf("Start %v: heading %v out of range", start, d.Heading)
		}
	}
}

func TestSensorAvoidance(t *testing.T) {
	r := robotAt(1, core.TeamRed, core.RoleAttacker, 100, 220)
	r.Speed = 2
	v := newView(r)
	v.Obstacles = []core.Obstacle{core.NewObstacle(core.ShapeWall, vmath.Vec2{X: 150, Y: 200}, 10, 40, "gray")}
	v.Index = physics.NewObstacleIndex(v.Obstacles)

	d := Decide(v, r)

	if !d.Beams[parameter.SensorBeams/2] {
		t.Fatalf("Expected center beam hit, got %v", d.Beams)
	}
	if d.Mode != ModeAvoid {
		t.Errorf("Expected avoid mode, got %v", d.Mode)
	}
	if d.Speed >= r.Speed {
		t.Errorf("Expected braking while avoiding, got %v", d.Speed)
	}
	if diff := math.Abs(vmath.AngleDiff(r.Heading, d.Heading)); math.Abs(diff-r.TurnRate) > 1e-9 {
		t.Errorf("Expected full turn step, got %v", diff)
	}
}

func TestSenseWithoutIndexMatchesIndexed(t *testing.T) {
	r := robotAt(1, core.TeamRed, core.RoleAttacker, 300, 220)
	r.SetHeading(45)
	v := newView(r)
	v.Obstacles = []core.Obstacle{
		core.NewObstacle(core.ShapeCircle, vmath.Vec2{X: 340, Y: 250}, 30, 30, ""),
		core.NewObstacle(core.ShapeRectangle, vmath.Vec2{X: 100, Y: 50}, 30, 30, ""),
	}

	plain := Sense(v, &r)
	v.Index = physics.NewObstacleIndex(v.Obstacles)
	indexed := Sense(v, &r)

	if plain != indexed {
		t.Errorf("Expected same hits, got %v and %v", plain, indexed)
	}
	if !plain.Any() {
		t.Error("Expected the circle ahead to be detected")
	}
}

func TestAvoidDirection(t *testing.T) {
	tests := []struct {
		beams Beams
		want  float64
	}{
		{Beams{false, false, true, false, false}, 1},
		{Beams{false, false, false, true, true}, -1},
		{Beams{true, true, false, false, false}, 1},
		{Beams{true, false, false, true, true}, -1},
	}
	for _, tt := range tests {
		if got := tt.beams.AvoidDirection(); got != tt.want {
			t.Errorf("%v: expected %v, got %v", tt.beams, tt.want, got)
		}
	}
}

func TestSeparationWeightsOpponents(t *testing.T) {
	self := robotAt(1, core.TeamRed, core.RoleDefender, 200, 200)
	mate := robotAt(2, core.TeamRed, core.RoleDefender, 215, 200)
	foe := robotAt(3, core.TeamBlue, core.RoleDefender, 215, 200)

	withMate := Separation(newView(self, mate), &self)
	withFoe := Separation(newView(self, foe), &self)

	if withMate.X >= 0 {
		t.Errorf("Expected push away from teammate, got %v", withMate)
	}
	if math.Abs(withFoe.X) <= math.Abs(withMate.X) {
		t.Errorf("Expected opponent push stronger: mate %v foe %v", withMate, withFoe)
	}
}

func TestCoincidentSeparationOpposes(t *testing.T) {
	a := robotAt(1, core.TeamRed, core.RoleDefender, 200, 200)
	b := robotAt(2, core.TeamBlue, core.RoleDefender, 200, 200)
	v := newView(a, b)

	da := Separation(v, &a)
	db := Separation(v, &b)
	if da.X >= 0 || db.X <= 0 {
		t.Errorf("Expected opposite displacements, got %v and %v", da, db)
	}
}

func TestDecisionsIndependentOfOrder(t *testing.T) {
	robots := []core.Robot{
		robotAt(1, core.TeamRed, core.RoleAttacker, 300, 210),
		robotAt(2, core.TeamBlue, core.RoleAttacker, 310, 215),
		robotAt(3, core.TeamRed, core.RoleGoalkeeper, 45, 220),
		robotAt(4, core.TeamBlue, core.RoleDefender, 450, 300),
	}
	reversed := make([]core.Robot, len(robots))
	for i := range robots {
		reversed[len(robots)-1-i] = robots[i]
	}

	forward := DecideAll(newView(robots...))
	backward := DecideAll(newView(reversed...))

	byID := make(map[core.RobotID]Decision)
	for _, d := range backward {
		byID[d.ID] = d
	}
	for _, d := range forward {
		if byID[d.ID] != d {
			t.Errorf("Robot %d: decision depends on order: %+v vs %+v", d.ID, d, byID[d.ID])
		}
	}
}

func TestGoalkeeperTarget(t *testing.T) {
	r := robotAt(1, core.TeamBlue, core.RoleGoalkeeper, 580, 220)
	v := newView(r)
	v.Ball.Pos = vmath.Vec2{X: 400, Y: 30}

	target, _, _ := targetFor(v, &r)

	wantY := v.Field.GoalTop() - parameter.GoalkeeperReach
	if target.Y != wantY {
		t.Errorf("Expected goalkeeper y clamped to %v, got %v", wantY, target.Y)
	}
	wantX := v.Field.Right() - parameter.GoalkeeperOffset - r.Width/2
	if target.X != wantX {
		t.Errorf("Expected goalkeeper x %v, got %v", wantX, target.X)
	}

	v.Targets = map[core.RobotID]vmath.Vec2{1: {X: 555, Y: 220}}
	target, _, _ = targetFor(v, &r)
	if target.X != 555 {
		t.Errorf("Expected formation x 555, got %v", target.X)
	}
}

func TestDefenderTarget(t *testing.T) {
	r := robotAt(1, core.TeamRed, core.RoleDefender, 150, 220)
	v := newView(r)
	home := vmath.Vec2{X: 200, Y: 150}
	v.Targets = map[core.RobotID]vmath.Vec2{1: home}

	// Ball in the opposing half: hold formation
	v.Ball.Pos = vmath.Vec2{X: 500, Y: 220}
	if target, _, _ := targetFor(v, &r); target != home {
		t.Errorf("Expected formation home %v, got %v", home, target)
	}

	// Ball in own half moving toward goal: intercept ahead of it, inside the half
	v.Ball.Pos = vmath.Vec2{X: 250, Y: 220}
	v.Ball.Vel = vmath.Vec2{X: -3, Y: 1}
	target, _, _ := targetFor(v, &r)
	want := vmath.Vec2{X: 220, Y: 230}
	if target.Dist(want) > 1e-9 {
		t.Errorf("Expected intercept %v, got %v", want, target)
	}
}

func TestClampToField(t *testing.T) {
	f := core.DefaultField()
	r := core.NewRobot(1, core.TeamRed, core.RoleAttacker, vmath.Vec2{X: -40, Y: 700})
	r.Speed = 2

	if !ClampToField(&r, f) {
		t.Fatal("Expected clamp")
	}
	if r.Pos.X != f.Left() || r.Pos.Y != f.Bottom()-r.Height {
		t.Errorf("Expected clamped to corner, got %v", r.Pos)
	}
	if r.Speed != 0 {
		t.Errorf("Expected stop on clamp, got %v", r.Speed)
	}
	if ClampToField(&r, f) {
		t.Error("Expected second clamp to be a no-op")
	}

	bad := core.NewRobot(2, core.TeamRed, core.RoleAttacker, vmath.Vec2{X: math.NaN(), Y: 0})
	ClampToField(&bad, f)
	if !bad.Pos.IsFinite() {
		t.Errorf("Expected finite position after clamp, got %v", bad.Pos)
	}
}

func TestApplyAllClampsEveryRobot(t *testing.T) {
	f := core.DefaultField()
	a := core.NewRobot(1, core.TeamRed, core.RoleAttacker, vmath.Vec2{X: 25, Y: 25})
	b := core.NewRobot(2, core.TeamBlue, core.RoleAttacker, vmath.Vec2{X: 590, Y: 390})
	decisions := []Decision{
		{ID: 1, Heading: 180, Speed: 1, Displacement: vmath.Vec2{X: -20, Y: -20}},
		{ID: 2, Heading: 0, Speed: 1, Displacement: vmath.Vec2{X: 20, Y: 20}},
	}

	n := ApplyAll([]*core.Robot{&a, &b}, decisions, f)
	if n != 2 {
		t.Errorf("Expected 2 clamps, got %d", n)
	}
	for _, r := range []*core.Robot{&a, &b} {
		if r.Pos.X < f.Left() || r.Pos.X > f.Right()-r.Width || r.Pos.Y < f.Top() || r.Pos.Y > f.Bottom()-r.Height {
			t.Errorf("Robot %d outside field: %v", r.ID, r.Pos)
		}
	}
}
