package engine

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/botball/core"
	"github.com/lixenwraith/botball/event"
	"github.com/lixenwraith/botball/formation"
	"github.com/lixenwraith/botball/parameter"
	"github.com/lixenwraith/botball/physics"
	"github.com/lixenwraith/botball/vmath"
)

// Start runs the clock; starting a running match is a no-op
func (m *Match) Start() error {
	return m.runSafe(func() error {
		switch m.state.Phase {
		case core.PhaseEnded:
			return errors.Wrap(ErrMatchEnded, "start")
		case core.PhaseStopped:
			m.state.Phase = core.PhaseRunning
			m.emit(event.EventMatchStarted, nil)
		}
		return nil
	})
}

// Pause stops the clock without touching the world
func (m *Match) Pause() {
	_ = m.runSafe(func() error {
		if m.state.Running() {
			m.state.Phase = core.PhaseStopped
			m.emit(event.EventMatchPaused, nil)
		}
		return nil
	})
}

// Reset returns to a fresh stopped match from any phase
func (m *Match) Reset() {
	_ = m.runSafe(func() error {
		m.resetLocked()
		return nil
	})
}

// SetMatchDuration sets the match length in minutes
// A match that has not started takes the new clock immediately; otherwise it applies from the next Reset
func (m *Match) SetMatchDuration(minutes int) error {
	if err := validateMinutes(minutes); err != nil {
		return err
	}
	return m.runSafe(func() error {
		m.minutes = minutes
		if m.state.Phase == core.PhaseStopped && m.state.Elapsed() == 0 {
			m.state = core.NewMatchState(float64(minutes * 60))
		}
		return nil
	})
}

// SetGameSpeed scales how fast the match clock runs
func (m *Match) SetGameSpeed(s float64) error {
	if err := checkRange("game speed", s, parameter.MinGameSpeed, parameter.MaxGameSpeed); err != nil {
		return err
	}
	return m.runSafe(func() error {
		m.speed = s
		return nil
	})
}

// SetFieldDimensions replaces the field and rescales every entity into it
func (m *Match) SetFieldDimensions(w, h float64) error {
	if err := validateField(w, h); err != nil {
		return err
	}
	return m.runSafe(func() error {
		from := m.field
		to := core.NewField(w, h)

		m.ball.Pos = clampBall(to, from.Rescale(m.ball.Pos, to), m.ball.Radius)
		for _, roster := range [][]core.Robot{m.red, m.blue} {
			for i := range roster {
				r := &roster[i]
				r.SetCenter(from.Rescale(r.Center(), to))
				if pos, moved := to.ClampBox(r.Pos, r.Width, r.Height, parameter.BoundaryMargin); moved {
					r.Pos = pos
					r.Stop()
				}
			}
		}
		for i := range m.obstacles {
			o := &m.obstacles[i]
			pos, _ := to.ClampBox(from.Rescale(o.Pos, to), o.Width, o.Height, 0)
			o.MoveTo(pos)
		}

		m.field = to
		m.rebuildIndexLocked()
		return nil
	})
}

// AddRobot creates a robot at its team's default spot and returns its ID
func (m *Match) AddRobot(team core.Team, role core.Role) (core.RobotID, error) {
	var id core.RobotID
	err := m.runSafe(func() error {
		roster := m.roster(team)
		if len(*roster) >= parameter.MaxRobotsPerTeam {
			return errors.Wrapf(ErrRosterFull, "%s has %d", team, len(*roster))
		}
		rel := 0.25
		if team == core.TeamBlue {
			rel = 0.75
		}
		center := m.field.Relative(rel, 0.5)
		r := m.newRobotLocked(team, role, center)
		*roster = append(*roster, r)
		id = r.ID
		m.reassignLocked()
		return nil
	})
	return id, err
}

// RemoveRobot deletes by combined index: red robots first, then blue
func (m *Match) RemoveRobot(index int) error {
	return m.runSafe(func() error {
		r, err := m.robotAt(index)
		if err != nil {
			return err
		}
		roster := m.roster(r.Team)
		id := r.ID
		for i := range *roster {
			if (*roster)[i].ID == id {
				*roster = append((*roster)[:i], (*roster)[i+1:]...)
				break
			}
		}
		delete(m.decisions, id)
		m.reassignLocked()
		return nil
	})
}

// SetRobotRole changes one robot's role
func (m *Match) SetRobotRole(index int, role core.Role) error {
	return m.runSafe(func() error {
		r, err := m.robotAt(index)
		if err != nil {
			return err
		}
		r.Role = role
		return nil
	})
}

// SetFormation switches a team's template and re-applies slot roles
func (m *Match) SetFormation(team core.Team, name string) error {
	return m.runSafe(func() error {
		mgr := m.formations[team]
		if err := mgr.SetFormation(name); err != nil {
			return err
		}
		mgr.ApplyRoles(*m.roster(team))
		return nil
	})
}

// PopulateDefaultTeams replaces both rosters with the 5v5 kickoff lineup
func (m *Match) PopulateDefaultTeams() {
	_ = m.runSafe(func() error {
		for _, team := range []core.Team{core.TeamRed, core.TeamBlue} {
			roster := make([]core.Robot, 0, len(formation.Kickoff))
			for _, slot := range formation.Kickoff {
				x, y := formation.SlotPosition(m.field, team, slot)
				roster = append(roster, m.newRobotLocked(team, slot.Role, vmath.Vec2{X: x, Y: y}))
			}
			m.formations[team].ApplyRoles(roster)
			*m.roster(team) = roster
		}
		clear(m.decisions)
		return nil
	})
}

// AddObstacle places an obstacle at a random valid spot
func (m *Match) AddObstacle(shape core.Shape, w, h float64, color string) error {
	return m.runSafe(func() error {
		if err := validateSize(w, h); err != nil {
			return err
		}
		for range parameter.PlacementAttempts {
			pos := vmath.Vec2{
				X: m.field.Left() + m.rng.Float64()*(m.field.Width-w),
				Y: m.field.Top() + m.rng.Float64()*(m.field.Height-h),
			}
			o := core.NewObstacle(shape, pos, w, h, color)
			if m.validatePlacementLocked(&o, -1) == nil {
				m.obstacles = append(m.obstacles, o)
				m.rebuildIndexLocked()
				return nil
			}
		}
		return errors.Wrapf(ErrNoPlacement, "%s %.0fx%.0f after %d attempts", shape, w, h, parameter.PlacementAttempts)
	})
}

// PlaceObstacle adds an obstacle with its top-left at (x, y)
func (m *Match) PlaceObstacle(shape core.Shape, x, y, w, h float64, color string) error {
	return m.runSafe(func() error {
		if err := validateSize(w, h); err != nil {
			return err
		}
		o := core.NewObstacle(shape, vmath.Vec2{X: x, Y: y}, w, h, color)
		if err := m.validatePlacementLocked(&o, -1); err != nil {
			return err
		}
		m.obstacles = append(m.obstacles, o)
		m.rebuildIndexLocked()
		return nil
	})
}

// RemoveObstacle deletes the obstacle at index
func (m *Match) RemoveObstacle(index int) error {
	return m.runSafe(func() error {
		if index < 0 || index >= len(m.obstacles) {
			return errors.Wrapf(ErrIndexOutOfRange, "obstacle %d of %d", index, len(m.obstacles))
		}
		m.obstacles = append(m.obstacles[:index], m.obstacles[index+1:]...)
		m.rebuildIndexLocked()
		return nil
	})
}

// validatePlacementLocked checks field containment, spacing from other obstacles and goal clearance
// skip excludes one obstacle index from the spacing test
func (m *Match) validatePlacementLocked(o *core.Obstacle, skip int) error {
	b := o.Bounds()
	f := m.field.Area()
	if b.X < f.X || b.Y < f.Y || b.X+b.Width > f.X+f.Width || b.Y+b.Height > f.Y+f.Height {
		return errors.Wrapf(ErrNoPlacement, "outside field at (%.0f, %.0f)", b.X, b.Y)
	}
	grown := b.Inflate(parameter.ObstacleSpacing)
	for i := range m.obstacles {
		if i != skip && grown.Overlaps(m.obstacles[i].Bounds()) {
			return errors.Wrapf(ErrNoPlacement, "closer than %.0f to obstacle %d", parameter.ObstacleSpacing, i)
		}
	}
	for _, team := range []core.Team{core.TeamRed, core.TeamBlue} {
		if b.DistanceTo(m.field.GoalCenter(team)) < parameter.GoalClearance {
			return errors.Wrapf(ErrNoPlacement, "within %.0f of %s goal", parameter.GoalClearance, team)
		}
	}
	return nil
}

// KickBall adds an impulse to the ball
func (m *Match) KickBall(dx, dy float64) {
	_ = m.runSafe(func() error {
		physics.ApplyKick(&m.ball, dx, dy)
		return nil
	})
}

// KickNearest lets team's closest robot kick toward the opposing goal when within reach
// Reports whether a kick happened
func (m *Match) KickNearest(team core.Team) bool {
	kicked := false
	_ = m.runSafe(func() error {
		roster := *m.roster(team)
		best, bestDist := -1, parameter.KickRange
		for i := range roster {
			if d := roster[i].Center().Dist(m.ball.Pos); d < bestDist {
				best, bestDist = i, d
			}
		}
		if best < 0 {
			return nil
		}
		dir := m.field.GoalCenter(team.Opponent()).Sub(m.ball.Pos).NormalizeOr(roster[best].Forward())
		physics.ApplyKick(&m.ball, dir.X*parameter.KickPower, dir.Y*parameter.KickPower)
		kicked = true
		return nil
	})
	return kicked
}

// MoveBall places the ball at rest at (x, y), clamped into the field
func (m *Match) MoveBall(x, y float64) {
	_ = m.runSafe(func() error {
		m.ball.Place(clampBall(m.field, vmath.Vec2{X: x, Y: y}, m.ball.Radius))
		return nil
	})
}

// MoveRobot centers the robot at (x, y), clamped into the field, and stops it
func (m *Match) MoveRobot(index int, x, y float64) error {
	return m.runSafe(func() error {
		r, err := m.robotAt(index)
		if err != nil {
			return err
		}
		r.SetCenter(vmath.Vec2{X: x, Y: y})
		r.Pos, _ = m.field.ClampBox(r.Pos, r.Width, r.Height, parameter.BoundaryMargin)
		r.Stop()
		return nil
	})
}

// MoveObstacle centers the obstacle at (x, y), clamped into the field
func (m *Match) MoveObstacle(index int, x, y float64) error {
	return m.runSafe(func() error {
		if index < 0 || index >= len(m.obstacles) {
			return errors.Wrapf(ErrIndexOutOfRange, "obstacle %d of %d", index, len(m.obstacles))
		}
		o := &m.obstacles[index]
		pos := vmath.Vec2{X: x - o.Width/2, Y: y - o.Height/2}
		pos, _ = m.field.ClampBox(pos, o.Width, o.Height, 0)
		o.MoveTo(pos)
		m.rebuildIndexLocked()
		return nil
	})
}

// SelectionKind identifies what a hit test found
type SelectionKind uint8

const (
	SelectBall SelectionKind = iota
	SelectRobot
	SelectObstacle
)

// Selection is a hit-test result; Index is a combined robot index or an obstacle index
type Selection struct {
	Kind  SelectionKind
	Index int
}

// selectSlack widens the ball's hit area
const selectSlack = 3.0

// SelectAt finds the topmost entity at (x, y): ball, then robots, then obstacles
func (m *Match) SelectAt(x, y float64) (Selection, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p := vmath.Vec2{X: x, Y: y}
	if p.Dist(m.ball.Pos) <= m.ball.Radius+selectSlack {
		return Selection{Kind: SelectBall}, true
	}
	for i, r := range append(append([]core.Robot(nil), m.red...), m.blue...) {
		if r.Bounds().Contains(p) {
			return Selection{Kind: SelectRobot, Index: i}, true
		}
	}
	for i := range m.obstacles {
		if m.obstacles[i].ContainsPoint(p) {
			return Selection{Kind: SelectObstacle, Index: i}, true
		}
	}
	return Selection{}, false
}

// MoveSelection drags the selected entity to (x, y)
func (m *Match) MoveSelection(sel Selection, x, y float64) error {
	switch sel.Kind {
	case SelectBall:
		m.MoveBall(x, y)
		return nil
	case SelectRobot:
		return m.MoveRobot(sel.Index, x, y)
	case SelectObstacle:
		return m.MoveObstacle(sel.Index, x, y)
	default:
		return errors.Wrapf(ErrIndexOutOfRange, "selection kind %d", sel.Kind)
	}
}

// ToggleDebug flips the debug overlay flag and returns the new value
func (m *Match) ToggleDebug() bool {
	var on bool
	_ = m.runSafe(func() error {
		m.debug = !m.debug
		on = m.debug
		return nil
	})
	return on
}

func clampBall(f core.Field, p vmath.Vec2, radius float64) vmath.Vec2 {
	return vmath.Vec2{
		X: vmath.Clamp(p.X, f.Left()+radius, f.Right()-radius),
		Y: vmath.Clamp(p.Y, f.Top()+radius, f.Bottom()-radius),
	}
}

func validateField(w, h float64) error {
	if err := checkRange("field width", w, parameter.MinFieldWidth, parameter.MaxFieldWidth); err != nil {
		return err
	}
	return checkRange("field height", h, parameter.MinFieldHeight, parameter.MaxFieldHeight)
}

func validateMinutes(minutes int) error {
	if minutes < parameter.MinMatchMinutes || minutes > parameter.MaxMatchMinutes {
		return errors.Wrapf(ErrOutOfRange, "match minutes %d not in [%d, %d]", minutes, parameter.MinMatchMinutes, parameter.MaxMatchMinutes)
	}
	return nil
}

func validateSize(w, h float64) error {
	if !(w > 0 && h > 0) {
		return errors.Wrapf(ErrOutOfRange, "obstacle size %.1fx%.1f", w, h)
	}
	return nil
}
