package formation

import (
	"github.com/lixenwraith/botball/core"
	"github.com/lixenwraith/botball/parameter"
	"github.com/lixenwraith/botball/vmath"
)

// Manager holds one team's formation and the derived robot-to-slot mapping
// It never stores positions; targets are recomputed from field and ball on demand
type Manager struct {
	team      core.Team
	formation Formation
	slots     map[core.RobotID]int
}

// NewManager creates a manager using the default formation
func NewManager(team core.Team) *Manager {
	f, _ := Lookup(parameter.DefaultFormation)
	return &Manager{
		team:      team,
		formation: f,
		slots:     make(map[core.RobotID]int),
	}
}

func (m *Manager) Team() core.Team {
	return m.team
}

func (m *Manager) Formation() Formation {
	return m.formation
}

// SetFormation switches template; callers re-run Assign afterwards
func (m *Manager) SetFormation(name string) error {
	f, err := Lookup(name)
	if err != nil {
		return err
	}
	m.formation = f
	return nil
}

// Assign pairs roster order with slot order; robots past the last slot get no target
func (m *Manager) Assign(roster []core.Robot) {
	clear(m.slots)
	for i := range roster {
		if i >= len(m.formation.Slots) {
			break
		}
		m.slots[roster[i].ID] = i
	}
}

// ApplyRoles assigns slots and sets each assigned robot's role from its slot
func (m *Manager) ApplyRoles(roster []core.Robot) {
	m.Assign(roster)
	for i := range roster {
		if idx, ok := m.slots[roster[i].ID]; ok {
			roster[i].Role = m.formation.Slots[idx].Role
		}
	}
}

// Base returns the unadjusted slot center for robot id
func (m *Manager) Base(field core.Field, id core.RobotID) (vmath.Vec2, bool) {
	idx, ok := m.slots[id]
	if !ok {
		return vmath.Vec2{}, false
	}
	x, y := SlotPosition(field, m.team, m.formation.Slots[idx])
	return vmath.Vec2{X: x, Y: y}, true
}

// Target returns the ball-adjusted center target for a robot in role
func (m *Manager) Target(field core.Field, id core.RobotID, role core.Role, ball vmath.Vec2) (vmath.Vec2, bool) {
	base, ok := m.Base(field, id)
	if !ok {
		return vmath.Vec2{}, false
	}
	return Adjust(field, m.team, role, base, ball), true
}

// Targets computes targets for every assigned robot in roster
func (m *Manager) Targets(field core.Field, roster []core.Robot, ball vmath.Vec2) map[core.RobotID]vmath.Vec2 {
	out := make(map[core.RobotID]vmath.Vec2, len(m.slots))
	for i := range roster {
		if t, ok := m.Target(field, roster[i].ID, roster[i].Role, ball); ok {
			out[roster[i].ID] = t
		}
	}
	return out
}

// Adjust moves a base target in response to the ball according to role
func Adjust(field core.Field, team core.Team, role core.Role, base, ball vmath.Vec2) vmath.Vec2 {
	switch role {
	case core.RoleGoalkeeper:
		lo := field.Top() + parameter.GoalkeeperMargin
		hi := field.Bottom() - parameter.GoalkeeperMargin
		return vmath.Vec2{X: base.X, Y: vmath.Clamp(ball.Y, lo, hi)}
	case core.RoleDefender:
		if field.InDefensiveHalf(team, ball.X) {
			return base.Lerp(ball, parameter.DefenderBlend)
		}
		return base
	case core.RoleAttacker:
		return base.Lerp(ball, parameter.AttackerBlend)
	default:
		return base
	}
}
