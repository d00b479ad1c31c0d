package engine

import (
	"github.com/lixenwraith/botball/core"
	"github.com/lixenwraith/botball/navigation"
	"github.com/lixenwraith/botball/vmath"
)

// RobotView is a robot plus the decision it acted on last tick
type RobotView struct {
	core.Robot
	HasDecision bool
	Target      vmath.Vec2
	Mode        navigation.Mode
	Beams       navigation.Beams
}

// Snapshot is a deep copy of the world; safe to read without any lock
type Snapshot struct {
	Field     core.Field
	Ball      core.Ball
	Red       []RobotView
	Blue      []RobotView
	Obstacles []core.Obstacle

	Phase     core.Phase
	Running   bool
	Remaining float64
	Duration  float64
	RedScore  int
	BlueScore int
	Outcome   core.Outcome

	Speed         float64
	Minutes       int
	RedFormation  string
	BlueFormation string
	History       []string
	Debug         bool
	Tick          uint64
}

// Robots returns both rosters in combined index order
func (s *Snapshot) Robots() []RobotView {
	out := make([]RobotView, 0, len(s.Red)+len(s.Blue))
	out = append(out, s.Red...)
	return append(out, s.Blue...)
}

// Snapshot copies the current world under the read lock
func (m *Match) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := Snapshot{
		Field:         m.field,
		Ball:          m.ball,
		Red:           m.robotViewsLocked(m.red),
		Blue:          m.robotViewsLocked(m.blue),
		Obstacles:     make([]core.Obstacle, len(m.obstacles)),
		Phase:         m.state.Phase,
		Running:       m.state.Running(),
		Remaining:     m.state.Remaining,
		Duration:      m.state.Duration,
		RedScore:      m.state.RedScore,
		BlueScore:     m.state.BlueScore,
		Outcome:       m.state.Outcome,
		Speed:         m.speed,
		Minutes:       m.minutes,
		RedFormation:  m.formations[core.TeamRed].Formation().Name,
		BlueFormation: m.formations[core.TeamBlue].Formation().Name,
		History:       m.log.last(0),
		Debug:         m.debug,
		Tick:          m.tick,
	}
	for i := range m.obstacles {
		s.Obstacles[i] = m.obstacles[i].Clone()
	}
	return s
}

func (m *Match) robotViewsLocked(roster []core.Robot) []RobotView {
	out := make([]RobotView, len(roster))
	for i, r := range roster {
		out[i].Robot = r
		if d, ok := m.decisions[r.ID]; ok {
			out[i].HasDecision = true
			out[i].Target = d.Target
			out[i].Mode = d.Mode
			out[i].Beams = d.Beams
		}
	}
	return out
}

// History returns the newest n history lines, oldest first; n <= 0 returns all
func (m *Match) History(n int) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.log.last(n)
}

// State returns the referee scalars
func (m *Match) State() core.MatchState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Field returns the current field geometry
func (m *Match) Field() core.Field {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.field
}
