package core

import "strings"

// Team identifies a side. Red (team A) defends the left goal, Blue (team B) the right
type Team uint8

const (
	TeamRed Team = iota
	TeamBlue
)

func (t Team) String() string {
	switch t {
	case TeamRed:
		return "Red"
	case TeamBlue:
		return "Blue"
	default:
		return "Unknown"
	}
}

// Opponent returns the other side
func (t Team) Opponent() Team {
	if t == TeamRed {
		return TeamBlue
	}
	return TeamRed
}

// ParseTeam accepts "red"/"a" and "blue"/"b" in any case
func ParseTeam(s string) (Team, bool) {
	switch strings.ToLower(s) {
	case "red", "a":
		return TeamRed, true
	case "blue", "b":
		return TeamBlue, true
	}
	return TeamRed, false
}

// Role is the tactical role driving a robot's decision process
type Role uint8

const (
	RoleGoalkeeper Role = iota
	RoleDefender
	RoleAttacker
)

func (r Role) String() string {
	switch r {
	case RoleGoalkeeper:
		return "Goalkeeper"
	case RoleDefender:
		return "Defender"
	case RoleAttacker:
		return "Attacker"
	default:
		return "Unknown"
	}
}

// Glyph returns the single-letter role tag used by renderers
func (r Role) Glyph() rune {
	switch r {
	case RoleGoalkeeper:
		return 'G'
	case RoleDefender:
		return 'D'
	case RoleAttacker:
		return 'A'
	default:
		return '?'
	}
}

// ParseRole accepts full names and the GK/DEF/ATT abbreviations
func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(s) {
	case "goalkeeper", "gk", "keeper":
		return RoleGoalkeeper, true
	case "defender", "def":
		return RoleDefender, true
	case "attacker", "att", "striker":
		return RoleAttacker, true
	}
	return RoleAttacker, false
}

// Shape is the obstacle outline variant
type Shape uint8

const (
	ShapeWall Shape = iota
	ShapeRectangle
	ShapeCircle
)

func (s Shape) String() string {
	switch s {
	case ShapeWall:
		return "Wall"
	case ShapeRectangle:
		return "Rectangle"
	case ShapeCircle:
		return "Circle"
	default:
		return "Unknown"
	}
}

func ParseShape(s string) (Shape, bool) {
	switch strings.ToLower(s) {
	case "wall":
		return ShapeWall, true
	case "rectangle", "rect":
		return ShapeRectangle, true
	case "circle":
		return ShapeCircle, true
	}
	return ShapeWall, false
}
