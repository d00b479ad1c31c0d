package parameter

// Field Defaults
const (
	FieldWidth  = 600.0
	FieldHeight = 400.0
	BorderWidth = 20.0
	GoalWidth   = 60.0
	GoalDepth   = 20.0
)

// Field Limits
const (
	MinFieldWidth  = 300.0
	MaxFieldWidth  = 800.0
	MinFieldHeight = 200.0
	MaxFieldHeight = 600.0
)

// Match Defaults & Limits
const (
	MatchMinutes    = 5
	MinMatchMinutes = 1
	MaxMatchMinutes = 30

	GameSpeed    = 1.0
	MinGameSpeed = 0.1
	MaxGameSpeed = 2.0

	// ClockEpsilon treats remaining time below this as expired
	ClockEpsilon = 1e-9
)

// Formation
const (
	// DefaultFormation is applied to populated teams
	DefaultFormation = "2-2"

	// GoalkeeperMargin bounds formation goalkeeper tracking from the field edges
	GoalkeeperMargin = 50.0

	// DefenderBlend is the defender pull toward the ball in its own half
	DefenderBlend = 0.3

	// AttackerBlend is the attacker pull toward the ball
	AttackerBlend = 0.5
)
