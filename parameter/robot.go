package parameter

// Robot Kinematics
const (
	RobotSize         = 20.0
	RobotMaxSpeed     = 3.0
	RobotAcceleration = 0.5
	RobotTurnRate     = 5.0 // degrees per tick

	// RobotBrakeFactor multiplies acceleration when braking
	RobotBrakeFactor = 2.0
)

// Robot Sensors
const (
	SensorRange = 100.0
	SensorFOV   = 120.0 // degrees, centered on heading
	SensorBeams = 5
)

// Steering
const (
	// FacingThreshold is the heading error under which a robot accelerates
	FacingThreshold = 45.0

	// ArrivalRadius is the distance at which a robot holds position
	ArrivalRadius = 5.0

	// ApproachRadius is the distance under which attackers slow down
	ApproachRadius = 60.0

	// ApproachMinFactor is the lowest speed fraction while approaching
	ApproachMinFactor = 0.3

	// MinSpacing is the center distance under which robots repel
	MinSpacing = 30.0

	// SeparationGain scales the repulsive displacement
	SeparationGain = 2.0

	// OpponentWeight weights repulsion from opponents over teammates
	OpponentWeight = 1.5

	// BoundaryMargin is the safety margin inside the field for robot clamping
	BoundaryMargin = 0.0
)

// Roles
const (
	// GoalkeeperOffset is the goalkeeper's distance in front of its goal line
	GoalkeeperOffset = 15.0

	// GoalkeeperReach extends the goalkeeper's vertical range past the goal mouth
	GoalkeeperReach = 20.0

	// DefenderLine is the relative depth of a defender's home position
	DefenderLine = 0.3

	// InterceptLookahead is the number of ticks a defender projects the ball
	InterceptLookahead = 10.0

	// KickRange is the distance within which a robot can kick the ball
	KickRange = 50.0

	// KickPower is the impulse applied by a robot kick
	KickPower = 5.0

	// MaxRobotsPerTeam caps roster size
	MaxRobotsPerTeam = 11
)
