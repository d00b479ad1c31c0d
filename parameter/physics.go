package parameter

// Ball
const (
	// BallRadius is the ball radius in arena units
	BallRadius = 5.0

	// BallFriction scales ball velocity every tick
	BallFriction = 0.98

	// BallMaxSpeed caps ball speed in units per tick
	BallMaxSpeed = 10.0

	// BallMinSpeed zeroes the ball below this speed
	BallMinSpeed = 0.1
)

// Collision Response
const (
	// MaxCollisionIterations bounds the de-penetration loop per tick
	MaxCollisionIterations = 10

	// BallRobotRestitution is the fraction of closing speed returned on ball-robot contact
	BallRobotRestitution = 0.7

	// ObstacleDampening scales ball velocity after bouncing off an obstacle edge
	ObstacleDampening = 0.8

	// BoundaryDampening scales ball velocity after bouncing off a field line
	BoundaryDampening = 0.8

	// PostRestitution scales the outward bounce off a goal post
	PostRestitution = 0.7

	// PostMinNudge is the minimum vertical speed after a post hit
	PostMinNudge = 0.5

	// SeparationEpsilon is the extra gap added by forced separation
	SeparationEpsilon = 0.01

	// BroadPhaseMargin inflates query boxes against the obstacle index
	BroadPhaseMargin = 2.0
)

// Obstacles
const (
	// CircleSegments approximates circular obstacles as a polyline
	CircleSegments = 16

	// ObstacleSpacing is the minimum gap between obstacles
	ObstacleSpacing = 30.0

	// GoalClearance is the minimum distance from an obstacle to a goal mouth center
	GoalClearance = 100.0

	// PlacementAttempts bounds random obstacle placement
	PlacementAttempts = 100
)
