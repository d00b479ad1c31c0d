package parameter

// Layout & Margins
const (
	// TopMargin for status bar (score, clock, phase, speed, formations)
	TopMargin = 1

	// BottomMargin for banner/history line and key help
	BottomMargin = 2

	// BannerFrames is how many frames a goal or full-time banner stays up
	BannerFrames = 60
)

// Interactive Adjustments
const (
	// SpeedStep is the game speed change per key press
	SpeedStep = 0.1

	// DurationStep is the match length change per key press, in minutes
	DurationStep = 1

	// FieldStep is the field width change per key press; height follows at 2:3
	FieldStep = 60.0
)

// Obstacle Presets
const (
	ObstaclePresetSize = 40.0
	WallPresetLength   = 80.0
	WallPresetWidth    = 10.0
)

// ObstacleColors are cycled by interactively added obstacles
var ObstacleColors = []string{"gray", "brown", "darkolivegreen", "slategray"}
