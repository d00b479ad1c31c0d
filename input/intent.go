package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System
	IntentQuit   // q, Ctrl+C
	IntentResize // Terminal resize event
	IntentSave   // Write the scenario file

	// Match control
	IntentStartPause // Space
	IntentReset
	IntentPopulate // 5v5 default line-up
	IntentDebug

	// Ball
	IntentKickRed
	IntentKickBlue

	// Rosters
	IntentAddRed
	IntentAddBlue
	IntentRemoveRobot
	IntentCycleFormationRed
	IntentCycleFormationBlue

	// Obstacles
	IntentAddObstacle
	IntentRemoveObstacle

	// Settings
	IntentSpeedUp
	IntentSpeedDown
	IntentDurationUp
	IntentDurationDown
	IntentFieldGrow
	IntentFieldShrink

	// Mouse
	IntentMouseDown // X, Y carry the cell
	IntentMouseDrag
	IntentMouseUp
)

// Intent is a parsed input action
type Intent struct {
	Type IntentType
	X, Y int // Screen cell for mouse intents
}

func (t IntentType) String() string {
	if name, ok := actionNames[t]; ok {
		return name
	}
	switch t {
	case IntentResize:
		return "resize"
	case IntentMouseDown:
		return "mouse_down"
	case IntentMouseDrag:
		return "mouse_drag"
	case IntentMouseUp:
		return "mouse_up"
	}
	return "none"
}
