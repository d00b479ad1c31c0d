package input

// actionRegistry maps keymap action names to intents
// Used by the keymap loader to resolve TOML action strings
var actionRegistry = map[string]IntentType{
	// Unbind sentinel
	"none": IntentNone,

	"quit":     IntentQuit,
	"save":     IntentSave,
	"start":    IntentStartPause,
	"reset":    IntentReset,
	"populate": IntentPopulate,
	"debug":    IntentDebug,

	"kick_red":  IntentKickRed,
	"kick_blue": IntentKickBlue,

	"add_red":         IntentAddRed,
	"add_blue":        IntentAddBlue,
	"remove_robot":    IntentRemoveRobot,
	"formation_red":   IntentCycleFormationRed,
	"formation_blue":  IntentCycleFormationBlue,
	"add_obstacle":    IntentAddObstacle,
	"remove_obstacle": IntentRemoveObstacle,
	"speed_up":        IntentSpeedUp,
	"speed_down":      IntentSpeedDown,
	"duration_up":     IntentDurationUp,
	"duration_down":   IntentDurationDown,
	"field_grow":      IntentFieldGrow,
	"field_shrink":    IntentFieldShrink,
}

// actionNames is the reverse of actionRegistry
var actionNames = func() map[IntentType]string {
	out := make(map[IntentType]string, len(actionRegistry))
	for name, t := range actionRegistry {
		if t != IntentNone {
			out[t] = name
		}
	}
	return out
}()
