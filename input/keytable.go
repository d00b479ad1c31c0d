package input

import "github.com/gdamore/tcell/v2"

// Keymap maps keys to intents
type Keymap struct {
	// Special keys (Ctrl+*, arrows, function keys)
	Special map[tcell.Key]IntentType

	// Printable runes
	Runes map[rune]IntentType
}

// DefaultKeymap returns the default bindings
func DefaultKeymap() *Keymap {
	return &Keymap{
		Special: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlS:  IntentSave,
			tcell.KeyUp:     IntentSpeedUp,
			tcell.KeyDown:   IntentSpeedDown,
			tcell.KeyRight:  IntentDurationUp,
			tcell.KeyLeft:   IntentDurationDown,
			tcell.KeyDelete: IntentRemoveObstacle,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			' ': IntentStartPause,
			'r': IntentReset,
			'p': IntentPopulate,
			'd': IntentDebug,
			's': IntentSave,

			'k': IntentKickRed,
			'K': IntentKickBlue,

			'a': IntentAddRed,
			'A': IntentAddBlue,
			'x': IntentRemoveRobot,
			'f': IntentCycleFormationRed,
			'F': IntentCycleFormationBlue,

			'o': IntentAddObstacle,
			'O': IntentRemoveObstacle,

			'+': IntentSpeedUp,
			'=': IntentSpeedUp,
			'-': IntentSpeedDown,
			']': IntentDurationUp,
			'[': IntentDurationDown,
			'>': IntentFieldGrow,
			'<': IntentFieldShrink,
		},
	}
}

// Lookup returns the intent bound to a key event, IntentNone when unbound
func (km *Keymap) Lookup(ev *tcell.EventKey) IntentType {
	return km.Resolve(ev.Key(), ev.Rune())
}

// Resolve returns the intent for a key code, using r when key is tcell.KeyRune
func (km *Keymap) Resolve(key tcell.Key, r rune) IntentType {
	if key == tcell.KeyRune {
		return km.Runes[r]
	}
	return km.Special[key]
}

// MergeKeymap returns base with override entries applied on top
// An override bound to IntentNone unbinds the key
func MergeKeymap(base, override *Keymap) *Keymap {
	out := &Keymap{
		Special: make(map[tcell.Key]IntentType, len(base.Special)),
		Runes:   make(map[rune]IntentType, len(base.Runes)),
	}
	for k, v := range base.Special {
		out.Special[k] = v
	}
	for k, v := range base.Runes {
		out.Runes[k] = v
	}
	if override == nil {
		return out
	}
	for k, v := range override.Special {
		if v == IntentNone {
			delete(out.Special, k)
			continue
		}
		out.Special[k] = v
	}
	for k, v := range override.Runes {
		if v == IntentNone {
			delete(out.Runes, k)
			continue
		}
		out.Runes[k] = v
	}
	return out
}
