package input

import "github.com/gdamore/tcell/v2"

// Machine parses tcell events into intents
type Machine struct {
	keymap *Keymap
	drag   DragState
}

// NewMachine creates a machine with km, or the default keymap when km is nil
func NewMachine(km *Keymap) *Machine {
	if km == nil {
		km = DefaultKeymap()
	}
	return &Machine{keymap: km}
}

// Drag returns the current gesture state
func (m *Machine) Drag() DragState {
	return m.drag
}

// Process parses an event and returns an Intent
// Returns nil for events that map to nothing
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		if t := m.keymap.Lookup(ev); t != IntentNone {
			return &Intent{Type: t}
		}
	case *tcell.EventMouse:
		return m.processMouse(ev)
	}
	return nil
}

// processMouse turns button-1 press, motion and release into down/drag/up
// tcell reports motion with the button held as repeated Button1 events
func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	x, y := ev.Position()
	held := ev.Buttons()&tcell.Button1 != 0

	switch {
	case held && m.drag == DragIdle:
		m.drag = DragActive
		return &Intent{Type: IntentMouseDown, X: x, Y: y}
	case held:
		return &Intent{Type: IntentMouseDrag, X: x, Y: y}
	case m.drag == DragActive:
		m.drag = DragIdle
		return &Intent{Type: IntentMouseUp, X: x, Y: y}
	}
	return nil
}
