package input

// DragState tracks the left-button gesture
type DragState uint8

const (
	DragIdle DragState = iota
	DragActive
)

func (s DragState) String() string {
	if s == DragActive {
		return "Active"
	}
	return "Idle"
}
