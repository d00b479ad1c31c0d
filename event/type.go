package event

// EventType represents the type of match event
type EventType int

const (
	// EventGoalScored signals a goal and the ball reset to center
	// Trigger: Match tick goal check | Payload: GoalPayload
	EventGoalScored EventType = iota

	// EventTimeUpdated signals the displayed clock second changed
	// Trigger: Match tick clock countdown | Payload: TimePayload
	EventTimeUpdated

	// EventGameEnded signals the clock expired; emitted once per match
	// Trigger: Match tick | Payload: EndPayload
	EventGameEnded

	// EventMatchStarted signals Stopped -> Running
	// Trigger: Start command | Payload: nil
	EventMatchStarted

	// EventMatchPaused signals Running -> Stopped
	// Trigger: Pause command | Payload: nil
	EventMatchPaused

	// EventMatchReset signals a fresh match state
	// Trigger: Reset command, config load | Payload: nil
	EventMatchReset
)

func (t EventType) String() string {
	switch t {
	case EventGoalScored:
		return "GoalScored"
	case EventTimeUpdated:
		return "TimeUpdated"
	case EventGameEnded:
		return "GameEnded"
	case EventMatchStarted:
		return "MatchStarted"
	case EventMatchPaused:
		return "MatchPaused"
	case EventMatchReset:
		return "MatchReset"
	default:
		return "Unknown"
	}
}

// AllTypes lists every event type, for handlers that observe everything
func AllTypes() []EventType {
	return []EventType{
		EventGoalScored,
		EventTimeUpdated,
		EventGameEnded,
		EventMatchStarted,
		EventMatchPaused,
		EventMatchReset,
	}
}
