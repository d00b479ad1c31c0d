package event

import "github.com/lixenwraith/botball/core"

// GameEvent is a point-in-time notification
type GameEvent struct {
	Type    EventType
	Tick    uint64 // Match tick that produced the event
	Payload any
}

// GoalPayload carries the scoring side and the score after the goal
type GoalPayload struct {
	Team    core.Team
	Red     int
	Blue    int
	Elapsed float64 // Match seconds played
}

// TimePayload carries the remaining match clock
type TimePayload struct {
	Remaining float64
}

// EndPayload carries the final result
type EndPayload struct {
	Outcome core.Outcome
	Red     int
	Blue    int
}
