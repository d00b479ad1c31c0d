package core

import (
	"fmt"
	"math"
)

// Phase is the match controller state
type Phase uint8

const (
	PhaseStopped Phase = iota
	PhaseRunning
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseStopped:
		return "Stopped"
	case PhaseRunning:
		return "Running"
	case PhaseEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// Outcome is the result recorded when the clock expires
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeRedWins
	OutcomeBlueWins
	OutcomeDraw
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRedWins:
		return "Red wins"
	case OutcomeBlueWins:
		return "Blue wins"
	case OutcomeDraw:
		return "Draw"
	default:
		return "None"
	}
}

// Winner returns the winning team; ok is false for draws and undecided matches
func (o Outcome) Winner() (Team, bool) {
	switch o {
	case OutcomeRedWins:
		return TeamRed, true
	case OutcomeBlueWins:
		return TeamBlue, true
	default:
		return TeamRed, false
	}
}

// DecideOutcome compares final scores
func DecideOutcome(red, blue int) Outcome {
	switch {
	case red > blue:
		return OutcomeRedWins
	case blue > red:
		return OutcomeBlueWins
	default:
		return OutcomeDraw
	}
}

// MatchState holds the refereed scalars of one match
type MatchState struct {
	Phase     Phase
	Duration  float64 // seconds
	Remaining float64 // seconds, non-increasing while running
	RedScore  int
	BlueScore int
	Outcome   Outcome
}

// NewMatchState creates a stopped match with a full clock
func NewMatchState(durationSeconds float64) MatchState {
	return MatchState{
		Phase:     PhaseStopped,
		Duration:  durationSeconds,
		Remaining: durationSeconds,
	}
}

func (s MatchState) Running() bool {
	return s.Phase == PhaseRunning
}

func (s MatchState) Ended() bool {
	return s.Phase == PhaseEnded
}

// Elapsed returns seconds played
func (s MatchState) Elapsed() float64 {
	return math.Max(s.Duration-s.Remaining, 0)
}

// Score credits a goal to team
func (s *MatchState) Score(team Team) {
	if team == TeamRed {
		s.RedScore++
	} else {
		s.BlueScore++
	}
}

// ScoreLine formats "red-blue"
func (s MatchState) ScoreLine() string {
	return fmt.Sprintf("%d-%d", s.RedScore, s.BlueScore)
}

// FormatClock renders seconds as mm:ss, rounding partial seconds up
func FormatClock(seconds float64) string {
	total := int(math.Ceil(seconds - 1e-9))
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
