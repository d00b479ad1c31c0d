package audio

import "github.com/lixenwraith/botball/event"

// Referee turns match events into whistles and horns
type Referee struct {
	player Player
}

// NewReferee creates a referee that plays through p
func NewReferee(p Player) *Referee {
	return &Referee{player: p}
}

// HandleEvent implements event.Handler
func (r *Referee) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventMatchStarted, event.EventMatchPaused:
		r.player.Play(SoundWhistle)
	case event.EventGoalScored:
		r.player.Play(SoundHorn)
	case event.EventGameEnded:
		r.player.Play(SoundLongWhistle)
	}
}

// EventTypes implements event.Handler
func (r *Referee) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMatchStarted,
		event.EventMatchPaused,
		event.EventGoalScored,
		event.EventGameEnded,
	}
}
