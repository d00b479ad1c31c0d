package spectate

import (
	"github.com/lixenwraith/botball/core"
	"github.com/lixenwraith/botball/engine"
)

// Frame is the JSON form of a match snapshot
type Frame struct {
	Type       string        `json:"type"`
	Tick       uint64        `json:"tick"`
	Phase      string        `json:"phase"`
	Running    bool          `json:"running"`
	Remaining  float64       `json:"remaining"`
	Clock      string        `json:"clock"`
	Score      Score         `json:"score"`
	Outcome    string        `json:"outcome,omitempty"`
	Speed      float64       `json:"speed"`
	Formations Formations    `json:"formations"`
	Field      FieldDTO      `json:"field"`
	Ball       BallDTO       `json:"ball"`
	Robots     []RobotDTO    `json:"robots"`
	Obstacles  []ObstacleDTO `json:"obstacles"`
}

type Score struct {
	Red  int `json:"red"`
	Blue int `json:"blue"`
}

type Formations struct {
	Red  string `json:"red"`
	Blue string `json:"blue"`
}

type FieldDTO struct {
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Border    float64 `json:"border"`
	GoalWidth float64 `json:"goal_width"`
}

type BallDTO struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	DX     float64 `json:"dx"`
	DY     float64 `json:"dy"`
	Radius float64 `json:"radius"`
}

// RobotDTO positions are top-left, as in the world model
type RobotDTO struct {
	ID      core.RobotID `json:"id"`
	Team    string       `json:"team"`
	Role    string       `json:"role"`
	X       float64      `json:"x"`
	Y       float64      `json:"y"`
	Width   float64      `json:"w"`
	Height  float64      `json:"h"`
	Heading float64      `json:"heading"`
	Speed   float64      `json:"speed"`
	Mode    string       `json:"mode,omitempty"` // Set only with the debug overlay on
}

type ObstacleDTO struct {
	Shape string  `json:"shape"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	W     float64 `json:"w"`
	H     float64 `json:"h"`
	Color string  `json:"color,omitempty"`
}

// EventMessage is pushed to watchers as match events happen
type EventMessage struct {
	Type  string `json:"type"`
	Event string `json:"event"`
	Tick  uint64 `json:"tick"`
	Data  any    `json:"data,omitempty"`
}

// FrameOf converts a snapshot into its wire form
func FrameOf(s engine.Snapshot) Frame {
	f := Frame{
		Type:       "frame",
		Tick:       s.Tick,
		Phase:      s.Phase.String(),
		Running:    s.Running,
		Remaining:  s.Remaining,
		Clock:      core.FormatClock(s.Remaining),
		Score:      Score{Red: s.RedScore, Blue: s.BlueScore},
		Speed:      s.Speed,
		Formations: Formations{Red: s.RedFormation, Blue: s.BlueFormation},
		Field: FieldDTO{
			Width:     s.Field.Width,
			Height:    s.Field.Height,
			Border:    s.Field.Border,
			GoalWidth: s.Field.GoalWidth,
		},
		Ball: BallDTO{
			X: s.Ball.Pos.X, Y: s.Ball.Pos.Y,
			DX: s.Ball.Vel.X, DY: s.Ball.Vel.Y,
			Radius: s.Ball.Radius,
		},
		Robots:    make([]RobotDTO, 0, len(s.Red)+len(s.Blue)),
		Obstacles: make([]ObstacleDTO, 0, len(s.Obstacles)),
	}
	if s.Outcome != core.OutcomeNone {
		f.Outcome = s.Outcome.String()
	}
	for _, rv := range s.Robots() {
		dto := RobotDTO{
			ID:      rv.ID,
			Team:    rv.Team.String(),
			Role:    rv.Role.String(),
			X:       rv.Pos.X,
			Y:       rv.Pos.Y,
			Width:   rv.Width,
			Height:  rv.Height,
			Heading: rv.Heading,
			Speed:   rv.Speed,
		}
		if s.Debug && rv.HasDecision {
			dto.Mode = rv.Mode.String()
		}
		f.Robots = append(f.Robots, dto)
	}
	for _, o := range s.Obstacles {
		f.Obstacles = append(f.Obstacles, ObstacleDTO{
			Shape: o.Shape.String(),
			X:     o.Pos.X, Y: o.Pos.Y,
			W: o.Width, H: o.Height,
			Color: o.Color,
		})
	}
	return f
}
