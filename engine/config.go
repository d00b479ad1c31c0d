package engine

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/botball/core"
	"github.com/lixenwraith/botball/formation"
	"github.com/lixenwraith/botball/parameter"
	"github.com/lixenwraith/botball/vmath"
)

// Config is the persisted world layout
type Config struct {
	Field     FieldConfig      `toml:"field"`
	Match     MatchConfig      `toml:"match"`
	Ball      BallConfig       `toml:"ball"`
	Robots    []RobotConfig    `toml:"robot"`
	Obstacles []ObstacleConfig `toml:"obstacle"`
}

type FieldConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type MatchConfig struct {
	Minutes       int     `toml:"minutes"`
	Speed         float64 `toml:"speed"`
	RedFormation  string  `toml:"red_formation"`
	BlueFormation string  `toml:"blue_formation"`
}

type BallConfig struct {
	X  float64 `toml:"x"`
	Y  float64 `toml:"y"`
	DX float64 `toml:"dx"`
	DY float64 `toml:"dy"`
}

// RobotConfig positions are top-left
type RobotConfig struct {
	X           float64 `toml:"x"`
	Y           float64 `toml:"y"`
	Heading     float64 `toml:"heading"`
	Team        string  `toml:"team"`
	Role        string  `toml:"role"`
	SensorRange float64 `toml:"sensor_range"`
	MaxSpeed    float64 `toml:"max_speed"`
}

type ObstacleConfig struct {
	X     float64 `toml:"x"`
	Y     float64 `toml:"y"`
	W     float64 `toml:"w"`
	H     float64 `toml:"h"`
	Shape string  `toml:"shape"`
	Color string  `toml:"color"`
}

// Export captures the current layout
func (m *Match) Export() Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cfg := Config{
		Field: FieldConfig{Width: m.field.Width, Height: m.field.Height},
		Match: MatchConfig{
			Minutes:       m.minutes,
			Speed:         m.speed,
			RedFormation:  m.formations[core.TeamRed].Formation().Name,
			BlueFormation: m.formations[core.TeamBlue].Formation().Name,
		},
		Ball: BallConfig{X: m.ball.Pos.X, Y: m.ball.Pos.Y, DX: m.ball.Vel.X, DY: m.ball.Vel.Y},
	}
	for _, roster := range [][]core.Robot{m.red, m.blue} {
		for _, r := range roster {
			cfg.Robots = append(cfg.Robots, RobotConfig{
				X:           r.Pos.X,
				Y:           r.Pos.Y,
				Heading:     r.Heading,
				Team:        r.Team.String(),
				Role:        r.Role.String(),
				SensorRange: r.SensorRange,
				MaxSpeed:    r.MaxSpeed,
			})
		}
	}
	for _, o := range m.obstacles {
		cfg.Obstacles = append(cfg.Obstacles, ObstacleConfig{
			X: o.Pos.X, Y: o.Pos.Y, W: o.Width, H: o.Height,
			Shape: o.Shape.String(),
			Color: o.Color,
		})
	}
	return cfg
}

// loaded is a validated Config converted to world values
type loaded struct {
	field         core.Field
	ball          core.Ball
	red, blue     []core.Robot
	obstacles     []core.Obstacle
	redFormation  formation.Formation
	blueFormation formation.Formation
}

// Load validates cfg completely and then replaces the world in one step
// The match returns to Stopped with a fresh clock; nothing changes on error
func (m *Match) Load(cfg Config) error {
	l, err := decodeConfig(cfg)
	if err != nil {
		return err
	}
	return m.runSafe(func() error {
		m.minutes = cfg.Match.Minutes
		m.speed = cfg.Match.Speed
		m.field = l.field
		m.resetLocked()

		m.ball = l.ball
		m.obstacles = l.obstacles
		m.red = l.red
		m.blue = l.blue
		for i := range m.red {
			m.nextID++
			m.red[i].ID = m.nextID
		}
		for i := range m.blue {
			m.nextID++
			m.blue[i].ID = m.nextID
		}
		_ = m.formations[core.TeamRed].SetFormation(l.redFormation.Name)
		_ = m.formations[core.TeamBlue].SetFormation(l.blueFormation.Name)
		m.reassignLocked()
		m.rebuildIndexLocked()
		return nil
	})
}

func decodeConfig(cfg Config) (*loaded, error) {
	if err := validateField(cfg.Field.Width, cfg.Field.Height); err != nil {
		return nil, err
	}
	if err := validateMinutes(cfg.Match.Minutes); err != nil {
		return nil, err
	}
	if err := checkRange("game speed", cfg.Match.Speed, parameter.MinGameSpeed, parameter.MaxGameSpeed); err != nil {
		return nil, err
	}

	l := &loaded{field: core.NewField(cfg.Field.Width, cfg.Field.Height)}

	var err error
	if l.redFormation, err = formation.Lookup(orDefault(cfg.Match.RedFormation)); err != nil {
		return nil, err
	}
	if l.blueFormation, err = formation.Lookup(orDefault(cfg.Match.BlueFormation)); err != nil {
		return nil, err
	}

	l.ball = core.NewBall(clampBall(l.field, vmath.Vec2{X: cfg.Ball.X, Y: cfg.Ball.Y}, parameter.BallRadius))
	l.ball.Vel = vmath.Vec2{X: cfg.Ball.DX, Y: cfg.Ball.DY}
	if !l.ball.Vel.IsFinite() {
		return nil, errors.Wrap(ErrOutOfRange, "ball velocity not finite")
	}
	l.ball.CapSpeed()

	counts := map[core.Team]int{}
	for i, rc := range cfg.Robots {
		team, ok := core.ParseTeam(rc.Team)
		if !ok {
			return nil, errors.Wrapf(ErrOutOfRange, "robot %d: team %q", i, rc.Team)
		}
		role, ok := core.ParseRole(rc.Role)
		if !ok {
			return nil, errors.Wrapf(ErrOutOfRange, "robot %d: role %q", i, rc.Role)
		}
		if !(rc.SensorRange > 0) || !(rc.MaxSpeed > 0) {
			return nil, errors.Wrapf(ErrOutOfRange, "robot %d: sensor range %.1f max speed %.1f", i, rc.SensorRange, rc.MaxSpeed)
		}
		if counts[team]++; counts[team] > parameter.MaxRobotsPerTeam {
			return nil, errors.Wrapf(ErrRosterFull, "%s has more than %d", team, parameter.MaxRobotsPerTeam)
		}

		r := core.NewRobot(0, team, role, vmath.Vec2{X: rc.X, Y: rc.Y})
		r.Pos, _ = l.field.ClampBox(r.Pos, r.Width, r.Height, parameter.BoundaryMargin)
		r.SetHeading(rc.Heading)
		r.SensorRange = rc.SensorRange
		r.MaxSpeed = rc.MaxSpeed
		if team == core.TeamRed {
			l.red = append(l.red, r)
		} else {
			l.blue = append(l.blue, r)
		}
	}

	for i, oc := range cfg.Obstacles {
		shape, ok := core.ParseShape(oc.Shape)
		if !ok {
			return nil, errors.Wrapf(ErrOutOfRange, "obstacle %d: shape %q", i, oc.Shape)
		}
		if err := validateSize(oc.W, oc.H); err != nil {
			return nil, errors.Wrapf(err, "obstacle %d", i)
		}
		pos, _ := l.field.ClampBox(vmath.Vec2{X: oc.X, Y: oc.Y}, oc.W, oc.H, 0)
		l.obstacles = append(l.obstacles, core.NewObstacle(shape, pos, oc.W, oc.H, oc.Color))
	}
	return l, nil
}

func orDefault(name string) string {
	if name == "" {
		return parameter.DefaultFormation
	}
	return name
}
