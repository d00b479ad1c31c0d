package input

import (
	"math"
	"slices"

	"github.com/pkg/errors"

	"github.com/lixenwraith/botball/core"
	"github.com/lixenwraith/botball/engine"
	"github.com/lixenwraith/botball/formation"
	"github.com/lixenwraith/botball/parameter"
	"github.com/lixenwraith/botball/vmath"
)

// Commands is the match surface driven by keyboard and mouse
type Commands interface {
	Start() error
	Pause()
	Reset()
	PopulateDefaultTeams()
	ToggleDebug() bool

	KickNearest(team core.Team) bool
	AddRobot(team core.Team, role core.Role) (core.RobotID, error)
	RemoveRobot(index int) error
	SetFormation(team core.Team, name string) error
	AddObstacle(shape core.Shape, w, h float64, color string) error
	RemoveObstacle(index int) error

	SetGameSpeed(s float64) error
	SetMatchDuration(minutes int) error
	SetFieldDimensions(w, h float64) error

	SelectAt(x, y float64) (engine.Selection, bool)
	MoveSelection(sel engine.Selection, x, y float64) error
	Snapshot() engine.Snapshot
}

// CellMapper converts screen cells into world points
type CellMapper interface {
	ToWorld(x, y int) vmath.Vec2
	Contains(x, y int) bool
}

// Dispatcher applies intents to a match
type Dispatcher struct {
	cmds Commands

	// OnSave runs for IntentSave; nil disables saving
	OnSave func() error

	selection engine.Selection
	selected  bool
	added     int // obstacles added, drives shape and color cycling
}

// NewDispatcher creates a dispatcher over cmds
func NewDispatcher(cmds Commands) *Dispatcher {
	return &Dispatcher{cmds: cmds}
}

// Selection returns the entity picked by the last mouse press
func (d *Dispatcher) Selection() (engine.Selection, bool) {
	return d.selection, d.selected
}

// Apply executes one intent; quit reports IntentQuit
// vm may be nil when no screen is attached
func (d *Dispatcher) Apply(in *Intent, vm CellMapper) (quit bool, err error) {
	if in == nil {
		return false, nil
	}

	switch in.Type {
	case IntentQuit:
		return true, nil
	case IntentSave:
		if d.OnSave == nil {
			return false, nil
		}
		return false, d.OnSave()

	case IntentStartPause:
		if d.cmds.Snapshot().Running {
			d.cmds.Pause()
			return false, nil
		}
		return false, d.cmds.Start()
	case IntentReset:
		d.cmds.Reset()
	case IntentPopulate:
		d.selected = false
		d.cmds.PopulateDefaultTeams()
	case IntentDebug:
		d.cmds.ToggleDebug()

	case IntentKickRed:
		d.cmds.KickNearest(core.TeamRed)
	case IntentKickBlue:
		d.cmds.KickNearest(core.TeamBlue)

	case IntentAddRed:
		_, err = d.cmds.AddRobot(core.TeamRed, core.RoleAttacker)
	case IntentAddBlue:
		_, err = d.cmds.AddRobot(core.TeamBlue, core.RoleAttacker)
	case IntentRemoveRobot:
		err = d.removeRobot()
	case IntentCycleFormationRed:
		err = d.cycleFormation(core.TeamRed)
	case IntentCycleFormationBlue:
		err = d.cycleFormation(core.TeamBlue)

	case IntentAddObstacle:
		err = d.addObstacle()
	case IntentRemoveObstacle:
		err = d.removeObstacle()

	case IntentSpeedUp, IntentSpeedDown:
		step := parameter.SpeedStep
		if in.Type == IntentSpeedDown {
			step = -step
		}
		s := d.cmds.Snapshot().Speed + step
		s = math.Round(s*10) / 10
		err = d.cmds.SetGameSpeed(vmath.Clamp(s, parameter.MinGameSpeed, parameter.MaxGameSpeed))
	case IntentDurationUp, IntentDurationDown:
		step := parameter.DurationStep
		if in.Type == IntentDurationDown {
			step = -step
		}
		m := d.cmds.Snapshot().Minutes + step
		err = d.cmds.SetMatchDuration(min(max(m, parameter.MinMatchMinutes), parameter.MaxMatchMinutes))
	case IntentFieldGrow, IntentFieldShrink:
		err = d.resizeField(in.Type == IntentFieldGrow)

	case IntentMouseDown:
		d.selected = false
		if p, ok := toWorld(vm, in.X, in.Y); ok {
			d.selection, d.selected = d.cmds.SelectAt(p.X, p.Y)
		}
	case IntentMouseDrag:
		if !d.selected {
			return false, nil
		}
		if p, ok := toWorld(vm, in.X, in.Y); ok {
			err = d.cmds.MoveSelection(d.selection, p.X, p.Y)
		}
	case IntentMouseUp:
		d.selected = false
	}
	return false, err
}

func toWorld(vm CellMapper, x, y int) (vmath.Vec2, bool) {
	if vm == nil || !vm.Contains(x, y) {
		return vmath.Vec2{}, false
	}
	return vm.ToWorld(x, y), true
}

// removeRobot deletes the selected robot, else the last one
func (d *Dispatcher) removeRobot() error {
	if d.selected && d.selection.Kind == engine.SelectRobot {
		d.selected = false
		return d.cmds.RemoveRobot(d.selection.Index)
	}
	s := d.cmds.Snapshot()
	n := len(s.Red) + len(s.Blue)
	if n == 0 {
		return nil
	}
	return d.cmds.RemoveRobot(n - 1)
}

// removeObstacle deletes the selected obstacle, else the newest one
func (d *Dispatcher) removeObstacle() error {
	if d.selected && d.selection.Kind == engine.SelectObstacle {
		d.selected = false
		return d.cmds.RemoveObstacle(d.selection.Index)
	}
	n := len(d.cmds.Snapshot().Obstacles)
	if n == 0 {
		return nil
	}
	return d.cmds.RemoveObstacle(n - 1)
}

// addObstacle cycles rectangle, circle, wall presets
func (d *Dispatcher) addObstacle() error {
	shape := []core.Shape{core.ShapeRectangle, core.ShapeCircle, core.ShapeWall}[d.added%3]
	color := parameter.ObstacleColors[d.added%len(parameter.ObstacleColors)]
	w, h := parameter.ObstaclePresetSize, parameter.ObstaclePresetSize
	if shape == core.ShapeWall {
		w, h = parameter.WallPresetWidth, parameter.WallPresetLength
		if d.added%2 == 1 {
			w, h = h, w
		}
	}
	if err := d.cmds.AddObstacle(shape, w, h, color); err != nil {
		return err
	}
	d.added++
	return nil
}

func (d *Dispatcher) cycleFormation(team core.Team) error {
	s := d.cmds.Snapshot()
	current := s.RedFormation
	if team == core.TeamBlue {
		current = s.BlueFormation
	}
	names := formation.Names()
	next := names[(slices.Index(names, current)+1)%len(names)]
	return d.cmds.SetFormation(team, next)
}

// resizeField steps the field keeping a 3:2 ratio, clamped to the allowed range
func (d *Dispatcher) resizeField(grow bool) error {
	f := d.cmds.Snapshot().Field
	step := parameter.FieldStep
	if !grow {
		step = -step
	}
	w := vmath.Clamp(f.Width+step, parameter.MinFieldWidth, parameter.MaxFieldWidth)
	h := vmath.Clamp(f.Height+step*2/3, parameter.MinFieldHeight, parameter.MaxFieldHeight)
	if w == f.Width && h == f.Height {
		return nil
	}
	if err := d.cmds.SetFieldDimensions(w, h); err != nil {
		return errors.Wrap(err, "resize field")
	}
	return nil
}
