package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/botball/engine"
	"github.com/lixenwraith/botball/vmath"
)

func TestDefaultKeymapResolve(t *testing.T) {
	km := DefaultKeymap()
	tests := []struct {
		key  tcell.Key
		r    rune
		want IntentType
	}{
		{tcell.KeyRune, ' ', IntentStartPause},
		{tcell.KeyRune, 'k', IntentKickRed},
		{tcell.KeyRune, 'K', IntentKickBlue},
		{tcell.KeyRune, 'z', IntentNone},
		{tcell.KeyCtrlC, 0, IntentQuit},
		{tcell.KeyUp, 0, IntentSpeedUp},
	}
	for _, tt := range tests {
		if got := km.Resolve(tt.key, tt.r); got != tt.want {
			t.Errorf("Resolve(%v, %q): expected %v, got %v", tt.key, tt.r, tt.want, got)
		}
	}
}

func TestLoadKeymap(t *testing.T) {
	data := `
[keys]
space = "kick_red"
z = "start"
q = "none"

[special_keys]
Enter = "populate"
`
	override, err := LoadKeymap([]byte(data))
	if err != nil {
		t.Fatalf("LoadKeymap failed: %v", err)
	}
	km := MergeKeymap(DefaultKeymap(), override)

	if got := km.Resolve(tcell.KeyRune, ' '); got != IntentKickRed {
		t.Errorf("Expected space rebound to kick_red, got %v", got)
	}
	if got := km.Resolve(tcell.KeyRune, 'z'); got != IntentStartPause {
		t.Errorf("Expected z bound to start, got %v", got)
	}
	if got := km.Resolve(tcell.KeyRune, 'q'); got != IntentNone {
		t.Errorf("Expected q unbound, got %v", got)
	}
	if got := km.Resolve(tcell.KeyEnter, 0); got != IntentPopulate {
		t.Errorf("Expected Enter bound to populate, got %v", got)
	}
	if got := km.Resolve(tcell.KeyRune, 'k'); got != IntentKickRed {
		t.Errorf("Expected untouched binding kept, got %v", got)
	}
}

func TestLoadKeymapErrors(t *testing.T) {
	tests := map[string]string{
		"unknown action":  "[keys]\nz = \"fly\"\n",
		"multi-rune key":  "[keys]\nzz = \"start\"\n",
		"unknown key":     "[special_keys]\nHyper = \"start\"\n",
		"unknown section": "[mouse]\nz = \"start\"\n",
		"bad toml":        "[keys\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadKeymap([]byte(data)); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestIntentNames(t *testing.T) {
	if IntentKickBlue.String() != "kick_blue" {
		t.Errorf("Expected kick_blue, got %s", IntentKickBlue)
	}
	if IntentMouseDrag.String() != "mouse_drag" {
		t.Errorf("Expected mouse_drag, got %s", IntentMouseDrag)
	}
}

func TestMachineMouseGesture(t *testing.T) {
	m := NewMachine(nil)

	if in := m.Process(tcell.NewEventMouse(5, 6, tcell.ButtonNone, 0)); in != nil {
		t.Errorf("Expected hover ignored, got %+v", in)
	}

	steps := []struct {
		x, y int
		btn  tcell.ButtonMask
		want IntentType
	}{
		{5, 6, tcell.Button1, IntentMouseDown},
		{7, 6, tcell.Button1, IntentMouseDrag},
		{8, 7, tcell.Button1, IntentMouseDrag},
		{8, 7, tcell.ButtonNone, IntentMouseUp},
	}
	for i, s := range steps {
		in := m.Process(tcell.NewEventMouse(s.x, s.y, s.btn, 0))
		if in == nil || in.Type != s.want {
			t.Fatalf("Step %d: expected %v, got %+v", i, s.want, in)
		}
		if in.X != s.x || in.Y != s.y {
			t.Errorf("Step %d: expected cell (%d,%d), got (%d,%d)", i, s.x, s.y, in.X, in.Y)
		}
	}
	if m.Drag() != DragIdle {
		t.Errorf("Expected idle after release, got %v", m.Drag())
	}

	if in := m.Process(tcell.NewEventResize(80, 24)); in == nil || in.Type != IntentResize {
		t.Errorf("Expected resize intent, got %+v", in)
	}
}

// unitMapper maps one cell to ten world units
type unitMapper struct{}

func (unitMapper) ToWorld(x, y int) vmath.Vec2 {
	return vmath.Vec2{X: float64(x)*10 + 5, Y: float64(y)*10 + 5}
}

func (unitMapper) Contains(x, y int) bool { return x >= 0 && y >= 0 && x < 64 && y < 44 }

func newDispatchMatch(t *testing.T) (*engine.Match, *Dispatcher) {
	t.Helper()
	m, err := engine.NewMatch(engine.DefaultOptions(), nil, nil)
	if err != nil {
		t.Fatalf("NewMatch failed: %v", err)
	}
	return m, NewDispatcher(m)
}

func TestDispatchMatchControl(t *testing.T) {
	m, d := newDispatchMatch(t)

	if quit, err := d.Apply(&Intent{Type: IntentStartPause}, nil); quit || err != nil {
		t.Fatalf("Expected start, got quit=%v err=%v", quit, err)
	}
	if !m.Snapshot().Running {
		t.Error("Expected running after first toggle")
	}
	_, _ = d.Apply(&Intent{Type: IntentStartPause}, nil)
	if m.Snapshot().Running {
		t.Error("Expected paused after second toggle")
	}

	if quit, _ := d.Apply(&Intent{Type: IntentQuit}, nil); !quit {
		t.Error("Expected quit")
	}
	if quit, err := d.Apply(nil, nil); quit || err != nil {
		t.Error("Expected nil intent ignored")
	}
}

func TestDispatchSettingsClamp(t *testing.T) {
	m, d := newDispatchMatch(t)

	for range 30 {
		if _, err := d.Apply(&Intent{Type: IntentSpeedUp}, nil); err != nil {
			t.Fatalf("SpeedUp failed: %v", err)
		}
	}
	if s := m.Snapshot().Speed; s != 2.0 {
		t.Errorf("Expected speed capped at 2.0, got %v", s)
	}

	for range 40 {
		_, _ = d.Apply(&Intent{Type: IntentDurationDown}, nil)
	}
	if n := m.Snapshot().Minutes; n != 1 {
		t.Errorf("Expected minutes floored at 1, got %d", n)
	}

	for range 10 {
		if _, err := d.Apply(&Intent{Type: IntentFieldGrow}, nil); err != nil {
			t.Fatalf("FieldGrow failed: %v", err)
		}
	}
	if f := m.Snapshot().Field; f.Width != 800 || f.Height != 600 {
		t.Errorf("Expected field capped at 800x600, got %vx%v", f.Width, f.Height)
	}
}

func TestDispatchRostersAndFormation(t *testing.T) {
	m, d := newDispatchMatch(t)

	_, _ = d.Apply(&Intent{Type: IntentPopulate}, nil)
	_, _ = d.Apply(&Intent{Type: IntentAddBlue}, nil)
	s := m.Snapshot()
	if len(s.Red) != 5 || len(s.Blue) != 6 {
		t.Fatalf("Expected 5v6, got %dv%d", len(s.Red), len(s.Blue))
	}

	_, _ = d.Apply(&Intent{Type: IntentRemoveRobot}, nil)
	if n := len(m.Snapshot().Blue); n != 5 {
		t.Errorf("Expected last robot removed, got %d blue", n)
	}

	before := m.Snapshot().RedFormation
	if _, err := d.Apply(&Intent{Type: IntentCycleFormationRed}, nil); err != nil {
		t.Fatalf("Cycle formation failed: %v", err)
	}
	if after := m.Snapshot().RedFormation; after == before {
		t.Errorf("Expected formation to change from %s", before)
	}
}

func TestDispatchObstacles(t *testing.T) {
	m, d := newDispatchMatch(t)

	for i := range 3 {
		if _, err := d.Apply(&Intent{Type: IntentAddObstacle}, nil); err != nil {
			t.Fatalf("AddObstacle %d failed: %v", i, err)
		}
	}
	obs := m.Snapshot().Obstacles
	if len(obs) != 3 {
		t.Fatalf("Expected 3 obstacles, got %d", len(obs))
	}
	if obs[0].Shape == obs[1].Shape || obs[1].Shape == obs[2].Shape {
		t.Error("Expected shapes to cycle")
	}

	_, _ = d.Apply(&Intent{Type: IntentRemoveObstacle}, nil)
	if n := len(m.Snapshot().Obstacles); n != 2 {
		t.Errorf("Expected 2 obstacles after remove, got %d", n)
	}
}

func TestDispatchDragBall(t *testing.T) {
	m, d := newDispatchMatch(t)

	// Ball starts at (320, 220), cell (31, 21) under unitMapper
	ball := m.Snapshot().Ball.Pos
	cx, cy := int(ball.X)/10, int(ball.Y)/10

	_, _ = d.Apply(&Intent{Type: IntentMouseDown, X: cx, Y: cy}, unitMapper{})
	sel, ok := d.Selection()
	if !ok || sel.Kind != engine.SelectBall {
		t.Fatalf("Expected ball selected, got %+v ok=%v", sel, ok)
	}

	if _, err := d.Apply(&Intent{Type: IntentMouseDrag, X: 10, Y: 10}, unitMapper{}); err != nil {
		t.Fatalf("Drag failed: %v", err)
	}
	if p := m.Snapshot().Ball.Pos; p != (vmath.Vec2{X: 105, Y: 105}) {
		t.Errorf("Expected ball at (105,105), got %v", p)
	}

	_, _ = d.Apply(&Intent{Type: IntentMouseUp}, unitMapper{})
	if _, ok := d.Selection(); ok {
		t.Error("Expected selection cleared on release")
	}

	// Drag without selection does nothing
	_, _ = d.Apply(&Intent{Type: IntentMouseDrag, X: 20, Y: 20}, unitMapper{})
	if p := m.Snapshot().Ball.Pos; p != (vmath.Vec2{X: 105, Y: 105}) {
		t.Errorf("Expected ball unmoved, got %v", p)
	}
}

func TestDispatchSave(t *testing.T) {
	_, d := newDispatchMatch(t)
	saved := 0
	d.OnSave = func() error {
		saved++
		return nil
	}
	_, _ = d.Apply(&Intent{Type: IntentSave}, nil)
	if saved != 1 {
		t.Errorf("Expected one save, got %d", saved)
	}
}
