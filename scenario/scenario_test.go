package scenario

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	pkgerrors "github.com/pkg/errors"

	"github.com/lixenwraith/botball/core"
	"github.com/lixenwraith/botball/engine"
)

func newMatch(t *testing.T) *engine.Match {
	t.Helper()
	m, err := engine.NewMatch(engine.DefaultOptions(), nil, nil)
	if err != nil {
		t.Fatalf("NewMatch failed: %v", err)
	}
	return m
}

func TestSaveLoadFile(t *testing.T) {
	src := newMatch(t)
	src.PopulateDefaultTeams()
	_ = src.SetFormation(core.TeamRed, "2-1-1")
	if err := src.PlaceObstacle(core.ShapeWall, 300, 60, 10, 80, "white"); err != nil {
		t.Fatalf("PlaceObstacle failed: %v", err)
	}
	src.KickBall(1.5, -0.5)

	path := filepath.Join(t.TempDir(), "layout.toml")
	if err := Save(path, src); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"[field]", "[[robot]]", "[[obstacle]]", `red_formation = "2-1-1"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("Expected %q in file:\n%s", want, data)
		}
	}

	dst := newMatch(t)
	if err := Load(path, dst); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if want, got := src.Export(), dst.Export(); !reflect.DeepEqual(want, got) {
		t.Errorf("Expected identical layout\nwant %+v\ngot  %+v", want, got)
	}
}

func TestDecodeHandWritten(t *testing.T) {
	doc := `
[field]
width = 500
height = 300

[match]
minutes = 2
speed = 1.0

[ball]
x = 270
y = 170

[[robot]]
x = 100
y = 160
team = "red"
role = "gk"
sensor_range = 80
max_speed = 2.5

[[obstacle]]
x = 250
y = 40
w = 30
h = 30
shape = "circle"
color = "green"
`
	cfg, err := Decode([]byte(doc))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	m := newMatch(t)
	if err := m.Load(cfg); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	s := m.Snapshot()
	if s.Field.Width != 500 || len(s.Red) != 1 || s.Red[0].Role != core.RoleGoalkeeper {
		t.Errorf("Expected hand-written layout applied, got field %v red %d", s.Field.Width, len(s.Red))
	}
	if s.Obstacles[0].Shape != core.ShapeCircle || s.RedFormation != "2-2" {
		t.Errorf("Expected circle and default formation, got %v %s", s.Obstacles[0].Shape, s.RedFormation)
	}
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	if _, err := Decode([]byte("[field]\nwidth = 600\ndepth = 3\n")); err == nil {
		t.Error("Expected unknown key error")
	}
	if _, err := Decode([]byte("[field\n")); err == nil {
		t.Error("Expected syntax error")
	}
}

func TestLoadInvalidLeavesMatch(t *testing.T) {
	m := newMatch(t)
	m.PopulateDefaultTeams()
	before := m.Export()

	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[field]\nwidth = 50\nheight = 400\n[match]\nminutes = 5\nspeed = 1.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	err := Load(path, m)
	if pkgerrors.Cause(err) != engine.ErrOutOfRange {
		t.Errorf("Expected ErrOutOfRange, got %v", err)
	}
	if !reflect.DeepEqual(before, m.Export()) {
		t.Error("Expected match unchanged")
	}
	if err := Load(filepath.Join(t.TempDir(), "none.toml"), m); err == nil {
		t.Error("Expected missing file error")
	}
}
