// Package formation maps named templates of role and relative position onto
// absolute field targets. Blue mirrors Red across the halfway line.
package formation

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/lixenwraith/botball/core"
)

// ErrUnknownFormation is returned for names with no template
var ErrUnknownFormation = errors.New("unknown formation")

// Kind is the tactical character of a formation
type Kind uint8

const (
	KindBalanced Kind = iota
	KindAttacking
	KindDefensive
)

func (k Kind) String() string {
	switch k {
	case KindBalanced:
		return "balanced"
	case KindAttacking:
		return "attacking"
	case KindDefensive:
		return "defensive"
	default:
		return "unknown"
	}
}

// Slot is one position in a template, relative to the field as seen by Red
type Slot struct {
	Role core.Role
	X, Y float64 // in [0,1]
}

// Formation is a named list of slots
type Formation struct {
	Name  string
	Kind  Kind
	Slots []Slot
}

var templates = map[string]Formation{
	"2-2": {
		Name: "2-2",
		Kind: KindBalanced,
		Slots: []Slot{
			{core.RoleGoalkeeper, 0.1, 0.5},
			{core.RoleDefender, 0.3, 0.3},
			{core.RoleDefender, 0.3, 0.7},
			{core.RoleAttacker, 0.7, 0.3},
			{core.RoleAttacker, 0.7, 0.7},
		},
	},
	"1-2-1": {
		Name: "1-2-1",
		Kind: KindAttacking,
		Slots: []Slot{
			{core.RoleGoalkeeper, 0.1, 0.5},
			{core.RoleDefender, 0.3, 0.5},
			{core.RoleAttacker, 0.6, 0.3},
			{core.RoleAttacker, 0.6, 0.7},
			{core.RoleAttacker, 0.8, 0.5},
		},
	},
	"2-1-1": {
		Name: "2-1-1",
		Kind: KindDefensive,
		Slots: []Slot{
			{core.RoleGoalkeeper, 0.1, 0.5},
			{core.RoleDefender, 0.3, 0.3},
			{core.RoleDefender, 0.3, 0.7},
			{core.RoleDefender, 0.5, 0.5},
			{core.RoleAttacker, 0.8, 0.5},
		},
	},
}

// Kickoff is the default 5-robot lineup used to populate a team
var Kickoff = []Slot{
	{core.RoleGoalkeeper, 0.1, 0.5},
	{core.RoleDefender, 0.3, 0.3},
	{core.RoleDefender, 0.3, 0.7},
	{core.RoleAttacker, 0.4, 0.4},
	{core.RoleAttacker, 0.4, 0.6},
}

// Lookup returns the template for name
func Lookup(name string) (Formation, error) {
	f, ok := templates[name]
	if !ok {
		return Formation{}, errors.Wrapf(ErrUnknownFormation, "%q", name)
	}
	return f, nil
}

// Names lists the available templates
func Names() []string {
	names := make([]string, 0, len(templates))
	for n := range templates {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// SlotPosition scales a slot onto the field for team, returning a center point
func SlotPosition(field core.Field, team core.Team, s Slot) (x, y float64) {
	p := field.Relative(core.Mirror(team, s.X), s.Y)
	return p.X, p.Y
}
