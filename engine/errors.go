package engine

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/botball/formation"
)

// Command and lifecycle errors; callers compare with errors.Cause
var (
	ErrOutOfRange       = errors.New("value out of range")
	ErrMatchEnded       = errors.New("match has ended")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrNoPlacement      = errors.New("no valid placement")
	ErrRosterFull       = errors.New("team roster full")
	ErrShutdownTimeout  = errors.New("shutdown timed out")
	ErrUnknownFormation = formation.ErrUnknownFormation
)

func checkRange(name string, v, lo, hi float64) error {
	if !(v >= lo && v <= hi) {
		return errors.Wrapf(ErrOutOfRange, "%s %.2f not in [%.2f, %.2f]", name, v, lo, hi)
	}
	return nil
}
