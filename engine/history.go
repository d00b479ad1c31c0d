package engine

import (
	"fmt"
	"math"

	"github.com/lixenwraith/botball/core"
	"github.com/lixenwraith/botball/parameter"
)

// history is a bounded log of match lines, oldest first
type history struct {
	lines []string
}

func (h *history) add(line string) {
	h.lines = append(h.lines, line)
	if over := len(h.lines) - parameter.HistorySize; over > 0 {
		h.lines = append(h.lines[:0:0], h.lines[over:]...)
	}
}

// last returns a copy of the newest n lines; n <= 0 means all
func (h *history) last(n int) []string {
	if n <= 0 || n > len(h.lines) {
		n = len(h.lines)
	}
	out := make([]string, n)
	copy(out, h.lines[len(h.lines)-n:])
	return out
}

func (h *history) reset() {
	h.lines = nil
}

// stamp prefixes msg with the elapsed match time
func stamp(elapsed float64, format string, args ...any) string {
	return fmt.Sprintf("[%s] ", core.FormatClock(math.Floor(elapsed))) + fmt.Sprintf(format, args...)
}
