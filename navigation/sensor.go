package navigation

import (
	"github.com/lixenwraith/botball/core"
	"github.com/lixenwraith/botball/parameter"
	"github.com/lixenwraith/botball/vmath"
)

// Beams holds one hit flag per sensor beam, ordered from -FOV/2 to +FOV/2
type Beams [parameter.SensorBeams]bool

// Any reports whether any beam hit an obstacle
func (b Beams) Any() bool {
	for _, hit := range b {
		if hit {
			return true
		}
	}
	return false
}

// AvoidDirection returns the turn sign away from the side with more hits
// Ties, including a center-only hit, turn positive
func (b Beams) AvoidDirection() float64 {
	mid := len(b) / 2
	neg, pos := 0, 0
	for i, hit := range b {
		if !hit {
			continue
		}
		switch {
		case i < mid:
			neg++
		case i > mid:
			pos++
		}
	}
	if pos > neg {
		return -1
	}
	return 1
}

// BeamSegments returns the sensor fan of r, evenly spread across its FOV
func BeamSegments(r *core.Robot) [parameter.SensorBeams]vmath.Segment {
	var out [parameter.SensorBeams]vmath.Segment
	origin := r.Center()
	n := len(out)
	for i := range out {
		offset := 0.0
		if n > 1 {
			offset = -r.SensorFOV/2 + r.SensorFOV*float64(i)/float64(n-1)
		}
		dir := vmath.HeadingVector(r.Heading + offset)
		out[i] = vmath.Segment{A: origin, B: origin.Add(dir.Scale(r.SensorRange))}
	}
	return out
}

// Sense casts the fan against every nearby obstacle edge
func Sense(v *View, r *core.Robot) Beams {
	var hits Beams
	if len(v.Obstacles) == 0 {
		return hits
	}

	beams := BeamSegments(r)
	c := r.Center()
	fan := core.Area{
		X: c.X - r.SensorRange, Y: c.Y - r.SensorRange,
		Width: 2 * r.SensorRange, Height: 2 * r.SensorRange,
	}

	for _, idx := range v.nearbyObstacles(fan) {
		edges := v.Obstacles[idx].Edges()
		for b := range beams {
			if hits[b] {
				continue
			}
			for _, e := range edges {
				if _, ok := beams[b].Intersect(e); ok {
					hits[b] = true
					break
				}
			}
		}
	}
	return hits
}
