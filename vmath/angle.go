package vmath

import "math"

// Headings are in degrees, 0° points along +X and angles grow toward +Y (screen down)

// NormalizeDegrees maps any angle into [0, 360)
func NormalizeDegrees(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0
	}
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// -1e-15 + 360 rounds to 360
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// AngleDiff returns the signed shortest rotation from 'from' to 'to' in (-180, 180]
func AngleDiff(from, to float64) float64 {
	d := NormalizeDegrees(to - from)
	if d > 180 {
		d -= 360
	}
	return d
}

// HeadingVector returns the unit vector for a heading in degrees
func HeadingVector(deg float64) Vec2 {
	rad := deg * math.Pi / 180
	return Vec2{math.Cos(rad), math.Sin(rad)}
}

// HeadingOf returns the heading in degrees of v, 0 for the zero vector
func HeadingOf(v Vec2) float64 {
	if v.X == 0 && v.Y == 0 {
		return 0
	}
	return NormalizeDegrees(math.Atan2(v.Y, v.X) * 180 / math.Pi)
}
