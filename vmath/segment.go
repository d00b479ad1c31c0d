package vmath

import "math"

// intersectEpsilon guards the determinant of near-parallel segments
const intersectEpsilon = 1e-10

// Segment is a line segment between two points
// Used for obstacle edges and sensor beams
type Segment struct {
	A, B Vec2
}

func Seg(ax, ay, bx, by float64) Segment {
	return Segment{A: Vec2{ax, ay}, B: Vec2{bx, by}}
}

func (s Segment) Len() float64 {
	return s.A.Dist(s.B)
}

// Direction returns B - A
func (s Segment) Direction() Vec2 {
	return s.B.Sub(s.A)
}

// Midpoint returns the center of the segment
func (s Segment) Midpoint() Vec2 {
	return s.A.Lerp(s.B, 0.5)
}

// Normal returns the unit left normal of the segment
// Zero-length segments return DefaultNormal
func (s Segment) Normal() Vec2 {
	return s.Direction().Perp().NormalizeOr(DefaultNormal)
}

// ClosestPoint returns the point on the segment nearest to p
func (s Segment) ClosestPoint(p Vec2) Vec2 {
	d := s.Direction()
	lenSq := d.LenSq()
	if lenSq == 0 {
		return s.A
	}
	t := Clamp(p.Sub(s.A).Dot(d)/lenSq, 0, 1)
	return s.A.Add(d.Scale(t))
}

// DistanceTo returns the shortest distance from p to the segment
func (s Segment) DistanceTo(p Vec2) float64 {
	return p.Dist(s.ClosestPoint(p))
}

// Intersect returns the crossing point of two segments
// Parallel and collinear segments report no intersection
func (s Segment) Intersect(o Segment) (Vec2, bool) {
	r := s.Direction()
	q := o.Direction()
	denom := r.Cross(q)
	if math.Abs(denom) < intersectEpsilon {
		return Vec2{}, false
	}

	diff := o.A.Sub(s.A)
	t := diff.Cross(q) / denom
	u := diff.Cross(r) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Vec2{}, false
	}
	return s.A.Add(r.Scale(t)), true
}

// Bounds returns the min and max corners of the segment's bounding box
func (s Segment) Bounds() (min, max Vec2) {
	return Vec2{math.Min(s.A.X, s.B.X), math.Min(s.A.Y, s.B.Y)},
		Vec2{math.Max(s.A.X, s.B.X), math.Max(s.A.Y, s.B.Y)}
}

// SegmentsBounds returns the combined bounding box of a segment list
// Returns zero vectors for an empty list
func SegmentsBounds(segs []Segment) (min, max Vec2) {
	if len(segs) == 0 {
		return Vec2{}, Vec2{}
	}
	min, max = segs[0].Bounds()
	for _, s := range segs[1:] {
		lo, hi := s.Bounds()
		min.X = math.Min(min.X, lo.X)
		min.Y = math.Min(min.Y, lo.Y)
		max.X = math.Max(max.X, hi.X)
		max.Y = math.Max(max.Y, hi.Y)
	}
	return min, max
}
