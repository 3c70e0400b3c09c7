package internal

import "math"

// Geometric predicates. Everything here is pure, and every comparison against
// zero goes through Tolerance.

// Sign of the cross product (b-a) x (p-a): 1 if p is left of the directed
// segment a->b, -1 if it is right, 0 if it is collinear within tolerance.
func Orientation(a, b, p Point) int {
	cross := b.Sub(a).Cross(p.Sub(a))
	switch {
	case cross > Tolerance:
		return 1
	case cross < -Tolerance:
		return -1
	}
	return 0
}

func IsLeft(a, b, p Point) bool {
	return Orientation(a, b, p) > 0
}

// Is p strictly inside the circle through a, b and c? The triangle abc must be
// counterclockwise.
func InCircumcircle(p, a, b, c Point) bool {
	return circumcircleDeterminant(p, a, b, c) > Tolerance
}

// Determinant of the lifted 3x3 matrix, translated so that p is the origin.
// Positive when p is inside the circle of a counterclockwise triangle.
func circumcircleDeterminant(p, a, b, c Point) float64 {
	ax, ay := a.X-p.X, a.Y-p.Y
	bx, by := b.X-p.X, b.Y-p.Y
	cx, cy := c.X-p.X, c.Y-p.Y
	a2 := ax*ax + ay*ay
	b2 := bx*bx + by*by
	c2 := cx*cx + cy*cy
	return ax*(by*c2-b2*cy) - ay*(bx*c2-b2*cx) + a2*(bx*cy-by*cx)
}

// Where does the line through origin along the unit vector dir cross the line
// through s1 and s2? The result is the parameter along s1->s2, so a crossing
// inside the segment lies in [0, 1]. The second result is false for parallel
// lines.
func crossingParameter(origin, dir, s1, s2 Point) (float64, bool) {
	perp := Point{-dir.Y, dir.X}
	d := s2.Sub(s1)
	disc := d.Dot(perp)
	if math.Abs(disc) < d.Norm()*Tolerance {
		return 0, false
	}
	return origin.Sub(s1).Dot(perp) / disc, true
}

// Crossing point of the ray with the open segment, if the crossing lies
// strictly inside it.
func segmentCrossing(origin, dir, s1, s2 Point) (Point, bool) {
	t, ok := crossingParameter(origin, dir, s1, s2)
	if !ok || t < Tolerance || t > 1-Tolerance {
		return Point{}, false
	}
	return s1.Add(s2.Sub(s1).Scale(t)), true
}

// Does the ray from origin along the unit vector dir cross the interior of
// [s1, s2] strictly ahead of the origin?
func RayCrossesSegment(origin, dir, s1, s2 Point) bool {
	crossing, ok := segmentCrossing(origin, dir, s1, s2)
	if !ok {
		return false
	}
	return dir.Dot(crossing.Sub(origin)) >= Tolerance
}

// Does the feature segment [f1, f2] block the line of sight from viewpoint to
// p? Touching the feature at one of its endpoints doesn't count.
func PointInFeatureShadow(p, f1, f2, viewpoint Point) bool {
	dir, ok := p.Sub(viewpoint).Unit()
	if !ok {
		return false
	}
	crossing, ok := segmentCrossing(viewpoint, dir, f1, f2)
	if !ok {
		return false
	}
	return p.Sub(crossing).Dot(crossing.Sub(viewpoint)) >= 0
}

// Is any part of the segment [p1, p2] hidden from viewpoint by the feature?
func SegmentInFeatureShadow(p1, p2, f1, f2, viewpoint Point) bool {
	if PointInFeatureShadow(p1, f1, f2, viewpoint) || PointInFeatureShadow(p2, f1, f2, viewpoint) {
		return true
	}
	return shadowEdgeCrosses(f1, viewpoint, Segment{p1, p2}) ||
		shadowEdgeCrosses(f2, viewpoint, Segment{p1, p2})
}

// Is any part of the triangle hidden from viewpoint by the feature?
func TriangleInFeatureShadow(p1, p2, p3, f1, f2, viewpoint Point) bool {
	for _, p := range []Point{p1, p2, p3} {
		if PointInFeatureShadow(p, f1, f2, viewpoint) {
			return true
		}
	}
	sides := []Segment{{p1, p2}, {p1, p3}, {p2, p3}}
	return shadowEdgeCrosses(f1, viewpoint, sides...) ||
		shadowEdgeCrosses(f2, viewpoint, sides...)
}

// The shadow of a feature is bounded by the rays that leave its endpoints
// heading away from the viewpoint. A segment that crosses one of those rays
// reaches into the shadow even when both of its endpoints are visible.
func shadowEdgeCrosses(featureEnd, viewpoint Point, segments ...Segment) bool {
	dir, ok := featureEnd.Sub(viewpoint).Unit()
	if !ok {
		return false
	}
	for _, s := range segments {
		if RayCrossesSegment(featureEnd, dir, s.Start, s.End) {
			return true
		}
	}
	return false
}

// Twice the signed area of the triangle abc. Positive for counterclockwise.
func doubleSignedArea(a, b, c Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}
