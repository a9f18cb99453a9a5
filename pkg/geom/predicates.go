package geom

// Orientation returns sign(cross(c-a, b-a)).
//
//   - > 0 : (a, b, c) is clockwise
//   - < 0 : (a, b, c) is counter-clockwise
//   - = 0 : a, b, c are collinear
//
// This sign convention is load-bearing: it propagates through the walking
// locator, the quadtree overlap test and the Delaunay flip condition, and
// must never be inverted locally.
func Orientation(a, b, c Point) float64 {
	return Cross(c.Sub(a), b.Sub(a))
}

// InCircle returns the sign of the standard 4x4 determinant for p against
// the circle through a, b, c.
//
//   - > 0 : p is strictly inside the oriented circle of CCW (a, b, c)
//   - < 0 : p is strictly outside
//   - = 0 : p is cocircular with a, b, c
func InCircle(p, a, b, c Point) float64 {
	return Dot(a, a)*Cross(c.Sub(b), p.Sub(b)) -
		Dot(b, b)*Cross(c.Sub(a), p.Sub(a)) +
		Dot(c, c)*Cross(b.Sub(a), p.Sub(a)) -
		Dot(p, p)*Cross(b.Sub(a), c.Sub(a))
}

// InSegment reports whether p lies on the closed segment [m0, m1].
// Collinearity is required; a point exactly at either endpoint counts as
// being on the segment.
func InSegment(m0, m1, p Point) bool {
	ab := m1.Sub(m0)
	ap := p.Sub(m0)
	if Cross(ab, ap) != 0 {
		return false
	}
	dotAbAp := Dot(ab, ap)
	oppositeDirection := dotAbAp < 0
	tooFar := dotAbAp > ab.MagnitudeSquared()
	return !oppositeDirection && !tooFar
}

// Intersects reports whether segments [m0, m1] and [n0, n1] intersect.
// For non-parallel segments it is the strict two sign-pairs test: each
// segment's endpoints must lie strictly on opposite sides of the other's
// line, so segments that only touch at an endpoint are not reported. When
// the segments are parallel, it falls back to InSegment of n0 and of n1
// against [m0, m1]; a segment [m0, m1] lying strictly inside [n0, n1] is
// not reported.
func Intersects(m0, m1, n0, n1 Point) bool {
	crossMN := Cross(m1.Sub(m0), n1.Sub(n0))
	if crossMN == 0 {
		return InSegment(m0, m1, n0) || InSegment(m0, m1, n1)
	}
	diffSideM := Orientation(m0, m1, n0)*Orientation(m0, m1, n1) < 0
	diffSideN := Orientation(n0, n1, m0)*Orientation(n0, n1, m1) < 0
	return diffSideM && diffSideN
}
