package geom

// Point is a 2D point, also used as a free vector where convenient.
type Point struct {
	X, Y float64
}

// Add returns p + o.
func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y}
}

// Sub returns p - o.
func (p Point) Sub(o Point) Point {
	return Point{p.X - o.X, p.Y - o.Y}
}

// Scale returns k * p.
func (p Point) Scale(k float64) Point {
	return Point{k * p.X, k * p.Y}
}

// Div returns p / k.
func (p Point) Div(k float64) Point {
	return Point{p.X / k, p.Y / k}
}

// Less gives an arbitrary but total order on points, x first then y; used
// to sort events left-to-right in the slab sweep and endpoints for
// segment comparisons.
func (p Point) Less(o Point) bool {
	if p.X != o.X {
		return p.X < o.X
	}
	return p.Y < o.Y
}

// Greater is the strict reverse of Less.
func (p Point) Greater(o Point) bool {
	return o.Less(p)
}

// Equal reports whether p and o have identical coordinates.
func (p Point) Equal(o Point) bool {
	return p.X == o.X && p.Y == o.Y
}

// Cross returns the 2D cross product a × b.
func Cross(a, b Point) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Dot returns the dot product of a and b.
func Dot(a, b Point) float64 {
	return a.X*b.X + a.Y*b.Y
}

// MagnitudeSquared returns p's squared length.
func (p Point) MagnitudeSquared() float64 {
	return Dot(p, p)
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point {
	return a.Add(b).Div(2)
}

// Point3 is a minimal 3D point; no 3D geometry is implemented beyond this
// carrier. The OFF reader and writer use Point, so a z column in an OFF
// file is dropped on read and not written back.
type Point3 struct {
	X, Y, Z float64
}
