// Package rng provides the uniform point sampler used by random
// Delaunay builds and by the stochastic Lawson walk's sample selector.
package rng

import (
	"math/rand"
	"time"

	"github.com/s-nandi/point-location-2d/pkg/geom"
)

// PointRNG draws points uniformly at random from a fixed rectangle. Each
// instance owns an independent stream seeded from the system clock at
// construction, so concurrent locators and builds never share state.
type PointRNG struct {
	minX, minY float64
	rangeX     float64
	rangeY     float64
	source     *rand.Rand
}

// New returns a PointRNG over [left, right] x [bottom, top]. Panics if
// the rectangle is degenerate (left > right or bottom > top), mirroring
// the reference constructor's precondition.
func New(left, top, right, bottom float64) *PointRNG {
	if left > right || bottom > top {
		panic("rng.New: rectangle must have left <= right and bottom <= top")
	}
	return &PointRNG{
		minX:   left,
		minY:   bottom,
		rangeX: right - left,
		rangeY: top - bottom,
		source: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Point draws one point uniformly from the rectangle.
func (r *PointRNG) Point() geom.Point {
	return geom.Point{
		X: r.minX + r.rangeX*r.source.Float64(),
		Y: r.minY + r.rangeY*r.source.Float64(),
	}
}

// Points draws n points uniformly from the rectangle.
func (r *PointRNG) Points(n int) []geom.Point {
	out := make([]geom.Point, n)
	for i := range out {
		out[i] = r.Point()
	}
	return out
}

// Intn returns a uniform random integer in [0, n), used by the
// stochastic walk and the sample selector to pick among candidates.
func (r *PointRNG) Intn(n int) int {
	return r.source.Intn(n)
}
