package triangulation

import (
	"github.com/s-nandi/point-location-2d/pkg/geom"
	"github.com/s-nandi/point-location-2d/pkg/quadedge"
)

// Type selects whether Build maintains the Delaunay (empty-circumcircle)
// property after every insertion, or leaves the triangulation arbitrary.
type Type int

const (
	// Delaunay maximizes the minimum angle: every interior edge satisfies
	// the empty-circumcircle condition.
	Delaunay Type = iota
	// Arbitrary performs no post-insertion edge flipping.
	Arbitrary
)

// Locator is the capability every point-location engine provides: find a
// half-edge whose left face contains p, or nil if p lies outside the
// triangulation.
type Locator interface {
	Locate(p geom.Point) *quadedge.Edge
}

// OnlineLocator extends Locator with the incremental hooks a locator
// needs to stay valid while the triangulation it indexes is being built:
// every edge insertion and deletion is reported synchronously, before the
// corresponding geometric change becomes visible to a concurrent locate.
type OnlineLocator interface {
	Locator
	AddEdge(e *quadedge.Edge)
	RemoveEdge(e *quadedge.Edge)
}

// BuildOptions configures Build and BuildRandom.
type BuildOptions struct {
	// Type selects Delaunay or Arbitrary maintenance.
	Type Type
	// Locator drives point location during incremental insertion. If nil,
	// Build constructs a default Lawson walk tuned to the number of points.
	Locator OnlineLocator
}

// DefaultBuildOptions returns Delaunay maintenance with a nil Locator,
// which tells Build to construct its own default-tuned walk.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{Type: Delaunay}
}
