// Package locate implements the point-location engines: the Lawson
// oriented walk with a pluggable starting-edge selector, static slab
// decomposition, adaptive quadtree bucketing, and an R-tree-backed
// locator. Every locator conforms to the same contract: given a point,
// return a half-edge whose left face contains it, or nil if the point
// lies outside the indexed structure.
package locate

import (
	"github.com/s-nandi/point-location-2d/pkg/geom"
	"github.com/s-nandi/point-location-2d/pkg/quadedge"
	"github.com/s-nandi/point-location-2d/pkg/subdivision"
)

// Source is the traversal capability a locator needs from whatever
// planar structure it indexes — a subdivision, or anything built on one
// (a triangulation embeds a subdivision and satisfies this directly).
type Source interface {
	Traverse(graph subdivision.GraphType, mode subdivision.TraversalMode) []*quadedge.Edge
	Exterior() *quadedge.Vertex
	Bounds() (subdivision.Box, bool)
}

// Locator is implemented by every point-location engine in this package.
type Locator interface {
	Locate(p geom.Point) *quadedge.Edge
}
