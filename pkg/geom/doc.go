// Package geom provides the 2D vector arithmetic and geometric predicates
// that the quad-edge, subdivision, triangulation and locate packages build
// on: orientation, the in-circle test, and segment intersection.
//
// All predicates operate on float64 and are evaluated with native floating
// arithmetic. Callers that need exact predicates over degenerate or
// adversarial inputs are expected to pre-round or otherwise condition their
// coordinates; this package does not implement exact-arithmetic fallbacks.
package geom
