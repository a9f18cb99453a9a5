// Package triangulation builds an incremental triangulation on top of a
// subdivision.Subdivision: point insertion with on-edge and on-vertex
// degeneracy handling, and optional maintenance of the Delaunay (empty
// circumcircle) property via edge rotation.
package triangulation
