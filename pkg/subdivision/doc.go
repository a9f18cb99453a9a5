// Package subdivision owns a planar subdivision built on top of the
// quad-edge algebra in pkg/quadedge: construction from a CCW polygon, an
// axis-aligned bounding box, or an arbitrary (points, faces) list;
// primal/dual traversal; and OFF text-format glue.
package subdivision
