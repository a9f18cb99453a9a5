package locate

import (
	"github.com/dhconnelly/rtreego"

	"github.com/s-nandi/point-location-2d/pkg/geom"
	"github.com/s-nandi/point-location-2d/pkg/quadedge"
	"github.com/s-nandi/point-location-2d/pkg/subdivision"
)

// rtreeFace wraps a primal half-edge whose left face is the indexed face
// so it can be indexed as an rtreego.Spatial, keyed by the face's
// axis-aligned bounding box.
type rtreeFace struct {
	face *quadedge.Edge
	rect rtreego.Rect
}

func (f *rtreeFace) Bounds() rtreego.Rect {
	return f.rect
}

// faceRect computes the bounding box of a face's boundary, given one of
// its dual half-edges.
func faceRect(face *quadedge.Edge) rtreego.Rect {
	edges := quadedge.Collect(quadedge.IncidentOnFace, face.Rot())
	p := edges[0].OriginPosition()
	minX, maxX, minY, maxY := p.X, p.X, p.Y, p.Y
	for _, e := range edges[1:] {
		q := e.OriginPosition()
		if q.X < minX {
			minX = q.X
		}
		if q.X > maxX {
			maxX = q.X
		}
		if q.Y < minY {
			minY = q.Y
		}
		if q.Y > maxY {
			maxY = q.Y
		}
	}
	const epsilon = 1e-9
	lengths := []float64{maxX - minX + epsilon, maxY - minY + epsilon}
	rect, err := rtreego.NewRect(rtreego.Point{minX, minY}, lengths)
	if err != nil {
		// Degenerate (zero-area) face boxes still need a valid rect;
		// widen by epsilon on both axes and retry.
		rect, _ = rtreego.NewRect(rtreego.Point{minX - epsilon, minY - epsilon}, []float64{lengths[0] + epsilon, lengths[1] + epsilon})
	}
	return rect
}

// RTreeIndex is a static, one-shot point locator backed by an R-tree
// over each face's bounding box: Locate narrows candidates via a box
// intersection query, then picks the one the point actually turns left
// of on every boundary edge. It is supplemental to the three locators
// named in the kernel's point-location design — the sole consumer of
// this module's one real third-party dependency.
type RTreeIndex struct {
	tree *rtreego.Rtree
}

// NewRTreeIndex builds an RTreeIndex over src's current interior faces.
func NewRTreeIndex(src Source) *RTreeIndex {
	tree := rtreego.NewTree(2, 4, 16)
	for _, e := range src.Traverse(subdivision.DualGraph, subdivision.TraverseNodes) {
		if e.Origin() == src.Exterior() {
			continue
		}
		face := e.Rot()
		tree.Insert(&rtreeFace{face: face, rect: faceRect(e)})
	}
	return &RTreeIndex{tree: tree}
}

// Locate returns a half-edge whose left face contains p, or nil if no
// indexed face contains it.
func (r *RTreeIndex) Locate(p geom.Point) *quadedge.Edge {
	const epsilon = 1e-9
	query, err := rtreego.NewRect(rtreego.Point{p.X - epsilon, p.Y - epsilon}, []float64{2 * epsilon, 2 * epsilon})
	if err != nil {
		return nil
	}

	for _, result := range r.tree.SearchIntersect(query) {
		candidate, ok := result.(*rtreeFace)
		if !ok {
			continue
		}
		allLeftTurns := true
		for _, e := range quadedge.Collect(quadedge.IncidentOnFace, candidate.face) {
			if geom.Orientation(e.OriginPosition(), e.DestPosition(), p) > 0 {
				allLeftTurns = false
				break
			}
		}
		if allLeftTurns {
			return candidate.face
		}
	}
	return nil
}
