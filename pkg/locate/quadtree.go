package locate

import (
	"github.com/s-nandi/point-location-2d/pkg/geom"
	"github.com/s-nandi/point-location-2d/pkg/quadedge"
	"github.com/s-nandi/point-location-2d/pkg/subdivision"
)

// QuadtreeOptions bounds an adaptive quadtree's fan-out: a leaf splits
// once it holds more than MaxOverlap faces, unless it is already at
// MaxDepth or has shrunk to a 1x1 cell.
type QuadtreeOptions struct {
	MaxOverlap int
	MaxDepth   int
}

// DefaultQuadtreeOptions returns tuning adequate for triangulations up to
// a few hundred thousand faces.
func DefaultQuadtreeOptions() QuadtreeOptions {
	return QuadtreeOptions{MaxOverlap: 8, MaxDepth: 24}
}

// Quadtree is a static, one-shot point locator: every interior face is
// inserted into the smallest power-of-two square covering the indexed
// subdivision's bounds, splitting cells that exceed the overlap bound.
type Quadtree struct {
	opts QuadtreeOptions
	root *quadtreeNode
}

type quadtreeNode struct {
	opts                       QuadtreeOptions
	left, top, right, bottom   float64
	level                      int
	children                   [4]*quadtreeNode
	faces                      []*quadedge.Edge // dual half-edges, one per face
}

// NewQuadtree builds a Quadtree over src. src must have a bounding box
// set (e.g. via Subdivision.InitBoundingBox); NewQuadtree panics
// otherwise, since there is no subdivision extent to round to a
// power-of-two square.
func NewQuadtree(src Source, opts QuadtreeOptions) *Quadtree {
	box, ok := src.Bounds()
	if !ok {
		panic("locate.NewQuadtree: source has no bounding box")
	}

	left, top, right, bottom := -1.0, 1.0, 1.0, -1.0
	for left > box.Left || top < box.Top || right < box.Right || bottom > box.Bottom {
		left *= 2
		top *= 2
		right *= 2
		bottom *= 2
	}

	root := newQuadtreeNode(left, top, right, bottom, 0, opts)
	for _, e := range src.Traverse(subdivision.DualGraph, subdivision.TraverseNodes) {
		if e.Origin() == src.Exterior() {
			continue
		}
		root.insert(e)
	}

	return &Quadtree{opts: opts, root: root}
}

func newQuadtreeNode(left, top, right, bottom float64, level int, opts QuadtreeOptions) *quadtreeNode {
	return &quadtreeNode{opts: opts, left: left, top: top, right: right, bottom: bottom, level: level}
}

func (n *quadtreeNode) contains(p geom.Point) bool {
	return p.X >= n.left && p.X <= n.right && p.Y >= n.bottom && p.Y <= n.top
}

// overlaps reports whether face (a dual half-edge) overlaps n's cell:
// either every triangle vertex lies inside the cell, or some triangle
// edge crosses some cell edge, or the cell is strictly inside the
// triangle.
func (n *quadtreeNode) overlaps(face *quadedge.Edge) bool {
	faceEdges := quadedge.Collect(quadedge.IncidentOnFace, face.Rot())

	triangleInsideSquare := true
	for _, e := range faceEdges {
		if !n.contains(e.OriginPosition()) {
			triangleInsideSquare = false
			break
		}
	}
	if triangleInsideSquare {
		return true
	}

	corners := [4]geom.Point{
		{X: n.left, Y: n.top},
		{X: n.left, Y: n.bottom},
		{X: n.right, Y: n.bottom},
		{X: n.right, Y: n.top},
	}
	squareInsideTriangle := true
	for i := 0; i < 4; i++ {
		inext := (i + 1) % 4
		sa, sb := corners[i], corners[inext]
		for j, fe := range faceEdges {
			jnext := (j + 1) % len(faceEdges)
			fa, fb := fe.OriginPosition(), faceEdges[jnext].OriginPosition()
			if geom.Intersects(fa, fb, sa, sb) {
				return true
			}
			if geom.Orientation(fa, fb, corners[i]) > 0 {
				squareInsideTriangle = false
			}
		}
	}
	return squareInsideTriangle
}

func (n *quadtreeNode) split() {
	midx := (n.left + n.right) / 2
	midy := (n.bottom + n.top) / 2

	n.children[0] = newQuadtreeNode(n.left, n.top, midx, midy, n.level+1, n.opts)
	n.children[1] = newQuadtreeNode(n.left, midy, midx, n.bottom, n.level+1, n.opts)
	n.children[2] = newQuadtreeNode(midx, midy, n.right, n.bottom, n.level+1, n.opts)
	n.children[3] = newQuadtreeNode(midx, n.top, n.right, midy, n.level+1, n.opts)

	faces := n.faces
	n.faces = nil
	for _, face := range faces {
		for _, child := range n.children {
			if child.overlaps(face) {
				child.insert(face)
			}
		}
	}
}

func (n *quadtreeNode) insert(face *quadedge.Edge) {
	if n.children[0] != nil {
		for _, child := range n.children {
			if child.overlaps(face) {
				child.insert(face)
			}
		}
		return
	}
	n.faces = append(n.faces, face)
	if len(n.faces) > n.opts.MaxOverlap && n.level < n.opts.MaxDepth {
		if n.right-n.left >= 2 && n.top-n.bottom >= 2 {
			n.split()
		}
	}
}

func (n *quadtreeNode) locate(p geom.Point) *quadedge.Edge {
	if n.children[0] != nil {
		for _, child := range n.children {
			if child.contains(p) {
				return child.locate(p)
			}
		}
		return nil
	}
	for _, face := range n.faces {
		allLeftTurns := true
		for _, e := range quadedge.Collect(quadedge.IncidentOnFace, face.Rot()) {
			if geom.Orientation(e.OriginPosition(), e.DestPosition(), p) > 0 {
				allLeftTurns = false
				break
			}
		}
		if allLeftTurns {
			return face.Rot()
		}
	}
	return nil
}

// Locate returns a half-edge whose left face contains p, or nil if p is
// outside the quadtree's root cell or no indexed face contains it.
func (q *Quadtree) Locate(p geom.Point) *quadedge.Edge {
	if !q.root.contains(p) {
		return nil
	}
	return q.root.locate(p)
}

// NumNodes returns the total number of faces stored across all leaves
// (faces overlapping more than one leaf are counted once per leaf).
func (q *Quadtree) NumNodes() int {
	return q.root.numNodes()
}

func (n *quadtreeNode) numNodes() int {
	if n.children[0] == nil {
		return len(n.faces)
	}
	total := 0
	for _, child := range n.children {
		total += child.numNodes()
	}
	return total
}

// Depth returns the quadtree's maximum leaf depth below the root.
func (q *Quadtree) Depth() int {
	return q.root.depth()
}

func (n *quadtreeNode) depth() int {
	if n.children[0] == nil {
		return 0
	}
	d := 0
	for _, child := range n.children {
		if cd := child.depth() + 1; cd > d {
			d = cd
		}
	}
	return d
}
