// Package quadedge implements the self-dual quad-edge algebra: the
// four-half-edge atom, its navigation primitives (Rot, InvRot, Twin,
// Onext, Oprev, Fnext, Fprev), and the topological operators that build
// and mutate a subdivision (Splice, Connect, DeleteEdge, MergeTwins,
// RotateInEnclosing).
//
// A quad-edge bundles four directed half-edges; each half-edge is an
// independently addressable *Edge so that MergeTwins can glue two
// previously-unrelated quad-edges together by re-pointing array slots,
// exactly as the reference implementation's raw edge* array does. This
// is the one place pointer aliasing is deliberate: everywhere else an
// *Edge's identity is fixed for its lifetime.
package quadedge

import "github.com/s-nandi/point-location-2d/pkg/geom"

// QuadEdge is the fundamental atom: four directed half-edges indexed
// 0..3, corresponding to (primal forward, dual forward, primal reverse,
// dual reverse). It carries a shared last-used counter for edge-wise
// traversal.
type QuadEdge struct {
	e        [4]*Edge
	lastUsed int
}

func (qe *QuadEdge) getEdge(i int) *Edge {
	return qe.e[i]
}

func (qe *QuadEdge) setEdge(i int, ed *Edge) {
	qe.e[i] = ed
}

// Use marks the quad-edge visited for the given traversal timestamp; see
// Vertex.Use for the same contract at the vertex level.
func (qe *QuadEdge) Use(timestamp int) bool {
	if timestamp <= qe.lastUsed {
		return false
	}
	qe.lastUsed = timestamp
	return true
}

// Edge is one of the four directed half-edges of a QuadEdge.
type Edge struct {
	typ    int
	next   *Edge // onext
	origin *Vertex
	parent *QuadEdge
}

func shiftUpMod4(start, shift int) int {
	if start+shift < 4 {
		return start + shift
	}
	return start + shift - 4
}

func shiftDownMod4(start, shift int) int {
	if start-shift >= 0 {
		return start - shift
	}
	return start - shift + 4
}

// MakeEdge allocates a fresh quad-edge and returns half-edge 0, wired as
// a single non-looping edge whose left and right faces coincide:
// onext(e0)=e0, onext(e1)=e3, onext(e2)=e2, onext(e3)=e1.
func MakeEdge() *Edge {
	qe := &QuadEdge{lastUsed: -1}
	var edges [4]*Edge
	for i := 0; i < 4; i++ {
		edges[i] = &Edge{typ: i, parent: qe}
	}
	qe.e = edges
	edges[0].next = edges[0]
	edges[1].next = edges[3]
	edges[2].next = edges[2]
	edges[3].next = edges[1]
	return edges[0]
}

// Rot returns the dual edge rotated counter-clockwise: from right
// face/vertex towards left face/vertex.
func (e *Edge) Rot() *Edge {
	return e.parent.getEdge(shiftUpMod4(e.typ, 1))
}

// InvRot returns the dual edge rotated clockwise: from left face/vertex
// towards right face/vertex.
func (e *Edge) InvRot() *Edge {
	return e.parent.getEdge(shiftDownMod4(e.typ, 1))
}

// Twin returns the flipped edge, starting at e's destination and ending
// at e's origin.
func (e *Edge) Twin() *Edge {
	return e.parent.getEdge(shiftUpMod4(e.typ, 2))
}

// Onext returns the next edge counter-clockwise around e's origin.
func (e *Edge) Onext() *Edge {
	return e.next
}

// Oprev returns the next edge clockwise around e's origin.
func (e *Edge) Oprev() *Edge {
	return e.Rot().Onext().Rot()
}

// Fnext returns the next edge counter-clockwise around e's left face.
func (e *Edge) Fnext() *Edge {
	return e.InvRot().Onext().Rot()
}

// Fprev returns the previous edge (clockwise) around e's left face.
func (e *Edge) Fprev() *Edge {
	return e.InvRot().Oprev().Rot()
}

func (e *Edge) setNext(o *Edge) {
	e.next = o
}

func (e *Edge) setTwin(o *Edge) {
	ind := shiftUpMod4(e.typ, 2)
	e.parent.setEdge(ind, o)
	o.typ = ind
	o.parent = e.parent
}

// Origin returns e's origin vertex. For a dual half-edge this is a
// face-labelling vertex.
func (e *Edge) Origin() *Vertex {
	return e.origin
}

// Dest returns e's destination vertex.
func (e *Edge) Dest() *Vertex {
	return e.Twin().origin
}

// LeftFace returns the face-labelling vertex of the face to e's left.
func (e *Edge) LeftFace() *Vertex {
	return e.InvRot().origin
}

// RightFace returns the face-labelling vertex of the face to e's right.
func (e *Edge) RightFace() *Vertex {
	return e.Rot().origin
}

// OriginPosition returns the position of e's origin.
func (e *Edge) OriginPosition() geom.Point {
	p, _ := e.origin.Position()
	return p
}

// DestPosition returns the position of e's destination.
func (e *Edge) DestPosition() geom.Point {
	p, _ := e.Dest().Position()
	return p
}

// UseQuadEdge marks e's parent quad-edge visited for timestamp; used by
// subdivision traversal to enumerate each undirected edge once.
func (e *Edge) UseQuadEdge(timestamp int) bool {
	return e.parent.Use(timestamp)
}

// SetEndpoints writes any non-nil of (origin of e, origin of e's twin,
// origin of e's invrot = left-face label, origin of e's rot = right-face
// label). It does not touch ring topology; callers use it after Splice
// to fix labels.
func (e *Edge) SetEndpoints(origin, dest, leftFace, rightFace *Vertex) {
	if origin != nil {
		e.origin = origin
	}
	if dest != nil {
		e.Twin().origin = dest
	}
	if leftFace != nil {
		e.InvRot().origin = leftFace
	}
	if rightFace != nil {
		e.Rot().origin = rightFace
	}
}

// labelFace walks the onext-ring of e's invrot (one representative per
// edge on e's left face) and relabels each to f. Used after Connect and
// DeleteEdge to propagate a new or merged face label.
func (e *Edge) labelFace(f *Vertex) {
	irot := e.InvRot()
	for curr := irot; ; curr = curr.Onext() {
		curr.SetEndpoints(f, nil, nil, nil)
		if curr.Onext() == irot {
			break
		}
	}
}

// LabelFace is the exported form of labelFace, used by callers outside
// this package that need to stamp a fresh label across an entire face
// after a subdivision has been fully built (e.g. a final triangulation
// face-numbering pass).
func (e *Edge) LabelFace(f *Vertex) {
	e.labelFace(f)
}
