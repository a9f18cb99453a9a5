package subdivision

import (
	"github.com/s-nandi/point-location-2d/pkg/geom"
	"github.com/s-nandi/point-location-2d/pkg/quadedge"
)

// Subdivision owns all quad-edges and vertices reachable from a
// distinguished incident edge. It holds the shared traversal timestamp
// counter and the subdivision's own exterior vertex: the exterior vertex
// is never shared across subdivisions, unlike the reference
// implementation's file-scope static.
type Subdivision struct {
	incidentEdge *quadedge.Edge
	exterior     *quadedge.Vertex
	time         int
	bounds       *Box
}

// New returns an empty subdivision with no incident edge. Callers build
// it out with InitPolygon, InitBoundingBox or InitSubdivision before use.
func New() *Subdivision {
	ext, _ := quadedge.NewVertex(0) // label 0 is always valid
	return &Subdivision{exterior: ext, time: 1}
}

// IncidentEdge returns the subdivision's distinguished entry point, or
// nil if the subdivision has not been constructed yet.
func (s *Subdivision) IncidentEdge() *quadedge.Edge {
	return s.incidentEdge
}

// Exterior returns the subdivision's singleton exterior vertex (label 0),
// the face-labelling vertex of the unbounded face.
func (s *Subdivision) Exterior() *quadedge.Vertex {
	return s.exterior
}

// Bounds returns the subdivision's bounding box and whether one was set
// by InitBoundingBox.
func (s *Subdivision) Bounds() (Box, bool) {
	if s.bounds == nil {
		return Box{}, false
	}
	return *s.bounds, true
}

func nextIndex(i, sz int) int {
	if i+1 < sz {
		return i + 1
	}
	return 0
}

func sameEndpoints(a, b *quadedge.Edge) bool {
	return a.Origin() == b.Origin() && a.Dest() == b.Dest()
}

func flippedEndpoints(a, b *quadedge.Edge) bool {
	return a.Origin() == b.Dest() && a.Dest() == b.Origin()
}

// makePolygon builds a CCW polygon boundary over vertices, with faceLabel
// to its left and the subdivision's exterior vertex to its right.
func (s *Subdivision) makePolygon(vertices []*quadedge.Vertex, faceLabel int) (*quadedge.Edge, error) {
	face, err := quadedge.NewVertex(faceLabel)
	if err != nil {
		return nil, err
	}
	n := len(vertices)
	edges := make([]*quadedge.Edge, n)
	for i := 0; i < n; i++ {
		inext := nextIndex(i, n)
		edges[i] = quadedge.MakeEdge()
		edges[i].SetEndpoints(vertices[i], vertices[inext], face, s.exterior)
	}
	for i := 0; i < n; i++ {
		inext := nextIndex(i, n)
		quadedge.Splice(edges[inext], edges[i].Twin())
		if geom.Orientation(edges[i].OriginPosition(), edges[i].DestPosition(), edges[inext].DestPosition()) > 0 {
			return nil, &InvalidStateError{Reason: "face vertices must be given in CCW order"}
		}
	}
	return edges[0], nil
}

// InitPolygon builds a single-face subdivision from n >= 3 points given
// in CCW order: one makeEdge per side, a face label of 1 on the left, the
// exterior vertex on the right.
func (s *Subdivision) InitPolygon(points []geom.Point) (*quadedge.Edge, error) {
	if len(points) < 3 {
		return nil, &InvalidStateError{Reason: "InitPolygon requires at least 3 points"}
	}
	vertices := make([]*quadedge.Vertex, len(points))
	for i, p := range points {
		v, err := quadedge.NewVertexAt(p, i)
		if err != nil {
			return nil, err
		}
		vertices[i] = v
	}
	edge, err := s.makePolygon(vertices, 1)
	if err != nil {
		return nil, err
	}
	s.incidentEdge = edge
	return edge, nil
}

// InitBoundingBox builds a single-face subdivision over the four corners
// of box, in CCW order, and records box for later retrieval via Bounds.
func (s *Subdivision) InitBoundingBox(box Box) (*quadedge.Edge, error) {
	if box.Left > box.Right || box.Bottom > box.Top {
		return nil, &InvalidStateError{Reason: "bounding box must have left <= right and bottom <= top"}
	}
	s.bounds = &box
	corners := []geom.Point{
		{X: box.Left, Y: box.Top},
		{X: box.Left, Y: box.Bottom},
		{X: box.Right, Y: box.Bottom},
		{X: box.Right, Y: box.Top},
	}
	return s.InitPolygon(corners)
}

// InitSubdivision builds a subdivision from an arbitrary simply-connected
// face list: points are distinct and each face's vertex indices are given
// in CCW order. For each face, make_polygon is invoked with a distinct
// left-face label; the generated half-edges are then sorted by unordered
// endpoint-label pair so that edges shared between two faces (or a
// flipped pair) land adjacent to each other and can be merged with
// MergeTwins. A half-edge left unmatched after sorting is assumed to be a
// boundary edge, and its dual side is labelled with the exterior vertex
// This is only correct for simply-connected input.
func (s *Subdivision) InitSubdivision(points []geom.Point, faces [][]int) (*quadedge.Edge, error) {
	vertices := make([]*quadedge.Vertex, len(points))
	for i, p := range points {
		v, err := quadedge.NewVertexAt(p, i)
		if err != nil {
			return nil, err
		}
		vertices[i] = v
	}

	var edges []*quadedge.Edge
	for i, face := range faces {
		faceVertices := make([]*quadedge.Vertex, len(face))
		for j, idx := range face {
			faceVertices[j] = vertices[idx]
		}
		faceEdge, err := s.makePolygon(faceVertices, i+1)
		if err != nil {
			return nil, err
		}
		for _, e := range quadedge.Collect(quadedge.IncidentOnFace, faceEdge) {
			edges = append(edges, e)
		}
		s.incidentEdge = faceEdge
	}

	sortEdgesByEndpointLabels(edges)

	for i := 0; i < len(edges); {
		if i+1 < len(edges) && sameEndpoints(edges[i], edges[i+1]) {
			s.incidentEdge = quadedge.MergeTwins(edges[i], edges[i+1].Twin())
			i += 2
		} else if i+1 < len(edges) && flippedEndpoints(edges[i], edges[i+1]) {
			s.incidentEdge = quadedge.MergeTwins(edges[i], edges[i+1])
			i += 2
		} else {
			s.incidentEdge = edges[i]
			edges[i].Rot().SetEndpoints(s.exterior, nil, nil, nil)
			i++
		}
	}
	return s.incidentEdge, nil
}

func sortEdgesByEndpointLabels(edges []*quadedge.Edge) {
	key := func(e *quadedge.Edge) (int, int) {
		a, b := e.Origin().Label(), e.Dest().Label()
		if a < b {
			return a, b
		}
		return b, a
	}
	// Insertion sort is adequate here: faces lists in practice are small,
	// and a stable, allocation-free sort keeps the merge scan below simple
	// to reason about. Swap for sort.Slice if profiling ever calls for it.
	for i := 1; i < len(edges); i++ {
		for j := i; j > 0; j-- {
			kj0, kj1 := key(edges[j])
			ki0, ki1 := key(edges[j-1])
			if kj0 < ki0 || (kj0 == ki0 && kj1 < ki1) {
				edges[j], edges[j-1] = edges[j-1], edges[j]
			} else {
				break
			}
		}
	}
}
