package subdivision

import (
	"io"

	"github.com/s-nandi/point-location-2d/internal/parser"
	"github.com/s-nandi/point-location-2d/pkg/geom"
	"github.com/s-nandi/point-location-2d/pkg/quadedge"
)

// InitFromOFF reads an OFF file from r and builds a subdivision from its
// point set and face list via InitSubdivision.
func InitFromOFF(r io.Reader) (*Subdivision, error) {
	points, faces, err := parser.ParseOFF(r, parser.DefaultParseOptions())
	if err != nil {
		return nil, err
	}
	s := New()
	if _, err := s.InitSubdivision(points, faces); err != nil {
		return nil, err
	}
	return s, nil
}

// WriteOFF writes the subdivision's interior faces out in OFF format: one
// vertex line per distinct primal node (in traversal order), and one face
// line per distinct dual node other than the exterior face.
func (s *Subdivision) WriteOFF(w io.Writer) error {
	vertexEdges := s.Traverse(PrimalGraph, TraverseNodes)
	index := make(map[*quadedge.Vertex]int, len(vertexEdges))
	points := make([]geom.Point, len(vertexEdges))
	for i, e := range vertexEdges {
		index[e.Origin()] = i
		points[i] = e.OriginPosition()
	}

	var faces [][]int
	for _, e := range s.Traverse(DualGraph, TraverseNodes) {
		if e.Origin() == s.exterior {
			continue
		}
		// e is a dual half-edge; e.Rot()'s left face is e's origin (the
		// face vertex just visited), since LeftFace(x) = x.InvRot().Origin()
		// and InvRot undoes Rot for any x.
		primal := e.Rot()
		var face []int
		for _, fe := range quadedge.Collect(quadedge.IncidentOnFace, primal) {
			face = append(face, index[fe.Origin()])
		}
		faces = append(faces, face)
	}

	return parser.WriteOFF(w, points, faces)
}
