package subdivision

import (
	"strings"
	"testing"

	"github.com/s-nandi/point-location-2d/pkg/geom"
	"github.com/s-nandi/point-location-2d/pkg/quadedge"
)

func TestInitPolygonRejectsTooFewPoints(t *testing.T) {
	s := New()
	_, err := s.InitPolygon([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}})
	if err == nil {
		t.Fatal("expected error for a 2-point polygon")
	}
}

func TestInitPolygonRejectsClockwiseOrder(t *testing.T) {
	s := New()
	cw := []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}}
	if _, err := s.InitPolygon(cw); err == nil {
		t.Fatal("expected error for clockwise-ordered polygon")
	}
}

func TestInitBoundingBoxFourCorners(t *testing.T) {
	s := New()
	edge, err := s.InitBoundingBox(Box{Left: 0, Bottom: 0, Right: 10, Top: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	verts := quadedge.Collect(quadedge.IncidentOnFace, edge)
	if len(verts) != 4 {
		t.Fatalf("expected 4 boundary edges, got %d", len(verts))
	}
	box, ok := s.Bounds()
	if !ok || box.Right != 10 {
		t.Fatalf("expected bounds to be recorded, got %v ok=%v", box, ok)
	}
}

// TestSquareWithDiagonal implements the square-with-diagonal scenario:
// vertices (0,0),(1,0),(1,1),(0,1), faces [0,1,2] and [0,2,3]. Two
// interior faces are expected, and traversing the dual yields 3 face
// labels (exterior + two interior).
func TestSquareWithDiagonal(t *testing.T) {
	points := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	faces := [][]int{{0, 1, 2}, {0, 2, 3}}

	s := New()
	if _, err := s.InitSubdivision(points, faces); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dualNodes := s.Traverse(DualGraph, TraverseNodes)
	if len(dualNodes) != 3 {
		t.Fatalf("expected 3 face labels (exterior + 2 interior), got %d", len(dualNodes))
	}

	edgeNodes := s.Traverse(PrimalGraph, TraverseEdges)
	// 4 boundary edges + 1 diagonal = 5 quad-edges.
	if len(edgeNodes) != 5 {
		t.Fatalf("expected 5 undirected edges, got %d", len(edgeNodes))
	}
}

func TestTraverseIsIdempotentAcrossCalls(t *testing.T) {
	s := New()
	if _, err := s.InitBoundingBox(Box{Left: 0, Bottom: 0, Right: 1, Top: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := s.Traverse(PrimalGraph, TraverseNodes)
	second := s.Traverse(PrimalGraph, TraverseNodes)
	if len(first) != len(second) {
		t.Fatalf("expected repeated traversal to visit the same node count: %d vs %d", len(first), len(second))
	}
}

func TestOFFRoundTrip(t *testing.T) {
	points := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	faces := [][]int{{0, 1, 2}, {0, 2, 3}}
	s := New()
	if _, err := s.InitSubdivision(points, faces); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf strings.Builder
	if err := s.WriteOFF(&buf); err != nil {
		t.Fatalf("WriteOFF: %v", err)
	}

	reread, err := InitFromOFF(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("InitFromOFF: %v", err)
	}
	dualNodes := reread.Traverse(DualGraph, TraverseNodes)
	if len(dualNodes) != 3 {
		t.Fatalf("expected 3 face labels after round trip, got %d", len(dualNodes))
	}
}
