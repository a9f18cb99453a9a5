package locate

import (
	"math/rand"
	"testing"

	"github.com/s-nandi/point-location-2d/pkg/geom"
	"github.com/s-nandi/point-location-2d/pkg/quadedge"
	"github.com/s-nandi/point-location-2d/pkg/subdivision"
)

// newSquareFixture builds a 10x10 box split along its BL-TR diagonal
// into two triangular faces, suitable for every locator under test.
func newSquareFixture(t *testing.T) *subdivision.Subdivision {
	t.Helper()
	s := subdivision.New()
	edge, err := s.InitBoundingBox(subdivision.Box{Left: 0, Bottom: 0, Right: 10, Top: 10})
	if err != nil {
		t.Fatalf("InitBoundingBox: %v", err)
	}
	faceEdges := quadedge.Collect(quadedge.IncidentOnFace, edge)
	if len(faceEdges) != 4 {
		t.Fatalf("expected 4 boundary edges, got %d", len(faceEdges))
	}
	// faceEdges run TL->BL->BR->TR->TL; dest(faceEdges[0]) is the
	// bottom-left corner and origin(faceEdges[3]) is the top-right
	// corner, so connecting them cuts the square along that diagonal.
	if _, err := quadedge.Connect(faceEdges[0], faceEdges[3], 2); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	return s
}

func checkLocatesSamePoints(t *testing.T, s *subdivision.Subdivision, locate func(geom.Point) *quadedge.Edge) {
	t.Helper()
	cases := []struct {
		p        geom.Point
		inBounds bool
	}{
		{geom.Point{X: 1, Y: 1}, true},
		{geom.Point{X: 9, Y: 9}, true},
		{geom.Point{X: 1, Y: 8}, true},
		{geom.Point{X: 8, Y: 1}, true},
		{geom.Point{X: 5, Y: 5}, true},
		{geom.Point{X: 20, Y: 20}, false},
	}
	for _, c := range cases {
		result := locate(c.p)
		if !c.inBounds {
			continue
		}
		if result == nil {
			t.Fatalf("expected a face for %v, got nil", c.p)
		}
		for _, e := range quadedge.Collect(quadedge.IncidentOnFace, result) {
			if geom.Orientation(e.OriginPosition(), e.DestPosition(), c.p) > 0 {
				t.Fatalf("point %v is not left of edge %v->%v in located face", c.p, e.OriginPosition(), e.DestPosition())
			}
		}
	}
}

func TestWalkLocatesCorrectFace(t *testing.T) {
	s := newSquareFixture(t)
	w := NewWalk(s, DefaultWalkOptions(), DefaultSelectorOptions())
	checkLocatesSamePoints(t, s, w.Locate)
}

func TestWalkVariantsAgree(t *testing.T) {
	s := newSquareFixture(t)
	variants := []WalkOptions{
		{Remembering: false},
		{Remembering: true},
		{Stochastic: true, Remembering: true},
		{Remembering: true, FastRemembering: true, MaxFastSteps: 4},
	}
	p := geom.Point{X: 3, Y: 7}
	var refFace *quadedge.Vertex
	for _, opts := range variants {
		w := NewWalk(s, opts, DefaultSelectorOptions())
		e := w.Locate(p)
		if e == nil {
			t.Fatalf("variant %+v failed to locate %v", opts, p)
		}
		if refFace == nil {
			refFace = e.LeftFace()
		} else if e.LeftFace() != refFace {
			t.Fatalf("variant %+v disagreed with reference face", opts)
		}
	}
}

func TestSlabLocatesCorrectFace(t *testing.T) {
	s := newSquareFixture(t)
	slab := NewSlab(s)
	checkLocatesSamePoints(t, s, slab.Locate)
}

func TestQuadtreeLocatesCorrectFace(t *testing.T) {
	s := newSquareFixture(t)
	qt := NewQuadtree(s, DefaultQuadtreeOptions())
	checkLocatesSamePoints(t, s, qt.Locate)
}

func TestRTreeLocatesCorrectFace(t *testing.T) {
	s := newSquareFixture(t)
	rt := NewRTreeIndex(s)
	checkLocatesSamePoints(t, s, rt.Locate)
}

// TestAllLocatorsAgree checks the four engines agree on a batch of
// random interior points, mirroring the equivalence scenario an
// incremental triangulation's point-location engines must satisfy.
func TestAllLocatorsAgree(t *testing.T) {
	s := newSquareFixture(t)
	walk := NewWalk(s, DefaultWalkOptions(), DefaultSelectorOptions())
	slab := NewSlab(s)
	qt := NewQuadtree(s, DefaultQuadtreeOptions())
	rt := NewRTreeIndex(s)

	src := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		p := geom.Point{X: src.Float64() * 10, Y: src.Float64() * 10}
		faces := []*quadedge.Vertex{}
		for _, e := range []*quadedge.Edge{walk.Locate(p), slab.Locate(p), qt.Locate(p), rt.Locate(p)} {
			if e != nil {
				faces = append(faces, e.LeftFace())
			}
		}
		for j := 1; j < len(faces); j++ {
			if faces[j] != faces[0] {
				t.Fatalf("locators disagreed on %v: %v", p, faces)
			}
		}
	}
}

func TestSelectorSampleFallsBackWhenEmpty(t *testing.T) {
	s := newSquareFixture(t)
	sel := NewSelector(s, SelectorOptions{Mode: SelectSample, SampleSize: 3})
	for _, e := range s.Traverse(subdivision.PrimalGraph, subdivision.TraverseEdges) {
		sel.RemoveEdge(e)
	}
	if e := sel.StartingEdge(geom.Point{X: 1, Y: 1}); e != nil {
		t.Fatalf("expected nil starting edge once every edge is removed, got %v", e)
	}
}

func TestWalkLocateBoundedReportsDivergence(t *testing.T) {
	s := newSquareFixture(t)
	w := NewWalk(s, DefaultWalkOptions(), DefaultSelectorOptions())
	if _, err := w.LocateBounded(geom.Point{X: 9, Y: 9}, 0); err == nil {
		t.Fatal("expected a WalkDivergenceError for a zero-step budget")
	}
	if e, err := w.LocateBounded(geom.Point{X: 9, Y: 9}, 100); err != nil || e == nil {
		t.Fatalf("expected a generous step budget to succeed, got edge=%v err=%v", e, err)
	}
}

func TestWalkCountersAccumulate(t *testing.T) {
	s := newSquareFixture(t)
	w := NewWalk(s, DefaultWalkOptions(), DefaultSelectorOptions())
	w.Locate(geom.Point{X: 9, Y: 1})
	if w.Counters().Tests == 0 {
		t.Fatal("expected at least one orientation test to be recorded")
	}
}
