package triangulation

import (
	"math/rand"
	"testing"

	"github.com/s-nandi/point-location-2d/pkg/geom"
	"github.com/s-nandi/point-location-2d/pkg/locate"
	"github.com/s-nandi/point-location-2d/pkg/quadedge"
	"github.com/s-nandi/point-location-2d/pkg/subdivision"
)

func checkEveryInteriorEdgeIsDelaunay(t *testing.T, tri *Triangulation) {
	t.Helper()
	for _, e := range tri.Traverse(subdivision.PrimalGraph, subdivision.TraverseEdges) {
		if e.LeftFace().Label() == 0 || e.RightFace().Label() == 0 {
			continue
		}
		a := e.OriginPosition()
		b := e.DestPosition()
		c := e.Fnext().DestPosition()
		d := e.Twin().Fnext().DestPosition()
		if geom.InCircle(d, a, b, c) > 0 {
			t.Fatalf("edge %v->%v violates the Delaunay condition against opposite vertex %v", a, b, d)
		}
		if geom.InCircle(c, b, a, d) > 0 {
			t.Fatalf("edge %v->%v violates the Delaunay condition against opposite vertex %v", b, a, c)
		}
	}
}

// TestCocircularCornersResolveWithAFlip implements the unit-square
// cocircular-corners scenario: inserting all four corners of a unit
// square into a padded bounding box forces at least one Delaunay flip
// to resolve the ambiguity, leaving every interior edge Delaunay.
func TestCocircularCornersResolveWithAFlip(t *testing.T) {
	points := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	tri, err := Build(points, DefaultBuildOptions())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	vertexNodes := tri.Traverse(subdivision.PrimalGraph, subdivision.TraverseNodes)
	if len(vertexNodes) != 8 {
		t.Fatalf("expected 8 vertices (4 input + 4 box corners), got %d", len(vertexNodes))
	}
	if tri.NumDelaunayFlips() < 1 {
		t.Fatalf("expected at least 1 Delaunay flip to resolve the cocircular ambiguity, got %d", tri.NumDelaunayFlips())
	}
	checkEveryInteriorEdgeIsDelaunay(t, tri)
}

// TestCollinearInsertionSplitsTheEnclosingEdge implements the
// collinear-insertion scenario: the third of three collinear points
// lands exactly on an edge created by the first two, and must be
// resolved by deleting that edge and retriangulating its enclosing
// quadrilateral rather than its enclosing triangle.
func TestCollinearInsertionSplitsTheEnclosingEdge(t *testing.T) {
	points := []geom.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 0}}
	tri, err := Build(points, BuildOptions{Type: Arbitrary})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	vertexNodes := tri.Traverse(subdivision.PrimalGraph, subdivision.TraverseNodes)
	if len(vertexNodes) != 7 {
		t.Fatalf("expected 7 vertices (3 input + 4 box corners), got %d", len(vertexNodes))
	}
}

// TestDelaunayFlipCountIsBounded checks the 9n+1 flip bound across an
// incremental random build.
func TestDelaunayFlipCountIsBounded(t *testing.T) {
	src := rand.New(rand.NewSource(7))
	points := make([]geom.Point, 200)
	for i := range points {
		points[i] = geom.Point{X: src.Float64() * 100, Y: src.Float64() * 100}
	}

	tri, err := Build(points, DefaultBuildOptions())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	n := len(points)
	if tri.NumDelaunayFlips() > 9*n+1 {
		t.Fatalf("expected at most %d flips for %d points, got %d", 9*n+1, n, tri.NumDelaunayFlips())
	}
	checkEveryInteriorEdgeIsDelaunay(t, tri)
}

// TestAddPointOnExistingVertexIsANoop checks idempotence: re-adding a
// point already present as a triangulation vertex changes nothing.
func TestAddPointOnExistingVertexIsANoop(t *testing.T) {
	points := []geom.Point{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 3, Y: 4}}
	tri, err := Build(points, DefaultBuildOptions())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	before := len(tri.Traverse(subdivision.PrimalGraph, subdivision.TraverseEdges))
	walk := locate.NewWalk(tri.Subdivision, locate.DefaultWalkOptions(), locate.DefaultSelectorOptions())
	for _, e := range tri.Traverse(subdivision.PrimalGraph, subdivision.TraverseEdges) {
		walk.AddEdge(e)
	}
	if err := tri.AddPoint(points[0], 100, walk, Delaunay); err != nil {
		t.Fatalf("AddPoint: %v", err)
	}
	after := len(tri.Traverse(subdivision.PrimalGraph, subdivision.TraverseEdges))
	if before != after {
		t.Fatalf("expected re-adding an existing vertex to be a no-op, edge count changed from %d to %d", before, after)
	}
}

// TestBoundaryInsertionKeepsThePlanarityInvariant implements the
// boundary scenario: a point inserted exactly on the bounding box's edge
// must still leave every face a simple polygon.
func TestBoundaryInsertionKeepsThePlanarityInvariant(t *testing.T) {
	tri := New()
	if _, err := tri.InitBoundingBox(subdivision.Box{Left: 0, Bottom: 0, Right: 10, Top: 10}); err != nil {
		t.Fatalf("InitBoundingBox: %v", err)
	}
	walk := locate.NewWalk(tri.Subdivision, locate.DefaultWalkOptions(), locate.DefaultSelectorOptions())
	for _, e := range tri.Traverse(subdivision.PrimalGraph, subdivision.TraverseEdges) {
		walk.AddEdge(e)
	}
	if err := tri.AddPoint(geom.Point{X: 5, Y: 0}, 4, walk, Delaunay); err != nil {
		t.Fatalf("AddPoint: %v", err)
	}

	for _, e := range tri.Traverse(subdivision.DualGraph, subdivision.TraverseNodes) {
		if e.Origin() == tri.Exterior() {
			continue
		}
		face := e.Rot()
		visited := map[*quadedge.Edge]bool{}
		for curr := face; !visited[curr]; curr = curr.Fnext() {
			visited[curr] = true
		}
		if len(visited) < 3 {
			t.Fatalf("expected a simple polygon face with at least 3 sides, got %d", len(visited))
		}
	}
}

func TestCeilNthRootMatchesDefinition(t *testing.T) {
	cases := []struct{ val, n, want int }{
		{1, 3, 1},
		{8, 3, 2},
		{9, 3, 3},
		{1000, 3, 10},
		{16, 4, 2},
	}
	for _, c := range cases {
		if got := ceilNthRoot(c.val, c.n); got != c.want {
			t.Errorf("ceilNthRoot(%d, %d) = %d, want %d", c.val, c.n, got, c.want)
		}
	}
}
