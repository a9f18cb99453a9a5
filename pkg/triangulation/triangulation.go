package triangulation

import (
	"github.com/s-nandi/point-location-2d/pkg/geom"
	"github.com/s-nandi/point-location-2d/pkg/quadedge"
	"github.com/s-nandi/point-location-2d/pkg/subdivision"
)

// Triangulation is a subdivision.Subdivision that is kept fully
// triangulated: every interior face is a triangle, optionally Delaunay.
type Triangulation struct {
	*subdivision.Subdivision
	numDelaunayFlips int
	bounded          bool
}

// New returns an empty, unbounded triangulation. InitBoundingBox must be
// called (directly, or via Build/BuildRandom) before points are added.
func New() *Triangulation {
	return &Triangulation{Subdivision: subdivision.New()}
}

// NumDelaunayFlips returns the cumulative number of edge rotations
// performed to restore the Delaunay property across every AddPoint call.
func (t *Triangulation) NumDelaunayFlips() int {
	return t.numDelaunayFlips
}

// InitBoundingBox builds a triangulated bounding box: the usual
// four-corner polygon, split along one diagonal so every face is a
// triangle from the start.
func (t *Triangulation) InitBoundingBox(box subdivision.Box) (*quadedge.Edge, error) {
	e, err := t.Subdivision.InitBoundingBox(box)
	if err != nil {
		return nil, err
	}
	diagonal, err := quadedge.Connect(e.Fnext(), e, 1)
	if err != nil {
		return nil, err
	}
	t.bounded = true
	return diagonal, nil
}

// fixDelaunayCondition restores the empty-circumcircle property around e
// after p was inserted into e's face ring, rotating e's quadrilateral
// diagonal and recursing on the two edges newly made adjacent to p.
// e must satisfy e.Fnext().Dest() == p.
func (t *Triangulation) fixDelaunayCondition(p geom.Point, e *quadedge.Edge) {
	if e.LeftFace().Label() == 0 || e.RightFace().Label() == 0 {
		return
	}
	a := e.OriginPosition()
	b := e.DestPosition()
	c := e.Twin().Fnext().DestPosition()

	if geom.InCircle(c, a, b, p) > 0 {
		fixed, err := quadedge.RotateInEnclosing(e)
		if err != nil {
			return
		}
		t.numDelaunayFlips++
		t.fixDelaunayCondition(p, fixed.Fprev())
		t.fixDelaunayCondition(p, fixed.Twin().Fnext())
	}
}

// AddPoint inserts p (labelled index) into the triangulation located via
// locator, handling the degenerate cases where p falls exactly on an
// existing vertex or edge, and optionally restoring the Delaunay
// property across the newly formed quadrilaterals.
func (t *Triangulation) AddPoint(p geom.Point, index int, locator OnlineLocator, typ Type) error {
	locatedEdge := locator.Locate(p)
	if locatedEdge == nil {
		return &subdivision.InvalidStateError{Reason: "AddPoint: point is outside the triangulation's bounding box"}
	}

	for _, faceEdge := range quadedge.Collect(quadedge.IncidentOnFace, locatedEdge) {
		if geom.Orientation(faceEdge.OriginPosition(), p, faceEdge.DestPosition()) == 0 {
			locatedEdge = faceEdge
			break
		}
	}

	origin := locatedEdge.OriginPosition()
	dest := locatedEdge.DestPosition()

	if p.Equal(origin) || p.Equal(dest) {
		return nil
	}
	if geom.Orientation(origin, p, dest) == 0 {
		oldEdge := locatedEdge
		// oprev ensures the new edges form cw turns w.r.t. the
		// surrounding quadrilateral rather than the deleted triangle.
		locatedEdge = locatedEdge.Oprev()
		quadedge.DeleteEdge(oldEdge)
		locator.RemoveEdge(oldEdge)
	}

	enclosingEdges := quadedge.Collect(quadedge.IncidentOnFace, locatedEdge)

	newVertex, err := quadedge.NewVertexAt(p, index)
	if err != nil {
		return err
	}
	newEdge := quadedge.MakeEdge()
	newEdge.SetEndpoints(locatedEdge.Origin(), newVertex, locatedEdge.InvRot().Origin(), locatedEdge.InvRot().Origin())
	quadedge.Splice(newEdge, locatedEdge)
	locator.AddEdge(newEdge)

	for i := 0; i < len(enclosingEdges)-1; i++ {
		newEdge, err = quadedge.Connect(enclosingEdges[i], newEdge.Twin(), 1)
		if err != nil {
			return err
		}
		locator.AddEdge(newEdge)
	}

	if typ == Delaunay {
		for _, e := range enclosingEdges {
			t.fixDelaunayCondition(p, e)
		}
	}
	return nil
}
