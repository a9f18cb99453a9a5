package triangulation

import (
	"io"

	"github.com/s-nandi/point-location-2d/internal/parser"
	"github.com/s-nandi/point-location-2d/internal/rng"
	"github.com/s-nandi/point-location-2d/pkg/geom"
	"github.com/s-nandi/point-location-2d/pkg/locate"
	"github.com/s-nandi/point-location-2d/pkg/quadedge"
	"github.com/s-nandi/point-location-2d/pkg/subdivision"
)

// ceilNthRoot returns the smallest i such that i^n >= val, for val >= 1
// and 2 <= n <= 10; used to tune the Lawson walk's sample size and fast
// phase length to the problem size.
func ceilNthRoot(val, n int) int {
	if val <= 1 {
		return 1
	}
	for i := 2; i <= val; i++ {
		v := 1
		for j := 0; j < n; j++ {
			v *= i
			if v >= val {
				return i
			}
		}
	}
	return val
}

// shufflePoints returns a copy of points in a random order, via the same
// Fisher-Yates/Intn idiom Walk.shuffle uses for the stochastic walk. A
// Delaunay build needs a randomized insertion order for its amortized
// flips-per-insert bound to hold; an adversarial (e.g. spatially sorted)
// input list handed to Build in caller order would not get that bound.
func shufflePoints(points []geom.Point) []geom.Point {
	shuffled := make([]geom.Point, len(points))
	copy(shuffled, points)
	shuffler := rng.New(0, 1, 1, 0)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := shuffler.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

func boundingBox(points []geom.Point) subdivision.Box {
	box := subdivision.Box{Left: points[0].X, Right: points[0].X, Top: points[0].Y, Bottom: points[0].Y}
	for _, p := range points[1:] {
		if p.X < box.Left {
			box.Left = p.X
		}
		if p.X > box.Right {
			box.Right = p.X
		}
		if p.Y > box.Top {
			box.Top = p.Y
		}
		if p.Y < box.Bottom {
			box.Bottom = p.Y
		}
	}
	return box
}

func defaultLocator(t *Triangulation, numPoints int, typ Type) OnlineLocator {
	sampleSize := ceilNthRoot(numPoints, 3)
	selOpts := locate.SelectorOptions{Mode: locate.SelectSample, SampleSize: sampleSize}
	switch typ {
	case Arbitrary:
		fastSteps := ceilNthRoot(numPoints, 4)
		walkOpts := locate.WalkOptions{Remembering: true, FastRemembering: true, MaxFastSteps: fastSteps}
		return locate.NewWalk(t.Subdivision, walkOpts, selOpts)
	default:
		return locate.NewWalk(t.Subdivision, locate.WalkOptions{Remembering: true}, selOpts)
	}
}

// labelFaces stamps a fresh, consecutively numbered label across each
// interior face, overwriting the per-face labels construction left
// behind.
func (t *Triangulation) labelFaces() {
	faceNumber := 1
	for _, e := range t.Traverse(subdivision.DualGraph, subdivision.TraverseNodes) {
		if e.Origin() == t.Exterior() {
			continue
		}
		face, err := quadedge.NewVertex(faceNumber)
		if err != nil {
			continue
		}
		e.Rot().LabelFace(face)
		faceNumber++
	}
}

// Build triangulates points: a padded bounding box is created first
// (unless the triangulation already has one), then every point is
// inserted via AddPoint: in a random order for a Delaunay build, in the
// given order otherwise.
func Build(points []geom.Point, opts BuildOptions) (*Triangulation, error) {
	t := New()

	locator := opts.Locator
	if locator == nil {
		locator = defaultLocator(t, len(points), opts.Type)
	}

	if !t.bounded {
		box := boundingBox(points)
		box.Left--
		box.Bottom--
		box.Right++
		box.Top++
		if _, err := t.InitBoundingBox(box); err != nil {
			return nil, err
		}
	}

	for _, e := range t.Traverse(subdivision.PrimalGraph, subdivision.TraverseEdges) {
		locator.AddEdge(e)
	}

	if opts.Type == Delaunay {
		points = shufflePoints(points)
	}

	for i, p := range points {
		if err := t.AddPoint(p, 4+i, locator, opts.Type); err != nil {
			return nil, err
		}
	}

	t.labelFaces()
	return t, nil
}

// BuildRandom triangulates numPoints points sampled uniformly at random
// from bounds.
func BuildRandom(numPoints int, bounds subdivision.Box, opts BuildOptions) (*Triangulation, error) {
	t := New()
	box := bounds
	box.Left--
	box.Bottom--
	box.Right++
	box.Top++
	if _, err := t.InitBoundingBox(box); err != nil {
		return nil, err
	}

	sampler := rng.New(bounds.Left, bounds.Top, bounds.Right, bounds.Bottom)
	points := sampler.Points(numPoints)

	locator := opts.Locator
	if locator == nil {
		locator = defaultLocator(t, numPoints, opts.Type)
	}
	for _, e := range t.Traverse(subdivision.PrimalGraph, subdivision.TraverseEdges) {
		locator.AddEdge(e)
	}
	for i, p := range points {
		if err := t.AddPoint(p, 4+i, locator, opts.Type); err != nil {
			return nil, err
		}
	}

	t.labelFaces()
	return t, nil
}

// BuildFromPT triangulates the point set read from a PT file.
func BuildFromPT(r io.Reader, opts BuildOptions) (*Triangulation, error) {
	points, err := parser.ParsePT(r, parser.DefaultParseOptions())
	if err != nil {
		return nil, err
	}
	return Build(points, opts)
}
