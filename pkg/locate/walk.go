package locate

import (
	"github.com/s-nandi/point-location-2d/internal/bench"
	"github.com/s-nandi/point-location-2d/internal/rng"
	"github.com/s-nandi/point-location-2d/pkg/geom"
	"github.com/s-nandi/point-location-2d/pkg/quadedge"
)

// WalkOptions configures the Lawson oriented walk. FastRemembering
// implies Remembering regardless of how Remembering is set.
type WalkOptions struct {
	Stochastic      bool
	Remembering     bool
	FastRemembering bool
	// MaxFastSteps bounds the fast phase; only consulted when
	// FastRemembering is set. Typical tuning is the 4th root of the
	// vertex count.
	MaxFastSteps int
}

// DefaultWalkOptions returns a plain remembering walk: no stochastic
// shuffle, no fast phase.
func DefaultWalkOptions() WalkOptions {
	return WalkOptions{Remembering: true}
}

// Walk is the Lawson oriented walk: starting from an edge chosen by its
// Selector, it steps toward the query point one face at a time, always
// moving across the edge that makes a right turn with the point, until
// no such edge remains.
type Walk struct {
	opts     WalkOptions
	selector *Selector
	counters bench.Counters
	shuffler *rng.PointRNG
}

// NewWalk builds a walk over src with the given walk and selector
// options.
func NewWalk(src Source, opts WalkOptions, selOpts SelectorOptions) *Walk {
	if opts.FastRemembering {
		opts.Remembering = true
	}
	return &Walk{
		opts:     opts,
		selector: NewSelector(src, selOpts),
		shuffler: rng.New(0, 1, 1, 0),
	}
}

// AddEdge reports a newly inserted edge to the underlying selector so it
// remains eligible as a starting point.
func (w *Walk) AddEdge(e *quadedge.Edge) {
	w.selector.AddEdge(e)
}

// RemoveEdge reports a deleted edge to the underlying selector.
func (w *Walk) RemoveEdge(e *quadedge.Edge) {
	w.selector.RemoveEdge(e)
}

// Counters returns the walk's cumulative orientation-test and face-step
// instrumentation.
func (w *Walk) Counters() bench.Counters {
	return w.counters
}

func (w *Walk) shuffle(edges []*quadedge.Edge) {
	for i := len(edges) - 1; i > 0; i-- {
		j := w.shuffler.Intn(i + 1)
		edges[i], edges[j] = edges[j], edges[i]
	}
}

// Locate returns a half-edge whose left face contains p, or nil if p is
// outside the indexed subdivision. The walk has no hard step cap; use
// LocateBounded to opt into one.
func (w *Walk) Locate(p geom.Point) *quadedge.Edge {
	e, _ := w.locate(p, -1)
	return e
}

// LocateBounded is Locate with a caller-imposed cap (maxSteps >= 0) on
// the number of face-steps the main phase may take; it returns a
// *WalkDivergenceError if the cap is exceeded before the walk converges.
func (w *Walk) LocateBounded(p geom.Point, maxSteps int) (*quadedge.Edge, error) {
	return w.locate(p, maxSteps)
}

// locate runs the walk; maxSteps < 0 means unbounded.
func (w *Walk) locate(p geom.Point, maxSteps int) (*quadedge.Edge, error) {
	curr := w.selector.StartingEdge(p)
	if curr == nil {
		return nil, nil
	}

	if w.opts.FastRemembering {
		for step := 0; step < w.opts.MaxFastSteps; step++ {
			e1 := curr.Fnext()
			e2 := e1.Fnext()
			w.counters.AddTest()
			var candidate *quadedge.Edge
			if geom.Orientation(e1.OriginPosition(), e1.DestPosition(), p) > 0 {
				candidate = e1.Twin()
			} else {
				candidate = e2.Twin()
			}
			w.counters.AddFace()
			if candidate.LeftFace().Label() == 0 {
				break
			}
			curr = candidate
		}
	}

	firstIteration := true
	steps := 0
	for {
		if maxSteps >= 0 && steps >= maxSteps {
			return nil, &WalkDivergenceError{Steps: steps}
		}
		faceEdges := quadedge.Collect(quadedge.IncidentOnFace, curr)
		if w.opts.Remembering && !firstIteration && len(faceEdges) > 0 {
			faceEdges = faceEdges[1:]
		}
		if w.opts.Stochastic {
			w.shuffle(faceEdges)
		}

		rightTurn := false
		for _, e := range faceEdges {
			w.counters.AddTest()
			if geom.Orientation(e.OriginPosition(), e.DestPosition(), p) > 0 {
				if e.RightFace().Label() == 0 {
					return nil, nil
				}
				curr = e.Twin()
				rightTurn = true
				break
			}
		}
		firstIteration = false
		steps++
		w.counters.AddFace()
		if !rightTurn {
			break
		}
	}

	w.selector.LocatedEdge(curr)
	return curr, nil
}
