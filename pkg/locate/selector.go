package locate

import (
	"github.com/s-nandi/point-location-2d/internal/rng"
	"github.com/s-nandi/point-location-2d/pkg/geom"
	"github.com/s-nandi/point-location-2d/pkg/quadedge"
	"github.com/s-nandi/point-location-2d/pkg/subdivision"
)

// SelectorMode chooses how a Selector picks the edge a walk starts from.
type SelectorMode int

const (
	// SelectFirst returns an arbitrary currently-valid edge.
	SelectFirst SelectorMode = iota
	// SelectRecent returns the edge the previous successful locate ended
	// on, falling back to SelectFirst on the first call.
	SelectRecent
	// SelectSample draws SampleSize random valid edges and returns the
	// one whose midpoint is nearest the query point.
	SelectSample
)

// SelectorOptions configures a Selector. SampleSize is only consulted
// when Mode is SelectSample.
type SelectorOptions struct {
	Mode       SelectorMode
	SampleSize int
}

// DefaultSelectorOptions returns SelectFirst, the mode every walk falls
// back to when it has no reason to prefer locality.
func DefaultSelectorOptions() SelectorOptions {
	return SelectorOptions{Mode: SelectFirst}
}

// Selector tracks the live edges of a subdivision under construction and
// picks a starting edge for the walk per its configured mode. It
// maintains an append-only list of every edge ever added (so sampling
// has a stable index space) and a set of currently-valid edges (so
// removed edges are never returned).
type Selector struct {
	opts       SelectorOptions
	recentEdge *quadedge.Edge
	edgeList   []*quadedge.Edge
	validEdges map[*quadedge.Edge]struct{}
	sampler    *rng.PointRNG
}

// NewSelector builds a Selector over src's current primal edges.
func NewSelector(src Source, opts SelectorOptions) *Selector {
	s := &Selector{
		opts:       opts,
		validEdges: make(map[*quadedge.Edge]struct{}),
		sampler:    rng.New(0, 1, 1, 0),
	}
	for _, e := range src.Traverse(subdivision.PrimalGraph, subdivision.TraverseEdges) {
		s.AddEdge(e)
	}
	return s
}

// AddEdge registers e as live and eligible for sampling.
func (s *Selector) AddEdge(e *quadedge.Edge) {
	s.edgeList = append(s.edgeList, e)
	s.validEdges[e] = struct{}{}
}

// RemoveEdge marks e no longer eligible; it remains in the append-only
// list so sample indices stay stable.
func (s *Selector) RemoveEdge(e *quadedge.Edge) {
	delete(s.validEdges, e)
}

// LocatedEdge records e as the most recently located edge, consulted by
// SelectRecent.
func (s *Selector) LocatedEdge(e *quadedge.Edge) {
	s.recentEdge = e
}

// StartingEdge returns the edge a walk toward p should begin from, or nil
// if the selector has no valid edges at all.
func (s *Selector) StartingEdge(p geom.Point) *quadedge.Edge {
	switch s.opts.Mode {
	case SelectRecent:
		if s.recentEdge != nil {
			return s.recentEdge
		}
		return s.anyValidEdge()
	case SelectSample:
		return s.bestFromSample(p)
	default:
		return s.anyValidEdge()
	}
}

func (s *Selector) anyValidEdge() *quadedge.Edge {
	for e := range s.validEdges {
		return e
	}
	return nil
}

func (s *Selector) bestFromSample(p geom.Point) *quadedge.Edge {
	if len(s.edgeList) == 0 {
		return nil
	}
	var closest *quadedge.Edge
	var closestDistSq float64
	found := 0
	// Rejection sampling over the append-only list; bounded so a heavily
	// pruned edge set (most entries removed) cannot spin forever.
	for attempts := 0; found < s.opts.SampleSize && attempts < 8*len(s.edgeList)+8; attempts++ {
		candidate := s.edgeList[s.sampler.Intn(len(s.edgeList))]
		if _, ok := s.validEdges[candidate]; !ok {
			continue
		}
		mid := geom.Midpoint(candidate.OriginPosition(), candidate.DestPosition())
		distSq := mid.Sub(p).MagnitudeSquared()
		if closest == nil || distSq < closestDistSq {
			closest = candidate
			closestDistSq = distSq
		}
		found++
	}
	if closest == nil {
		return s.anyValidEdge()
	}
	return closest
}
