package locate

import (
	"sort"

	"github.com/s-nandi/point-location-2d/pkg/geom"
	"github.com/s-nandi/point-location-2d/pkg/quadedge"
	"github.com/s-nandi/point-location-2d/pkg/subdivision"
)

type slabEvent struct {
	segment *quadedge.Edge
	isLeft  bool
}

func (e slabEvent) position() geom.Point {
	if e.isLeft {
		return e.segment.OriginPosition()
	}
	return e.segment.DestPosition()
}

// Slab is a static, one-shot point locator built by sweeping a
// subdivision's edges left to right: every distinct x-coordinate gets a
// snapshot of the edges crossing it, ordered by the y-coordinate of their
// left endpoint. Locate then binary-searches x, then y.
type Slab struct {
	positions []float64
	slabs     [][]*quadedge.Edge
}

// NewSlab builds a Slab decomposition over src's current primal edges.
// The result is static: edges added or removed afterward are not
// reflected until NewSlab is called again.
func NewSlab(src Source) *Slab {
	edges := src.Traverse(subdivision.PrimalGraph, subdivision.TraverseEdges)

	directed := make([]*quadedge.Edge, len(edges))
	for i, e := range edges {
		if e.OriginPosition().Greater(e.DestPosition()) {
			directed[i] = e.Twin()
		} else {
			directed[i] = e
		}
	}

	events := make([]slabEvent, 0, 2*len(directed))
	xCoords := make([]float64, 0, 2*len(directed))
	for _, e := range directed {
		events = append(events, slabEvent{segment: e, isLeft: true}, slabEvent{segment: e, isLeft: false})
		xCoords = append(xCoords, e.OriginPosition().X, e.DestPosition().X)
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].position().Less(events[j].position())
	})
	sort.Float64s(xCoords)
	xCoords = dedupeFloats(xCoords)

	compareByY := func(a, b *quadedge.Edge) bool {
		pa, pb := a.OriginPosition(), b.OriginPosition()
		if pa.Y != pb.Y {
			return pa.Y < pb.Y
		}
		return pa.X < pb.X
	}

	s := &Slab{}
	var current []*quadedge.Edge
	eventIdx := 0
	for _, x := range xCoords {
		for eventIdx < len(events) && events[eventIdx].position().X == x {
			ev := events[eventIdx]
			if ev.isLeft {
				current = insertSorted(current, ev.segment, compareByY)
			} else {
				current = removeEdge(current, ev.segment)
			}
			eventIdx++
		}
		snapshot := make([]*quadedge.Edge, len(current))
		copy(snapshot, current)
		s.slabs = append(s.slabs, snapshot)
		s.positions = append(s.positions, x)
	}
	return s
}

func dedupeFloats(xs []float64) []float64 {
	out := xs[:0]
	for i, x := range xs {
		if i == 0 || x != xs[i-1] {
			out = append(out, x)
		}
	}
	return out
}

func insertSorted(edges []*quadedge.Edge, e *quadedge.Edge, less func(a, b *quadedge.Edge) bool) []*quadedge.Edge {
	i := sort.Search(len(edges), func(i int) bool { return !less(edges[i], e) })
	edges = append(edges, nil)
	copy(edges[i+1:], edges[i:])
	edges[i] = e
	return edges
}

func removeEdge(edges []*quadedge.Edge, e *quadedge.Edge) []*quadedge.Edge {
	for i, candidate := range edges {
		if candidate == e {
			return append(edges[:i], edges[i+1:]...)
		}
	}
	return edges
}

func (s *Slab) findSlabIndex(p geom.Point) int {
	if len(s.positions) == 0 || p.X < s.positions[0] || p.X > s.positions[len(s.positions)-1] {
		return -1
	}
	l, r := 0, len(s.positions)-1
	for l < r {
		m := (l + r) / 2
		if p.X < s.positions[m] {
			r = m - 1
		} else if m+1 >= len(s.positions) || p.X <= s.positions[m+1] {
			return m
		} else {
			l = m + 1
		}
	}
	return l
}

func (s *Slab) findInSlab(index int, p geom.Point) *quadedge.Edge {
	slab := s.slabs[index]
	if len(slab) == 0 {
		return nil
	}
	getY := func(e *quadedge.Edge) float64 { return e.OriginPosition().Y }
	if p.Y < getY(slab[0]) || p.Y > getY(slab[len(slab)-1]) {
		return nil
	}
	l, r := 0, len(slab)-1
	for l < r {
		m := (l + r) / 2
		if p.Y < getY(slab[m]) {
			r = m - 1
		} else if m+1 >= len(slab) || p.Y <= getY(slab[m+1]) {
			return slab[m]
		} else {
			l = m + 1
		}
	}
	return slab[l]
}

// Locate returns a half-edge whose left face contains p, or nil if p is
// outside the slab decomposition's x- or y-span.
func (s *Slab) Locate(p geom.Point) *quadedge.Edge {
	idx := s.findSlabIndex(p)
	if idx == -1 {
		return nil
	}
	boundingEdge := s.findInSlab(idx, p)
	if boundingEdge == nil {
		return nil
	}
	if geom.Orientation(boundingEdge.OriginPosition(), boundingEdge.DestPosition(), p) > 0 {
		return boundingEdge.Twin()
	}
	return boundingEdge
}
