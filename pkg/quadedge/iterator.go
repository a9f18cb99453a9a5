package quadedge

// IncidenceMode selects which cyclic ring an Iterator walks.
type IncidenceMode int

const (
	// IncidentOnFace walks successive Fnext starting at the edge the
	// iterator was built from, enumerating the edges of its left face in
	// CCW order (CW for the exterior face).
	IncidentOnFace IncidenceMode = iota
	// IncidentToOrigin walks successive Onext, enumerating the edges
	// sharing the starting edge's origin.
	IncidentToOrigin
	// IncidentToDestination walks twin . onext . twin, enumerating the
	// edges sharing the starting edge's destination.
	IncidentToDestination
)

// Iterator is a single-pass, non-restartable cyclic iterator over one of
// an edge's incidence rings. Its terminal state is distinguished from its
// initial state by an explicit "has-advanced" flag rather than pointer
// comparison alone, so a ring of size 1 is not mistaken for an empty
// ring.
type Iterator struct {
	start    *Edge
	curr     *Edge
	mode     IncidenceMode
	reversed bool
	advanced bool
}

// Iterate returns an iterator over mode's ring, starting at e, advancing
// forward (Fnext/Onext/twin-onext-twin).
func (e *Edge) Iterate(mode IncidenceMode) *Iterator {
	return &Iterator{start: e, curr: e, mode: mode}
}

// IterateReverse returns an iterator over mode's ring, starting at e,
// advancing backward (Fprev/Oprev/twin-oprev-twin).
func (e *Edge) IterateReverse(mode IncidenceMode) *Iterator {
	return &Iterator{start: e, curr: e, mode: mode, reversed: true}
}

// Done reports whether the iterator has completed one full cycle back to
// its starting edge.
func (it *Iterator) Done() bool {
	return it.advanced && it.curr == it.start
}

// Edge returns the iterator's current edge.
func (it *Iterator) Edge() *Edge {
	return it.curr
}

// Next advances the iterator by one step. Calling Next after Done is a
// programming error.
func (it *Iterator) Next() {
	if it.Done() {
		panic(&InvalidStateError{Reason: "Iterator.Next called past end of cycle"})
	}
	if !it.reversed {
		switch it.mode {
		case IncidentOnFace:
			it.curr = it.curr.Fnext()
		case IncidentToOrigin:
			it.curr = it.curr.Onext()
		case IncidentToDestination:
			it.curr = it.curr.Twin().Onext().Twin()
		}
	} else {
		switch it.mode {
		case IncidentOnFace:
			it.curr = it.curr.Fprev()
		case IncidentToOrigin:
			it.curr = it.curr.Oprev()
		case IncidentToDestination:
			it.curr = it.curr.Twin().Oprev().Twin()
		}
	}
	it.advanced = true
}

// Collect runs the iterator to completion and returns every edge visited,
// in order. Convenience used by callers that need a stable slice rather
// than a live iterator (e.g. Triangulation.AddPoint's enclosing-polygon
// scan, which mutates the ring mid-walk).
func Collect(mode IncidenceMode, e *Edge) []*Edge {
	var out []*Edge
	for it := e.Iterate(mode); !it.Done(); it.Next() {
		out = append(out, it.Edge())
	}
	return out
}
