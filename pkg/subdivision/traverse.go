package subdivision

import "github.com/s-nandi/point-location-2d/pkg/quadedge"

// Traverse walks the primal or dual graph depth-first from the
// subdivision's incident edge and returns one representative half-edge
// per undirected edge (mode == TraverseEdges) or per distinct node
// (mode == TraverseNodes). Each call advances the subdivision's
// traversal timestamp, so the returned order is stable for a single call
// but unrelated across calls.
func (s *Subdivision) Traverse(graph GraphType, mode TraversalMode) []*quadedge.Edge {
	if s.incidentEdge == nil {
		return nil
	}
	s.time++
	start := s.incidentEdge
	if graph == DualGraph {
		start = start.Rot()
	}
	switch mode {
	case TraverseNodes:
		return s.traverseNodesDFS(start)
	default:
		return s.traverseEdgesDFS(start)
	}
}

// traverseEdgesDFS visits every quad-edge reachable from start exactly
// once, returning one half-edge per quad-edge: arbitrary orientation, one
// representative per undirected edge.
func (s *Subdivision) traverseEdgesDFS(start *quadedge.Edge) []*quadedge.Edge {
	var out []*quadedge.Edge
	stack := []*quadedge.Edge{start}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !e.UseQuadEdge(s.time) {
			continue
		}
		out = append(out, e)
		for _, next := range quadedge.Collect(quadedge.IncidentToOrigin, e.Twin()) {
			stack = append(stack, next)
		}
	}
	return out
}

// traverseNodesDFS visits every vertex (primal) or face (dual) reachable
// from start exactly once, returning one incident half-edge per node.
func (s *Subdivision) traverseNodesDFS(start *quadedge.Edge) []*quadedge.Edge {
	var out []*quadedge.Edge
	stack := []*quadedge.Edge{start}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !e.Origin().Use(s.time) {
			continue
		}
		out = append(out, e)
		for _, next := range quadedge.Collect(quadedge.IncidentToOrigin, e) {
			stack = append(stack, next.Twin())
		}
	}
	return out
}
