package subdivision

// Box is an axis-aligned bounding box: Left/Right are x-extents,
// Bottom/Top are y-extents.
type Box struct {
	Left, Top, Right, Bottom float64
}

// GraphType selects the primal (vertex) graph or the dual (face) graph
// for Subdivision.Traverse.
type GraphType int

const (
	PrimalGraph GraphType = iota
	DualGraph
)

// TraversalMode selects whether Traverse enumerates one representative
// half-edge per undirected edge or per distinct node.
type TraversalMode int

const (
	TraverseEdges TraversalMode = iota
	TraverseNodes
)
