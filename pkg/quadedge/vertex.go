package quadedge

import (
	"fmt"

	"github.com/s-nandi/point-location-2d/pkg/geom"
)

// Vertex is an immutable label plus an optional 2D position. It doubles
// as a face-labelling vertex when reached through Edge.LeftFace /
// Edge.RightFace: the dual graph's nodes are ordinary Vertex values whose
// Label is the face number (0 for the unbounded face).
//
// lastUsed is the only mutable field: a monotonically increasing
// "last-used" counter that lets a subdivision traversal mark each vertex
// visited exactly once per traversal call.
type Vertex struct {
	label       int
	position    geom.Point
	hasPosition bool
	lastUsed    int
}

// NewVertex creates a positionless vertex (used for face labels).
// label must be non-negative.
func NewVertex(label int) (*Vertex, error) {
	if label < 0 {
		return nil, &InvalidLabelError{Label: label}
	}
	return &Vertex{label: label, lastUsed: -1}, nil
}

// NewVertexAt creates a vertex at a position (used for primal vertices).
// label must be non-negative.
func NewVertexAt(p geom.Point, label int) (*Vertex, error) {
	if label < 0 {
		return nil, &InvalidLabelError{Label: label}
	}
	return &Vertex{label: label, position: p, hasPosition: true, lastUsed: -1}, nil
}

// Label returns the vertex's immutable integer label.
func (v *Vertex) Label() int {
	return v.label
}

// Position returns the vertex's position and whether it has one. Face
// vertices reached through LeftFace/RightFace never have a position.
func (v *Vertex) Position() (geom.Point, bool) {
	return v.position, v.hasPosition
}

// Use marks v visited for the given traversal timestamp. It returns true
// and records the mark the first time it is called with a given
// timestamp (or any larger one); it returns false if v was already
// visited during or after that timestamp.
func (v *Vertex) Use(timestamp int) bool {
	if timestamp <= v.lastUsed {
		return false
	}
	v.lastUsed = timestamp
	return true
}

func (v *Vertex) String() string {
	if v.hasPosition {
		return fmt.Sprintf("[%v : %d]", v.position, v.label)
	}
	return fmt.Sprintf("%d", v.label)
}
