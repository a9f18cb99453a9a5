package subdivision

import "fmt"

// InvalidStateError mirrors quadedge.InvalidStateError for conditions
// specific to subdivision construction, e.g. a non-CCW face, a polygon
// with fewer than 3 points, or a bounding box with left > right or
// bottom > top.
type InvalidStateError struct {
	Reason string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid subdivision state: %s", e.Reason)
}
