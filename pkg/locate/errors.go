package locate

import "fmt"

// WalkDivergenceError is returned by Walk.LocateBounded when the oriented
// walk exceeds a caller-imposed step budget. The unbounded Locate method
// never returns it: the underlying algorithm has no hard cap of its own.
type WalkDivergenceError struct {
	Steps int
}

func (e *WalkDivergenceError) Error() string {
	return fmt.Sprintf("oriented walk exceeded its step budget after %d faces", e.Steps)
}
