package valve

import "errors"

var (
	// ErrInvalidCurve indicates a malformed coefficient curve: fewer
	// than two control points, or openings not strictly increasing.
	ErrInvalidCurve = errors.New("valve: invalid coefficient curve")

	// ErrInvalidSelection indicates an inconsistent valve selection,
	// such as an opening percentage outside (0, 100].
	ErrInvalidSelection = errors.New("valve: invalid selection")
)
