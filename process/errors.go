package process

import "errors"

// Validation errors for primary inputs. These are fatal to the
// calculation they affect and are surfaced to the caller immediately.
var (
	// ErrInvalidProcessData indicates inconsistent pressures, flow or
	// temperature (e.g. P1 not exceeding P2, non-positive flow).
	ErrInvalidProcessData = errors.New("process: invalid process data")

	// ErrInvalidFluidData indicates missing or non-physical fluid
	// properties for the declared phase.
	ErrInvalidFluidData = errors.New("process: invalid fluid data")
)
