package actuator

import "errors"

var (
	// ErrUnknownType reports an actuator type outside the supported
	// set, or one whose motion does not match the valve.
	ErrUnknownType = errors.New("actuator: unknown actuator type")

	// ErrInsufficientMargin reports a rated capacity below the
	// required output. The sizing result is still returned so reports
	// can show the shortfall.
	ErrInsufficientMargin = errors.New("actuator: rated capacity below required output")
)
