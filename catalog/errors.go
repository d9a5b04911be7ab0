package catalog

import "errors"

// Lookup errors. Callers distinguish a missing catalog entry from bad
// input with errors.Is; the store never silently substitutes defaults.
var (
	ErrUnknownValve  = errors.New("catalog: unknown valve type, style, or size")
	ErrUnknownVendor = errors.New("catalog: unknown vendor or series")
)
