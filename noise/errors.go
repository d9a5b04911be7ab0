package noise

import "errors"

// ErrInsufficientData reports a prediction method asked to run without
// the inputs it requires, e.g. the IEC method without a pipe diameter
// or either method without a sizing result.
var ErrInsufficientData = errors.New("noise: insufficient data for prediction method")
