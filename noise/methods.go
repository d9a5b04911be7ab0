package noise

// Simplified returns the empirical screening predictor. Use this for
// early-stage estimates when pipe geometry is not yet known; accuracy
// is roughly +/- 10 dBA.
func Simplified() Predictor {
	return &simplified{}
}

// IEC60534 returns the IEC 60534-8-3 stream power predictor. Use this
// when the downstream pipe diameter is known and the report needs the
// intermediate acoustic quantities.
func IEC60534() Predictor {
	return &iec{}
}
