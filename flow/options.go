package flow

// Options contains sizing configuration parameters.
type Options struct {
	ReynoldsTolerance float64 // Relative Cv convergence tolerance for the viscous loop
	ReynoldsMaxIters  int     // Maximum viscous correction iterations
	MachWarning       float64 // Mach number above which a velocity warning is recorded
	MachExtreme       float64 // Mach number treated as extreme for gas service
	SkipViscous       bool    // Assume fully turbulent flow, FR = 1
}

// DefaultOptions returns default sizing options.
func DefaultOptions() *Options {
	return &Options{
		ReynoldsTolerance: 0.01,
		ReynoldsMaxIters:  10,
		MachWarning:       0.3,
		MachExtreme:       0.7,
	}
}

// PreciseOptions returns options with a tighter viscous convergence
// tolerance. Use these when results feed a datasheet or have to match
// vendor sizing software to the digit.
func PreciseOptions() *Options {
	return &Options{
		ReynoldsTolerance: 0.001,
		ReynoldsMaxIters:  50,
		MachWarning:       0.3,
		MachExtreme:       0.7,
	}
}

// ViscousServiceOptions returns options for high-viscosity service.
// Use these for heavy hydrocarbons, polymers, or any fluid above a few
// hundred cP, where the correction loop needs extra headroom to settle.
func ViscousServiceOptions() *Options {
	return &Options{
		ReynoldsTolerance: 0.005,
		ReynoldsMaxIters:  25,
		MachWarning:       0.3,
		MachExtreme:       0.7,
	}
}

func (o *Options) orDefault() *Options {
	if o == nil {
		return DefaultOptions()
	}
	return o
}
