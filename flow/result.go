package flow

import "github.com/openvalve/go-sizing/process"

// Regime tags the sizing flow regime. Liquid service reports choked
// when the pressure drop is limited by vapor formation; gas service
// when the drop ratio reaches the terminal value.
type Regime string

const (
	RegimeSubsonic Regime = "subsonic"
	RegimeChoked   Regime = "choked"
)

// ViscousRegime labels the valve Reynolds number band.
type ViscousRegime string

const (
	ViscousTurbulent     ViscousRegime = "turbulent"
	ViscousTransitional  ViscousRegime = "transitional"
	ViscousLaminar       ViscousRegime = "laminar"
	ViscousHighlyLaminar ViscousRegime = "highly-laminar"
)

// Result is the outcome of one sizing calculation. It is produced
// fresh per call and never mutated afterwards; downstream analyzers
// read it without owning it. Pressure terms are reported in bar, mass
// flows in kg/h, velocities in m/s.
type Result struct {
	Cv      float64 `json:"cv"`
	CvBasic float64 `json:"cvBasic"` // Before viscous correction
	Regime  Regime  `json:"regime"`

	// Liquid terms.
	FF       float64 `json:"ff,omitempty"`       // Critical pressure ratio factor
	FR       float64 `json:"fr,omitempty"`       // Reynolds correction factor
	DPSizing float64 `json:"dpSizing,omitempty"` // bar, after choked clamp
	DPChoked float64 `json:"dpChoked,omitempty"` // bar, FL²(P1 - FF·Pv)
	Flashing bool    `json:"flashing,omitempty"`

	// Gas terms.
	Y       float64 `json:"y,omitempty"`       // Expansion factor
	X       float64 `json:"x,omitempty"`       // Pressure drop ratio
	XChoked float64 `json:"xChoked,omitempty"` // Terminal drop ratio Fγ·Xt

	// Viscous correction trace.
	Reynolds      float64       `json:"reynolds,omitempty"`
	ViscousRegime ViscousRegime `json:"viscousRegime,omitempty"`
	Converged     bool          `json:"converged"`
	Iterations    int           `json:"iterations,omitempty"`

	// Gas velocity and capacity diagnostics.
	MachNumber     float64 `json:"machNumber,omitempty"`
	SonicVelocity  float64 `json:"sonicVelocity,omitempty"`  // m/s
	GasVelocity    float64 `json:"gasVelocity,omitempty"`    // m/s
	MassFlow       float64 `json:"massFlow,omitempty"`       // kg/h
	ChokedMassFlow float64 `json:"chokedMassFlow,omitempty"` // kg/h, choked regime only
	InletDensity   float64 `json:"inletDensity,omitempty"`   // kg/m³

	Diagnostics process.Diagnostics `json:"diagnostics,omitempty"`
}

// Choked reports whether the sizing hit the choked flow limit.
func (r *Result) Choked() bool {
	return r.Regime == RegimeChoked
}
