// Package process defines the process and fluid input model shared by
// all sizing calculators, along with fail-fast validation of it.
// A Conditions/Fluid pair is constructed once per calculation request
// and treated as immutable for the duration of a pipeline run.
package process

import (
	"fmt"

	"github.com/openvalve/go-sizing/units"
)

// Phase tags the service fluid as liquid or gas/vapor and selects the
// sizing calculator.
type Phase string

const (
	PhaseLiquid Phase = "liquid"
	PhaseGas    Phase = "gas"
)

// Conditions holds the process operating point in SI units: pressures
// in bar absolute, temperature in K, flow in m³/h for liquids and
// Nm³/h for gases.
type Conditions struct {
	P1       float64 `json:"p1"`       // Inlet pressure (bar abs)
	P2       float64 `json:"p2"`       // Outlet pressure (bar abs)
	T1       float64 `json:"t1"`       // Inlet temperature (K)
	FlowRate float64 `json:"flowRate"` // m³/h (liquid) or Nm³/h (gas)

	// PipeDiameter is the downstream pipe internal diameter in mm.
	// Zero means unknown; the IEC noise method requires it.
	PipeDiameter float64 `json:"pipeDiameter,omitempty"`

	// SystemDP is the total system pressure drop at design flow in
	// bar. Zero means unknown; valve authority analysis requires it.
	SystemDP float64 `json:"systemDp,omitempty"`
}

// DP returns the differential pressure P1 - P2 in bar.
func (c Conditions) DP() float64 {
	return c.P1 - c.P2
}

// Validate checks the process operating point. Violations return
// ErrInvalidProcessData with the offending values.
func (c Conditions) Validate() error {
	if c.P1 <= 0 {
		return fmt.Errorf("inlet pressure %.4g bar must be positive: %w", c.P1, ErrInvalidProcessData)
	}
	if c.P2 < 0 {
		return fmt.Errorf("outlet pressure %.4g bar must be non-negative: %w", c.P2, ErrInvalidProcessData)
	}
	if c.P1 <= c.P2 {
		return fmt.Errorf("inlet pressure %.4g bar must exceed outlet pressure %.4g bar: %w", c.P1, c.P2, ErrInvalidProcessData)
	}
	if c.T1 <= 0 {
		return fmt.Errorf("inlet temperature %.4g K must be positive: %w", c.T1, ErrInvalidProcessData)
	}
	if c.FlowRate <= 0 {
		return fmt.Errorf("flow rate %.4g must be positive: %w", c.FlowRate, ErrInvalidProcessData)
	}
	return nil
}

// Fluid holds the fluid property set. Only the fields required by the
// declared phase are validated; absence of a phase-required field is an
// error, never silently defaulted.
type Fluid struct {
	Phase Phase  `json:"phase"`
	Name  string `json:"name,omitempty"` // Optional, drives material recommendations

	// Liquid properties.
	Density          float64 `json:"density,omitempty"`          // kg/m³
	VaporPressure    float64 `json:"vaporPressure,omitempty"`    // bar abs
	CriticalPressure float64 `json:"criticalPressure,omitempty"` // bar abs
	Viscosity        float64 `json:"viscosity,omitempty"`        // cP

	// Gas properties.
	MolecularWeight   float64 `json:"molecularWeight,omitempty"`
	SpecificHeatRatio float64 `json:"specificHeatRatio,omitempty"` // k = cp/cv
	Compressibility   float64 `json:"compressibility,omitempty"`   // Z

	// GasViscosity in cP is optional and only feeds the gas Reynolds
	// diagnostic. Zero falls back to air at ambient (0.018 cP).
	GasViscosity float64 `json:"gasViscosity,omitempty"`
}

// SpecificGravity returns the liquid specific gravity derived from
// density, referenced to water.
func (f Fluid) SpecificGravity() float64 {
	return units.SpecificGravity(f.Density)
}

// Validate checks the property set against the declared phase.
// Violations return ErrInvalidFluidData with the offending values.
func (f Fluid) Validate() error {
	switch f.Phase {
	case PhaseLiquid:
		if f.Density <= 0 {
			return fmt.Errorf("liquid density %.4g kg/m³ must be positive: %w", f.Density, ErrInvalidFluidData)
		}
		if f.VaporPressure < 0 {
			return fmt.Errorf("vapor pressure %.4g bar must be non-negative: %w", f.VaporPressure, ErrInvalidFluidData)
		}
		if f.CriticalPressure <= 0 {
			return fmt.Errorf("critical pressure %.4g bar must be positive: %w", f.CriticalPressure, ErrInvalidFluidData)
		}
		if f.VaporPressure >= f.CriticalPressure {
			return fmt.Errorf("vapor pressure %.4g bar must be below critical pressure %.4g bar: %w",
				f.VaporPressure, f.CriticalPressure, ErrInvalidFluidData)
		}
		if f.Viscosity <= 0 {
			return fmt.Errorf("liquid viscosity %.4g cP must be positive: %w", f.Viscosity, ErrInvalidFluidData)
		}
	case PhaseGas:
		if f.MolecularWeight <= 0 {
			return fmt.Errorf("molecular weight %.4g must be positive: %w", f.MolecularWeight, ErrInvalidFluidData)
		}
		if f.SpecificHeatRatio <= 0 {
			return fmt.Errorf("specific heat ratio %.4g must be positive: %w", f.SpecificHeatRatio, ErrInvalidFluidData)
		}
		if f.Compressibility <= 0 {
			return fmt.Errorf("compressibility %.4g must be positive: %w", f.Compressibility, ErrInvalidFluidData)
		}
	default:
		return fmt.Errorf("unknown fluid phase %q: %w", f.Phase, ErrInvalidFluidData)
	}
	return nil
}
