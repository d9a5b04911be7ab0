package flow

import (
	"fmt"
	"math"

	"github.com/openvalve/go-sizing/process"
	"github.com/openvalve/go-sizing/units"
	"github.com/openvalve/go-sizing/valve"
)

// Default gas viscosity (air at ambient, cP) when none is supplied.
const defaultGasViscosity = 0.018

// SizeGas computes the required flow coefficient for gas or vapor
// service from the 1360-form mass flow relation, with choked flow
// detection via the terminal drop ratio Xt and velocity checks at the
// vena contracta.
func SizeGas(cond process.Conditions, fluid process.Fluid, coeffs valve.Point, opts *Options) (*Result, error) {
	opts = opts.orDefault()
	if err := cond.Validate(); err != nil {
		return nil, err
	}
	if err := fluid.Validate(); err != nil {
		return nil, err
	}
	if fluid.Phase != process.PhaseGas {
		return nil, fmt.Errorf("gas sizing requires a gas fluid, got %q: %w", fluid.Phase, process.ErrInvalidFluidData)
	}
	if coeffs.Xt <= 0 {
		return nil, fmt.Errorf("terminal drop ratio %.4g must be positive: %w", coeffs.Xt, valve.ErrInvalidCurve)
	}

	p1 := cond.P1 * units.BarToPsi
	p2 := cond.P2 * units.BarToPsi
	t1 := cond.T1 * units.KToRankine
	scfh := cond.FlowRate * units.Nm3hToScfh
	mw := fluid.MolecularWeight
	k := fluid.SpecificHeatRatio
	z := fluid.Compressibility

	fk := k / 1.40
	x := (p1 - p2) / p1
	xChoked := coeffs.Xt * fk

	res := &Result{
		Regime:    RegimeSubsonic,
		X:         x,
		XChoked:   xChoked,
		Converged: true,
	}
	xSizing := x
	if x >= xChoked {
		xSizing = xChoked
		res.Regime = RegimeChoked
	}

	y := 1 - xSizing/(3*fk*coeffs.Xt)
	y = math.Max(2.0/3.0, math.Min(1.0, y))
	res.Y = y

	massFlow := scfh * mw / units.MolarVolumeScf // lb/h
	cv := massFlow / (1360 * y * p1 * math.Sqrt(xSizing/(mw*t1*z)))
	res.Cv = cv
	res.CvBasic = cv
	res.MassFlow = massFlow * units.LbToKg

	sonic := math.Sqrt(k * units.GasConstantUS * t1 / mw) // ft/s
	res.SonicVelocity = sonic * units.FtToM

	// Jet velocity through an approximate flow area of Cv/20 in².
	velocity := 0.0
	if cv > 0 {
		area := cv / 20
		velocity = scfh / (area * 3600)
		res.MachNumber = velocity / sonic
	}
	res.GasVelocity = velocity * units.FtToM

	density := p1 * mw / (units.GasLawConstantUS * t1) // lb/ft³
	res.InletDensity = density / units.KgM3ToLbFt3

	viscosity := fluid.GasViscosity
	if viscosity <= 0 {
		viscosity = defaultGasViscosity
	}
	if cv > 0 {
		length := math.Sqrt(cv / 30) // in
		// 6.72e-4 converts cP to lb/(ft·s).
		res.Reynolds = density * velocity * length / (viscosity * 6.72e-4)
		res.ViscousRegime = ViscousRegimeFor(res.Reynolds)
	}

	if res.Choked() {
		cChoked := math.Sqrt(k * math.Pow(2/(k+1), (k+1)/(k-1)))
		res.ChokedMassFlow = coeffs.Xt * cChoked * p1 * math.Sqrt(mw/t1) * units.LbToKg
		res.Diagnostics.Add(process.SeverityWarning, "choked",
			"flow is choked, the valve cannot pass more flow regardless of further pressure drop",
			"use choked flow conditions for relief and safety calculations")
	}

	switch {
	case res.MachNumber > opts.MachExtreme:
		res.Diagnostics.Add(process.SeverityCritical, "velocity",
			fmt.Sprintf("extremely high gas velocity (Mach %.2f), significant pressure losses expected", res.MachNumber),
			"consider multi-stage pressure reduction or a larger valve")
	case res.MachNumber > opts.MachWarning:
		res.Diagnostics.Add(process.SeverityWarning, "velocity",
			fmt.Sprintf("high gas velocity (Mach %.2f) may cause additional pressure losses", res.MachNumber),
			"verify downstream piping design for high velocity")
	}

	if res.Reynolds > 0 && res.Reynolds < TurbulentReynolds {
		res.Diagnostics.Info("viscosity", "low Reynolds number %.0f, flow may not be fully turbulent", res.Reynolds)
	}
	if cond.P2 <= cond.P1/10 {
		res.Diagnostics.Add(process.SeverityWarning, "pressure-ratio",
			"very high pressure ratio across a single valve",
			"multi-stage pressure reduction recommended for ratios above 10:1")
	}
	tempC := cond.T1 - 273.15
	if tempC < -50 {
		res.Diagnostics.Warn("materials", "very low temperature %.0f °C, material selection critical", tempC)
	} else if tempC > 500 {
		res.Diagnostics.Warn("materials", "high temperature service %.0f °C, thermal effects important", tempC)
	}
	return res, nil
}
