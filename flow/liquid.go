// Package flow implements the ISA S75.01 / IEC 60534-2-1 flow
// coefficient calculations for liquid and gas service. Inputs arrive
// in SI units and are converted to the customary US units the Cv
// formulas are written in; results convert back on the way out. Every
// calculation is a pure function of its inputs.
package flow

import (
	"fmt"
	"math"

	"github.com/openvalve/go-sizing/process"
	"github.com/openvalve/go-sizing/units"
	"github.com/openvalve/go-sizing/valve"
)

// FFFactor returns the liquid critical pressure ratio factor
// FF = 0.96 - 0.28·sqrt(Pv/Pc), with the ratio capped at 1 and the
// result bounded to [0, 1]. A non-positive critical pressure yields
// the conservative 0.96.
func FFFactor(pv, pc float64) float64 {
	if pc <= 0 {
		return 0.96
	}
	ratio := pv / pc
	if ratio > 1 {
		ratio = 1
	}
	ff := 0.96 - 0.28*math.Sqrt(ratio)
	return math.Max(0, math.Min(1, ff))
}

// SizeLiquid computes the required flow coefficient for liquid service
// with choked-flow limiting and viscous correction. The coefficient
// point carries FL at the evaluated opening; the valve type selects
// the Reynolds correction curve.
func SizeLiquid(cond process.Conditions, fluid process.Fluid, vtype valve.Type, coeffs valve.Point, opts *Options) (*Result, error) {
	opts = opts.orDefault()
	if err := cond.Validate(); err != nil {
		return nil, err
	}
	if err := fluid.Validate(); err != nil {
		return nil, err
	}
	if fluid.Phase != process.PhaseLiquid {
		return nil, fmt.Errorf("liquid sizing requires a liquid fluid, got %q: %w", fluid.Phase, process.ErrInvalidFluidData)
	}
	if coeffs.FL <= 0 {
		return nil, fmt.Errorf("pressure recovery factor %.4g must be positive: %w", coeffs.FL, valve.ErrInvalidCurve)
	}

	p1 := cond.P1 * units.BarToPsi
	p2 := cond.P2 * units.BarToPsi
	pv := fluid.VaporPressure * units.BarToPsi
	pc := fluid.CriticalPressure * units.BarToPsi
	gpm := cond.FlowRate * units.M3hToGpm
	sg := fluid.SpecificGravity()

	ff := FFFactor(pv, pc)
	dp := p1 - p2
	dpChoked := coeffs.FL * coeffs.FL * (p1 - ff*pv)
	dpSizing := math.Min(dp, dpChoked)
	if dpSizing <= 0 {
		return nil, fmt.Errorf("sizing pressure drop %.4g psi must be positive: %w", dpSizing, process.ErrInvalidProcessData)
	}

	cvBasic := gpm * math.Sqrt(sg/dpSizing)

	res := &Result{
		CvBasic:  cvBasic,
		FF:       ff,
		FR:       1.0,
		Regime:   RegimeSubsonic,
		DPSizing: dpSizing / units.BarToPsi,
		DPChoked: dpChoked / units.BarToPsi,
		Flashing: cond.P2 < fluid.VaporPressure,
	}

	if opts.SkipViscous {
		res.Cv = cvBasic
		res.Converged = true
		res.ViscousRegime = ViscousTurbulent
	} else {
		tr := correctViscous(cvBasic, gpm, sg, fluid.Viscosity, vtype, opts)
		res.Cv = tr.cv
		res.FR = tr.fr
		res.Reynolds = tr.rev
		res.ViscousRegime = tr.regime
		res.Converged = tr.converged
		res.Iterations = tr.iterations
		if !tr.converged {
			res.Diagnostics.Warn("convergence",
				"viscous correction did not converge in %d iterations, using last iterate Cv %.4g", tr.iterations, tr.cv)
		}
		if advice := viscousAdvice(tr.rev, tr.fr); advice != "" {
			res.Diagnostics.Info("viscosity", "%s", advice)
		}
	}

	if dp >= dpChoked {
		res.Regime = RegimeChoked
		res.Diagnostics.Add(process.SeverityWarning, "choked",
			fmt.Sprintf("pressure drop %.4g bar exceeds the choked limit %.4g bar", dp/units.BarToPsi, res.DPChoked),
			"size on the choked drop, additional drop yields no extra flow")
	}
	if res.Flashing {
		res.Diagnostics.Add(process.SeverityWarning, "flashing",
			"outlet pressure below vapor pressure, flashing service",
			"use hardened trim and verify downstream piping for two-phase flow")
	}
	return res, nil
}
