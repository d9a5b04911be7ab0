package flow

import (
	"fmt"
	"math"

	"github.com/openvalve/go-sizing/valve"
)

// TurbulentReynolds is the valve Reynolds number above which flow is
// fully turbulent and no viscous correction applies.
const TurbulentReynolds = 10000

// Control points of the IEC 60534-2-1 correction curve for a standard
// globe trim. Manufacturer-specific curves supersede these when known.
var (
	revPoints = []float64{10, 20, 40, 60, 100, 200, 400, 600, 1000, 2000, 4000, 6000, 10000, 20000}
	frPoints  = []float64{0.15, 0.22, 0.35, 0.45, 0.60, 0.75, 0.85, 0.90, 0.95, 0.98, 0.99, 1.00, 1.00, 1.00}
)

// ReynoldsNumber returns the valve Reynolds number Rev for liquid flow
// with Q in gpm and viscosity in cP. Non-positive Cv or viscosity is
// treated as fully turbulent.
func ReynoldsNumber(cv, gpm, viscosity, sg float64) float64 {
	if cv <= 0 || viscosity <= 0 {
		return TurbulentReynolds
	}
	rev := 1360 * gpm * sg / (cv * viscosity)
	return math.Max(0, rev)
}

// reynoldsScale maps a valve type onto the correction curve family.
// Rotary styles have wider flow passages and stay turbulent to lower
// valve Reynolds numbers than a globe trim.
func reynoldsScale(t valve.Type) float64 {
	switch t {
	case valve.BallSegmented:
		return 1.5
	case valve.Butterfly:
		return 2.0
	default:
		return 1.0
	}
}

// ComputeFR returns the Reynolds correction factor FR in (0, 1] for a
// valve Reynolds number and valve type. At or above the turbulence
// threshold FR is exactly 1.
func ComputeFR(rev float64, t valve.Type) float64 {
	rev *= reynoldsScale(t)
	if rev >= TurbulentReynolds {
		return 1.0
	}
	if rev < revPoints[0] {
		return frPoints[0]
	}
	fr, _ := valve.Interpolate(rev, revPoints, frPoints)
	return fr
}

// ViscousRegimeFor labels the flow regime for a valve Reynolds number.
func ViscousRegimeFor(rev float64) ViscousRegime {
	switch {
	case rev >= TurbulentReynolds:
		return ViscousTurbulent
	case rev >= 2000:
		return ViscousTransitional
	case rev >= 100:
		return ViscousLaminar
	default:
		return ViscousHighlyLaminar
	}
}

// viscousTrace records the state of the correction loop at exit.
type viscousTrace struct {
	cv         float64
	fr         float64
	rev        float64
	regime     ViscousRegime
	iterations int
	converged  bool
}

// correctViscous iterates the Reynolds correction to a fixed point:
// the corrected Cv changes the Reynolds number, which changes FR,
// which changes the corrected Cv. Each iterate restarts from the basic
// Cv so corrections never compound. On iteration exhaustion the last
// iterate is returned with converged false; callers surface that as a
// warning, not an error.
func correctViscous(cvBasic, gpm, sg, viscosity float64, t valve.Type, opts *Options) viscousTrace {
	cv := cvBasic
	tr := viscousTrace{cv: cvBasic, fr: 1.0, regime: ViscousTurbulent}
	for i := 1; i <= opts.ReynoldsMaxIters; i++ {
		rev := ReynoldsNumber(cv, gpm, viscosity, sg)
		fr := ComputeFR(rev, t)
		next := cvBasic / fr
		tr = viscousTrace{
			cv:         next,
			fr:         fr,
			rev:        rev,
			regime:     ViscousRegimeFor(rev),
			iterations: i,
		}
		if math.Abs(next-cv)/cv < opts.ReynoldsTolerance {
			tr.converged = true
			return tr
		}
		cv = next
	}
	return tr
}

// viscousAdvice phrases the effect of the correction for a diagnostic.
// Empty for fully turbulent flow.
func viscousAdvice(rev, fr float64) string {
	increase := (1/fr - 1) * 100
	switch {
	case rev >= TurbulentReynolds:
		return ""
	case rev >= 2000:
		return fmt.Sprintf("flow in transition zone, Cv increased by %.1f%% for viscous effects", increase)
	case rev >= 100:
		return fmt.Sprintf("laminar flow, Cv increased by %.1f%%, consider a larger valve or heating the fluid", increase)
	default:
		return fmt.Sprintf("highly viscous flow, Cv increased by %.1f%%, reduce viscosity or use a larger valve", increase)
	}
}
