// Package cavitation implements the ISA RP75.23 sigma method for
// liquid service. The operating sigma (P1 - Pv)/ΔP is measured against
// a threshold ladder derived from the trim's pressure recovery (FL)
// and cavitation index (Kc) coefficients, so travel-dependent
// coefficients shift the thresholds with opening.
package cavitation

import (
	"fmt"
	"math"

	"github.com/openvalve/go-sizing/process"
	"github.com/openvalve/go-sizing/valve"
)

// epsilon keeps the damage threshold strictly above the choking
// threshold when curve extrapolation pushes 1/Kc below 1/FL².
const epsilon = 0.05

// Analyze computes the operating sigma and classifies the cavitation
// risk for liquid service. Gas service has no cavitation mechanism and
// is rejected.
func Analyze(cond process.Conditions, fluid process.Fluid, coeffs valve.Point, opts *Options) (*Result, error) {
	if opts == nil {
		opts = &Options{}
	}
	if err := cond.Validate(); err != nil {
		return nil, err
	}
	if err := fluid.Validate(); err != nil {
		return nil, err
	}
	if fluid.Phase != process.PhaseLiquid {
		return nil, fmt.Errorf("cavitation analysis applies to liquid service, got %q: %w", fluid.Phase, process.ErrInvalidFluidData)
	}
	if coeffs.FL <= 0 || coeffs.Kc <= 0 {
		return nil, fmt.Errorf("FL %.4g and Kc %.4g must be positive: %w", coeffs.FL, coeffs.Kc, valve.ErrInvalidCurve)
	}

	sigma := math.Max(0, (cond.P1-fluid.VaporPressure)/cond.DP())

	res := &Result{Sigma: sigma, SigmaMV: opts.SigmaMV}
	res.SigmaCh = 1 / (coeffs.FL * coeffs.FL)
	res.SigmaD = math.Max(1/coeffs.Kc, res.SigmaCh*(1+epsilon))
	res.SigmaC = res.SigmaD * 4 / 3
	res.SigmaI = res.SigmaD * 2

	switch {
	case sigma >= res.SigmaI:
		res.Level = LevelNone
		res.Risk = RiskLow
		res.Description = "no cavitation occurs"
	case sigma >= res.SigmaC:
		res.Level = LevelIncipient
		res.Risk = RiskLow
		res.Description = "cavitation just detectable, no damage expected"
	case sigma >= res.SigmaD:
		res.Level = LevelDamage
		res.Risk = RiskHigh
		res.Description = "cavitation damage may begin"
	default:
		res.Level = LevelChoking
		res.Risk = RiskCritical
		res.Description = "severe cavitation, significant damage risk"
	}
	res.TrimRecommendation = trimRecommendation(res.Level)

	if sigma < res.SigmaI {
		res.MarginToDamage = sigma - res.SigmaD
	}
	if opts.SigmaMV > 0 && sigma < opts.SigmaMV {
		res.VibrationExceeded = true
		res.Risk = RiskCritical
		res.Description = "extreme cavitation, valve damage likely"
		res.TrimRecommendation = "Multi-stage anti-cavitation valve required. Single-stage valve not recommended."
	}
	return res, nil
}

func trimRecommendation(level Level) string {
	switch level {
	case LevelNone:
		return "Standard trim materials acceptable."
	case LevelIncipient:
		return "Standard trim acceptable. Monitor for changes in service conditions."
	case LevelDamage:
		return "Hardened trim materials recommended (e.g. Stellite overlay). Consider anti-cavitation design."
	default:
		return "Hardened trim essential. Multi-stage pressure reduction recommended. Consider valve redesign."
	}
}
