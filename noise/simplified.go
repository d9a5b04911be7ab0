package noise

import (
	"math"

	"github.com/openvalve/go-sizing/flow"
	"github.com/openvalve/go-sizing/process"
	"github.com/openvalve/go-sizing/valve"
)

// simplified is the empirical screening model. Liquid noise is driven
// by the cavitation regime, gas noise by a velocity proxy; both scale
// with flow capacity.
type simplified struct{}

func (s *simplified) Name() string { return "Simplified Empirical Estimation" }

func (s *simplified) Predict(cond process.Conditions, fluid process.Fluid, sizing *flow.Result, sel valve.Selection) (*Result, error) {
	if sizing == nil {
		return nil, ErrInsufficientData
	}
	dp := cond.DP()
	cv := sizing.Cv

	var base float64
	var regime Regime
	if fluid.Phase == process.PhaseLiquid {
		sigma := operatingSigma(cond, fluid)
		switch {
		case sizing.Flashing:
			base = 85
			regime = RegimeFlashing
		case sigma < 1.5:
			base = 85
			regime = RegimeCavitating
		case sigma < 2.0:
			base = 75
			regime = RegimeCavitating
		default:
			base = 60
			regime = RegimeNonCavitating
		}
		base += 10 * math.Log10(math.Max(1, dp*cv))
	} else {
		machProxy := 0.1 + 0.8*(dp/cond.P1)
		base = 70 + 20*math.Log10(math.Max(1, machProxy*1000)) + 10*math.Log10(math.Max(1, cv))
		regime = RegimeSubsonic
		if sizing.Choked() {
			regime = RegimeChoked
		}
	}

	base += bodyTransmission(sel.Type)
	base += pipeWallCorrection
	spl := clampSPL(base, 50, 120)

	var rec string
	switch {
	case spl > 110:
		rec = "SIMPLIFIED ESTIMATE: Extreme noise level predicted. Professional IEC 60534-8-3 analysis required."
	case spl > 85:
		rec = "SIMPLIFIED ESTIMATE: High noise level predicted. Consider low-noise trim or acoustic treatment."
	default:
		rec = "SIMPLIFIED ESTIMATE: Acceptable noise level predicted. Standard trim likely suitable."
	}

	return &Result{
		SPL:            spl,
		Method:         s.Name(),
		Regime:         regime,
		Recommendation: rec,
	}, nil
}

// pipeWallCorrection accounts for attenuation through a standard
// schedule pipe wall.
const pipeWallCorrection = -5

// bodyTransmission is the valve body transmission loss relative to an
// unshielded source. Heavier rotary bodies attenuate more.
func bodyTransmission(t valve.Type) float64 {
	switch t {
	case valve.Globe:
		return -5
	case valve.BallSegmented:
		return -10
	case valve.Butterfly:
		return -15
	default:
		return 0
	}
}

func clampSPL(spl, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, spl))
}
