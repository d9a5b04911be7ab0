// Package noise predicts valve sound pressure levels with two
// interchangeable strategies: a fast empirical estimate and the IEC
// 60534-8-3 mechanical stream power model. Both produce the same
// result shape so callers can swap methods without code changes.
package noise

import (
	"github.com/openvalve/go-sizing/flow"
	"github.com/openvalve/go-sizing/process"
	"github.com/openvalve/go-sizing/valve"
)

// Predictor is a noise prediction strategy. Implementations are pure
// and safe for concurrent use.
type Predictor interface {
	// Predict estimates the external sound pressure level for a sized
	// valve at the given service point.
	Predict(cond process.Conditions, fluid process.Fluid, sizing *flow.Result, sel valve.Selection) (*Result, error)
	// Name identifies the method for reports.
	Name() string
}

// Regime labels the acoustic source mechanism the prediction assumed.
type Regime string

const (
	RegimeFlashing      Regime = "flashing"
	RegimeCavitating    Regime = "cavitating"
	RegimeNonCavitating Regime = "non-cavitating"
	RegimeChoked        Regime = "choked"
	RegimeSubsonic      Regime = "subsonic"
)

// Result is the outcome of one noise prediction. The intermediate
// acoustic terms are populated by the IEC method only.
type Result struct {
	SPL    float64 `json:"spl"` // dBA at 1 m
	Method string  `json:"method"`
	Regime Regime  `json:"regime,omitempty"`

	StreamPower        float64 `json:"streamPower,omitempty"`        // W
	AcousticEfficiency float64 `json:"acousticEfficiency,omitempty"` //
	SoundPower         float64 `json:"soundPower,omitempty"`         // dB re 1 pW
	TransmissionLoss   float64 `json:"transmissionLoss,omitempty"`   // dB
	PeakFrequency      float64 `json:"peakFrequency,omitempty"`      // Hz
	MachNumber         float64 `json:"machNumber,omitempty"`
	SpeedOfSound       float64 `json:"speedOfSound,omitempty"` // m/s

	Recommendation string `json:"recommendation"`
}

// ControlRecommendations lists noise control measures for a predicted
// level, from standard design practice bands.
func ControlRecommendations(spl float64, phase process.Phase) []string {
	var recs []string
	switch {
	case spl > 110:
		recs = append(recs,
			"CRITICAL: Extreme noise level - immediate action required",
			"Multi-stage pressure reduction valve strongly recommended",
			"Acoustic enclosure or building isolation required",
			"Hearing protection mandatory in area")
	case spl > 95:
		recs = append(recs,
			"HIGH: Significant noise reduction measures needed",
			"Low-noise trim or multi-path design recommended",
			"Acoustic lagging on downstream piping",
			"Consider relocating valve to remote area")
	case spl > 85:
		recs = append(recs,
			"MODERATE: Some noise control measures advisable",
			"Standard low-noise trim may be sufficient",
			"Monitor for community noise complaints",
			"Consider operational time restrictions")
	default:
		recs = append(recs, "ACCEPTABLE: Standard valve design suitable")
	}
	if spl > 85 {
		if phase == process.PhaseGas {
			recs = append(recs, "Consider downstream silencer for gas service")
		} else {
			recs = append(recs, "Verify cavitation control to reduce liquid noise")
		}
	}
	return recs
}

// operatingSigma is the service cavitation index used by both methods
// to pick the liquid source mechanism.
func operatingSigma(cond process.Conditions, fluid process.Fluid) float64 {
	dp := cond.DP()
	if dp <= 0 {
		return 0
	}
	return (cond.P1 - fluid.VaporPressure) / dp
}
