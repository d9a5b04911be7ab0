package actuator

import (
	"github.com/openvalve/go-sizing/units"
	"github.com/openvalve/go-sizing/valve"
)

// springRates maps effective diaphragm area (in2) to typical spring
// rate (lbf/in), smallest casing that covers the load.
var (
	springAreas = []float64{25, 50, 100, 200, 400}
	springRates = []float64{150, 300, 600, 1200, 2400}
)

const (
	supplyPressure = 60  // psi available to the diaphragm
	springPreload  = 0.2 // fraction of full-stroke force
)

// analyzeSpring sizes the fail-safe spring for a diaphragm actuator.
// governing is the thrust demand in lbf, stroke in inches; the
// analysis is reported in SI.
func analyzeSpring(governing, stroke float64, fail valve.FailAction) *SpringAnalysis {
	area := governing / supplyPressure
	rate := springRates[len(springRates)-1]
	for i, a := range springAreas {
		if area <= a {
			rate = springRates[i]
			break
		}
	}

	maxForce := rate * stroke
	minForce := maxForce * springPreload

	// The spring assists a fail-close stroke and opposes closing on
	// fail-open builds.
	available := maxForce
	if fail == valve.FailOpen {
		available = -maxForce
	}

	return &SpringAnalysis{
		Rate:      rate * units.LbfToNewton / units.InchToMm,
		Stroke:    stroke * units.InchToMm,
		MaxForce:  maxForce * units.LbfToNewton,
		MinForce:  minForce * units.LbfToNewton,
		Available: available * units.LbfToNewton,
		Energy:    0.5 * rate * stroke * stroke * units.LbfToNewton * units.InchToMm / 1000,
	}
}
