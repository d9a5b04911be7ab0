package actuator

import (
	"math"

	"github.com/openvalve/go-sizing/process"
	"github.com/openvalve/go-sizing/units"
	"github.com/openvalve/go-sizing/valve"
)

// Geometry holds the trim dimensions that set actuator loads, in
// inches. Rotary torque works from the nominal size directly and
// ignores it.
type Geometry struct {
	SeatDiameter float64 `json:"seatDiameter"`
	StemDiameter float64 `json:"stemDiameter"`
	Stroke       float64 `json:"stroke"`
}

// stemSizes maps nominal valve size to typical stem diameter. Sizes
// between entries take the next smaller stem; sizes past the table,
// the largest.
var (
	stemSizes     = []int{1, 2, 3, 4, 6, 8}
	stemDiameters = []float64{0.5, 0.75, 1.0, 1.25, 1.5, 2.0}
)

func stemDiameter(size int) float64 {
	d := stemDiameters[0]
	for i, s := range stemSizes {
		if size < s {
			break
		}
		d = stemDiameters[i]
	}
	return d
}

// DefaultGeometry derives trim dimensions from the nominal size: seat
// bore at line size, stem from the standard table, quarter-of-size
// stroke.
func DefaultGeometry(sel valve.Selection) Geometry {
	size := float64(sel.Size)
	return Geometry{
		SeatDiameter: size,
		StemDiameter: stemDiameter(sel.Size),
		Stroke:       0.25 * size,
	}
}

const seatingStress = 50 // psi across the seat ring for tight shutoff

// sizeLinear computes the thrust demand for a globe valve. All terms
// are computed in lbf from psi pressures, converted to newtons, then
// factored.
func sizeLinear(sel valve.Selection, geom Geometry, cond process.Conditions, opts *Options, atype Type, diags *process.Diagnostics) (*Result, error) {
	p1 := cond.P1 * units.BarToPsi
	p2 := cond.P2 * units.BarToPsi
	dp := p1 - p2

	seatArea := math.Pi * math.Pow(geom.SeatDiameter/2, 2)
	stemArea := math.Pi * math.Pow(geom.StemDiameter/2, 2)

	unbalanced := seatArea * dp
	stem := stemArea * p1
	packing := 0.15 * stem
	seatLoad := seatArea * seatingStress
	operating := unbalanced + stem + packing
	governing := math.Max(operating, seatLoad)

	forces := &ForceBreakdown{
		Unbalanced: unbalanced * units.LbfToNewton,
		Stem:       stem * units.LbfToNewton,
		Packing:    packing * units.LbfToNewton,
		SeatLoad:   seatLoad * units.LbfToNewton,
		Operating:  operating * units.LbfToNewton,
		Governing:  governing * units.LbfToNewton,
	}
	forces.Net = forces.Governing

	var spring *SpringAnalysis
	if atype == SpringDiaphragm {
		fail := sel.FailAction
		if fail == "" {
			fail = valve.FailClose
			diags.Info("spring", "fail action not specified, assuming fail-close spring")
		}
		spring = analyzeSpring(governing, geom.Stroke, fail)
		net := forces.Governing - spring.Available
		forces.Net = math.Max(net, forces.Governing)
	}

	sf := resolveSafetyFactor(atype, opts.FailCritical, opts.SafetyFactor, diags)
	required := forces.Net * sf

	res := &Result{
		RequiredForce:  required,
		SafetyFactor:   sf,
		Forces:         forces,
		Spring:         spring,
		Recommendation: linearRecommendation(atype, required, sf),
	}
	return res, checkMargin(res, opts.RatedForce, required, "N", diags)
}
