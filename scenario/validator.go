package scenario

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/openvalve/go-sizing/catalog"
	"github.com/openvalve/go-sizing/cavitation"
	"github.com/openvalve/go-sizing/flow"
	"github.com/openvalve/go-sizing/noise"
	"github.com/openvalve/go-sizing/process"
	"github.com/openvalve/go-sizing/valve"
)

// Validator runs the envelope validation. Configure with the With
// methods, then call Validate; the zero band is 20 to 80 percent with
// simplified noise.
type Validator struct {
	store     *catalog.Store
	predictor noise.Predictor
	flowOpts  *flow.Options
	band      [2]float64
	parallel  bool
}

// NewValidator creates a validator over the given reference catalog.
func NewValidator(store *catalog.Store) *Validator {
	return &Validator{
		store:     store,
		predictor: noise.Simplified(),
		band:      [2]float64{20, 80},
	}
}

// WithNoise sets the noise prediction method; nil skips noise.
func (v *Validator) WithNoise(p noise.Predictor) *Validator {
	v.predictor = p
	return v
}

// WithOptions sets the flow sizing options.
func (v *Validator) WithOptions(opts *flow.Options) *Validator {
	v.flowOpts = opts
	return v
}

// WithBand overrides the acceptable implied-opening band.
func (v *Validator) WithBand(lo, hi float64) *Validator {
	if lo > 0 && hi > lo {
		v.band = [2]float64{lo, hi}
	}
	return v
}

// WithParallel runs the five scenarios on separate goroutines. Output
// is identical either way.
func (v *Validator) WithParallel(parallel bool) *Validator {
	v.parallel = parallel
	return v
}

// Validate runs the full pipeline across the envelope and aggregates
// the outcome. Input validation failures are fatal; per-scenario
// calculation failures are recorded in their entries.
func (v *Validator) Validate(cond process.Conditions, fluid process.Fluid, sel valve.Selection) (*Report, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}
	if err := cond.Validate(); err != nil {
		return nil, err
	}
	if err := fluid.Validate(); err != nil {
		return nil, err
	}

	var diags process.Diagnostics

	curve, err := v.store.Resolve(sel)
	if err != nil {
		return nil, err
	}
	coeffs, clamped, err := curve.At(sel.Opening)
	if err != nil {
		return nil, err
	}
	if clamped {
		diags.Info("curve", "opening %.1f%% outside curve data, coefficients clamped", sel.Opening)
	}

	ratedCv, err := v.store.RatedCv(sel.Type, sel.Size)
	if err != nil {
		return nil, err
	}

	rangeability := curve.Rangeability
	var noiseCut float64
	if sel.Vendor != "" {
		series, err := v.store.Vendor(sel.Vendor, sel.Series)
		if err != nil {
			diags.Warn("vendor", "vendor data unavailable, using generic catalog: %v", err)
		} else {
			if !series.HasSize(sel.Size) {
				diags.Warn("vendor", "%s %s is not built in %d inch, capacity data extrapolated", series.Vendor, series.Name, sel.Size)
			}
			if series.CvMultiplier > 0 {
				ratedCv *= series.CvMultiplier
			}
			if series.Rangeability > 0 {
				rangeability = series.Rangeability
			}
			noiseCut = series.NoiseReduction
			if noiseCut > 0 {
				diags.Info("vendor", "%.0f dBA low-noise trim credit applied from %s %s", noiseCut, series.Vendor, series.Name)
			}
		}
	}

	scenarios := Envelope()
	entries := make([]Entry, len(scenarios))
	if v.parallel {
		var wg sync.WaitGroup
		var mu sync.Mutex
		for i, sc := range scenarios {
			wg.Add(1)
			go func(i int, sc Scenario) {
				defer wg.Done()
				entry := v.run(sc, cond, fluid, sel, coeffs, curve.SigmaMV, ratedCv, noiseCut)
				mu.Lock()
				entries[i] = entry
				mu.Unlock()
			}(i, sc)
		}
		wg.Wait()
	} else {
		for i, sc := range scenarios {
			entries[i] = v.run(sc, cond, fluid, sel, coeffs, curve.SigmaMV, ratedCv, noiseCut)
		}
	}

	for i := range entries {
		e := &entries[i]
		fields := log.Fields{
			"scenario": e.Name,
			"factor":   e.Factor,
			"flowRate": e.FlowRate,
			"status":   e.Status,
		}
		if e.Sizing != nil {
			fields["cv"] = e.Sizing.Cv
			fields["opening"] = e.ImpliedOpening
		}
		if e.Error != "" {
			fields["error"] = e.Error
		}
		log.WithFields(fields).Debug("scenario evaluated")
	}

	report := v.assemble(cond, sel, entries, ratedCv, rangeability, diags)
	log.WithFields(log.Fields{
		"report": report.ID,
		"valve":  sel.Type,
		"size":   sel.Size,
		"passed": report.Passed,
	}).Info("scenario validation complete")
	return report, nil
}

// run executes sizing, cavitation, and noise for one scenario.
func (v *Validator) run(sc Scenario, base process.Conditions, fluid process.Fluid, sel valve.Selection, coeffs valve.Point, sigmaMV, ratedCv, noiseCut float64) Entry {
	cond := base
	cond.FlowRate = base.FlowRate * sc.Factor

	entry := Entry{Name: sc.Name, Factor: sc.Factor, FlowRate: cond.FlowRate}

	var sizing *flow.Result
	var err error
	if fluid.Phase == process.PhaseLiquid {
		sizing, err = flow.SizeLiquid(cond, fluid, sel.Type, coeffs, v.flowOpts)
	} else {
		sizing, err = flow.SizeGas(cond, fluid, coeffs, v.flowOpts)
	}
	if err != nil {
		entry.Error = err.Error()
		return entry
	}
	entry.Sizing = sizing

	if fluid.Phase == process.PhaseLiquid {
		cav, err := cavitation.Analyze(cond, fluid, coeffs, &cavitation.Options{SigmaMV: sigmaMV})
		if err != nil {
			entry.Error = err.Error()
		} else {
			entry.Cavitation = cav
		}
	}

	if v.predictor != nil {
		spl, err := v.predictor.Predict(cond, fluid, sizing, sel)
		if err != nil {
			if entry.Error == "" {
				entry.Error = err.Error()
			}
		} else {
			if noiseCut > 0 {
				spl.SPL -= noiseCut
			}
			entry.Noise = spl
		}
	}

	entry.ImpliedOpening = sizing.Cv / ratedCv * 100
	switch {
	case entry.ImpliedOpening < v.band[0]:
		entry.Status = StatusOversized
	case entry.ImpliedOpening > v.band[1]:
		entry.Status = StatusUndersized
	default:
		entry.Status = StatusAcceptable
		entry.InRange = true
	}
	return entry
}
