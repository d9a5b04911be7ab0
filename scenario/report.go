package scenario

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/openvalve/go-sizing/cavitation"
	"github.com/openvalve/go-sizing/process"
	"github.com/openvalve/go-sizing/valve"
)

// SchemaVersion identifies the report payload layout.
const SchemaVersion = "1.0.0"

// Report aggregates the envelope validation outcome for one valve.
// Passed requires the normal and design scenarios in range and no
// scenario in choking cavitation.
type Report struct {
	ID             string               `json:"id"`
	SchemaVersion  string               `json:"schemaVersion"`
	Valve          valve.Selection      `json:"valve"`
	RatedCv        float64              `json:"ratedCv"`
	Scenarios      []Entry              `json:"scenarios"`
	Passed         bool                 `json:"passed"`
	Summary        string               `json:"summary"`
	Characteristic valve.Characteristic `json:"characteristic"`
	Rangeability   *Rangeability        `json:"rangeability,omitempty"`
	Authority      *Authority           `json:"authority,omitempty"`
	Diagnostics    process.Diagnostics  `json:"diagnostics,omitempty"`
}

// Rangeability compares the smallest controllable Cv of the trim
// against the smallest Cv the envelope demands.
type Rangeability struct {
	Inherent          float64 `json:"inherent"`
	RatedCv           float64 `json:"ratedCv"`
	MinControllableCv float64 `json:"minControllableCv"`
	MinimumDemandCv   float64 `json:"minimumDemandCv"`
	Controllable      bool    `json:"controllable"`
}

// Authority grades installed controllability from the valve share of
// the total system pressure drop.
type Authority struct {
	Value          float64 `json:"value"`
	Assessment     string  `json:"assessment"`
	Recommendation string  `json:"recommendation"`
}

func (v *Validator) assemble(cond process.Conditions, sel valve.Selection, entries []Entry, ratedCv, inherent float64, diags process.Diagnostics) *Report {
	report := &Report{
		ID:             uuid.NewString(),
		SchemaVersion:  SchemaVersion,
		Valve:          sel,
		RatedCv:        ratedCv,
		Scenarios:      entries,
		Characteristic: valve.RecommendCharacteristic(sel.Type, cond.P1, cond.DP()),
		Diagnostics:    diags,
	}

	passed := true
	var minDemand float64
	for i := range entries {
		e := &entries[i]
		if e.Error != "" {
			report.Diagnostics.Critical("scenario", "%s scenario failed: %s", e.Name, e.Error)
		}
		if e.Name == "normal" || e.Name == "design" {
			if e.Error != "" || !e.InRange {
				passed = false
			}
		}
		if e.Cavitation != nil && e.Cavitation.Level == cavitation.LevelChoking {
			passed = false
			report.Diagnostics.Critical("cavitation", "%s scenario operates in choking cavitation (sigma %.2f)", e.Name, e.Cavitation.Sigma)
		}
		if e.Name == "minimum" && e.Sizing != nil {
			minDemand = e.Sizing.Cv
		}
	}
	report.Passed = passed
	report.Summary = buildSummary(entries)

	if inherent > 0 {
		r := &Rangeability{
			Inherent:          inherent,
			RatedCv:           ratedCv,
			MinControllableCv: ratedCv / inherent,
			MinimumDemandCv:   minDemand,
		}
		r.Controllable = minDemand >= r.MinControllableCv
		if !r.Controllable && minDemand > 0 {
			report.Diagnostics.Warn("rangeability", "minimum scenario Cv %.2f is below minimum controllable Cv %.2f", minDemand, r.MinControllableCv)
		}
		report.Rangeability = r
	}

	if cond.SystemDP > 0 {
		report.Authority = AssessAuthority(cond.DP(), cond.SystemDP)
	}
	return report
}

// buildSummary groups scenario outcomes by severity, worst first.
// Entries whose sizing never completed are excluded; their detail
// lives in Diagnostics.
func buildSummary(entries []Entry) string {
	var critical, warnings, acceptable []string
	for _, e := range entries {
		if e.Sizing == nil {
			continue
		}
		item := fmt.Sprintf("%s: %.1f%%", e.Name, e.ImpliedOpening)
		switch e.Status {
		case StatusUndersized:
			critical = append(critical, item)
		case StatusOversized:
			warnings = append(warnings, item)
		default:
			acceptable = append(acceptable, item)
		}
	}
	var parts []string
	if len(critical) > 0 {
		parts = append(parts, "CRITICAL: Undersized for "+strings.Join(critical, ", "))
	}
	if len(warnings) > 0 {
		parts = append(parts, "WARNING: Oversized for "+strings.Join(warnings, ", "))
	}
	if len(acceptable) > 0 {
		parts = append(parts, "ACCEPTABLE: "+strings.Join(acceptable, ", "))
	}
	if len(parts) == 0 {
		return "No validation performed"
	}
	return strings.Join(parts, "; ")
}

// AssessAuthority computes valve authority, the valve pressure drop
// over the total system drop at normal flow.
func AssessAuthority(valveDP, systemDP float64) *Authority {
	if systemDP <= 0 {
		return nil
	}
	a := &Authority{Value: valveDP / systemDP}
	switch {
	case a.Value >= 0.5:
		a.Assessment = "Excellent - Good control throughout range"
	case a.Value >= 0.3:
		a.Assessment = "Good - Acceptable control characteristics"
	case a.Value >= 0.2:
		a.Assessment = "Fair - Some control degradation at low flows"
	default:
		a.Assessment = "Poor - Significant control problems expected"
	}
	if a.Value < 0.3 {
		a.Recommendation = "Increase valve pressure drop or reduce system losses"
	} else {
		a.Recommendation = "Authority is adequate"
	}
	return a
}

// ServiceProfile describes the duty used to recommend a flow margin
// for sizing. Unknown service or criticality values take a cautious
// middle adjustment; unknown expansion adds nothing.
type ServiceProfile struct {
	Service     string `json:"service"`     // continuous, batch, emergency, safety
	Criticality string `json:"criticality"` // low, medium, high, critical
	Expansion   string `json:"expansion"`   // none, moderate, significant
}

// SizingFactor is a recommended multiplier on the computed Cv.
type SizingFactor struct {
	Factor        float64 `json:"factor"`
	Category      string  `json:"category"`
	Justification string  `json:"justification"`
}

const sizingFactorBase = 1.1

var (
	serviceAdders = map[string]float64{
		"continuous": 0.0,
		"batch":      0.1,
		"emergency":  0.5,
		"safety":     0.8,
	}
	criticalityAdders = map[string]float64{
		"low":      0.0,
		"medium":   0.1,
		"high":     0.2,
		"critical": 0.4,
	}
	expansionAdders = map[string]float64{
		"none":        0.0,
		"moderate":    0.2,
		"significant": 0.4,
	}
)

// RecommendSizingFactor builds the sizing margin from additive duty
// adjustments, bounded to [1.1, 2.0] and rounded to two decimals.
func RecommendSizingFactor(profile ServiceProfile) SizingFactor {
	service := adder(serviceAdders, profile.Service, 0.1)
	criticality := adder(criticalityAdders, profile.Criticality, 0.1)
	expansion := adder(expansionAdders, profile.Expansion, 0.0)

	total := sizingFactorBase + service + criticality + expansion
	total = math.Max(1.1, math.Min(2.0, total))
	total = math.Round(total*100) / 100

	category := "Standard"
	if total > 1.5 {
		category = "Conservative"
	} else if total > 1.25 {
		category = "Moderate"
	}
	return SizingFactor{
		Factor:        total,
		Category:      category,
		Justification: fmt.Sprintf("Base: %.1f, Service: +%.1f, Criticality: +%.1f, Expansion: +%.1f", sizingFactorBase, service, criticality, expansion),
	}
}

func adder(m map[string]float64, key string, fallback float64) float64 {
	if v, ok := m[key]; ok {
		return v
	}
	return fallback
}
