// Package scenario validates one selected valve across its operating
// envelope. The full sizing, cavitation, and noise pipeline re-runs at
// five fixed flow scenarios with the valve and opening held constant;
// the point is to prove the selection, not to re-optimize it per case.
package scenario

import (
	"github.com/openvalve/go-sizing/cavitation"
	"github.com/openvalve/go-sizing/flow"
	"github.com/openvalve/go-sizing/noise"
)

// Scenario is one point of the operating envelope, a named multiple of
// the declared normal flow.
type Scenario struct {
	Name   string  `json:"name"`
	Factor float64 `json:"factor"`
}

// Envelope returns the fixed scenario set in evaluation order.
func Envelope() []Scenario {
	return []Scenario{
		{Name: "minimum", Factor: 0.3},
		{Name: "normal", Factor: 1.0},
		{Name: "design", Factor: 1.1},
		{Name: "maximum", Factor: 1.25},
		{Name: "emergency", Factor: 1.5},
	}
}

// Status classifies the implied opening against the control band.
type Status string

const (
	StatusAcceptable Status = "Acceptable"
	StatusOversized  Status = "Oversized"
	StatusUndersized Status = "Undersized"
)

// Entry is the validation outcome for one scenario.
type Entry struct {
	Name     string  `json:"name"`
	Factor   float64 `json:"factor"`
	FlowRate float64 `json:"flowRate"`

	Sizing     *flow.Result       `json:"sizing,omitempty"`
	Cavitation *cavitation.Result `json:"cavitation,omitempty"`
	Noise      *noise.Result      `json:"noise,omitempty"`

	// ImpliedOpening is the travel percent the scenario demand would
	// need on the rated capacity.
	ImpliedOpening float64 `json:"impliedOpening"`
	InRange        bool    `json:"inRange"`
	Status         Status  `json:"status,omitempty"`

	// Error records a scenario whose pipeline could not complete; the
	// remaining scenarios still run.
	Error string `json:"error,omitempty"`
}
