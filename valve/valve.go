// Package valve models the valve selection and its travel-dependent
// coefficient curves. Calculators consume coefficients only through
// interpolation at a given opening; curves are never mutated.
package valve

import "fmt"

// Type is the closed set of valve body types. Each type selects a
// sizing strategy: linear-stem force sizing for globe valves, rotary
// torque sizing for segmented-ball and butterfly valves.
type Type string

const (
	Globe         Type = "globe"
	BallSegmented Type = "ball-segmented"
	Butterfly     Type = "butterfly"
)

// Rotary reports whether the type uses rotary (quarter-turn) motion.
func (t Type) Rotary() bool {
	return t == BallSegmented || t == Butterfly
}

// FailAction is the valve position on loss of actuator power.
type FailAction string

const (
	FailClose FailAction = "fail-close"
	FailOpen  FailAction = "fail-open"
)

// Selection identifies the candidate valve under evaluation. It holds
// a reference to a coefficient curve; when Curve is nil the catalog
// curve for Type/Style applies.
type Selection struct {
	Type       Type       `json:"type"`
	Style      string     `json:"style"`
	Size       int        `json:"size"` // Nominal size (inches)
	Vendor     string     `json:"vendor,omitempty"`
	Series     string     `json:"series,omitempty"`
	Opening    float64    `json:"opening"` // Travel percent, 0 < x <= 100
	FailAction FailAction `json:"failAction,omitempty"`
	Curve      *Curve     `json:"-"`
}

// Validate checks the selection invariants.
func (s Selection) Validate() error {
	switch s.Type {
	case Globe, BallSegmented, Butterfly:
	default:
		return fmt.Errorf("unknown valve type %q: %w", s.Type, ErrInvalidSelection)
	}
	if s.Size <= 0 {
		return fmt.Errorf("nominal size %d must be positive: %w", s.Size, ErrInvalidSelection)
	}
	if s.Opening <= 0 || s.Opening > 100 {
		return fmt.Errorf("opening %.4g%% must be in (0, 100]: %w", s.Opening, ErrInvalidSelection)
	}
	return nil
}

// Characteristic is the inherent flow characteristic of a valve trim.
type Characteristic string

const (
	EqualPercentage         Characteristic = "equal-percentage"
	ModifiedEqualPercentage Characteristic = "modified-equal-percentage"
	Linear                  Characteristic = "linear"
)

// RecommendCharacteristic suggests an inherent characteristic from the
// valve type and the share of system pressure drop taken by the valve.
// High drop ratios favor equal-percentage trims; low ratios favor
// linear ones.
func RecommendCharacteristic(t Type, p1, dp float64) Characteristic {
	ratio := 0.5
	if p1 > 0 {
		ratio = dp / p1
	}
	switch t {
	case Globe:
		if ratio > 0.4 {
			return EqualPercentage
		}
		if ratio > 0.2 {
			return ModifiedEqualPercentage
		}
		return Linear
	case BallSegmented:
		// Segmented balls are inherently near equal-percentage.
		return EqualPercentage
	default:
		if ratio > 0.3 {
			return EqualPercentage
		}
		return Linear
	}
}
