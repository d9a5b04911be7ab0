package actuator

import "github.com/openvalve/go-sizing/process"

// Type identifies the actuator construction. Linear types drive globe
// valves, rotary types drive quarter-turn valves; hydraulic cylinders
// are built for either motion.
type Type string

const (
	SpringDiaphragm Type = "spring-diaphragm"
	Piston          Type = "piston"
	ElectricLinear  Type = "electric-linear"
	PneumaticRotary Type = "pneumatic-rotary"
	ElectricRotary  Type = "electric-rotary"
	Hydraulic       Type = "hydraulic"
)

func (t Type) linear() bool {
	switch t {
	case SpringDiaphragm, Piston, ElectricLinear, Hydraulic:
		return true
	}
	return false
}

func (t Type) rotary() bool {
	switch t {
	case PneumaticRotary, ElectricRotary, Hydraulic:
		return true
	}
	return false
}

// pistonType actuators hold position by supply pressure alone and may
// run at the lower end of the safety factor policy.
func (t Type) pistonType() bool {
	return t == Piston || t == Hydraulic
}

// Options select the actuator and its rating. The zero value picks the
// default type for the valve motion with the per-type safety factor
// and skips the margin check.
type Options struct {
	Type Type `json:"type,omitempty"`
	// SafetyFactor overrides the per-type default. Values outside the
	// policy bounds are clamped with a diagnostic.
	SafetyFactor float64 `json:"safetyFactor,omitempty"`
	// RatedForce / RatedTorque are the candidate actuator's nameplate
	// output in N / Nm. Zero skips the margin check.
	RatedForce  float64 `json:"ratedForce,omitempty"`
	RatedTorque float64 `json:"ratedTorque,omitempty"`
	// FailCritical marks service where loss of motive power must not
	// strand the valve; it raises the safety factor floor.
	FailCritical bool `json:"failCritical,omitempty"`
}

func (o *Options) orDefault() *Options {
	if o == nil {
		return &Options{}
	}
	return o
}

// ForceBreakdown itemizes the linear thrust terms in newtons.
type ForceBreakdown struct {
	Unbalanced float64 `json:"unbalanced"`
	Stem       float64 `json:"stem"`
	Packing    float64 `json:"packing"`
	SeatLoad   float64 `json:"seatLoad"`
	Operating  float64 `json:"operating"`
	Governing  float64 `json:"governing"`
	// Net includes the spring contribution at the worst travel extreme.
	Net float64 `json:"net"`
}

// TorqueBreakdown itemizes the rotary torque terms in newton-meters.
type TorqueBreakdown struct {
	Factor    float64 `json:"factor"` // ft-lbf per psi per inch of size
	Operating float64 `json:"operating"`
	Breakaway float64 `json:"breakaway"`
	Bearing   float64 `json:"bearing"`
	Total     float64 `json:"total"`
}

// SpringAnalysis reports the fail-safe spring range for diaphragm
// actuators.
type SpringAnalysis struct {
	Rate     float64 `json:"rate"`     // N/mm
	Stroke   float64 `json:"stroke"`   // mm
	MaxForce float64 `json:"maxForce"` // N at full compression
	MinForce float64 `json:"minForce"` // N preload
	// Available is the spring force helping the fail action; negative
	// when the spring opposes closing.
	Available float64 `json:"available"`
	Energy    float64 `json:"energy"` // J stored at full stroke
}

// Result is the actuator sizing outcome. Exactly one of RequiredForce
// and RequiredTorque is nonzero, matching the valve motion.
type Result struct {
	RequiredForce  float64 `json:"requiredForce,omitempty"`  // N
	RequiredTorque float64 `json:"requiredTorque,omitempty"` // Nm
	SafetyFactor   float64 `json:"safetyFactor"`

	Forces  *ForceBreakdown  `json:"forces,omitempty"`
	Torques *TorqueBreakdown `json:"torques,omitempty"`
	Spring  *SpringAnalysis  `json:"spring,omitempty"`

	// Rated echoes the nameplate capacity when supplied; Margin is
	// rated minus required in the same unit.
	Rated  float64 `json:"rated,omitempty"`
	Margin float64 `json:"margin,omitempty"`

	Recommendation string              `json:"recommendation"`
	Diagnostics    process.Diagnostics `json:"diagnostics,omitempty"`
}
