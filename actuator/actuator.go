// Package actuator sizes valve actuators: thrust for linear globe
// valves, torque for quarter-turn ball and butterfly valves, with the
// industry safety factor policy and fail-safe spring analysis. Loads
// come from trim geometry and operating pressures, not from flow.
package actuator

import (
	"fmt"

	"github.com/openvalve/go-sizing/process"
	"github.com/openvalve/go-sizing/valve"
)

// Size computes the required actuator output for the selected valve at
// the given conditions. geom overrides the derived trim geometry; nil
// uses DefaultGeometry. When a rated capacity is supplied and falls
// short, the populated result returns alongside ErrInsufficientMargin.
func Size(sel valve.Selection, geom *Geometry, cond process.Conditions, opts *Options) (*Result, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}
	if err := cond.Validate(); err != nil {
		return nil, err
	}
	opts = opts.orDefault()

	var diags process.Diagnostics
	atype, err := motionType(sel, opts.Type, &diags)
	if err != nil {
		return nil, err
	}

	if sel.Type.Rotary() {
		res, err := sizeRotary(sel, cond, opts, atype, &diags)
		if res != nil {
			res.Diagnostics = diags
		}
		return res, err
	}

	g := DefaultGeometry(sel)
	if geom != nil {
		g = *geom
	}
	res, err := sizeLinear(sel, g, cond, opts, atype, &diags)
	if res != nil {
		res.Diagnostics = diags
	}
	return res, err
}

// motionType reconciles the requested actuator type with the valve
// motion, substituting the conventional default on a mismatch.
func motionType(sel valve.Selection, requested Type, diags *process.Diagnostics) (Type, error) {
	rotary := sel.Type.Rotary()
	if requested == "" {
		if rotary {
			return PneumaticRotary, nil
		}
		return SpringDiaphragm, nil
	}
	if !requested.linear() && !requested.rotary() {
		return "", fmt.Errorf("%q: %w", requested, ErrUnknownType)
	}
	if rotary && !requested.rotary() {
		diags.Add(process.SeverityWarning, "actuator-type",
			fmt.Sprintf("%s actuator cannot drive a %s valve", requested, sel.Type),
			"substituting a pneumatic rotary actuator")
		return PneumaticRotary, nil
	}
	if !rotary && !requested.linear() {
		diags.Add(process.SeverityWarning, "actuator-type",
			fmt.Sprintf("%s actuator cannot drive a %s valve", requested, sel.Type),
			"substituting a spring-diaphragm actuator")
		return SpringDiaphragm, nil
	}
	return requested, nil
}

// checkMargin fills the rated/margin fields and surfaces a shortfall
// as a typed error on top of the populated result.
func checkMargin(res *Result, rated, required float64, unit string, diags *process.Diagnostics) error {
	if rated <= 0 {
		return nil
	}
	res.Rated = rated
	res.Margin = rated - required
	if res.Margin < 0 {
		diags.Add(process.SeverityCritical, "margin",
			fmt.Sprintf("rated %.0f %s is %.0f %s short of the required %.0f %s", rated, unit, -res.Margin, unit, required, unit),
			"select the next actuator size up")
		return ErrInsufficientMargin
	}
	return nil
}

func linearRecommendation(t Type, required, sf float64) string {
	switch t {
	case SpringDiaphragm:
		return fmt.Sprintf("Pneumatic spring-diaphragm actuator with minimum %.0f N thrust capacity. Effective area of at least %.0f cm2 at 6 bar supply.", required, required/87)
	case Piston:
		return fmt.Sprintf("Pneumatic piston actuator with minimum %.0f N thrust capacity.", required)
	case Hydraulic:
		return fmt.Sprintf("Hydraulic cylinder actuator with minimum %.0f N thrust capacity.", required)
	default:
		return fmt.Sprintf("Electric linear actuator with minimum %.0f N thrust capacity and %.1f safety factor.", required, sf)
	}
}

func rotaryRecommendation(t Type, required, sf float64) string {
	switch t {
	case PneumaticRotary:
		return fmt.Sprintf("Pneumatic rack-and-pinion or vane actuator with minimum %.0f Nm output torque and %.1f safety factor.", required, sf)
	case Hydraulic:
		return fmt.Sprintf("Hydraulic quarter-turn actuator with minimum %.0f Nm output torque.", required)
	default:
		return fmt.Sprintf("Electric rotary actuator with minimum %.0f Nm output torque and %.1f safety factor.", required, sf)
	}
}
