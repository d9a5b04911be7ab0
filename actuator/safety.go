package actuator

import (
	"fmt"

	"github.com/openvalve/go-sizing/process"
)

// Safety factor policy: outputs are oversized by 1.5x to 2.0x, with
// the 1.5 floor reserved for piston-type actuators in services that
// tolerate a stranded valve. Spring-return and electric drives carry
// higher floors because they are chosen exactly when failure posture
// matters.
const (
	safetyFactorMin = 1.5
	safetyFactorMax = 2.0

	failCriticalPistonFloor = 1.75
)

func defaultSafetyFactor(t Type) float64 {
	switch t {
	case SpringDiaphragm:
		return 1.75
	case Piston:
		return 1.5
	case ElectricLinear:
		return 2.0
	case PneumaticRotary:
		return 1.75
	case ElectricRotary:
		return 2.0
	case Hydraulic:
		return 1.5
	}
	return safetyFactorMin
}

func minimumSafetyFactor(t Type, failCritical bool) float64 {
	if t.pistonType() {
		if failCritical {
			return failCriticalPistonFloor
		}
		return safetyFactorMin
	}
	return defaultSafetyFactor(t)
}

// resolveSafetyFactor applies the policy to the caller's request,
// recording every adjustment.
func resolveSafetyFactor(t Type, failCritical bool, requested float64, diags *process.Diagnostics) float64 {
	min := minimumSafetyFactor(t, failCritical)

	if requested <= 0 {
		sf := defaultSafetyFactor(t)
		if sf < min {
			diags.Info("safety-factor", "default %.2f raised to %.2f for fail-critical %s service", sf, min, t)
			sf = min
		}
		return sf
	}
	if requested < min {
		diags.Add(process.SeverityWarning, "safety-factor",
			fmt.Sprintf("requested safety factor %.2f below policy minimum %.2f for %s", requested, min, t),
			"the lower policy bound applies only to non-fail-critical piston actuators")
		return min
	}
	if requested > safetyFactorMax {
		diags.Add(process.SeverityWarning, "safety-factor",
			fmt.Sprintf("requested safety factor %.2f above policy maximum %.2f", requested, safetyFactorMax),
			"larger factors oversize the actuator without benefit")
		return safetyFactorMax
	}
	return requested
}
