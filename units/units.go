// Package units provides the conversion factors and physical constants
// shared by the sizing calculators. Callers supply SI process data (bar
// absolute, K, m³/h or Nm³/h); the ISA flow-coefficient formulas are
// evaluated in their customary US units, so every calculator converts
// through the constants defined here.
package units

// Pressure, flow, density and temperature conversions.
const (
	BarToPsi    = 14.5038  // bar -> psi
	M3hToGpm    = 4.40287  // m³/h -> US gpm
	Nm3hToScfh  = 37.324   // Nm³/h -> scfh at standard conditions
	KgM3ToLbFt3 = 0.062428 // kg/m³ -> lb/ft³
	KToRankine  = 1.8      // K -> °R (both absolute scales)
	InchToMm    = 25.4     // in -> mm
	FtToM       = 0.3048   // ft -> m
	LbToKg      = 0.453592 // lb -> kg
)

// Force and torque conversions.
const (
	LbfToNewton        = 4.44822 // lbf -> N
	FtLbfToNewtonMeter = 1.35582 // ft·lbf -> N·m
)

// Physical constants for gas calculations.
const (
	// UniversalGasConstant is R in J/(kmol·K).
	UniversalGasConstant = 8314.5
	// GasConstantUS is R in ft·lbf/(lbmol·°R), used in the sonic
	// velocity relation c = sqrt(k·R·T/MW) with T in °R.
	GasConstantUS = 1544.0
	// MolarVolumeScf is the volume of one lb-mol of ideal gas at
	// standard conditions, in scf. Converts scfh to lb/h via MW.
	MolarVolumeScf = 379.3
	// GasLawConstantUS is R in psia·ft³/(lb-mol·°R), used for inlet
	// gas density in lb/ft³.
	GasLawConstantUS = 10.73
)

// SpecificGravity returns the specific gravity of a liquid given its
// density in kg/m³, referenced to water at 1000 kg/m³.
func SpecificGravity(density float64) float64 {
	return density / 1000.0
}
