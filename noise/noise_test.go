package noise

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/openvalve/go-sizing/flow"
	"github.com/openvalve/go-sizing/process"
	"github.com/openvalve/go-sizing/valve"
)

func waterService() (process.Conditions, process.Fluid) {
	cond := process.Conditions{
		P1:           10.0,
		P2:           6.0,
		T1:           293.15,
		FlowRate:     50.0,
		PipeDiameter: 50.0,
	}
	fluid := process.Fluid{
		Phase:         process.PhaseLiquid,
		Name:          "water",
		Density:       998.0,
		VaporPressure: 0.023,
		Viscosity:     1.0,
	}
	return cond, fluid
}

func airService() (process.Conditions, process.Fluid) {
	cond := process.Conditions{
		P1:           10.0,
		P2:           6.0,
		T1:           293.15,
		FlowRate:     1000.0,
		PipeDiameter: 50.0,
	}
	fluid := process.Fluid{
		Phase:             process.PhaseGas,
		Name:              "air",
		MolecularWeight:   28.97,
		SpecificHeatRatio: 1.4,
		Compressibility:   1.0,
	}
	return cond, fluid
}

func globeSelection() valve.Selection {
	return valve.Selection{Type: valve.Globe, Size: 2, Opening: 60}
}

func TestSimplifiedLiquidQuietService(t *testing.T) {
	cond, fluid := waterService()
	sizing := &flow.Result{Cv: 28.87, Regime: flow.RegimeSubsonic}

	res, err := Simplified().Predict(cond, fluid, sizing, globeSelection())
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if math.Abs(res.SPL-70.63) > 0.05 {
		t.Errorf("Expected SPL near 70.63 dBA, got %.2f", res.SPL)
	}
	if res.Method != "Simplified Empirical Estimation" {
		t.Errorf("Expected simplified method label, got %q", res.Method)
	}
	if res.Regime != RegimeNonCavitating {
		t.Errorf("Expected non-cavitating regime, got %s", res.Regime)
	}
	if !strings.Contains(res.Recommendation, "Acceptable") {
		t.Errorf("Expected acceptable recommendation, got %q", res.Recommendation)
	}
}

func TestSimplifiedLiquidCavitating(t *testing.T) {
	cond, fluid := waterService()
	cond.P2 = 2.0 // sigma 1.25, inside the cavitation band
	sizing := &flow.Result{Cv: 50.0, Regime: flow.RegimeSubsonic}

	res, err := Simplified().Predict(cond, fluid, sizing, globeSelection())
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if math.Abs(res.SPL-101.02) > 0.05 {
		t.Errorf("Expected SPL near 101.02 dBA, got %.2f", res.SPL)
	}
	if res.Regime != RegimeCavitating {
		t.Errorf("Expected cavitating regime, got %s", res.Regime)
	}
	if !strings.Contains(res.Recommendation, "High noise") {
		t.Errorf("Expected high noise recommendation, got %q", res.Recommendation)
	}
}

func TestSimplifiedFlashingDominates(t *testing.T) {
	cond, fluid := waterService()
	sizing := &flow.Result{Cv: 28.87, Flashing: true, Regime: flow.RegimeChoked}

	res, err := Simplified().Predict(cond, fluid, sizing, globeSelection())
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if res.Regime != RegimeFlashing {
		t.Errorf("Expected flashing regime, got %s", res.Regime)
	}
	// Same capacity term as the quiet case but on the 85 dB base.
	if math.Abs(res.SPL-95.63) > 0.05 {
		t.Errorf("Expected SPL near 95.63 dBA, got %.2f", res.SPL)
	}
}

func TestSimplifiedGasBodyAttenuation(t *testing.T) {
	cond, fluid := airService()
	sizing := &flow.Result{Cv: 3.44, Regime: flow.RegimeSubsonic}

	tests := []struct {
		vtype valve.Type
		want  float64
	}{
		{valve.Globe, 117.83},
		{valve.BallSegmented, 112.83},
		{valve.Butterfly, 107.83},
	}
	for _, tt := range tests {
		sel := valve.Selection{Type: tt.vtype, Size: 2, Opening: 60}
		res, err := Simplified().Predict(cond, fluid, sizing, sel)
		if err != nil {
			t.Fatalf("Predict failed for %s: %v", tt.vtype, err)
		}
		if math.Abs(res.SPL-tt.want) > 0.05 {
			t.Errorf("Expected %s SPL near %.2f dBA, got %.2f", tt.vtype, tt.want, res.SPL)
		}
		if res.Regime != RegimeSubsonic {
			t.Errorf("Expected subsonic regime for %s, got %s", tt.vtype, res.Regime)
		}
	}
}

func TestSimplifiedClamps(t *testing.T) {
	cond, fluid := waterService()
	cond.P2 = 9.9 // negligible drop, capacity term floors at zero
	sizing := &flow.Result{Cv: 5.0}
	res, err := Simplified().Predict(cond, fluid, sizing, globeSelection())
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if res.SPL != 50 {
		t.Errorf("Expected floor clamp at 50 dBA, got %.2f", res.SPL)
	}

	gcond, gas := airService()
	gcond.P2 = 1.0
	loud := &flow.Result{Cv: 1000.0, Regime: flow.RegimeChoked}
	res, err = Simplified().Predict(gcond, gas, loud, globeSelection())
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if res.SPL != 120 {
		t.Errorf("Expected ceiling clamp at 120 dBA, got %.2f", res.SPL)
	}
	if res.Regime != RegimeChoked {
		t.Errorf("Expected choked regime, got %s", res.Regime)
	}
	if !strings.Contains(res.Recommendation, "Extreme") {
		t.Errorf("Expected extreme recommendation, got %q", res.Recommendation)
	}
}

func TestIECLiquid(t *testing.T) {
	cond, fluid := waterService()
	sizing := &flow.Result{Cv: 28.87, Regime: flow.RegimeSubsonic}

	res, err := IEC60534().Predict(cond, fluid, sizing, globeSelection())
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if res.Method != "IEC 60534-8-3 Liquid Model" {
		t.Errorf("Expected liquid model label, got %q", res.Method)
	}
	if math.Abs(res.StreamPower-5555.56) > 0.5 {
		t.Errorf("Expected stream power near 5555.6 W, got %.1f", res.StreamPower)
	}
	if res.AcousticEfficiency != 1e-5 {
		t.Errorf("Expected non-cavitating efficiency 1e-5, got %g", res.AcousticEfficiency)
	}
	if math.Abs(res.SoundPower-107.45) > 0.05 {
		t.Errorf("Expected sound power near 107.45 dB, got %.2f", res.SoundPower)
	}
	if math.Abs(res.TransmissionLoss-18.01) > 0.05 {
		t.Errorf("Expected transmission loss near 18.01 dB, got %.2f", res.TransmissionLoss)
	}
	if math.Abs(res.SPL-81.44) > 0.05 {
		t.Errorf("Expected SPL near 81.44 dBA, got %.2f", res.SPL)
	}
	if math.Abs(res.PeakFrequency-2301.0) > 1.0 {
		t.Errorf("Expected peak frequency near 2301 Hz, got %.0f", res.PeakFrequency)
	}
	if res.Regime != RegimeNonCavitating {
		t.Errorf("Expected non-cavitating regime, got %s", res.Regime)
	}
	if !strings.Contains(res.Recommendation, "Acceptable") {
		t.Errorf("Expected acceptable recommendation, got %q", res.Recommendation)
	}
}

func TestIECLiquidFlashing(t *testing.T) {
	cond, fluid := waterService()
	sizing := &flow.Result{Cv: 28.87, Flashing: true, Regime: flow.RegimeChoked}

	res, err := IEC60534().Predict(cond, fluid, sizing, globeSelection())
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if res.AcousticEfficiency != 1e-3 {
		t.Errorf("Expected flashing efficiency 1e-3, got %g", res.AcousticEfficiency)
	}
	if res.PeakFrequency != 1000 {
		t.Errorf("Expected 1000 Hz flashing peak, got %.0f", res.PeakFrequency)
	}
	if res.Regime != RegimeFlashing {
		t.Errorf("Expected flashing regime, got %s", res.Regime)
	}
	if math.Abs(res.SPL-101.44) > 0.05 {
		t.Errorf("Expected SPL near 101.44 dBA, got %.2f", res.SPL)
	}
}

func TestIECLiquidCavitationEfficiency(t *testing.T) {
	cond, fluid := waterService()
	cond.P2 = 2.0 // sigma 1.247
	sizing := &flow.Result{Cv: 50.0}

	res, err := IEC60534().Predict(cond, fluid, sizing, globeSelection())
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	sigma := (cond.P1 - fluid.VaporPressure) / cond.DP()
	want := 1e-4 * sigma * sigma
	if math.Abs(res.AcousticEfficiency-want) > 1e-9 {
		t.Errorf("Expected cavitation efficiency %g, got %g", want, res.AcousticEfficiency)
	}
	if res.Regime != RegimeCavitating {
		t.Errorf("Expected cavitating regime, got %s", res.Regime)
	}
}

func TestIECGasSubsonic(t *testing.T) {
	cond, fluid := airService()
	sizing := &flow.Result{Cv: 3.44, Regime: flow.RegimeSubsonic}

	res, err := IEC60534().Predict(cond, fluid, sizing, globeSelection())
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if res.Method != "IEC 60534-8-3 Gas Model" {
		t.Errorf("Expected gas model label, got %q", res.Method)
	}
	if res.Regime != RegimeSubsonic {
		t.Errorf("Expected subsonic regime, got %s", res.Regime)
	}
	if math.Abs(res.SpeedOfSound-343.2) > 0.1 {
		t.Errorf("Expected speed of sound near 343.2 m/s, got %.1f", res.SpeedOfSound)
	}
	if math.Abs(res.MachNumber-math.Sqrt2) > 1e-6 {
		t.Errorf("Expected mach proxy sqrt(2), got %.4f", res.MachNumber)
	}
	if math.Abs(res.AcousticEfficiency-0.004) > 1e-9 {
		t.Errorf("Expected efficiency 0.004, got %g", res.AcousticEfficiency)
	}
	if math.Abs(res.StreamPower-111111.1) > 1.0 {
		t.Errorf("Expected stream power near 111111 W, got %.0f", res.StreamPower)
	}
	if math.Abs(res.SPL-126.97) > 0.05 {
		t.Errorf("Expected SPL near 126.97 dBA, got %.2f", res.SPL)
	}
	if math.Abs(res.PeakFrequency-3432.0) > 1.0 {
		t.Errorf("Expected peak frequency near 3432 Hz, got %.0f", res.PeakFrequency)
	}
}

func TestIECGasChoked(t *testing.T) {
	cond, fluid := airService()
	cond.P2 = 1.0 // x 0.9 well past critical 0.528
	sizing := &flow.Result{Cv: 5.0, Regime: flow.RegimeChoked}

	res, err := IEC60534().Predict(cond, fluid, sizing, globeSelection())
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if res.Regime != RegimeChoked {
		t.Errorf("Expected choked regime, got %s", res.Regime)
	}
	if res.AcousticEfficiency != 0.01 {
		t.Errorf("Expected choked efficiency 0.01, got %g", res.AcousticEfficiency)
	}
	if math.Abs(res.StreamPower-146744.7) > 10.0 {
		t.Errorf("Expected stream power near 146745 W, got %.0f", res.StreamPower)
	}
	if math.Abs(res.SPL-132.16) > 0.05 {
		t.Errorf("Expected SPL near 132.16 dBA, got %.2f", res.SPL)
	}
	if !strings.Contains(res.Recommendation, "Extreme aerodynamic") {
		t.Errorf("Expected extreme aerodynamic recommendation, got %q", res.Recommendation)
	}
}

func TestIECRequiresPipeDiameter(t *testing.T) {
	cond, fluid := waterService()
	cond.PipeDiameter = 0
	sizing := &flow.Result{Cv: 28.87}

	_, err := IEC60534().Predict(cond, fluid, sizing, globeSelection())
	if !errors.Is(err, ErrInsufficientData) {
		t.Errorf("Expected ErrInsufficientData without pipe diameter, got %v", err)
	}
}

func TestPredictNilSizing(t *testing.T) {
	cond, fluid := waterService()
	for _, p := range []Predictor{Simplified(), IEC60534()} {
		if _, err := p.Predict(cond, fluid, nil, globeSelection()); !errors.Is(err, ErrInsufficientData) {
			t.Errorf("Expected ErrInsufficientData from %s with nil sizing, got %v", p.Name(), err)
		}
	}
}

func TestControlRecommendations(t *testing.T) {
	recs := ControlRecommendations(115, process.PhaseGas)
	if len(recs) != 5 {
		t.Fatalf("Expected 5 recommendations at 115 dBA gas, got %d", len(recs))
	}
	if !strings.HasPrefix(recs[0], "CRITICAL") {
		t.Errorf("Expected critical leader, got %q", recs[0])
	}
	if recs[4] != "Consider downstream silencer for gas service" {
		t.Errorf("Expected gas silencer advice, got %q", recs[4])
	}

	recs = ControlRecommendations(100, process.PhaseLiquid)
	if !strings.HasPrefix(recs[0], "HIGH") {
		t.Errorf("Expected high leader, got %q", recs[0])
	}
	if recs[len(recs)-1] != "Verify cavitation control to reduce liquid noise" {
		t.Errorf("Expected liquid cavitation advice, got %q", recs[len(recs)-1])
	}

	recs = ControlRecommendations(90, process.PhaseLiquid)
	if !strings.HasPrefix(recs[0], "MODERATE") {
		t.Errorf("Expected moderate leader, got %q", recs[0])
	}

	recs = ControlRecommendations(70, process.PhaseLiquid)
	if len(recs) != 1 || recs[0] != "ACCEPTABLE: Standard valve design suitable" {
		t.Errorf("Expected single acceptable entry, got %v", recs)
	}
}
