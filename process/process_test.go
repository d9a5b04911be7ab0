package process

import (
	"errors"
	"testing"
)

func validLiquid() Fluid {
	return Fluid{
		Phase:            PhaseLiquid,
		Density:          1000,
		VaporPressure:    0.02,
		CriticalPressure: 220,
		Viscosity:        1.0,
	}
}

func validGas() Fluid {
	return Fluid{
		Phase:             PhaseGas,
		MolecularWeight:   28.97,
		SpecificHeatRatio: 1.4,
		Compressibility:   1.0,
	}
}

func TestConditionsValidate(t *testing.T) {
	good := Conditions{P1: 10, P2: 6, T1: 293.15, FlowRate: 50}
	if err := good.Validate(); err != nil {
		t.Errorf("Expected valid conditions, got %v", err)
	}
	if dp := good.DP(); dp != 4 {
		t.Errorf("Expected DP=4, got %f", dp)
	}

	tests := []struct {
		name string
		c    Conditions
	}{
		{"reversed pressures", Conditions{P1: 6, P2: 10, T1: 293.15, FlowRate: 50}},
		{"equal pressures", Conditions{P1: 6, P2: 6, T1: 293.15, FlowRate: 50}},
		{"zero inlet", Conditions{P1: 0, P2: 0, T1: 293.15, FlowRate: 50}},
		{"negative outlet", Conditions{P1: 10, P2: -1, T1: 293.15, FlowRate: 50}},
		{"zero flow", Conditions{P1: 10, P2: 6, T1: 293.15, FlowRate: 0}},
		{"zero temperature", Conditions{P1: 10, P2: 6, T1: 0, FlowRate: 50}},
	}
	for _, tt := range tests {
		err := tt.c.Validate()
		if err == nil {
			t.Errorf("%s: expected error, got nil", tt.name)
			continue
		}
		if !errors.Is(err, ErrInvalidProcessData) {
			t.Errorf("%s: expected ErrInvalidProcessData, got %v", tt.name, err)
		}
	}
}

func TestFluidValidateLiquid(t *testing.T) {
	if err := validLiquid().Validate(); err != nil {
		t.Errorf("Expected valid liquid, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Fluid)
	}{
		{"zero density", func(f *Fluid) { f.Density = 0 }},
		{"negative vapor pressure", func(f *Fluid) { f.VaporPressure = -0.1 }},
		{"zero critical pressure", func(f *Fluid) { f.CriticalPressure = 0 }},
		{"vapor above critical", func(f *Fluid) { f.VaporPressure = 250 }},
		{"zero viscosity", func(f *Fluid) { f.Viscosity = 0 }},
	}
	for _, tt := range tests {
		f := validLiquid()
		tt.mutate(&f)
		err := f.Validate()
		if err == nil {
			t.Errorf("%s: expected error, got nil", tt.name)
			continue
		}
		if !errors.Is(err, ErrInvalidFluidData) {
			t.Errorf("%s: expected ErrInvalidFluidData, got %v", tt.name, err)
		}
	}
}

func TestFluidValidateGas(t *testing.T) {
	if err := validGas().Validate(); err != nil {
		t.Errorf("Expected valid gas, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Fluid)
	}{
		{"zero molecular weight", func(f *Fluid) { f.MolecularWeight = 0 }},
		{"zero heat ratio", func(f *Fluid) { f.SpecificHeatRatio = 0 }},
		{"zero compressibility", func(f *Fluid) { f.Compressibility = 0 }},
	}
	for _, tt := range tests {
		f := validGas()
		tt.mutate(&f)
		if err := f.Validate(); !errors.Is(err, ErrInvalidFluidData) {
			t.Errorf("%s: expected ErrInvalidFluidData, got %v", tt.name, err)
		}
	}

	unknown := Fluid{Phase: Phase("plasma")}
	if err := unknown.Validate(); !errors.Is(err, ErrInvalidFluidData) {
		t.Errorf("Expected ErrInvalidFluidData for unknown phase, got %v", err)
	}
}

func TestSpecificGravity(t *testing.T) {
	f := validLiquid()
	if sg := f.SpecificGravity(); sg != 1.0 {
		t.Errorf("Expected SG=1.0 for water density, got %f", sg)
	}
	f.Density = 850
	if sg := f.SpecificGravity(); sg != 0.85 {
		t.Errorf("Expected SG=0.85, got %f", sg)
	}
}

func TestDiagnostics(t *testing.T) {
	var d Diagnostics
	d.Info("flow", "flow regime is %s", "turbulent")
	d.Warn("convergence", "iteration stopped after %d passes", 10)
	d.Critical("cavitation", "choking cavitation detected")

	if len(d) != 3 {
		t.Errorf("Expected 3 issues, got %d", len(d))
	}
	if got := len(d.Warnings()); got != 2 {
		t.Errorf("Expected 2 warning-or-above issues, got %d", got)
	}
	if !d.Has("convergence") {
		t.Errorf("Expected convergence diagnostic to be present")
	}
	if d.Has("noise") {
		t.Errorf("Did not expect a noise diagnostic")
	}
}
