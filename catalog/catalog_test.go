package catalog

import (
	"errors"
	"testing"

	"github.com/openvalve/go-sizing/process"
	"github.com/openvalve/go-sizing/valve"
)

func TestBuiltinStyles(t *testing.T) {
	store := Builtin()

	tests := []struct {
		typ  valve.Type
		want []string
	}{
		{valve.Globe, []string{
			"Anti-Cavitation, Multi-Stage",
			"Low-Noise, Multi-Path",
			"Port-Guided, Quick Opening",
			"Standard, Cage-Guided",
		}},
		{valve.BallSegmented, []string{"High-Performance", "Standard V-Notch"}},
		{valve.Butterfly, []string{"High-Performance, Double Offset", "Standard, Centric Disc"}},
	}
	for _, tt := range tests {
		got := store.Styles(tt.typ)
		if len(got) != len(tt.want) {
			t.Fatalf("Styles(%v): Expected %d styles, got %d", tt.typ, len(tt.want), len(got))
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Styles(%v)[%d]: Expected %q, got %q", tt.typ, i, tt.want[i], got[i])
			}
		}
	}
}

func TestBuiltinCurvesValid(t *testing.T) {
	store := Builtin()
	for _, typ := range []valve.Type{valve.Globe, valve.BallSegmented, valve.Butterfly} {
		for _, style := range store.Styles(typ) {
			c, err := store.Curve(typ, style)
			if err != nil {
				t.Fatalf("Curve(%v, %q) returned error: %v", typ, style, err)
			}
			if err := c.Validate(); err != nil {
				t.Errorf("Curve %v/%q failed validation: %v", typ, style, err)
			}
			if len(c.Points) != 6 {
				t.Errorf("Curve %v/%q: Expected 6 points, got %d", typ, style, len(c.Points))
			}
			if c.SigmaMV <= 0 {
				t.Errorf("Curve %v/%q: Expected positive sigma limit, got %v", typ, style, c.SigmaMV)
			}
			if c.Rangeability <= 1 {
				t.Errorf("Curve %v/%q: Expected rangeability above 1, got %v", typ, style, c.Rangeability)
			}
		}
	}
}

func TestCurveCoefficients(t *testing.T) {
	store := Builtin()
	c, err := store.Curve(valve.Globe, "Standard, Cage-Guided")
	if err != nil {
		t.Fatal(err)
	}
	p, clamped, err := c.At(70)
	if err != nil {
		t.Fatal(err)
	}
	if clamped {
		t.Error("Expected no clamping at 70%")
	}
	if p.FL != 0.90 || p.Kc != 0.69 || p.Xt != 0.76 {
		t.Errorf("Expected FL 0.90, Kc 0.69, Xt 0.76 at 70%%, got %v, %v, %v", p.FL, p.Kc, p.Xt)
	}
}

func TestStyleLookupErrors(t *testing.T) {
	store := Builtin()
	if _, err := store.Curve("gate", "Standard"); !errors.Is(err, ErrUnknownValve) {
		t.Errorf("Expected ErrUnknownValve for unknown type, got %v", err)
	}
	if _, err := store.Curve(valve.Globe, "Imaginary Trim"); !errors.Is(err, ErrUnknownValve) {
		t.Errorf("Expected ErrUnknownValve for unknown style, got %v", err)
	}
}

func TestRatedCv(t *testing.T) {
	store := Builtin()

	tests := []struct {
		typ  valve.Type
		size int
		want float64
	}{
		{valve.Globe, 2, 50},
		{valve.BallSegmented, 2, 65},
		{valve.Butterfly, 2, 80},
		{valve.Globe, 12, 1750},
		{valve.Butterfly, 72, 103000},
	}
	for _, tt := range tests {
		got, err := store.RatedCv(tt.typ, tt.size)
		if err != nil {
			t.Fatalf("RatedCv(%v, %d) returned error: %v", tt.typ, tt.size, err)
		}
		if got != tt.want {
			t.Errorf("RatedCv(%v, %d): Expected %v, got %v", tt.typ, tt.size, tt.want, got)
		}
	}

	if _, err := store.RatedCv(valve.Globe, 5); !errors.Is(err, ErrUnknownValve) {
		t.Errorf("Expected ErrUnknownValve for unlisted size, got %v", err)
	}
}

func TestSizes(t *testing.T) {
	sizes := Builtin().Sizes()
	if len(sizes) != 21 {
		t.Fatalf("Expected 21 sizes, got %d", len(sizes))
	}
	if sizes[0] != 1 || sizes[len(sizes)-1] != 72 {
		t.Errorf("Expected sizes spanning 1 to 72, got %d to %d", sizes[0], sizes[len(sizes)-1])
	}
	for i := 1; i < len(sizes); i++ {
		if sizes[i] <= sizes[i-1] {
			t.Errorf("Expected sorted sizes, got %v", sizes)
		}
	}
}

func TestVendorLookup(t *testing.T) {
	store := Builtin()

	sr, err := store.Vendor("Emerson", "WhisperTrim")
	if err != nil {
		t.Fatalf("Vendor lookup returned error: %v", err)
	}
	if sr.CvMultiplier != 0.95 {
		t.Errorf("Expected Cv multiplier 0.95, got %v", sr.CvMultiplier)
	}
	if sr.NoiseReduction != 15 {
		t.Errorf("Expected 15 dB noise reduction, got %v", sr.NoiseReduction)
	}
	if !sr.HasSize(4) || sr.HasSize(12) {
		t.Error("Expected WhisperTrim in 4 in but not 12 in")
	}

	if _, err := store.Vendor("Acme", "X"); !errors.Is(err, ErrUnknownVendor) {
		t.Errorf("Expected ErrUnknownVendor, got %v", err)
	}
	if _, err := store.Vendor("Fisher", "Imaginary"); !errors.Is(err, ErrUnknownVendor) {
		t.Errorf("Expected ErrUnknownVendor for unknown series, got %v", err)
	}

	vendors := store.Vendors()
	want := []string{"Emerson", "Fisher", "Samson"}
	if len(vendors) != len(want) {
		t.Fatalf("Expected %v, got %v", want, vendors)
	}
	for i := range want {
		if vendors[i] != want[i] {
			t.Errorf("Expected vendor %q at %d, got %q", want[i], i, vendors[i])
		}
	}

	series := store.VendorSeries("Fisher", valve.Globe)
	if len(series) != 2 || series[0] != "ED Series" || series[1] != "HPT Series" {
		t.Errorf("Expected Fisher globe series [ED Series, HPT Series], got %v", series)
	}
}

func TestSeriesCurve(t *testing.T) {
	sr, err := Builtin().Vendor("Fisher", "ED Series")
	if err != nil {
		t.Fatal(err)
	}
	c := sr.Curve()
	if err := c.Validate(); err != nil {
		t.Fatalf("Series curve failed validation: %v", err)
	}
	p, _, err := c.At(55)
	if err != nil {
		t.Fatal(err)
	}
	if p.FL != 0.92 || p.Kc != 0.72 || p.Xt != 0.77 {
		t.Errorf("Expected flat curve at published averages, got %+v", p)
	}
}

func TestResolvePrefersAttachedCurve(t *testing.T) {
	store := Builtin()
	custom := &valve.Curve{
		Name: "custom",
		Points: []valve.Point{
			{Opening: 10, FL: 0.5, Kc: 0.4, Xt: 0.3},
			{Opening: 100, FL: 0.5, Kc: 0.4, Xt: 0.3},
		},
	}
	sel := valve.Selection{Type: valve.Globe, Style: "Standard, Cage-Guided", Size: 2, Opening: 70, Curve: custom}
	c, err := store.Resolve(sel)
	if err != nil {
		t.Fatal(err)
	}
	if c != custom {
		t.Error("Expected attached curve to win over catalog style")
	}

	sel.Curve = nil
	c, err = store.Resolve(sel)
	if err != nil {
		t.Fatal(err)
	}
	if c.Name != "Standard, Cage-Guided" {
		t.Errorf("Expected catalog curve, got %q", c.Name)
	}
}

func TestReview(t *testing.T) {
	store := Builtin()
	cond := process.Conditions{P1: 10, P2: 6, T1: 293.15, FlowRate: 50}

	ok := valve.Selection{Type: valve.Globe, Style: "Standard, Cage-Guided", Size: 4, Opening: 60}
	if diags := store.Review(ok, cond); len(diags.Warnings()) != 0 {
		t.Errorf("Expected no warnings for a routine selection, got %v", diags)
	}

	big := valve.Selection{Type: valve.Globe, Style: "Standard, Cage-Guided", Size: 30, Opening: 60}
	if diags := store.Review(big, cond); !diags.Has("selection") {
		t.Error("Expected a selection warning for a 30 in globe")
	}

	small := valve.Selection{Type: valve.Butterfly, Style: "Standard, Centric Disc", Size: 2, Opening: 60}
	if diags := store.Review(small, cond); !diags.Has("selection") {
		t.Error("Expected a selection warning for a 2 in butterfly")
	}

	hot := cond
	hot.T1 = 773.15 // 500 °C, above the cage-guided envelope
	if diags := store.Review(ok, hot); len(diags.Warnings()) == 0 {
		t.Error("Expected a temperature warning at 500 °C")
	}

	wrongSize := valve.Selection{
		Type: valve.Globe, Style: "Standard, Cage-Guided", Size: 12,
		Vendor: "Fisher", Series: "ED Series", Opening: 60,
	}
	if diags := store.Review(wrongSize, cond); len(diags.Warnings()) == 0 {
		t.Error("Expected a warning for a size the series is not built in")
	}
}
