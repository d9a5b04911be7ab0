// Package materials recommends pressure-boundary and trim materials
// from service conditions. Categories follow common refinery practice;
// the tables carry ASTM/NACE designations ready for a datasheet.
package materials

import "strings"

// Category is the service class driving the base material set.
type Category string

const (
	CleanWater      Category = "Clean Water"
	Seawater        Category = "Seawater"
	SourService     Category = "Sour Service"
	HighTemperature Category = "High Temperature"
	Cryogenic       Category = "Cryogenic"
)

// Nature qualifies the fluid beyond its name.
type Nature string

const (
	NatureClean     Nature = "Clean"
	NatureCorrosive Nature = "Corrosive"
	NatureAbrasive  Nature = "Abrasive"
	NatureFlashing  Nature = "Flashing/Cavitating"
)

// Tags describe the service for material selection. Temperature is in
// Celsius, pressure in bar absolute.
type Tags struct {
	Fluid       string  `json:"fluid"`
	Nature      Nature  `json:"nature,omitempty"`
	Temperature float64 `json:"temperature"`
	Pressure    float64 `json:"pressure"`
}

// Spec is a complete material recommendation.
type Spec struct {
	Category  Category `json:"category"`
	Body      string   `json:"body"`
	Trim      string   `json:"trim"`
	Bolting   string   `json:"bolting"`
	Gasket    string   `json:"gasket"`
	Standards []string `json:"standards"`
	Testing   []string `json:"testing"`
	Notes     []string `json:"notes,omitempty"`
}

// Recommend selects materials for the tagged service: category base
// set, then temperature, pressure, and fluid-specific overrides, in
// that order.
func Recommend(tags Tags) (*Spec, error) {
	if tags.Temperature < -273.15 {
		return nil, ErrInvalidTags
	}

	cat := Categorize(tags)
	spec := baseSpec(cat)

	applyTemperature(spec, tags.Temperature)
	applyPressure(spec, tags.Pressure)
	applyFluid(spec, tags)

	spec.Standards = complianceStandards(cat, tags)
	spec.Testing = testingRequirements(cat, tags)
	spec.Notes = serviceNotes(cat, tags)
	return spec, nil
}

// Categorize maps the tagged service onto a category. Named fluids win
// over temperature bands; fluid nature breaks the remaining ties.
func Categorize(tags Tags) Category {
	fluid := strings.ToLower(tags.Fluid)

	switch {
	case strings.Contains(fluid, "water") && !strings.Contains(fluid, "sea"):
		if tags.Temperature > 100 {
			return HighTemperature
		}
		if tags.Temperature < 0 {
			return Cryogenic
		}
		return CleanWater
	case strings.Contains(fluid, "seawater") || strings.Contains(fluid, "brine"):
		return Seawater
	case containsAny(fluid, "acid", "hcl", "h2so4", "sulfuric"):
		return SourService
	case strings.Contains(fluid, "hydrogen") || strings.Contains(fluid, "h2s"):
		return SourService
	case tags.Temperature > 400:
		return HighTemperature
	case tags.Temperature < -50:
		return Cryogenic
	}

	switch tags.Nature {
	case NatureCorrosive:
		return SourService
	case NatureFlashing:
		// High-energy service erodes standard trim sets.
		return HighTemperature
	}
	return CleanWater
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func applyTemperature(spec *Spec, temp float64) {
	switch {
	case temp > 500:
		spec.Body = "Chrome-Moly (ASTM A217 C12)"
		spec.Trim = "Stellite overlay on Inconel"
		spec.Bolting = "ASTM A193 B16 / A194 4"
		spec.Gasket = "RTJ Inconel"
	case temp > 400:
		spec.Body = "Chrome-Moly (ASTM A217 C5)"
		spec.Trim = "Stellite overlay on 316 SS"
		spec.Bolting = "ASTM A193 B8T / A194 8T"
		spec.Gasket = "Spiral Wound 316SS/Mica"
	case temp < -100:
		spec.Body = "316L SS (ASTM A351 CF3M)"
		spec.Trim = "316L SS"
		spec.Bolting = "ASTM A193 B8M / A194 8M"
		spec.Gasket = "Spiral Wound 316L/PTFE"
	case temp < -29:
		spec.Body = "316 SS (ASTM A351 CF8M)"
		spec.Trim = "316 SS"
		spec.Bolting = "ASTM A193 B8 / A194 8"
	}
}

func applyPressure(spec *Spec, pressure float64) {
	switch {
	case pressure > 100:
		spec.Bolting = strings.ReplaceAll(spec.Bolting, "B7", "B8M")
		spec.Gasket = "RTJ or Metal Seal"
	case pressure > 40:
		spec.Gasket = "Spiral Wound with Centering Ring"
	}
}

func applyFluid(spec *Spec, tags Tags) {
	fluid := strings.ToLower(tags.Fluid)
	switch {
	case strings.Contains(fluid, "chlorine") || strings.Contains(fluid, "cl2"):
		spec.Body = "Hastelloy C (UNS N10276)"
		spec.Trim = "Hastelloy C"
		spec.Bolting = "Hastelloy C bolting"
		spec.Gasket = "PTFE envelope"
	case strings.Contains(fluid, "ammonia") || strings.Contains(fluid, "nh3"):
		// Copper alloys fail in ammonia service.
		spec.Body = "Carbon Steel (ASTM A216 WCB)"
		spec.Trim = "316 SS"
	case tags.Nature == NatureAbrasive:
		spec.Trim = "Stellite hard facing or Ceramic"
	}
}
