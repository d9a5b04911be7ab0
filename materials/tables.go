package materials

// Base material sets per service category, before condition-specific
// overrides.
var baseSpecs = map[Category]Spec{
	CleanWater: {
		Body:    "Carbon Steel (ASTM A216 WCB)",
		Trim:    "316 SS",
		Bolting: "ASTM A193 B7 / A194 2H",
		Gasket:  "Spiral Wound 316SS/Graphite",
	},
	Seawater: {
		Body:    "316 SS (ASTM A351 CF8M)",
		Trim:    "Super Duplex SS",
		Bolting: "ASTM A193 B8M / A194 8M",
		Gasket:  "Spiral Wound Super Duplex/PTFE",
	},
	SourService: {
		Body:    "316L SS (ASTM A351 CF3M)",
		Trim:    "Inconel 625",
		Bolting: "ASTM A193 B8MLCuN / A194 8MLCuN",
		Gasket:  "Spiral Wound Inconel/PTFE",
	},
	HighTemperature: {
		Body:    "Chrome-Moly (ASTM A217 C12)",
		Trim:    "Stellite overlay on 316 SS",
		Bolting: "ASTM A193 B16 / A194 4",
		Gasket:  "RTJ or Spiral Wound 316SS/Mica",
	},
	Cryogenic: {
		Body:    "316L SS (ASTM A351 CF3M)",
		Trim:    "316L SS",
		Bolting: "ASTM A193 B8M / A194 8M",
		Gasket:  "Spiral Wound 316L/PTFE",
	},
}

func baseSpec(cat Category) *Spec {
	base, ok := baseSpecs[cat]
	if !ok {
		base = baseSpecs[CleanWater]
	}
	spec := base
	spec.Category = cat
	return &spec
}

func complianceStandards(cat Category, tags Tags) []string {
	standards := []string{"ASME B16.34", "API 6D"}
	if cat == SourService {
		standards = append(standards, "NACE MR0175", "ISO 15156")
	}
	if tags.Temperature > 400 {
		standards = append(standards, "ASME VIII Div 1 High Temperature")
	}
	if tags.Pressure > 100 {
		standards = append(standards, "ASME B31.3 High Pressure")
	}
	return standards
}

func testingRequirements(cat Category, tags Tags) []string {
	tests := []string{"Hydrostatic test", "Visual inspection"}
	if tags.Temperature < -29 {
		tests = append(tests, "Charpy impact test at design temperature")
	}
	if tags.Temperature > 400 {
		tests = append(tests, "Creep and stress rupture testing")
	}
	if cat == SourService {
		tests = append(tests, "Hardness testing (HRC <= 22)", "SSC testing per NACE TM0177")
	}
	if tags.Pressure > 100 {
		tests = append(tests, "Pneumatic test at 110% design pressure")
	}
	return tests
}

func serviceNotes(cat Category, tags Tags) []string {
	var notes []string
	if tags.Temperature > 300 {
		notes = append(notes, "Post-weld heat treatment (PWHT) required for pressure boundary welds")
	}
	if tags.Temperature < -29 {
		notes = append(notes, "Charpy impact testing required for low-temperature service")
	}
	if cat == SourService {
		notes = append(notes, "Hardness testing (HRC <= 22) required for all pressure boundary materials")
	}
	if tags.Pressure > 40 {
		notes = append(notes, "Hydrostatic testing at 1.5x design pressure recommended")
	}
	if tags.Nature == NatureAbrasive {
		notes = append(notes, "Consider replaceable wear plates or hardening treatments")
	}
	return notes
}
