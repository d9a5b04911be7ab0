package catalog

import "github.com/openvalve/go-sizing/valve"

// Travel positions shared by every packaged curve (percent open).
var curveOpenings = [6]float64{10, 30, 50, 70, 90, 100}

func newCurve(name string, sigmaMV, rangeability float64, fl, kc, xt [6]float64) *valve.Curve {
	points := make([]valve.Point, len(curveOpenings))
	for i, opening := range curveOpenings {
		points[i] = valve.Point{Opening: opening, FL: fl[i], Kc: kc[i], Xt: xt[i]}
	}
	return &valve.Curve{
		Name:         name,
		Points:       points,
		SigmaMV:      sigmaMV,
		Rangeability: rangeability,
	}
}

// Packaged trim styles with travel-dependent coefficients from typical
// valve test data. Sigma values are the manufacturer vibration limits
// published per style.
var builtinStyles = map[valve.Type]map[string]*Style{
	valve.Globe: {
		"Standard, Cage-Guided": {
			Name:        "Standard, Cage-Guided",
			Description: "General purpose, excellent throttling, moderate capacity.",
			Curve: newCurve("Standard, Cage-Guided", 0.8, 50,
				[6]float64{0.85, 0.88, 0.90, 0.90, 0.89, 0.88},
				[6]float64{0.75, 0.72, 0.70, 0.69, 0.68, 0.67},
				[6]float64{0.70, 0.73, 0.75, 0.76, 0.75, 0.74}),
			BaseFL: 0.90, BaseKc: 0.70, BaseXt: 0.75,
			CvEfficiency:    0.85,
			PressureClasses: []string{"150", "300", "600", "900", "1500"},
			TempRangeC:      [2]float64{-29, 427},
		},
		"Low-Noise, Multi-Path": {
			Name:        "Low-Noise, Multi-Path",
			Description: "Designed to attenuate aerodynamic noise in gas service.",
			Curve: newCurve("Low-Noise, Multi-Path", 1.2, 40,
				[6]float64{0.92, 0.94, 0.95, 0.95, 0.94, 0.93},
				[6]float64{0.85, 0.82, 0.80, 0.79, 0.78, 0.77},
				[6]float64{0.75, 0.78, 0.80, 0.81, 0.80, 0.79}),
			BaseFL: 0.95, BaseKc: 0.80, BaseXt: 0.80,
			CvEfficiency:    0.75,
			PressureClasses: []string{"150", "300", "600"},
			TempRangeC:      [2]float64{-20, 400},
		},
		"Anti-Cavitation, Multi-Stage": {
			Name:        "Anti-Cavitation, Multi-Stage",
			Description: "Reduces pressure in multiple steps to prevent cavitation damage.",
			Curve: newCurve("Anti-Cavitation, Multi-Stage", 1.5, 30,
				[6]float64{0.95, 0.97, 0.98, 0.98, 0.97, 0.96},
				[6]float64{0.90, 0.87, 0.85, 0.84, 0.83, 0.82},
				[6]float64{0.80, 0.83, 0.85, 0.86, 0.85, 0.84}),
			BaseFL: 0.98, BaseKc: 0.85, BaseXt: 0.85,
			CvEfficiency:    0.70,
			PressureClasses: []string{"150", "300", "600", "900"},
			TempRangeC:      [2]float64{-20, 400},
		},
		"Port-Guided, Quick Opening": {
			Name:        "Port-Guided, Quick Opening",
			Description: "Best for on/off service, poor throttling.",
			Curve: newCurve("Port-Guided, Quick Opening", 0.8, 20,
				[6]float64{0.80, 0.83, 0.85, 0.85, 0.84, 0.83},
				[6]float64{0.70, 0.67, 0.65, 0.64, 0.63, 0.62},
				[6]float64{0.65, 0.68, 0.70, 0.71, 0.70, 0.69}),
			BaseFL: 0.85, BaseKc: 0.65, BaseXt: 0.70,
			CvEfficiency:    0.90,
			PressureClasses: []string{"150", "300", "600"},
			TempRangeC:      [2]float64{-29, 427},
		},
	},
	valve.BallSegmented: {
		"Standard V-Notch": {
			Name:        "Standard V-Notch",
			Description: "Good rangeability and throttling, suitable for slurries.",
			Curve: newCurve("Standard V-Notch", 0.7, 100,
				[6]float64{0.75, 0.78, 0.80, 0.81, 0.80, 0.79},
				[6]float64{0.65, 0.62, 0.60, 0.59, 0.58, 0.57},
				[6]float64{0.35, 0.38, 0.40, 0.41, 0.40, 0.39}),
			BaseFL: 0.80, BaseKc: 0.60, BaseXt: 0.40,
			CvEfficiency:    0.95,
			PressureClasses: []string{"150", "300", "600", "900", "1500"},
			TempRangeC:      [2]float64{-46, 232},
		},
		"High-Performance": {
			Name:        "High-Performance",
			Description: "Higher capacity, but less pressure recovery.",
			Curve: newCurve("High-Performance", 1.0, 80,
				[6]float64{0.70, 0.73, 0.75, 0.76, 0.75, 0.74},
				[6]float64{0.60, 0.57, 0.55, 0.54, 0.53, 0.52},
				[6]float64{0.30, 0.33, 0.35, 0.36, 0.35, 0.34}),
			BaseFL: 0.75, BaseKc: 0.55, BaseXt: 0.35,
			CvEfficiency:    0.98,
			PressureClasses: []string{"150", "300", "600", "900"},
			TempRangeC:      [2]float64{-46, 232},
		},
	},
	valve.Butterfly: {
		"Standard, Centric Disc": {
			Name:        "Standard, Centric Disc",
			Description: "Low cost, high capacity, limited throttling range.",
			Curve: newCurve("Standard, Centric Disc", 0.6, 20,
				[6]float64{0.65, 0.68, 0.70, 0.71, 0.70, 0.69},
				[6]float64{0.55, 0.52, 0.50, 0.49, 0.48, 0.47},
				[6]float64{0.25, 0.28, 0.30, 0.31, 0.30, 0.29}),
			BaseFL: 0.70, BaseKc: 0.50, BaseXt: 0.30,
			CvEfficiency:    0.95,
			PressureClasses: []string{"150", "300"},
			TempRangeC:      [2]float64{-40, 200},
		},
		"High-Performance, Double Offset": {
			Name:        "High-Performance, Double Offset",
			Description: "Better shutoff and control than standard butterfly valves.",
			Curve: newCurve("High-Performance, Double Offset", 0.9, 50,
				[6]float64{0.80, 0.83, 0.85, 0.86, 0.85, 0.84},
				[6]float64{0.70, 0.67, 0.65, 0.64, 0.63, 0.62},
				[6]float64{0.50, 0.53, 0.55, 0.56, 0.55, 0.54}),
			BaseFL: 0.85, BaseKc: 0.65, BaseXt: 0.55,
			CvEfficiency:    0.90,
			PressureClasses: []string{"150", "300", "600"},
			TempRangeC:      [2]float64{-40, 260},
		},
	},
}
