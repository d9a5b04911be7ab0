package catalog

import "github.com/openvalve/go-sizing/valve"

// Rated flow coefficients by nominal size (inches). Ball and butterfly
// bodies of the same line size pass more flow than globes.
var ratedCvs = map[int]map[valve.Type]float64{
	1:  {valve.Globe: 12, valve.BallSegmented: 15, valve.Butterfly: 18},
	2:  {valve.Globe: 50, valve.BallSegmented: 65, valve.Butterfly: 80},
	3:  {valve.Globe: 110, valve.BallSegmented: 140, valve.Butterfly: 170},
	4:  {valve.Globe: 170, valve.BallSegmented: 220, valve.Butterfly: 280},
	6:  {valve.Globe: 400, valve.BallSegmented: 520, valve.Butterfly: 650},
	8:  {valve.Globe: 700, valve.BallSegmented: 900, valve.Butterfly: 1100},
	10: {valve.Globe: 1080, valve.BallSegmented: 1400, valve.Butterfly: 1700},
	12: {valve.Globe: 1750, valve.BallSegmented: 2250, valve.Butterfly: 2800},
	14: {valve.Globe: 2400, valve.BallSegmented: 3100, valve.Butterfly: 3800},
	16: {valve.Globe: 3200, valve.BallSegmented: 4100, valve.Butterfly: 5000},
	18: {valve.Globe: 4100, valve.BallSegmented: 5300, valve.Butterfly: 6500},
	20: {valve.Globe: 5000, valve.BallSegmented: 6500, valve.Butterfly: 8000},
	24: {valve.Globe: 7200, valve.BallSegmented: 9400, valve.Butterfly: 11500},
	30: {valve.Globe: 11000, valve.BallSegmented: 14300, valve.Butterfly: 17500},
	36: {valve.Globe: 16000, valve.BallSegmented: 20800, valve.Butterfly: 25500},
	42: {valve.Globe: 22000, valve.BallSegmented: 28600, valve.Butterfly: 35000},
	48: {valve.Globe: 28000, valve.BallSegmented: 36400, valve.Butterfly: 44500},
	54: {valve.Globe: 36000, valve.BallSegmented: 46800, valve.Butterfly: 57200},
	60: {valve.Globe: 45000, valve.BallSegmented: 58500, valve.Butterfly: 71500},
	66: {valve.Globe: 54000, valve.BallSegmented: 70200, valve.Butterfly: 85800},
	72: {valve.Globe: 65000, valve.BallSegmented: 84500, valve.Butterfly: 103000},
}

// capacityMultiplier estimates a type's capacity relative to a globe
// body of the same size, for sizes tabulated without the type.
func capacityMultiplier(t valve.Type) float64 {
	switch t {
	case valve.BallSegmented:
		return 1.3
	case valve.Butterfly:
		return 1.6
	default:
		return 1.0
	}
}
