package valve

import "fmt"

// Point holds the pressure-recovery and terminal-drop-ratio
// coefficients at one travel position.
type Point struct {
	Opening float64 `json:"opening"` // Travel percent
	FL      float64 `json:"fl"`      // Liquid pressure recovery factor
	Kc      float64 `json:"kc"`      // Cavitation index coefficient
	Xt      float64 `json:"xt"`      // Terminal pressure drop ratio
}

// Curve is a travel-indexed coefficient table for one trim style.
// Points must be sorted by strictly increasing opening.
type Curve struct {
	Name         string  `json:"name"`
	Points       []Point `json:"points"`
	SigmaMV      float64 `json:"sigmaMv,omitempty"`      // Manufacturer sigma, 0 when unpublished
	Rangeability float64 `json:"rangeability,omitempty"` // Inherent rangeability (turndown)
}

// Validate checks that the curve is interpolatable: at least two
// points, openings strictly increasing within (0, 100], coefficients
// positive.
func (c *Curve) Validate() error {
	if len(c.Points) < 2 {
		return fmt.Errorf("curve %q has %d points, need at least 2: %w", c.Name, len(c.Points), ErrInvalidCurve)
	}
	prev := 0.0
	for i, p := range c.Points {
		if p.Opening <= prev {
			return fmt.Errorf("curve %q openings not strictly increasing at index %d: %w", c.Name, i, ErrInvalidCurve)
		}
		if p.Opening > 100 {
			return fmt.Errorf("curve %q opening %.4g exceeds 100%%: %w", c.Name, p.Opening, ErrInvalidCurve)
		}
		if p.FL <= 0 || p.Kc <= 0 || p.Xt <= 0 {
			return fmt.Errorf("curve %q has non-positive coefficient at index %d: %w", c.Name, i, ErrInvalidCurve)
		}
		prev = p.Opening
	}
	return nil
}

// At returns the coefficients at the given opening by piecewise-linear
// interpolation between adjacent points. Openings outside the tabulated
// range clamp to the nearest endpoint; clamped reports when that
// happened. An opening that lands exactly on a tabulated point returns
// that point unchanged.
func (c *Curve) At(opening float64) (Point, bool, error) {
	if err := c.Validate(); err != nil {
		return Point{}, false, err
	}
	xs := make([]float64, len(c.Points))
	fls := make([]float64, len(c.Points))
	kcs := make([]float64, len(c.Points))
	xts := make([]float64, len(c.Points))
	for i, p := range c.Points {
		xs[i] = p.Opening
		fls[i] = p.FL
		kcs[i] = p.Kc
		xts[i] = p.Xt
	}
	fl, clamped := Interpolate(opening, xs, fls)
	kc, _ := Interpolate(opening, xs, kcs)
	xt, _ := Interpolate(opening, xs, xts)
	return Point{Opening: opening, FL: fl, Kc: kc, Xt: xt}, clamped, nil
}

// Interpolate evaluates a piecewise-linear curve y(x) defined by the
// parallel slices xs (strictly increasing) and ys. Values of x outside
// [xs[0], xs[len-1]] clamp to the nearest endpoint; the second return
// reports whether clamping occurred. Callers must pass len(xs) ==
// len(ys) >= 2.
func Interpolate(x float64, xs, ys []float64) (float64, bool) {
	n := len(xs)
	if x <= xs[0] {
		return ys[0], x < xs[0]
	}
	if x >= xs[n-1] {
		return ys[n-1], x > xs[n-1]
	}
	for i := 1; i < n; i++ {
		if x <= xs[i] {
			if x == xs[i] {
				return ys[i], false
			}
			frac := (x - xs[i-1]) / (xs[i] - xs[i-1])
			return ys[i-1] + frac*(ys[i]-ys[i-1]), false
		}
	}
	return ys[n-1], false
}
