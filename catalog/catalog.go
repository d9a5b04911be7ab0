// Package catalog is the built-in reference store for valve trim data:
// travel-dependent coefficient curves, rated flow coefficients by
// nominal size, and vendor series overlays. All lookups are read-only
// and return errors for unknown keys rather than falling back to
// defaults, so sizing results always trace to a known trim.
package catalog

import (
	"fmt"
	"sort"

	"github.com/openvalve/go-sizing/valve"
)

// Style describes one trim style of a valve type: its coefficient
// curve plus the published averages and service envelope.
type Style struct {
	Name            string       `json:"name"`
	Description     string       `json:"description"`
	Curve           *valve.Curve `json:"curve"`
	BaseFL          float64      `json:"baseFl"`
	BaseKc          float64      `json:"baseKc"`
	BaseXt          float64      `json:"baseXt"`
	CvEfficiency    float64      `json:"cvEfficiency"`
	PressureClasses []string     `json:"pressureClasses"`
	TempRangeC      [2]float64   `json:"tempRangeC"` // [min, max] °C
}

// Store is an in-memory valve reference catalog. The zero value is
// empty; use Builtin for the packaged data.
type Store struct {
	styles  map[valve.Type]map[string]*Style
	rated   map[int]map[valve.Type]float64
	vendors map[string]map[string]*Series
}

// Builtin returns the packaged catalog. The returned store shares the
// package-level tables; treat everything it hands out as read-only.
func Builtin() *Store {
	return &Store{
		styles:  builtinStyles,
		rated:   ratedCvs,
		vendors: vendorDatabase,
	}
}

// Style returns the full style record for a valve type and trim style.
func (s *Store) Style(t valve.Type, style string) (*Style, error) {
	byStyle, ok := s.styles[t]
	if !ok {
		return nil, fmt.Errorf("valve type %q: %w", t, ErrUnknownValve)
	}
	st, ok := byStyle[style]
	if !ok {
		return nil, fmt.Errorf("style %q for type %q: %w", style, t, ErrUnknownValve)
	}
	return st, nil
}

// Curve returns the travel-dependent coefficient curve for a style.
func (s *Store) Curve(t valve.Type, style string) (*valve.Curve, error) {
	st, err := s.Style(t, style)
	if err != nil {
		return nil, err
	}
	return st.Curve, nil
}

// Styles lists the trim styles available for a valve type, sorted.
func (s *Store) Styles(t valve.Type) []string {
	byStyle := s.styles[t]
	names := make([]string, 0, len(byStyle))
	for name := range byStyle {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RatedCv returns the catalog rated flow coefficient for a nominal
// size and valve type. When the size row exists but lacks an entry for
// the type, the globe rating scaled by the type capacity multiplier
// applies; an unknown size is an error.
func (s *Store) RatedCv(t valve.Type, size int) (float64, error) {
	row, ok := s.rated[size]
	if !ok {
		return 0, fmt.Errorf("nominal size %d: %w", size, ErrUnknownValve)
	}
	if cv, ok := row[t]; ok {
		return cv, nil
	}
	base, ok := row[valve.Globe]
	if !ok {
		return 0, fmt.Errorf("no rating for type %q at size %d: %w", t, size, ErrUnknownValve)
	}
	return base * capacityMultiplier(t), nil
}

// Sizes lists the nominal sizes carried by the rated-Cv table, sorted.
func (s *Store) Sizes() []int {
	sizes := make([]int, 0, len(s.rated))
	for size := range s.rated {
		sizes = append(sizes, size)
	}
	sort.Ints(sizes)
	return sizes
}

// Vendor returns the series record for a vendor and series name.
func (s *Store) Vendor(vendor, series string) (*Series, error) {
	byName, ok := s.vendors[vendor]
	if !ok {
		return nil, fmt.Errorf("vendor %q: %w", vendor, ErrUnknownVendor)
	}
	sr, ok := byName[series]
	if !ok {
		return nil, fmt.Errorf("series %q of vendor %q: %w", series, vendor, ErrUnknownVendor)
	}
	return sr, nil
}

// Vendors lists the vendor names in the catalog, sorted.
func (s *Store) Vendors() []string {
	names := make([]string, 0, len(s.vendors))
	for name := range s.vendors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// VendorSeries lists the series a vendor offers for a valve type,
// sorted. Unknown vendors yield an empty list.
func (s *Store) VendorSeries(vendor string, t valve.Type) []string {
	names := make([]string, 0, 2)
	for name, sr := range s.vendors[vendor] {
		if sr.Type == t {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Resolve returns the coefficient curve for a selection: the explicit
// curve when one is attached, otherwise the catalog curve for the
// selection's type and style.
func (s *Store) Resolve(sel valve.Selection) (*valve.Curve, error) {
	if sel.Curve != nil {
		return sel.Curve, nil
	}
	return s.Curve(sel.Type, sel.Style)
}
