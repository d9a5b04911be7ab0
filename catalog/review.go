package catalog

import (
	"github.com/openvalve/go-sizing/process"
	"github.com/openvalve/go-sizing/valve"
)

// Review checks a valve selection against its catalog envelope and the
// operating conditions, returning advisory issues. It never fails the
// sizing run; hard input errors belong to Validate on the inputs.
func (s *Store) Review(sel valve.Selection, cond process.Conditions) process.Diagnostics {
	var diags process.Diagnostics

	if sel.Type == valve.Globe && sel.Size > 24 {
		diags.Add(process.SeverityWarning, "selection",
			"globe valves above 24 in are uncommon",
			"consider a segmented ball or butterfly valve at this size")
	}
	if sel.Type == valve.Butterfly && sel.Size < 3 {
		diags.Add(process.SeverityWarning, "selection",
			"butterfly valves below 3 in have poor rangeability",
			"consider a globe valve at this size")
	}

	st, err := s.Style(sel.Type, sel.Style)
	if err != nil {
		diags.Warn("selection", "style %q not in catalog, envelope checks skipped", sel.Style)
		return diags
	}
	tempC := cond.T1 - 273.15
	if tempC < st.TempRangeC[0] || tempC > st.TempRangeC[1] {
		diags.Warn("selection", "operating temperature %.0f °C outside style range %.0f to %.0f °C",
			tempC, st.TempRangeC[0], st.TempRangeC[1])
	}

	if sel.Vendor != "" {
		sr, err := s.Vendor(sel.Vendor, sel.Series)
		switch {
		case err != nil:
			diags.Warn("selection", "vendor series %s %s not in catalog", sel.Vendor, sel.Series)
		case sr.Type != sel.Type:
			diags.Warn("selection", "series %s is a %s line, not %s", sr.Name, sr.Type, sel.Type)
		case !sr.HasSize(sel.Size):
			diags.Warn("selection", "series %s is not built in %d in", sr.Name, sel.Size)
		}
	}
	return diags
}
