package process

import "fmt"

// Severity grades a diagnostic issue.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Issue is a single diagnostic recorded on a calculation result.
// Non-fatal conditions (convergence shortfalls, velocity warnings,
// clamped lookups) are reported this way rather than as errors, so a
// best-effort result is always available to the caller.
type Issue struct {
	Severity   Severity `json:"severity"`
	Category   string   `json:"category"` // "convergence", "velocity", "cavitation", ...
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion,omitempty"`
}

// Diagnostics accumulates issues on a result.
type Diagnostics []Issue

// Add appends an issue with the given severity.
func (d *Diagnostics) Add(severity Severity, category, message, suggestion string) {
	*d = append(*d, Issue{
		Severity:   severity,
		Category:   category,
		Message:    message,
		Suggestion: suggestion,
	})
}

// Info appends an informational issue.
func (d *Diagnostics) Info(category, format string, args ...interface{}) {
	d.Add(SeverityInfo, category, fmt.Sprintf(format, args...), "")
}

// Warn appends a warning issue.
func (d *Diagnostics) Warn(category, format string, args ...interface{}) {
	d.Add(SeverityWarning, category, fmt.Sprintf(format, args...), "")
}

// Critical appends a critical issue.
func (d *Diagnostics) Critical(category, format string, args ...interface{}) {
	d.Add(SeverityCritical, category, fmt.Sprintf(format, args...), "")
}

// Warnings returns the subset of issues at warning severity or above.
func (d Diagnostics) Warnings() []Issue {
	out := make([]Issue, 0, len(d))
	for _, issue := range d {
		if issue.Severity == SeverityWarning || issue.Severity == SeverityCritical {
			out = append(out, issue)
		}
	}
	return out
}

// Has reports whether any issue in the given category is present.
func (d Diagnostics) Has(category string) bool {
	for _, issue := range d {
		if issue.Category == category {
			return true
		}
	}
	return false
}
