package cavitation

// Level classifies the cavitation severity band the operating sigma
// falls into. When sigma sits on a boundary the more severe band wins.
type Level string

const (
	// LevelNone means no cavitation occurs.
	LevelNone Level = "none"
	// LevelIncipient means cavitation is just detectable; acceptable
	// with monitoring.
	LevelIncipient Level = "incipient"
	// LevelDamage means material damage can begin; a trim change is
	// recommended.
	LevelDamage Level = "damage"
	// LevelChoking means severe cavitation; unacceptable for
	// continuous service.
	LevelChoking Level = "choking"
)

// Risk grades the consequence of operating at a level.
type Risk string

const (
	RiskLow      Risk = "low"
	RiskMedium   Risk = "medium"
	RiskHigh     Risk = "high"
	RiskCritical Risk = "critical"
)

// Result holds the sigma analysis: the operating sigma, the threshold
// ladder derived from the trim coefficients, and the classification.
type Result struct {
	Sigma   float64 `json:"sigma"`
	SigmaCh float64 `json:"sigmaCh"` // Choking threshold, 1/FL²
	SigmaD  float64 `json:"sigmaD"`  // Damage threshold
	SigmaC  float64 `json:"sigmaC"`  // Constant cavitation threshold
	SigmaI  float64 `json:"sigmaI"`  // Incipient threshold
	SigmaMV float64 `json:"sigmaMv,omitempty"`

	Level       Level  `json:"level"`
	Risk        Risk   `json:"risk"`
	Description string `json:"description"`

	// MarginToDamage is sigma minus the damage threshold, populated
	// whenever the operating point is below the incipient threshold.
	// Negative means damage conditions are already present.
	MarginToDamage float64 `json:"marginToDamage,omitempty"`

	TrimRecommendation string `json:"trimRecommendation"`

	// VibrationExceeded reports the manufacturer sigma limit being
	// crossed, when one was supplied.
	VibrationExceeded bool `json:"vibrationExceeded,omitempty"`
}

// Options configure the analyzer.
type Options struct {
	// SigmaMV is the manufacturer vibration sigma limit from vendor or
	// curve data. Zero means unpublished.
	SigmaMV float64
}
