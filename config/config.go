// Package config loads engine settings from an INI file. The
// calculator packages never read files themselves; Settings produces
// the option structs they accept, so a missing or partial file
// degrades to the built-in defaults key by key.
package config

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"

	"github.com/openvalve/go-sizing/actuator"
	"github.com/openvalve/go-sizing/catalog"
	"github.com/openvalve/go-sizing/flow"
	"github.com/openvalve/go-sizing/noise"
	"github.com/openvalve/go-sizing/scenario"
)

// Settings is the full engine configuration.
type Settings struct {
	Sizing     SizingSettings
	Noise      NoiseSettings
	Actuator   ActuatorSettings
	Validation ValidationSettings
	Logging    LoggingSettings
}

// SizingSettings tune the flow coefficient calculators.
type SizingSettings struct {
	ReynoldsTolerance float64
	ReynoldsMaxIters  int
	MachWarning       float64
	MachExtreme       float64
	SkipViscous       bool
}

// NoiseSettings pick the prediction strategy, "simplified" or "iec".
type NoiseSettings struct {
	Method string
}

// ActuatorSettings carry the sizing margin policy. A zero safety
// factor means the per-type default applies.
type ActuatorSettings struct {
	SafetyFactor float64
}

// ValidationSettings tune the scenario validator.
type ValidationSettings struct {
	BandLow  float64
	BandHigh float64
	Parallel bool
}

// LoggingSettings control the logrus global level.
type LoggingSettings struct {
	Level string
}

// Default returns the built-in settings without touching disk.
func Default() *Settings {
	return &Settings{
		Sizing: SizingSettings{
			ReynoldsTolerance: 0.01,
			ReynoldsMaxIters:  10,
			MachWarning:       0.3,
			MachExtreme:       0.7,
		},
		Noise:      NoiseSettings{Method: "simplified"},
		Actuator:   ActuatorSettings{},
		Validation: ValidationSettings{BandLow: 20, BandHigh: 80},
		Logging:    LoggingSettings{Level: "info"},
	}
}

// Load reads settings from an INI file. Keys absent from the file keep
// their defaults; a missing file is an error.
func Load(path string) (*Settings, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	return fromFile(file), nil
}

func fromFile(file *ini.File) *Settings {
	def := Default()
	return &Settings{
		Sizing: SizingSettings{
			ReynoldsTolerance: file.Section("sizing").Key("ReynoldsTolerance").MustFloat64(def.Sizing.ReynoldsTolerance),
			ReynoldsMaxIters:  file.Section("sizing").Key("ReynoldsMaxIters").MustInt(def.Sizing.ReynoldsMaxIters),
			MachWarning:       file.Section("sizing").Key("MachWarning").MustFloat64(def.Sizing.MachWarning),
			MachExtreme:       file.Section("sizing").Key("MachExtreme").MustFloat64(def.Sizing.MachExtreme),
			SkipViscous:       file.Section("sizing").Key("SkipViscous").MustBool(def.Sizing.SkipViscous),
		},
		Noise: NoiseSettings{
			Method: file.Section("noise").Key("Method").MustString(def.Noise.Method),
		},
		Actuator: ActuatorSettings{
			SafetyFactor: file.Section("actuator").Key("SafetyFactor").MustFloat64(def.Actuator.SafetyFactor),
		},
		Validation: ValidationSettings{
			BandLow:  file.Section("validation").Key("BandLow").MustFloat64(def.Validation.BandLow),
			BandHigh: file.Section("validation").Key("BandHigh").MustFloat64(def.Validation.BandHigh),
			Parallel: file.Section("validation").Key("Parallel").MustBool(def.Validation.Parallel),
		},
		Logging: LoggingSettings{
			Level: file.Section("logging").Key("Level").MustString(def.Logging.Level),
		},
	}
}

// FlowOptions builds the sizing options the flow calculators accept.
func (s *Settings) FlowOptions() *flow.Options {
	return &flow.Options{
		ReynoldsTolerance: s.Sizing.ReynoldsTolerance,
		ReynoldsMaxIters:  s.Sizing.ReynoldsMaxIters,
		MachWarning:       s.Sizing.MachWarning,
		MachExtreme:       s.Sizing.MachExtreme,
		SkipViscous:       s.Sizing.SkipViscous,
	}
}

// Predictor returns the configured noise strategy. Unrecognized method
// names fall back to the simplified estimate with a warning.
func (s *Settings) Predictor() noise.Predictor {
	switch strings.ToLower(s.Noise.Method) {
	case "iec", "iec60534", "iec 60534-8-3":
		return noise.IEC60534()
	case "", "simplified":
		return noise.Simplified()
	default:
		log.WithFields(log.Fields{
			"method": s.Noise.Method,
		}).Warn("unknown noise method, using simplified estimation")
		return noise.Simplified()
	}
}

// ActuatorOptions builds the actuator sizing options. Only the margin
// policy comes from configuration; type and rated capacity are
// per-valve inputs.
func (s *Settings) ActuatorOptions() *actuator.Options {
	return &actuator.Options{SafetyFactor: s.Actuator.SafetyFactor}
}

// Validator builds a fully wired scenario validator over the given
// catalog.
func (s *Settings) Validator(store *catalog.Store) *scenario.Validator {
	return scenario.NewValidator(store).
		WithNoise(s.Predictor()).
		WithOptions(s.FlowOptions()).
		WithBand(s.Validation.BandLow, s.Validation.BandHigh).
		WithParallel(s.Validation.Parallel)
}

// ConfigureLogging applies the configured level to the global logger.
// Unparseable levels keep logrus at info.
func (s *Settings) ConfigureLogging() {
	level, err := log.ParseLevel(s.Logging.Level)
	if err != nil {
		log.SetLevel(log.InfoLevel)
		log.WithFields(log.Fields{
			"level": s.Logging.Level,
		}).Warn("unknown log level, using info")
		return
	}
	log.SetLevel(level)
}
