package peekable

import (
	"github.com/kbukum/itkit/config"
	"github.com/kbukum/itkit/errors"
	"github.com/kbukum/itkit/logger"
	"github.com/kbukum/itkit/observability"
	"github.com/kbukum/itkit/validation"
)

// MetricsSettings controls adapter metrics.
type MetricsSettings struct {
	Enabled   bool   `yaml:"enabled" mapstructure:"enabled"`
	MeterName string `yaml:"meter_name" mapstructure:"meter_name" validate:"required_if=Enabled true"`
}

// Settings holds the instrumentation applied to adapters built from
// configuration.
type Settings struct {
	// Trace logs every pull, fallback and restore at debug level. Leave
	// Logging.Level empty or set it to debug for the entries to show.
	Trace   bool            `yaml:"trace" mapstructure:"trace"`
	Logging logger.Config   `yaml:"logging" mapstructure:"logging"`
	Metrics MetricsSettings `yaml:"metrics" mapstructure:"metrics"`
}

// ApplyDefaults fills unset fields. With Trace on and no logging level set
// the level defaults to debug; an explicit level is kept, so trace entries
// below it are not written.
func (s *Settings) ApplyDefaults() {
	if s.Trace && s.Logging.Level == "" {
		s.Logging.Level = "debug"
	}
	s.Logging.ApplyDefaults()
	if s.Metrics.MeterName == "" {
		s.Metrics.MeterName = observability.DefaultMeterName
	}
}

// Validate checks the settings against their struct tags.
func (s *Settings) Validate() error {
	return validation.Validate(s)
}

// Options builds the adapter options described by s. Defaults are applied
// to a copy, so s is left untouched.
func (s *Settings) Options() ([]Option, error) {
	cfg := *s
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var opts []Option
	if cfg.Trace {
		opts = append(opts, WithLogger(logger.New(&cfg.Logging, "peekable")))
	}
	if cfg.Metrics.Enabled {
		m, err := observability.NewMetrics(observability.Meter(cfg.Metrics.MeterName))
		if err != nil {
			return nil, errors.Internal(err)
		}
		opts = append(opts, WithMetrics(m))
	}
	return opts, nil
}

// LoadSettings reads peekable.yml and PEEKABLE_* environment variables.
func LoadSettings(opts ...config.LoaderOption) (Settings, error) {
	var s Settings
	opts = append([]config.LoaderOption{config.WithEnvPrefix("PEEKABLE")}, opts...)
	if err := config.LoadConfig("peekable", &s, opts...); err != nil {
		return Settings{}, err
	}
	s.ApplyDefaults()
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}
