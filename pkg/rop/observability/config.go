package observability

import "time"

// Config configures OpenTelemetry export. Nothing is exported unless
// Enabled is set.
type Config struct {
	Enabled        bool          `yaml:"enabled" mapstructure:"enabled"`
	ServiceName    string        `yaml:"service_name" mapstructure:"service_name"`
	ServiceVersion string        `yaml:"service_version" mapstructure:"service_version"`
	Endpoint       string        `yaml:"endpoint" mapstructure:"endpoint" validate:"required_if=Enabled true"`
	Insecure       bool          `yaml:"insecure" mapstructure:"insecure"`
	SampleRate     float64       `yaml:"sample_rate" mapstructure:"sample_rate" validate:"gte=0,lte=1"`
	Interval       time.Duration `yaml:"interval" mapstructure:"interval" validate:"gte=0"`
}

// ApplyDefaults applies default values.
func (c *Config) ApplyDefaults() {
	if c.ServiceName == "" {
		c.ServiceName = "flowless"
	}
	if c.ServiceVersion == "" {
		c.ServiceVersion = "1.0.0"
	}
	if c.Endpoint == "" && c.Enabled {
		c.Endpoint = "localhost:4318"
	}
	// An unset rate samples everything; disable telemetry to sample nothing.
	if c.SampleRate == 0 {
		c.SampleRate = 1.0
	}
	if c.Interval == 0 {
		c.Interval = 15 * time.Second
	}
}
