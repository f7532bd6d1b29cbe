package config

import (
	"github.com/ib-77/flowless/pkg/rop/logger"
	"github.com/ib-77/flowless/pkg/rop/observability"
)

// Config is the configuration shared by programs built on flowless.
type Config struct {
	Name        string               `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string               `yaml:"environment" mapstructure:"environment" validate:"oneof=development staging production"`
	Logging     logger.Config        `yaml:"logging" mapstructure:"logging"`
	Telemetry   observability.Config `yaml:"telemetry" mapstructure:"telemetry"`
}

// ApplyDefaults applies default values to the configuration.
func (c *Config) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	c.Logging.ApplyDefaults()
	if c.Telemetry.ServiceName == "" {
		c.Telemetry.ServiceName = c.Name
	}
	c.Telemetry.ApplyDefaults()
}
