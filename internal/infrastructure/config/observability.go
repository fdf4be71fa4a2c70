package config

import (
	"net"
	"strconv"
)

// LoggingConfig controls the zap logger built for every command. Game output goes to
// stdout, so logs default to stderr to keep the two apart.
type LoggingConfig struct {
	Level    string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format   string `mapstructure:"format" validate:"required,oneof=json console"`
	Output   string `mapstructure:"output" validate:"required,oneof=stdout stderr file"`
	FilePath string `mapstructure:"file_path" validate:"required_if=Output file"`

	IncludeCaller     bool `mapstructure:"include_caller"`
	IncludeStacktrace bool `mapstructure:"include_stacktrace"` // on Error and above
}

// MetricsConfig exposes the economy gauges and request counters to Prometheus.
// Off unless enabled; a single-player session rarely needs scraping.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Host    string `mapstructure:"host"`
	Port    int    `mapstructure:"port" validate:"omitempty,min=1024,max=65535"`
	Path    string `mapstructure:"path" validate:"omitempty,startswith=/"`
}

// Address is the listen address of the metrics endpoint
func (m MetricsConfig) Address() string {
	return net.JoinHostPort(m.Host, strconv.Itoa(m.Port))
}
