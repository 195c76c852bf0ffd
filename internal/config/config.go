package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for a connectivity test run
type Config struct {
	Targets      []string      `mapstructure:"targets"`
	Ports        []int         `mapstructure:"ports"`
	PingCount    int           `mapstructure:"ping_count"`
	PingTimeout  time.Duration `mapstructure:"ping_timeout"`
	PortTimeout  time.Duration `mapstructure:"port_timeout"`
	DNSServer    string        `mapstructure:"dns_server"`
	Concurrency  int           `mapstructure:"concurrency"`
	OutputFile   string        `mapstructure:"output"`
	ChartDir     string        `mapstructure:"chart_dir"`
	DatabasePath string        `mapstructure:"database_path"`
}

// Load reads configuration from an optional YAML file, falling back to
// the built-in defaults for anything not set.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("targets", []string{
		"8.8.8.8",
		"1.1.1.1",
		"www.google.com",
		"www.github.com",
		"www.amazon.com",
	})
	v.SetDefault("ports", []int{80, 443, 53})
	v.SetDefault("ping_count", 4)
	v.SetDefault("ping_timeout", "30s")
	v.SetDefault("port_timeout", "5s")
	v.SetDefault("dns_server", "")
	v.SetDefault("concurrency", 1)
	v.SetDefault("output", "connectivity_report.html")
	v.SetDefault("chart_dir", "")
	v.SetDefault("database_path", "")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if len(c.Targets) == 0 {
		return fmt.Errorf("at least one target must be specified")
	}
	if len(c.Ports) == 0 {
		return fmt.Errorf("at least one port must be specified")
	}
	for _, p := range c.Ports {
		if p < 1 || p > 65535 {
			return fmt.Errorf("port must be between 1 and 65535, got %d", p)
		}
	}
	if c.PingCount <= 0 {
		return fmt.Errorf("ping count must be positive")
	}
	if c.PingTimeout <= 0 {
		return fmt.Errorf("ping timeout must be positive")
	}
	if c.PortTimeout <= 0 {
		return fmt.Errorf("port timeout must be positive")
	}
	if c.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be positive")
	}
	if c.OutputFile == "" {
		return fmt.Errorf("output file cannot be empty")
	}
	return nil
}
