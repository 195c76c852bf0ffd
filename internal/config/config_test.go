package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(cfg.Targets) != 5 {
		t.Errorf("expected 5 default targets, got %d", len(cfg.Targets))
	}
	if len(cfg.Ports) != 3 {
		t.Errorf("expected 3 default ports, got %d", len(cfg.Ports))
	}
	if cfg.Ports[0] != 80 || cfg.Ports[1] != 443 || cfg.Ports[2] != 53 {
		t.Errorf("unexpected default ports: %v", cfg.Ports)
	}
	if cfg.PingCount != 4 {
		t.Errorf("expected ping count 4, got %d", cfg.PingCount)
	}
	if cfg.PingTimeout != 30*time.Second {
		t.Errorf("expected 30s ping timeout, got %v", cfg.PingTimeout)
	}
	if cfg.PortTimeout != 5*time.Second {
		t.Errorf("expected 5s port timeout, got %v", cfg.PortTimeout)
	}
	if cfg.OutputFile != "connectivity_report.html" {
		t.Errorf("unexpected default output file: %s", cfg.OutputFile)
	}
	if cfg.Concurrency != 1 {
		t.Errorf("expected sequential default, got concurrency %d", cfg.Concurrency)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
targets:
  - 127.0.0.1
ports: [22, 8080]
ping_count: 2
output: out.html
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(cfg.Targets) != 1 || cfg.Targets[0] != "127.0.0.1" {
		t.Errorf("unexpected targets: %v", cfg.Targets)
	}
	if len(cfg.Ports) != 2 || cfg.Ports[0] != 22 {
		t.Errorf("unexpected ports: %v", cfg.Ports)
	}
	if cfg.PingCount != 2 {
		t.Errorf("expected ping count 2, got %d", cfg.PingCount)
	}
	if cfg.OutputFile != "out.html" {
		t.Errorf("unexpected output file: %s", cfg.OutputFile)
	}
	// Unset keys keep their defaults
	if cfg.PortTimeout != 5*time.Second {
		t.Errorf("expected default port timeout, got %v", cfg.PortTimeout)
	}
}

func TestValidate(t *testing.T) {
	base := func() Config {
		cfg, _ := Load("")
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"no targets", func(c *Config) { c.Targets = nil }, true},
		{"no ports", func(c *Config) { c.Ports = nil }, true},
		{"port out of range", func(c *Config) { c.Ports = []int{70000} }, true},
		{"zero ping count", func(c *Config) { c.PingCount = 0 }, true},
		{"zero ping timeout", func(c *Config) { c.PingTimeout = 0 }, true},
		{"zero port timeout", func(c *Config) { c.PortTimeout = 0 }, true},
		{"zero concurrency", func(c *Config) { c.Concurrency = 0 }, true},
		{"empty output", func(c *Config) { c.OutputFile = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
