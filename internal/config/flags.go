package config

import (
	"flag"
	"strings"
)

// ParseFlags parses command-line flags, loads the optional config file
// and applies flag overrides on top of it.
func ParseFlags() (Config, error) {
	var (
		configFile  = flag.String("config", "", "Optional YAML config file")
		targets     = flag.String("targets", "", "Comma-separated test targets (overrides config)")
		output      = flag.String("output", "", "Report output file (overrides config)")
		dbPath      = flag.String("db", "", "SQLite database for run history (empty disables)")
		chartDir    = flag.String("charts", "", "Directory for PNG charts (empty disables)")
		dnsServer   = flag.String("dns-server", "", "DNS server to query directly, host:port (empty uses system resolver)")
		concurrency = flag.Int("concurrency", 0, "Targets tested in parallel (overrides config)")
	)
	flag.Parse()

	cfg, err := Load(*configFile)
	if err != nil {
		return Config{}, err
	}

	if *targets != "" {
		cfg.Targets = strings.Split(*targets, ",")
	}
	if *output != "" {
		cfg.OutputFile = *output
	}
	if *dbPath != "" {
		cfg.DatabasePath = *dbPath
	}
	if *chartDir != "" {
		cfg.ChartDir = *chartDir
	}
	if *dnsServer != "" {
		cfg.DNSServer = *dnsServer
	}
	if *concurrency > 0 {
		cfg.Concurrency = *concurrency
	}

	return cfg, nil
}
