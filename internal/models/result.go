package models

import "time"

// DNSResult records the outcome of resolving one target.
type DNSResult struct {
	Resolved bool   `json:"resolved"`
	Address  string `json:"address,omitempty"`
}

// PingStats holds the values scraped from ping output. Fields that the
// output did not contain stay at their zero defaults.
type PingStats struct {
	Sent     int     `json:"sent"`
	Received int     `json:"received"`
	LossPct  int     `json:"loss_pct"` // percentage, 0-100
	MinMs    float64 `json:"min_ms"`
	AvgMs    float64 `json:"avg_ms"`
	MaxMs    float64 `json:"max_ms"`
}

// PingOutput is the raw capture from one ping invocation. A nil
// PingOutput means the process produced no result at all (timeout or
// failure to start).
type PingOutput struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// PortResult records a single TCP connect attempt.
type PortResult struct {
	Port      int     `json:"port"`
	Open      bool    `json:"open"`
	LatencyMs float64 `json:"latency_ms"`
}

// TargetResult is the full record for one tested target. When DNS
// resolution fails the ping and port fields stay empty.
type TargetResult struct {
	Target    string       `json:"target"`
	Timestamp time.Time    `json:"timestamp"`
	DNS       DNSResult    `json:"dns"`
	PingOK    bool         `json:"ping_ok"`
	PingError string       `json:"ping_error,omitempty"`
	PingStats PingStats    `json:"ping_stats"`
	Ports     []PortResult `json:"port_results"`
}

// OpenPorts counts the open entries in Ports.
func (r TargetResult) OpenPorts() int {
	n := 0
	for _, p := range r.Ports {
		if p.Open {
			n++
		}
	}
	return n
}
