package models

import "time"

// Run is the state of one complete test pass: identity, timing and the
// ordered per-target results. It is populated by the runner and read by
// the report and database layers.
type Run struct {
	ID         string         `json:"id"`
	StartedAt  time.Time      `json:"started_at"`
	FinishedAt time.Time      `json:"finished_at"`
	Results    []TargetResult `json:"results"`
}

// RunSummary holds aggregate counts derived from a result list. It is
// computed at render time and never stored.
type RunSummary struct {
	TargetsTested   int `json:"targets_tested"`
	SuccessfulPings int `json:"successful_pings"`
	DNSResolutions  int `json:"dns_resolutions"`
	OpenPorts       int `json:"open_ports"`
}

// Summarize scans the result list and derives the aggregate counts.
func Summarize(results []TargetResult) RunSummary {
	s := RunSummary{TargetsTested: len(results)}
	for _, r := range results {
		if r.PingOK {
			s.SuccessfulPings++
		}
		if r.DNS.Resolved {
			s.DNSResolutions++
		}
		s.OpenPorts += r.OpenPorts()
	}
	return s
}
