package report

import (
	"fmt"
	"io"
	"strings"

	"connectivity-report/internal/models"
)

// WriteText writes a plain-text summary of the run to w.
func WriteText(w io.Writer, run *models.Run) error {
	summary := models.Summarize(run.Results)

	fmt.Fprintf(w, "Network Connectivity Report\n")
	fmt.Fprintf(w, "Run: %s\n", run.ID)
	fmt.Fprintf(w, "Generated: %s\n\n", run.StartedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintln(w, strings.Repeat("=", 60))

	fmt.Fprintf(w, "\nTargets tested:     %d\n", summary.TargetsTested)
	fmt.Fprintf(w, "Successful pings:   %d\n", summary.SuccessfulPings)
	fmt.Fprintf(w, "DNS resolutions:    %d\n", summary.DNSResolutions)
	fmt.Fprintf(w, "Open ports:         %d\n\n", summary.OpenPorts)
	fmt.Fprintln(w, strings.Repeat("=", 60))

	for _, r := range run.Results {
		fmt.Fprintf(w, "\nTarget: %s\n", r.Target)

		if !r.DNS.Resolved {
			fmt.Fprintf(w, "  DNS: failed to resolve\n")
			continue
		}
		fmt.Fprintf(w, "  DNS: %s\n", r.DNS.Address)

		if r.PingOK {
			s := r.PingStats
			fmt.Fprintf(w, "  Ping: ok, sent=%d received=%d loss=%d%%\n", s.Sent, s.Received, s.LossPct)
			fmt.Fprintf(w, "  RTT: min=%.1fms avg=%.1fms max=%.1fms\n", s.MinMs, s.AvgMs, s.MaxMs)
		} else if r.PingError != "" {
			fmt.Fprintf(w, "  Ping: failed (%s)\n", r.PingError)
		} else {
			fmt.Fprintf(w, "  Ping: failed\n")
		}

		for _, p := range r.Ports {
			if p.Open {
				fmt.Fprintf(w, "  Port %d: open (%.1fms)\n", p.Port, p.LatencyMs)
			} else {
				fmt.Fprintf(w, "  Port %d: closed\n", p.Port)
			}
		}
	}

	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 60))
	return nil
}
