package probe

import (
	"net"
	"strconv"
	"time"

	"connectivity-report/internal/models"
)

// Prober tests whether TCP ports accept connections.
type Prober struct {
	timeout time.Duration
}

// New creates a new Prober.
func New(timeout time.Duration) *Prober {
	return &Prober{timeout: timeout}
}

// Probe attempts a TCP connect to host:port and measures the time the
// connect took. Refused, filtered and timed-out attempts all collapse
// to closed with zero latency.
func (p *Prober) Probe(host string, port int, timeout time.Duration) models.PortResult {
	if timeout <= 0 {
		timeout = p.timeout
	}

	addr := net.JoinHostPort(host, strconv.Itoa(port))

	start := time.Now()
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return models.PortResult{Port: port, Open: false, LatencyMs: 0}
	}
	elapsed := time.Since(start)
	conn.Close()

	return models.PortResult{
		Port:      port,
		Open:      true,
		LatencyMs: float64(elapsed.Microseconds()) / 1000.0,
	}
}
