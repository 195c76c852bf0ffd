package probe

import (
	"net"
	"testing"
	"time"
)

func TestProbeOpenPort(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to start listener: %v", err)
	}
	defer listener.Close()

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			conn.Close()
		}
	}()

	port := listener.Addr().(*net.TCPAddr).Port

	prober := New(5 * time.Second)
	result := prober.Probe("127.0.0.1", port, 0)

	if !result.Open {
		t.Errorf("expected port %d to be open", port)
	}
	if result.Port != port {
		t.Errorf("result port = %d, want %d", result.Port, port)
	}
	if result.LatencyMs < 0 {
		t.Errorf("latency must be non-negative, got %f", result.LatencyMs)
	}
}

func TestProbeClosedPort(t *testing.T) {
	// Grab a free port and release it so nothing is listening there
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to start listener: %v", err)
	}
	port := listener.Addr().(*net.TCPAddr).Port
	listener.Close()

	prober := New(time.Second)
	result := prober.Probe("127.0.0.1", port, 0)

	if result.Open {
		t.Errorf("expected port %d to be closed", port)
	}
	if result.LatencyMs != 0 {
		t.Errorf("closed port latency must be zero, got %f", result.LatencyMs)
	}
}

func TestProbeTimeout(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping timeout probe in short mode")
	}

	// 192.0.2.0/24 is TEST-NET-1, connects there hang until the timeout
	prober := New(5 * time.Second)
	start := time.Now()
	result := prober.Probe("192.0.2.1", 80, 500*time.Millisecond)
	elapsed := time.Since(start)

	if result.Open {
		t.Error("expected probe into TEST-NET-1 to fail")
	}
	if result.LatencyMs != 0 {
		t.Errorf("failed probe latency must be zero, got %f", result.LatencyMs)
	}
	if elapsed > 3*time.Second {
		t.Errorf("probe did not respect timeout, took %v", elapsed)
	}
}
