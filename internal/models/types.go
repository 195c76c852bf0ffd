package models

import (
	"context"
	"time"
)

// Resolver interface defines DNS resolution operations
type Resolver interface {
	Resolve(ctx context.Context, target string) DNSResult
}

// Pinger interface defines ping execution operations
type Pinger interface {
	Ping(ctx context.Context, target string) (*PingOutput, error)
}

// Prober interface defines TCP port probe operations
type Prober interface {
	Probe(host string, port int, timeout time.Duration) PortResult
}

// Database interface defines operations for run persistence
type Database interface {
	SaveRun(run *Run) error
	Close() error
}
