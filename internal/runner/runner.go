package runner

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"connectivity-report/internal/config"
	"connectivity-report/internal/models"
	"connectivity-report/internal/ping"
)

// Runner coordinates the per-target test pipeline: DNS resolution,
// ping, then port probes. Failures in one target never affect another.
type Runner struct {
	cfg      config.Config
	resolver models.Resolver
	pinger   models.Pinger
	prober   models.Prober
	format   ping.Format
}

// New creates a new Runner.
func New(cfg config.Config, resolver models.Resolver, pinger models.Pinger, prober models.Prober, format ping.Format) *Runner {
	return &Runner{
		cfg:      cfg,
		resolver: resolver,
		pinger:   pinger,
		prober:   prober,
		format:   format,
	}
}

// Run tests every configured target and returns the completed run.
// Targets are tested sequentially unless concurrency is raised; result
// order always matches target order.
func (r *Runner) Run(ctx context.Context) *models.Run {
	run := &models.Run{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
		Results:   make([]models.TargetResult, len(r.cfg.Targets)),
	}

	log.Printf("Starting run %s with %d targets", run.ID, len(r.cfg.Targets))

	jobs := make(chan int)
	var wg sync.WaitGroup

	workers := r.cfg.Concurrency
	if workers < 1 {
		workers = 1
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				run.Results[i] = r.testTarget(ctx, r.cfg.Targets[i])
			}
		}()
	}

	for i := range r.cfg.Targets {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	run.FinishedAt = time.Now()
	log.Printf("Run %s complete in %v", run.ID, run.FinishedAt.Sub(run.StartedAt))
	return run
}

// testTarget walks one target through the full pipeline and returns its
// record. DNS failure is the one early exit: the ping and port fields
// stay at their defaults.
func (r *Runner) testTarget(ctx context.Context, target string) models.TargetResult {
	log.Printf("Testing connectivity to %s", target)

	result := models.TargetResult{
		Target:    target,
		Timestamp: time.Now(),
	}

	result.DNS = r.resolver.Resolve(ctx, target)
	if !result.DNS.Resolved {
		log.Printf("Failed to resolve %s, skipping remaining checks", target)
		return result
	}
	log.Printf("%s resolved to %s", target, result.DNS.Address)

	// Ping uses the original target string, ports the resolved address
	output, err := r.pinger.Ping(ctx, target)
	switch {
	case err != nil:
		log.Printf("Ping to %s produced no result: %v", target, err)
	case output.ExitCode != 0:
		result.PingError = strings.TrimSpace(output.Stderr)
		log.Printf("Ping to %s failed with exit code %d", target, output.ExitCode)
	default:
		result.PingOK = true
		result.PingStats = ping.ParseStats(output.Stdout, r.format)
		log.Printf("Ping to %s: sent=%d received=%d loss=%d%% avg=%.1fms",
			target, result.PingStats.Sent, result.PingStats.Received,
			result.PingStats.LossPct, result.PingStats.AvgMs)
	}

	for _, port := range r.cfg.Ports {
		pr := r.prober.Probe(result.DNS.Address, port, r.cfg.PortTimeout)
		result.Ports = append(result.Ports, pr)
		if pr.Open {
			log.Printf("Port %d on %s is open (%.1fms)", port, result.DNS.Address, pr.LatencyMs)
		} else {
			log.Printf("Port %d on %s is closed or filtered", port, result.DNS.Address)
		}
	}

	return result
}
