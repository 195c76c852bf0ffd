package main

import (
	"context"
	"log"
	"os"

	"connectivity-report/internal/config"
	"connectivity-report/internal/database"
	"connectivity-report/internal/models"
	"connectivity-report/internal/ping"
	"connectivity-report/internal/probe"
	"connectivity-report/internal/report"
	"connectivity-report/internal/resolve"
	"connectivity-report/internal/runner"
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	resolver := resolve.New(cfg.DNSServer)
	pinger := ping.New(cfg.PingCount, cfg.PingTimeout)
	prober := probe.New(cfg.PortTimeout)

	r := runner.New(cfg, resolver, pinger, prober, pinger.Format())
	run := r.Run(context.Background())

	// Persistence and charts are best-effort: the report is always
	// written even if they fail.
	if cfg.DatabasePath != "" {
		saveRun(cfg.DatabasePath, run)
	}

	if err := report.WriteHTML(cfg.OutputFile, run); err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}
	log.Printf("HTML report written to %s", cfg.OutputFile)

	if cfg.ChartDir != "" {
		if err := report.GenerateCharts(cfg.ChartDir, run); err != nil {
			log.Printf("Failed to generate charts: %v", err)
		} else {
			log.Printf("Charts written to %s", cfg.ChartDir)
		}
	}

	report.WriteText(os.Stdout, run)
}

func saveRun(path string, run *models.Run) {
	db, err := database.New(path)
	if err != nil {
		log.Printf("Failed to open database: %v", err)
		return
	}
	defer db.Close()

	if err := db.InitSchema(); err != nil {
		log.Printf("Failed to initialize database schema: %v", err)
		return
	}
	if err := db.SaveRun(run); err != nil {
		log.Printf("Failed to save run: %v", err)
		return
	}
	log.Printf("Run %s saved to %s", run.ID, path)
}
