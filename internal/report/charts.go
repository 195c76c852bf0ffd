package report

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"connectivity-report/internal/models"
)

var (
	chartGreen = drawing.Color{R: 40, G: 167, B: 69, A: 204}
	chartRed   = drawing.Color{R: 220, G: 53, B: 69, A: 204}
)

// GenerateCharts renders the run's latency and success-rate charts as
// PNG files in outputDir. Individual chart failures are logged, not
// fatal.
func GenerateCharts(outputDir string, run *models.Run) error {
	if len(run.Results) == 0 {
		return nil
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create chart directory: %w", err)
	}

	if err := generateLatencyChart(outputDir, run.Results); err != nil {
		log.Printf("Failed to generate latency chart: %v", err)
	}

	if err := generateSuccessChart(outputDir, run.Results); err != nil {
		log.Printf("Failed to generate success chart: %v", err)
	}

	return nil
}

// generateLatencyChart draws a bar per target with its average ping
// latency. Failed targets get a zero-height red bar.
func generateLatencyChart(outputDir string, results []models.TargetResult) error {
	bars := make([]chart.Value, 0, len(results))
	for _, r := range results {
		value := chart.Value{Label: r.Target}
		if r.PingOK {
			value.Value = r.PingStats.AvgMs
			value.Style = chart.Style{FillColor: chartGreen, StrokeColor: chartGreen}
		} else {
			value.Value = 0
			value.Style = chart.Style{FillColor: chartRed, StrokeColor: chartRed}
		}
		bars = append(bars, value)
	}

	graph := chart.BarChart{
		Title: "Average Response Time (ms)",
		TitleStyle: chart.Style{
			FontSize: 16,
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
		},
		Width:    1200,
		Height:   400,
		Bars:     bars,
		BarWidth: 60,
	}

	filename := filepath.Join(outputDir, "latency.png")
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return graph.Render(chart.PNG, file)
}

// generateSuccessChart draws the successful/failed ping split.
func generateSuccessChart(outputDir string, results []models.TargetResult) error {
	summary := models.Summarize(results)
	failed := summary.TargetsTested - summary.SuccessfulPings

	var values []chart.Value
	if summary.SuccessfulPings > 0 {
		values = append(values, chart.Value{
			Label: "Successful",
			Value: float64(summary.SuccessfulPings),
			Style: chart.Style{FillColor: chartGreen},
		})
	}
	if failed > 0 {
		values = append(values, chart.Value{
			Label: "Failed",
			Value: float64(failed),
			Style: chart.Style{FillColor: chartRed},
		})
	}
	if len(values) == 0 {
		return nil
	}

	graph := chart.PieChart{
		Title: "Success Rate",
		TitleStyle: chart.Style{
			FontSize: 16,
		},
		Width:  600,
		Height: 600,
		Values: values,
	}

	filename := filepath.Join(outputDir, "success_rate.png")
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return graph.Render(chart.PNG, file)
}
