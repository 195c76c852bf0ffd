package report

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"os"

	"connectivity-report/internal/models"
)

//go:embed templates/report.html.tmpl
var templateFS embed.FS

var reportTemplate = template.Must(
	template.ParseFS(templateFS, "templates/report.html.tmpl"))

// pageData is everything the HTML template consumes.
type pageData struct {
	GeneratedAt  string
	RunID        string
	Summary      models.RunSummary
	Results      []models.TargetResult
	Labels       template.JS
	AvgTimes     template.JS
	Colors       template.JS
	SuccessCount int
	FailureCount int
}

// RenderHTML writes the complete self-contained report document for the
// run to w.
func RenderHTML(w io.Writer, run *models.Run) error {
	summary := models.Summarize(run.Results)

	labels, avgTimes, colors := chartData(run.Results)

	data := pageData{
		GeneratedAt:  run.StartedAt.Format("January 2, 2006 at 3:04 PM"),
		RunID:        run.ID,
		Summary:      summary,
		Results:      run.Results,
		Labels:       labels,
		AvgTimes:     avgTimes,
		Colors:       colors,
		SuccessCount: summary.SuccessfulPings,
		FailureCount: summary.TargetsTested - summary.SuccessfulPings,
	}

	return reportTemplate.Execute(w, data)
}

// WriteHTML renders the report and writes it to path.
func WriteHTML(path string, run *models.Run) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	if err := RenderHTML(file, run); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

// chartData builds the bar-chart datasets: one label and average
// latency per target, green for a successful ping and red (with a zero
// value) for a failed one.
func chartData(results []models.TargetResult) (labels, avgTimes, colors template.JS) {
	targetLabels := make([]string, 0, len(results))
	avgs := make([]float64, 0, len(results))
	barColors := make([]string, 0, len(results))

	for _, r := range results {
		targetLabels = append(targetLabels, r.Target)
		if r.PingOK {
			avgs = append(avgs, r.PingStats.AvgMs)
			barColors = append(barColors, "rgba(40, 167, 69, 0.8)")
		} else {
			avgs = append(avgs, 0)
			barColors = append(barColors, "rgba(220, 53, 69, 0.8)")
		}
	}

	return marshalJS(targetLabels), marshalJS(avgs), marshalJS(barColors)
}

func marshalJS(v interface{}) template.JS {
	b, err := json.Marshal(v)
	if err != nil {
		return template.JS("[]")
	}
	return template.JS(b)
}
