package report

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGenerateCharts(t *testing.T) {
	dir := t.TempDir()
	run := testRun(okResult("8.8.8.8", "8.8.8.8"), failedResult("bad.invalid"))

	if err := GenerateCharts(dir, run); err != nil {
		t.Fatalf("GenerateCharts failed: %v", err)
	}

	for _, name := range []string{"latency.png", "success_rate.png"} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("expected chart %s: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("chart %s is empty", name)
		}
	}
}

func TestGenerateChartsEmptyRun(t *testing.T) {
	dir := t.TempDir()

	if err := GenerateCharts(dir, testRun()); err != nil {
		t.Fatalf("GenerateCharts failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("empty run must produce no chart files, found %d", len(entries))
	}
}
