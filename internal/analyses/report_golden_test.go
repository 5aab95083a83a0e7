package analyses

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestRenderReportGolden(t *testing.T) {
	analysis := sampleAnalysis("a-1", time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC))

	got := RenderReport(analysis)

	raw, err := os.ReadFile(filepath.Join("testdata", "report_enterprise.txt"))
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	want := strings.TrimRight(string(raw), "\n")

	if got != want {
		t.Fatalf("report mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestRenderReportStable(t *testing.T) {
	analysis := sampleAnalysis("a-1", time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC))
	first := RenderReport(analysis)
	for i := 0; i < 5; i++ {
		if got := RenderReport(analysis); got != first {
			t.Fatal("report output changed between renders")
		}
	}
}

func TestRenderReportRoleFallback(t *testing.T) {
	analysis := sampleAnalysis("a-1", time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC))
	analysis.Role = ""
	if !strings.Contains(RenderReport(analysis), "For: N/A at Google") {
		t.Fatal("expected N/A role fallback in header")
	}
}
