package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ACTIVITY_FILE", "ACTIVITY_SOURCE_URL", "REPORT_DIR", "HISTOGRAM_BINS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Data.File != DefaultDataFile {
		t.Errorf("data file = %q, want default", cfg.Data.File)
	}
	if cfg.Data.SourceURL != DefaultSourceURL {
		t.Errorf("source URL = %q, want default", cfg.Data.SourceURL)
	}
	if cfg.Report.Dir != DefaultReportDir {
		t.Errorf("report dir = %q, want default", cfg.Report.Dir)
	}
	if cfg.Report.HistogramBins != DefaultHistBins {
		t.Errorf("bins = %d, want default", cfg.Report.HistogramBins)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ACTIVITY_FILE", "elsewhere/log.csv")
	t.Setenv("REPORT_DIR", "out")
	t.Setenv("HISTOGRAM_BINS", "20")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Data.File != "elsewhere/log.csv" {
		t.Errorf("data file = %q", cfg.Data.File)
	}
	if cfg.Report.Dir != "out" {
		t.Errorf("report dir = %q", cfg.Report.Dir)
	}
	if cfg.Report.HistogramBins != 20 {
		t.Errorf("bins = %d, want 20", cfg.Report.HistogramBins)
	}
}

func TestLoad_InvalidBins(t *testing.T) {
	t.Setenv("HISTOGRAM_BINS", "many")
	if _, err := Load(); err == nil {
		t.Error("non-integer HISTOGRAM_BINS should fail")
	}

	t.Setenv("HISTOGRAM_BINS", "0")
	if _, err := Load(); err == nil {
		t.Error("zero HISTOGRAM_BINS should fail")
	}
}
