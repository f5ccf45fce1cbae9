package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"stride/adapters/csvfile"
	"stride/adapters/excel"
	"stride/adapters/fetch"
	"stride/internal"
	"stride/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeSampleLog builds a week of synthetic observations, Mon 2012-10-01
// through Sun 2012-10-07, twelve 5-minute intervals per day. 2012-10-03 is
// entirely missing and 2012-10-02 has one missing reading, so both days must
// drop out of the raw daily statistics. Interval 00:30 is the designed peak.
func writeSampleLog(t *testing.T, dir string) string {
	t.Helper()

	var b strings.Builder
	b.WriteString("steps,date,interval\n")
	for day := 1; day <= 7; day++ {
		date := fmt.Sprintf("2012-10-%02d", day)
		for idx := 0; idx < 12; idx++ {
			code := idx * 5
			steps := fmt.Sprintf("%d", idx+day)
			if code == 30 {
				steps = "100"
			}
			if day == 3 || (day == 2 && code == 0) {
				steps = "NA"
			}
			b.WriteString(fmt.Sprintf("%s,%s,%d\n", steps, date, code))
		}
	}

	path := filepath.Join(dir, "activity.csv")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
	return path
}

func newTestService(t *testing.T) (*ReportService, *config.Config) {
	t.Helper()
	dir := t.TempDir()
	dataFile := writeSampleLog(t, dir)

	cfg := &config.Config{
		Data: config.DataConfig{
			File:      dataFile,
			SourceURL: "http://127.0.0.1:0/unused",
		},
		Report: config.ReportConfig{
			Dir:           filepath.Join(dir, "report"),
			HistogramBins: 5,
		},
	}

	service := NewReportService(
		cfg,
		internal.NewLogger(internal.LogLevelError),
		fetch.NewFetcher(cfg.Data.SourceURL, cfg.Data.File),
		csvfile.NewReader(cfg.Data.File),
		excel.NewWriter(),
	)
	return service, cfg
}

func TestAnalyze(t *testing.T) {
	service, _ := newTestService(t)

	a, err := service.Analyze(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 84, a.Census.Observations)
	assert.Equal(t, 13, a.Census.Missing)

	// Two days carry missing values and are excluded pre-imputation
	assert.Equal(t, 7, a.RawSummary.Days)
	assert.Equal(t, 5, a.RawSummary.DefinedDays)

	// Imputation restores every day
	assert.Equal(t, 7, a.ImputedSum.Days)
	assert.Equal(t, 7, a.ImputedSum.DefinedDays)

	// A complete day d sums to 160 + 11*d: indices 0..11 shifted by the day
	// number, with index 6 pinned at 100. Days 1, 4, 5, 6 and 7 are complete.
	assert.Equal(t, (171.0+204+215+226+237)/5, a.RawSummary.Mean)
	assert.Equal(t, 215.0, a.RawSummary.Median)

	require.Len(t, a.Peaks, 1)
	assert.Equal(t, "00:30", a.Peaks[0].Interval.String())

	// One profile per distinct interval, both before and after the split
	assert.Len(t, a.Profiles, 12)
	assert.Len(t, a.WeekdayProfiles, 12)
	assert.Len(t, a.WeekendProfiles, 12)

	// Weekend days (Oct 6, 7) are complete in the sample, so the weekend
	// profile mean at the peak equals the designed value exactly
	for _, p := range a.WeekendProfiles {
		if p.Interval == "00:30" {
			assert.Equal(t, 100.0, p.MeanSteps)
		}
	}
}

func TestRun_WritesAllArtifacts(t *testing.T) {
	service, cfg := newTestService(t)

	result, err := service.Run(context.Background())
	require.NoError(t, err)
	require.False(t, result.ReportID.String() == "")

	for _, name := range []string{
		"daily_totals.png",
		"daily_totals_imputed.png",
		"interval_pattern.png",
		"daykind_panels.png",
		"activity_report.xlsx",
		"report.md",
		"report.html",
	} {
		path := filepath.Join(cfg.Report.Dir, name)
		info, err := os.Stat(path)
		require.NoError(t, err, "artifact %s missing", name)
		assert.Greater(t, info.Size(), int64(0), "artifact %s is empty", name)
	}

	md, err := os.ReadFile(result.MarkdownPath)
	require.NoError(t, err)
	assert.Contains(t, string(md), "**00:30**")
	assert.Contains(t, string(md), "13 of 84 observations are missing")

	html, err := os.ReadFile(result.HTMLPath)
	require.NoError(t, err)
	assert.Contains(t, string(html), "<html")

	book, err := excelize.OpenFile(result.WorkbookPath)
	require.NoError(t, err)
	defer book.Close()
	assert.ElementsMatch(t,
		[]string{"Summary", "Daily Totals", "Interval Profile"},
		book.GetSheetList())

	// Undefined raw days are exported as NA in the imputed sheet only when
	// still undefined; after imputation every date has a numeric total
	rows, err := book.GetRows("Daily Totals")
	require.NoError(t, err)
	require.Len(t, rows, 8) // header + 7 dates
	for _, row := range rows[1:] {
		assert.NotEqual(t, "NA", row[1])
	}
}
