// Package app wires the pipeline together: ensure source, load, aggregate,
// impute, classify and render the report artifacts.
package app

import (
	"context"
	"os"
	"path/filepath"

	"stride/adapters/plotting"
	"stride/domain/activity"
	"stride/domain/core"
	"stride/internal"
	"stride/internal/config"
	"stride/internal/errors"
	"stride/internal/report"
	"stride/ports"

	"golang.org/x/sync/errgroup"
)

// Figure and document file names inside the report directory
const (
	fileHistogramRaw     = "daily_totals.png"
	fileHistogramImputed = "daily_totals_imputed.png"
	fileIntervalPattern  = "interval_pattern.png"
	fileDayKindPanels    = "daykind_panels.png"
	fileWorkbook         = "activity_report.xlsx"
	fileMarkdown         = "report.md"
	fileHTML             = "report.html"
)

// Analysis is the computed core of a run, before any artifact is written
type Analysis struct {
	Observations []activity.Observation
	Imputed      []activity.Observation

	Census activity.MissingCensus

	RawTotals     []activity.DailyTotal
	ImputedTotals []activity.DailyTotal
	RawSummary    activity.DailySummary
	ImputedSum    activity.DailySummary

	Profiles        []activity.IntervalProfile
	Peaks           []activity.IntervalProfile
	WeekdayProfiles []activity.IntervalProfile
	WeekendProfiles []activity.IntervalProfile
}

// ReportResult describes a completed run and where its artifacts live
type ReportResult struct {
	ReportID    core.ReportID
	GeneratedAt core.Timestamp
	Analysis    *Analysis

	MarkdownPath string
	HTMLPath     string
	WorkbookPath string
	Figures      report.Figures
}

// ReportService runs the report pipeline end to end
type ReportService struct {
	cfg    *config.Config
	logger *internal.Logger
	source ports.SourceEnsurer
	reader ports.ObservationReader
	books  ports.WorkbookWriter
}

// NewReportService creates a report service from its collaborators
func NewReportService(cfg *config.Config, logger *internal.Logger, source ports.SourceEnsurer, reader ports.ObservationReader, books ports.WorkbookWriter) *ReportService {
	return &ReportService{
		cfg:    cfg,
		logger: logger,
		source: source,
		reader: reader,
		books:  books,
	}
}

// Analyze ensures the source exists, loads it and computes every aggregate
// of the report without writing artifacts.
func (s *ReportService) Analyze(ctx context.Context) (*Analysis, error) {
	if err := s.source.EnsureSource(ctx); err != nil {
		return nil, errors.SourceError("failed to ensure activity source", err)
	}

	obs, err := s.reader.ReadObservations()
	if err != nil {
		return nil, errors.ParseError("failed to load observations", err)
	}

	a := &Analysis{Observations: obs}
	a.Census = activity.CountMissing(obs)
	s.logger.Info("Loaded %d observations, %d missing (%.1f%%)",
		a.Census.Observations, a.Census.Missing, 100*a.Census.MissingRate)

	a.RawTotals = activity.DailyTotals(obs)
	a.RawSummary, err = activity.SummarizeDailyTotals(a.RawTotals)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize daily totals")
	}

	a.Profiles = activity.IntervalMeans(obs)
	a.Peaks, err = activity.PeakIntervals(a.Profiles)
	if err != nil {
		return nil, errors.Wrap(err, "failed to locate peak interval")
	}
	s.logger.Info("Peak activity at %s (%.2f mean steps)",
		a.Peaks[0].Interval, a.Peaks[0].MeanSteps)

	a.Imputed, err = activity.ImputeByIntervalMean(obs, a.Profiles)
	if err != nil {
		return nil, errors.Wrap(err, "imputation failed")
	}

	a.ImputedTotals = activity.DailyTotals(a.Imputed)
	a.ImputedSum, err = activity.SummarizeDailyTotals(a.ImputedTotals)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize imputed daily totals")
	}

	// Day-type comparison runs on the imputed set so weekend days thinned by
	// missing values still contribute a full pattern
	weekdayObs, weekendObs := activity.SplitByDayKind(a.Imputed)
	a.WeekdayProfiles = activity.IntervalMeans(weekdayObs)
	a.WeekendProfiles = activity.IntervalMeans(weekendObs)

	return a, nil
}

// Run performs a full report: analysis plus figures, workbook and documents
func (s *ReportService) Run(ctx context.Context) (*ReportResult, error) {
	a, err := s.Analyze(ctx)
	if err != nil {
		return nil, err
	}

	dir := s.cfg.Report.Dir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.RenderError("failed to create report directory", err)
	}

	result := &ReportResult{
		ReportID:    core.NewReportID(),
		GeneratedAt: core.Now(),
		Analysis:    a,
		Figures: report.Figures{
			HistogramRaw:     fileHistogramRaw,
			HistogramImputed: fileHistogramImputed,
			IntervalPattern:  fileIntervalPattern,
			DayKindPanels:    fileDayKindPanels,
		},
		MarkdownPath: filepath.Join(dir, fileMarkdown),
		HTMLPath:     filepath.Join(dir, fileHTML),
		WorkbookPath: filepath.Join(dir, fileWorkbook),
	}

	if err := s.renderFigures(ctx, a, dir); err != nil {
		return nil, err
	}

	if err := s.books.WriteWorkbook(result.WorkbookPath, a.ImputedTotals, a.Profiles, a.ImputedSum); err != nil {
		return nil, errors.ExportError("failed to write workbook", err)
	}

	if err := s.writeDocuments(result); err != nil {
		return nil, err
	}

	s.logger.Info("Report %s written to %s", result.ReportID, dir)
	return result, nil
}

// renderFigures draws the four independent figures concurrently
func (s *ReportService) renderFigures(ctx context.Context, a *Analysis, dir string) error {
	bins := s.cfg.Report.HistogramBins
	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		return plotting.DailyTotalHistogram(a.RawTotals, bins, a.RawSummary.Mean,
			"Total steps per day", filepath.Join(dir, fileHistogramRaw))
	})
	g.Go(func() error {
		return plotting.DailyTotalHistogram(a.ImputedTotals, bins, a.ImputedSum.Mean,
			"Total steps per day (imputed)", filepath.Join(dir, fileHistogramImputed))
	})
	g.Go(func() error {
		return plotting.IntervalPatternPlot(a.Profiles,
			"Mean steps by 5-minute interval", filepath.Join(dir, fileIntervalPattern))
	})
	g.Go(func() error {
		return plotting.DayKindPanelPlot(a.WeekdayProfiles, a.WeekendProfiles,
			"Mean steps by interval", filepath.Join(dir, fileDayKindPanels))
	})

	if err := g.Wait(); err != nil {
		return errors.RenderError("failed to render figures", err)
	}
	return nil
}

func (s *ReportService) writeDocuments(result *ReportResult) error {
	md := report.BuildMarkdown(report.Data{
		ReportID:    result.ReportID,
		GeneratedAt: result.GeneratedAt,
		SourceFile:  s.cfg.Data.File,
		Census:      result.Analysis.Census,
		Raw:         result.Analysis.RawSummary,
		Imputed:     result.Analysis.ImputedSum,
		Peaks:       result.Analysis.Peaks,
		Figures:     result.Figures,
	})

	if err := os.WriteFile(result.MarkdownPath, []byte(md), 0o644); err != nil {
		return errors.RenderError("failed to write markdown report", err)
	}
	if err := os.WriteFile(result.HTMLPath, report.RenderHTML([]byte(md)), 0o644); err != nil {
		return errors.RenderError("failed to write HTML report", err)
	}
	return nil
}
