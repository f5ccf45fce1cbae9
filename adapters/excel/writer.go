// Package excel exports the aggregate tables of a report run as an Excel
// workbook with Summary, Daily Totals and Interval Profile sheets.
package excel

import (
	"fmt"
	"log"
	"math"
	"time"

	"stride/domain/activity"

	"github.com/xuri/excelize/v2"
)

const (
	sheetSummary  = "Summary"
	sheetDaily    = "Daily Totals"
	sheetProfile  = "Interval Profile"
	defaultSheet1 = "Sheet1"
)

// Writer renders aggregate tables into an xlsx workbook
type Writer struct{}

// NewWriter creates a workbook writer
func NewWriter() *Writer {
	return &Writer{}
}

// WriteWorkbook writes the three sheets and saves the file at path
func (w *Writer) WriteWorkbook(path string, totals []activity.DailyTotal, profiles []activity.IntervalProfile, summary activity.DailySummary) error {
	startTime := time.Now()
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(defaultSheet1, sheetSummary); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}
	if err := w.writeSummary(f, summary); err != nil {
		return err
	}
	if err := w.writeDailyTotals(f, totals); err != nil {
		return err
	}
	if err := w.writeProfiles(f, profiles); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	log.Printf("[WorkbookWriter] Wrote %s in %.2fms", path,
		float64(time.Since(startTime).Nanoseconds())/1e6)
	return nil
}

func (w *Writer) writeSummary(f *excelize.File, summary activity.DailySummary) error {
	rows := []struct {
		label string
		value interface{}
	}{
		{"Days observed", summary.Days},
		{"Days with data", summary.DefinedDays},
		{"Mean daily steps", summary.Mean},
		{"Median daily steps", summary.Median},
		{"Std dev daily steps", summary.StdDev},
		{"Min daily steps", summary.Min},
		{"Max daily steps", summary.Max},
	}
	if err := f.SetCellValue(sheetSummary, "A1", "Statistic"); err != nil {
		return err
	}
	if err := f.SetCellValue(sheetSummary, "B1", "Value"); err != nil {
		return err
	}
	for i, row := range rows {
		if err := f.SetCellValue(sheetSummary, fmt.Sprintf("A%d", i+2), row.label); err != nil {
			return err
		}
		if err := f.SetCellValue(sheetSummary, fmt.Sprintf("B%d", i+2), row.value); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeDailyTotals(f *excelize.File, totals []activity.DailyTotal) error {
	if _, err := f.NewSheet(sheetDaily); err != nil {
		return fmt.Errorf("failed to create daily totals sheet: %w", err)
	}
	if err := f.SetCellValue(sheetDaily, "A1", "Date"); err != nil {
		return err
	}
	if err := f.SetCellValue(sheetDaily, "B1", "Total Steps"); err != nil {
		return err
	}
	for i, t := range totals {
		row := i + 2
		if err := f.SetCellValue(sheetDaily, fmt.Sprintf("A%d", row), t.Date.String()); err != nil {
			return err
		}
		// Excel has no NaN cell; undefined days are exported as "NA"
		if math.IsNaN(t.Total) {
			if err := f.SetCellValue(sheetDaily, fmt.Sprintf("B%d", row), "NA"); err != nil {
				return err
			}
			continue
		}
		if err := f.SetCellValue(sheetDaily, fmt.Sprintf("B%d", row), t.Total); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeProfiles(f *excelize.File, profiles []activity.IntervalProfile) error {
	if _, err := f.NewSheet(sheetProfile); err != nil {
		return fmt.Errorf("failed to create interval profile sheet: %w", err)
	}
	headers := []string{"Interval", "Mean Steps", "Sample Size"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetProfile, cell, h); err != nil {
			return err
		}
	}
	for i, p := range profiles {
		row := i + 2
		if err := f.SetCellValue(sheetProfile, fmt.Sprintf("A%d", row), p.Interval.String()); err != nil {
			return err
		}
		if math.IsNaN(p.MeanSteps) {
			if err := f.SetCellValue(sheetProfile, fmt.Sprintf("B%d", row), "NA"); err != nil {
				return err
			}
		} else if err := f.SetCellValue(sheetProfile, fmt.Sprintf("B%d", row), p.MeanSteps); err != nil {
			return err
		}
		if err := f.SetCellValue(sheetProfile, fmt.Sprintf("C%d", row), p.SampleSize); err != nil {
			return err
		}
	}
	return nil
}
