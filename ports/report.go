// Package ports defines the interfaces the report pipeline is assembled from.
package ports

import (
	"context"

	"stride/domain/activity"
)

// SourceEnsurer guarantees the raw activity log exists locally before a run,
// downloading and extracting it when absent.
type SourceEnsurer interface {
	EnsureSource(ctx context.Context) error
}

// ObservationReader loads the full observation set from the source file
type ObservationReader interface {
	ReadObservations() ([]activity.Observation, error)
}

// WorkbookWriter exports the aggregate tables as a spreadsheet artifact
type WorkbookWriter interface {
	WriteWorkbook(path string, totals []activity.DailyTotal, profiles []activity.IntervalProfile, summary activity.DailySummary) error
}
