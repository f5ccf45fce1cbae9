// Package activity holds the domain model for the step-count log: per-interval
// observations, daily and interval-level aggregates, and the imputation rules
// that connect them.
package activity

import (
	"math"

	"stride/domain/core"
)

// StepCount is an optional step measurement. Valid reports whether the source
// row carried a value. Raw rows are non-negative integers, but imputation
// produces fractional counts, so the value is kept as a float.
type StepCount struct {
	Value float64
	Valid bool
}

// Steps builds a present step count
func Steps(v float64) StepCount {
	return StepCount{Value: v, Valid: true}
}

// MissingSteps builds an absent step count
func MissingSteps() StepCount {
	return StepCount{}
}

// Observation is a single 5-minute reading from the activity monitor.
// Immutable once loaded; imputation replaces the whole value rather than
// mutating in place.
type Observation struct {
	Steps    StepCount
	Date     core.Date
	Interval Interval
}

// DailyTotal is the summed step count for one calendar date. Total is NaN
// when any observation that day is missing: such days carry no data and must
// be excluded from mean/median over totals, never counted as zero.
type DailyTotal struct {
	Date  core.Date
	Total float64
}

// Defined reports whether the day produced a usable total
func (t DailyTotal) Defined() bool {
	return !math.IsNaN(t.Total)
}

// IntervalProfile is the mean step count for one interval label across all
// dates, computed over non-missing observations only.
type IntervalProfile struct {
	Interval  Interval
	MeanSteps float64
	// SampleSize counts the non-missing observations behind the mean
	SampleSize int
}
