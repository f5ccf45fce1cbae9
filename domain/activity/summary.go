package activity

import (
	"stride/domain/core"

	"github.com/montanaflynn/stats"
)

// DailySummary holds descriptive statistics over the defined daily totals.
// Days whose total is undefined (any missing observation) are excluded
// entirely rather than counted as zero.
type DailySummary struct {
	Days        int // distinct dates observed
	DefinedDays int // dates contributing to the statistics
	Mean        float64
	Median      float64
	StdDev      float64
	Min         float64
	Max         float64
}

// SummarizeDailyTotals computes mean, median, std-dev, min and max over the
// defined totals. Errors with ErrNoObservations when no day has data.
func SummarizeDailyTotals(totals []DailyTotal) (DailySummary, error) {
	defined := make([]float64, 0, len(totals))
	for _, t := range totals {
		if t.Defined() {
			defined = append(defined, t.Total)
		}
	}
	if len(defined) == 0 {
		return DailySummary{}, core.ErrNoObservations
	}

	mean, err := stats.Mean(defined)
	if err != nil {
		return DailySummary{}, err
	}
	median, err := stats.Median(defined)
	if err != nil {
		return DailySummary{}, err
	}
	stdDev, err := stats.StandardDeviation(defined)
	if err != nil {
		return DailySummary{}, err
	}
	min, err := stats.Min(defined)
	if err != nil {
		return DailySummary{}, err
	}
	max, err := stats.Max(defined)
	if err != nil {
		return DailySummary{}, err
	}

	return DailySummary{
		Days:        len(totals),
		DefinedDays: len(defined),
		Mean:        mean,
		Median:      median,
		StdDev:      stdDev,
		Min:         min,
		Max:         max,
	}, nil
}

// MissingCensus describes where the missing values live
type MissingCensus struct {
	Observations int
	Missing      int
	MissingRate  float64
	// ByDate counts missing observations per date, dates with none omitted
	ByDate map[string]int
}

// CountMissing walks the observation set once and tallies absent step counts
func CountMissing(obs []Observation) MissingCensus {
	census := MissingCensus{
		Observations: len(obs),
		ByDate:       make(map[string]int),
	}
	for _, o := range obs {
		if !o.Steps.Valid {
			census.Missing++
			census.ByDate[o.Date.String()]++
		}
	}
	if census.Observations > 0 {
		census.MissingRate = float64(census.Missing) / float64(census.Observations)
	}
	return census
}
