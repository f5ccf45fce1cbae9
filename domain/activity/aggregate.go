package activity

import (
	"math"
	"sort"

	"stride/domain/core"

	"gonum.org/v1/gonum/stat"
)

// DailyTotals groups observations by date and sums steps, one DailyTotal per
// distinct date, sorted by date. A date with any missing observation yields a
// NaN total: the day has no data, it is not a zero-step day.
func DailyTotals(obs []Observation) []DailyTotal {
	sums := make(map[string]float64)
	dates := make(map[string]core.Date)

	for _, o := range obs {
		key := o.Date.String()
		dates[key] = o.Date
		if !o.Steps.Valid {
			sums[key] = math.NaN()
			continue
		}
		sums[key] += o.Steps.Value
	}

	keys := make([]string, 0, len(sums))
	for k := range sums {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	totals := make([]DailyTotal, 0, len(keys))
	for _, k := range keys {
		totals = append(totals, DailyTotal{Date: dates[k], Total: sums[k]})
	}
	return totals
}

// IntervalMeans groups observations by interval label and averages steps over
// non-missing observations, one IntervalProfile per distinct label, sorted by
// time of day. Missing observations do not contribute at all; they are not
// counted as zero.
func IntervalMeans(obs []Observation) []IntervalProfile {
	samples := make(map[Interval][]float64)

	for _, o := range obs {
		if _, seen := samples[o.Interval]; !seen {
			samples[o.Interval] = nil
		}
		if o.Steps.Valid {
			samples[o.Interval] = append(samples[o.Interval], o.Steps.Value)
		}
	}

	profiles := make([]IntervalProfile, 0, len(samples))
	for iv, vals := range samples {
		mean := math.NaN()
		if len(vals) > 0 {
			mean = stat.Mean(vals, nil)
		}
		profiles = append(profiles, IntervalProfile{
			Interval:   iv,
			MeanSteps:  mean,
			SampleSize: len(vals),
		})
	}

	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].Interval.Minutes() < profiles[j].Interval.Minutes()
	})
	return profiles
}

// PeakIntervals returns every profile tied at the maximum mean, in ascending
// interval order. Callers that need a single value take the first entry.
func PeakIntervals(profiles []IntervalProfile) ([]IntervalProfile, error) {
	max := math.Inf(-1)
	for _, p := range profiles {
		if !math.IsNaN(p.MeanSteps) && p.MeanSteps > max {
			max = p.MeanSteps
		}
	}
	if math.IsInf(max, -1) {
		return nil, core.ErrEmptyProfile
	}

	var peaks []IntervalProfile
	for _, p := range profiles {
		if p.MeanSteps == max {
			peaks = append(peaks, p)
		}
	}
	sort.Slice(peaks, func(i, j int) bool {
		return peaks[i].Interval.Minutes() < peaks[j].Interval.Minutes()
	})
	return peaks, nil
}

// SplitByDayKind partitions observations into weekday and weekend subsets
func SplitByDayKind(obs []Observation) (weekday, weekend []Observation) {
	for _, o := range obs {
		if ClassifyDate(o.Date) == Weekend {
			weekend = append(weekend, o)
		} else {
			weekday = append(weekday, o)
		}
	}
	return weekday, weekend
}
