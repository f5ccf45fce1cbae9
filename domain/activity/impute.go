package activity

import (
	"math"

	"stride/domain/core"
)

// ImputeByIntervalMean fills every missing step count with the historical
// mean for the observation's interval, looked up by exact label match. The
// mean is kept verbatim, no rounding. Cardinality is unchanged and
// non-missing observations pass through untouched.
//
// Returns ErrUnknownInterval when a missing observation's interval has no
// usable profile entry, since that would leave a hole in the output.
func ImputeByIntervalMean(obs []Observation, profiles []IntervalProfile) ([]Observation, error) {
	means := make(map[Interval]float64, len(profiles))
	for _, p := range profiles {
		if !math.IsNaN(p.MeanSteps) {
			means[p.Interval] = p.MeanSteps
		}
	}

	filled := make([]Observation, len(obs))
	for i, o := range obs {
		if o.Steps.Valid {
			filled[i] = o
			continue
		}
		mean, ok := means[o.Interval]
		if !ok {
			return nil, core.NewUnknownIntervalError(o.Interval.String())
		}
		filled[i] = Observation{
			Steps:    Steps(mean),
			Date:     o.Date,
			Interval: o.Interval,
		}
	}
	return filled, nil
}
