package activity

import (
	"errors"
	"testing"

	"stride/domain/core"
)

func TestImputeByIntervalMean_FillsEveryMissing(t *testing.T) {
	obs := []Observation{
		obsAt(t, "2012-10-01", 5, MissingSteps()),
		obsAt(t, "2012-10-02", 5, Steps(2)),
		obsAt(t, "2012-10-03", 5, Steps(4)),
		obsAt(t, "2012-10-01", 10, Steps(9)),
	}
	profiles := IntervalMeans(obs)

	filled, err := ImputeByIntervalMean(obs, profiles)
	if err != nil {
		t.Fatalf("ImputeByIntervalMean failed: %v", err)
	}
	if len(filled) != len(obs) {
		t.Fatalf("cardinality changed: %d -> %d", len(obs), len(filled))
	}
	if CountMissing(filled).Missing != 0 {
		t.Error("imputed set still has missing values")
	}

	// The missing 00:05 reading gets the interval mean verbatim
	if !filled[0].Steps.Valid || filled[0].Steps.Value != 3.0 {
		t.Errorf("imputed value = %v, want 3.0", filled[0].Steps)
	}
	if !filled[0].Date.Equal(obs[0].Date) || filled[0].Interval != obs[0].Interval {
		t.Error("imputation must not touch date or interval")
	}
}

func TestImputeByIntervalMean_PassThroughUnchanged(t *testing.T) {
	obs := []Observation{
		obsAt(t, "2012-10-01", 0, Steps(11)),
		obsAt(t, "2012-10-01", 5, MissingSteps()),
		obsAt(t, "2012-10-02", 5, Steps(6)),
	}
	filled, err := ImputeByIntervalMean(obs, IntervalMeans(obs))
	if err != nil {
		t.Fatalf("ImputeByIntervalMean failed: %v", err)
	}
	for i, o := range obs {
		if !o.Steps.Valid {
			continue
		}
		if filled[i] != o {
			t.Errorf("non-missing observation %d changed: %v -> %v", i, o, filled[i])
		}
	}
}

func TestImputeByIntervalMean_UnknownInterval(t *testing.T) {
	// An interval observed only as missing has no usable mean to fill with
	obs := []Observation{
		obsAt(t, "2012-10-01", 0, Steps(5)),
		obsAt(t, "2012-10-01", 2355, MissingSteps()),
		obsAt(t, "2012-10-02", 2355, MissingSteps()),
	}
	_, err := ImputeByIntervalMean(obs, IntervalMeans(obs))
	if err == nil {
		t.Fatal("expected error for interval with no usable mean")
	}
	if !errors.Is(err, core.ErrUnknownInterval) {
		t.Errorf("error %v is not ErrUnknownInterval", err)
	}
}

func TestImputeByIntervalMean_NoMissing(t *testing.T) {
	obs := []Observation{
		obsAt(t, "2012-10-01", 0, Steps(5)),
		obsAt(t, "2012-10-01", 5, Steps(6)),
	}
	// An empty profile is fine when nothing needs filling
	filled, err := ImputeByIntervalMean(obs, nil)
	if err != nil {
		t.Fatalf("ImputeByIntervalMean failed: %v", err)
	}
	for i := range obs {
		if filled[i] != obs[i] {
			t.Errorf("observation %d changed", i)
		}
	}
}
