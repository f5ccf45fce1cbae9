package activity

import (
	"errors"
	"math"
	"testing"

	"stride/domain/core"
)

func TestSummarizeDailyTotals_ExcludesUndefinedDays(t *testing.T) {
	totals := []DailyTotal{
		{Date: core.NewDate(2012, 10, 1), Total: math.NaN()},
		{Date: core.NewDate(2012, 10, 2), Total: 100},
		{Date: core.NewDate(2012, 10, 3), Total: 200},
		{Date: core.NewDate(2012, 10, 4), Total: 300},
	}

	s, err := SummarizeDailyTotals(totals)
	if err != nil {
		t.Fatalf("SummarizeDailyTotals failed: %v", err)
	}
	if s.Days != 4 || s.DefinedDays != 3 {
		t.Errorf("days = %d/%d, want 3 defined of 4", s.DefinedDays, s.Days)
	}
	if s.Mean != 200 {
		t.Errorf("mean = %v, want 200 (undefined day must not count as zero)", s.Mean)
	}
	if s.Median != 200 {
		t.Errorf("median = %v, want 200", s.Median)
	}
	if s.Min != 100 || s.Max != 300 {
		t.Errorf("min/max = %v/%v, want 100/300", s.Min, s.Max)
	}
}

func TestSummarizeDailyTotals_NoData(t *testing.T) {
	totals := []DailyTotal{
		{Date: core.NewDate(2012, 10, 1), Total: math.NaN()},
	}
	if _, err := SummarizeDailyTotals(totals); !errors.Is(err, core.ErrNoObservations) {
		t.Errorf("expected ErrNoObservations, got %v", err)
	}
}

func TestCountMissing(t *testing.T) {
	obs := []Observation{
		obsAt(t, "2012-10-01", 0, MissingSteps()),
		obsAt(t, "2012-10-01", 5, MissingSteps()),
		obsAt(t, "2012-10-02", 0, Steps(3)),
		obsAt(t, "2012-10-03", 0, MissingSteps()),
	}

	census := CountMissing(obs)
	if census.Observations != 4 || census.Missing != 3 {
		t.Errorf("census = %d missing of %d, want 3 of 4", census.Missing, census.Observations)
	}
	if census.MissingRate != 0.75 {
		t.Errorf("missing rate = %v, want 0.75", census.MissingRate)
	}
	if census.ByDate["2012-10-01"] != 2 || census.ByDate["2012-10-03"] != 1 {
		t.Errorf("unexpected per-date counts: %v", census.ByDate)
	}
	if _, present := census.ByDate["2012-10-02"]; present {
		t.Error("dates without missing values should be omitted")
	}
}

func TestCountMissing_Empty(t *testing.T) {
	census := CountMissing(nil)
	if census.Missing != 0 || census.MissingRate != 0 {
		t.Errorf("empty census should be zero-valued, got %+v", census)
	}
}
