package activity

import (
	"testing"

	"stride/domain/core"
)

func TestClassifyDate(t *testing.T) {
	cases := []struct {
		date string
		want DayKind
	}{
		{"2012-10-01", Weekday}, // Monday
		{"2012-10-05", Weekday}, // Friday
		{"2012-10-06", Weekend}, // Saturday
		{"2012-10-07", Weekend}, // Sunday
		{"2012-11-12", Weekday},
		{"2012-11-17", Weekend},
	}
	for _, tc := range cases {
		d, err := core.ParseDate(tc.date)
		if err != nil {
			t.Fatalf("ParseDate(%s) failed: %v", tc.date, err)
		}
		if got := ClassifyDate(d); got != tc.want {
			t.Errorf("ClassifyDate(%s) = %s, want %s", tc.date, got, tc.want)
		}
	}
}
