package activity

import (
	"time"

	"stride/domain/core"
)

// DayKind classifies a calendar date by its position in the week
type DayKind string

const (
	Weekday DayKind = "Weekday"
	Weekend DayKind = "Weekend"
)

// ClassifyDate labels a date Weekend for Saturday/Sunday and Weekday
// otherwise. Total over valid calendar dates.
func ClassifyDate(d core.Date) DayKind {
	switch d.Weekday() {
	case time.Saturday, time.Sunday:
		return Weekend
	default:
		return Weekday
	}
}
