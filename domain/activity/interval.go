package activity

import (
	"fmt"
	"strconv"
	"strings"

	"stride/domain/core"
)

// Interval identifies a 5-minute window of the day by its start time, as an
// "HH:MM" label. The raw log encodes the same window as an integer HHMM code
// with no separator (0, 5, ..., 55, 100, 105, ..., 2355).
type Interval string

// ParseIntervalCode normalizes a raw integer interval code into an Interval.
// The code must decompose into a valid hour (0-23) and minute (0-59) when
// read as zero-padded 4-digit HHMM.
func ParseIntervalCode(code int) (Interval, error) {
	if code < 0 || code > 2359 {
		return "", core.NewInvalidIntervalCodeError(code)
	}
	hour := code / 100
	minute := code % 100
	if minute > 59 {
		return "", core.NewInvalidIntervalCodeError(code)
	}
	return Interval(fmt.Sprintf("%02d:%02d", hour, minute)), nil
}

// ParseInterval validates an "HH:MM" label
func ParseInterval(label string) (Interval, error) {
	parts := strings.SplitN(label, ":", 2)
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return "", fmt.Errorf("invalid interval label %q", label)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return "", fmt.Errorf("invalid interval label %q", label)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("invalid interval label %q", label)
	}
	return Interval(label), nil
}

// Code converts the label back to its raw HHMM integer form. Intervals are
// only constructed through the parse functions, so the label is well-formed.
func (iv Interval) Code() int {
	hour, _ := strconv.Atoi(string(iv[:2]))
	minute, _ := strconv.Atoi(string(iv[3:]))
	return hour*100 + minute
}

// Minutes returns the start of the window as minutes since midnight, the
// natural x-axis for intra-day plots.
func (iv Interval) Minutes() int {
	hour, _ := strconv.Atoi(string(iv[:2]))
	minute, _ := strconv.Atoi(string(iv[3:]))
	return hour*60 + minute
}

// String returns the "HH:MM" label
func (iv Interval) String() string {
	return string(iv)
}
