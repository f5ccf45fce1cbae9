package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Source errors
	ErrSourceUnavailable = errors.New("activity source unavailable")
	ErrMissingColumn     = errors.New("required column missing")
	ErrMalformedRow      = errors.New("malformed observation row")

	// Aggregation errors
	ErrNoObservations = errors.New("no observations to aggregate")
	ErrEmptyProfile   = errors.New("interval profile is empty")

	// Imputation errors
	ErrUnknownInterval = errors.New("no profile entry for interval")

	// Normalization errors
	ErrInvalidIntervalCode = errors.New("invalid interval code")
)

// Error constructors with context
func NewMissingColumnError(column string) error {
	return fmt.Errorf("%w: %s", ErrMissingColumn, column)
}

func NewMalformedRowError(line int, reason string) error {
	return fmt.Errorf("%w at line %d: %s", ErrMalformedRow, line, reason)
}

func NewInvalidIntervalCodeError(code int) error {
	return fmt.Errorf("%w: %d", ErrInvalidIntervalCode, code)
}

func NewUnknownIntervalError(interval string) error {
	return fmt.Errorf("%w: %s", ErrUnknownInterval, interval)
}

// Error checking helpers
func IsSourceError(err error) bool {
	return errors.Is(err, ErrSourceUnavailable) ||
		errors.Is(err, ErrMissingColumn) ||
		errors.Is(err, ErrMalformedRow)
}

func IsAggregationError(err error) bool {
	return errors.Is(err, ErrNoObservations) ||
		errors.Is(err, ErrEmptyProfile)
}
