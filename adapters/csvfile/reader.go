// Package csvfile reads the raw activity log: one row per 5-minute interval
// with columns steps, date and interval.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"stride/domain/activity"
	"stride/domain/core"
)

// Column names expected in the header row, in any order
const (
	columnSteps    = "steps"
	columnDate     = "date"
	columnInterval = "interval"
)

// missingMarkers are the cell values treated as an absent step count
var missingMarkers = map[string]bool{"": true, "NA": true, "na": true}

// Reader loads observations from an activity CSV file
type Reader struct {
	filePath string
}

// NewReader creates a reader for the given CSV path
func NewReader(filePath string) *Reader {
	return &Reader{filePath: filePath}
}

// ReadObservations parses the whole file into the domain observation set.
// Missing steps cells ("NA" or empty) become explicit missing values, never
// zeros. Malformed dates or interval codes halt the run.
func (r *Reader) ReadObservations() ([]activity.Observation, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", core.ErrSourceUnavailable, r.filePath)
	}

	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open activity file: %w", err)
	}
	defer file.Close()

	readStart := time.Now()
	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read activity file: %w", err)
	}
	log.Printf("[ActivityReader] CSV file read in %.2fms (%d rows)",
		float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	if len(rows) < 2 {
		return nil, fmt.Errorf("activity file must have a header row and at least one data row")
	}

	cols, err := mapColumns(rows[0])
	if err != nil {
		return nil, err
	}

	obs := make([]activity.Observation, 0, len(rows)-1)
	for i, row := range rows[1:] {
		line := i + 2 // 1-based, after header
		o, err := parseRow(row, cols, line)
		if err != nil {
			return nil, err
		}
		obs = append(obs, o)
	}

	log.Printf("[ActivityReader] Parsed %d observations", len(obs))
	return obs, nil
}

// columnIndex locates the three required columns in the header
type columnIndex struct {
	steps    int
	date     int
	interval int
}

func mapColumns(header []string) (columnIndex, error) {
	idx := columnIndex{steps: -1, date: -1, interval: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case columnSteps:
			idx.steps = i
		case columnDate:
			idx.date = i
		case columnInterval:
			idx.interval = i
		}
	}
	if idx.steps < 0 {
		return idx, core.NewMissingColumnError(columnSteps)
	}
	if idx.date < 0 {
		return idx, core.NewMissingColumnError(columnDate)
	}
	if idx.interval < 0 {
		return idx, core.NewMissingColumnError(columnInterval)
	}
	return idx, nil
}

func parseRow(row []string, cols columnIndex, line int) (activity.Observation, error) {
	width := cols.steps
	if cols.date > width {
		width = cols.date
	}
	if cols.interval > width {
		width = cols.interval
	}
	if len(row) <= width {
		return activity.Observation{}, core.NewMalformedRowError(line, "too few columns")
	}

	steps, err := parseSteps(row[cols.steps])
	if err != nil {
		return activity.Observation{}, core.NewMalformedRowError(line, err.Error())
	}

	date, err := core.ParseDate(strings.TrimSpace(row[cols.date]))
	if err != nil {
		return activity.Observation{}, core.NewMalformedRowError(line, fmt.Sprintf("bad date %q", row[cols.date]))
	}

	code, err := strconv.Atoi(strings.TrimSpace(row[cols.interval]))
	if err != nil {
		return activity.Observation{}, core.NewMalformedRowError(line, fmt.Sprintf("bad interval %q", row[cols.interval]))
	}
	interval, err := activity.ParseIntervalCode(code)
	if err != nil {
		return activity.Observation{}, core.NewMalformedRowError(line, err.Error())
	}

	return activity.Observation{Steps: steps, Date: date, Interval: interval}, nil
}

func parseSteps(cell string) (activity.StepCount, error) {
	cell = strings.TrimSpace(cell)
	if missingMarkers[cell] {
		return activity.MissingSteps(), nil
	}
	v, err := strconv.Atoi(cell)
	if err != nil {
		return activity.StepCount{}, fmt.Errorf("bad steps %q", cell)
	}
	if v < 0 {
		return activity.StepCount{}, fmt.Errorf("negative steps %d", v)
	}
	return activity.Steps(float64(v)), nil
}
