package config

import (
	"os"
	"strconv"

	"stride/internal/errors"
)

// Default settings for a vanilla run; every value can be overridden through
// the environment.
const (
	DefaultDataFile  = "data/activity.csv"
	DefaultSourceURL = "https://d396qusza40orc.cloudfront.net/repdata%2Fdata%2Factivity.zip"
	DefaultReportDir = "report"
	DefaultHistBins  = 12
)

// Config represents the complete application configuration
type Config struct {
	Data   DataConfig
	Report ReportConfig
}

// DataConfig holds the source file settings
type DataConfig struct {
	File      string
	SourceURL string
}

// ReportConfig holds the output artifact settings
type ReportConfig struct {
	Dir           string
	HistogramBins int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Data: DataConfig{
			File:      envOr("ACTIVITY_FILE", DefaultDataFile),
			SourceURL: envOr("ACTIVITY_SOURCE_URL", DefaultSourceURL),
		},
		Report: ReportConfig{
			Dir:           envOr("REPORT_DIR", DefaultReportDir),
			HistogramBins: DefaultHistBins,
		},
	}

	if binsStr := os.Getenv("HISTOGRAM_BINS"); binsStr != "" {
		bins, err := strconv.Atoi(binsStr)
		if err != nil {
			return nil, errors.ConfigInvalid("HISTOGRAM_BINS must be an integer")
		}
		config.Report.HistogramBins = bins
	}

	if err := validate(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validate(config *Config) error {
	if config.Data.File == "" {
		return errors.ConfigInvalid("ACTIVITY_FILE cannot be empty")
	}
	if config.Data.SourceURL == "" {
		return errors.ConfigInvalid("ACTIVITY_SOURCE_URL cannot be empty")
	}
	if config.Report.Dir == "" {
		return errors.ConfigInvalid("REPORT_DIR cannot be empty")
	}
	if config.Report.HistogramBins < 1 {
		return errors.ConfigInvalid("HISTOGRAM_BINS must be positive")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
