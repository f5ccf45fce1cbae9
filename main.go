package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"stride/adapters/csvfile"
	"stride/adapters/excel"
	"stride/adapters/fetch"
	"stride/app"
	"stride/internal"
	"stride/internal/config"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	logger := internal.NewDefaultLogger()
	service := app.NewReportService(
		cfg,
		logger,
		fetch.NewFetcher(cfg.Data.SourceURL, cfg.Data.File),
		csvfile.NewReader(cfg.Data.File),
		excel.NewWriter(),
	)

	result, err := service.Run(context.Background())
	if err != nil {
		logger.Error("Report failed: %v", err)
		os.Exit(1)
	}

	a := result.Analysis
	fmt.Printf("Report %s\n", result.ReportID)
	fmt.Printf("  Observations:        %d (%d missing, %.1f%%)\n",
		a.Census.Observations, a.Census.Missing, 100*a.Census.MissingRate)
	fmt.Printf("  Mean daily steps:    %.2f (imputed: %.2f)\n", a.RawSummary.Mean, a.ImputedSum.Mean)
	fmt.Printf("  Median daily steps:  %.2f (imputed: %.2f)\n", a.RawSummary.Median, a.ImputedSum.Median)
	fmt.Printf("  Peak interval:       %s (%.2f mean steps)\n", a.Peaks[0].Interval, a.Peaks[0].MeanSteps)
	fmt.Printf("  Artifacts:           %s, %s, %s\n", result.MarkdownPath, result.HTMLPath, result.WorkbookPath)
}
