package main

import (
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
	"github.com/spf13/cobra"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	rootCmd := &cobra.Command{
		Use:   "stride",
		Short: "Descriptive-statistics report over a step-count activity log",
	}

	rootCmd.AddCommand(
		newFetchCmd(),
		newSummaryCmd(),
		newReportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildService() (*app.ReportService, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	service := app.NewReportService(
		cfg,
		internal.NewDefaultLogger(),
		fetch.NewFetcher(cfg.Data.SourceURL, cfg.Data.File),
		csvfile.NewReader(cfg.Data.File),
		excel.NewWriter(),
	)
	return service, cfg, nil
}

func newFetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch",
		Short: "Download and extract the activity log if it is not present",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			fetcher := fetch.NewFetcher(cfg.Data.SourceURL, cfg.Data.File)
			if err := fetcher.EnsureSource(cmd.Context()); err != nil {
				return err
			}
			fmt.Printf("Source ready: %s\n", cfg.Data.File)
			return nil
		},
	}
}

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the scalar statistics without writing any artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			service, _, err := buildService()
			if err != nil {
				return err
			}
			a, err := service.Analyze(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("Observations:       %d (%d missing, %.1f%%)\n",
				a.Census.Observations, a.Census.Missing, 100*a.Census.MissingRate)
			fmt.Printf("Mean daily steps:   %.2f (imputed: %.2f)\n", a.RawSummary.Mean, a.ImputedSum.Mean)
			fmt.Printf("Median daily steps: %.2f (imputed: %.2f)\n", a.RawSummary.Median, a.ImputedSum.Median)
			fmt.Printf("Peak interval:      %s (%.2f mean steps)\n", a.Peaks[0].Interval, a.Peaks[0].MeanSteps)
			return nil
		},
	}
}

func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Run the full pipeline and write figures, workbook and documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			service, cfg, err := buildService()
			if err != nil {
				return err
			}
			result, err := service.Run(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("Report %s written to %s\n", result.ReportID, cfg.Report.Dir)
			return nil
		},
	}
}
