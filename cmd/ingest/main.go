// ingest is a one-shot CLI around the ingestion pipeline: load a scan export
// from a file or a scanner URL, run it through the same normalization the
// dashboard server uses, and print the derived metrics as JSON.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"consent-theater/internal/config"
	"consent-theater/internal/datastore"
	"consent-theater/internal/domain/models"
	"consent-theater/internal/domain/services"
	"consent-theater/pkg/logger"
)

var (
	filePath string
	scanURL  string
	timeout  time.Duration
	verbose  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ingest",
		Short: "Normalize a device-scan export and print its privacy metrics",
		Long: `Loads a scan export from a local JSON file or a scanner transfer-server
URL, normalizes it into the canonical model, and prints the snapshot
metadata plus the derived metrics (risk, demographics, revenue, trust)
as JSON on stdout.`,
		RunE: runIngest,
	}

	rootCmd.Flags().StringVarP(&filePath, "file", "f", "", "path to a JSON export")
	rootCmd.Flags().StringVarP(&scanURL, "url", "u", "", "scanner endpoint or base URL")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "per-request fetch timeout")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.MarkFlagsOneRequired("file", "url")
	rootCmd.MarkFlagsMutuallyExclusive("file", "url")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// report is the stdout document: snapshot metadata plus every derived view.
type report struct {
	ScanID       string                    `json:"scan_id"`
	TotalApps    int                       `json:"total_apps"`
	Trackers     int                       `json:"total_trackers"`
	Dangerous    int                       `json:"total_dangerous_permissions"`
	Activity     models.ActivitySummary    `json:"activity"`
	Demographics models.DemographicProfile `json:"demographics"`
	Revenue      models.RevenueBreakdown   `json:"revenue"`
	Trust        models.TrustReport        `json:"trust"`
	Contagion    models.ContagionGraph     `json:"contagion"`
}

func runIngest(cmd *cobra.Command, args []string) error {
	level := "warn"
	if verbose {
		level = "debug"
	}
	log := logger.New(logger.Config{Level: level, Format: "console"})

	store := datastore.NewStore(nil, log)
	classifier := services.NewPermissionClassifier()
	detector := services.NewTrackerDetector()
	normalizer := services.NewNormalizer(classifier, detector, log)
	ingestor := services.NewIngestor(store, normalizer, config.IngestConfig{FetchTimeout: timeout}, log)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var ds *models.Dataset
	var err error
	if filePath != "" {
		var data []byte
		data, err = os.ReadFile(filePath)
		if err != nil {
			return fmt.Errorf("read %s: %w", filePath, err)
		}
		ds, err = ingestor.IngestFile(ctx, data)
		if err == nil && ds == nil {
			return fmt.Errorf("%s: unrecognized export format", filePath)
		}
	} else {
		ds, err = ingestor.IngestURL(ctx, scanURL)
	}
	if err != nil {
		return err
	}

	out := report{
		Activity:     services.SummarizeActivity(ds.VpnLog),
		Demographics: services.NewDemographicsEngine().Infer(ds.Apps()),
		Revenue:      services.NewRevenueEstimator().Estimate(ds.Apps()),
		Trust:        services.ComputeTrust(ds.Apps(), ds.Contacts),
		Contagion:    services.BuildContagionGraph(ds.Apps(), ds.Contacts),
	}
	if ds.ScanResult != nil {
		out.ScanID = ds.ScanResult.ScanID
		out.TotalApps = ds.ScanResult.TotalApps
		out.Trackers = ds.ScanResult.TotalTrackers
		out.Dangerous = ds.ScanResult.TotalDangerousPermissions
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
