package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/tmadsen/fuelrate/internal/logger"
	"github.com/tmadsen/fuelrate/internal/rate"
	"github.com/tmadsen/fuelrate/internal/scraper"
	"github.com/tmadsen/fuelrate/internal/storage"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// DefaultOutputPath is where the summary document is written unless
// overridden with --output.
const DefaultOutputPath = "fuel-rate.json"

var (
	flagURL     string
	flagOutput  string
	flagTimeout time.Duration
	flagFormat  string
	flagNow     string
	flagDryRun  bool
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fuelrate",
		Short: "Refresh the published fuel surcharge summary",
		Long: `Fetches the TNT Australia domestic fuel surcharge page, works out which
surcharge period applies today (and which one is coming up), and writes a
small JSON summary for the website to display.

A fetch or parse failure leaves the previous summary untouched and exits
zero; the next scheduled run simply tries again.`,
		Args: cobra.NoArgs,
		RunE: runUpdate,
	}

	// Define flags
	cmd.Flags().StringVar(&flagURL, "url", scraper.SurchargeURL, "Surcharge page URL")
	cmd.Flags().StringVar(&flagOutput, "output", DefaultOutputPath, "Output file path")
	cmd.Flags().DurationVar(&flagTimeout, "timeout", scraper.Timeout, "HTTP request timeout")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Run report format: text or json")
	cmd.Flags().StringVar(&flagNow, "now", "", `Override today's date for period selection (e.g. "15 February 2024")`)
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print the summary document without writing it")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runUpdate is the main command logic
func runUpdate(cmd *cobra.Command, args []string) error {
	// Validate format
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	// Period selection works on calendar dates; --now pins it for
	// reproducible runs.
	now := time.Now()
	if flagNow != "" {
		parsed := rate.ParseDate(flagNow)
		if parsed.IsZero() {
			return fmt.Errorf("invalid --now value: %q (expected %q form, e.g. \"15 February 2024\")", flagNow, rate.DateFormat)
		}
		now = parsed
	}

	sc := scraper.New(flagURL, flagTimeout)
	logger.Debug("fetching surcharge page", logger.Fields{
		"url":     flagURL,
		"timeout": flagTimeout.String(),
	})

	periods, err := sc.FetchPeriods()
	if err != nil {
		return reportFailure(os.Stdout, err, format)
	}

	logger.Debug("extracted surcharge periods", logger.Fields{
		"count": len(periods),
	})

	sel, err := rate.Resolve(periods, now)
	if err != nil {
		return reportFailure(os.Stdout, err, format)
	}

	doc := rate.NewDocument(sel, time.Now())

	if flagDryRun {
		return WriteOutput(os.Stdout, &OutputResult{Document: doc, DryRun: true}, format)
	}

	store, err := storage.New(flagOutput)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	if flagVerbose {
		if prev, err := store.ReadDocument(); err == nil && prev != nil {
			logger.Debug("replacing previous summary", logger.Fields{
				"label":  prev.Label,
				"period": prev.Period,
			})
		}
	}

	if err := store.WriteDocument(doc); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return WriteOutput(os.Stdout, &OutputResult{Document: doc, Path: store.Path()}, format)
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
