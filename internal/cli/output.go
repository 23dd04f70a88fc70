package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/tmadsen/fuelrate/internal/rate"
)

// OutputFormat specifies the run report format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// Failure kinds reported by a run
const (
	FailureFetch = "fetch"
	FailureParse = "parse"
)

// OutputResult describes the outcome of one update run
type OutputResult struct {
	Document *rate.Document `json:"document,omitempty"`
	Path     string         `json:"path,omitempty"`
	DryRun   bool           `json:"dry_run,omitempty"`
	Failure  string         `json:"failure,omitempty"`
	Detail   string         `json:"detail,omitempty"`
}

// WriteOutput writes the run result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// reportFailure prints a fetch or parse failure and swallows the error so
// the process exits zero; the previous output file stays in place for
// consumers. Errors of any other kind are returned unchanged.
func reportFailure(w io.Writer, err error, format OutputFormat) error {
	var fetchErr *rate.FetchError
	var parseErr *rate.ParseError

	result := &OutputResult{Detail: err.Error()}
	switch {
	case errors.As(err, &fetchErr):
		result.Failure = FailureFetch
	case errors.As(err, &parseErr):
		result.Failure = FailureParse
	default:
		return err
	}

	return WriteOutput(w, result, format)
}

// writeJSON outputs the run result as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs the run result as human-readable text
func writeText(w io.Writer, result *OutputResult) error {
	switch result.Failure {
	case FailureFetch:
		fmt.Fprintf(w, "Failed to fetch page: %s\n", result.Detail)
		return nil
	case FailureParse:
		fmt.Fprintf(w, "Could not parse fuel rates from page: %s\n", result.Detail)
		return nil
	}

	if result.DryRun {
		data, err := json.MarshalIndent(result.Document, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding document: %w", err)
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	fmt.Fprintf(w, "Updated: %s for %s\n", result.Document.Label, result.Document.Period)
	if result.Document.NextLabel != "" {
		fmt.Fprintf(w, "Next: %s for %s\n", result.Document.NextLabel, result.Document.NextPeriod)
	}

	return nil
}
