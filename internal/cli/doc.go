// Package cli implements the command-line interface for fuelrate.
//
// The cli package provides the Cobra-based CLI that runs the update
// pipeline: scrape the surcharge page, resolve the current and next rate
// periods, and write the summary document. Fetch and parse failures are
// reported on stdout and exit zero so a scheduled run simply leaves the
// previous summary in place; only genuine I/O or usage errors exit
// non-zero.
package cli
