// Package rate provides the fuel surcharge domain model and period resolution.
//
// The rate package turns the raw date-range lines scraped from the surcharge
// page into dated periods, decides which period applies today (and which one
// is coming up next), and builds the summary document that gets published for
// the website. It also defines the two failure kinds the pipeline
// distinguishes: FetchError for page retrieval problems and ParseError for
// pages that yield no usable periods.
package rate
