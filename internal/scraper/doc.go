// Package scraper provides HTTP fetching and extraction of fuel surcharge
// periods from the TNT Australia surcharge page.
//
// The scraper fetches the public page with a browser user-agent (the page
// rejects obvious non-browser clients), flattens the rendered text with
// goquery, and pattern-matches the "From D Month YYYY to D Month YYYY: N%"
// lines into raw surcharge periods.
package scraper
