package rate

import (
	"math"
	"strconv"
	"time"
)

const (
	// UpdatedFormat is the layout for the document's updated timestamp.
	UpdatedFormat = "2006-01-02 15:04 UTC"

	// periodSeparator joins the period's from and to dates (en dash).
	periodSeparator = " – "
)

// Document is the JSON summary published for the website. The next* fields
// are present only when a future surcharge period is already listed.
type Document struct {
	Rate       float64  `json:"rate"`
	Label      string   `json:"label"`
	Period     string   `json:"period"`
	Updated    string   `json:"updated"`
	NextRate   *float64 `json:"nextRate,omitempty"`
	NextLabel  string   `json:"nextLabel,omitempty"`
	NextPeriod string   `json:"nextPeriod,omitempty"`
}

// NewDocument builds the summary document from a resolved selection.
// Rates are published as fractions rounded to four decimal places; labels
// keep the percentage exactly as scraped.
func NewDocument(sel *Selection, now time.Time) *Document {
	doc := &Document{
		Rate:    fraction(sel.Current.Percent),
		Label:   label(sel.Current.Percent),
		Period:  sel.Current.From + periodSeparator + sel.Current.To,
		Updated: now.UTC().Format(UpdatedFormat),
	}

	if sel.Next != nil {
		next := fraction(sel.Next.Percent)
		doc.NextRate = &next
		doc.NextLabel = label(sel.Next.Percent)
		doc.NextPeriod = sel.Next.From + periodSeparator + sel.Next.To
	}

	return doc
}

// fraction converts a percentage to a fraction rounded to four decimals,
// e.g. 17.3 -> 0.173.
func fraction(percent float64) float64 {
	return math.Round(percent/100*10000) / 10000
}

// label formats a percentage for display, e.g. 17.3 -> "17.3%".
func label(percent float64) string {
	return strconv.FormatFloat(percent, 'f', -1, 64) + "%"
}
