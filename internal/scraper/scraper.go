package scraper

import (
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/tmadsen/fuelrate/internal/rate"
)

const (
	SurchargeURL = "https://www.tnt.com/express/en_au/site/how-to/understand-fuel-surcharges.html"
	UserAgent    = "Mozilla/5.0"
	Timeout      = 20 * time.Second
)

// periodPattern matches one surcharge line, e.g.
// "From 1 January 2024 to 31 March 2024: 17.3%"
var periodPattern = regexp.MustCompile(`From\s+(\d{1,2}\s+\w+\s+\d{4})\s+to\s+(\d{1,2}\s+\w+\s+\d{4}):\s*([\d.]+)%`)

// Scraper handles fetching and parsing the fuel surcharge page
type Scraper struct {
	client *http.Client
	url    string
}

// New creates a new Scraper for the given page URL
func New(url string, timeout time.Duration) *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: timeout,
		},
		url: url,
	}
}

// FetchPeriods fetches the surcharge page and extracts every rate period
// it lists, in page order. Retrieval problems return a *rate.FetchError;
// a page with no recognizable periods returns a *rate.ParseError.
func (s *Scraper) FetchPeriods() ([]rate.RawPeriod, error) {
	req, err := http.NewRequest("GET", s.url, nil)
	if err != nil {
		return nil, &rate.FetchError{URL: s.url, Err: err}
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &rate.FetchError{URL: s.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &rate.FetchError{URL: s.url, Err: fmt.Errorf("unexpected status code: %d", resp.StatusCode)}
	}

	return s.parsePeriods(resp.Body)
}

// parsePeriods extracts surcharge periods from HTML
func (s *Scraper) parsePeriods(r io.Reader) ([]rate.RawPeriod, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, &rate.ParseError{Reason: fmt.Sprintf("parsing HTML: %v", err)}
	}

	// Collapse the rendered text to single-space runs so the pattern can
	// match period lines split across elements or line breaks.
	text := strings.Join(strings.Fields(doc.Text()), " ")

	matches := periodPattern.FindAllStringSubmatch(text, -1)

	periods := make([]rate.RawPeriod, 0, len(matches))
	for _, m := range matches {
		percent, err := strconv.ParseFloat(m[3], 64)
		if err != nil {
			continue
		}
		periods = append(periods, rate.RawPeriod{
			From:    m[1],
			To:      m[2],
			Percent: percent,
		})
	}

	if len(periods) == 0 {
		return nil, &rate.ParseError{Reason: "no surcharge periods found in page text"}
	}

	return periods, nil
}
