package scraper

import (
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pfrederiksen/dci-showbot/internal/event"
	"github.com/pfrederiksen/dci-showbot/internal/faults"
)

const (
	BaseURL   = "https://www.dci.org"
	UserAgent = "dci-showbot/1.0 (github.com/pfrederiksen/dci-showbot)"
	Timeout   = 30 * time.Second

	eventsPath = "/events"

	// Listing query parameters naming the start and end of the window.
	startDateParam = "startDate"
	endDateParam   = "toDate"
)

// Scraper fetches and parses DCI event pages.
type Scraper struct {
	client  *http.Client
	baseURL string
}

// New creates a Scraper pointed at dci.org.
func New() *Scraper {
	return NewWithBaseURL(BaseURL)
}

// NewWithBaseURL creates a Scraper pointed at an alternate host. Used by
// tests to target a local server.
func NewWithBaseURL(baseURL string) *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		baseURL: baseURL,
	}
}

// fetchListing requests the events listing for a single day, with the
// start and end query parameters both set to that day.
func (s *Scraper) fetchListing(date time.Time) (io.ReadCloser, error) {
	day := event.FormatQueryDate(date)
	query := url.Values{}
	query.Set(startDateParam, day)
	query.Set(endDateParam, day)

	return s.fetchPage(s.baseURL+eventsPath, query)
}

// fetchPage issues a GET for a page and returns its body. Non-200
// responses and network failures are transport errors.
func (s *Scraper) fetchPage(pageURL string, query url.Values) (io.ReadCloser, error) {
	req, err := http.NewRequest("GET", pageURL, nil)
	if err != nil {
		return nil, faults.Errorf(faults.Transport, "creating request for %s: %w", pageURL, err)
	}
	req.Header.Set("User-Agent", UserAgent)
	if query != nil {
		req.URL.RawQuery = query.Encode()
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, faults.Errorf(faults.Transport, "fetching %s: %w", pageURL, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, faults.Errorf(faults.Transport, "fetching %s: unexpected status code %d", pageURL, resp.StatusCode)
	}

	return resp.Body, nil
}
