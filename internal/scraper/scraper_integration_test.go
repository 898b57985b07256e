package scraper

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pfrederiksen/dci-showbot/internal/faults"
)

// fixtureServer serves the listing fixture at /events and detail fixtures
// at their listing hrefs.
func fixtureServer(t *testing.T, listing string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/events", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("startDate") == "" || r.URL.Query().Get("toDate") == "" {
			http.Error(w, "missing date range", http.StatusBadRequest)
			return
		}
		w.Write([]byte(loadFixture(t, listing))) // nolint:errcheck
	})
	mux.HandleFunc("/events/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(loadFixture(t, "detail.html"))) // nolint:errcheck
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestScrapeDay(t *testing.T) {
	server := fixtureServer(t, "listing.html")
	s := NewWithBaseURL(server.URL)

	records, err := s.ScrapeDay(time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("ScrapeDay failed: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	first := records[0]
	if first.URL != server.URL+"/events/2026/summer-music-games-in-cincinnati" {
		t.Errorf("record URL = %q", first.URL)
	}
	if first.Timezone != "Eastern Daylight Time" {
		t.Errorf("timezone = %q", first.Timezone)
	}
	if len(first.Lineup) != 4 {
		t.Errorf("expected 4 lineup rows, got %d", len(first.Lineup))
	}
	if first.Posted != nil {
		t.Error("a freshly scraped record must not be marked posted")
	}
}

func TestScrapeDayShapeChangeAbortsCycle(t *testing.T) {
	server := fixtureServer(t, "listing_missing_title.html")
	s := NewWithBaseURL(server.URL)

	records, err := s.ScrapeDay(time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC))
	if !faults.Is(err, faults.ShapeChanged) {
		t.Fatalf("expected shape-changed error, got %v", err)
	}
	if records != nil {
		t.Errorf("a failed cycle must yield zero records, got %d", len(records))
	}
}

func TestScrapeDayTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down for maintenance", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	s := NewWithBaseURL(server.URL)
	if _, err := s.ScrapeDay(time.Now()); !faults.Is(err, faults.Transport) {
		t.Errorf("expected transport error, got %v", err)
	}
}
