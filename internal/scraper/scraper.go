package scraper

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/dci-showbot/internal/event"
	"github.com/pfrederiksen/dci-showbot/internal/faults"
)

// Markup markers on dci.org. The listing and detail pages are keyed by
// exact class attributes and icon paths rather than semantic structure.
const (
	eventsContainerSelector = `[class="events-items"]`
	detailsLinkSelector     = `a[class="link details"]`
	infoBoxSelector         = `[class="info-holder"]`
	mainDateSelector        = ".main-date"
	lineupHolderSelector    = `[class="line-up-holder limit"]`
	timeTableSelector       = `[class="time-table"]`

	dateMarkerSrc     = "/slice/dist/images/icons/watch_grey_icon.svg"
	locationMarkerSrc = "/slice/dist/images/icons/location_grey_icon.svg"
)

// listingItem is an event stub parsed from the listing page. The detail
// page fills in the timezone and lineup.
type listingItem struct {
	Title      string
	EventDate  time.Time
	Location   string
	HumanDate  string
	DetailPath string
}

// ScrapeDay fetches and extracts all events the site lists for the given
// day. A day with no events returns an empty slice and no error; any
// structural surprise in the markup aborts the whole scrape.
func (s *Scraper) ScrapeDay(date time.Time) ([]*event.Record, error) {
	body, err := s.fetchListing(date)
	if err != nil {
		return nil, err
	}
	items, err := parseListing(body)
	body.Close()
	if err != nil {
		return nil, err
	}

	records := make([]*event.Record, 0, len(items))
	for _, item := range items {
		detailURL := s.baseURL + item.DetailPath

		detail, err := s.fetchPage(detailURL, nil)
		if err != nil {
			return nil, err
		}
		timezone, lineup, err := parseDetail(detail)
		detail.Close()
		if err != nil {
			return nil, fmt.Errorf("detail page %s: %w", detailURL, err)
		}

		records = append(records, &event.Record{
			URL:       detailURL,
			EventDate: item.EventDate,
			Location:  item.Location,
			Title:     item.Title,
			Timezone:  timezone,
			Lineup:    lineup,
			HumanDate: item.HumanDate,
		})
	}

	return records, nil
}

// parseListing extracts event stubs from listing-page HTML.
func parseListing(r io.Reader) ([]listingItem, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, faults.Errorf(faults.ShapeChanged, "parsing listing page: %w", err)
	}

	container := doc.Find(eventsContainerSelector).First()
	if container.Length() == 0 {
		// The site legitimately has days with no events.
		return nil, nil
	}

	children := container.Children()
	if children.Length() == 0 {
		return nil, nil
	}

	// The human-readable date banner appears once per page and is
	// attached to every item on it.
	humanDate := strings.TrimSpace(doc.Find(mainDateSelector).First().Text())
	if humanDate == "" {
		return nil, faults.New(faults.ShapeChanged, "human-readable date banner not found")
	}

	var items []listingItem
	var parseErr error
	children.EachWithBreak(func(i int, child *goquery.Selection) bool {
		item, err := parseListingItem(child, humanDate)
		if err != nil {
			parseErr = fmt.Errorf("listing item %d: %w", i, err)
			return false
		}
		items = append(items, item)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return items, nil
}

// parseListingItem extracts one event stub from a listing container child.
func parseListingItem(child *goquery.Selection, humanDate string) (listingItem, error) {
	href, ok := child.Find(detailsLinkSelector).First().Attr("href")
	if !ok {
		return listingItem{}, faults.New(faults.ShapeChanged, "detail link not found")
	}

	info := child.Find(infoBoxSelector).First()
	if info.Length() == 0 {
		return listingItem{}, faults.New(faults.ShapeChanged, "info box not found")
	}

	title := strings.TrimSpace(info.Find("h3").First().Text())
	if title == "" {
		return listingItem{}, faults.New(faults.ShapeChanged, "event title not found")
	}

	alt, ok := info.Find(imgSelector(dateMarkerSrc)).First().Attr("alt")
	if !ok {
		return listingItem{}, faults.New(faults.ShapeChanged, "event date marker not found")
	}
	eventDate, err := event.ParseSiteDate(alt)
	if err != nil {
		return listingItem{}, faults.Wrap(faults.ShapeChanged, err)
	}

	locationMarker := info.Find(imgSelector(locationMarkerSrc)).First()
	if locationMarker.Length() == 0 {
		return listingItem{}, faults.New(faults.ShapeChanged, "location marker not found")
	}
	location := strings.TrimSpace(locationMarker.Parent().Text())
	if location == "" {
		return listingItem{}, faults.New(faults.ShapeChanged, "location text not found")
	}

	return listingItem{
		Title:      title,
		EventDate:  eventDate,
		Location:   location,
		HumanDate:  humanDate,
		DetailPath: href,
	}, nil
}

// parseDetail extracts the timezone label and ordered lineup from
// detail-page HTML.
func parseDetail(r io.Reader) (string, []event.Slot, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", nil, faults.Errorf(faults.ShapeChanged, "parsing detail page: %w", err)
	}

	para := doc.Find(lineupHolderSelector).First().Find("p").First()
	if para.Length() == 0 {
		return "", nil, faults.New(faults.ShapeChanged, "timezone section not found")
	}
	// The timezone label is the paragraph's second node, after an inline
	// heading element.
	nodes := para.Contents()
	if nodes.Length() < 2 {
		return "", nil, faults.New(faults.ShapeChanged, "timezone text not found")
	}
	timezone := strings.TrimSpace(nodes.Eq(1).Text())

	table := doc.Find(timeTableSelector).First()
	if table.Length() == 0 {
		return "", nil, faults.New(faults.ShapeChanged, "lineup table not found")
	}

	var lineup []event.Slot
	var rowErr error
	table.Children().EachWithBreak(func(i int, row *goquery.Selection) bool {
		cells := row.Children()
		if cells.Length() == 0 {
			rowErr = faults.Errorf(faults.ShapeChanged, "lineup row %d has no entries", i)
			return false
		}
		lineup = append(lineup, event.Slot{
			Time: strings.TrimSpace(cells.First().Text()),
			Act:  strings.TrimSpace(cells.Last().Text()),
		})
		return true
	})
	if rowErr != nil {
		return "", nil, rowErr
	}
	if len(lineup) == 0 {
		return "", nil, faults.New(faults.ShapeChanged, "lineup table has no rows")
	}

	return timezone, lineup, nil
}

func imgSelector(src string) string {
	return fmt.Sprintf(`img[src=%q]`, src)
}
