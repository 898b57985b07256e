package event

import (
	"fmt"
	"time"
)

// siteDateLayout matches the timestamp the site embeds in the calendar
// icon's alt attribute, e.g. "2026-07-04T19:30:00.000-0500".
const siteDateLayout = "2006-01-02T15:04:05.000-0700"

// ParseSiteDate parses the site's event timestamp, keeping the stated
// fixed offset.
func ParseSiteDate(raw string) (time.Time, error) {
	t, err := time.Parse(siteDateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing event date %q: %w", raw, err)
	}
	return t, nil
}

// FormatQueryDate renders a date the way the site's listing query
// parameters expect it (YYYY-MM-DD).
func FormatQueryDate(t time.Time) string {
	return t.Format("2006-01-02")
}
