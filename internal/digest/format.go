package digest

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/pfrederiksen/dci-showbot/internal/event"
)

// FormatTitle renders the post title for a batch:
//
//	[Show Thread] Saturday, July 4: Show A - City, ST | Show B - City, ST
func FormatTitle(batch []*event.Record) string {
	if len(batch) == 0 {
		return ""
	}

	parts := make([]string, 0, len(batch))
	for _, rec := range batch {
		parts = append(parts, fmt.Sprintf("%s - %s", rec.Title, rec.Location))
	}

	return fmt.Sprintf("[Show Thread] %s: %s", batch[0].HumanDate, strings.Join(parts, " | "))
}

// FormatBody renders the post body: per event a header block with the
// detail link and timezone disclaimer, then the lineup as a two-column
// markdown table. A horizontal rule separates consecutive events.
func FormatBody(batch []*event.Record) string {
	var b strings.Builder

	for i, rec := range batch {
		fmt.Fprintf(&b, "**%s - %s**\n\n", rec.Title, rec.Location)
		fmt.Fprintf(&b, "[DCI Page](%s)\n\n", rec.URL)
		b.WriteString("**Lineup & Times**\n\n")
		fmt.Fprintf(&b, "*All times %s and subject to change*\n\n", rec.Timezone)

		for j, slot := range rec.Lineup {
			if j == 0 {
				// The first row doubles as the table header and needs the
				// separator line beneath it.
				fmt.Fprintf(&b, "| %s | %s |\n", slot.Time, slot.Act)
				b.WriteString("|------|-----------------------------------------|\n")
			} else {
				fmt.Fprintf(&b, " %s | %s\n", slot.Time, slot.Act)
			}
		}

		if i < len(batch)-1 {
			b.WriteString("\n---\n\n")
		}
	}

	return b.String()
}

// EncodeBody escapes the body for safe transport to the posting service.
func EncodeBody(body string) string {
	return url.QueryEscape(body)
}
