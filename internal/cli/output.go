package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pfrederiksen/dci-showbot/internal/event"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// WriteEvents writes stored events in the specified format.
func WriteEvents(w io.Writer, records []*event.Record, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, records)
	case FormatText:
		return writeText(w, records)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeJSON(w io.Writer, records []*event.Record) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}

func writeText(w io.Writer, records []*event.Record) error {
	if len(records) == 0 {
		fmt.Fprintln(w, "No events found.")
		return nil
	}

	for _, rec := range records {
		status := "unposted"
		if rec.Posted != nil {
			status = "posted " + rec.Posted.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "%s  %s - %s [%s]\n",
			rec.EventDate.Format("2006-01-02 15:04 -0700"), rec.Title, rec.Location, status)
		fmt.Fprintf(w, "    %s, %d act(s), %s\n", rec.Timezone, len(rec.Lineup), rec.URL)
	}
	fmt.Fprintf(w, "\nTotal: %d event(s)\n", len(records))

	return nil
}
