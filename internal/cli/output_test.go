package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/pfrederiksen/dci-showbot/internal/event"
)

func sampleRecords() []*event.Record {
	posted := time.Date(2026, 7, 4, 9, 0, 0, 0, time.UTC)
	return []*event.Record{
		{
			URL:       "https://www.dci.org/events/2026/show-a",
			EventDate: time.Date(2026, 7, 4, 19, 30, 0, 0, time.FixedZone("", -4*60*60)),
			Location:  "Cincinnati, OH",
			Title:     "Show A",
			Timezone:  "Eastern Daylight Time",
			Lineup:    []event.Slot{{Time: "7:00 PM", Act: "Corps A"}},
			HumanDate: "Saturday, July 4",
			Posted:    &posted,
		},
		{
			URL:       "https://www.dci.org/events/2026/show-b",
			EventDate: time.Date(2026, 7, 4, 20, 0, 0, 0, time.FixedZone("", -5*60*60)),
			Location:  "Madison, WI",
			Title:     "Show B",
			Timezone:  "Central Daylight Time",
			Lineup:    []event.Slot{{Time: "8:00 PM", Act: "Corps C"}},
			HumanDate: "Saturday, July 4",
		},
	}
}

func TestWriteEventsText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteEvents(&buf, sampleRecords(), FormatText); err != nil {
		t.Fatalf("WriteEvents failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Show A - Cincinnati, OH [posted 2026-07-04 09:00]") {
		t.Errorf("missing posted line:\n%s", out)
	}
	if !strings.Contains(out, "Show B - Madison, WI [unposted]") {
		t.Errorf("missing unposted line:\n%s", out)
	}
	if !strings.Contains(out, "Total: 2 event(s)") {
		t.Errorf("missing total:\n%s", out)
	}
}

func TestWriteEventsTextEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteEvents(&buf, nil, FormatText); err != nil {
		t.Fatalf("WriteEvents failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No events found.") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestWriteEventsJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteEvents(&buf, sampleRecords(), FormatJSON); err != nil {
		t.Fatalf("WriteEvents failed: %v", err)
	}

	var decoded []*event.Record
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("expected 2 records, got %d", len(decoded))
	}
	if decoded[0].Lineup[0].Act != "Corps A" {
		t.Errorf("lineup did not survive JSON output: %+v", decoded[0].Lineup)
	}
}

func TestWriteEventsUnknownFormat(t *testing.T) {
	if err := WriteEvents(&bytes.Buffer{}, nil, OutputFormat("yaml")); err == nil {
		t.Error("expected an error for an unknown format")
	}
}
