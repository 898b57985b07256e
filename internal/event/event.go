package event

import (
	"encoding/json"
	"fmt"
	"time"
)

// Slot is one row of an event lineup: a performance time label and the
// act performing at that time.
type Slot struct {
	Time string
	Act  string
}

// Record represents one DCI event as stored in the database.
type Record struct {
	// URL is the absolute link to the event's detail page.
	URL string `json:"url"`
	// EventDate is the event start in the offset stated by the site.
	// The offset is kept as-is and never renormalized.
	EventDate time.Time `json:"event_date"`
	// Location is a free-text "City, ST" string.
	Location string `json:"location"`
	// Title is the event name and the uniqueness key across the store.
	Title string `json:"title"`
	// Timezone is the human-readable label for the lineup times. It does
	// not have to match EventDate's offset.
	Timezone string `json:"timezone"`
	// Lineup holds the performance schedule in performance order.
	Lineup []Slot `json:"lineup"`
	// HumanDate is the site's own human-readable date banner.
	HumanDate string `json:"human_date"`
	// Posted is when the record was included in a published digest.
	// nil means not yet notified.
	Posted *time.Time `json:"posted,omitempty"`
}

// HoursUntil returns the number of whole hours from now until the event
// starts. Negative if the event already started.
func (r *Record) HoursUntil(now time.Time) int {
	return int(r.EventDate.Sub(now).Hours())
}

// MarshalJSON encodes a slot as a 2-element array ["time", "act"],
// the wire format used by the lineup column.
func (s Slot) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{s.Time, s.Act})
}

// UnmarshalJSON decodes the 2-element array form of a slot.
func (s *Slot) UnmarshalJSON(data []byte) error {
	var pair [2]string
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("decoding lineup slot: %w", err)
	}
	s.Time = pair[0]
	s.Act = pair[1]
	return nil
}

// EncodeLineup serializes a lineup for the database, preserving order.
func EncodeLineup(lineup []Slot) (string, error) {
	data, err := json.Marshal(lineup)
	if err != nil {
		return "", fmt.Errorf("encoding lineup: %w", err)
	}
	return string(data), nil
}

// DecodeLineup deserializes a lineup column value.
func DecodeLineup(raw string) ([]Slot, error) {
	var lineup []Slot
	if err := json.Unmarshal([]byte(raw), &lineup); err != nil {
		return nil, fmt.Errorf("decoding lineup: %w", err)
	}
	return lineup, nil
}
