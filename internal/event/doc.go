// Package event defines the canonical event record scraped from the DCI
// website and shared between the scrape and notify loops.
//
// A Record carries the detail-page URL, the event start time in the
// site's own fixed offset, the location and title, the human-readable
// timezone label and date banner, the ordered lineup, and the posted
// marker used for notification deduplication. The lineup's wire format
// (a JSON array of 2-element string arrays) is part of the storage
// contract and must round-trip in order.
package event
