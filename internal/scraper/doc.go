// Package scraper provides HTTP fetching and HTML parsing for DCI events.
//
// The scraper fetches the public events listing for a single day and the
// per-event detail pages linked from it, extracting titles, start times,
// locations, the human-readable date banner, the timezone label, and the
// ordered lineup table. The markup is class- and attribute-driven rather
// than semantic, so extraction is deliberately strict: any missing or
// unparseable marker fails the whole cycle with a shape-changed error
// instead of persisting a partial record.
package scraper
