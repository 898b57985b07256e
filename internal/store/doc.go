// Package store provides the durable SQLite table shared by the scrape
// and notify loops.
//
// The events table is the only coordination point between the two loops:
// the scrape loop writes records through Upsert, the notify loop reads
// candidates through FindInDateRange and stamps published batches with
// MarkPosted. Titles are unique; re-scraping an event overwrites its
// fields but never clears an existing posted marker, which is what keeps
// an already-announced event from being announced again.
package store
