package store

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pfrederiksen/dci-showbot/internal/event"
	"github.com/pfrederiksen/dci-showbot/internal/faults"
)

// Timestamps are stored as ISO-8601 text with the record's own offset so
// SQLite's datetime() can compare them while the stated offset survives
// round-trips.
const dateLayout = time.RFC3339

const schema = `
CREATE TABLE IF NOT EXISTS events (
	id INTEGER PRIMARY KEY,
	url TEXT NOT NULL,
	date TEXT NOT NULL,
	location TEXT NOT NULL,
	title TEXT NOT NULL UNIQUE,
	timezone TEXT NOT NULL,
	lineup TEXT NOT NULL,
	posted TEXT,
	human_date TEXT NOT NULL
)`

// Store wraps the SQLite events database.
type Store struct {
	db *sqlx.DB
}

// Open creates or opens the events database at the given path and
// ensures the schema exists.
func Open(path string) (*Store, error) {
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, faults.Errorf(faults.Store, "opening database %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, faults.Errorf(faults.Store, "connecting to database %s: %w", path, err)
	}

	// SQLite allows one writer at a time; both loops share this
	// connection, so serialize access here.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, faults.Errorf(faults.Store, "creating events table: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Upsert writes a record, replacing any existing record with the same
// title. Every column except posted is updated, so a previously set
// posted marker survives re-scrapes. Returns the number of rows
// affected (0 or 1), for diagnostics only.
func (s *Store) Upsert(rec *event.Record) (int64, error) {
	lineupJSON, err := event.EncodeLineup(rec.Lineup)
	if err != nil {
		return 0, faults.Wrap(faults.Data, err)
	}

	res, err := s.db.Exec(`
		INSERT INTO events (url, date, location, title, timezone, lineup, human_date)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(title) DO UPDATE SET
			url = excluded.url,
			date = excluded.date,
			location = excluded.location,
			timezone = excluded.timezone,
			lineup = excluded.lineup,
			human_date = excluded.human_date`,
		rec.URL,
		rec.EventDate.Format(dateLayout),
		rec.Location,
		rec.Title,
		rec.Timezone,
		lineupJSON,
		rec.HumanDate,
	)
	if err != nil {
		return 0, faults.Errorf(faults.Store, "upserting %q: %w", rec.Title, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, faults.Errorf(faults.Store, "upserting %q: %w", rec.Title, err)
	}
	return rows, nil
}

// FindInDateRange returns records whose event date falls within
// [start, end), ascending by event date. With unpostedOnly set, records
// already included in a published batch are excluded.
func (s *Store) FindInDateRange(start, end time.Time, unpostedOnly bool) ([]*event.Record, error) {
	query := `
		SELECT url, date, location, title, timezone, lineup, posted, human_date
		FROM events
		WHERE datetime(date) >= datetime(?) AND datetime(date) < datetime(?)`
	if unpostedOnly {
		query += ` AND posted IS NULL`
	}
	query += ` ORDER BY datetime(date) ASC`

	var rows []eventRow
	err := s.db.Select(&rows, query, start.Format(dateLayout), end.Format(dateLayout))
	if err != nil {
		return nil, faults.Errorf(faults.Store, "querying date range: %w", err)
	}

	records := make([]*event.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := row.toRecord()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// MarkPosted stamps the given titles as posted at the given time, in one
// transaction: either the whole batch is marked or none of it is.
func (s *Store) MarkPosted(titles []string, at time.Time) error {
	if len(titles) == 0 {
		return nil
	}

	query, args, err := sqlx.In(
		`UPDATE events SET posted = ? WHERE title IN (?)`,
		at.UTC().Format(dateLayout), titles,
	)
	if err != nil {
		return faults.Errorf(faults.Store, "building mark-posted query: %w", err)
	}

	tx, err := s.db.Beginx()
	if err != nil {
		return faults.Errorf(faults.Store, "starting mark-posted transaction: %w", err)
	}
	if _, err := tx.Exec(tx.Rebind(query), args...); err != nil {
		tx.Rollback() // nolint:errcheck
		return faults.Errorf(faults.Store, "marking %d event(s) posted: %w", len(titles), err)
	}
	if err := tx.Commit(); err != nil {
		return faults.Errorf(faults.Store, "committing mark-posted transaction: %w", err)
	}
	return nil
}

// eventRow is the raw table shape; toRecord re-parses the encoded
// columns.
type eventRow struct {
	URL       string         `db:"url"`
	Date      string         `db:"date"`
	Location  string         `db:"location"`
	Title     string         `db:"title"`
	Timezone  string         `db:"timezone"`
	Lineup    string         `db:"lineup"`
	Posted    sql.NullString `db:"posted"`
	HumanDate string         `db:"human_date"`
}

func (r eventRow) toRecord() (*event.Record, error) {
	eventDate, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return nil, faults.Errorf(faults.Data, "event %q has malformed date %q: %w", r.Title, r.Date, err)
	}

	lineup, err := event.DecodeLineup(r.Lineup)
	if err != nil {
		return nil, faults.Errorf(faults.Data, "event %q: %w", r.Title, err)
	}

	rec := &event.Record{
		URL:       r.URL,
		EventDate: eventDate,
		Location:  r.Location,
		Title:     r.Title,
		Timezone:  r.Timezone,
		Lineup:    lineup,
		HumanDate: r.HumanDate,
	}

	if r.Posted.Valid {
		posted, err := time.Parse(dateLayout, r.Posted.String)
		if err != nil {
			return nil, faults.Errorf(faults.Data, "event %q has malformed posted marker %q: %w", r.Title, r.Posted.String, err)
		}
		rec.Posted = &posted
	}

	return rec, nil
}
