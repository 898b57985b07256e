package bot

import (
	"time"

	"github.com/pfrederiksen/dci-showbot/internal/event"
	"github.com/pfrederiksen/dci-showbot/internal/logger"
)

// RunScrapeCycle scrapes tomorrow's listings and writes every extracted
// record through the store. Any fetch, parse, or store failure aborts
// the whole cycle with nothing further persisted.
func (b *Bot) RunScrapeCycle() error {
	started := time.Now()
	target := b.now().AddDate(0, 0, 1)

	records, err := b.source.ScrapeDay(target)
	if err != nil {
		return err
	}

	for _, rec := range records {
		rows, err := b.store.Upsert(rec)
		if err != nil {
			return err
		}
		logger.Debug("Upserted event", logger.Fields{
			"title": rec.Title,
			"rows":  rows,
		})
	}

	logger.IncrCounter("scrape.cycles")
	logger.AddCounter("scrape.events", int64(len(records)))
	logger.RecordTiming("scrape.cycle", time.Since(started))
	logger.Info("Scrape cycle complete", logger.Fields{
		"target": event.FormatQueryDate(target),
		"events": len(records),
	})
	return nil
}
