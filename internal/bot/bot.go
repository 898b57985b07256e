package bot

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/pfrederiksen/dci-showbot/internal/event"
	"github.com/pfrederiksen/dci-showbot/internal/faults"
	"github.com/pfrederiksen/dci-showbot/internal/logger"
	"github.com/pfrederiksen/dci-showbot/internal/notifier"
)

// DefaultInterval is how often each loop ticks.
const DefaultInterval = time.Hour

// EventSource produces the records listed for a single day.
type EventSource interface {
	ScrapeDay(date time.Time) ([]*event.Record, error)
}

// EventStore is the durable table both loops coordinate through.
type EventStore interface {
	Upsert(rec *event.Record) (int64, error)
	FindInDateRange(start, end time.Time, unpostedOnly bool) ([]*event.Record, error)
	MarkPosted(titles []string, at time.Time) error
}

// Bot wires the scrape and notify loops to their collaborators.
type Bot struct {
	source    EventSource
	store     EventStore
	publisher notifier.Publisher

	interval time.Duration
	now      func() time.Time
}

// New creates a Bot with the default hourly interval.
func New(source EventSource, store EventStore, publisher notifier.Publisher) *Bot {
	return &Bot{
		source:    source,
		store:     store,
		publisher: publisher,
		interval:  DefaultInterval,
		now:       time.Now,
	}
}

// SetInterval overrides the loop interval. For operator experiments and
// tests; the deployed bot runs hourly.
func (b *Bot) SetInterval(interval time.Duration) {
	b.interval = interval
}

// Run schedules both loops and blocks until process termination. Each
// loop also runs once immediately so a restart doesn't wait an hour to
// catch up.
func (b *Bot) Run() error {
	c := cron.New()
	spec := fmt.Sprintf("@every %s", b.interval)

	if _, err := c.AddFunc(spec, b.scrapeTick); err != nil {
		return fmt.Errorf("scheduling scrape loop: %w", err)
	}
	if _, err := c.AddFunc(spec, b.notifyTick); err != nil {
		return fmt.Errorf("scheduling notify loop: %w", err)
	}

	logger.Info("Starting DCI show-thread bot", logger.Fields{
		"interval": b.interval.String(),
	})

	b.scrapeTick()
	b.notifyTick()

	c.Run()
	return nil
}

// scrapeTick runs one scrape cycle, logging instead of propagating: the
// next scheduled cycle is the retry mechanism.
func (b *Bot) scrapeTick() {
	if err := b.RunScrapeCycle(); err != nil {
		logger.IncrCounter("scrape.failures")
		logger.Error("Scrape cycle failed", logger.Fields{
			"kind": string(faults.KindOf(err)),
		}, err)
	}
}

// notifyTick runs one notify cycle; a failed submit leaves every record
// unposted so the next tick retries the batch.
func (b *Bot) notifyTick() {
	if err := b.RunNotifyCycle(); err != nil {
		logger.IncrCounter("notify.failures")
		logger.Error("Notify cycle failed", logger.Fields{
			"kind": string(faults.KindOf(err)),
		}, err)
	}
}
