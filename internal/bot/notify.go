package bot

import (
	"time"

	"github.com/pfrederiksen/dci-showbot/internal/digest"
	"github.com/pfrederiksen/dci-showbot/internal/logger"
)

// RunNotifyCycle reads unposted events inside the notification window,
// batches them under the graduated threshold, publishes one combined
// post, and marks exactly the batched events as posted. When the submit
// fails nothing is marked, so the next tick retries the batch.
func (b *Bot) RunNotifyCycle() error {
	now := b.now()

	candidates, err := b.store.FindInDateRange(now, now.Add(digest.WindowHours*time.Hour), true)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		logger.Debug("No unposted events in window", nil)
		return nil
	}

	nearest := candidates[0]
	logger.Info("Nearest unposted event", logger.Fields{
		"title": nearest.Title,
		"hours": nearest.HoursUntil(now),
	})

	batch := digest.SelectBatch(candidates, now)
	if len(batch) == 0 {
		return nil
	}

	titles := make([]string, 0, len(batch))
	for _, rec := range batch {
		titles = append(titles, rec.Title)
	}

	title := digest.FormatTitle(batch)
	body := digest.EncodeBody(digest.FormatBody(batch))

	if err := b.publisher.Submit(title, body); err != nil {
		return err
	}

	if err := b.store.MarkPosted(titles, now); err != nil {
		return err
	}

	logger.IncrCounter("notify.posts")
	logger.AddCounter("notify.events", int64(len(batch)))
	logger.Info("Posted show thread", logger.Fields{
		"titles": titles,
	})
	return nil
}
