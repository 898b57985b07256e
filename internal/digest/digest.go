package digest

import (
	"sort"
	"time"

	"github.com/pfrederiksen/dci-showbot/internal/event"
)

// Batching policy constants.
const (
	// WindowHours is the rolling horizon within which an unposted event
	// becomes a candidate at all.
	WindowHours = 24
	// BaseThresholdHours is how close the nearest event must be (strictly
	// less than) to trigger a post.
	BaseThresholdHours = 10
	// ThresholdIncrementHours is how much each accepted event relaxes the
	// horizon for the next candidate.
	ThresholdIncrementHours = 2
)

// SelectBatch applies the graduated threshold to the candidate records
// and returns the accepted batch in ascending event-date order. An empty
// batch means no post this tick.
func SelectBatch(candidates []*event.Record, now time.Time) []*event.Record {
	sorted := make([]*event.Record, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EventDate.Before(sorted[j].EventDate)
	})

	threshold := float64(BaseThresholdHours)
	var batch []*event.Record
	for _, rec := range sorted {
		if rec.EventDate.Sub(now).Hours() >= threshold {
			break
		}
		batch = append(batch, rec)
		threshold += ThresholdIncrementHours
	}
	return batch
}
