package jobs

import (
	"log"
	"time"

	"github.com/donutTheJedi/volunteer-hub-sub000/internal/model"
)

// RollForwards advances finished recurring events to their next future
// occurrence, clearing the roll-call marker so the new occurrence can
// receive its own notice. An event missed for several periods catches up in
// a single run instead of leaving a backlog. One-off events are never
// touched.
func (r *Runner) RollForwards(now time.Time) Result {
	events, err := r.events.FinishedRecurring(now)
	if err != nil {
		return failure(err)
	}

	res := Result{Success: true}
	for i := range events {
		event := &events[i]
		if !event.Recurring() {
			continue
		}

		start := event.StartTime
		end := start.Add(event.OccurrenceDuration())
		if event.EndTime != nil {
			end = *event.EndTime
		}
		// An event without an end time is buffered by its start time alone,
		// so its implied end may still be in the future. A running
		// occurrence is left untouched; advancing it would clear the
		// roll-call marker mid-occurrence.
		if end.After(now) {
			continue
		}
		for !end.After(now) {
			start = addPeriod(start, event.Frequency)
			end = addPeriod(end, event.Frequency)
		}

		if err := r.events.Advance(event, start, end); err != nil {
			// Already-advanced events in this run stay advanced.
			log.Printf("error rolling event %s forward: %s\n", event.Uuid, err)
			continue
		}
		res.Updated++
	}
	return res
}

// addPeriod moves t forward by one recurrence period. Months use calendar
// arithmetic, so a monthly event keeps its day of month where possible.
func addPeriod(t time.Time, frequency string) time.Time {
	switch frequency {
	case model.FrequencyWeekly:
		return t.Add(7 * 24 * time.Hour)
	case model.FrequencyMonthly:
		return t.AddDate(0, 1, 0)
	}
	return t.Add(24 * time.Hour)
}
