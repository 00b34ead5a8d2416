package jobs

import "time"

const (
	reminderLead = 23 * time.Hour
	reminderSpan = time.Hour

	// The buffer query overshoots the send window so an invoker arriving a
	// few minutes early or late still sees every candidate; the narrow
	// window decides whether a notice actually goes out.
	rollCallMinLead   = 2 * time.Minute
	rollCallMaxLead   = 9 * time.Minute
	rollCallBufferEnd = 12 * time.Minute
)

// reminderWindow is the range of start times picked up by the reminder job,
// roughly one day ahead.
func reminderWindow(now time.Time) (from, until time.Time) {
	return now.Add(reminderLead), now.Add(reminderLead + reminderSpan)
}

func rollCallBufferWindow(now time.Time) (from, until time.Time) {
	return now.Add(rollCallMinLead), now.Add(rollCallBufferEnd)
}

// inRollCallWindow re-validates a buffered candidate against the narrow
// range within which a roll-call notice may be sent.
func inRollCallWindow(now, start time.Time) bool {
	lead := start.Sub(now)
	return lead >= rollCallMinLead && lead <= rollCallMaxLead
}

// dayRange returns the UTC day containing now as [midnight, midnight+24h).
// Both digests share this boundary so server and store never disagree on
// what "today" means.
func dayRange(now time.Time) (from, until time.Time) {
	year, month, day := now.UTC().Date()
	from = time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return from, from.Add(24 * time.Hour)
}
