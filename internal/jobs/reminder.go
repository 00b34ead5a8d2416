package jobs

import (
	"log"
	"time"
)

// Reminders emails every signup of events starting about a day from now,
// open or closed. There is no idempotency marker for this job: invoking it
// twice inside the matching window sends duplicate reminders.
func (r *Runner) Reminders(now time.Time) Result {
	from, until := reminderWindow(now)
	events, err := r.events.StartingBetween(from, until)
	if err != nil {
		return failure(err)
	}

	res := Result{Success: true}
	for _, event := range events {
		signups, err := r.signups.ByEvent(event.ID)
		if err != nil {
			log.Printf("error fetching signups of event %s: %s\n", event.Uuid, err)
			res.EmailsFailed++
			continue
		}
		for _, signup := range signups {
			if signup.Email == "" {
				res.EmailsFailed++
				continue
			}
			subject, body := reminderMessage(event, signup)
			if err := r.sender.Send(signup.Email, subject, body); err != nil {
				log.Printf("error sending reminder for event %s to %s: %s\n", event.Uuid, signup.Email, err)
				res.EmailsFailed++
				continue
			}
			res.EmailsSent++
		}
	}
	return res
}
