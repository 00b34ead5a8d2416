package jobs

import (
	"log"
	"time"
)

// RollCalls sends one attendance notice per event to its organizer shortly
// before start. Candidates come from a buffer query wider than the send
// window, are re-checked against the narrow window, and get their
// notified_at marker written only after a confirmed send. An event skipped
// by the re-check keeps its marker unset, so a later run inside the buffer
// still picks it up.
func (r *Runner) RollCalls(now time.Time) Result {
	from, until := rollCallBufferWindow(now)
	events, err := r.events.PendingRollCall(from, until)
	if err != nil {
		return failure(err)
	}

	res := Result{Success: true}
	for i := range events {
		event := &events[i]
		if !inRollCallWindow(now, event.StartTime) {
			continue
		}

		organization, err := r.organizations.FindByID(event.OrganizationID)
		if err != nil {
			res.EmailsFailed++
			continue
		}
		if organization == nil || organization.ContactEmail == "" {
			log.Printf("event %s has no organizer contact email, skipping roll call\n", event.Uuid)
			res.EmailsFailed++
			continue
		}

		attendees, err := r.signups.CountByEvent(event.ID)
		if err != nil {
			res.EmailsFailed++
			continue
		}

		subject, body := rollCallMessage(*event, attendees, r.fqdn)
		if err := r.sender.Send(organization.ContactEmail, subject, body); err != nil {
			log.Printf("error sending roll call for event %s to %s: %s\n", event.Uuid, organization.ContactEmail, err)
			res.EmailsFailed++
			continue
		}
		if err := r.events.MarkNotified(event, now); err != nil {
			// The notice went out but the marker write failed; the next run
			// may send a duplicate.
			log.Printf("error marking event %s after roll call: %s\n", event.Uuid, err)
		}
		res.EmailsSent++
	}
	return res
}
