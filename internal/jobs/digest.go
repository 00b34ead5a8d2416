package jobs

import (
	"log"
	"time"
)

// OrganizationDigests sends each opted-in organization one summary of
// today's signups across its events. Organizations with no events or no
// signups today are skipped without counting as failures. Each organization
// is processed independently.
func (r *Runner) OrganizationDigests(now time.Time) Result {
	organizations, err := r.organizations.WithReachOutEmail()
	if err != nil {
		return failure(err)
	}

	from, until := dayRange(now)
	res := Result{Success: true}
	for _, organization := range organizations {
		events, err := r.events.ByOrganization(organization.ID)
		if err != nil {
			res.EmailsFailed++
			continue
		}
		if len(events) == 0 {
			continue
		}

		eventIDs := make([]uint, 0, len(events))
		titles := make(map[uint]string, len(events))
		for _, event := range events {
			eventIDs = append(eventIDs, event.ID)
			titles[event.ID] = event.Title
		}

		signups, err := r.signups.ForEventsBetween(eventIDs, from, until)
		if err != nil {
			res.EmailsFailed++
			continue
		}
		if len(signups) == 0 {
			continue
		}

		subject, body := organizationDigestMessage(organization, signups, titles, from)
		if err := r.sender.Send(organization.ReachOutEmail, subject, body); err != nil {
			log.Printf("error sending digest to organization %s: %s\n", organization.Uuid, err)
			res.EmailsFailed++
			continue
		}
		res.EmailsSent++
	}
	return res
}

// ProjectDigests sends each project owner one summary of today's project
// signups, resolving the owner's address through the users table. Projects
// without signups today are skipped; an owner that cannot be resolved
// counts as a failure.
func (r *Runner) ProjectDigests(now time.Time) Result {
	projects, err := r.projects.List()
	if err != nil {
		return failure(err)
	}

	from, until := dayRange(now)
	res := Result{Success: true}
	for _, project := range projects {
		signups, err := r.projects.SignupsBetween(project.ID, from, until)
		if err != nil {
			res.EmailsFailed++
			continue
		}
		if len(signups) == 0 {
			continue
		}

		owner, err := r.users.FindByID(project.UserID)
		if err != nil || owner == nil || owner.Email == "" {
			log.Printf("cannot resolve owner email of project %s, skipping digest\n", project.Uuid)
			res.EmailsFailed++
			continue
		}

		subject, body := projectDigestMessage(project, signups, from)
		if err := r.sender.Send(owner.Email, subject, body); err != nil {
			log.Printf("error sending digest for project %s to %s: %s\n", project.Uuid, owner.Email, err)
			res.EmailsFailed++
			continue
		}
		res.EmailsSent++
	}
	return res
}
