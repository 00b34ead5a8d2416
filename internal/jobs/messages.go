package jobs

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/donutTheJedi/volunteer-hub-sub000/internal/model"
)

func hours(d time.Duration) string {
	return strconv.FormatFloat(d.Hours(), 'f', -1, 64)
}

func reminderMessage(event model.Event, signup model.Signup) (subject, body string) {
	subject = fmt.Sprintf("Reminder: %s starts tomorrow", event.Title)
	body = fmt.Sprintf(
		"Hi %s,<br><br>This is a reminder that <strong>%s</strong> starts at %s and should run for about %s hours.<br><br>See you there!",
		signup.Name,
		event.Title,
		event.StartTime.UTC().Format("15:04 MST on Monday, January 2"),
		hours(event.EstimatedDuration()),
	)
	return subject, body
}

func rollCallMessage(event model.Event, attendees int64, fqdn string) (subject, body string) {
	attendanceLink := fmt.Sprintf("%s/attendance/%s", fqdn, event.Uuid)

	subject = fmt.Sprintf("%s is about to start", event.Title)
	body = fmt.Sprintf(
		"<strong>%s</strong> starts in a few minutes with %d volunteers signed up and should run for about %s hours.<br><br>Take attendance here: <a href=\"%s\">%s</a>",
		event.Title,
		attendees,
		hours(event.EstimatedDuration()),
		attendanceLink,
		attendanceLink,
	)
	return subject, body
}

func organizationDigestMessage(organization model.Organization, signups []model.Signup, titles map[uint]string, day time.Time) (subject, body string) {
	subject = fmt.Sprintf("Volunteer signups for %s", day.Format("January 2, 2006"))

	// Group by event title, keeping titles in first-seen order so the same
	// data always produces the same digest.
	var order []string
	grouped := make(map[string][]model.Signup)
	for _, signup := range signups {
		title := titles[signup.EventID]
		if _, seen := grouped[title]; !seen {
			order = append(order, title)
		}
		grouped[title] = append(grouped[title], signup)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,<br><br>Here is today's signup activity:<br>", organization.Name)
	for _, title := range order {
		fmt.Fprintf(&b, "<br><strong>%s</strong><ul>", title)
		for _, signup := range grouped[title] {
			fmt.Fprintf(&b, "<li>%s (%s)</li>", signup.Name, signup.Email)
		}
		b.WriteString("</ul>")
	}
	return subject, b.String()
}

func projectDigestMessage(project model.Project, signups []model.ProjectSignup, day time.Time) (subject, body string) {
	subject = fmt.Sprintf("Signups for %s on %s", project.Title, day.Format("January 2, 2006"))

	var b strings.Builder
	fmt.Fprintf(&b, "Your project <strong>%s</strong> received %d new signups today:<ul>", project.Title, len(signups))
	for _, signup := range signups {
		fmt.Fprintf(&b, "<li>%s (%s)</li>", signup.Name, signup.Email)
	}
	b.WriteString("</ul>")
	return subject, b.String()
}
