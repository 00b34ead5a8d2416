package jobs

import (
	"errors"
	"log"
	"time"

	"github.com/donutTheJedi/volunteer-hub-sub000/internal/model"
	"gorm.io/gorm"
)

// Job type tokens accepted by Run.
const (
	ReminderEmails      = "reminder-emails"
	RollCallEmails      = "roll-call-emails"
	DailyDigestEmails   = "daily-digest-emails"
	SeniorProjectDigest = "senior-project-daily-digest"
	RollForward         = "roll-forward-opportunities"
)

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInvalidJobType = errors.New("invalid job type")
)

// Sender is implemented by anything able to deliver a notification email.
type Sender interface {
	Send(address, subject, body string) error
	From() string
}

// Runner authorizes job invocations and routes each one to the matching
// handler. It keeps no state between invocations: every run is a function
// of the clock and the store.
type Runner struct {
	events        *model.EventRepository
	signups       *model.SignupRepository
	organizations *model.OrganizationRepository
	projects      *model.ProjectRepository
	users         *model.UserRepository
	sender        Sender
	secret        string
	fqdn          string
}

func NewRunner(db *gorm.DB, sender Sender, secret, fqdn string) *Runner {
	return &Runner{
		events:        &model.EventRepository{DB: db},
		signups:       &model.SignupRepository{DB: db},
		organizations: &model.OrganizationRepository{DB: db},
		projects:      &model.ProjectRepository{DB: db},
		users:         &model.UserRepository{DB: db},
		sender:        sender,
		secret:        secret,
		fqdn:          fqdn,
	}
}

// Run authorizes the caller and executes the requested job. Authorization is
// checked before any store access; with no secret configured the call is let
// through so a fresh deployment keeps working, which is worth a warning.
func (r *Runner) Run(now time.Time, jobType, token string) Result {
	if r.secret == "" {
		log.Println("warning: no jobs secret configured, accepting unauthenticated job invocation")
	} else if token != r.secret {
		return failure(ErrUnauthorized)
	}

	switch jobType {
	case ReminderEmails:
		return r.Reminders(now)
	case RollCallEmails:
		return r.RollCalls(now)
	case DailyDigestEmails:
		return r.OrganizationDigests(now)
	case SeniorProjectDigest:
		return r.ProjectDigests(now)
	case RollForward:
		return r.RollForwards(now)
	}
	return failure(ErrInvalidJobType)
}
