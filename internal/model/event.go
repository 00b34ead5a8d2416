package model

import "time"

const (
	FrequencyNone    = "none"
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
)

// DefaultDuration is assumed for events which declare neither an end time
// nor an explicit duration.
const DefaultDuration = 2 * time.Hour

type Event struct {
	ID             uint `gorm:"primarykey"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Uuid           string `gorm:"uniqueIndex"`
	Title          string
	StartTime      time.Time `gorm:"index; not null"`
	EndTime        *time.Time
	DurationHours  float64
	Frequency      string
	Closed         *bool
	OrganizationID uint `gorm:"index"`
	NotifiedAt     *time.Time
	Signups        []Signup `gorm:"constraint:OnDelete:CASCADE"`
}

// Recurring reports whether the event rolls forward to a new occurrence once
// the current one finishes.
func (e Event) Recurring() bool {
	switch e.Frequency {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

// EstimatedDuration is the occurrence length announced in notices: the gap
// between start and end times, or DefaultDuration when no end time is set.
func (e Event) EstimatedDuration() time.Duration {
	if e.EndTime != nil {
		return e.EndTime.Sub(e.StartTime)
	}
	return DefaultDuration
}

// OccurrenceDuration is the occurrence length used when rolling the event
// forward. Unlike EstimatedDuration it honours the DurationHours fallback.
func (e Event) OccurrenceDuration() time.Duration {
	if e.EndTime != nil {
		return e.EndTime.Sub(e.StartTime)
	}
	if e.DurationHours > 0 {
		return time.Duration(e.DurationHours * float64(time.Hour))
	}
	return DefaultDuration
}
