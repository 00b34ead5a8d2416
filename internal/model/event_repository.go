package model

import (
	"log"
	"time"

	"gorm.io/gorm"
)

var recurringFrequencies = []string{FrequencyDaily, FrequencyWeekly, FrequencyMonthly}

type EventRepository struct {
	DB *gorm.DB
}

// StartingBetween returns events whose start time falls inside [from, until],
// regardless of closed status.
func (e *EventRepository) StartingBetween(from, until time.Time) ([]Event, error) {
	var events []Event

	result := e.DB.
		Where("start_time >= ? AND start_time <= ?", from, until).
		Order("start_time ASC").
		Find(&events)
	if result.Error != nil {
		log.Printf("error listing events starting between %s and %s: %s\n", from, until, result.Error)
		return nil, result.Error
	}
	return events, nil
}

// PendingRollCall returns open events without a roll-call marker whose start
// time falls inside [from, until]. A NULL closed column counts as open.
func (e *EventRepository) PendingRollCall(from, until time.Time) ([]Event, error) {
	var events []Event

	result := e.DB.
		Where("closed IS NULL OR closed = ?", false).
		Where("notified_at IS NULL").
		Where("start_time >= ? AND start_time <= ?", from, until).
		Order("start_time ASC").
		Find(&events)
	if result.Error != nil {
		log.Printf("error listing roll call candidates: %s\n", result.Error)
		return nil, result.Error
	}
	return events, nil
}

// FinishedRecurring returns open recurring events whose current occurrence
// has ended. Events without an end time fall back to their start time, since
// their end is only implied by the duration.
func (e *EventRepository) FinishedRecurring(now time.Time) ([]Event, error) {
	var events []Event

	result := e.DB.
		Where("closed IS NULL OR closed = ?", false).
		Where("frequency IN ?", recurringFrequencies).
		Where("(end_time IS NOT NULL AND end_time <= ?) OR (end_time IS NULL AND start_time <= ?)", now, now).
		Find(&events)
	if result.Error != nil {
		log.Printf("error listing finished recurring events: %s\n", result.Error)
		return nil, result.Error
	}
	return events, nil
}

func (e *EventRepository) ByOrganization(organizationID uint) ([]Event, error) {
	var events []Event

	result := e.DB.Where("organization_id = ?", organizationID).Find(&events)
	if result.Error != nil {
		log.Printf("error listing events of organization %d: %s\n", organizationID, result.Error)
		return nil, result.Error
	}
	return events, nil
}

// MarkNotified stamps the roll-call marker for the event's current
// occurrence. Callers must only invoke it after a confirmed send.
func (e *EventRepository) MarkNotified(event *Event, at time.Time) error {
	if result := e.DB.Model(event).Update("notified_at", at); result.Error != nil {
		log.Printf("error marking event %s as notified: %s\n", event.Uuid, result.Error)
		return result.Error
	}
	event.NotifiedAt = &at
	return nil
}

// Advance persists the next occurrence times and clears the roll-call marker
// in a single update, so the new occurrence can receive its own notice.
func (e *EventRepository) Advance(event *Event, start, end time.Time) error {
	updates := map[string]interface{}{
		"start_time":  start,
		"end_time":    end,
		"notified_at": nil,
	}
	if result := e.DB.Model(event).Updates(updates); result.Error != nil {
		log.Printf("error advancing event %s: %s\n", event.Uuid, result.Error)
		return result.Error
	}
	event.StartTime = start
	event.EndTime = &end
	event.NotifiedAt = nil
	return nil
}
