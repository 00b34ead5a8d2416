package jobs_test

import (
	"testing"
	"time"

	"github.com/donutTheJedi/volunteer-hub-sub000/internal/model"
)

func TestRollForwardsCatchUp(t *testing.T) {
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	runner, db, _ := testEngine(t, "secret")

	organization := createOrganization(t, db, &model.Organization{Name: "Helpers"})
	start := now.Add(-72 * time.Hour)
	event := createEvent(t, db, &model.Event{
		Title:          "Daily standup",
		StartTime:      start,
		EndTime:        timePtr(start.Add(2 * time.Hour)),
		Frequency:      model.FrequencyDaily,
		NotifiedAt:     timePtr(start.Add(-5 * time.Minute)),
		OrganizationID: organization.ID,
	})

	result := runner.RollForwards(now)
	if !result.Success {
		t.Fatalf("Unexpected failure: %s", result.Error)
	}
	if result.Updated != 1 {
		t.Fatalf("Expected 1 event updated, got %d", result.Updated)
	}

	got := reloadEvent(t, db, event.ID)
	if got.EndTime == nil || !got.EndTime.After(now) {
		t.Errorf("Expected the new end time to be in the future, got %v", got.EndTime)
	}
	if advanced := got.StartTime.Sub(start); advanced < 72*time.Hour {
		t.Errorf("Expected the event to advance at least 3 whole days, got %s", advanced)
	}
	if !got.StartTime.Equal(start.Add(72 * time.Hour)) {
		t.Errorf("Expected the event to land on its next valid occurrence, got %v", got.StartTime)
	}
	if got.NotifiedAt != nil {
		t.Error("Expected the roll call marker to be cleared")
	}
}

func TestRollForwardsPeriods(t *testing.T) {
	now := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)

	var cases = []struct {
		name          string
		frequency     string
		startTime     time.Time
		expectedStart time.Time
	}{
		{
			"A weekly event moves one week forward",
			model.FrequencyWeekly,
			time.Date(2024, 1, 15, 6, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 22, 6, 0, 0, 0, time.UTC),
		},
		{
			"A monthly event keeps its day of month",
			model.FrequencyMonthly,
			time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
			time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC),
		},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			runner, db, _ := testEngine(t, "secret")

			organization := createOrganization(t, db, &model.Organization{Name: "Helpers"})
			event := createEvent(t, db, &model.Event{
				Title:          "Recurring shift",
				StartTime:      tcase.startTime,
				EndTime:        timePtr(tcase.startTime.Add(2 * time.Hour)),
				Frequency:      tcase.frequency,
				OrganizationID: organization.ID,
			})

			result := runner.RollForwards(now)
			if result.Updated != 1 {
				t.Fatalf("Expected 1 event updated, got %d", result.Updated)
			}
			got := reloadEvent(t, db, event.ID)
			if !got.StartTime.Equal(tcase.expectedStart) {
				t.Errorf("Expected start time %v, got %v", tcase.expectedStart, got.StartTime)
			}
			if got.EndTime == nil || !got.EndTime.Equal(tcase.expectedStart.Add(2*time.Hour)) {
				t.Errorf("Expected the end time to keep the occurrence duration, got %v", got.EndTime)
			}
		})
	}
}

func TestRollForwardsDurationFallback(t *testing.T) {
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	runner, db, _ := testEngine(t, "secret")

	organization := createOrganization(t, db, &model.Organization{Name: "Helpers"})
	start := now.Add(-30 * time.Hour)
	event := createEvent(t, db, &model.Event{
		Title:          "Open-ended shift",
		StartTime:      start,
		DurationHours:  3,
		Frequency:      model.FrequencyDaily,
		OrganizationID: organization.ID,
	})

	result := runner.RollForwards(now)
	if result.Updated != 1 {
		t.Fatalf("Expected 1 event updated, got %d", result.Updated)
	}
	got := reloadEvent(t, db, event.ID)
	if got.EndTime == nil {
		t.Fatal("Expected the advance to persist an end time")
	}
	if !got.EndTime.Equal(got.StartTime.Add(3 * time.Hour)) {
		t.Errorf("Expected a 3 hour occurrence, got end time %v for start %v", got.EndTime, got.StartTime)
	}
	if !got.EndTime.After(now) {
		t.Errorf("Expected the new end time to be in the future, got %v", got.EndTime)
	}
}

// An event without an end time is selected by its start time alone, so a
// still-running occurrence can show up as a candidate. It must be left
// untouched: no advance, no persisted end time, and above all no cleared
// marker mid-occurrence.
func TestRollForwardsOngoingWithoutEndTime(t *testing.T) {
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	runner, db, _ := testEngine(t, "secret")

	organization := createOrganization(t, db, &model.Organization{Name: "Helpers"})
	start := now.Add(-time.Hour)
	notified := start.Add(-5 * time.Minute)
	event := createEvent(t, db, &model.Event{
		Title:          "Running shift",
		StartTime:      start,
		DurationHours:  2,
		Frequency:      model.FrequencyDaily,
		NotifiedAt:     timePtr(notified),
		OrganizationID: organization.ID,
	})

	result := runner.RollForwards(now)
	if !result.Success {
		t.Fatalf("Unexpected failure: %s", result.Error)
	}
	if result.Updated != 0 {
		t.Errorf("Expected a still-running occurrence to be left alone, got Updated=%d", result.Updated)
	}

	got := reloadEvent(t, db, event.ID)
	if !got.StartTime.Equal(start) {
		t.Errorf("Expected the start time to be untouched, got %v", got.StartTime)
	}
	if got.EndTime != nil {
		t.Errorf("Expected no end time to be written, got %v", got.EndTime)
	}
	if got.NotifiedAt == nil || !got.NotifiedAt.Equal(notified) {
		t.Error("Expected the roll call marker of the running occurrence to survive")
	}
}

func TestRollForwardsLeaveOthersAlone(t *testing.T) {
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	var cases = []struct {
		name      string
		frequency string
		closed    *bool
		startTime time.Time
	}{
		{"A one-off event is never advanced", model.FrequencyNone, nil, now.Add(-48 * time.Hour)},
		{"A closed recurring event is never advanced", model.FrequencyDaily, boolPtr(true), now.Add(-48 * time.Hour)},
		{"A recurring event still running is left alone", model.FrequencyDaily, nil, now.Add(-time.Hour)},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			runner, db, _ := testEngine(t, "secret")

			organization := createOrganization(t, db, &model.Organization{Name: "Helpers"})
			end := tcase.startTime.Add(4 * time.Hour)
			event := createEvent(t, db, &model.Event{
				Title:          "Untouchable",
				StartTime:      tcase.startTime,
				EndTime:        timePtr(end),
				Frequency:      tcase.frequency,
				Closed:         tcase.closed,
				OrganizationID: organization.ID,
			})

			result := runner.RollForwards(now)
			if result.Updated != 0 {
				t.Errorf("Expected no events updated, got %d", result.Updated)
			}
			got := reloadEvent(t, db, event.ID)
			if !got.StartTime.Equal(tcase.startTime) {
				t.Errorf("Expected the start time to be untouched, got %v", got.StartTime)
			}
		})
	}
}
