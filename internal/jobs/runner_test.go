package jobs_test

import (
	"testing"
	"time"

	"github.com/donutTheJedi/volunteer-hub-sub000/internal/infrastructure"
	"github.com/donutTheJedi/volunteer-hub-sub000/internal/jobs"
	"github.com/donutTheJedi/volunteer-hub-sub000/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func testEngine(t *testing.T, secret string) (*jobs.Runner, *gorm.DB, *infrastructure.SMTPMock) {
	t.Helper()

	db := infrastructure.Connect(":memory:")
	mock := &infrastructure.SMTPMock{}
	return jobs.NewRunner(db, mock, secret, "https://hub.example.com"), db, mock
}

func createOrganization(t *testing.T, db *gorm.DB, organization *model.Organization) *model.Organization {
	t.Helper()

	if organization.Uuid == "" {
		organization.Uuid = uuid.NewString()
	}
	if err := db.Create(organization).Error; err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return organization
}

func createEvent(t *testing.T, db *gorm.DB, event *model.Event) *model.Event {
	t.Helper()

	if event.Uuid == "" {
		event.Uuid = uuid.NewString()
	}
	if err := db.Create(event).Error; err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return event
}

func reloadEvent(t *testing.T, db *gorm.DB, id uint) model.Event {
	t.Helper()

	var event model.Event
	if err := db.First(&event, id).Error; err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return event
}

func boolPtr(v bool) *bool {
	return &v
}

func timePtr(v time.Time) *time.Time {
	return &v
}

func TestRunAuthorization(t *testing.T) {
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	var cases = []struct {
		name          string
		secret        string
		token         string
		jobType       string
		expectSuccess bool
		expectedError string
	}{
		{"Mismatched token is rejected", "secret", "wrong", jobs.RollCallEmails, false, jobs.ErrUnauthorized.Error()},
		{"Missing token is rejected when a secret is configured", "secret", "", jobs.RollCallEmails, false, jobs.ErrUnauthorized.Error()},
		{"Matching token is accepted", "secret", "secret", jobs.RollCallEmails, true, ""},
		{"No configured secret lets any caller through", "", "", jobs.RollCallEmails, true, ""},
		{"Unknown job type is rejected", "secret", "secret", "mystery-job", false, jobs.ErrInvalidJobType.Error()},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			runner, _, _ := testEngine(t, tcase.secret)

			result := runner.Run(now, tcase.jobType, tcase.token)
			if result.Success != tcase.expectSuccess {
				t.Errorf("Expected success %v, got %v", tcase.expectSuccess, result.Success)
			}
			if result.Error != tcase.expectedError {
				t.Errorf("Expected error %q, got %q", tcase.expectedError, result.Error)
			}
		})
	}
}

func TestRunRejectsBeforeAnyWork(t *testing.T) {
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	runner, db, mock := testEngine(t, "secret")

	organization := createOrganization(t, db, &model.Organization{Name: "Helpers", ContactEmail: "org@example.com"})
	event := createEvent(t, db, &model.Event{
		Title:          "Cleanup",
		StartTime:      now.Add(5 * time.Minute),
		OrganizationID: organization.ID,
	})

	result := runner.Run(now, jobs.RollCallEmails, "wrong")
	if result.Success {
		t.Error("Expected the invocation to be rejected")
	}
	if len(mock.Sent()) != 0 {
		t.Errorf("Expected no emails, got %d", len(mock.Sent()))
	}
	if got := reloadEvent(t, db, event.ID); got.NotifiedAt != nil {
		t.Error("Expected the roll call marker to remain unset")
	}
}
