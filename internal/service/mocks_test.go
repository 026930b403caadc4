package service

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/sakif/volunteerhub/internal/apperror"
	"github.com/sakif/volunteerhub/internal/model"
)

// Hand-written in-memory mocks for the repository interfaces. Slices (not
// maps) back the storage so List order matches insertion order, the same
// contract the kv implementation provides.

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

type mockAdminRepo struct {
	admins []model.Admin
	nextID int
}

func (m *mockAdminRepo) Create(_ context.Context, admin *model.Admin) error {
	m.nextID++
	admin.ID = fmt.Sprintf("adm-%d", m.nextID)
	m.admins = append(m.admins, *admin)
	return nil
}

func (m *mockAdminRepo) GetByID(_ context.Context, id string) (*model.Admin, error) {
	for _, a := range m.admins {
		if a.ID == id {
			found := a
			return &found, nil
		}
	}
	return nil, apperror.NotFound("admin", id)
}

func (m *mockAdminRepo) List(_ context.Context) ([]model.Admin, error) {
	return append([]model.Admin{}, m.admins...), nil
}

type mockVolunteerRepo struct {
	volunteers []model.Volunteer
	nextID     int
}

func (m *mockVolunteerRepo) Create(_ context.Context, volunteer *model.Volunteer) error {
	m.nextID++
	volunteer.ID = fmt.Sprintf("vol-%d", m.nextID)
	volunteer.CreatedAt = time.Now().UTC()
	m.volunteers = append(m.volunteers, *volunteer)
	return nil
}

func (m *mockVolunteerRepo) GetByID(_ context.Context, id string) (*model.Volunteer, error) {
	for _, v := range m.volunteers {
		if v.ID == id {
			found := v
			return &found, nil
		}
	}
	return nil, apperror.NotFound("volunteer", id)
}

func (m *mockVolunteerRepo) List(_ context.Context) ([]model.Volunteer, error) {
	return append([]model.Volunteer{}, m.volunteers...), nil
}

func (m *mockVolunteerRepo) ListRange(_ context.Context, start, end int) ([]model.Volunteer, error) {
	if start < 0 {
		start = 0
	}
	if start > len(m.volunteers) {
		start = len(m.volunteers)
	}
	if end > len(m.volunteers) {
		end = len(m.volunteers)
	}
	if end <= start {
		return []model.Volunteer{}, nil
	}
	return append([]model.Volunteer{}, m.volunteers[start:end]...), nil
}

type mockEventRepo struct {
	events []model.Event
	nextID int
}

func (m *mockEventRepo) Create(_ context.Context, event *model.Event) error {
	m.nextID++
	event.ID = fmt.Sprintf("evt-%d", m.nextID)
	event.CreatedAt = time.Now().UTC()
	m.events = append(m.events, *event)
	return nil
}

func (m *mockEventRepo) GetByID(_ context.Context, id string) (*model.Event, error) {
	for _, e := range m.events {
		if e.ID == id {
			found := e
			return &found, nil
		}
	}
	return nil, apperror.NotFound("event", id)
}

func (m *mockEventRepo) List(_ context.Context) ([]model.Event, error) {
	return append([]model.Event{}, m.events...), nil
}

type mockRegistrationRepo struct {
	registrations []model.Registration
	nextID        int
}

func (m *mockRegistrationRepo) Create(_ context.Context, registration *model.Registration) error {
	m.nextID++
	registration.ID = fmt.Sprintf("reg-%d", m.nextID)
	registration.RegisteredAt = time.Now().UTC()
	registration.AttendedAt = nil
	m.registrations = append(m.registrations, *registration)
	return nil
}

func (m *mockRegistrationRepo) GetByID(_ context.Context, id string) (*model.Registration, error) {
	for _, r := range m.registrations {
		if r.ID == id {
			found := r
			return &found, nil
		}
	}
	return nil, apperror.NotFound("registration", id)
}

func (m *mockRegistrationRepo) List(_ context.Context) ([]model.Registration, error) {
	return append([]model.Registration{}, m.registrations...), nil
}

type mockFeedbackRepo struct {
	feedbacks []model.Feedback
	nextID    int
}

func (m *mockFeedbackRepo) Create(_ context.Context, feedback *model.Feedback) error {
	m.nextID++
	feedback.ID = fmt.Sprintf("fbk-%d", m.nextID)
	feedback.CreatedAt = time.Now().UTC()
	m.feedbacks = append(m.feedbacks, *feedback)
	return nil
}

func (m *mockFeedbackRepo) GetByID(_ context.Context, id string) (*model.Feedback, error) {
	for _, f := range m.feedbacks {
		if f.ID == id {
			found := f
			return &found, nil
		}
	}
	return nil, apperror.NotFound("feedback", id)
}

func (m *mockFeedbackRepo) List(_ context.Context) ([]model.Feedback, error) {
	return append([]model.Feedback{}, m.feedbacks...), nil
}

// createTestVolunteers seeds n volunteers with distinct emails.
func createTestVolunteers(t *testing.T, svc *VolunteerService, n int) []model.Volunteer {
	t.Helper()
	created := make([]model.Volunteer, 0, n)
	for i := 0; i < n; i++ {
		v, err := svc.Create(context.Background(), CreateVolunteerInput{
			Name:    fmt.Sprintf("Volunteer %d", i),
			Email:   fmt.Sprintf("v%d@example.com", i),
			Contact: "555-0100",
			Skills:  []string{"logistics"},
		})
		if err != nil {
			t.Fatalf("setup: creating volunteer %d: %v", i, err)
		}
		created = append(created, *v)
	}
	return created
}
