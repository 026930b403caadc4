package service

import (
	"context"
	"errors"
	"testing"

	"github.com/sakif/volunteerhub/internal/apperror"
	"github.com/sakif/volunteerhub/internal/auth"
	"github.com/sakif/volunteerhub/internal/model"
)

func newTestEventService(t *testing.T) (*EventService, *mockEventRepo, *mockAdminRepo) {
	t.Helper()
	events := &mockEventRepo{}
	admins := &mockAdminRepo{}
	svc := NewEventService(events, admins, newTestLogger())
	return svc, events, admins
}

func createTestAdmin(t *testing.T, admins *mockAdminRepo) *model.Admin {
	t.Helper()
	svc := NewAdminService(admins, auth.NewPasswordServiceForTest(), newTestLogger())
	admin, err := svc.Create(context.Background(), CreateAdminInput{
		Name:     "Org Admin",
		Email:    "admin@example.com",
		Password: "secret",
	})
	if err != nil {
		t.Fatalf("setup: creating admin: %v", err)
	}
	return admin
}

func validEventInput(adminID string) CreateEventInput {
	return CreateEventInput{
		AdminID:     adminID,
		Title:       "Beach Cleanup",
		Description: "Monthly shoreline cleanup",
		DateTime:    "2026-09-12T09:00:00Z",
		Location:    "East Beach",
		OrganizerID: "org-123",
	}
}

func TestEventCreate_Success(t *testing.T) {
	svc, _, admins := newTestEventService(t)
	admin := createTestAdmin(t, admins)

	event, err := svc.Create(context.Background(), validEventInput(admin.ID))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if event.ID == "" {
		t.Error("expected event to have an ID")
	}
	if event.AdminID != admin.ID {
		t.Errorf("AdminID = %q, want %q", event.AdminID, admin.ID)
	}
	if event.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestEventCreate_UnknownAdmin(t *testing.T) {
	svc, events, _ := newTestEventService(t)

	_, err := svc.Create(context.Background(), validEventInput("no-such-admin"))
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}

	// The failed existence check must not have inserted anything.
	if len(events.events) != 0 {
		t.Errorf("store holds %d events, want 0", len(events.events))
	}
}

func TestEventCreate_OrganizerNeverResolved(t *testing.T) {
	svc, _, admins := newTestEventService(t)
	admin := createTestAdmin(t, admins)

	// organizerId points nowhere; creation still succeeds.
	input := validEventInput(admin.ID)
	input.OrganizerID = "dangling-reference"

	event, err := svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if event.OrganizerID != "dangling-reference" {
		t.Errorf("OrganizerID = %q, want stored as-is", event.OrganizerID)
	}
}

func TestEventCreate_MissingFields(t *testing.T) {
	svc, _, admins := newTestEventService(t)
	admin := createTestAdmin(t, admins)

	mutations := []struct {
		name   string
		mutate func(*CreateEventInput)
	}{
		{"missing adminId", func(in *CreateEventInput) { in.AdminID = "" }},
		{"missing title", func(in *CreateEventInput) { in.Title = "" }},
		{"missing description", func(in *CreateEventInput) { in.Description = "" }},
		{"missing dateTime", func(in *CreateEventInput) { in.DateTime = "" }},
		{"missing location", func(in *CreateEventInput) { in.Location = "" }},
		{"missing organizerId", func(in *CreateEventInput) { in.OrganizerID = "" }},
	}

	for _, tt := range mutations {
		t.Run(tt.name, func(t *testing.T) {
			input := validEventInput(admin.ID)
			tt.mutate(&input)

			_, err := svc.Create(context.Background(), input)
			if !errors.Is(err, apperror.ErrValidation) {
				t.Errorf("error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestEventList(t *testing.T) {
	svc, _, admins := newTestEventService(t)
	admin := createTestAdmin(t, admins)

	// Empty store lists as an empty slice, not an error.
	events, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(events) != 0 {
		t.Errorf("List() returned %d events, want 0", len(events))
	}

	if _, err := svc.Create(context.Background(), validEventInput(admin.ID)); err != nil {
		t.Fatalf("setup: Create() error = %v", err)
	}

	events, err = svc.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(events) != 1 {
		t.Errorf("List() returned %d events, want 1", len(events))
	}
}
