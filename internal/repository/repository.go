// Package repository defines the persistence interfaces the service layer
// programs against. The concrete implementation lives in repository/kv; tests
// substitute in-memory mocks.
//
// Every Create assigns a fresh ID and any creation timestamps, mutating the
// passed record in place. Every List returns records in key order, which for
// xid keys is insertion order. Absence on GetByID is a normal, reportable
// outcome (apperror.ErrNotFound), not an internal failure.
package repository

import (
	"context"

	"github.com/sakif/volunteerhub/internal/model"
)

type AdminRepository interface {
	Create(ctx context.Context, admin *model.Admin) error
	GetByID(ctx context.Context, id string) (*model.Admin, error)
	List(ctx context.Context) ([]model.Admin, error)
}

type VolunteerRepository interface {
	Create(ctx context.Context, volunteer *model.Volunteer) error
	GetByID(ctx context.Context, id string) (*model.Volunteer, error)
	List(ctx context.Context) ([]model.Volunteer, error)
	// ListRange returns the half-open slice [start, end) of List.
	// Out-of-range indices clamp to the listing bounds.
	ListRange(ctx context.Context, start, end int) ([]model.Volunteer, error)
}

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	GetByID(ctx context.Context, id string) (*model.Event, error)
	List(ctx context.Context) ([]model.Event, error)
}

type RegistrationRepository interface {
	Create(ctx context.Context, registration *model.Registration) error
	GetByID(ctx context.Context, id string) (*model.Registration, error)
	List(ctx context.Context) ([]model.Registration, error)
}

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *model.Feedback) error
	GetByID(ctx context.Context, id string) (*model.Feedback, error)
	List(ctx context.Context) ([]model.Feedback, error)
}
