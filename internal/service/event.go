package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sakif/volunteerhub/internal/model"
	"github.com/sakif/volunteerhub/internal/repository"
)

// EventService handles event creation and listing. It holds the admin
// repository as well: creating an event requires the referenced admin to
// exist. That read is the only cross-repository access in the system.
type EventService struct {
	events repository.EventRepository
	admins repository.AdminRepository
	logger *slog.Logger
}

func NewEventService(events repository.EventRepository, admins repository.AdminRepository, logger *slog.Logger) *EventService {
	return &EventService{
		events: events,
		admins: admins,
		logger: logger,
	}
}

// CreateEventInput is the event creation request body. DateTime is an opaque
// string, required but never parsed. OrganizerID is required but never
// resolved against any repository.
type CreateEventInput struct {
	AdminID     string `json:"adminId" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	DateTime    string `json:"dateTime" validate:"required"`
	Location    string `json:"location" validate:"required"`
	OrganizerID string `json:"organizerId" validate:"required"`
}

// Create validates the input, confirms the admin exists, and stores the
// event. A missing admin surfaces as not-found and nothing is written.
func (s *EventService) Create(ctx context.Context, input CreateEventInput) (*model.Event, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	if _, err := s.admins.GetByID(ctx, input.AdminID); err != nil {
		// Either the admin is absent (not-found, propagated as-is) or the
		// lookup itself failed.
		return nil, err
	}

	event := &model.Event{
		AdminID:     input.AdminID,
		Title:       input.Title,
		Description: input.Description,
		DateTime:    input.DateTime,
		Location:    input.Location,
		OrganizerID: input.OrganizerID,
	}
	if err := s.events.Create(ctx, event); err != nil {
		s.logger.Error("failed to create event",
			slog.String("title", input.Title),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating event: %w", err)
	}

	s.logger.Info("event created",
		slog.String("id", event.ID),
		slog.String("adminId", event.AdminID),
	)

	return event, nil
}

// List returns every event in insertion order; an empty store is an empty
// list, not an error.
func (s *EventService) List(ctx context.Context) ([]model.Event, error) {
	events, err := s.events.List(ctx)
	if err != nil {
		s.logger.Error("failed to list events", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing events: %w", err)
	}
	return events, nil
}
