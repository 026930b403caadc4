package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sakif/volunteerhub/internal/model"
	"github.com/sakif/volunteerhub/internal/repository"
)

// RegistrationService handles event registrations.
//
// Neither eventId nor volunteerId is checked against the corresponding
// repository, and the same volunteer may register for the same event more
// than once. Status accepts any non-empty string — "Registered", "Attended"
// and "Missed" are the documented values, not an enforced enum.
type RegistrationService struct {
	repo   repository.RegistrationRepository
	logger *slog.Logger
}

func NewRegistrationService(repo repository.RegistrationRepository, logger *slog.Logger) *RegistrationService {
	return &RegistrationService{
		repo:   repo,
		logger: logger,
	}
}

// CreateRegistrationInput is the registration request body.
type CreateRegistrationInput struct {
	EventID     string `json:"eventId" validate:"required"`
	VolunteerID string `json:"volunteerId" validate:"required"`
	Status      string `json:"status" validate:"required"`
}

func (s *RegistrationService) Create(ctx context.Context, input CreateRegistrationInput) (*model.Registration, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	registration := &model.Registration{
		EventID:     input.EventID,
		VolunteerID: input.VolunteerID,
		Status:      input.Status,
	}
	if err := s.repo.Create(ctx, registration); err != nil {
		s.logger.Error("failed to create registration",
			slog.String("eventId", input.EventID),
			slog.String("volunteerId", input.VolunteerID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating registration: %w", err)
	}

	s.logger.Info("registration created",
		slog.String("id", registration.ID),
		slog.String("eventId", registration.EventID),
	)

	return registration, nil
}

func (s *RegistrationService) List(ctx context.Context) ([]model.Registration, error) {
	registrations, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list registrations", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing registrations: %w", err)
	}
	return registrations, nil
}
