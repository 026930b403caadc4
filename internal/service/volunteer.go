package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sakif/volunteerhub/internal/apperror"
	"github.com/sakif/volunteerhub/internal/model"
	"github.com/sakif/volunteerhub/internal/repository"
)

// VolunteerService handles volunteer signup and the read surface.
type VolunteerService struct {
	repo   repository.VolunteerRepository
	logger *slog.Logger
}

func NewVolunteerService(repo repository.VolunteerRepository, logger *slog.Logger) *VolunteerService {
	return &VolunteerService{
		repo:   repo,
		logger: logger,
	}
}

// CreateVolunteerInput is the volunteer signup request body.
type CreateVolunteerInput struct {
	Name    string   `json:"name" validate:"required"`
	Email   string   `json:"email" validate:"required,emailformat"`
	Contact string   `json:"contact" validate:"required"`
	Skills  []string `json:"skills"`
}

// Create validates the input, enforces email uniqueness by scan, and stores
// the volunteer. Skills must be present as a list; an empty list is fine.
func (s *VolunteerService) Create(ctx context.Context, input CreateVolunteerInput) (*model.Volunteer, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	// `required` on a slice would also reject [], so the presence check is
	// done by hand: missing or null fails, an empty array passes.
	if input.Skills == nil {
		return nil, apperror.ValidationFailed("skills", "skills must be a list of strings")
	}

	volunteers, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list volunteers for uniqueness check", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing volunteers: %w", err)
	}
	for _, existing := range volunteers {
		if existing.Email == input.Email {
			return nil, apperror.Conflict("Volunteer with the same email already exists.")
		}
	}

	volunteer := &model.Volunteer{
		Name:    input.Name,
		Email:   input.Email,
		Contact: input.Contact,
		Skills:  input.Skills,
	}
	if err := s.repo.Create(ctx, volunteer); err != nil {
		s.logger.Error("failed to create volunteer",
			slog.String("email", input.Email),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating volunteer: %w", err)
	}

	s.logger.Info("volunteer created",
		slog.String("id", volunteer.ID),
		slog.String("email", volunteer.Email),
	)

	return volunteer, nil
}

// GetByID retrieves a volunteer. Absence is a not-found outcome, not an
// internal failure.
func (s *VolunteerService) GetByID(ctx context.Context, id string) (*model.Volunteer, error) {
	if id == "" {
		return nil, apperror.ValidationFailed("id", "volunteer ID is required")
	}
	return s.repo.GetByID(ctx, id)
}

// List returns every volunteer in insertion order. An empty store is
// reported as not-found — a quirk of this endpoint's contract, unlike the
// other listing endpoints.
func (s *VolunteerService) List(ctx context.Context) ([]model.Volunteer, error) {
	volunteers, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list volunteers", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing volunteers: %w", err)
	}
	if len(volunteers) == 0 {
		return nil, apperror.NoRecords("volunteers")
	}
	return volunteers, nil
}

// ListPage returns the half-open slice [start, end) of the full listing.
// start must be strictly less than end; out-of-range indices clamp.
func (s *VolunteerService) ListPage(ctx context.Context, start, end int) ([]model.Volunteer, error) {
	if start >= end {
		return nil, apperror.ValidationFailed("start", "start must be less than end")
	}

	volunteers, err := s.repo.ListRange(ctx, start, end)
	if err != nil {
		s.logger.Error("failed to page volunteers",
			slog.Int("start", start),
			slog.Int("end", end),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("paging volunteers: %w", err)
	}
	return volunteers, nil
}
