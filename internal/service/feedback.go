package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sakif/volunteerhub/internal/model"
	"github.com/sakif/volunteerhub/internal/repository"
)

// FeedbackService handles event feedback. The referenced volunteer and event
// IDs are not checked for existence.
type FeedbackService struct {
	repo   repository.FeedbackRepository
	logger *slog.Logger
}

func NewFeedbackService(repo repository.FeedbackRepository, logger *slog.Logger) *FeedbackService {
	return &FeedbackService{
		repo:   repo,
		logger: logger,
	}
}

// CreateFeedbackInput is the feedback request body. Rating is a pointer so
// presence can be told apart from a legitimate 0 — any number in any range
// is accepted once present.
type CreateFeedbackInput struct {
	VolunteerID string   `json:"volunteerId" validate:"required"`
	EventID     string   `json:"eventId" validate:"required"`
	Feedback    string   `json:"feedback" validate:"required"`
	Rating      *float64 `json:"rating" validate:"required"`
}

func (s *FeedbackService) Create(ctx context.Context, input CreateFeedbackInput) (*model.Feedback, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	feedback := &model.Feedback{
		VolunteerID: input.VolunteerID,
		EventID:     input.EventID,
		Feedback:    input.Feedback,
		Rating:      *input.Rating,
	}
	if err := s.repo.Create(ctx, feedback); err != nil {
		s.logger.Error("failed to create feedback",
			slog.String("volunteerId", input.VolunteerID),
			slog.String("eventId", input.EventID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating feedback: %w", err)
	}

	s.logger.Info("feedback created",
		slog.String("id", feedback.ID),
		slog.String("eventId", feedback.EventID),
	)

	return feedback, nil
}

func (s *FeedbackService) List(ctx context.Context) ([]model.Feedback, error) {
	feedbacks, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list feedbacks", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing feedbacks: %w", err)
	}
	return feedbacks, nil
}
