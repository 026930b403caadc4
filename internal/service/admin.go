package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sakif/volunteerhub/internal/apperror"
	"github.com/sakif/volunteerhub/internal/auth"
	"github.com/sakif/volunteerhub/internal/model"
	"github.com/sakif/volunteerhub/internal/repository"
)

// AdminService handles admin signup.
type AdminService struct {
	repo      repository.AdminRepository
	passwords *auth.PasswordService
	logger    *slog.Logger
}

func NewAdminService(repo repository.AdminRepository, passwords *auth.PasswordService, logger *slog.Logger) *AdminService {
	return &AdminService{
		repo:      repo,
		passwords: passwords,
		logger:    logger,
	}
}

// CreateAdminInput is the signup request body.
type CreateAdminInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,emailformat"`
	Password string `json:"password" validate:"required"`
}

// Create validates the input, enforces email uniqueness, hashes the password
// and stores the admin. Uniqueness is a full scan of the current listing —
// O(n) per signup, acceptable at this scale.
func (s *AdminService) Create(ctx context.Context, input CreateAdminInput) (*model.Admin, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	admins, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list admins for uniqueness check", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing admins: %w", err)
	}
	for _, existing := range admins {
		if existing.Email == input.Email {
			return nil, apperror.Conflict("Admin with the same email already exists.")
		}
	}

	hash, err := s.passwords.Hash(input.Password)
	if err != nil {
		return nil, apperror.ValidationFailed("password", "password must be 72 bytes or fewer")
	}

	admin := &model.Admin{
		Name:     input.Name,
		Email:    input.Email,
		Password: hash,
	}
	if err := s.repo.Create(ctx, admin); err != nil {
		s.logger.Error("failed to create admin",
			slog.String("email", input.Email),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating admin: %w", err)
	}

	s.logger.Info("admin created",
		slog.String("id", admin.ID),
		slog.String("email", admin.Email),
	)

	return admin, nil
}
