package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sakif/volunteerhub/internal/model"
	"github.com/sakif/volunteerhub/internal/service"
)

// RegistrationHandler exposes event registration.
type RegistrationHandler struct {
	service *service.RegistrationService
	logger  *slog.Logger
}

func NewRegistrationHandler(svc *service.RegistrationService, logger *slog.Logger) *RegistrationHandler {
	return &RegistrationHandler{service: svc, logger: logger}
}

type registrationResponse struct {
	Message      string              `json:"message"`
	Registration *model.Registration `json:"registration"`
}

type registrationListResponse struct {
	Message       string               `json:"message"`
	Registrations []model.Registration `json:"registrations"`
}

// HandleCreate handles POST /registrations.
func (h *RegistrationHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input service.CreateRegistrationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Warn("invalid registration JSON", slog.String("error", err.Error()))
		writeInvalidBody(w)
		return
	}

	registration, err := h.service.Create(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, registrationResponse{
		Message:      "Registration created successfully",
		Registration: registration,
	})
}

// HandleList handles GET /registrations.
func (h *RegistrationHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	registrations, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, registrationListResponse{
		Message:       "Registrations fetched successfully",
		Registrations: registrations,
	})
}
