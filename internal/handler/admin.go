package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sakif/volunteerhub/internal/model"
	"github.com/sakif/volunteerhub/internal/service"
)

// AdminHandler exposes admin signup.
type AdminHandler struct {
	service *service.AdminService
	logger  *slog.Logger
}

func NewAdminHandler(svc *service.AdminService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{service: svc, logger: logger}
}

type adminResponse struct {
	Message string       `json:"message"`
	Admin   *model.Admin `json:"admin"`
}

// HandleCreate handles POST /admins.
func (h *AdminHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input service.CreateAdminInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Warn("invalid admin JSON", slog.String("error", err.Error()))
		writeInvalidBody(w)
		return
	}

	admin, err := h.service.Create(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, adminResponse{
		Message: "Admin created successfully",
		Admin:   admin,
	})
}
