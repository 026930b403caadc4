package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/sakif/volunteerhub/internal/model"
	"github.com/sakif/volunteerhub/internal/service"
)

// VolunteerHandler exposes volunteer signup and the read surface, including
// the paginated listing.
type VolunteerHandler struct {
	service *service.VolunteerService
	logger  *slog.Logger
}

func NewVolunteerHandler(svc *service.VolunteerService, logger *slog.Logger) *VolunteerHandler {
	return &VolunteerHandler{service: svc, logger: logger}
}

type volunteerResponse struct {
	Message   string           `json:"message"`
	Volunteer *model.Volunteer `json:"volunteer"`
}

type volunteerListResponse struct {
	Message    string            `json:"message"`
	Volunteers []model.Volunteer `json:"volunteers"`
}

// HandleCreate handles POST /volunteers.
func (h *VolunteerHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input service.CreateVolunteerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Warn("invalid volunteer JSON", slog.String("error", err.Error()))
		writeInvalidBody(w)
		return
	}

	volunteer, err := h.service.Create(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, volunteerResponse{
		Message:   "Volunteer created successfully",
		Volunteer: volunteer,
	})
}

// HandleGetByID handles GET /volunteers/{id}.
func (h *VolunteerHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	volunteer, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, volunteerResponse{
		Message:   "Volunteer fetched successfully",
		Volunteer: volunteer,
	})
}

// HandleList handles GET /volunteers. An empty store is a 404 on this
// endpoint.
func (h *VolunteerHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	volunteers, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, volunteerListResponse{
		Message:    "Volunteers fetched successfully",
		Volunteers: volunteers,
	})
}

// HandleListPage handles GET /volunteers/pagination/{start}/{end}: the
// half-open slice [start, end) of the full listing. Non-integer parameters
// and start >= end are 400s; out-of-range indices clamp.
func (h *VolunteerHandler) HandleListPage(w http.ResponseWriter, r *http.Request) {
	start, errStart := strconv.Atoi(r.PathValue("start"))
	end, errEnd := strconv.Atoi(r.PathValue("end"))
	if errStart != nil || errEnd != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "start and end must be integers"})
		return
	}

	volunteers, err := h.service.ListPage(r.Context(), start, end)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, volunteerListResponse{
		Message:    "Volunteers fetched successfully",
		Volunteers: volunteers,
	})
}
