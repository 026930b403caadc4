package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sakif/volunteerhub/internal/model"
	"github.com/sakif/volunteerhub/internal/service"
)

// EventHandler exposes event creation and listing.
type EventHandler struct {
	service *service.EventService
	logger  *slog.Logger
}

func NewEventHandler(svc *service.EventService, logger *slog.Logger) *EventHandler {
	return &EventHandler{service: svc, logger: logger}
}

type eventResponse struct {
	Message string       `json:"message"`
	Event   *model.Event `json:"event"`
}

type eventListResponse struct {
	Message string        `json:"message"`
	Events  []model.Event `json:"events"`
}

// HandleCreate handles POST /events. A missing admin comes back as 404, not
// 400 — the input was well-formed, the referenced record is what's absent.
func (h *EventHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input service.CreateEventInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Warn("invalid event JSON", slog.String("error", err.Error()))
		writeInvalidBody(w)
		return
	}

	event, err := h.service.Create(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, eventResponse{
		Message: "Event created successfully",
		Event:   event,
	})
}

// HandleList handles GET /events.
func (h *EventHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, eventListResponse{
		Message: "Events fetched successfully",
		Events:  events,
	})
}
