package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sakif/volunteerhub/internal/model"
	"github.com/sakif/volunteerhub/internal/service"
)

// FeedbackHandler exposes event feedback.
type FeedbackHandler struct {
	service *service.FeedbackService
	logger  *slog.Logger
}

func NewFeedbackHandler(svc *service.FeedbackService, logger *slog.Logger) *FeedbackHandler {
	return &FeedbackHandler{service: svc, logger: logger}
}

type feedbackResponse struct {
	Message  string          `json:"message"`
	Feedback *model.Feedback `json:"feedback"`
}

type feedbackListResponse struct {
	Message   string           `json:"message"`
	Feedbacks []model.Feedback `json:"feedbacks"`
}

// HandleCreate handles POST /feedbacks. A non-numeric rating fails JSON
// decoding and surfaces as the shared invalid-body 400.
func (h *FeedbackHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input service.CreateFeedbackInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Warn("invalid feedback JSON", slog.String("error", err.Error()))
		writeInvalidBody(w)
		return
	}

	feedback, err := h.service.Create(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, feedbackResponse{
		Message:  "Feedback created successfully",
		Feedback: feedback,
	})
}

// HandleList handles GET /feedbacks.
func (h *FeedbackHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	feedbacks, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, feedbackListResponse{
		Message:   "Feedbacks fetched successfully",
		Feedbacks: feedbacks,
	})
}
