// Package handler contains the HTTP layer: request decoding, response
// envelopes, and the mapping from domain errors to status codes.
//
// Every success body carries a "message" field plus the entity (or entities)
// it concerns. Every failure body is {"error": "..."} — a single
// human-readable string, no structured error codes.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sakif/volunteerhub/internal/apperror"
)

// ErrorResponse is the failure body shape for every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeJSON sends a JSON response with the given status code. Headers and
// status must be written before the body; once Encode starts writing they
// are locked in.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers are already sent; all we can do is log.
			slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
		}
	}
}

// writeError maps a domain error onto the HTTP surface.
//
// Validation failures AND duplicate-unique-field conflicts both map to 400
// on this API (the taxonomy still distinguishes them internally). Not-found
// maps to 404. Anything unrecognised is an internal failure: the client gets
// a generic message, details stay server-side.
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, apperror.ErrValidation), errors.Is(err, apperror.ErrConflict):
			status = http.StatusBadRequest
		case errors.Is(err, apperror.ErrNotFound):
			status = http.StatusNotFound
		}
		writeJSON(w, status, ErrorResponse{Error: appErr.Message})
		return
	}

	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "An internal error occurred"})
}

// writeInvalidBody is the shared 400 for undecodable request bodies —
// malformed JSON or a field of the wrong type (a string where a list or
// number belongs).
func writeInvalidBody(w http.ResponseWriter) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON body"})
}
