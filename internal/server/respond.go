package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"regatta-tracker/internal/dispatch"
	"regatta-tracker/internal/middleware"
	"regatta-tracker/internal/repository"
	"regatta-tracker/internal/service"
	"regatta-tracker/internal/vision"

	"github.com/rs/zerolog"
)

type errorResponse struct {
	Detail    string `json:"detail"`
	RequestID string `json:"request_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

// writeServiceError maps the domain error taxonomy onto HTTP statuses.
// Unexpected errors are logged with the request-scoped logger and answered
// with the request id so operators can correlate the log line.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, repository.ErrCompetitionNotFound),
		errors.Is(err, repository.ErrCompetitorNotFound),
		errors.Is(err, repository.ErrRaceNotFound),
		errors.Is(err, repository.ErrPositionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, repository.ErrDuplicateSailNr),
		errors.Is(err, repository.ErrDuplicateFinish):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrNotJPEG):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, vision.ErrMalformedImage):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, dispatch.ErrQueueFull),
		errors.Is(err, dispatch.ErrQueueClosed):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("unhandled service error")
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Detail:    "internal server error",
			RequestID: middleware.GetRequestID(r.Context()),
		})
	}
}

func readJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}
