package server

import (
	"net/http"
	"time"

	"regatta-tracker/internal/domain"
)

type positionResponse struct {
	ID           string    `json:"id"`
	Points       int64     `json:"points"`
	RaceID       string    `json:"race_id"`
	CompetitorID string    `json:"competitor_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toPositionResponses(positions []domain.Position) []positionResponse {
	result := make([]positionResponse, len(positions))
	for i, p := range positions {
		result[i] = positionResponse{
			ID:           p.ID,
			Points:       p.Points,
			RaceID:       p.RaceID,
			CompetitorID: p.CompetitorID,
			CreatedAt:    p.CreatedAt,
			UpdatedAt:    p.UpdatedAt,
		}
	}
	return result
}

func (s *Server) handleListPositions(w http.ResponseWriter, r *http.Request) {
	positions, err := s.positions.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPositionResponses(positions))
}

func (s *Server) handleGetPosition(w http.ResponseWriter, r *http.Request) {
	position, err := s.positions.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPositionResponses([]domain.Position{*position})[0])
}

func (s *Server) handleDeletePosition(w http.ResponseWriter, r *http.Request) {
	if err := s.positions.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
