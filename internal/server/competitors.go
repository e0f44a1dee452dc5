package server

import (
	"net/http"
	"time"

	"regatta-tracker/internal/domain"
)

type competitorRequest struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Country       string `json:"country"`
	Club          string `json:"club"`
	SailNr        int64  `json:"sail_nr"`
	CompetitionID string `json:"competition_id"`
}

type competitorResponse struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Country       string    `json:"country"`
	Club          string    `json:"club"`
	SailNr        int64     `json:"sail_nr"`
	TotalPoints   int64     `json:"total_points"`
	NetPoints     int64     `json:"net_points"`
	CompetitionID string    `json:"competition_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toCompetitorResponse(c *domain.Competitor) competitorResponse {
	return competitorResponse{
		ID:            c.ID,
		FirstName:     c.FirstName,
		LastName:      c.LastName,
		Country:       string(c.Country),
		Club:          string(c.Club),
		SailNr:        c.SailNr,
		TotalPoints:   c.TotalPoints,
		NetPoints:     c.NetPoints,
		CompetitionID: c.CompetitionID,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func (s *Server) handleListCompetitors(w http.ResponseWriter, r *http.Request) {
	competitors, err := s.competitors.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	result := make([]competitorResponse, len(competitors))
	for i := range competitors {
		result[i] = toCompetitorResponse(&competitors[i])
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleGetCompetitor(w http.ResponseWriter, r *http.Request) {
	competitor, err := s.competitors.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCompetitorResponse(competitor))
}

func (s *Server) handleCreateCompetitor(w http.ResponseWriter, r *http.Request) {
	var req competitorRequest
	if !readJSON(w, r, &req) {
		return
	}

	competitor := &domain.Competitor{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Country:       domain.Country(req.Country),
		Club:          domain.Club(req.Club),
		SailNr:        req.SailNr,
		CompetitionID: req.CompetitionID,
	}

	if err := s.competitors.Create(r.Context(), competitor); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCompetitorResponse(competitor))
}

func (s *Server) handleUpdateCompetitor(w http.ResponseWriter, r *http.Request) {
	var req competitorRequest
	if !readJSON(w, r, &req) {
		return
	}

	competitor := &domain.Competitor{
		ID:        r.PathValue("id"),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Country:   domain.Country(req.Country),
		Club:      domain.Club(req.Club),
		SailNr:    req.SailNr,
	}

	if err := s.competitors.Update(r.Context(), competitor); err != nil {
		writeServiceError(w, r, err)
		return
	}

	updated, err := s.competitors.Get(r.Context(), competitor.ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCompetitorResponse(updated))
}

func (s *Server) handleDeleteCompetitor(w http.ResponseWriter, r *http.Request) {
	if err := s.competitors.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCompetitorPositions(w http.ResponseWriter, r *http.Request) {
	positions, err := s.competitors.Positions(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPositionResponses(positions))
}
