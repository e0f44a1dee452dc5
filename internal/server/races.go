package server

import (
	"net/http"
	"time"

	"regatta-tracker/internal/domain"
)

type raceRequest struct {
	CompetitionID string `json:"competition_id"`
}

type raceResponse struct {
	ID            string    `json:"id"`
	RaceNr        int64     `json:"race_nr"`
	CompetitionID string    `json:"competition_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toRaceResponse(race *domain.Race) raceResponse {
	return raceResponse{
		ID:            race.ID,
		RaceNr:        race.RaceNr,
		CompetitionID: race.CompetitionID,
		CreatedAt:     race.CreatedAt,
		UpdatedAt:     race.UpdatedAt,
	}
}

func (s *Server) handleListRaces(w http.ResponseWriter, r *http.Request) {
	races, err := s.races.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	result := make([]raceResponse, len(races))
	for i := range races {
		result[i] = toRaceResponse(&races[i])
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleGetRace(w http.ResponseWriter, r *http.Request) {
	race, err := s.races.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRaceResponse(race))
}

func (s *Server) handleCreateRace(w http.ResponseWriter, r *http.Request) {
	var req raceRequest
	if !readJSON(w, r, &req) {
		return
	}

	race := &domain.Race{CompetitionID: req.CompetitionID}
	if err := s.races.Create(r.Context(), race); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRaceResponse(race))
}

func (s *Server) handleDeleteRace(w http.ResponseWriter, r *http.Request) {
	if err := s.races.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRacePositions(w http.ResponseWriter, r *http.Request) {
	positions, err := s.races.Positions(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPositionResponses(positions))
}
