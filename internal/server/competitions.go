package server

import (
	"net/http"
	"time"

	"regatta-tracker/internal/domain"
)

const dateLayout = "2006-01-02"

type competitionRequest struct {
	Title     string `json:"title"`
	Boat      string `json:"boat"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type competitionResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Boat      string    `json:"boat"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toCompetitionResponse(c *domain.Competition) competitionResponse {
	return competitionResponse{
		ID:        c.ID,
		Title:     c.Title,
		Boat:      string(c.Boat),
		StartDate: c.StartDate.Format(dateLayout),
		EndDate:   c.EndDate.Format(dateLayout),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (req competitionRequest) toDomain(w http.ResponseWriter) (*domain.Competition, bool) {
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid start_date, expected YYYY-MM-DD")
		return nil, false
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid end_date, expected YYYY-MM-DD")
		return nil, false
	}
	return &domain.Competition{
		Title:     req.Title,
		Boat:      domain.Boat(req.Boat),
		StartDate: start,
		EndDate:   end,
	}, true
}

func (s *Server) handleListCompetitions(w http.ResponseWriter, r *http.Request) {
	competitions, err := s.competitions.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	result := make([]competitionResponse, len(competitions))
	for i := range competitions {
		result[i] = toCompetitionResponse(&competitions[i])
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleGetCompetition(w http.ResponseWriter, r *http.Request) {
	competition, err := s.competitions.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCompetitionResponse(competition))
}

func (s *Server) handleCreateCompetition(w http.ResponseWriter, r *http.Request) {
	var req competitionRequest
	if !readJSON(w, r, &req) {
		return
	}

	competition, ok := req.toDomain(w)
	if !ok {
		return
	}

	if err := s.competitions.Create(r.Context(), competition); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCompetitionResponse(competition))
}

func (s *Server) handleUpdateCompetition(w http.ResponseWriter, r *http.Request) {
	var req competitionRequest
	if !readJSON(w, r, &req) {
		return
	}

	competition, ok := req.toDomain(w)
	if !ok {
		return
	}
	competition.ID = r.PathValue("id")

	if err := s.competitions.Update(r.Context(), competition); err != nil {
		writeServiceError(w, r, err)
		return
	}

	updated, err := s.competitions.Get(r.Context(), competition.ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCompetitionResponse(updated))
}

type standingsResponse struct {
	RaceCount int64                `json:"race_count"`
	Standings []competitorResponse `json:"standings"`
}

func (s *Server) handleCompetitionStandings(w http.ResponseWriter, r *http.Request) {
	competitors, raceCount, err := s.competitions.Standings(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	standings := make([]competitorResponse, len(competitors))
	for i := range competitors {
		standings[i] = toCompetitorResponse(&competitors[i])
	}
	writeJSON(w, http.StatusOK, standingsResponse{RaceCount: raceCount, Standings: standings})
}

func (s *Server) handleDeleteCompetition(w http.ResponseWriter, r *http.Request) {
	if err := s.competitions.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
