// Package server exposes the tracker as a JSON HTTP API.
package server

import (
	"context"
	"net/http"

	"regatta-tracker/internal/match"
	"regatta-tracker/internal/service"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// FinishSubmitter queues a finish photo for background processing.
type FinishSubmitter interface {
	Submit(ctx context.Context, raceID string, image []byte) (string, error)
}

// Recognizer runs the recognition pipeline without recording anything; the
// diagnostic path for manual disambiguation.
type Recognizer interface {
	Recognize(ctx context.Context, competitionID string, raw []byte) (string, []match.Match, error)
}

type Server struct {
	competitions *service.CompetitionService
	competitors  *service.CompetitorService
	races        *service.RaceService
	positions    *service.PositionService
	finishes     FinishSubmitter
	recognizer   Recognizer
	logger       zerolog.Logger
}

func New(
	competitions *service.CompetitionService,
	competitors *service.CompetitorService,
	races *service.RaceService,
	positions *service.PositionService,
	finishes FinishSubmitter,
	recognizer Recognizer,
	logger zerolog.Logger,
) *Server {
	return &Server{
		competitions: competitions,
		competitors:  competitors,
		races:        races,
		positions:    positions,
		finishes:     finishes,
		recognizer:   recognizer,
		logger:       logger,
	}
}

func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /boats", s.handleListBoats)
	mux.HandleFunc("GET /countries", s.handleListCountries)
	mux.HandleFunc("GET /clubs", s.handleListClubs)

	mux.HandleFunc("GET /competitions", s.handleListCompetitions)
	mux.HandleFunc("POST /competitions", s.handleCreateCompetition)
	mux.HandleFunc("GET /competitions/{id}", s.handleGetCompetition)
	mux.HandleFunc("PUT /competitions/{id}", s.handleUpdateCompetition)
	mux.HandleFunc("DELETE /competitions/{id}", s.handleDeleteCompetition)
	mux.HandleFunc("GET /competitions/{id}/standings", s.handleCompetitionStandings)
	mux.HandleFunc("POST /competitions/{id}/recognitions", s.handleRecognize)

	mux.HandleFunc("GET /competitors", s.handleListCompetitors)
	mux.HandleFunc("POST /competitors", s.handleCreateCompetitor)
	mux.HandleFunc("GET /competitors/{id}", s.handleGetCompetitor)
	mux.HandleFunc("PUT /competitors/{id}", s.handleUpdateCompetitor)
	mux.HandleFunc("DELETE /competitors/{id}", s.handleDeleteCompetitor)
	mux.HandleFunc("GET /competitors/{id}/positions", s.handleCompetitorPositions)

	mux.HandleFunc("GET /races", s.handleListRaces)
	mux.HandleFunc("POST /races", s.handleCreateRace)
	mux.HandleFunc("GET /races/{id}", s.handleGetRace)
	mux.HandleFunc("PUT /races/{id}", s.handleNotImplemented)
	mux.HandleFunc("DELETE /races/{id}", s.handleDeleteRace)
	mux.HandleFunc("GET /races/{id}/positions", s.handleRacePositions)
	mux.HandleFunc("POST /races/{id}/finishes", s.handleSubmitFinish)

	mux.HandleFunc("GET /positions", s.handleListPositions)
	mux.HandleFunc("GET /positions/{id}", s.handleGetPosition)
	mux.HandleFunc("PUT /positions/{id}", s.handleNotImplemented)
	mux.HandleFunc("DELETE /positions/{id}", s.handleDeletePosition)

	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Positions are immutable once created and races keep their ordinal number
// for life; the update routes exist only to answer 501 explicitly.
func (s *Server) handleNotImplemented(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotImplemented, "not implemented")
}
