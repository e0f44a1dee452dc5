package server

import (
	"net/http"

	"regatta-tracker/internal/domain"
)

func (s *Server) handleListBoats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.Boats())
}

func (s *Server) handleListCountries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.Countries())
}

func (s *Server) handleListClubs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.Clubs())
}
