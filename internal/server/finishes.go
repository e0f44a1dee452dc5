package server

import (
	"io"
	"net/http"
	"strings"

	"regatta-tracker/internal/match"
)

// MaxImageBytes caps finish-photo uploads.
const MaxImageBytes = 10 << 20

type finishAcceptedResponse struct {
	JobID  string `json:"job_id"`
	RaceID string `json:"race_id"`
	Status string `json:"status"`
}

type recognitionResponse struct {
	Candidate string        `json:"candidate"`
	Matches   []match.Match `json:"matches"`
}

// handleSubmitFinish accepts a finish photo for a race and queues it. The
// response only acknowledges queuing; recognition outcome is never reported
// synchronously.
func (s *Server) handleSubmitFinish(w http.ResponseWriter, r *http.Request) {
	image, ok := readImage(w, r)
	if !ok {
		return
	}

	jobID, err := s.finishes.Submit(r.Context(), r.PathValue("id"), image)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusAccepted, finishAcceptedResponse{
		JobID:  jobID,
		RaceID: r.PathValue("id"),
		Status: "accepted",
	})
}

// handleRecognize runs the pipeline without creating a Position: it returns
// the raw predicted number and every close match so an operator can
// disambiguate manually.
func (s *Server) handleRecognize(w http.ResponseWriter, r *http.Request) {
	image, ok := readImage(w, r)
	if !ok {
		return
	}

	candidate, matches, err := s.recognizer.Recognize(r.Context(), r.PathValue("id"), image)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if matches == nil {
		matches = []match.Match{}
	}
	writeJSON(w, http.StatusOK, recognitionResponse{Candidate: candidate, Matches: matches})
}

// readImage pulls the photo out of the request, accepting either a raw
// image/jpeg body or a multipart form with a "photo" file field.
func readImage(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(MaxImageBytes); err != nil {
			writeError(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
			return nil, false
		}
		file, _, err := r.FormFile("photo")
		if err != nil {
			writeError(w, http.StatusBadRequest, "missing photo field")
			return nil, false
		}
		defer file.Close()

		image, err := io.ReadAll(io.LimitReader(file, MaxImageBytes+1))
		if err != nil {
			writeError(w, http.StatusBadRequest, "failed to read photo: "+err.Error())
			return nil, false
		}
		if len(image) > MaxImageBytes {
			writeError(w, http.StatusRequestEntityTooLarge, "photo too large")
			return nil, false
		}
		return image, true
	}

	image, err := io.ReadAll(io.LimitReader(r.Body, MaxImageBytes+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read body: "+err.Error())
		return nil, false
	}
	if len(image) > MaxImageBytes {
		writeError(w, http.StatusRequestEntityTooLarge, "photo too large")
		return nil, false
	}
	if len(image) == 0 {
		writeError(w, http.StatusBadRequest, "empty body")
		return nil, false
	}
	return image, true
}
