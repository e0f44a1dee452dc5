package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"regatta-tracker/internal/dispatch"
	"regatta-tracker/internal/match"
	"regatta-tracker/internal/middleware"
	"regatta-tracker/internal/repository"
	"regatta-tracker/internal/vision"
)

type stubSubmitter struct {
	jobID    string
	err      error
	gotRace  string
	gotImage []byte
}

func (s *stubSubmitter) Submit(_ context.Context, raceID string, image []byte) (string, error) {
	s.gotRace = raceID
	s.gotImage = image
	return s.jobID, s.err
}

type stubRecognizer struct {
	candidate string
	matches   []match.Match
	err       error
}

func (s *stubRecognizer) Recognize(_ context.Context, _ string, _ []byte) (string, []match.Match, error) {
	return s.candidate, s.matches, s.err
}

func newTestServer(submitter FinishSubmitter, recognizer Recognizer) *Server {
	return New(nil, nil, nil, nil, submitter, recognizer, zerolog.Nop())
}

func TestSubmitFinishAccepted(t *testing.T) {
	submitter := &stubSubmitter{jobID: "job-123"}
	srv := newTestServer(submitter, &stubRecognizer{})

	body := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x01, 0x02}
	req := httptest.NewRequest(http.MethodPost, "/races/race-1/finishes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "image/jpeg")
	rec := httptest.NewRecorder()

	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", rec.Code, rec.Body.String())
	}
	if submitter.gotRace != "race-1" {
		t.Errorf("expected race id from path, got %q", submitter.gotRace)
	}
	if !bytes.Equal(submitter.gotImage, body) {
		t.Error("submitted image bytes do not match the request body")
	}

	var resp finishAcceptedResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.JobID != "job-123" || resp.RaceID != "race-1" || resp.Status != "accepted" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestSubmitFinishMultipart(t *testing.T) {
	submitter := &stubSubmitter{jobID: "job-9"}
	srv := newTestServer(submitter, &stubRecognizer{})

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("photo", "finish.jpg")
	if err != nil {
		t.Fatalf("failed to build form: %v", err)
	}
	payload := []byte{0xFF, 0xD8, 0xFF, 0xDB, 0x10}
	part.Write(payload)
	form.Close()

	req := httptest.NewRequest(http.MethodPost, "/races/race-2/finishes", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	rec := httptest.NewRecorder()

	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", rec.Code, rec.Body.String())
	}
	if !bytes.Equal(submitter.gotImage, payload) {
		t.Error("multipart photo bytes do not match")
	}
}

func TestSubmitFinishEmptyBody(t *testing.T) {
	srv := newTestServer(&stubSubmitter{}, &stubRecognizer{})

	req := httptest.NewRequest(http.MethodPost, "/races/race-1/finishes", nil)
	rec := httptest.NewRecorder()

	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for empty body, got %d", rec.Code)
	}
}

func TestSubmitFinishErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"race not found", repository.ErrRaceNotFound, http.StatusNotFound},
		{"queue full", dispatch.ErrQueueFull, http.StatusServiceUnavailable},
		{"queue closed", dispatch.ErrQueueClosed, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(&stubSubmitter{err: tt.err}, &stubRecognizer{})

			req := httptest.NewRequest(http.MethodPost, "/races/race-1/finishes",
				bytes.NewReader([]byte{0xFF, 0xD8, 0xFF}))
			rec := httptest.NewRecorder()

			srv.Routes().ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, rec.Code)
			}
		})
	}
}

func TestSubmitFinishUnexpectedErrorCorrelated(t *testing.T) {
	srv := newTestServer(&stubSubmitter{err: errors.New("disk on fire")}, &stubRecognizer{})
	handler := middleware.RequestID(zerolog.Nop())(srv.Routes())

	req := httptest.NewRequest(http.MethodPost, "/races/race-1/finishes",
		bytes.NewReader([]byte{0xFF, 0xD8, 0xFF}))
	req.Header.Set("X-Request-ID", "req-abc")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var resp struct {
		Detail    string `json:"detail"`
		RequestID string `json:"request_id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.RequestID != "req-abc" {
		t.Errorf("expected the request id in the error body, got %q", resp.RequestID)
	}
	if resp.Detail != "internal server error" {
		t.Errorf("unexpected detail: %q", resp.Detail)
	}
}

func TestRecognizeReturnsMatches(t *testing.T) {
	recognizer := &stubRecognizer{
		candidate: "127",
		matches: []match.Match{
			{SailNr: "127", Score: 100},
			{SailNr: "128", Score: 67},
		},
	}
	srv := newTestServer(&stubSubmitter{}, recognizer)

	req := httptest.NewRequest(http.MethodPost, "/competitions/comp-1/recognitions",
		bytes.NewReader([]byte{0xFF, 0xD8, 0xFF}))
	rec := httptest.NewRecorder()

	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp recognitionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Candidate != "127" || len(resp.Matches) != 2 {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestRecognizeMalformedImage(t *testing.T) {
	srv := newTestServer(&stubSubmitter{}, &stubRecognizer{err: vision.ErrMalformedImage})

	req := httptest.NewRequest(http.MethodPost, "/competitions/comp-1/recognitions",
		bytes.NewReader([]byte{0xFF, 0xD8, 0xFF}))
	rec := httptest.NewRecorder()

	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", rec.Code)
	}
}

func TestRecognizeEmptyMatchList(t *testing.T) {
	srv := newTestServer(&stubSubmitter{}, &stubRecognizer{candidate: "999"})

	req := httptest.NewRequest(http.MethodPost, "/competitions/comp-1/recognitions",
		bytes.NewReader([]byte{0xFF, 0xD8, 0xFF}))
	rec := httptest.NewRecorder()

	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	// The match list serializes as [] rather than null.
	if !bytes.Contains(rec.Body.Bytes(), []byte(`"matches":[]`)) {
		t.Errorf("expected empty match array, got %s", rec.Body.String())
	}
}

func TestUpdateRoutesNotImplemented(t *testing.T) {
	srv := newTestServer(&stubSubmitter{}, &stubRecognizer{})

	for _, path := range []string{"/races/race-1", "/positions/pos-1"} {
		req := httptest.NewRequest(http.MethodPut, path, bytes.NewReader([]byte(`{}`)))
		rec := httptest.NewRecorder()

		srv.Routes().ServeHTTP(rec, req)

		if rec.Code != http.StatusNotImplemented {
			t.Errorf("expected 501 for PUT %s, got %d", path, rec.Code)
		}
	}
}
