// Package notify pushes background finish outcomes to an operator-configured
// webhook. It is a best-effort sink: delivery failures are logged and
// forgotten, matching the fire-and-forget contract of the pipeline itself.
package notify

import (
	"context"
	"encoding/json"
	"time"

	"regatta-tracker/internal/config"
	"regatta-tracker/internal/constants"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

// Outcome describes how one finish job ended.
type Outcome struct {
	JobID     string `json:"job_id"`
	RaceID    string `json:"race_id"`
	Status    string `json:"status"`
	Candidate string `json:"candidate,omitempty"`
	SailNr    string `json:"sail_nr,omitempty"`
	Points    int64  `json:"points,omitempty"`
	Detail    string `json:"detail,omitempty"`
}

const (
	StatusRecorded       = "recorded"
	StatusDuplicate      = "duplicate"
	StatusAmbiguous      = "ambiguous"
	StatusMalformedImage = "malformed_image"
	StatusError          = "error"
)

type Notifier interface {
	Publish(ctx context.Context, outcome Outcome)
}

// WebhookNotifier POSTs outcomes as JSON to a single URL.
type WebhookNotifier struct {
	url    string
	client *fasthttp.Client
	logger zerolog.Logger
}

// New builds the configured notifier; with no webhook URL it degrades to a
// no-op so callers never branch.
func New(cfg *config.Config, logger zerolog.Logger) Notifier {
	if cfg.OutcomeWebhookURL == "" {
		logger.Debug().Msg("no outcome webhook configured")
		return NopNotifier{}
	}

	return &WebhookNotifier{
		url: cfg.OutcomeWebhookURL,
		client: &fasthttp.Client{
			MaxConnsPerHost:     10,
			ReadTimeout:         constants.WebhookTimeout,
			WriteTimeout:        constants.WebhookTimeout,
			MaxIdleConnDuration: 1 * time.Minute,
		},
		logger: logger,
	}
}

func (n *WebhookNotifier) Publish(ctx context.Context, outcome Outcome) {
	body, err := json.Marshal(outcome)
	if err != nil {
		n.logger.Error().Err(err).Msg("failed to encode outcome")
		return
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(n.url)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBody(body)

	if err := n.client.DoTimeout(req, resp, constants.WebhookTimeout); err != nil {
		n.logger.Warn().Err(err).Str("job_id", outcome.JobID).Msg("outcome webhook delivery failed")
		return
	}

	if resp.StatusCode() >= 300 {
		n.logger.Warn().
			Int("status", resp.StatusCode()).
			Str("job_id", outcome.JobID).
			Msg("outcome webhook rejected delivery")
	}
}

type NopNotifier struct{}

func (NopNotifier) Publish(context.Context, Outcome) {}
