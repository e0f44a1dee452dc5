package service

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"time"

	"regatta-tracker/internal/dispatch"
	"regatta-tracker/internal/metrics"
	"regatta-tracker/internal/notify"
	"regatta-tracker/internal/repository"
	"regatta-tracker/internal/vision"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

var jpegMagic = []byte{0xFF, 0xD8, 0xFF}

// FinishService accepts finish-photo submissions and runs them through the
// background pipeline. Submission is acknowledged as soon as the job is
// queued; recognition outcomes reach operators only through the log, the
// metrics and the optional webhook.
type FinishService struct {
	queue       *dispatch.Queue
	recognition *RecognitionService
	ranking     *RankingService
	raceRepo    *repository.RaceRepository
	notifier    notify.Notifier
	logger      zerolog.Logger
}

func NewFinishService(queue *dispatch.Queue, recognition *RecognitionService, ranking *RankingService, raceRepo *repository.RaceRepository, notifier notify.Notifier, logger zerolog.Logger) *FinishService {
	return &FinishService{
		queue:       queue,
		recognition: recognition,
		ranking:     ranking,
		raceRepo:    raceRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// Submit validates what can be checked synchronously (the race exists, the
// bytes look like a JPEG) and queues the recognition work. Returns the job id
// of the accepted submission.
func (s *FinishService) Submit(ctx context.Context, raceID string, image []byte) (string, error) {
	if !bytes.HasPrefix(image, jpegMagic) {
		return "", ErrNotJPEG
	}

	race, err := s.raceRepo.Get(ctx, raceID)
	if err != nil {
		return "", err
	}

	jobID, err := gonanoid.New()
	if err != nil {
		return "", err
	}

	if err := s.queue.Enqueue(dispatch.FinishJob{
		ID:            jobID,
		RaceID:        race.ID,
		CompetitionID: race.CompetitionID,
		Image:         image,
		EnqueuedAt:    time.Now().UTC(),
	}); err != nil {
		return "", err
	}

	s.logger.Info().
		Str("job_id", jobID).
		Str("race_id", race.ID).
		Int("image_bytes", len(image)).
		Msg("finish submission queued")

	return jobID, nil
}

// Process runs one queued job through recognition and ranking. It implements
// dispatch.Processor. Outcomes of the error taxonomy (malformed image,
// ambiguous recognition, duplicate finish, vanished race or competitor) are
// sunk as observability events and return nil: there is nothing left to
// retry and nobody to report to.
func (s *FinishService) Process(ctx context.Context, job dispatch.FinishJob) error {
	start := time.Now()
	defer func() {
		metrics.RecognitionDuration.Observe(time.Since(start).Seconds())
	}()

	logger := s.logger.With().Str("job_id", job.ID).Str("race_id", job.RaceID).Logger()

	candidate, matches, err := s.recognition.Recognize(ctx, job.CompetitionID, job.Image)
	if errors.Is(err, vision.ErrMalformedImage) {
		metrics.MalformedImages.Inc()
		logger.Warn().Msg("finish photo could not be decoded")
		s.notifier.Publish(ctx, notify.Outcome{
			JobID:  job.ID,
			RaceID: job.RaceID,
			Status: notify.StatusMalformedImage,
		})
		return nil
	}
	if err != nil {
		metrics.PipelineErrors.Inc()
		s.notifier.Publish(ctx, notify.Outcome{
			JobID:  job.ID,
			RaceID: job.RaceID,
			Status: notify.StatusError,
			Detail: err.Error(),
		})
		return err
	}

	if len(matches) == 0 {
		metrics.AmbiguousRecognitions.Inc()
		logger.Warn().Str("candidate", candidate).Msg("no confident sail number match")
		s.notifier.Publish(ctx, notify.Outcome{
			JobID:     job.ID,
			RaceID:    job.RaceID,
			Status:    notify.StatusAmbiguous,
			Candidate: candidate,
		})
		return nil
	}

	best := matches[0]
	sailNr, err := strconv.ParseInt(best.SailNr, 10, 64)
	if err != nil {
		metrics.PipelineErrors.Inc()
		return err
	}

	position, competitor, err := s.ranking.RecordFinish(ctx, job.RaceID, sailNr)
	switch {
	case errors.Is(err, repository.ErrDuplicateFinish):
		// Safe no-op: retried photos of an already processed finish must not
		// double count.
		metrics.DuplicateFinishes.Inc()
		logger.Info().Str("sail_nr", best.SailNr).Msg("duplicate finish ignored")
		s.notifier.Publish(ctx, notify.Outcome{
			JobID:     job.ID,
			RaceID:    job.RaceID,
			Status:    notify.StatusDuplicate,
			Candidate: candidate,
			SailNr:    best.SailNr,
		})
		return nil
	case errors.Is(err, repository.ErrRaceNotFound), errors.Is(err, repository.ErrCompetitorNotFound):
		// The race or competitor disappeared between submission and
		// processing; nothing to commit, log and drop.
		metrics.PipelineErrors.Inc()
		logger.Warn().Err(err).Str("sail_nr", best.SailNr).Msg("finish target vanished before processing")
		s.notifier.Publish(ctx, notify.Outcome{
			JobID:     job.ID,
			RaceID:    job.RaceID,
			Status:    notify.StatusError,
			Candidate: candidate,
			SailNr:    best.SailNr,
			Detail:    err.Error(),
		})
		return nil
	case err != nil:
		metrics.PipelineErrors.Inc()
		s.notifier.Publish(ctx, notify.Outcome{
			JobID:  job.ID,
			RaceID: job.RaceID,
			Status: notify.StatusError,
			Detail: err.Error(),
		})
		return err
	}

	metrics.FinishesRecorded.Inc()
	logger.Info().
		Str("candidate", candidate).
		Str("sail_nr", best.SailNr).
		Int64("points", position.Points).
		Int64("total_points", competitor.TotalPoints).
		Int64("net_points", competitor.NetPoints).
		Msg("finish recognized and recorded")

	s.notifier.Publish(ctx, notify.Outcome{
		JobID:     job.ID,
		RaceID:    job.RaceID,
		Status:    notify.StatusRecorded,
		Candidate: candidate,
		SailNr:    best.SailNr,
		Points:    position.Points,
	})

	return nil
}
