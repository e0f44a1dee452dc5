package service

import (
	"context"
	"fmt"

	"regatta-tracker/internal/classifier"
	"regatta-tracker/internal/match"
	"regatta-tracker/internal/repository"
	"regatta-tracker/internal/vision"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// RecognitionService recovers a sail number from a finish photograph:
// normalize, segment, classify, then resolve the candidate string against the
// competition's registered sail numbers. It never writes; both the background
// finish pipeline and the diagnostic recognize-only endpoint sit on top of it.
type RecognitionService struct {
	classifier     classifier.Classifier
	matcher        match.Matcher
	competitorRepo *repository.CompetitorRepository
	logger         zerolog.Logger
}

func NewRecognitionService(cls classifier.Classifier, matcher match.Matcher, competitorRepo *repository.CompetitorRepository, logger zerolog.Logger) *RecognitionService {
	return &RecognitionService{
		classifier:     cls,
		matcher:        matcher,
		competitorRepo: competitorRepo,
		logger:         logger,
	}
}

// Recognize returns the raw candidate number string and the ranked close
// matches for one image. The candidate may be empty (no glyphs found) and the
// match list may be empty (nothing above the cutoff); only undecodable images
// and infrastructure failures are errors.
func (s *RecognitionService) Recognize(ctx context.Context, competitionID string, raw []byte) (string, []match.Match, error) {
	var candidate string
	var universe []string

	// The sail-number fetch and the vision pipeline are independent; run
	// them side by side.
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		universe, err = s.competitorRepo.SailNumbers(gCtx, competitionID)
		if err != nil {
			return fmt.Errorf("failed to load sail numbers: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		candidate, err = s.readNumber(gCtx, raw)
		return err
	})

	if err := g.Wait(); err != nil {
		return "", nil, err
	}

	matches := s.matcher.Rank(candidate, universe)

	s.logger.Debug().
		Str("competition_id", competitionID).
		Str("candidate", candidate).
		Int("universe_size", len(universe)).
		Int("match_count", len(matches)).
		Msg("recognition completed")

	return candidate, matches, nil
}

func (s *RecognitionService) readNumber(ctx context.Context, raw []byte) (string, error) {
	binary, err := vision.Normalize(raw)
	if err != nil {
		return "", err
	}
	defer binary.Close()

	boxes := vision.SegmentDigits(binary)
	if len(boxes) == 0 {
		return "", nil
	}

	glyphs := vision.CropGlyphs(binary, boxes)
	defer vision.CloseGlyphs(glyphs)

	probs, err := s.classifier.Classify(ctx, glyphs)
	if err != nil {
		return "", fmt.Errorf("classification failed: %w", err)
	}

	return classifier.Candidate(probs), nil
}
