package service

import (
	"context"
	"fmt"

	"regatta-tracker/internal/domain"
	"regatta-tracker/internal/repository"

	"github.com/rs/zerolog"
)

type CompetitorService struct {
	repo            *repository.CompetitorRepository
	competitionRepo *repository.CompetitionRepository
	positionRepo    *repository.PositionRepository
	logger          zerolog.Logger
}

func NewCompetitorService(repo *repository.CompetitorRepository, competitionRepo *repository.CompetitionRepository, positionRepo *repository.PositionRepository, logger zerolog.Logger) *CompetitorService {
	return &CompetitorService{
		repo:            repo,
		competitionRepo: competitionRepo,
		positionRepo:    positionRepo,
		logger:          logger,
	}
}

func (s *CompetitorService) Create(ctx context.Context, competitor *domain.Competitor) error {
	if err := validateCompetitor(competitor); err != nil {
		return err
	}

	if _, err := s.competitionRepo.Get(ctx, competitor.CompetitionID); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, competitor); err != nil {
		return err
	}

	s.logger.Info().
		Str("competitor_id", competitor.ID).
		Int64("sail_nr", competitor.SailNr).
		Str("competition_id", competitor.CompetitionID).
		Msg("competitor registered")
	return nil
}

func (s *CompetitorService) Get(ctx context.Context, id string) (*domain.Competitor, error) {
	return s.repo.Get(ctx, id)
}

func (s *CompetitorService) List(ctx context.Context) ([]domain.Competitor, error) {
	return s.repo.List(ctx)
}

// Positions returns a competitor's full finish history, worst first.
func (s *CompetitorService) Positions(ctx context.Context, id string) ([]domain.Position, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.positionRepo.ListByCompetitor(ctx, id)
}

func (s *CompetitorService) Update(ctx context.Context, competitor *domain.Competitor) error {
	if err := validateCompetitor(competitor); err != nil {
		return err
	}
	return s.repo.Update(ctx, competitor)
}

func (s *CompetitorService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func validateCompetitor(competitor *domain.Competitor) error {
	if competitor.FirstName == "" || competitor.LastName == "" {
		return fmt.Errorf("%w: first and last name are required", ErrInvalidInput)
	}
	if !competitor.Country.Valid() {
		return fmt.Errorf("%w: unknown country %q", ErrInvalidInput, competitor.Country)
	}
	if !competitor.Club.Valid() {
		return fmt.Errorf("%w: unknown club %q", ErrInvalidInput, competitor.Club)
	}
	if competitor.SailNr <= 0 {
		return fmt.Errorf("%w: sail number must be positive", ErrInvalidInput)
	}
	return nil
}
