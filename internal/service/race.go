package service

import (
	"context"

	"regatta-tracker/internal/domain"
	"regatta-tracker/internal/repository"

	"github.com/rs/zerolog"
)

type RaceService struct {
	repo            *repository.RaceRepository
	competitionRepo *repository.CompetitionRepository
	positionRepo    *repository.PositionRepository
	logger          zerolog.Logger
}

func NewRaceService(repo *repository.RaceRepository, competitionRepo *repository.CompetitionRepository, positionRepo *repository.PositionRepository, logger zerolog.Logger) *RaceService {
	return &RaceService{
		repo:            repo,
		competitionRepo: competitionRepo,
		positionRepo:    positionRepo,
		logger:          logger,
	}
}

// Create adds the next race to a competition; the race number is assigned
// server-side from the current race count.
func (s *RaceService) Create(ctx context.Context, race *domain.Race) error {
	if _, err := s.competitionRepo.Get(ctx, race.CompetitionID); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, race); err != nil {
		return err
	}

	s.logger.Info().
		Str("race_id", race.ID).
		Int64("race_nr", race.RaceNr).
		Str("competition_id", race.CompetitionID).
		Msg("race created")
	return nil
}

func (s *RaceService) Get(ctx context.Context, id string) (*domain.Race, error) {
	return s.repo.Get(ctx, id)
}

func (s *RaceService) List(ctx context.Context) ([]domain.Race, error) {
	return s.repo.List(ctx)
}

// Positions returns the recorded finishes of a race in rank order.
func (s *RaceService) Positions(ctx context.Context, id string) ([]domain.Position, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.positionRepo.ListByRace(ctx, id)
}

func (s *RaceService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
