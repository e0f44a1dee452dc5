package service

import (
	"context"
	"fmt"

	"regatta-tracker/internal/domain"
	"regatta-tracker/internal/repository"

	"github.com/rs/zerolog"
)

// RankingService is the invariant-bearing core: it validates a resolved
// finish and commits the rank assignment plus the discard-adjusted score
// update through the position repository's transactional path.
type RankingService struct {
	raceRepo       *repository.RaceRepository
	competitorRepo *repository.CompetitorRepository
	positionRepo   *repository.PositionRepository
	logger         zerolog.Logger
}

func NewRankingService(raceRepo *repository.RaceRepository, competitorRepo *repository.CompetitorRepository, positionRepo *repository.PositionRepository, logger zerolog.Logger) *RankingService {
	return &RankingService{
		raceRepo:       raceRepo,
		competitorRepo: competitorRepo,
		positionRepo:   positionRepo,
		logger:         logger,
	}
}

// RecordFinish records that the competitor with the given sail number crossed
// the line of the given race. Returns repository.ErrRaceNotFound,
// repository.ErrCompetitorNotFound or repository.ErrDuplicateFinish when the
// corresponding validation fails; on ErrDuplicateFinish no state changed.
func (s *RankingService) RecordFinish(ctx context.Context, raceID string, sailNr int64) (*domain.Position, *domain.Competitor, error) {
	race, err := s.raceRepo.Get(ctx, raceID)
	if err != nil {
		return nil, nil, err
	}

	competitor, err := s.competitorRepo.GetBySailNr(ctx, race.CompetitionID, sailNr)
	if err != nil {
		return nil, nil, err
	}

	position, updated, err := s.positionRepo.RecordFinish(ctx, race, competitor.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to record finish for sail %d in race %d: %w", sailNr, race.RaceNr, err)
	}

	return position, updated, nil
}
