package service

import (
	"context"
	"fmt"
	"sort"

	"regatta-tracker/internal/constants"
	"regatta-tracker/internal/domain"
	"regatta-tracker/internal/repository"

	"github.com/rs/zerolog"
)

type CompetitionService struct {
	repo           *repository.CompetitionRepository
	competitorRepo *repository.CompetitorRepository
	raceRepo       *repository.RaceRepository
	logger         zerolog.Logger
}

func NewCompetitionService(repo *repository.CompetitionRepository, competitorRepo *repository.CompetitorRepository, raceRepo *repository.RaceRepository, logger zerolog.Logger) *CompetitionService {
	return &CompetitionService{
		repo:           repo,
		competitorRepo: competitorRepo,
		raceRepo:       raceRepo,
		logger:         logger,
	}
}

func (s *CompetitionService) Create(ctx context.Context, competition *domain.Competition) error {
	if err := validateCompetition(competition); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, competition); err != nil {
		return err
	}

	s.logger.Info().
		Str("competition_id", competition.ID).
		Str("title", competition.Title).
		Str("boat", string(competition.Boat)).
		Msg("competition created")
	return nil
}

func (s *CompetitionService) Get(ctx context.Context, id string) (*domain.Competition, error) {
	return s.repo.Get(ctx, id)
}

func (s *CompetitionService) List(ctx context.Context) ([]domain.Competition, error) {
	return s.repo.List(ctx)
}

// Standings returns the competition's current ranking: competitors ordered by
// net points (lowest first, as in low-point scoring), ties broken by total
// points then sail number, plus the number of races sailed so far.
func (s *CompetitionService) Standings(ctx context.Context, id string) ([]domain.Competitor, int64, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, 0, err
	}

	competitors, err := s.competitorRepo.ListByCompetition(ctx, id)
	if err != nil {
		return nil, 0, err
	}

	raceCount, err := s.raceRepo.CountByCompetition(ctx, id)
	if err != nil {
		return nil, 0, err
	}

	sort.SliceStable(competitors, func(i, j int) bool {
		a, b := competitors[i], competitors[j]
		if a.NetPoints != b.NetPoints {
			return a.NetPoints < b.NetPoints
		}
		if a.TotalPoints != b.TotalPoints {
			return a.TotalPoints < b.TotalPoints
		}
		return a.SailNr < b.SailNr
	})

	return competitors, raceCount, nil
}

func (s *CompetitionService) Update(ctx context.Context, competition *domain.Competition) error {
	if err := validateCompetition(competition); err != nil {
		return err
	}
	return s.repo.Update(ctx, competition)
}

func (s *CompetitionService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func validateCompetition(competition *domain.Competition) error {
	if competition.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if len(competition.Title) > constants.MaxTitleLength {
		return fmt.Errorf("%w: title exceeds %d characters", ErrInvalidInput, constants.MaxTitleLength)
	}
	if !competition.Boat.Valid() {
		return fmt.Errorf("%w: unknown boat class %q", ErrInvalidInput, competition.Boat)
	}
	if competition.EndDate.Before(competition.StartDate) {
		return fmt.Errorf("%w: end date before start date", ErrInvalidInput)
	}
	return nil
}
