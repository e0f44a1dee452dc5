package service

import (
	"context"

	"regatta-tracker/internal/domain"
	"regatta-tracker/internal/repository"

	"github.com/rs/zerolog"
)

// PositionService is the read-and-delete surface over recorded finishes.
// Positions are only ever created by the ranking engine and never updated;
// rescoring happens through the discard recomputation, not by editing points.
type PositionService struct {
	repo   *repository.PositionRepository
	logger zerolog.Logger
}

func NewPositionService(repo *repository.PositionRepository, logger zerolog.Logger) *PositionService {
	return &PositionService{repo: repo, logger: logger}
}

func (s *PositionService) Get(ctx context.Context, id string) (*domain.Position, error) {
	return s.repo.Get(ctx, id)
}

func (s *PositionService) List(ctx context.Context) ([]domain.Position, error) {
	return s.repo.List(ctx)
}

func (s *PositionService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("position_id", id).Msg("position deleted")
	return nil
}
