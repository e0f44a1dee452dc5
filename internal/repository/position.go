package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"regatta-tracker/internal/db"
	"regatta-tracker/internal/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type PositionRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewPositionRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *PositionRepository {
	return &PositionRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

// RecordFinish commits one finish: it assigns the next arrival rank in the
// race, inserts the Position, bumps the competitor's running total and
// rewrites their net score under the discard rule. Everything runs in a single
// serializable transaction so concurrent finishes for the same race cannot
// observe the same rank or a stale aggregate.
func (r *PositionRepository) RecordFinish(ctx context.Context, race *domain.Race, competitorID string) (*domain.Position, *domain.Competitor, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)

	_, err = qtx.GetPositionByRaceAndCompetitor(ctx, db.GetPositionByRaceAndCompetitorParams{
		RaceID:       race.ID,
		CompetitorID: competitorID,
	})
	if err == nil {
		return nil, nil, ErrDuplicateFinish
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, nil, fmt.Errorf("failed to check for existing finish: %w", err)
	}

	finished, err := qtx.CountPositionsByRace(ctx, race.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to count race finishes: %w", err)
	}
	points := finished + 1

	now := time.Now().UTC()
	position := &domain.Position{
		ID:           uuid.New().String(),
		Points:       points,
		RaceID:       race.ID,
		CompetitorID: competitorID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = qtx.CreatePosition(ctx, db.CreatePositionParams{
		ID:           position.ID,
		Points:       position.Points,
		RaceID:       position.RaceID,
		CompetitorID: position.CompetitorID,
		CreatedAt:    position.CreatedAt,
		UpdatedAt:    position.UpdatedAt,
	})
	// The unique (race_id, competitor_id) index backstops the pre-check above:
	// a concurrent duplicate lands here as a constraint violation rather than
	// as a second Position.
	if isUniqueViolation(err) {
		return nil, nil, ErrDuplicateFinish
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to insert position: %w", err)
	}

	competitorRow, err := qtx.GetCompetitor(ctx, competitorID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, ErrCompetitorNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load competitor: %w", err)
	}

	total := competitorRow.TotalPoints + points

	raceCount, err := qtx.CountRacesByCompetition(ctx, race.CompetitionID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to count races: %w", err)
	}

	// The discard recompute reads the full current history at commit time,
	// including the Position inserted above.
	finishes, err := qtx.ListPositionsByCompetitor(ctx, competitorID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load finish history: %w", err)
	}
	history := make([]int64, len(finishes))
	for i, f := range finishes {
		history[i] = f.Points
	}

	net := domain.NetPoints(total, history, raceCount)

	if err := qtx.UpdateCompetitorPoints(ctx, db.UpdateCompetitorPointsParams{
		TotalPoints: total,
		NetPoints:   net,
		UpdatedAt:   now,
		ID:          competitorID,
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to update competitor points: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit finish: %w", err)
	}

	competitor := toDomainCompetitor(competitorRow)
	competitor.TotalPoints = total
	competitor.NetPoints = net
	competitor.UpdatedAt = now

	r.logger.Info().
		Str("race_id", race.ID).
		Str("competitor_id", competitorID).
		Int64("points", points).
		Int64("total_points", total).
		Int64("net_points", net).
		Msg("finish recorded")

	return position, &competitor, nil
}

func (r *PositionRepository) Get(ctx context.Context, id string) (*domain.Position, error) {
	position, err := r.queries.GetPosition(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPositionNotFound
	}
	if err != nil {
		return nil, err
	}
	p := toDomainPosition(position)
	return &p, nil
}

func (r *PositionRepository) List(ctx context.Context) ([]domain.Position, error) {
	positions, err := r.queries.ListPositions(ctx)
	if err != nil {
		return nil, err
	}
	return toDomainPositions(positions), nil
}

func (r *PositionRepository) ListByRace(ctx context.Context, raceID string) ([]domain.Position, error) {
	positions, err := r.queries.ListPositionsByRace(ctx, raceID)
	if err != nil {
		return nil, err
	}
	return toDomainPositions(positions), nil
}

func (r *PositionRepository) ListByCompetitor(ctx context.Context, competitorID string) ([]domain.Position, error) {
	positions, err := r.queries.ListPositionsByCompetitor(ctx, competitorID)
	if err != nil {
		return nil, err
	}
	return toDomainPositions(positions), nil
}

func (r *PositionRepository) Delete(ctx context.Context, id string) error {
	affected, err := r.queries.DeletePosition(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrPositionNotFound
	}
	return nil
}

func toDomainPosition(p db.Position) domain.Position {
	return domain.Position{
		ID:           p.ID,
		Points:       p.Points,
		RaceID:       p.RaceID,
		CompetitorID: p.CompetitorID,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toDomainPositions(positions []db.Position) []domain.Position {
	result := make([]domain.Position, len(positions))
	for i, p := range positions {
		result[i] = toDomainPosition(p)
	}
	return result
}
