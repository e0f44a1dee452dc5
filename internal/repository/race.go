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

type RaceRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewRaceRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *RaceRepository {
	return &RaceRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

// Create inserts a race with the next ordinal race number in its competition.
// The count and the insert run in one transaction so two concurrent creates
// cannot claim the same race_nr; the unique (competition_id, race_nr) index
// rejects the loser.
func (r *RaceRepository) Create(ctx context.Context, race *domain.Race) error {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)

	count, err := qtx.CountRacesByCompetition(ctx, race.CompetitionID)
	if err != nil {
		return fmt.Errorf("failed to count races: %w", err)
	}

	now := time.Now().UTC()
	race.ID = uuid.New().String()
	race.RaceNr = count + 1
	race.CreatedAt = now
	race.UpdatedAt = now

	if err := qtx.CreateRace(ctx, db.CreateRaceParams{
		ID:            race.ID,
		RaceNr:        race.RaceNr,
		CompetitionID: race.CompetitionID,
		CreatedAt:     race.CreatedAt,
		UpdatedAt:     race.UpdatedAt,
	}); err != nil {
		return fmt.Errorf("failed to insert race: %w", err)
	}

	return tx.Commit()
}

func (r *RaceRepository) Get(ctx context.Context, id string) (*domain.Race, error) {
	race, err := r.queries.GetRace(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRaceNotFound
	}
	if err != nil {
		return nil, err
	}
	result := toDomainRace(race)
	return &result, nil
}

func (r *RaceRepository) List(ctx context.Context) ([]domain.Race, error) {
	races, err := r.queries.ListRaces(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Race, len(races))
	for i, race := range races {
		result[i] = toDomainRace(race)
	}
	return result, nil
}

func (r *RaceRepository) CountByCompetition(ctx context.Context, competitionID string) (int64, error) {
	return r.queries.CountRacesByCompetition(ctx, competitionID)
}

func (r *RaceRepository) Delete(ctx context.Context, id string) error {
	affected, err := r.queries.DeleteRace(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRaceNotFound
	}
	return nil
}

func toDomainRace(race db.Race) domain.Race {
	return domain.Race{
		ID:            race.ID,
		RaceNr:        race.RaceNr,
		CompetitionID: race.CompetitionID,
		CreatedAt:     race.CreatedAt,
		UpdatedAt:     race.UpdatedAt,
	}
}
