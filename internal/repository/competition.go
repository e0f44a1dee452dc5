package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"regatta-tracker/internal/db"
	"regatta-tracker/internal/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type CompetitionRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewCompetitionRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *CompetitionRepository {
	return &CompetitionRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

func (r *CompetitionRepository) Create(ctx context.Context, competition *domain.Competition) error {
	now := time.Now().UTC()
	competition.ID = uuid.New().String()
	competition.CreatedAt = now
	competition.UpdatedAt = now

	return r.queries.CreateCompetition(ctx, db.CreateCompetitionParams{
		ID:        competition.ID,
		Title:     competition.Title,
		Boat:      string(competition.Boat),
		StartDate: competition.StartDate,
		EndDate:   competition.EndDate,
		CreatedAt: competition.CreatedAt,
		UpdatedAt: competition.UpdatedAt,
	})
}

func (r *CompetitionRepository) Get(ctx context.Context, id string) (*domain.Competition, error) {
	competition, err := r.queries.GetCompetition(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCompetitionNotFound
	}
	if err != nil {
		return nil, err
	}
	c := toDomainCompetition(competition)
	return &c, nil
}

func (r *CompetitionRepository) List(ctx context.Context) ([]domain.Competition, error) {
	competitions, err := r.queries.ListCompetitions(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Competition, len(competitions))
	for i, c := range competitions {
		result[i] = toDomainCompetition(c)
	}
	return result, nil
}

func (r *CompetitionRepository) Update(ctx context.Context, competition *domain.Competition) error {
	affected, err := r.queries.UpdateCompetition(ctx, db.UpdateCompetitionParams{
		Title:     competition.Title,
		Boat:      string(competition.Boat),
		StartDate: competition.StartDate,
		EndDate:   competition.EndDate,
		UpdatedAt: time.Now().UTC(),
		ID:        competition.ID,
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCompetitionNotFound
	}
	return nil
}

func (r *CompetitionRepository) Delete(ctx context.Context, id string) error {
	affected, err := r.queries.DeleteCompetition(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCompetitionNotFound
	}
	return nil
}

func toDomainCompetition(c db.Competition) domain.Competition {
	return domain.Competition{
		ID:        c.ID,
		Title:     c.Title,
		Boat:      domain.Boat(c.Boat),
		StartDate: c.StartDate,
		EndDate:   c.EndDate,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
