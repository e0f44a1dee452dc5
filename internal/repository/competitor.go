package repository

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"regatta-tracker/internal/db"
	"regatta-tracker/internal/domain"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
)

type CompetitorRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewCompetitorRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *CompetitorRepository {
	return &CompetitorRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

func (r *CompetitorRepository) Create(ctx context.Context, competitor *domain.Competitor) error {
	now := time.Now().UTC()
	competitor.ID = uuid.New().String()
	competitor.CreatedAt = now
	competitor.UpdatedAt = now

	err := r.queries.CreateCompetitor(ctx, db.CreateCompetitorParams{
		ID:            competitor.ID,
		FirstName:     competitor.FirstName,
		LastName:      competitor.LastName,
		Country:       string(competitor.Country),
		Club:          string(competitor.Club),
		SailNr:        competitor.SailNr,
		TotalPoints:   0,
		NetPoints:     0,
		CompetitionID: competitor.CompetitionID,
		CreatedAt:     competitor.CreatedAt,
		UpdatedAt:     competitor.UpdatedAt,
	})
	if isUniqueViolation(err) {
		return ErrDuplicateSailNr
	}
	return err
}

func (r *CompetitorRepository) Get(ctx context.Context, id string) (*domain.Competitor, error) {
	competitor, err := r.queries.GetCompetitor(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCompetitorNotFound
	}
	if err != nil {
		return nil, err
	}
	c := toDomainCompetitor(competitor)
	return &c, nil
}

func (r *CompetitorRepository) GetBySailNr(ctx context.Context, competitionID string, sailNr int64) (*domain.Competitor, error) {
	competitor, err := r.queries.GetCompetitorBySailNr(ctx, db.GetCompetitorBySailNrParams{
		CompetitionID: competitionID,
		SailNr:        sailNr,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCompetitorNotFound
	}
	if err != nil {
		return nil, err
	}
	c := toDomainCompetitor(competitor)
	return &c, nil
}

func (r *CompetitorRepository) List(ctx context.Context) ([]domain.Competitor, error) {
	competitors, err := r.queries.ListCompetitors(ctx)
	if err != nil {
		return nil, err
	}
	return toDomainCompetitors(competitors), nil
}

func (r *CompetitorRepository) ListByCompetition(ctx context.Context, competitionID string) ([]domain.Competitor, error) {
	competitors, err := r.queries.ListCompetitorsByCompetition(ctx, competitionID)
	if err != nil {
		return nil, err
	}
	return toDomainCompetitors(competitors), nil
}

// SailNumbers returns the universe of registered sail numbers for a
// competition, rendered as strings for the fuzzy matcher.
func (r *CompetitorRepository) SailNumbers(ctx context.Context, competitionID string) ([]string, error) {
	nrs, err := r.queries.ListCompetitorSailNrs(ctx, competitionID)
	if err != nil {
		return nil, err
	}

	result := make([]string, len(nrs))
	for i, nr := range nrs {
		result[i] = strconv.FormatInt(nr, 10)
	}
	return result, nil
}

func (r *CompetitorRepository) Update(ctx context.Context, competitor *domain.Competitor) error {
	affected, err := r.queries.UpdateCompetitor(ctx, db.UpdateCompetitorParams{
		FirstName: competitor.FirstName,
		LastName:  competitor.LastName,
		Country:   string(competitor.Country),
		Club:      string(competitor.Club),
		SailNr:    competitor.SailNr,
		UpdatedAt: time.Now().UTC(),
		ID:        competitor.ID,
	})
	if isUniqueViolation(err) {
		return ErrDuplicateSailNr
	}
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCompetitorNotFound
	}
	return nil
}

func (r *CompetitorRepository) Delete(ctx context.Context, id string) error {
	affected, err := r.queries.DeleteCompetitor(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCompetitorNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}

func toDomainCompetitor(c db.Competitor) domain.Competitor {
	return domain.Competitor{
		ID:            c.ID,
		FirstName:     c.FirstName,
		LastName:      c.LastName,
		Country:       domain.Country(c.Country),
		Club:          domain.Club(c.Club),
		SailNr:        c.SailNr,
		TotalPoints:   c.TotalPoints,
		NetPoints:     c.NetPoints,
		CompetitionID: c.CompetitionID,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func toDomainCompetitors(competitors []db.Competitor) []domain.Competitor {
	result := make([]domain.Competitor, len(competitors))
	for i, c := range competitors {
		result[i] = toDomainCompetitor(c)
	}
	return result
}
