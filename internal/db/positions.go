package db

import (
	"context"
	"time"
)

const createPosition = `
INSERT INTO positions (id, points, race_id, competitor_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
`

type CreatePositionParams struct {
	ID           string
	Points       int64
	RaceID       string
	CompetitorID string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (q *Queries) CreatePosition(ctx context.Context, arg CreatePositionParams) error {
	_, err := q.db.ExecContext(ctx, createPosition,
		arg.ID, arg.Points, arg.RaceID, arg.CompetitorID, arg.CreatedAt, arg.UpdatedAt)
	return err
}

const getPosition = `
SELECT id, points, race_id, competitor_id, created_at, updated_at
FROM positions WHERE id = ?
`

func (q *Queries) GetPosition(ctx context.Context, id string) (Position, error) {
	row := q.db.QueryRowContext(ctx, getPosition, id)
	var p Position
	err := row.Scan(&p.ID, &p.Points, &p.RaceID, &p.CompetitorID, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

const getPositionByRaceAndCompetitor = `
SELECT id, points, race_id, competitor_id, created_at, updated_at
FROM positions WHERE race_id = ? AND competitor_id = ?
`

type GetPositionByRaceAndCompetitorParams struct {
	RaceID       string
	CompetitorID string
}

func (q *Queries) GetPositionByRaceAndCompetitor(ctx context.Context, arg GetPositionByRaceAndCompetitorParams) (Position, error) {
	row := q.db.QueryRowContext(ctx, getPositionByRaceAndCompetitor, arg.RaceID, arg.CompetitorID)
	var p Position
	err := row.Scan(&p.ID, &p.Points, &p.RaceID, &p.CompetitorID, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

const listPositions = `
SELECT id, points, race_id, competitor_id, created_at, updated_at
FROM positions ORDER BY created_at
`

func (q *Queries) ListPositions(ctx context.Context) ([]Position, error) {
	return q.queryPositions(ctx, listPositions)
}

const listPositionsByRace = `
SELECT id, points, race_id, competitor_id, created_at, updated_at
FROM positions WHERE race_id = ? ORDER BY points
`

func (q *Queries) ListPositionsByRace(ctx context.Context, raceID string) ([]Position, error) {
	return q.queryPositions(ctx, listPositionsByRace, raceID)
}

const listPositionsByCompetitor = `
SELECT id, points, race_id, competitor_id, created_at, updated_at
FROM positions WHERE competitor_id = ? ORDER BY points DESC
`

// ListPositionsByCompetitor returns a competitor's full finish history, worst
// results first, which is the order the discard recomputation consumes.
func (q *Queries) ListPositionsByCompetitor(ctx context.Context, competitorID string) ([]Position, error) {
	return q.queryPositions(ctx, listPositionsByCompetitor, competitorID)
}

const countPositionsByRace = `
SELECT COUNT(*) FROM positions WHERE race_id = ?
`

func (q *Queries) CountPositionsByRace(ctx context.Context, raceID string) (int64, error) {
	row := q.db.QueryRowContext(ctx, countPositionsByRace, raceID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const deletePosition = `
DELETE FROM positions WHERE id = ?
`

func (q *Queries) DeletePosition(ctx context.Context, id string) (int64, error) {
	res, err := q.db.ExecContext(ctx, deletePosition, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (q *Queries) queryPositions(ctx context.Context, query string, args ...any) ([]Position, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Position
	for rows.Next() {
		var p Position
		if err := rows.Scan(&p.ID, &p.Points, &p.RaceID, &p.CompetitorID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}
