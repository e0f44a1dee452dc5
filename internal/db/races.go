package db

import (
	"context"
	"time"
)

const createRace = `
INSERT INTO races (id, race_nr, competition_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)
`

type CreateRaceParams struct {
	ID            string
	RaceNr        int64
	CompetitionID string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (q *Queries) CreateRace(ctx context.Context, arg CreateRaceParams) error {
	_, err := q.db.ExecContext(ctx, createRace,
		arg.ID, arg.RaceNr, arg.CompetitionID, arg.CreatedAt, arg.UpdatedAt)
	return err
}

const getRace = `
SELECT id, race_nr, competition_id, created_at, updated_at
FROM races WHERE id = ?
`

func (q *Queries) GetRace(ctx context.Context, id string) (Race, error) {
	row := q.db.QueryRowContext(ctx, getRace, id)
	var r Race
	err := row.Scan(&r.ID, &r.RaceNr, &r.CompetitionID, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

const listRaces = `
SELECT id, race_nr, competition_id, created_at, updated_at
FROM races ORDER BY competition_id, race_nr
`

func (q *Queries) ListRaces(ctx context.Context) ([]Race, error) {
	rows, err := q.db.QueryContext(ctx, listRaces)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Race
	for rows.Next() {
		var r Race
		if err := rows.Scan(&r.ID, &r.RaceNr, &r.CompetitionID, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const countRacesByCompetition = `
SELECT COUNT(*) FROM races WHERE competition_id = ?
`

func (q *Queries) CountRacesByCompetition(ctx context.Context, competitionID string) (int64, error) {
	row := q.db.QueryRowContext(ctx, countRacesByCompetition, competitionID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const deleteRace = `
DELETE FROM races WHERE id = ?
`

func (q *Queries) DeleteRace(ctx context.Context, id string) (int64, error) {
	res, err := q.db.ExecContext(ctx, deleteRace, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
