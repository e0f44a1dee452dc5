package db

import (
	"context"
	"time"
)

const createCompetition = `
INSERT INTO competitions (id, title, boat, start_date, end_date, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
`

type CreateCompetitionParams struct {
	ID        string
	Title     string
	Boat      string
	StartDate time.Time
	EndDate   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (q *Queries) CreateCompetition(ctx context.Context, arg CreateCompetitionParams) error {
	_, err := q.db.ExecContext(ctx, createCompetition,
		arg.ID, arg.Title, arg.Boat, arg.StartDate, arg.EndDate, arg.CreatedAt, arg.UpdatedAt)
	return err
}

const getCompetition = `
SELECT id, title, boat, start_date, end_date, created_at, updated_at
FROM competitions WHERE id = ?
`

func (q *Queries) GetCompetition(ctx context.Context, id string) (Competition, error) {
	row := q.db.QueryRowContext(ctx, getCompetition, id)
	var c Competition
	err := row.Scan(&c.ID, &c.Title, &c.Boat, &c.StartDate, &c.EndDate, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

const listCompetitions = `
SELECT id, title, boat, start_date, end_date, created_at, updated_at
FROM competitions ORDER BY start_date
`

func (q *Queries) ListCompetitions(ctx context.Context) ([]Competition, error) {
	rows, err := q.db.QueryContext(ctx, listCompetitions)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Competition
	for rows.Next() {
		var c Competition
		if err := rows.Scan(&c.ID, &c.Title, &c.Boat, &c.StartDate, &c.EndDate, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

const updateCompetition = `
UPDATE competitions SET title = ?, boat = ?, start_date = ?, end_date = ?, updated_at = ?
WHERE id = ?
`

type UpdateCompetitionParams struct {
	Title     string
	Boat      string
	StartDate time.Time
	EndDate   time.Time
	UpdatedAt time.Time
	ID        string
}

func (q *Queries) UpdateCompetition(ctx context.Context, arg UpdateCompetitionParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, updateCompetition,
		arg.Title, arg.Boat, arg.StartDate, arg.EndDate, arg.UpdatedAt, arg.ID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const deleteCompetition = `
DELETE FROM competitions WHERE id = ?
`

func (q *Queries) DeleteCompetition(ctx context.Context, id string) (int64, error) {
	res, err := q.db.ExecContext(ctx, deleteCompetition, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
