package db

import (
	"context"
	"time"
)

const createCompetitor = `
INSERT INTO competitors (id, first_name, last_name, country, club, sail_nr, total_points, net_points, competition_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

type CreateCompetitorParams struct {
	ID            string
	FirstName     string
	LastName      string
	Country       string
	Club          string
	SailNr        int64
	TotalPoints   int64
	NetPoints     int64
	CompetitionID string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (q *Queries) CreateCompetitor(ctx context.Context, arg CreateCompetitorParams) error {
	_, err := q.db.ExecContext(ctx, createCompetitor,
		arg.ID, arg.FirstName, arg.LastName, arg.Country, arg.Club, arg.SailNr,
		arg.TotalPoints, arg.NetPoints, arg.CompetitionID, arg.CreatedAt, arg.UpdatedAt)
	return err
}

const getCompetitor = `
SELECT id, first_name, last_name, country, club, sail_nr, total_points, net_points, competition_id, created_at, updated_at
FROM competitors WHERE id = ?
`

func (q *Queries) GetCompetitor(ctx context.Context, id string) (Competitor, error) {
	return scanCompetitor(q.db.QueryRowContext(ctx, getCompetitor, id))
}

const getCompetitorBySailNr = `
SELECT id, first_name, last_name, country, club, sail_nr, total_points, net_points, competition_id, created_at, updated_at
FROM competitors WHERE competition_id = ? AND sail_nr = ?
`

type GetCompetitorBySailNrParams struct {
	CompetitionID string
	SailNr        int64
}

func (q *Queries) GetCompetitorBySailNr(ctx context.Context, arg GetCompetitorBySailNrParams) (Competitor, error) {
	return scanCompetitor(q.db.QueryRowContext(ctx, getCompetitorBySailNr, arg.CompetitionID, arg.SailNr))
}

const listCompetitors = `
SELECT id, first_name, last_name, country, club, sail_nr, total_points, net_points, competition_id, created_at, updated_at
FROM competitors ORDER BY sail_nr
`

func (q *Queries) ListCompetitors(ctx context.Context) ([]Competitor, error) {
	return q.queryCompetitors(ctx, listCompetitors)
}

const listCompetitorsByCompetition = `
SELECT id, first_name, last_name, country, club, sail_nr, total_points, net_points, competition_id, created_at, updated_at
FROM competitors WHERE competition_id = ? ORDER BY sail_nr
`

func (q *Queries) ListCompetitorsByCompetition(ctx context.Context, competitionID string) ([]Competitor, error) {
	return q.queryCompetitors(ctx, listCompetitorsByCompetition, competitionID)
}

const listCompetitorSailNrs = `
SELECT sail_nr FROM competitors WHERE competition_id = ? ORDER BY sail_nr
`

func (q *Queries) ListCompetitorSailNrs(ctx context.Context, competitionID string) ([]int64, error) {
	rows, err := q.db.QueryContext(ctx, listCompetitorSailNrs, competitionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []int64
	for rows.Next() {
		var nr int64
		if err := rows.Scan(&nr); err != nil {
			return nil, err
		}
		items = append(items, nr)
	}
	return items, rows.Err()
}

const updateCompetitor = `
UPDATE competitors SET first_name = ?, last_name = ?, country = ?, club = ?, sail_nr = ?, updated_at = ?
WHERE id = ?
`

type UpdateCompetitorParams struct {
	FirstName string
	LastName  string
	Country   string
	Club      string
	SailNr    int64
	UpdatedAt time.Time
	ID        string
}

func (q *Queries) UpdateCompetitor(ctx context.Context, arg UpdateCompetitorParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, updateCompetitor,
		arg.FirstName, arg.LastName, arg.Country, arg.Club, arg.SailNr, arg.UpdatedAt, arg.ID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const updateCompetitorPoints = `
UPDATE competitors SET total_points = ?, net_points = ?, updated_at = ?
WHERE id = ?
`

type UpdateCompetitorPointsParams struct {
	TotalPoints int64
	NetPoints   int64
	UpdatedAt   time.Time
	ID          string
}

func (q *Queries) UpdateCompetitorPoints(ctx context.Context, arg UpdateCompetitorPointsParams) error {
	_, err := q.db.ExecContext(ctx, updateCompetitorPoints,
		arg.TotalPoints, arg.NetPoints, arg.UpdatedAt, arg.ID)
	return err
}

const deleteCompetitor = `
DELETE FROM competitors WHERE id = ?
`

func (q *Queries) DeleteCompetitor(ctx context.Context, id string) (int64, error) {
	res, err := q.db.ExecContext(ctx, deleteCompetitor, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCompetitor(row rowScanner) (Competitor, error) {
	var c Competitor
	err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Country, &c.Club, &c.SailNr,
		&c.TotalPoints, &c.NetPoints, &c.CompetitionID, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (q *Queries) queryCompetitors(ctx context.Context, query string, args ...any) ([]Competitor, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Competitor
	for rows.Next() {
		c, err := scanCompetitor(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}
