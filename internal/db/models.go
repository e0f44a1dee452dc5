package db

import "time"

type Competition struct {
	ID        string
	Title     string
	Boat      string
	StartDate time.Time
	EndDate   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Competitor struct {
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

type Race struct {
	ID            string
	RaceNr        int64
	CompetitionID string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Position struct {
	ID           string
	Points       int64
	RaceID       string
	CompetitorID string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
