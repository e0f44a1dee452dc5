package domain

import (
	"time"
)

// Boat is the class of boat sailed in a competition.
type Boat string

const (
	BoatILCA4 Boat = "ILCA_4"
	BoatILCA6 Boat = "ILCA_6"
	BoatILCA7 Boat = "ILCA_7"
)

func Boats() []Boat {
	return []Boat{BoatILCA4, BoatILCA6, BoatILCA7}
}

func (b Boat) Valid() bool {
	switch b {
	case BoatILCA4, BoatILCA6, BoatILCA7:
		return true
	}
	return false
}

// Country is the national team a competitor sails for.
type Country string

const (
	CountryGER Country = "GER"
	CountryGRE Country = "GRE"
	CountryITA Country = "ITA"
	CountryNL  Country = "NL"
)

func Countries() []Country {
	return []Country{CountryGER, CountryGRE, CountryITA, CountryNL}
}

func (c Country) Valid() bool {
	switch c {
	case CountryGER, CountryGRE, CountryITA, CountryNL:
		return true
	}
	return false
}

// Club is the sailing club a competitor belongs to.
type Club string

const (
	ClubNOC     Club = "NOC"
	ClubANOG    Club = "ANOG"
	ClubSEANATK Club = "SEANATK"
)

func Clubs() []Club {
	return []Club{ClubNOC, ClubANOG, ClubSEANATK}
}

func (c Club) Valid() bool {
	switch c {
	case ClubNOC, ClubANOG, ClubSEANATK:
		return true
	}
	return false
}

// Competition groups the races and competitors of one regatta.
type Competition struct {
	ID        string
	Title     string
	Boat      Boat
	StartDate time.Time
	EndDate   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Competitor is one registered entry in a competition, identified within it by
// sail number. TotalPoints only ever grows; NetPoints is derived and rewritten
// on every scoring event.
type Competitor struct {
	ID            string
	FirstName     string
	LastName      string
	Country       Country
	Club          Club
	SailNr        int64
	TotalPoints   int64
	NetPoints     int64
	CompetitionID string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Race is one start within a competition. RaceNr is assigned at creation as
// the count of existing races in the competition plus one.
type Race struct {
	ID            string
	RaceNr        int64
	CompetitionID string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Position records a competitor crossing the finish line of a race. Points
// equal the arrival rank (1 for the first finisher). At most one Position
// exists per (race, competitor) pair; a Position is never updated, only
// deleted.
type Position struct {
	ID           string
	Points       int64
	RaceID       string
	CompetitorID string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
