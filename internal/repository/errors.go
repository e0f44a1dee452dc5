package repository

import "errors"

var (
	ErrCompetitionNotFound = errors.New("competition not found")
	ErrCompetitorNotFound  = errors.New("competitor not found")
	ErrRaceNotFound        = errors.New("race not found")
	ErrPositionNotFound    = errors.New("position not found")

	// ErrDuplicateFinish means a (race, competitor) pair already has a
	// recorded Position. Callers treat it as a safe no-op, not a failure.
	ErrDuplicateFinish = errors.New("competitor has already finished this race")

	// ErrDuplicateSailNr means the sail number is already registered in the
	// competition.
	ErrDuplicateSailNr = errors.New("sail number already registered in competition")
)
