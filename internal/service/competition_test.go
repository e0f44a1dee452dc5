package service_test

import (
	"context"
	"testing"

	"regatta-tracker/internal/repository"

	. "github.com/smartystreets/goconvey/convey"
)

func TestStandings(t *testing.T) {
	Convey("Given three competitors across two races", t, func() {
		ctx := context.Background()
		f := newRankingFixture(t)
		f.addCompetitor(t, 11)
		f.addCompetitor(t, 22)
		f.addCompetitor(t, 33)

		// Race 1: 22, 11, 33. Race 2: 22, 33, 11.
		// Totals: 22 -> 2; 11 and 33 tie on 5.
		for _, order := range [][]int64{{22, 11, 33}, {22, 33, 11}} {
			race := f.addRace(t)
			for _, sailNr := range order {
				_, _, err := f.ranking.RecordFinish(ctx, race.ID, sailNr)
				So(err, ShouldBeNil)
			}
		}

		Convey("When the standings are requested", func() {
			standings, raceCount, err := f.competitions.Standings(ctx, f.competitionID)
			So(err, ShouldBeNil)

			Convey("Then the race count covers the series so far", func() {
				So(raceCount, ShouldEqual, 2)
			})

			Convey("And competitors are ordered by net points, lowest first", func() {
				So(len(standings), ShouldEqual, 3)
				So(standings[0].SailNr, ShouldEqual, 22)
				So(standings[0].NetPoints, ShouldEqual, 2)
				// 11 and 33 are tied on both net and total; sail number breaks it.
				So(standings[1].SailNr, ShouldEqual, 11)
				So(standings[2].SailNr, ShouldEqual, 33)
			})
		})
	})
}

func TestStandingsUnknownCompetition(t *testing.T) {
	Convey("Given an empty tracker", t, func() {
		f := newRankingFixture(t)

		Convey("Standings for a nonexistent competition are rejected", func() {
			_, _, err := f.competitions.Standings(context.Background(), "no-such-competition")
			So(err, assertIsError, repository.ErrCompetitionNotFound)
		})
	})
}

func TestStandingsEmptyCompetition(t *testing.T) {
	Convey("Given a competition with no competitors or races", t, func() {
		f := newRankingFixture(t)

		Convey("The standings are empty with a zero race count", func() {
			standings, raceCount, err := f.competitions.Standings(context.Background(), f.competitionID)
			So(err, ShouldBeNil)
			So(len(standings), ShouldEqual, 0)
			So(raceCount, ShouldEqual, 0)
		})
	})
}
