package domain_test

import (
	"testing"

	"regatta-tracker/internal/domain"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDiscardWindow(t *testing.T) {
	Convey("Given the periodic discard rule", t, func() {
		Convey("No discard applies before the first threshold", func() {
			So(domain.DiscardWindow(0), ShouldEqual, 0)
			So(domain.DiscardWindow(1), ShouldEqual, 0)
			So(domain.DiscardWindow(3), ShouldEqual, 0)
		})

		Convey("The window is one at four races", func() {
			So(domain.DiscardWindow(4), ShouldEqual, 1)
		})

		Convey("The window is two at eight races", func() {
			So(domain.DiscardWindow(8), ShouldEqual, 2)
		})

		Convey("Between thresholds the window drops back to zero", func() {
			So(domain.DiscardWindow(5), ShouldEqual, 0)
			So(domain.DiscardWindow(7), ShouldEqual, 0)
			So(domain.DiscardWindow(9), ShouldEqual, 0)
		})
	})
}

func TestNetPoints(t *testing.T) {
	Convey("Given a competitor's finish history", t, func() {
		Convey("Net equals total while no discard applies", func() {
			So(domain.NetPoints(6, []int64{1, 3, 2}, 3), ShouldEqual, 6)
			So(domain.NetPoints(14, []int64{1, 3, 8, 2}, 5), ShouldEqual, 14)
		})

		Convey("The single worst result is dropped at four races", func() {
			// total 14, worst 8 -> net 6
			So(domain.NetPoints(14, []int64{1, 3, 8, 2}, 4), ShouldEqual, 6)
		})

		Convey("The two worst results are dropped at eight races", func() {
			history := []int64{1, 3, 8, 2, 5, 4, 7, 6}
			total := int64(36)
			So(domain.NetPoints(total, history, 8), ShouldEqual, total-8-7)
		})

		Convey("History order does not matter", func() {
			So(domain.NetPoints(14, []int64{8, 1, 2, 3}, 4), ShouldEqual, 6)
			So(domain.NetPoints(14, []int64{2, 8, 3, 1}, 4), ShouldEqual, 6)
		})

		Convey("A window larger than the history discards everything available", func() {
			So(domain.NetPoints(3, []int64{3}, 8), ShouldEqual, 0)
		})

		Convey("The input history is not mutated", func() {
			history := []int64{1, 3, 8, 2}
			domain.NetPoints(14, history, 4)
			So(history, ShouldResemble, []int64{1, 3, 8, 2})
		})
	})
}
