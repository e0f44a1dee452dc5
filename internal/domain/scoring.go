package domain

import (
	"sort"

	"regatta-tracker/internal/constants"
)

// DiscardWindow returns how many of a competitor's worst results are dropped
// from the net score. Another result is discarded for every
// constants.DiscardInterval races recorded in the competition; between
// thresholds the window is zero and no discard applies.
func DiscardWindow(raceCount int64) int64 {
	if raceCount <= 0 || raceCount%constants.DiscardInterval != 0 {
		return 0
	}
	return raceCount / constants.DiscardInterval
}

// NetPoints computes a competitor's net score from their total and full finish
// history at the moment of recomputation. history carries the point values of
// every recorded Position, in any order; the worst (highest) values fill the
// discard window first.
func NetPoints(total int64, history []int64, raceCount int64) int64 {
	window := DiscardWindow(raceCount)
	if window == 0 {
		return total
	}
	if window > int64(len(history)) {
		window = int64(len(history))
	}

	sorted := make([]int64, len(history))
	copy(sorted, history)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] > sorted[j] })

	var discarded int64
	for _, points := range sorted[:window] {
		discarded += points
	}
	return total - discarded
}
