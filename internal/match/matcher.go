// Package match resolves a noisy candidate number string against the sail
// numbers registered for a competition.
package match

import (
	"sort"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Match is one sail number considered close enough to the candidate, with its
// similarity score (0-100).
type Match struct {
	SailNr string `json:"sail_nr"`
	Score  int    `json:"score"`
}

// Matcher ranks a candidate string against the universe of known sail
// numbers. The concrete similarity algorithm is swappable; the ranking engine
// only consumes the ordered result.
type Matcher interface {
	Rank(candidate string, universe []string) []Match
}

// RatioMatcher matches on sequence-similarity ratio. An exact hit
// short-circuits to a single full-score match; otherwise every known number
// scoring at or above the cutoff is returned, best first.
type RatioMatcher struct {
	cutoff int
}

func NewRatioMatcher(cutoff int) *RatioMatcher {
	return &RatioMatcher{cutoff: cutoff}
}

func (m *RatioMatcher) Rank(candidate string, universe []string) []Match {
	if candidate == "" {
		return nil
	}

	for _, known := range universe {
		if known == candidate {
			return []Match{{SailNr: known, Score: 100}}
		}
	}

	var matches []Match
	for _, known := range universe {
		score := fuzzy.Ratio(candidate, known)
		if score >= m.cutoff {
			matches = append(matches, Match{SailNr: known, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	return matches
}
