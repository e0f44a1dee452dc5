package match_test

import (
	"testing"

	"regatta-tracker/internal/match"
)

func TestRankExactMatch(t *testing.T) {
	m := match.NewRatioMatcher(60)

	matches := m.Rank("127", []string{"123", "127", "456"})
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].SailNr != "127" {
		t.Errorf("expected exact match 127, got %s", matches[0].SailNr)
	}
	if matches[0].Score != 100 {
		t.Errorf("expected score 100 for exact match, got %d", matches[0].Score)
	}
}

func TestRankFuzzyFallback(t *testing.T) {
	m := match.NewRatioMatcher(60)

	matches := m.Rank("127", []string{"128", "456"})
	if len(matches) == 0 {
		t.Fatal("expected a fuzzy match")
	}
	if matches[0].SailNr != "128" {
		t.Errorf("expected closest match 128, got %s", matches[0].SailNr)
	}
	for _, mt := range matches {
		if mt.SailNr == "456" {
			t.Error("456 should not clear the similarity cutoff for candidate 127")
		}
	}
}

func TestRankOrdering(t *testing.T) {
	m := match.NewRatioMatcher(40)

	// Ratio("1275", "127") = 86 beats Ratio("1275", "1273") = 75; "99" shares
	// no characters and stays below the cutoff.
	matches := m.Rank("1275", []string{"99", "127", "1273"})
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %v", matches)
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Score > matches[i-1].Score {
			t.Errorf("matches not sorted best first: %v", matches)
		}
	}
	if matches[0].SailNr != "127" {
		t.Errorf("expected 127 ranked first, got %s", matches[0].SailNr)
	}
}

func TestRankNothingAboveCutoff(t *testing.T) {
	m := match.NewRatioMatcher(60)

	if matches := m.Rank("999", []string{"123", "456"}); len(matches) != 0 {
		t.Errorf("expected no matches, got %v", matches)
	}
}

func TestRankEmptyCandidate(t *testing.T) {
	m := match.NewRatioMatcher(60)

	if matches := m.Rank("", []string{"123", "456"}); len(matches) != 0 {
		t.Errorf("expected no matches for empty candidate, got %v", matches)
	}
}

func TestRankEmptyUniverse(t *testing.T) {
	m := match.NewRatioMatcher(60)

	if matches := m.Rank("127", nil); len(matches) != 0 {
		t.Errorf("expected no matches for empty universe, got %v", matches)
	}
}
