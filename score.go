package seyyul

import (
	"math"

	"github.com/agnivade/levenshtein"
)

// A MatchScorer scores one query against one verse. The fuzzy score measures
// whole-string similarity; the token-overlap gate then rejects candidates
// whose similarity is incidental rather than quotational.
type MatchScorer struct {
	t Thresholds
}

// NewMatchScorer builds a scorer over a validated threshold set.
func NewMatchScorer(t Thresholds) *MatchScorer {
	return &MatchScorer{t: t}
}

// Score returns the final 0–100 score for the verse and whether the verse
// passed the candidate gate. The gate requires the fuzzy score to reach the
// floor and the query's token overlap with the verse to reach the band's
// minimum: short queries need most of their tokens present, longer queries
// need less overlap the stronger the fuzzy evidence is. A query token naming
// a tagged character of the verse boosts the passing score, capped at 100.
func (s *MatchScorer) Score(tokens []string, normQuery string, v *Verse) (int, bool) {
	if len(tokens) == 0 {
		return 0, false
	}
	fuzzy := fuzzyRatio(normQuery, v.normText)
	if fuzzy < s.t.FuzzyFloor {
		return 0, false
	}

	matched := 0
	for _, tok := range tokens {
		if _, ok := v.tokenSet[tok]; ok {
			matched++
		}
	}
	overlap := float64(matched) / float64(len(tokens))

	var need float64
	switch {
	case len(tokens) <= s.t.ShortQueryMax:
		need = s.t.ShortQueryOverlap
	case fuzzy >= s.t.HighBand:
		need = s.t.HighBandOverlap
	default:
		need = s.t.MediumBandOverlap
	}
	if overlap < need {
		return 0, false
	}

	score := fuzzy
	if s.mentionsCharacter(tokens, v) {
		score = int(math.Round(float64(fuzzy) * s.t.CharacterBoost))
		if score > 100 {
			score = 100
		}
	}
	return score, true
}

func (s *MatchScorer) mentionsCharacter(tokens []string, v *Verse) bool {
	if len(v.charSet) == 0 {
		return false
	}
	for _, tok := range tokens {
		if _, ok := v.charSet[tok]; ok {
			return true
		}
	}
	return false
}

// fuzzyRatio is the normalized edit-distance similarity of two strings on a
// 0–100 scale. Distance is counted in runes, so composed Tamil characters
// weigh the same as Latin letters.
func fuzzyRatio(a, b string) int {
	if a == b {
		return 100
	}
	la, lb := len([]rune(a)), len([]rune(b))
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 100
	}
	dist := levenshtein.ComputeDistance(a, b)
	return int(math.Round(100 * (1 - float64(dist)/float64(longest))))
}
