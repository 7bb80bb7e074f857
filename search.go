package seyyul

import (
	"gonum.org/v1/gonum/stat"
)

// A SearchEngine scans every verse of every corpus for the best match to a
// query. There is no index: corpora are small enough that a full scan is
// cheaper than maintaining one, and a full scan makes the tie-break rule
// trivially deterministic.
type SearchEngine struct {
	store  *CorpusStore
	scorer *MatchScorer
}

// NewSearchEngine builds an engine over an immutable corpus snapshot.
func NewSearchEngine(store *CorpusStore, scorer *MatchScorer) *SearchEngine {
	return &SearchEngine{store: store, scorer: scorer}
}

// Search returns the best gated match, or nil when nothing passes the gate.
// Ties resolve to the earlier-registered corpus, then the lower verse number.
// The scan visits corpora in registration order, so a tied candidate from a
// later corpus never displaces the incumbent; within one corpus the lower
// verse number wins regardless of document order, since nothing requires a
// corpus document to list its verses ascending. The diagnostics summarize
// every candidate that passed the gate, not just the winner.
func (e *SearchEngine) Search(tokens []string, normQuery string) (*MatchResult, *SearchDiagnostics) {
	var (
		best   *MatchResult
		scores []float64
	)
	for _, c := range e.store.All() {
		for i := range c.Verses {
			v := &c.Verses[i]
			score, ok := e.scorer.Score(tokens, normQuery, v)
			if !ok {
				continue
			}
			scores = append(scores, float64(score))
			wins := best == nil || score > best.Score ||
				(score == best.Score && c.Key == best.BookKey && v.Number < best.VerseNumber)
			if wins {
				best = &MatchResult{
					BookKey:       c.Key,
					BookTitle:     c.Title,
					SectionLabels: v.SectionLabels,
					VerseNumber:   v.Number,
					Score:         score,
					MatchedText:   v.Text,
					Meaning:       v.Meaning,
					Theme:         v.Theme,
				}
			}
		}
	}
	return best, diagnose(scores)
}

// diagnose summarizes the gated candidate population. Margin is the gap
// between the best and second-best scores; a lone candidate's margin is its
// own score, since nothing contested it.
func diagnose(scores []float64) *SearchDiagnostics {
	d := &SearchDiagnostics{Candidates: len(scores)}
	if len(scores) == 0 {
		return d
	}
	d.MeanScore = stat.Mean(scores, nil)
	if len(scores) > 1 {
		d.StdDev = stat.StdDev(scores, nil)
	}

	best, second := scores[0], 0.0
	for _, s := range scores[1:] {
		if s > best {
			second = best
			best = s
		} else if s > second {
			second = s
		}
	}
	if len(scores) == 1 {
		d.Margin = best
	} else {
		d.Margin = best - second
	}
	return d
}
