package seyyul

import (
	"strings"

	"github.com/bbalet/stopwords"
)

// A SentenceClassifier decides whether normalized input could be quoting a
// classical verse or is everyday modern narration. The gate is deliberately
// strict: classical text must never be turned away, so input is only called
// modern on an unambiguous signal or a near-total signal ratio.
type SentenceClassifier struct {
	lex        *Lexicon
	strictness float64
}

// NewSentenceClassifier builds a classifier over the lexicon's marker sets,
// with the ratio bound taken from the thresholds.
func NewSentenceClassifier(lex *Lexicon, t Thresholds) *SentenceClassifier {
	return &SentenceClassifier{lex: lex, strictness: t.ClassifierStrictness}
}

// Classify inspects every token for modern-sentence signals. A modern
// vocabulary noun (in any case-marked form) or an English function word is
// unambiguous and classifies immediately. Otherwise temporal markers,
// personal pronouns, conversational finite-verb endings and remaining Latin
// words count as signals, and the input is modern only when the signal
// fraction reaches the strictness bound. Adding signal tokens can never flip
// a modern verdict back to candidate.
func (c *SentenceClassifier) Classify(tokens []string) Classification {
	if len(tokens) == 0 {
		return Candidate
	}

	signals := 0
	for _, tok := range tokens {
		if isLatinToken(tok) {
			// An English stopword (the, is, was) cleans to nothing and
			// cannot appear in a Tamil verse quotation.
			if strings.TrimSpace(stopwords.CleanString(tok, "en", false)) == "" {
				return ModernSentence
			}
			signals++
			continue
		}
		if _, ok := c.lex.ModernNounStem(tok); ok {
			return ModernSentence
		}
		if c.lex.IsTemporal(tok) || c.lex.IsPerson(tok) || c.lex.HasFiniteVerbSuffix(tok) {
			signals++
		}
	}

	if float64(signals) >= c.strictness*float64(len(tokens)) {
		return ModernSentence
	}
	return Candidate
}

func isLatinToken(tok string) bool {
	for _, r := range tok {
		if r > 'z' || (r < 'a' && (r < 'A' || r > 'Z')) {
			return false
		}
	}
	return tok != ""
}
