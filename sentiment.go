package seyyul

// A SentimentTagger assigns a polarity label to a query by majority vote of
// its lexicon-tagged tokens. Only positive and negative entries vote; tokens
// the lexicon does not know, or knows as neutral, abstain.
type SentimentTagger struct {
	lex *Lexicon
}

// NewSentimentTagger builds a tagger over the shared lexicon.
func NewSentimentTagger(lex *Lexicon) *SentimentTagger {
	return &SentimentTagger{lex: lex}
}

// Tag counts the positive and negative tokens and returns the majority label
// with confidence = majority count / voting count. A tie is neutral with the
// tied share as confidence; input with no voting tokens at all is neutral
// with zero confidence.
func (t *SentimentTagger) Tag(tokens []string) Sentiment {
	var pos, neg int
	for _, tok := range tokens {
		switch p, _ := t.lex.Polarity(tok); p {
		case SentimentPositive:
			pos++
		case SentimentNegative:
			neg++
		}
	}

	tagged := pos + neg
	if tagged == 0 {
		return Sentiment{Label: SentimentNeutral, Confidence: 0}
	}

	switch {
	case pos > neg:
		return Sentiment{Label: SentimentPositive, Confidence: float64(pos) / float64(tagged)}
	case neg > pos:
		return Sentiment{Label: SentimentNegative, Confidence: float64(neg) / float64(tagged)}
	default:
		return Sentiment{Label: SentimentNeutral, Confidence: float64(pos) / float64(tagged)}
	}
}
