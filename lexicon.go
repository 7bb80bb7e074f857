package seyyul

import (
	"encoding/json"
	"fmt"
	"strings"
)

// A LexiconEntry carries the gloss and polarity of one known token.
type LexiconEntry struct {
	Gloss    string         `json:"gloss"`
	Polarity SentimentLabel `json:"polarity"`
}

// A Lexicon is the shared word knowledge of the engine: glosses and polarity
// for known tokens, plus the marker sets the classifier and meaning composer
// consult. Tamil is agglutinative, so marker and noun lookups match on word
// stems rather than whole tokens.
type Lexicon struct {
	Entries            map[string]LexiconEntry `json:"entries"`
	PersonWords        []string                `json:"person_words"`
	TemporalMarkers    []string                `json:"temporal_markers"`
	ModernNouns        []string                `json:"modern_nouns"`
	FiniteVerbSuffixes []string                `json:"finite_verb_suffixes"`
	ThemeKeywords      map[string]string       `json:"theme_keywords"`

	persons map[string]struct{}
}

// ParseLexicon decodes a lexicon document and builds its lookup sets.
func ParseLexicon(data []byte) (*Lexicon, error) {
	var lex Lexicon
	if err := json.Unmarshal(data, &lex); err != nil {
		return nil, fmt.Errorf("parsing lexicon: %w", err)
	}
	if len(lex.Entries) == 0 {
		return nil, fmt.Errorf("parsing lexicon: no entries")
	}
	lex.persons = make(map[string]struct{}, len(lex.PersonWords))
	for _, w := range lex.PersonWords {
		lex.persons[w] = struct{}{}
	}
	return &lex, nil
}

// Gloss returns the English gloss of a token. Inflected tokens fall back to
// their modern-noun stem, so பள்ளிக்கு glosses through பள்ளி.
func (l *Lexicon) Gloss(token string) (string, bool) {
	if e, ok := l.Entries[token]; ok && e.Gloss != "" {
		return e.Gloss, true
	}
	if stem, ok := l.ModernNounStem(token); ok {
		if e, ok := l.Entries[stem]; ok && e.Gloss != "" {
			return e.Gloss, true
		}
	}
	return "", false
}

// Polarity returns the sentiment polarity of a token, if the token is known.
func (l *Lexicon) Polarity(token string) (SentimentLabel, bool) {
	e, ok := l.Entries[token]
	if !ok || e.Polarity == "" {
		return "", false
	}
	return e.Polarity, true
}

// IsPerson reports whether the token is a personal pronoun.
func (l *Lexicon) IsPerson(token string) bool {
	_, ok := l.persons[token]
	return ok
}

// IsTemporal reports whether the token starts with a temporal marker stem
// (இன்று matches இன்றைக்கு).
func (l *Lexicon) IsTemporal(token string) bool {
	for _, m := range l.TemporalMarkers {
		if strings.HasPrefix(token, m) {
			return true
		}
	}
	return false
}

// ModernNounStem returns the modern-vocabulary stem the token is built on,
// matching case-marked forms by prefix (பள்ளிக்கு carries the stem பள்ளி).
func (l *Lexicon) ModernNounStem(token string) (string, bool) {
	for _, n := range l.ModernNouns {
		if matchesStem(token, n) {
			return n, true
		}
	}
	return "", false
}

const virama = "்"

// matchesStem reports whether token is stem plus an inflection. A stem ending
// in a virama sheds it before a case suffix (கார் declines to காரில்), so that
// form matches too, but only when the suffix opens with a vowel sign; this
// keeps கார் from claiming unrelated words like காரணம்.
func matchesStem(token, stem string) bool {
	if strings.HasPrefix(token, stem) {
		return true
	}
	if !strings.HasSuffix(stem, virama) {
		return false
	}
	bare := strings.TrimSuffix(stem, virama)
	if !strings.HasPrefix(token, bare) {
		return false
	}
	rest := []rune(token[len(bare):])
	return len(rest) > 0 && isTamilVowelSign(rest[0])
}

func isTamilVowelSign(r rune) bool {
	return r >= 0x0BBE && r <= 0x0BCC
}

// HasFiniteVerbSuffix reports whether the token ends in one of the
// conversational finite-verb endings.
func (l *Lexicon) HasFiniteVerbSuffix(token string) bool {
	for _, s := range l.FiniteVerbSuffixes {
		if strings.HasSuffix(token, s) {
			return true
		}
	}
	return false
}

// Themes extracts the distinct themes keyed by the tokens, in token order.
func (l *Lexicon) Themes(tokens []string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, tok := range tokens {
		theme, ok := l.ThemeKeywords[tok]
		if !ok {
			continue
		}
		if _, dup := seen[theme]; dup {
			continue
		}
		seen[theme] = struct{}{}
		out = append(out, theme)
	}
	return out
}
