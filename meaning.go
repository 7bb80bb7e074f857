package seyyul

import (
	"fmt"
	"strings"
)

// A MeaningComposer produces the human-readable meaning text of a result.
// Its output is total: whatever the input, it returns a non-empty string.
type MeaningComposer struct {
	lex *Lexicon
}

// NewMeaningComposer builds a composer over the shared lexicon.
func NewMeaningComposer(lex *Lexicon) *MeaningComposer {
	return &MeaningComposer{lex: lex}
}

// ComposeMatch annotates the verse's canonical meaning with its source:
// book, section path and verse number. A verse with no recorded meaning
// falls back to its own text so the output is never empty.
func (c *MeaningComposer) ComposeMatch(m *MatchResult) string {
	meaning := m.Meaning
	if meaning == "" {
		meaning = m.MatchedText
	}
	source := m.BookTitle
	if len(m.SectionLabels) > 0 {
		source += ", " + strings.Join(m.SectionLabels, ", ")
	}
	return fmt.Sprintf("%s (%s, பாடல் %d)", meaning, source, m.VerseNumber)
}

// ComposeFallback builds a meaning for input that matched no verse: each
// known token is glossed in place, then the sentence roles that could be
// identified (who, action, when, where) are spelled out. If nothing at all
// is known about the tokens, the normalized text itself is returned.
func (c *MeaningComposer) ComposeFallback(tokens []string) string {
	var glossed []string
	for _, tok := range tokens {
		if g, ok := c.lex.Gloss(tok); ok {
			glossed = append(glossed, fmt.Sprintf("%s (%s)", tok, g))
		} else {
			glossed = append(glossed, tok)
		}
	}

	line := strings.Join(glossed, " ")
	if slots := c.describeSlots(tokens); slots != "" {
		line += ". " + slots
	}
	if line == "" {
		line = strings.Join(tokens, " ")
	}
	return line
}

// describeSlots names the who/action/when/where roles found in the tokens.
// Each slot takes the first token that fills it.
func (c *MeaningComposer) describeSlots(tokens []string) string {
	var who, action, when, where string
	for _, tok := range tokens {
		switch {
		case who == "" && c.lex.IsPerson(tok):
			who = c.glossedForm(tok)
		case when == "" && c.lex.IsTemporal(tok):
			when = c.glossedForm(tok)
		case where == "":
			if _, ok := c.lex.ModernNounStem(tok); ok {
				where = c.glossedForm(tok)
			} else if action == "" && c.lex.HasFiniteVerbSuffix(tok) {
				action = c.glossedForm(tok)
			}
		case action == "" && c.lex.HasFiniteVerbSuffix(tok):
			action = c.glossedForm(tok)
		}
	}

	var parts []string
	if who != "" {
		parts = append(parts, "யார்: "+who)
	}
	if action != "" {
		parts = append(parts, "செயல்: "+action)
	}
	if when != "" {
		parts = append(parts, "எப்போது: "+when)
	}
	if where != "" {
		parts = append(parts, "எங்கே: "+where)
	}
	return strings.Join(parts, ", ")
}

func (c *MeaningComposer) glossedForm(tok string) string {
	if g, ok := c.lex.Gloss(tok); ok {
		return fmt.Sprintf("%s (%s)", tok, g)
	}
	return tok
}
