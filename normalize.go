package seyyul

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// A Normalizer canonicalizes raw query text into the token form everything
// downstream operates on. Normalization is deterministic and idempotent:
// feeding its own output back produces the same tokens.
type Normalizer struct {
	form norm.Form
}

// NewNormalizer returns a Normalizer using NFC composition, which folds the
// decomposed Tamil vowel-sign sequences some input methods emit into the
// composed code points the corpora use.
func NewNormalizer() *Normalizer {
	return &Normalizer{form: norm.NFC}
}

// Normalize canonicalizes combining marks, lowercases Latin letters, strips
// punctuation and digits, and splits on whitespace. The returned slice is
// empty when the input carries no letters at all.
func (n *Normalizer) Normalize(text string) []string {
	return strings.Fields(n.clean(text))
}

// Join returns the single-string form of the normalized text, used for
// whole-query fuzzy comparison against verse text.
func (n *Normalizer) Join(tokens []string) string {
	return strings.Join(tokens, " ")
}

func (n *Normalizer) clean(text string) string {
	text = n.form.String(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case isTamil(r):
			b.WriteRune(r)
		case unicode.IsLetter(r):
			b.WriteRune(unicode.ToLower(r))
		default:
			// Punctuation, digits and symbols separate tokens.
			b.WriteRune(' ')
		}
	}
	return b.String()
}

// isTamil reports whether the rune lies in the Tamil Unicode block,
// covering letters, vowel signs and the virama.
func isTamil(r rune) bool {
	return r >= 0x0B80 && r <= 0x0BFF
}
