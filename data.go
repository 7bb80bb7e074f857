package seyyul

import (
	_ "embed"
	"fmt"
)

// Bundled corpora and lexicon. Callers that want their own data pass it
// through WithCorpora / WithLexicon instead.

//go:embed data/thirukkural.json
var thirukkuralJSON []byte

//go:embed data/kambaramayanam.json
var kambaramayanamJSON []byte

//go:embed data/aathichudi.json
var aathichudiJSON []byte

//go:embed data/lexicon.json
var lexiconJSON []byte

// DefaultLexicon parses the bundled lexicon. The asset is compiled into the
// binary, so a parse failure is a build defect and panics.
func DefaultLexicon() *Lexicon {
	lex, err := ParseLexicon(lexiconJSON)
	if err != nil {
		panic(fmt.Sprintf("bundled lexicon is corrupt: %v", err))
	}
	return lex
}

// DefaultCorpora loads the three bundled corpora in their canonical
// registration order. Registration order is a tie-breaking rule, so the
// couplets come first, the epic second, the aphorisms third.
func DefaultCorpora(n *Normalizer) (*CorpusStore, error) {
	return LoadCorpora(n, thirukkuralJSON, kambaramayanamJSON, aathichudiJSON)
}
