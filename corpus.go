package seyyul

import (
	"encoding/json"
	"fmt"
)

// corpusDocument is the on-disk shape of one corpus. section_fields names the
// corpus's own hierarchy levels in order (pal/adhigaram for the couplets,
// kandam/padalam for the epic); the loader maps them into the uniform
// SectionLabels sequence so nothing downstream knows corpus-specific naming.
type corpusDocument struct {
	Key           string            `json:"key"`
	Title         string            `json:"title"`
	Author        string            `json:"author"`
	Period        string            `json:"period"`
	SectionFields []string          `json:"section_fields"`
	Verses        []json.RawMessage `json:"verses"`
}

type verseRecord struct {
	Number        int               `json:"number"`
	Sections      map[string]string `json:"sections"`
	Text          string            `json:"text"`
	Meaning       string            `json:"meaning"`
	CharacterTags []string          `json:"character_tags"`
	Theme         string            `json:"theme"`
}

// A CorpusStore is an immutable, registration-ordered collection of corpora.
// Registration order is part of the search contract: ties between equal-score
// matches resolve to the earlier corpus.
type CorpusStore struct {
	order []*Corpus
	byKey map[string]*Corpus
}

// CorpusStats summarizes one loaded corpus for health and CLI reporting.
type CorpusStats struct {
	Key     string `json:"key"`
	Title   string `json:"title"`
	Verses  int    `json:"verses"`
	Skipped int    `json:"skipped"`
}

// LoadCorpora parses and registers corpus documents in the order given.
// Loading is degraded, not fatal: a malformed verse record is skipped and
// counted on its corpus, and only a document that cannot be parsed at all,
// lacks a key, or reuses a key fails the load.
func LoadCorpora(n *Normalizer, docs ...[]byte) (*CorpusStore, error) {
	if n == nil {
		n = NewNormalizer()
	}
	store := &CorpusStore{byKey: make(map[string]*Corpus, len(docs))}

	for i, data := range docs {
		var doc corpusDocument
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing corpus document %d: %w", i, err)
		}
		if doc.Key == "" {
			return nil, fmt.Errorf("corpus document %d has no key", i)
		}
		if _, dup := store.byKey[doc.Key]; dup {
			return nil, fmt.Errorf("duplicate corpus key %q", doc.Key)
		}

		c := &Corpus{
			Key:    doc.Key,
			Title:  doc.Title,
			Author: doc.Author,
			Period: doc.Period,
			Verses: make([]Verse, 0, len(doc.Verses)),
		}
		for _, raw := range doc.Verses {
			v, ok := decodeVerse(n, raw, doc.SectionFields)
			if !ok {
				c.Skipped++
				continue
			}
			c.Verses = append(c.Verses, v)
		}
		store.order = append(store.order, c)
		store.byKey[c.Key] = c
	}
	return store, nil
}

// decodeVerse turns one raw record into a Verse with its normalized text and
// token set precomputed. A record with no usable number or text is rejected.
func decodeVerse(n *Normalizer, raw json.RawMessage, sectionFields []string) (Verse, bool) {
	var rec verseRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Verse{}, false
	}
	if rec.Number <= 0 || rec.Text == "" {
		return Verse{}, false
	}

	tokens := n.Normalize(rec.Text)
	if len(tokens) == 0 {
		return Verse{}, false
	}

	v := Verse{
		Number:        rec.Number,
		SectionLabels: make([]string, 0, len(sectionFields)),
		Text:          rec.Text,
		Meaning:       rec.Meaning,
		CharacterTags: rec.CharacterTags,
		Theme:         rec.Theme,
		normText:      n.Join(tokens),
		tokenSet:      make(map[string]struct{}, len(tokens)),
	}
	for _, f := range sectionFields {
		if label := rec.Sections[f]; label != "" {
			v.SectionLabels = append(v.SectionLabels, label)
		}
	}
	for _, tok := range tokens {
		v.tokenSet[tok] = struct{}{}
	}
	if len(rec.CharacterTags) > 0 {
		v.charSet = make(map[string]struct{}, len(rec.CharacterTags))
		for _, tag := range rec.CharacterTags {
			for _, tok := range n.Normalize(tag) {
				v.charSet[tok] = struct{}{}
			}
		}
	}
	return v, true
}

// Get returns the corpus registered under key.
func (s *CorpusStore) Get(key string) (*Corpus, bool) {
	c, ok := s.byKey[key]
	return c, ok
}

// All returns the corpora in registration order. The slice is shared; callers
// must not mutate it.
func (s *CorpusStore) All() []*Corpus {
	return s.order
}

// Stats reports per-corpus verse and skipped-record counts in registration
// order.
func (s *CorpusStore) Stats() []CorpusStats {
	out := make([]CorpusStats, 0, len(s.order))
	for _, c := range s.order {
		out = append(out, CorpusStats{
			Key:     c.Key,
			Title:   c.Title,
			Verses:  len(c.Verses),
			Skipped: c.Skipped,
		})
	}
	return out
}
