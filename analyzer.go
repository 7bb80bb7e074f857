package seyyul

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks input that contains no analyzable text after
// normalization: empty strings, whitespace, bare punctuation.
var ErrInvalidInput = errors.New("input contains no analyzable text")

// An Analyzer runs the full pipeline for one query: normalize, classify,
// search, compose a meaning and tag sentiment. It holds only immutable state,
// so a single Analyzer is safe for concurrent use and Analyze is idempotent.
type Analyzer struct {
	norm       *Normalizer
	store      *CorpusStore
	lex        *Lexicon
	classifier *SentenceClassifier
	engine     *SearchEngine
	composer   *MeaningComposer
	tagger     *SentimentTagger
}

type analyzerOptions struct {
	thresholds Thresholds
	store      *CorpusStore
	lex        *Lexicon
}

// An Option adjusts Analyzer construction.
type Option func(*analyzerOptions)

// WithThresholds replaces the default scoring policy.
func WithThresholds(t Thresholds) Option {
	return func(o *analyzerOptions) { o.thresholds = t }
}

// WithCorpora replaces the bundled corpora with a caller-loaded store.
func WithCorpora(store *CorpusStore) Option {
	return func(o *analyzerOptions) { o.store = store }
}

// WithLexicon replaces the bundled lexicon.
func WithLexicon(lex *Lexicon) Option {
	return func(o *analyzerOptions) { o.lex = lex }
}

// New builds an Analyzer over the bundled corpora and lexicon, with defaults
// overridable through options.
func New(opts ...Option) (*Analyzer, error) {
	o := analyzerOptions{thresholds: DefaultThresholds()}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.thresholds.Validate(); err != nil {
		return nil, fmt.Errorf("invalid thresholds: %w", err)
	}

	norm := NewNormalizer()
	if o.lex == nil {
		o.lex = DefaultLexicon()
	}
	if o.store == nil {
		store, err := DefaultCorpora(norm)
		if err != nil {
			return nil, fmt.Errorf("loading bundled corpora: %w", err)
		}
		o.store = store
	}

	scorer := NewMatchScorer(o.thresholds)
	return &Analyzer{
		norm:       norm,
		store:      o.store,
		lex:        o.lex,
		classifier: NewSentenceClassifier(o.lex, o.thresholds),
		engine:     NewSearchEngine(o.store, scorer),
		composer:   NewMeaningComposer(o.lex),
		tagger:     NewSentimentTagger(o.lex),
	}, nil
}

// Store exposes the corpus snapshot for statistics reporting.
func (a *Analyzer) Store() *CorpusStore {
	return a.store
}

// Analyze runs the pipeline on raw text. Input that normalizes to nothing
// returns ErrInvalidInput; every other outcome, including "no verse matched",
// is a value. The result always carries a non-empty meaning, a sentiment and
// a classification.
func (a *Analyzer) Analyze(raw string) (*Result, error) {
	tokens := a.norm.Normalize(raw)
	if len(tokens) == 0 {
		return nil, ErrInvalidInput
	}

	sentiment := a.tagger.Tag(tokens)
	res := &Result{
		SentimentLabel:      sentiment.Label,
		SentimentConfidence: sentiment.Confidence,
		Classification:      a.classifier.Classify(tokens),
		Themes:              a.lex.Themes(tokens),
	}

	if res.Classification == ModernSentence {
		res.MeaningText = a.composer.ComposeFallback(tokens)
		return res, nil
	}

	match, diag := a.engine.Search(tokens, a.norm.Join(tokens))
	res.Diagnostics = diag
	if match == nil {
		res.MeaningText = a.composer.ComposeFallback(tokens)
		return res, nil
	}

	res.Found = true
	res.BookKey = match.BookKey
	res.BookTitle = match.BookTitle
	res.SectionLabels = match.SectionLabels
	res.VerseNumber = match.VerseNumber
	res.MatchScore = match.Score
	res.MeaningText = a.composer.ComposeMatch(match)
	if match.Theme != "" && !containsString(res.Themes, match.Theme) {
		res.Themes = append(res.Themes, match.Theme)
	}
	return res, nil
}

func containsString(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
