package seyyul

// A Verse is a single literary unit of a corpus: one kural, one epic stanza,
// one aphorism line. Section labels are the corpus's own ordered hierarchy
// (pāl/adhigaram for couplets, kandam/padalam for the epic) already mapped
// into a uniform sequence by the corpus loader.
type Verse struct {
	Number        int      `json:"number"`
	SectionLabels []string `json:"section_labels"`
	Text          string   `json:"text"`
	Meaning       string   `json:"meaning"`
	CharacterTags []string `json:"character_tags,omitempty"`
	Theme         string   `json:"theme,omitempty"`

	// Populated once at load time so scoring never re-normalizes.
	normText string
	tokenSet map[string]struct{}
	charSet  map[string]struct{}
}

// A Corpus is one literary work's ordered, immutable collection of verses.
type Corpus struct {
	Key    string  `json:"key"`
	Title  string  `json:"title"`
	Author string  `json:"author"`
	Period string  `json:"period"`
	Verses []Verse `json:"verses"`

	// Skipped counts verse records dropped during loading because they were
	// malformed. Degraded loading is diagnostic, not fatal.
	Skipped int `json:"-"`
}

// A MatchResult identifies the single best verse match for a query.
// At most one MatchResult is ever produced per query; "no match" is a nil
// result, not an error.
type MatchResult struct {
	BookKey       string   `json:"book_key"`
	BookTitle     string   `json:"book_title"`
	SectionLabels []string `json:"section_labels"`
	VerseNumber   int      `json:"verse_number"`
	Score         int      `json:"score"` // normalized 0–100
	MatchedText   string   `json:"matched_text"`
	Meaning       string   `json:"meaning"`
	Theme         string   `json:"theme,omitempty"`
}

// SentimentLabel is the polarity class of a query.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNegative SentimentLabel = "negative"
	SentimentNeutral  SentimentLabel = "neutral"
)

// Sentiment is the lexicon-based polarity verdict for a query.
type Sentiment struct {
	Label      SentimentLabel `json:"label"`
	Confidence float64        `json:"confidence"` // 0.0–1.0
}

// Classification is the sentence-mode gate verdict.
type Classification string

const (
	// Candidate input may quote a classical verse and proceeds to search.
	Candidate Classification = "candidate"
	// ModernSentence input is everyday narration and bypasses search.
	ModernSentence Classification = "modern_sentence"
)

// SearchDiagnostics summarizes the gated candidate population for one query.
type SearchDiagnostics struct {
	Candidates int     `json:"candidates"`
	MeanScore  float64 `json:"mean_score"`
	StdDev     float64 `json:"std_dev"`
	// Margin is best minus runner-up; equal to the best score when only one
	// candidate passed the gate.
	Margin float64 `json:"margin"`
}

// Result is the full analysis of one query, handed to the calling layer.
type Result struct {
	Found               bool               `json:"found"`
	BookKey             string             `json:"book_key,omitempty"`
	BookTitle           string             `json:"book_title,omitempty"`
	SectionLabels       []string           `json:"section_labels,omitempty"`
	VerseNumber         int                `json:"verse_number,omitempty"`
	MatchScore          int                `json:"match_score"`
	MeaningText         string             `json:"meaning_text"`
	SentimentLabel      SentimentLabel     `json:"sentiment_label"`
	SentimentConfidence float64            `json:"sentiment_confidence"`
	Classification      Classification     `json:"classification"`
	Themes              []string           `json:"themes,omitempty"`
	Diagnostics         *SearchDiagnostics `json:"diagnostics,omitempty"`
}
