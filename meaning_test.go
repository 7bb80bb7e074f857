package seyyul

import (
	"strings"
	"testing"
)

func TestComposeMatch(t *testing.T) {
	c := NewMeaningComposer(DefaultLexicon())

	m := &MatchResult{
		BookKey:       "thirukkural",
		BookTitle:     "திருக்குறள்",
		SectionLabels: []string{"அறத்துப்பால்", "கடவுள் வாழ்த்து"},
		VerseNumber:   1,
		Score:         100,
		MatchedText:   "அகர முதல எழுத்தெல்லாம் ஆதி பகவன் முதற்றே உலகு",
		Meaning:       "எழுத்துக்கள் எல்லாம் அகரத்தை முதலாகக் கொண்டிருக்கின்றன",
	}
	got := c.ComposeMatch(m)
	for _, want := range []string{m.Meaning, m.BookTitle, "கடவுள் வாழ்த்து", "பாடல் 1"} {
		if !strings.Contains(got, want) {
			t.Errorf("ComposeMatch missing %q in %q", want, got)
		}
	}
}

func TestComposeMatchWithoutCanonicalMeaning(t *testing.T) {
	c := NewMeaningComposer(DefaultLexicon())

	m := &MatchResult{
		BookTitle:   "சோதனை",
		VerseNumber: 4,
		MatchedText: "ஆறுவது சினம்",
	}
	got := c.ComposeMatch(m)
	if got == "" {
		t.Fatal("empty meaning for match without canonical gloss")
	}
	if !strings.Contains(got, "ஆறுவது சினம்") {
		t.Errorf("fallback to verse text missing in %q", got)
	}
}

func TestComposeFallback(t *testing.T) {
	n := NewNormalizer()
	c := NewMeaningComposer(DefaultLexicon())

	tokens := n.Normalize("நான் இன்று பள்ளிக்கு சென்றேன்")
	got := c.ComposeFallback(tokens)

	for _, want := range []string{
		"நான் (I)",
		"எப்போது: இன்று (today)",
		"எங்கே: பள்ளிக்கு (school)",
		"செயல்: சென்றேன் (went)",
		"யார்: நான் (I)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("fallback meaning missing %q in %q", want, got)
		}
	}
}

func TestComposeFallbackTotality(t *testing.T) {
	c := NewMeaningComposer(DefaultLexicon())

	// Even tokens the lexicon knows nothing about must yield something.
	inputs := [][]string{
		{"முற்றிலும்", "புதிய", "சொற்கள்"},
		{"ஒற்றைச்சொல்"},
		{"நான்"},
	}
	for _, tokens := range inputs {
		if got := c.ComposeFallback(tokens); got == "" {
			t.Errorf("empty fallback meaning for %v", tokens)
		}
	}
}
