package seyyul

import (
	"math"
	"testing"
)

func TestTag(t *testing.T) {
	n := NewNormalizer()
	tagger := NewSentimentTagger(DefaultLexicon())

	tests := []struct {
		name     string
		input    string
		want     SentimentLabel
		wantConf float64
	}{
		{
			name:     "positive majority",
			input:    "மகிழ்ச்சி வெற்றி அன்பு துன்பம்",
			want:     SentimentPositive,
			wantConf: 0.75,
		},
		{
			name:     "negative majority",
			input:    "துன்பம் சோகம் கோபம் மகிழ்ச்சி",
			want:     SentimentNegative,
			wantConf: 0.75,
		},
		{
			name:     "positive negative tie is neutral",
			input:    "மகிழ்ச்சி துன்பம்",
			want:     SentimentNeutral,
			wantConf: 0.5,
		},
		{
			name:     "nothing tagged is neutral with zero confidence",
			input:    "முற்றிலும் புதிய சொற்கள்",
			want:     SentimentNeutral,
			wantConf: 0,
		},
		{
			name:     "neutral entries abstain",
			input:    "நான் இன்று உலகம்",
			want:     SentimentNeutral,
			wantConf: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tagger.Tag(n.Normalize(tt.input))
			if got.Label != tt.want {
				t.Errorf("Tag(%q).Label = %q, want %q", tt.input, got.Label, tt.want)
			}
			if math.Abs(got.Confidence-tt.wantConf) > 1e-9 {
				t.Errorf("Tag(%q).Confidence = %v, want %v", tt.input, got.Confidence, tt.wantConf)
			}
		})
	}
}
