package seyyul

import (
	"reflect"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	n := NewNormalizer()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "plain tamil",
			input: "அறம் செய விரும்பு",
			want:  []string{"அறம்", "செய", "விரும்பு"},
		},
		{
			name:  "punctuation stripped",
			input: "அறம், செய; விரும்பு!",
			want:  []string{"அறம்", "செய", "விரும்பு"},
		},
		{
			name:  "whitespace collapsed",
			input: "  அறம்   செய \n விரும்பு  ",
			want:  []string{"அறம்", "செய", "விரும்பு"},
		},
		{
			name:  "latin lowercased",
			input: "Hello அறம்",
			want:  []string{"hello", "அறம்"},
		},
		{
			name:  "digits separate tokens",
			input: "அறம்123செய",
			want:  []string{"அறம்", "செய"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "only punctuation",
			input: "... !!! ,,,",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.Normalize(tt.input)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Normalize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeComposesVowelSigns(t *testing.T) {
	n := NewNormalizer()

	// ொ typed as the decomposed pair ெ + ா must compose to the single
	// code point the corpora use.
	decomposed := "கொண்"
	composed := "\u0b95\u0bca\u0ba3\u0bcd"

	got := n.Join(n.Normalize(decomposed))
	want := n.Join(n.Normalize(composed))
	if got != want {
		t.Errorf("decomposed form normalized to %q, composed form to %q", got, want)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	n := NewNormalizer()

	inputs := []string{
		"அகர முதல எழுத்தெல்லாம் ஆதி பகவன் முதற்றே உலகு",
		"நான், இன்று: பள்ளிக்கு! சென்றேன்?",
		"Mixed ENGLISH மற்றும் தமிழ்",
	}
	for _, in := range inputs {
		once := n.Normalize(in)
		twice := n.Normalize(strings.Join(once, " "))
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("normalization of %q not idempotent: %v then %v", in, once, twice)
		}
	}
}
