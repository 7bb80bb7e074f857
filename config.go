package seyyul

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Thresholds collects every tunable of the scoring and classification
// policy. Components receive a Thresholds value at construction; nothing in
// the matching path hardcodes a cutoff, so the policy can be tuned and tested
// independently of the algorithm.
type Thresholds struct {
	// FuzzyFloor is the minimum fuzzy score (0–100) a candidate needs before
	// the overlap gate is even consulted.
	FuzzyFloor int `yaml:"fuzzy_floor"`

	// HighBand is the fuzzy score at which the relaxed overlap requirement
	// applies. Scores in [FuzzyFloor, HighBand) form the medium band.
	HighBand int `yaml:"high_band"`

	// ShortQueryMax is the token count at or below which a query is "short"
	// and subject to the strict short-query overlap requirement.
	ShortQueryMax int `yaml:"short_query_max"`

	// Overlap gates, as fractions of query tokens found in the verse.
	ShortQueryOverlap float64 `yaml:"short_query_overlap"`
	HighBandOverlap   float64 `yaml:"high_band_overlap"`
	MediumBandOverlap float64 `yaml:"medium_band_overlap"`

	// CharacterBoost multiplies the fuzzy score when a query token names a
	// tagged character of a narrative verse. Capped at 100 after boosting.
	CharacterBoost float64 `yaml:"character_boost"`

	// ClassifierStrictness is the fraction of query tokens that must carry a
	// modern-sentence signal before the classifier rejects on ratio alone.
	// An unambiguous modern noun rejects regardless of the ratio.
	ClassifierStrictness float64 `yaml:"classifier_strictness"`
}

// DefaultThresholds returns the reference scoring policy.
func DefaultThresholds() Thresholds {
	return Thresholds{
		FuzzyFloor:           60,
		HighBand:             80,
		ShortQueryMax:        3,
		ShortQueryOverlap:    0.70,
		HighBandOverlap:      0.40,
		MediumBandOverlap:    0.50,
		CharacterBoost:       1.15,
		ClassifierStrictness: 0.95,
	}
}

// LoadThresholds reads a YAML thresholds file, overlaying it on the defaults
// so partial files only override what they name.
func LoadThresholds(path string) (Thresholds, error) {
	t := DefaultThresholds()

	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("reading thresholds file: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("parsing thresholds file: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}

// Validate rejects threshold sets that would make the gate unsatisfiable or
// the score range leave [0,100].
func (t Thresholds) Validate() error {
	if t.FuzzyFloor < 0 || t.FuzzyFloor > 100 {
		return fmt.Errorf("fuzzy_floor %d outside [0,100]", t.FuzzyFloor)
	}
	if t.HighBand < t.FuzzyFloor || t.HighBand > 100 {
		return fmt.Errorf("high_band %d outside [fuzzy_floor,100]", t.HighBand)
	}
	if t.ShortQueryMax < 1 {
		return fmt.Errorf("short_query_max %d must be at least 1", t.ShortQueryMax)
	}
	for name, v := range map[string]float64{
		"short_query_overlap":   t.ShortQueryOverlap,
		"high_band_overlap":     t.HighBandOverlap,
		"medium_band_overlap":   t.MediumBandOverlap,
		"classifier_strictness": t.ClassifierStrictness,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s %v outside [0,1]", name, v)
		}
	}
	if t.CharacterBoost < 1 {
		return fmt.Errorf("character_boost %v must be at least 1", t.CharacterBoost)
	}
	return nil
}
