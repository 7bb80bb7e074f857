// Package gemini optionally rewrites a composed meaning through the Gemini
// API. The analyzer never depends on it: every failure path returns the
// meaning it was given, so callers can wire the enhancer in unconditionally
// and still work offline.
package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

const systemPrompt = "நீங்கள் தமிழ் இலக்கிய விளக்க உதவியாளர். கொடுக்கப்பட்ட " +
	"வாக்கியத்தின் பொருளை எளிய தமிழில், இரண்டு வாக்கியங்களுக்குள் விளக்கவும். " +
	"வேறு எதுவும் சேர்க்க வேண்டாம்."

// An Enhancer holds one Gemini client. The zero value is not usable; build
// it with New.
type Enhancer struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	log     *zap.Logger
}

// An EnhancerOption adjusts Enhancer construction.
type EnhancerOption func(*Enhancer)

// WithModel overrides the default model name.
func WithModel(model string) EnhancerOption {
	return func(e *Enhancer) { e.model = model }
}

// WithTimeout bounds each enhancement call.
func WithTimeout(d time.Duration) EnhancerOption {
	return func(e *Enhancer) { e.timeout = d }
}

// New builds an Enhancer. The client reads GEMINI_API_KEY from the
// environment.
func New(ctx context.Context, log *zap.Logger, opts ...EnhancerOption) (*Enhancer, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	e := &Enhancer{
		client:  client,
		model:   defaultModel,
		timeout: 10 * time.Second,
		log:     log,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Enhance asks the model for a richer reading of the query and returns it.
// On timeout, API error or an empty reply it returns baseMeaning unchanged.
func (e *Enhancer) Enhance(ctx context.Context, query, baseMeaning string) string {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	prompt := fmt.Sprintf("வாக்கியம்: %s\nஅடிப்படை விளக்கம்: %s", query, baseMeaning)
	contents := []*genai.Content{
		{Role: genai.RoleUser, Parts: []*genai.Part{{Text: systemPrompt}}},
		{Role: genai.RoleUser, Parts: []*genai.Part{{Text: prompt}}},
	}

	resp, err := e.client.Models.GenerateContent(ctx, e.model, contents, nil)
	if err != nil {
		e.log.Warn("gemini enhancement failed, keeping base meaning", zap.Error(err))
		return baseMeaning
	}
	text := extractText(resp)
	if text == "" {
		e.log.Warn("gemini returned no text, keeping base meaning")
		return baseMeaning
	}
	return text
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	cand := resp.Candidates[0]
	if cand.Content == nil || len(cand.Content.Parts) == 0 {
		return ""
	}
	return strings.TrimSpace(cand.Content.Parts[0].Text)
}
