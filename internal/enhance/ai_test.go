package enhance

import (
	"context"
	"strings"
	"testing"

	"resumeforge/internal/ai"
	apperrors "resumeforge/internal/errors"
	"resumeforge/internal/types"
)

type stubProvider struct {
	output types.EnhanceContentOutput
	err    error
	got    types.EnhanceContentInput
	calls  int
}

func (s *stubProvider) EnhanceContent(_ context.Context, input types.EnhanceContentInput) (types.EnhanceContentOutput, *ai.TokenUsage, error) {
	s.calls++
	s.got = input
	return s.output, nil, s.err
}

func TestEnhancerDeterministicOnly(t *testing.T) {
	provider := &stubProvider{}
	e := NewEnhancer(provider, nil)

	result := e.Run(context.Background(), "I definately improved the enviroment very quickly", "engineer", false)
	if provider.calls != 0 {
		t.Fatalf("provider called %d times with useAI=false, want 0", provider.calls)
	}
	if result.AIUsed {
		t.Error("AIUsed = true without AI")
	}
	if !strings.Contains(result.Text, "definitely") || !strings.Contains(result.Text, "environment") {
		t.Errorf("spelling not corrected: %q", result.Text)
	}
	if len(result.Corrections) != 2 {
		t.Errorf("got %d corrections, want 2", len(result.Corrections))
	}
	if strings.Contains(result.Text, "very") {
		t.Errorf("weak word survived: %q", result.Text)
	}
}

func TestEnhancerUsesProvider(t *testing.T) {
	provider := &stubProvider{output: types.EnhanceContentOutput{
		EnhancedContent: "Led a team of five engineers",
		Explanation:     "Replaced passive phrasing with an action verb.",
	}}
	e := NewEnhancer(provider, nil)

	result := e.Run(context.Background(), "I recieve and review incident reports", "engineering manager", true)
	if provider.calls != 1 {
		t.Fatalf("provider called %d times, want 1", provider.calls)
	}
	if !result.AIUsed {
		t.Error("AIUsed = false after successful AI call")
	}
	if result.Text != "Led a team of five engineers" {
		t.Errorf("Text = %q, want provider rewrite", result.Text)
	}
	if result.Explanation == "" {
		t.Error("expected an explanation from the provider")
	}
	// The model receives the corrected text, not the raw input.
	if !strings.Contains(provider.got.Content, "receive") {
		t.Errorf("provider received uncorrected content: %q", provider.got.Content)
	}
	if provider.got.JobRole != "engineering manager" {
		t.Errorf("JobRole = %q", provider.got.JobRole)
	}
}

func TestEnhancerFallsBackOnProviderError(t *testing.T) {
	provider := &stubProvider{err: apperrors.NewUnavailableError(apperrors.ErrCodeAIUnavailable, "timeout", nil)}
	e := NewEnhancer(provider, nil)

	result := e.Run(context.Background(), "Spearheaded a cross-functional effort", "manager", true)
	if result.AIUsed {
		t.Error("AIUsed = true after provider failure")
	}
	if !strings.Contains(result.Text, "Spearheaded") {
		t.Errorf("deterministic text lost: %q", result.Text)
	}
	if result.Explanation != "" {
		t.Errorf("Explanation = %q, want empty", result.Explanation)
	}
}

func TestEnhancerNilProvider(t *testing.T) {
	e := NewEnhancer(nil, nil)
	result := e.Run(context.Background(), "Managed releases", "engineer", true)
	if result.AIUsed {
		t.Error("AIUsed = true with nil provider")
	}
	if result.Text == "" {
		t.Error("expected deterministic text")
	}
}
