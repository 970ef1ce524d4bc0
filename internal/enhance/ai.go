package enhance

import (
	"context"

	"resumeforge/internal/ai"
	"resumeforge/internal/errors"
	"resumeforge/internal/types"
)

// Provider is the AI surface used for rewrite-style enhancement.
// *ai.GeminiProvider satisfies it.
type Provider interface {
	EnhanceContent(ctx context.Context, input types.EnhanceContentInput) (types.EnhanceContentOutput, *ai.TokenUsage, error)
}

// Result is the combined outcome of an enhancement request. Corrections and
// Enhancements come from the deterministic passes; Explanation is set only
// when the AI rewrite ran.
type Result struct {
	Text         string        `json:"text"`
	Corrections  []Correction  `json:"corrections,omitempty"`
	Enhancements []Enhancement `json:"enhancements,omitempty"`
	Explanation  string        `json:"explanation,omitempty"`
	AIUsed       bool          `json:"aiUsed"`
}

type Enhancer struct {
	provider Provider
	logger   *errors.Logger
}

func NewEnhancer(provider Provider, logger *errors.Logger) *Enhancer {
	return &Enhancer{provider: provider, logger: logger}
}

// Run corrects spelling, applies the deterministic enhancement passes, and,
// when useAI is set and a provider is configured, asks the model to rewrite
// the corrected text for jobRole. An unavailable provider leaves the
// deterministic result in place.
func (e *Enhancer) Run(ctx context.Context, text, jobRole string, useAI bool) Result {
	corrected, corrections := Correct(text)
	enhanced, enhancements := Enhance(corrected)
	result := Result{
		Text:         enhanced,
		Corrections:  corrections,
		Enhancements: enhancements,
	}

	if !useAI || e.provider == nil {
		return result
	}

	out, _, err := e.provider.EnhanceContent(ctx, types.EnhanceContentInput{
		Content: enhanced,
		JobRole: jobRole,
	})
	if err != nil {
		if e.logger != nil {
			e.logger.Warn("AI enhancement failed, keeping deterministic result",
				"error", err,
				"unavailable", errors.IsUnavailable(err))
		}
		return result
	}

	result.Text = out.EnhancedContent
	result.Explanation = out.Explanation
	result.AIUsed = true
	return result
}
