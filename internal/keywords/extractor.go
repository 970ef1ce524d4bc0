package keywords

import (
	"context"

	"resumeforge/internal/ai"
	"resumeforge/internal/errors"
	"resumeforge/internal/types"
)

// Provider is the slice of the AI provider the extractor needs.
type Provider interface {
	SuggestKeywords(ctx context.Context, input types.SuggestKeywordsInput) (types.SuggestKeywordsOutput, *ai.TokenUsage, error)
}

// Extractor resolves keywords through the AI provider when one is configured
// and falls back to the deterministic heuristic otherwise.
type Extractor struct {
	provider Provider
	logger   *errors.Logger
}

func NewExtractor(provider Provider, logger *errors.Logger) *Extractor {
	return &Extractor{provider: provider, logger: logger}
}

// Extract returns up to 20 keywords for the job description. It never fails:
// any provider error degrades to the heuristic path.
func (e *Extractor) Extract(ctx context.Context, jobDescription string) []string {
	if e.provider != nil {
		output, _, err := e.provider.SuggestKeywords(ctx, types.SuggestKeywordsInput{
			JobDescription: jobDescription,
		})
		if err == nil && len(output.Keywords) > 0 {
			keywords := output.Keywords
			if len(keywords) > maxKeywords {
				keywords = keywords[:maxKeywords]
			}
			return keywords
		}
		if err != nil && e.logger != nil {
			e.logger.Warn("AI keyword extraction unavailable, using heuristic fallback",
				"unavailable", errors.IsUnavailable(err),
				"error", err.Error())
		}
	}
	return ExtractHeuristic(jobDescription)
}
