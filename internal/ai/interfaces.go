package ai

import (
	"context"

	"resumeforge/internal/types"
)

// AIProvider interface for different AI implementations.
// All methods return token usage information - callers can ignore it if not needed.
type AIProvider interface {
	EnhanceContent(ctx context.Context, input types.EnhanceContentInput) (types.EnhanceContentOutput, *TokenUsage, error)
	SuggestKeywords(ctx context.Context, input types.SuggestKeywordsInput) (types.SuggestKeywordsOutput, *TokenUsage, error)
	SuggestContent(ctx context.Context, input types.SuggestContentInput) (types.SuggestContentOutput, *TokenUsage, error)
	GetModelInfo(ctx context.Context) *ModelInfo
	Close() error
}
