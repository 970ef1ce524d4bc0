package keywords

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"resumeforge/internal/ai"
	"resumeforge/internal/errors"
	"resumeforge/internal/types"
)

func TestExtractHeuristicRanksByFrequency(t *testing.T) {
	text := "python python python docker docker kubernetes"

	keywords := ExtractHeuristic(text)
	if len(keywords) < 3 {
		t.Fatalf("Expected at least 3 keywords, got %v", keywords)
	}
	if keywords[0] != "python" {
		t.Errorf("Expected 'python' ranked first, got %q", keywords[0])
	}
}

func TestExtractHeuristicDropsStopWordsAndShortTokens(t *testing.T) {
	keywords := ExtractHeuristic("the and with for go ml experienced engineer")

	for _, kw := range keywords {
		if kw == "the" || kw == "and" || kw == "with" || kw == "for" {
			t.Errorf("Stop word %q leaked into keywords", kw)
		}
		if len(kw) <= 2 && !strings.Contains(kw, " ") {
			t.Errorf("Short token %q leaked into keywords", kw)
		}
	}
}

func TestExtractHeuristicWeightsPhrases(t *testing.T) {
	// "machine learning" appears once as a pair (weight 3) while "cloud"
	// appears twice as a single word (weight 2).
	text := "machine learning cloud cloud"

	keywords := ExtractHeuristic(text)
	phraseIdx, cloudIdx := -1, -1
	for i, kw := range keywords {
		switch kw {
		case "machine learning":
			phraseIdx = i
		case "cloud":
			cloudIdx = i
		}
	}
	if phraseIdx == -1 {
		t.Fatalf("Expected phrase 'machine learning' in %v", keywords)
	}
	if cloudIdx != -1 && phraseIdx > cloudIdx {
		t.Errorf("Expected weighted phrase to outrank repeated single word, got %v", keywords)
	}
}

func TestExtractHeuristicTechTokens(t *testing.T) {
	keywords := ExtractHeuristic("node.js and asp.net development")

	found := map[string]bool{}
	for _, kw := range keywords {
		found[kw] = true
	}
	if !found["node.js"] {
		t.Errorf("Expected 'node.js' to survive tokenization, got %v", keywords)
	}
	if !found["asp.net"] {
		t.Errorf("Expected 'asp.net' to survive tokenization, got %v", keywords)
	}
}

func TestExtractHeuristicCapsAtTwenty(t *testing.T) {
	var sb strings.Builder
	for r := 'a'; r <= 'z'; r++ {
		sb.WriteString(strings.Repeat(string(r), 4))
		sb.WriteString(". ")
	}

	keywords := ExtractHeuristic(sb.String())
	if len(keywords) > 20 {
		t.Errorf("Expected at most 20 keywords, got %d", len(keywords))
	}
}

func TestExtractHeuristicDeterministic(t *testing.T) {
	text := "Senior software engineer with python, sql, docker, kubernetes " +
		"and terraform experience. Machine learning pipelines in python. " +
		"Cloud infrastructure on aws with docker and kubernetes."

	first := ExtractHeuristic(text)
	for i := 0; i < 10; i++ {
		if got := ExtractHeuristic(text); !reflect.DeepEqual(got, first) {
			t.Fatalf("Run %d differed:\nfirst: %v\ngot:   %v", i, first, got)
		}
	}
}

type stubProvider struct {
	output types.SuggestKeywordsOutput
	err    error
	calls  int
}

func (s *stubProvider) SuggestKeywords(_ context.Context, _ types.SuggestKeywordsInput) (types.SuggestKeywordsOutput, *ai.TokenUsage, error) {
	s.calls++
	return s.output, nil, s.err
}

func TestExtractorUsesProvider(t *testing.T) {
	provider := &stubProvider{output: types.SuggestKeywordsOutput{Keywords: []string{"python", "sql"}}}
	extractor := NewExtractor(provider, nil)

	keywords := extractor.Extract(context.Background(), "some job description")
	if !reflect.DeepEqual(keywords, []string{"python", "sql"}) {
		t.Errorf("Expected provider keywords, got %v", keywords)
	}
	if provider.calls != 1 {
		t.Errorf("Expected one provider call, got %d", provider.calls)
	}
}

func TestExtractorFallsBackWhenUnavailable(t *testing.T) {
	provider := &stubProvider{
		err: errors.NewUnavailableError(errors.ErrCodeAIUnavailable, "service down", nil),
	}
	extractor := NewExtractor(provider, nil)

	text := "python python docker"
	keywords := extractor.Extract(context.Background(), text)
	if !reflect.DeepEqual(keywords, ExtractHeuristic(text)) {
		t.Errorf("Expected heuristic fallback result, got %v", keywords)
	}
}

func TestExtractorNilProviderUsesHeuristic(t *testing.T) {
	extractor := NewExtractor(nil, nil)
	text := "kubernetes kubernetes helm"
	if got := extractor.Extract(context.Background(), text); !reflect.DeepEqual(got, ExtractHeuristic(text)) {
		t.Errorf("Expected heuristic result without provider, got %v", got)
	}
}
