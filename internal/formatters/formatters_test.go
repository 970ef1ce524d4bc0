package formatters

import (
	"strings"
	"testing"

	"resumeforge/internal/ats"
	"resumeforge/internal/enhance"
	"resumeforge/internal/types"
)

func TestFormatScoreReport(t *testing.T) {
	match := 66
	report := ats.ScoreReport{
		Overall:      82,
		KeywordMatch: &match,
		Format:       80,
		Length:       100,
		Suggestions:  []string{"Add more bullet points."},
	}

	text, err := GlobalRegistry.Format(report, "text")
	if err != nil {
		t.Fatalf("Format(text): %v", err)
	}
	for _, want := range []string{"Overall Score: 82/100", "Keyword Match: 66%", "1. Add more bullet points."} {
		if !strings.Contains(text, want) {
			t.Errorf("text output missing %q:\n%s", want, text)
		}
	}

	md, err := GlobalRegistry.Format(report, "markdown")
	if err != nil {
		t.Fatalf("Format(markdown): %v", err)
	}
	if !strings.Contains(md, "# ATS Compatibility Report") || !strings.Contains(md, "**Overall Score:** 82/100") {
		t.Errorf("markdown output:\n%s", md)
	}
}

func TestFormatScoreReportWithoutKeywords(t *testing.T) {
	report := ats.ScoreReport{Overall: 90, Format: 80, Length: 100}

	text, err := GlobalRegistry.Format(report, "text")
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !strings.Contains(text, "Keyword Match: N/A") {
		t.Errorf("missing N/A keyword line:\n%s", text)
	}
}

func TestFormatEnhanceResult(t *testing.T) {
	result := enhance.Result{
		Text:         "Led the migration",
		Corrections:  []enhance.Correction{{Original: "recieve", Replacement: "receive"}},
		Enhancements: []enhance.Enhancement{{Target: "very", Note: "(removed)"}},
	}

	text, err := GlobalRegistry.Format(result, "text")
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	for _, want := range []string{"Led the migration", "recieve -> receive", "very: (removed)"} {
		if !strings.Contains(text, want) {
			t.Errorf("text output missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "AI NOTES") {
		t.Error("AI section present without an explanation")
	}
}

func TestFormatKeywordsAndSuggestions(t *testing.T) {
	keywords := types.SuggestKeywordsOutput{Keywords: []string{"python", "aws"}}
	text, err := GlobalRegistry.Format(keywords, "text")
	if err != nil {
		t.Fatalf("Format keywords: %v", err)
	}
	if !strings.Contains(text, "1. python") || !strings.Contains(text, "2. aws") {
		t.Errorf("keywords output:\n%s", text)
	}

	suggestion := types.SuggestContentOutput{
		Skills:  []string{"Go"},
		Summary: "Engineer.",
		Bullets: []string{"Shipped it"},
	}
	md, err := GlobalRegistry.Format(suggestion, "markdown")
	if err != nil {
		t.Fatalf("Format suggestion: %v", err)
	}
	if !strings.Contains(md, "## Skills") || !strings.Contains(md, "- Shipped it") {
		t.Errorf("suggestion output:\n%s", md)
	}
}

func TestJSONFallbackAndUnknownFormat(t *testing.T) {
	out, err := GlobalRegistry.Format(map[string]int{"a": 1}, "json")
	if err != nil {
		t.Fatalf("Format json: %v", err)
	}
	if !strings.Contains(out, `"a": 1`) {
		t.Errorf("json output: %s", out)
	}

	if _, err := GlobalRegistry.Format(struct{}{}, "yaml"); err == nil {
		t.Error("expected error for unsupported format")
	}
}
