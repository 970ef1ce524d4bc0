package ats

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
)

func words(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("word%d", i)
	}
	return strings.Join(parts, " ")
}

func TestScoreLengthBanding(t *testing.T) {
	tests := []struct {
		name       string
		wordCount  int
		wantLength int
		wantHint   string
	}{
		{"short resume", 50, 60, "too short"},
		{"target range", 500, 100, ""},
		{"long resume", 1200, 70, "too long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Score(words(tt.wordCount), nil)
			if report.Length != tt.wantLength {
				t.Errorf("Expected length score %d for %d words, got %d", tt.wantLength, tt.wordCount, report.Length)
			}
			if tt.wantHint != "" && !containsSuggestion(report.Suggestions, tt.wantHint) {
				t.Errorf("Expected a %q suggestion, got %v", tt.wantHint, report.Suggestions)
			}
		})
	}
}

func TestScoreFormatDeductions(t *testing.T) {
	// 500 plain words, no email, no section headers, no bullets.
	report := Score(words(500), nil)

	if report.Length != 100 {
		t.Errorf("Expected length 100, got %d", report.Length)
	}
	if report.Format >= 100 {
		t.Errorf("Expected format below 100 for unstructured text, got %d", report.Format)
	}
	if report.Format != 60 {
		t.Errorf("Expected all three format deductions (100-10-20-10), got %d", report.Format)
	}
	if report.KeywordMatch != nil {
		t.Errorf("Expected no keyword sub-score without keywords, got %d", *report.KeywordMatch)
	}
	if report.Overall != 80 {
		t.Errorf("Expected overall (100+60)/2 = 80, got %d", report.Overall)
	}
}

func TestScoreStructuredResume(t *testing.T) {
	text := "jane@example.com\n\n## Experience\n## Education\n## Skills\n" +
		"• one\n• two\n• three\n• four\n• five\n" + words(400)

	report := Score(text, nil)
	if report.Format != 100 {
		t.Errorf("Expected format 100 for structured resume, got %d", report.Format)
	}
	if report.Overall != 100 {
		t.Errorf("Expected overall 100, got %d", report.Overall)
	}
	if !containsSuggestion(report.Suggestions, "good ATS compatibility") {
		t.Errorf("Expected band suggestion for high score, got %v", report.Suggestions)
	}
}

func TestScoreKeywordMatch(t *testing.T) {
	text := words(400) + " python and sql experience"

	report := Score(text, []string{"python", "sql", "docker"})
	if report.KeywordMatch == nil {
		t.Fatal("Expected a keyword sub-score")
	}
	if *report.KeywordMatch != 66 {
		t.Errorf("Expected keyword match 66 (2/3 floored), got %d", *report.KeywordMatch)
	}
	if !containsSuggestion(report.Suggestions, "keyword match") {
		t.Errorf("Expected low keyword match suggestion, got %v", report.Suggestions)
	}
}

func TestScoreKeywordWholeWord(t *testing.T) {
	text := words(400) + " javascript only"

	report := Score(text, []string{"java"})
	if report.KeywordMatch == nil {
		t.Fatal("Expected a keyword sub-score")
	}
	if *report.KeywordMatch != 0 {
		t.Errorf("Expected 'java' not to match inside 'javascript', got %d%%", *report.KeywordMatch)
	}
}

func TestScoreOverallIsMeanOfThree(t *testing.T) {
	text := words(400) + " python sql docker"
	report := Score(text, []string{"python", "sql", "docker"})

	want := (report.Format + report.Length + *report.KeywordMatch) / 3
	if report.Overall != want {
		t.Errorf("Expected overall %d, got %d", want, report.Overall)
	}
}

func TestScoreFormatClampedAtZero(t *testing.T) {
	report := Score("", nil)
	if report.Format < 0 {
		t.Errorf("Format score must not go negative, got %d", report.Format)
	}
}

func TestScoreReportJSONKeywordNA(t *testing.T) {
	data, err := json.Marshal(Score(words(400), nil))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), `"keywordMatch":"N/A"`) {
		t.Errorf("Expected keywordMatch to serialize as N/A, got %s", data)
	}

	data, err = json.Marshal(Score(words(400)+" python", []string{"python"}))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), `"keywordMatch":100`) {
		t.Errorf("Expected numeric keywordMatch, got %s", data)
	}
}

func containsSuggestion(suggestions []string, substr string) bool {
	for _, s := range suggestions {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}
