package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"resumeforge/internal/ats"
	"resumeforge/internal/enhance"
	"resumeforge/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "ScoreReport", &ScoreTextFormatter{})
	registry.RegisterFormatter("markdown", "ScoreReport", &ScoreMarkdownFormatter{})
	registry.RegisterFormatter("text", "EnhanceResult", &EnhanceTextFormatter{})
	registry.RegisterFormatter("markdown", "EnhanceResult", &EnhanceMarkdownFormatter{})
	registry.RegisterFormatter("text", "SuggestKeywordsOutput", &KeywordsTextFormatter{})
	registry.RegisterFormatter("markdown", "SuggestKeywordsOutput", &KeywordsMarkdownFormatter{})
	registry.RegisterFormatter("text", "SuggestContentOutput", &SuggestTextFormatter{})
	registry.RegisterFormatter("markdown", "SuggestContentOutput", &SuggestMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case ats.ScoreReport:
		return "ScoreReport"
	case enhance.Result:
		return "EnhanceResult"
	case types.SuggestKeywordsOutput:
		return "SuggestKeywordsOutput"
	case types.SuggestContentOutput:
		return "SuggestContentOutput"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// ScoreTextFormatter handles text formatting for ATS score reports
type ScoreTextFormatter struct{}

func (stf *ScoreTextFormatter) Format(data any) (string, error) {
	report, ok := data.(ats.ScoreReport)
	if !ok {
		return "", fmt.Errorf("expected ScoreReport, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== ATS COMPATIBILITY REPORT ===\n\n")
	output.WriteString(fmt.Sprintf("Overall Score: %d/100\n\n", report.Overall))
	output.WriteString(fmt.Sprintf("Length Score:  %d/100\n", report.Length))
	output.WriteString(fmt.Sprintf("Format Score:  %d/100\n", report.Format))
	if report.KeywordMatch != nil {
		output.WriteString(fmt.Sprintf("Keyword Match: %d%%\n", *report.KeywordMatch))
	} else {
		output.WriteString("Keyword Match: N/A (no job description provided)\n")
	}
	output.WriteString("\n")

	if len(report.Suggestions) > 0 {
		output.WriteString("=== SUGGESTIONS ===\n")
		for i, suggestion := range report.Suggestions {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, suggestion))
		}
	}

	return output.String(), nil
}

func (stf *ScoreTextFormatter) SupportedType() string {
	return "ScoreReport"
}

// ScoreMarkdownFormatter handles markdown formatting for ATS score reports
type ScoreMarkdownFormatter struct{}

func (smf *ScoreMarkdownFormatter) Format(data any) (string, error) {
	report, ok := data.(ats.ScoreReport)
	if !ok {
		return "", fmt.Errorf("expected ScoreReport, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# ATS Compatibility Report\n\n")
	output.WriteString(fmt.Sprintf("**Overall Score:** %d/100\n\n", report.Overall))
	output.WriteString(fmt.Sprintf("- Length Score: %d/100\n", report.Length))
	output.WriteString(fmt.Sprintf("- Format Score: %d/100\n", report.Format))
	if report.KeywordMatch != nil {
		output.WriteString(fmt.Sprintf("- Keyword Match: %d%%\n", *report.KeywordMatch))
	} else {
		output.WriteString("- Keyword Match: N/A\n")
	}
	output.WriteString("\n")

	if len(report.Suggestions) > 0 {
		output.WriteString("## Suggestions\n\n")
		for _, suggestion := range report.Suggestions {
			output.WriteString(fmt.Sprintf("- %s\n", suggestion))
		}
	}

	return output.String(), nil
}

func (smf *ScoreMarkdownFormatter) SupportedType() string {
	return "ScoreReport"
}

// EnhanceTextFormatter handles text formatting for enhancement results
type EnhanceTextFormatter struct{}

func (etf *EnhanceTextFormatter) Format(data any) (string, error) {
	result, ok := data.(enhance.Result)
	if !ok {
		return "", fmt.Errorf("expected EnhanceResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== ENHANCED TEXT ===\n\n")
	output.WriteString(result.Text)
	output.WriteString("\n\n")

	if len(result.Corrections) > 0 {
		output.WriteString("=== SPELLING CORRECTIONS ===\n")
		for _, c := range result.Corrections {
			output.WriteString(fmt.Sprintf("- %s -> %s\n", c.Original, c.Replacement))
		}
		output.WriteString("\n")
	}

	if len(result.Enhancements) > 0 {
		output.WriteString("=== SUGGESTIONS ===\n")
		for i, e := range result.Enhancements {
			output.WriteString(fmt.Sprintf("%d. %s: %s\n", i+1, e.Target, e.Note))
		}
		output.WriteString("\n")
	}

	if result.Explanation != "" {
		output.WriteString("=== AI NOTES ===\n")
		output.WriteString(result.Explanation)
		output.WriteString("\n")
	}

	return output.String(), nil
}

func (etf *EnhanceTextFormatter) SupportedType() string {
	return "EnhanceResult"
}

// EnhanceMarkdownFormatter handles markdown formatting for enhancement results
type EnhanceMarkdownFormatter struct{}

func (emf *EnhanceMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(enhance.Result)
	if !ok {
		return "", fmt.Errorf("expected EnhanceResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Enhanced Text\n\n")
	output.WriteString(result.Text)
	output.WriteString("\n\n")

	if len(result.Corrections) > 0 {
		output.WriteString("## Spelling Corrections\n\n")
		for _, c := range result.Corrections {
			output.WriteString(fmt.Sprintf("- `%s` -> `%s`\n", c.Original, c.Replacement))
		}
		output.WriteString("\n")
	}

	if len(result.Enhancements) > 0 {
		output.WriteString("## Suggestions\n\n")
		for _, e := range result.Enhancements {
			output.WriteString(fmt.Sprintf("- **%s:** %s\n", e.Target, e.Note))
		}
		output.WriteString("\n")
	}

	if result.Explanation != "" {
		output.WriteString("## AI Notes\n\n")
		output.WriteString(result.Explanation)
		output.WriteString("\n")
	}

	return output.String(), nil
}

func (emf *EnhanceMarkdownFormatter) SupportedType() string {
	return "EnhanceResult"
}

// KeywordsTextFormatter handles text formatting for keyword results
type KeywordsTextFormatter struct{}

func (ktf *KeywordsTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.SuggestKeywordsOutput)
	if !ok {
		return "", fmt.Errorf("expected SuggestKeywordsOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== KEYWORDS ===\n")
	for i, keyword := range result.Keywords {
		output.WriteString(fmt.Sprintf("%d. %s\n", i+1, keyword))
	}

	return output.String(), nil
}

func (ktf *KeywordsTextFormatter) SupportedType() string {
	return "SuggestKeywordsOutput"
}

// KeywordsMarkdownFormatter handles markdown formatting for keyword results
type KeywordsMarkdownFormatter struct{}

func (kmf *KeywordsMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.SuggestKeywordsOutput)
	if !ok {
		return "", fmt.Errorf("expected SuggestKeywordsOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Keywords\n\n")
	for _, keyword := range result.Keywords {
		output.WriteString(fmt.Sprintf("- %s\n", keyword))
	}

	return output.String(), nil
}

func (kmf *KeywordsMarkdownFormatter) SupportedType() string {
	return "SuggestKeywordsOutput"
}

// SuggestTextFormatter handles text formatting for content suggestions
type SuggestTextFormatter struct{}

func (stf *SuggestTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.SuggestContentOutput)
	if !ok {
		return "", fmt.Errorf("expected SuggestContentOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== SUGGESTED SUMMARY ===\n")
	output.WriteString(result.Summary)
	output.WriteString("\n\n")

	output.WriteString("=== SUGGESTED SKILLS ===\n")
	output.WriteString(strings.Join(result.Skills, ", "))
	output.WriteString("\n\n")

	output.WriteString("=== SUGGESTED EXPERIENCE BULLETS ===\n")
	for _, bullet := range result.Bullets {
		output.WriteString(fmt.Sprintf("- %s\n", bullet))
	}

	return output.String(), nil
}

func (stf *SuggestTextFormatter) SupportedType() string {
	return "SuggestContentOutput"
}

// SuggestMarkdownFormatter handles markdown formatting for content suggestions
type SuggestMarkdownFormatter struct{}

func (smf *SuggestMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.SuggestContentOutput)
	if !ok {
		return "", fmt.Errorf("expected SuggestContentOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Content Suggestions\n\n")
	output.WriteString("## Summary\n\n")
	output.WriteString(result.Summary)
	output.WriteString("\n\n")

	output.WriteString("## Skills\n\n")
	for _, skill := range result.Skills {
		output.WriteString(fmt.Sprintf("- %s\n", skill))
	}
	output.WriteString("\n")

	output.WriteString("## Experience Bullets\n\n")
	for _, bullet := range result.Bullets {
		output.WriteString(fmt.Sprintf("- %s\n", bullet))
	}

	return output.String(), nil
}

func (smf *SuggestMarkdownFormatter) SupportedType() string {
	return "SuggestContentOutput"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
