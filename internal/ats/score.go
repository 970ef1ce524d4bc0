// Package ats estimates how well resume text will survive an applicant
// tracking system: word-count banding, structural checks, and an optional
// keyword-match percentage, aggregated into a 0-100 overall score.
package ats

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"resumeforge/internal/lexicon"
)

// ScoreReport is the result of one scoring pass. KeywordMatch is nil when no
// keyword set was supplied; it serializes as the string "N/A" to keep report
// output stable for existing consumers.
type ScoreReport struct {
	Overall      int      `json:"overall"`
	KeywordMatch *int     `json:"keywordMatch"`
	Format       int      `json:"format"`
	Length       int      `json:"length"`
	Suggestions  []string `json:"suggestions"`
}

// MarshalJSON renders a nil KeywordMatch as "N/A".
func (r ScoreReport) MarshalJSON() ([]byte, error) {
	type alias struct {
		Overall      int      `json:"overall"`
		KeywordMatch any      `json:"keywordMatch"`
		Format       int      `json:"format"`
		Length       int      `json:"length"`
		Suggestions  []string `json:"suggestions"`
	}
	a := alias{
		Overall:      r.Overall,
		KeywordMatch: "N/A",
		Format:       r.Format,
		Length:       r.Length,
		Suggestions:  r.Suggestions,
	}
	if r.KeywordMatch != nil {
		a.KeywordMatch = *r.KeywordMatch
	}
	return json.Marshal(a)
}

// Score computes an ATS compatibility report for text. keywords may be nil or
// empty, in which case the keyword sub-score is excluded from the overall
// average. Scoring never fails; missing structure just lowers sub-scores and
// adds suggestions.
func Score(text string, keywords []string) ScoreReport {
	report := ScoreReport{Suggestions: []string{}}

	report.Length = scoreLength(text, &report.Suggestions)
	report.Format = scoreFormat(text, &report.Suggestions)

	if len(keywords) > 0 {
		match := scoreKeywords(text, keywords)
		report.KeywordMatch = &match
		if match < 70 {
			report.Suggestions = append(report.Suggestions,
				fmt.Sprintf("Low keyword match with job description (%d%%). Try including more relevant keywords.", match))
		}
		report.Overall = (report.Format + report.Length + match) / 3
	} else {
		report.Overall = (report.Format + report.Length) / 2
	}

	switch {
	case report.Overall < 70:
		report.Suggestions = append(report.Suggestions,
			"Overall ATS compatibility is low. Follow the suggestions to improve.")
	case report.Overall < 85:
		report.Suggestions = append(report.Suggestions,
			"Resume has moderate ATS compatibility. Make suggested improvements for better results.")
	default:
		report.Suggestions = append(report.Suggestions,
			"Resume has good ATS compatibility.")
	}

	return report
}

// scoreLength bands on whitespace-delimited word count; 400-800 words is the
// target range the suggestions reference.
func scoreLength(text string, suggestions *[]string) int {
	wordCount := len(strings.Fields(text))

	switch {
	case wordCount < 300:
		*suggestions = append(*suggestions, "Resume is too short. Aim for 400-800 words.")
		return 60
	case wordCount > 1000:
		*suggestions = append(*suggestions, "Resume is too long. Aim for 400-800 words.")
		return 70
	default:
		return 100
	}
}

func scoreFormat(text string, suggestions *[]string) int {
	score := 100

	if !strings.Contains(text, "@") {
		score -= 10
		*suggestions = append(*suggestions, "No email address detected.")
	}

	found := 0
	for _, section := range lexicon.SectionHeaders {
		if wholeWordMatch(text, section) {
			found++
		}
	}
	if found < 3 {
		score -= 20
		*suggestions = append(*suggestions,
			"Not enough clear section headers detected. Include clear sections for Experience, Education, Skills, etc.")
	}

	// Counts every bullet-marker rune, including hyphens inside words, to
	// stay consistent with historical scores.
	bullets := strings.Count(text, "•") + strings.Count(text, "-") + strings.Count(text, "*")
	if bullets < 5 {
		score -= 10
		*suggestions = append(*suggestions,
			"Not enough bullet points. Use bullets to highlight achievements and responsibilities.")
	}

	return max(0, score)
}

// scoreKeywords returns the integer percentage of keywords found as whole
// words, rounded down.
func scoreKeywords(text string, keywords []string) int {
	matched := 0
	for _, keyword := range keywords {
		if wholeWordMatch(text, keyword) {
			matched++
		}
	}
	return matched * 100 / len(keywords)
}

func wholeWordMatch(text, word string) bool {
	pattern := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
	return pattern.MatchString(text)
}
