// Package keywords derives a ranked keyword list from job description text.
// The primary path asks the AI provider; when that is unavailable the package
// falls back to a deterministic frequency heuristic.
package keywords

import (
	"regexp"
	"sort"
	"strings"

	"resumeforge/internal/lexicon"
)

const maxKeywords = 20

// Tokens start with a letter and may carry the symbols common in tech terms
// (c++, c#, node.js).
var tokenPattern = regexp.MustCompile(`\b[a-zA-Z][a-zA-Z+#.]*\b`)

// ExtractHeuristic ranks single words and adjacent word pairs by weighted
// frequency and returns the top terms, most frequent first. The ranking is
// deterministic: ties keep first-seen order.
func ExtractHeuristic(text string) []string {
	tokens := tokenPattern.FindAllString(strings.ToLower(text), -1)

	counts := make(map[string]int)
	var order []string
	record := func(term string, weight int) {
		if _, seen := counts[term]; !seen {
			order = append(order, term)
		}
		counts[term] += weight
	}

	for _, token := range tokens {
		if lexicon.StopWords[token] || len(token) <= 2 {
			continue
		}
		record(token, 1)
	}

	// Two-word phrases come from raw whitespace-split words and carry extra
	// weight so "machine learning" outranks either word alone.
	raw := strings.Fields(strings.ToLower(text))
	for i := 0; i < len(raw)-1; i++ {
		if lexicon.StopWords[raw[i]] || lexicon.StopWords[raw[i+1]] {
			continue
		}
		record(raw[i]+" "+raw[i+1], 3)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > maxKeywords {
		order = order[:maxKeywords]
	}
	return order
}
