package enhance

import (
	"regexp"
	"strings"
	"unicode"

	"resumeforge/internal/lexicon"
)

// Correction records one corrected occurrence of a known misspelling.
type Correction struct {
	Original    string `json:"original"`
	Replacement string `json:"replacement"`
}

// misspellingPatterns is built once; whole-word, case-insensitive matching.
var misspellingPatterns = func() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(lexicon.Misspellings))
	for i, m := range lexicon.Misspellings {
		patterns[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(m.Wrong) + `\b`)
	}
	return patterns
}()

// Correct scans text for known misspellings and returns the corrected text
// together with one Correction per occurrence found. Each occurrence keeps
// its leading capitalization. Corrections are ordered by lexicon order, then
// left to right within each entry. Running Correct on already-corrected text
// is a no-op.
func Correct(text string) (string, []Correction) {
	var corrections []Correction
	corrected := text

	for i, m := range lexicon.Misspellings {
		pattern := misspellingPatterns[i]
		matches := pattern.FindAllString(corrected, -1)
		if len(matches) == 0 {
			continue
		}
		for _, matched := range matches {
			corrections = append(corrections, Correction{
				Original:    matched,
				Replacement: matchCase(matched, m.Right),
			})
		}
		corrected = pattern.ReplaceAllStringFunc(corrected, func(matched string) string {
			return matchCase(matched, m.Right)
		})
	}

	return corrected, corrections
}

// matchCase capitalizes replacement when the matched occurrence started with
// an uppercase letter, so "Recieve" corrects to "Receive" rather than
// "receive". Lexicon replacements are stored lowercase.
func matchCase(matched, replacement string) string {
	for _, r := range matched {
		if unicode.IsUpper(r) && replacement != "" {
			return strings.ToUpper(replacement[:1]) + replacement[1:]
		}
		break
	}
	return replacement
}
