// Package enhance implements the deterministic text-improvement passes:
// spelling correction against a fixed misspelling table, weak-word removal,
// cliché detection, and action-verb checks on bullet lines.
package enhance

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"

	"resumeforge/internal/lexicon"
)

// Enhancement records one flagged word, phrase, or bullet and the advice
// attached to it. Note is "(removed)" for weak-word deletions; everything
// else is advisory and leaves the text untouched.
type Enhancement struct {
	Target string `json:"target"`
	Note   string `json:"note"`
}

const removedNote = "(removed)"

var weakWordPatterns = func() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(lexicon.WeakWords))
	for i, w := range lexicon.WeakWords {
		patterns[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(w) + `\b`)
	}
	return patterns
}()

// pickVerb selects the suggested verb for a category. Overridable in tests;
// the suggestion is advisory so any member of the category is acceptable.
var pickVerb = func(verbs []string) string {
	return verbs[rand.IntN(len(verbs))]
}

// Enhance runs the weak-word, cliché, and action-verb passes over text.
// Only the weak-word pass mutates: every whole-word occurrence of a weak
// word is deleted, reported once per lexicon entry. Clichés and bullets that
// do not open with a recognized action verb are reported as suggestions in
// pass order.
func Enhance(text string) (string, []Enhancement) {
	var enhancements []Enhancement
	enhanced := text

	for i, weak := range lexicon.WeakWords {
		pattern := weakWordPatterns[i]
		if pattern.MatchString(enhanced) {
			enhanced = pattern.ReplaceAllLiteralString(enhanced, "")
			enhancements = append(enhancements, Enhancement{Target: weak, Note: removedNote})
		}
	}

	lowered := strings.ToLower(enhanced)
	for _, cliche := range lexicon.Cliches {
		if strings.Contains(lowered, cliche) {
			enhancements = append(enhancements, Enhancement{
				Target: cliche,
				Note:   "Consider replacing with more specific achievements",
			})
		}
	}

	for _, line := range strings.Split(enhanced, "\n") {
		content, ok := bulletContent(line)
		if !ok {
			continue
		}
		words := strings.Fields(content)
		if len(words) == 0 {
			continue
		}
		opener := strings.TrimRight(words[0], ",.:;")
		if isActionVerb(opener) {
			continue
		}
		category := classifyBullet(content)
		verb := pickVerb(lexicon.ActionVerbs[category])
		enhancements = append(enhancements, Enhancement{
			Target: fmt.Sprintf("Bullet point: %s", content),
			Note:   fmt.Sprintf("Consider starting with an action verb like '%s'", verb),
		})
	}

	return enhanced, enhancements
}

// bulletContent returns the text after the bullet marker, or false when the
// line is not a bullet.
func bulletContent(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	for _, marker := range []string{"•", "-", "*"} {
		if strings.HasPrefix(trimmed, marker) {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, marker)), true
		}
	}
	return "", false
}

func isActionVerb(word string) bool {
	for _, category := range lexicon.VerbCategories {
		for _, verb := range lexicon.ActionVerbs[category] {
			if strings.EqualFold(verb, word) {
				return true
			}
		}
	}
	return false
}

// classifyBullet scores each verb category by how many of its verbs appear
// anywhere in the bullet content as a case-insensitive substring. Substring
// containment can match a verb inside a longer word; that behavior is kept
// for compatibility with existing suggestion output. Ties go to the earliest
// category in lexicon order, so an all-zero score yields management.
func classifyBullet(content string) lexicon.VerbCategory {
	lowered := strings.ToLower(content)

	best := lexicon.CategoryManagement
	bestScore := -1
	for _, category := range lexicon.VerbCategories {
		score := 0
		for _, verb := range lexicon.ActionVerbs[category] {
			if strings.Contains(lowered, strings.ToLower(verb)) {
				score++
			}
		}
		if score > bestScore {
			best = category
			bestScore = score
		}
	}
	return best
}
