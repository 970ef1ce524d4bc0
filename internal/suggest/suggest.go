// Package suggest generates starter resume content for a target role,
// using the AI provider when configured and deterministic role tables
// otherwise.
package suggest

import (
	"context"
	"math/rand"
	"strconv"
	"strings"

	"resumeforge/internal/ai"
	"resumeforge/internal/errors"
	"resumeforge/internal/types"
)

const (
	maxFallbackSkills  = 12
	defaultBulletCount = 3
)

// Overridable for deterministic tests.
var (
	sampleStrings = func(items []string, n int) []string {
		if n > len(items) {
			n = len(items)
		}
		out := make([]string, 0, n)
		for _, idx := range rand.Perm(len(items))[:n] {
			out = append(out, items[idx])
		}
		return out
	}
	pickString = func(items []string) string {
		return items[rand.Intn(len(items))]
	}
	randRange = func(low, high int) int {
		return low + rand.Intn(high-low+1)
	}
)

// Provider is the AI surface the suggester depends on. *ai.GeminiProvider
// satisfies it.
type Provider interface {
	SuggestContent(ctx context.Context, input types.SuggestContentInput) (types.SuggestContentOutput, *ai.TokenUsage, error)
}

type Suggester struct {
	provider Provider
	logger   *errors.Logger
}

func NewSuggester(provider Provider, logger *errors.Logger) *Suggester {
	return &Suggester{provider: provider, logger: logger}
}

// Suggest returns role-appropriate skills, a summary, and experience
// bullets. AI output is preferred; any provider failure falls back to
// the built-in role tables so the command always produces content.
func (s *Suggester) Suggest(ctx context.Context, input types.SuggestContentInput) types.SuggestContentOutput {
	if s.provider != nil {
		out, _, err := s.provider.SuggestContent(ctx, input)
		if err == nil {
			return out
		}
		if s.logger != nil {
			s.logger.Warn("AI content suggestion failed, using built-in suggestions",
				"error", err,
				"unavailable", errors.IsUnavailable(err),
				"jobRole", input.JobRole)
		}
	}
	return Fallback(input)
}

// Fallback builds a suggestion from the hardcoded role tables.
func Fallback(input types.SuggestContentInput) types.SuggestContentOutput {
	jobRole := strings.ToLower(strings.TrimSpace(input.JobRole))
	count := input.BulletCount
	if count <= 0 {
		count = defaultBulletCount
	}
	return types.SuggestContentOutput{
		Skills:  fallbackSkills(jobRole),
		Summary: fallbackSummary(jobRole),
		Bullets: fallbackBullets(jobRole, count),
	}
}

func fallbackSkills(jobRole string) []string {
	closest := defaultRole
	for _, role := range roleKeys {
		if strings.Contains(jobRole, role) || strings.Contains(role, jobRole) {
			closest = role
			break
		}
	}
	return sampleStrings(skillSuggestions[closest], maxFallbackSkills)
}

func fallbackSummary(jobRole string) string {
	for _, role := range roleKeys {
		if strings.Contains(jobRole, role) {
			return pickString(summarySuggestions[role])
		}
	}
	return pickString(summarySuggestions[defaultRole])
}

func fallbackBullets(jobRole string, count int) []string {
	var templates []string
	for _, role := range roleKeys {
		if strings.Contains(jobRole, role) {
			if t, ok := experienceTemplates[role]; ok {
				templates = t
			}
			break
		}
	}
	if templates == nil {
		templates = experienceTemplates[defaultRole]
	}

	bullets := make([]string, 0, count)
	for _, tmpl := range sampleStrings(templates, count) {
		bullets = append(bullets, fillTemplate(tmpl))
	}
	// Repeat from the default pool when more bullets were asked for
	// than the role has templates.
	for len(bullets) < count {
		bullets = append(bullets, fillTemplate(pickString(experienceTemplates[defaultRole])))
	}
	return bullets
}

func fillTemplate(tmpl string) string {
	bullet := strings.ReplaceAll(tmpl, "{technology}", pickString(templateTechnologies))
	bullet = strings.ReplaceAll(bullet, "{number}", strconv.Itoa(randRange(100, 10000)))
	bullet = strings.ReplaceAll(bullet, "{percentage}", strconv.Itoa(randRange(15, 50)))
	return strings.ReplaceAll(bullet, "{metric}", pickString(templateMetrics))
}
