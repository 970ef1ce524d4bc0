package suggest

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"resumeforge/internal/ai"
	apperrors "resumeforge/internal/errors"
	"resumeforge/internal/types"
)

// withDeterministicRandom pins the random helpers to stable choices for
// the duration of a test.
func withDeterministicRandom(t *testing.T) {
	t.Helper()
	origSample, origPick, origRange := sampleStrings, pickString, randRange
	sampleStrings = func(items []string, n int) []string {
		if n > len(items) {
			n = len(items)
		}
		return items[:n]
	}
	pickString = func(items []string) string { return items[0] }
	randRange = func(low, high int) int { return low }
	t.Cleanup(func() {
		sampleStrings, pickString, randRange = origSample, origPick, origRange
	})
}

func TestFallbackSkillsRoleMatching(t *testing.T) {
	withDeterministicRandom(t)

	tests := []struct {
		name    string
		jobRole string
		want    string
	}{
		{"exact role", "data scientist", "Python"},
		{"role inside longer title", "senior product manager", "Product Strategy"},
		{"title inside role", "designer", "UI/UX Design"},
		{"unknown role falls back to developer", "astronaut", "Python"},
		{"marketing title", "marketing lead", "Digital Marketing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Fallback(types.SuggestContentInput{JobRole: tt.jobRole})
			if len(out.Skills) == 0 {
				t.Fatal("expected skills, got none")
			}
			if out.Skills[0] != tt.want {
				t.Errorf("Skills[0] = %q, want %q", out.Skills[0], tt.want)
			}
			if len(out.Skills) > maxFallbackSkills {
				t.Errorf("got %d skills, want at most %d", len(out.Skills), maxFallbackSkills)
			}
		})
	}
}

func TestFallbackSummaryMatchesRole(t *testing.T) {
	withDeterministicRandom(t)

	out := Fallback(types.SuggestContentInput{JobRole: "Lead Data Scientist"})
	if !strings.Contains(out.Summary, "Data scientist") {
		t.Errorf("summary %q does not mention the role", out.Summary)
	}

	out = Fallback(types.SuggestContentInput{JobRole: "zookeeper"})
	if !strings.Contains(out.Summary, "software developer") {
		t.Errorf("unknown role should use developer summary, got %q", out.Summary)
	}
}

func TestFallbackBulletsFillPlaceholders(t *testing.T) {
	withDeterministicRandom(t)

	out := Fallback(types.SuggestContentInput{JobRole: "software developer", BulletCount: 6})
	if len(out.Bullets) != 6 {
		t.Fatalf("got %d bullets, want 6", len(out.Bullets))
	}
	for _, b := range out.Bullets {
		if strings.ContainsAny(b, "{}") {
			t.Errorf("bullet %q has an unfilled placeholder", b)
		}
	}
	if want := "Developed and maintained web applications serving 100 users"; out.Bullets[0] != want {
		t.Errorf("Bullets[0] = %q, want %q", out.Bullets[0], want)
	}
}

func TestFallbackBulletsDefaultCountAndOverflow(t *testing.T) {
	withDeterministicRandom(t)

	out := Fallback(types.SuggestContentInput{JobRole: "product manager"})
	if len(out.Bullets) != defaultBulletCount {
		t.Errorf("got %d bullets, want %d", len(out.Bullets), defaultBulletCount)
	}

	// Roles without templates of their own still honor large counts.
	out = Fallback(types.SuggestContentInput{JobRole: "designer", BulletCount: 8})
	if len(out.Bullets) != 8 {
		t.Errorf("got %d bullets, want 8", len(out.Bullets))
	}
}

type stubProvider struct {
	output types.SuggestContentOutput
	err    error
	calls  int
}

func (s *stubProvider) SuggestContent(_ context.Context, _ types.SuggestContentInput) (types.SuggestContentOutput, *ai.TokenUsage, error) {
	s.calls++
	return s.output, nil, s.err
}

func TestSuggestPrefersProvider(t *testing.T) {
	provider := &stubProvider{output: types.SuggestContentOutput{
		Skills:  []string{"Go", "Kubernetes"},
		Summary: "Seasoned platform engineer.",
		Bullets: []string{"Cut build times in half"},
	}}
	s := NewSuggester(provider, apperrors.NewLogger(slog.LevelError))

	out := s.Suggest(context.Background(), types.SuggestContentInput{JobRole: "platform engineer"})
	if provider.calls != 1 {
		t.Fatalf("provider called %d times, want 1", provider.calls)
	}
	if out.Summary != "Seasoned platform engineer." {
		t.Errorf("Summary = %q, want provider output", out.Summary)
	}
}

func TestSuggestFallsBackWhenProviderFails(t *testing.T) {
	withDeterministicRandom(t)

	provider := &stubProvider{err: apperrors.NewUnavailableError(apperrors.ErrCodeAIUnavailable, "model offline", errors.New("dial tcp"))}
	s := NewSuggester(provider, apperrors.NewLogger(slog.LevelError))

	out := s.Suggest(context.Background(), types.SuggestContentInput{JobRole: "data scientist", BulletCount: 2})
	if provider.calls != 1 {
		t.Fatalf("provider called %d times, want 1", provider.calls)
	}
	if len(out.Skills) == 0 || len(out.Bullets) != 2 || out.Summary == "" {
		t.Errorf("fallback output incomplete: %+v", out)
	}
}

func TestSuggestNilProviderUsesFallback(t *testing.T) {
	withDeterministicRandom(t)

	s := NewSuggester(nil, nil)
	out := s.Suggest(context.Background(), types.SuggestContentInput{JobRole: "marketing"})
	if len(out.Skills) == 0 || out.Summary == "" || len(out.Bullets) == 0 {
		t.Errorf("fallback output incomplete: %+v", out)
	}
}
