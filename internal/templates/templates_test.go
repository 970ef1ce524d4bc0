package templates

import (
	"strings"
	"testing"

	"resumeforge/internal/types"
)

func TestRenderCommaSkillsBecomeBullets(t *testing.T) {
	rendered, err := Render("classic", types.ResumeFields{Skills: "Python, SQL"}, false)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if !strings.Contains(rendered, "- Python\n- SQL") {
		t.Errorf("Expected bulleted skills, got:\n%s", rendered)
	}
	if strings.Contains(rendered, "Python, SQL") {
		t.Errorf("Raw comma string leaked into output:\n%s", rendered)
	}
}

func TestRenderSkillsWithoutCommaPassThrough(t *testing.T) {
	rendered, err := Render("modern", types.ResumeFields{Skills: "Python"}, false)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(rendered, "Python") || strings.Contains(rendered, "- Python") {
		t.Errorf("Expected verbatim skills value, got:\n%s", rendered)
	}
}

func TestRenderMissingFieldsAreEmpty(t *testing.T) {
	rendered, err := Render("modern", types.ResumeFields{Name: "Jane Doe"}, false)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(rendered, "# Jane Doe") {
		t.Errorf("Expected name heading, got:\n%s", rendered)
	}
	if strings.Contains(rendered, "{") {
		t.Errorf("Unsubstituted placeholder left in output:\n%s", rendered)
	}
}

func TestRenderDarkModeOverride(t *testing.T) {
	rendered, err := Render("modern", types.ResumeFields{Summary: "text"}, true)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(rendered, "### PROFESSIONAL SUMMARY") {
		t.Errorf("Expected dark template when dark mode is on, got:\n%s", rendered)
	}
}

func TestRenderTemplateSelection(t *testing.T) {
	tests := []struct {
		name     string
		template string
		marker   string
	}{
		{"modern", "modern", "## SUMMARY"},
		{"classic", "classic", "CONTACT INFORMATION"},
		{"minimalist", "minimalist", "**About Me**"},
		{"dark by name", "dark", "### TECHNICAL SKILLS"},
		{"case insensitive", "CLASSIC", "SUMMARY\n--------------------"},
		{"unknown falls back to modern", "fancy", "## SUMMARY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rendered, err := Render(tt.template, types.ResumeFields{}, false)
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			if !strings.Contains(rendered, tt.marker) {
				t.Errorf("Expected marker %q in %s template output:\n%s", tt.marker, tt.template, rendered)
			}
		})
	}
}

func TestRenderDarkTemplateUnchangedByDarkMode(t *testing.T) {
	plain, err := Render("dark", types.ResumeFields{}, false)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	dark, err := Render("dark", types.ResumeFields{}, true)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if plain != dark {
		t.Error("Dark template should render identically regardless of the dark mode flag")
	}
}
