// Package templates renders resume field values into one of four fixed
// markdown-flavored layouts using {placeholder} substitution.
package templates

import (
	"fmt"
	"regexp"
	"strings"

	"resumeforge/internal/errors"
	"resumeforge/internal/types"
)

const modernTemplate = `
# {name}
**{job_role}** | {email} | {phone} | {location}

## SUMMARY
{summary}

## SKILLS
{skills}

## EXPERIENCE
{experience}

## EDUCATION
{education}

## CONTACT
Email: {email}
Phone: {phone}
Location: {location}
{links}
`

const classicTemplate = `
{name}
====================
{job_role}
Contact: {email} | {phone} | {location}

SUMMARY
--------------------
{summary}

SKILLS
--------------------
{skills}

EXPERIENCE
--------------------
{experience}

EDUCATION
--------------------
{education}

CONTACT INFORMATION
--------------------
Email: {email}
Phone: {phone}
Address: {location}
{links}
`

const minimalistTemplate = `
# {name}
{job_role} | {location}

**About Me**
{summary}

**Skills**
{skills}

**Experience**
{experience}

**Education**
{education}

**Contact**
{email} | {phone}
{links}
`

const darkTemplate = `
# {name}
## {job_role}
*{location}*

### PROFESSIONAL SUMMARY
{summary}

### TECHNICAL SKILLS
{skills}

### PROFESSIONAL EXPERIENCE
{experience}

### EDUCATION
{education}

### CONTACT INFORMATION
- Email: {email}
- Phone: {phone}
- Location: {location}
{links}
`

var templatesByName = map[string]string{
	"modern":     modernTemplate,
	"classic":    classicTemplate,
	"minimalist": minimalistTemplate,
	"dark":       darkTemplate,
}

var placeholderPattern = regexp.MustCompile(`\{([a-z_]+)\}`)

// Names returns the supported template names.
func Names() []string {
	return []string{"modern", "classic", "minimalist", "dark"}
}

// lookup resolves the template text. Dark mode overrides any template other
// than "dark" itself; unrecognized names fall back to modern.
func lookup(name string, darkMode bool) string {
	if darkMode && !strings.EqualFold(name, "dark") {
		return darkTemplate
	}
	if tmpl, ok := templatesByName[strings.ToLower(name)]; ok {
		return tmpl
	}
	return modernTemplate
}

// Render substitutes fields into the named template. Missing fields render as
// empty strings; a comma-separated skills value becomes a bullet list. The
// only failure mode is a template placeholder with no corresponding field,
// which the fixed template set should never produce.
func Render(name string, fields types.ResumeFields, darkMode bool) (string, error) {
	tmpl := lookup(name, darkMode)
	values := fields.Map()

	if strings.Contains(values["skills"], ",") {
		parts := strings.Split(values["skills"], ",")
		bullets := make([]string, len(parts))
		for i, part := range parts {
			bullets[i] = "- " + strings.TrimSpace(part)
		}
		values["skills"] = strings.Join(bullets, "\n")
	}

	var missing string
	rendered := placeholderPattern.ReplaceAllStringFunc(tmpl, func(match string) string {
		key := match[1 : len(match)-1]
		value, ok := values[key]
		if !ok {
			if missing == "" {
				missing = key
			}
			return match
		}
		return value
	})
	if missing != "" {
		return "", errors.NewTemplateError(errors.ErrCodeTemplateFieldMissing,
			fmt.Sprintf("template %q references unknown field %q", name, missing), nil)
	}

	return rendered, nil
}
