package export

import (
	"regexp"
	"strings"
)

// LineKind identifies the structural element a source line maps to.
type LineKind int

const (
	LineHeading1 LineKind = iota
	LineHeading2
	LineHeading3
	LineBold
	LineBullet
	LineBreak
	LineSeparator
	LineRuns
	LineParagraph
)

// Run is a fragment of a paragraph with uniform styling.
type Run struct {
	Text string
	Bold bool
}

// Line is one classified source line. Text carries the content for headings,
// bold lines, bullets, and paragraphs; Runs carries the fragments of a
// paragraph with inline bold spans.
type Line struct {
	Kind LineKind
	Text string
	Runs []Run
}

var boldSpanPattern = regexp.MustCompile(`\*\*.*?\*\*`)

// ClassifyLines maps each line of markdown-flavored text to a structural
// element. Both the DOCX and PDF writers consume this classification so the
// two formats stay structurally identical.
func ClassifyLines(text string) []Line {
	rawLines := strings.Split(text, "\n")
	lines := make([]Line, 0, len(rawLines))

	for _, raw := range rawLines {
		lines = append(lines, classifyLine(raw))
	}
	return lines
}

func classifyLine(raw string) Line {
	trimmed := strings.TrimSpace(raw)

	switch {
	case strings.HasPrefix(raw, "# "):
		return Line{Kind: LineHeading1, Text: raw[2:]}
	case strings.HasPrefix(raw, "## "):
		return Line{Kind: LineHeading2, Text: raw[3:]}
	case strings.HasPrefix(raw, "### "):
		return Line{Kind: LineHeading3, Text: raw[4:]}
	case strings.HasPrefix(raw, "**") && strings.HasSuffix(raw, "**"):
		return Line{Kind: LineBold, Text: strings.Trim(raw, "*")}
	case strings.HasPrefix(raw, "-") || strings.HasPrefix(raw, "*"):
		return Line{Kind: LineBullet, Text: strings.TrimSpace(raw[1:])}
	case trimmed == "":
		return Line{Kind: LineBreak}
	case isSeparator(trimmed):
		return Line{Kind: LineSeparator}
	case strings.Contains(raw, "**"):
		return Line{Kind: LineRuns, Runs: splitBoldRuns(raw)}
	default:
		return Line{Kind: LineParagraph, Text: raw}
	}
}

// isSeparator reports whether trimmed is a horizontal rule: longer than 10
// characters and made entirely of '='.
func isSeparator(trimmed string) bool {
	if len(trimmed) <= 10 {
		return false
	}
	for _, r := range trimmed {
		if r != '=' {
			return false
		}
	}
	return true
}

// splitBoldRuns breaks a line with inline **bold** spans into alternating
// plain and bold runs. Empty fragments between adjacent spans are dropped.
func splitBoldRuns(raw string) []Run {
	var runs []Run
	last := 0
	for _, span := range boldSpanPattern.FindAllStringIndex(raw, -1) {
		if span[0] > last {
			runs = append(runs, Run{Text: raw[last:span[0]]})
		}
		runs = append(runs, Run{Text: raw[span[0]+2 : span[1]-2], Bold: true})
		last = span[1]
	}
	if last < len(raw) {
		runs = append(runs, Run{Text: raw[last:]})
	}
	return runs
}

// docWriter is the primitive set a binary document backend must provide. The
// shared writeDocument loop drives every backend identically.
type docWriter interface {
	Heading(level int, text string)
	BoldLine(text string)
	Bullet(text string)
	Paragraph(text string)
	StyledParagraph(runs []Run)
	Break()
	Separator()
}

func writeDocument(w docWriter, lines []Line) {
	for _, line := range lines {
		switch line.Kind {
		case LineHeading1:
			w.Heading(1, line.Text)
		case LineHeading2:
			w.Heading(2, line.Text)
		case LineHeading3:
			w.Heading(3, line.Text)
		case LineBold:
			w.BoldLine(line.Text)
		case LineBullet:
			w.Bullet(line.Text)
		case LineBreak:
			w.Break()
		case LineSeparator:
			w.Separator()
		case LineRuns:
			w.StyledParagraph(line.Runs)
		case LineParagraph:
			w.Paragraph(line.Text)
		}
	}
}
