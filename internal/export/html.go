package export

import (
	"bytes"
	"fmt"
	"html"
	"os"

	"github.com/yuin/goldmark"

	"resumeforge/internal/errors"
)

// MarkdownConverter is the optional markdown-to-HTML capability.
type MarkdownConverter interface {
	ToHTML(markdown string) (string, error)
}

type goldmarkConverter struct {
	md goldmark.Markdown
}

func newGoldmarkConverter() MarkdownConverter {
	return &goldmarkConverter{md: goldmark.New()}
}

func (c *goldmarkConverter) ToHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(markdown), &buf); err != nil {
		return "", errors.NewUnavailableError(errors.ErrCodeMarkdownUnavailable,
			"markdown conversion failed", err)
	}
	return buf.String(), nil
}

const lightCSS = `
        body {
            font-family: 'Segoe UI', Arial, sans-serif;
            line-height: 1.6;
            padding: 40px;
            max-width: 800px;
            margin: 0 auto;
            color: #333;
        }
        h1, h2, h3 {
            color: #2c3e50;
        }
        h1 {
            border-bottom: 2px solid #3498db;
            padding-bottom: 10px;
        }
        h2 {
            border-bottom: 1px solid #ddd;
            padding-bottom: 5px;
        }
        a {
            color: #3498db;
            text-decoration: none;
        }
        a:hover {
            text-decoration: underline;
        }
        ul {
            list-style-type: square;
        }
`

const darkCSS = `
        body {
            font-family: 'Segoe UI', Arial, sans-serif;
            line-height: 1.6;
            padding: 40px;
            max-width: 800px;
            margin: 0 auto;
            background-color: #121212;
            color: #e0e0e0;
        }
        h1, h2, h3 {
            color: #bb86fc;
        }
        a {
            color: #03dac6;
            text-decoration: none;
        }
        a:hover {
            text-decoration: underline;
        }
        hr {
            border: none;
            border-top: 1px solid #333;
            margin: 20px 0;
        }
        ul {
            list-style-type: square;
            color: #e0e0e0;
        }
`

const preCSS = `
        body { font-family: Arial, sans-serif; line-height: 1.6; padding: 20px; }
        pre { white-space: pre-wrap; }
`

func htmlDocument(css, body string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <title>Resume</title>
    <meta charset="UTF-8">
    <style>
%s
    </style>
</head>
<body>
    %s
</body>
</html>`, css, body)
}

// writeHTML converts text to HTML when the markdown capability is present,
// otherwise wraps the literal text in a <pre> block. Both paths produce a
// complete standalone document.
func (e *Exporter) writeHTML(text, path string, darkMode bool) error {
	var body, css string

	if e.markdown != nil {
		converted, err := e.markdown.ToHTML(text)
		if err == nil {
			body = converted
			css = lightCSS
			if darkMode {
				css = darkCSS
			}
		}
	}
	if body == "" {
		body = "<pre>" + html.EscapeString(text) + "</pre>"
		css = preCSS
	}

	doc := htmlDocument(css, body)
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return errors.NewIOError(errors.ErrCodeFileNotReadable,
			fmt.Sprintf("failed to write %s", path), err)
	}
	return nil
}
