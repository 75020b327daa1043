// ABOUTME: Markdown rendering for embedded content pages
// ABOUTME: Converts content/*.md to HTML via goldmark

package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"

	"github.com/yuin/goldmark"
)

// renderContentMarkdown reads content/<slug>.md from the embedded filesystem
// and converts it to HTML. The content ships inside the binary, so the output
// is trusted and rendered unescaped.
func renderContentMarkdown(slug string) (template.HTML, error) {
	src, err := fs.ReadFile(contentFS, "content/"+slug+".md")
	if err != nil {
		return "", fmt.Errorf("reading content %s: %w", slug, err)
	}

	var buf bytes.Buffer
	if err := goldmark.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("converting content %s: %w", slug, err)
	}

	return template.HTML(buf.String()), nil
}
