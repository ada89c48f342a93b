// Package markdown renders model output into HTML for chat responses.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// md is configured once; GFM covers the table extension, fenced code blocks
// are core CommonMark.
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// ToHTML converts a markdown document to HTML.
func ToHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return buf.String(), nil
}
