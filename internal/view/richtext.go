package view

import (
	"bytes"
	"html"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

var (
	// Hard wraps keep the multi-line greeting messages intact.
	markdown = goldmark.New(goldmark.WithRendererOptions(goldmarkhtml.WithHardWraps()))
	// UGC policy: document authors are trusted with formatting, not scripts.
	sanitizer = bluemonday.UGCPolicy()
)

// RenderRichText renders configuration text (greeting message, FAQ answers)
// to sanitized HTML. The plain text stays canonical; on a render failure the
// escaped source is returned instead.
func RenderRichText(src string) string {
	if src == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "<p>" + html.EscapeString(src) + "</p>"
	}
	return sanitizer.Sanitize(buf.String())
}
