package utils

import (
	"strings"
	"testing"
)

func TestRenderMarkdownBasic(t *testing.T) {
	out := RenderMarkdown("# Hello\n\nsome **bold** text")
	if !strings.Contains(out, "<h1") || !strings.Contains(out, "<strong>bold</strong>") {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestRenderMarkdownStripsScripts(t *testing.T) {
	out := RenderMarkdown("hi <script>alert(1)</script>")
	if strings.Contains(out, "<script") {
		t.Fatalf("script tag survived sanitization: %s", out)
	}
}
