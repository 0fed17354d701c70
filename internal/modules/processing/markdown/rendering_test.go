package markdown

import (
	"strings"
	"testing"
)

func TestRenderBasic(t *testing.T) {
	html := Render("# Pokhara\n\nLakeside **morning**.")
	if !strings.Contains(html, "<h1>Pokhara</h1>") {
		t.Errorf("missing heading in %q", html)
	}
	if !strings.Contains(html, "<strong>morning</strong>") {
		t.Errorf("missing bold in %q", html)
	}
}

func TestRenderEmpty(t *testing.T) {
	if got := Render("   \n  "); got != "" {
		t.Errorf("Render(whitespace) = %q, want empty", got)
	}
}

func TestRenderGFMTable(t *testing.T) {
	src := "| Pass | Elevation |\n| --- | --- |\n| Thorong La | 5416m |\n"
	html := Render(src)
	if !strings.Contains(html, "<table>") {
		t.Errorf("table not rendered: %q", html)
	}
}

func TestRenderImageFigureCaption(t *testing.T) {
	html := Render("![!Phewa Lake at dawn](https://example.com/phewa.jpg)")
	if !strings.Contains(html, "<figure>") {
		t.Fatalf("figure not rendered: %q", html)
	}
	if !strings.Contains(html, "Phewa Lake at dawn") {
		t.Errorf("caption missing: %q", html)
	}
}

func TestRenderPlainImage(t *testing.T) {
	html := Render("![trail](https://example.com/trail.jpg)")
	if strings.Contains(html, "<figure>") {
		t.Errorf("unexpected figure for plain alt: %q", html)
	}
	if !strings.Contains(html, `src="https://example.com/trail.jpg"`) {
		t.Errorf("image src missing: %q", html)
	}
}
