package sitemap

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mission77/core/internal/config"
	"github.com/mission77/core/internal/modules/blog"
)

func newSitemapRouter(t *testing.T, contentDir string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.AppConfig{
		Site: config.SiteConfig{
			BaseURL: "https://example.com",
			Title:   "Mission 77",
		},
	}
	r := gin.New()
	RegisterRoutes(r.Group("/"), cfg, blog.NewService(contentDir, zap.NewNop()))
	return r
}

func TestSitemapFixedPaths(t *testing.T) {
	r := newSitemapRouter(t, t.TempDir())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := w.Body.String()
	for _, loc := range []string{
		"<loc>https://example.com</loc>",
		"<loc>https://example.com/districts</loc>",
		"<loc>https://example.com/about</loc>",
		"<loc>https://example.com/itineraries</loc>",
		"<loc>https://example.com/community</loc>",
	} {
		if !strings.Contains(body, loc) {
			t.Errorf("missing %s", loc)
		}
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "application/xml") {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestSitemapIncludesArticles(t *testing.T) {
	dir := t.TempDir()
	content := "---\ntitle: Lakeside\ndate: \"2025-03-10\"\n---\nbody"
	if err := os.WriteFile(filepath.Join(dir, "lakeside.mdx"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	r := newSitemapRouter(t, dir)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil))

	body := w.Body.String()
	if !strings.Contains(body, "<loc>https://example.com/blog/lakeside</loc>") {
		t.Errorf("article URL missing from sitemap:\n%s", body)
	}
	if !strings.Contains(body, "<lastmod>2025-03-10</lastmod>") {
		t.Errorf("article lastmod missing:\n%s", body)
	}
}
