package feed

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

func newFeedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	dir := t.TempDir()
	article := "---\ntitle: Lakeside Days\ndescription: Around Phewa\ndate: \"2025-03-10\"\n---\nbody"
	if err := os.WriteFile(filepath.Join(dir, "lakeside.mdx"), []byte(article), 0o644); err != nil {
		t.Fatal(err)
	}

	gin.SetMode(gin.TestMode)
	cfg := &config.AppConfig{
		Site: config.SiteConfig{
			BaseURL:     "https://example.com",
			Title:       "Mission 77",
			Description: "District by district",
		},
	}
	r := gin.New()
	RegisterRoutes(r.Group("/"), cfg, blog.NewService(dir, zap.NewNop()))
	return r
}

func TestRSSFeed(t *testing.T) {
	r := newFeedRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/feed.xml", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "<rss version=\"2.0\">") {
		t.Error("not an RSS document")
	}
	if !strings.Contains(body, "<title>Lakeside Days</title>") {
		t.Errorf("article missing:\n%s", body)
	}
	if !strings.Contains(body, "https://example.com/blog/lakeside") {
		t.Error("article link missing")
	}
}

func TestAtomFeed(t *testing.T) {
	r := newFeedRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/atom.xml", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "<feed xmlns=\"http://www.w3.org/2005/Atom\">") {
		t.Error("not an Atom document")
	}
	if !strings.Contains(body, "<updated>2025-03-10T00:00:00Z</updated>") {
		t.Errorf("entry date missing:\n%s", body)
	}
}

func TestFeedTypeQuery(t *testing.T) {
	r := newFeedRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/feed?type=atom", nil))

	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "atom+xml") {
		t.Errorf("Content-Type = %q, want atom", ct)
	}
}
