package sitemap

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mission77/core/internal/config"
	"github.com/mission77/core/internal/modules/blog"
)

func RegisterRoutes(rg *gin.RouterGroup, cfg *config.AppConfig, posts *blog.Service) {
	render := func(c *gin.Context) {
		c.Header("Content-Type", "application/xml; charset=utf-8")
		c.String(200, buildSitemap(cfg, posts))
	}
	rg.GET("/sitemap.xml", render)
	rg.GET("/sitemap", render)
}

type sitemapURL struct {
	Loc        string
	LastMod    string
	ChangeFreq string
	Priority   float64
}

// fixedPaths are the canonical site views, in priority order.
var fixedPaths = []struct {
	path       string
	changeFreq string
	priority   float64
}{
	{"", "weekly", 1.0},
	{"/districts", "weekly", 0.9},
	{"/about", "monthly", 0.8},
	{"/itineraries", "daily", 0.8},
	{"/community", "weekly", 0.7},
}

func buildSitemap(cfg *config.AppConfig, posts *blog.Service) string {
	base := cfg.Site.BaseURL
	today := time.Now().Format("2006-01-02")

	var urls []sitemapURL
	for _, p := range fixedPaths {
		urls = append(urls, sitemapURL{
			Loc:        base + p.path,
			LastMod:    today,
			ChangeFreq: p.changeFreq,
			Priority:   p.priority,
		})
	}

	for _, post := range posts.ListPosts() {
		lastMod := post.Date
		if lastMod == "" {
			lastMod = today
		}
		urls = append(urls, sitemapURL{
			Loc:        fmt.Sprintf("%s/blog/%s", base, post.Slug),
			LastMod:    lastMod,
			ChangeFreq: "monthly",
			Priority:   0.6,
		})
	}

	return renderXML(urls)
}

func renderXML(urls []sitemapURL) string {
	xml := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
`
	for _, u := range urls {
		xml += fmt.Sprintf(`  <url>
    <loc>%s</loc>
    <lastmod>%s</lastmod>
    <changefreq>%s</changefreq>
    <priority>%.1f</priority>
  </url>
`, escapeXML(u.Loc), u.LastMod, u.ChangeFreq, u.Priority)
	}
	xml += `</urlset>`
	return xml
}

func escapeXML(s string) string {
	out := ""
	for _, r := range s {
		switch r {
		case '&':
			out += "&amp;"
		case '<':
			out += "&lt;"
		case '>':
			out += "&gt;"
		default:
			out += string(r)
		}
	}
	return out
}
