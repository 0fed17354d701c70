package feed

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mission77/core/internal/config"
	"github.com/mission77/core/internal/modules/blog"
)

const feedItemLimit = 20

// RegisterRoutes mounts RSS and Atom feed endpoints.
func RegisterRoutes(rg *gin.RouterGroup, cfg *config.AppConfig, posts *blog.Service) {
	rg.GET("/feed", func(c *gin.Context) {
		feedType := c.DefaultQuery("type", "rss") // rss | atom
		renderFeed(c, cfg, posts, feedType)
	})
	rg.GET("/feed.xml", func(c *gin.Context) {
		renderFeed(c, cfg, posts, "rss")
	})
	rg.GET("/atom.xml", func(c *gin.Context) {
		renderFeed(c, cfg, posts, "atom")
	})
}

type feedItem struct {
	Title   string
	Link    string
	GUID    string
	Date    string
	Content string
}

func renderFeed(c *gin.Context, cfg *config.AppConfig, posts *blog.Service, feedType string) {
	all := posts.ListPosts()
	if len(all) > feedItemLimit {
		all = all[:feedItemLimit]
	}

	base := cfg.Site.BaseURL
	items := make([]feedItem, 0, len(all))
	for _, meta := range all {
		link := fmt.Sprintf("%s/blog/%s", base, meta.Slug)
		items = append(items, feedItem{
			Title:   meta.Title,
			Link:    link,
			GUID:    link,
			Date:    meta.Date,
			Content: meta.Description,
		})
	}

	switch feedType {
	case "atom":
		c.Header("Content-Type", "application/atom+xml; charset=utf-8")
		c.String(200, buildAtom(cfg.Site.Title, cfg.Site.Description, base, items))
	default:
		c.Header("Content-Type", "application/rss+xml; charset=utf-8")
		c.String(200, buildRSS(cfg.Site.Title, cfg.Site.Description, base, items))
	}
}

// feedDate renders the frontmatter ISO date in the given layout, falling back
// to the raw string when it does not parse.
func feedDate(isoDate, layout string) string {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}
	return t.Format(layout)
}

func buildRSS(title, desc, link string, items []feedItem) string {
	now := time.Now().Format(time.RFC1123Z)
	xml := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>%s</title>
    <link>%s</link>
    <description>%s</description>
    <lastBuildDate>%s</lastBuildDate>
`, escapeXML(title), escapeXML(link), escapeXML(desc), now)

	for _, item := range items {
		xml += fmt.Sprintf(`    <item>
      <title>%s</title>
      <link>%s</link>
      <guid>%s</guid>
      <pubDate>%s</pubDate>
      <description><![CDATA[%s]]></description>
    </item>
`, escapeXML(item.Title), escapeXML(item.Link), escapeXML(item.GUID),
			feedDate(item.Date, time.RFC1123Z), item.Content)
	}

	xml += `  </channel>
</rss>`
	return xml
}

func buildAtom(title, desc, link string, items []feedItem) string {
	now := time.Now().Format(time.RFC3339)
	xml := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>%s</title>
  <subtitle>%s</subtitle>
  <link href="%s"/>
  <updated>%s</updated>
  <id>%s</id>
`, escapeXML(title), escapeXML(desc), escapeXML(link), now, escapeXML(link))

	for _, item := range items {
		xml += fmt.Sprintf(`  <entry>
    <title>%s</title>
    <link href="%s"/>
    <id>%s</id>
    <updated>%s</updated>
    <content type="html"><![CDATA[%s]]></content>
  </entry>
`, escapeXML(item.Title), escapeXML(item.Link), escapeXML(item.GUID),
			feedDate(item.Date, time.RFC3339), item.Content)
	}

	xml += `</feed>`
	return xml
}

// escapeXML replaces XML special characters in attribute/element content.
func escapeXML(s string) string {
	result := ""
	for _, r := range s {
		switch r {
		case '&':
			result += "&amp;"
		case '<':
			result += "&lt;"
		case '>':
			result += "&gt;"
		case '"':
			result += "&quot;"
		default:
			result += string(r)
		}
	}
	return result
}
