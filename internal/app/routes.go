package app

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mission77/core/internal/middleware"
	"github.com/mission77/core/internal/modules/aggregate"
	"github.com/mission77/core/internal/modules/blog"
	"github.com/mission77/core/internal/modules/coverage"
	"github.com/mission77/core/internal/modules/itinerary"
	"github.com/mission77/core/internal/modules/servertime"
	"github.com/mission77/core/internal/modules/syndication/feed"
	"github.com/mission77/core/internal/modules/syndication/sitemap"
	"github.com/mission77/core/internal/modules/system/core/health"
	"github.com/mission77/core/internal/modules/tasks/crontask"
	pkgredis "github.com/mission77/core/internal/pkg/redis"
	"github.com/mission77/core/internal/pkg/response"
)

func (a *App) registerRoutes(rc *pkgredis.Client) {
	r := a.router
	editMW := middleware.EditMode(a.cfg.EditParam)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	appInfo := gin.H{
		"name":     "mission77-core",
		"version":  "1.0.0",
		"homepage": a.cfg.Site.BaseURL,
	}

	// Rate limiting and idempotence run on every route (requires Redis).
	r.Use(middleware.RateLimit(rc.Raw()))
	r.Use(middleware.Idempotence(rc.Raw()))

	// Root-level endpoints
	root := r.Group("")
	sitemap.RegisterRoutes(root, a.cfg, a.posts)
	feed.RegisterRoutes(root, a.cfg, a.posts) // /feed.xml, /atom.xml

	// Versioned API
	apiPrefix := "/api/v1"
	api := r.Group(apiPrefix)
	api.Use(middleware.HTTPCache(rc.Raw(), middleware.HTTPCacheOptions{
		TTL:       15 * time.Second,
		Disable:   a.cfg.IsDev(),
		SkipPaths: httpCacheSkipPaths(apiPrefix),
	}))

	// Infrastructure
	health.RegisterRoutes(api, a.db, rc)
	servertime.RegisterRoutes(api)

	// App info endpoints
	api.GET("", func(c *gin.Context) { c.PureJSON(http.StatusOK, appInfo) })
	api.GET("/info", func(c *gin.Context) { c.PureJSON(http.StatusOK, appInfo) })
	api.GET("/uptime", func(c *gin.Context) {
		uptimeMs := time.Since(processStart).Milliseconds()
		c.JSON(http.StatusOK, gin.H{
			"timestamp": uptimeMs,
			"humanize":  humanizeDuration(time.Duration(uptimeMs) * time.Millisecond),
		})
	})

	cleanCache := func(c *gin.Context) {
		deleted, err := middleware.PurgeHTTPCache(c.Request.Context(), rc.Raw())
		if err != nil {
			response.InternalError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "deleted": deleted})
	}
	api.GET("/clean_cache", editMW, cleanCache)

	// Coverage tracker
	coverage.NewHandler(a.coverage).RegisterRoutes(api, editMW)

	// Itineraries
	itinerary.NewHandler(a.itins).RegisterRoutes(api, editMW)

	// Blog
	blog.NewHandler(a.posts).RegisterRoutes(api)

	// Site-wide aggregates
	aggregate.NewHandler(a.cfg, a.coverage, a.itins, a.posts).RegisterRoutes(api)

	// Scheduled job management
	crontask.NewHandler(a.sched).RegisterRoutes(api, editMW)
}

func httpCacheSkipPaths(apiPrefix string) []string {
	p := strings.TrimSuffix(strings.TrimSpace(apiPrefix), "/")
	if p == "" {
		p = "/api/v1"
	}
	return []string{
		p + "/uptime",
		p + "/clean_cache",
		p + "/server-time",
		p + "/health",
		p + "/itineraries",
		p + "/itineraries/*",
		p + "/districts",
		p + "/districts/*",
		p + "/cron-task",
		p + "/cron-task/*",
	}
}
