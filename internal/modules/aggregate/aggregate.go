package aggregate

import (
	"github.com/gin-gonic/gin"

	"github.com/mission77/core/internal/catalog"
	"github.com/mission77/core/internal/config"
	"github.com/mission77/core/internal/modules/blog"
	"github.com/mission77/core/internal/modules/coverage"
	"github.com/mission77/core/internal/modules/itinerary"
	"github.com/mission77/core/internal/pkg/response"
)

type aggregateData struct {
	Site      siteSummary       `json:"site"`
	Provinces []provinceSummary `json:"provinces"`
	Coverage  coverageSummary   `json:"coverage"`
}

type siteSummary struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

type provinceSummary struct {
	Name      string `json:"name"`
	Color     string `json:"color"`
	Districts int    `json:"districts"`
	Covered   int    `json:"covered"`
}

type coverageSummary struct {
	Total   int     `json:"total"`
	Covered int     `json:"covered"`
	Percent float64 `json:"percent"`
}

type statResponse struct {
	Districts   int     `json:"districts"`
	Covered     int     `json:"covered"`
	Remaining   int     `json:"remaining"`
	Percent     float64 `json:"percent"`
	Itineraries int     `json:"itineraries"`
	Posts       int     `json:"posts"`
}

type Handler struct {
	cfg      *config.AppConfig
	coverage *coverage.Service
	itins    *itinerary.Service
	posts    *blog.Service
}

func NewHandler(cfg *config.AppConfig, cov *coverage.Service, itins *itinerary.Service, posts *blog.Service) *Handler {
	return &Handler{cfg: cfg, coverage: cov, itins: itins, posts: posts}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/aggregate")
	g.GET("", h.aggregate)
	g.GET("/stat", h.stat)
}

// GET /aggregate — site identity plus the per-province coverage breakdown
func (h *Handler) aggregate(c *gin.Context) {
	h.coverage.Load(c.Request.Context())

	coveredSet := make(map[string]bool)
	for _, id := range h.coverage.CoveredIDs() {
		coveredSet[id] = true
	}

	provinces := make([]provinceSummary, 0, 7)
	for _, p := range catalog.Provinces() {
		summary := provinceSummary{
			Name:      p.Name,
			Color:     catalog.ProvinceColors[p.Name],
			Districts: len(p.Districts),
		}
		for _, d := range p.Districts {
			if coveredSet[d.ID] {
				summary.Covered++
			}
		}
		provinces = append(provinces, summary)
	}

	covered := len(coveredSet)
	response.OK(c, aggregateData{
		Site: siteSummary{
			Title:       h.cfg.Site.Title,
			Description: h.cfg.Site.Description,
			URL:         h.cfg.Site.BaseURL,
		},
		Provinces: provinces,
		Coverage: coverageSummary{
			Total:   catalog.DistrictCount,
			Covered: covered,
			Percent: percent(covered, catalog.DistrictCount),
		},
	})
}

// GET /aggregate/stat
func (h *Handler) stat(c *gin.Context) {
	h.coverage.Load(c.Request.Context())
	covered := h.coverage.CoveredCount()

	itineraries := 0
	if items, err := h.itins.List(c.Request.Context()); err == nil {
		itineraries = len(items)
	}

	response.OK(c, statResponse{
		Districts:   catalog.DistrictCount,
		Covered:     covered,
		Remaining:   catalog.DistrictCount - covered,
		Percent:     percent(covered, catalog.DistrictCount),
		Itineraries: itineraries,
		Posts:       len(h.posts.ListPosts()),
	})
}

func percent(covered, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(covered) / float64(total) * 100
}
