package blog

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mission77/core/internal/pkg/response"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/posts")
	g.GET("", h.list)
	g.GET("/slugs", h.slugs)
	g.GET("/district/:districtId", h.byDistrict)
	g.GET("/:slug", h.get)
}

// GET /posts
func (h *Handler) list(c *gin.Context) {
	response.OK(c, h.svc.ListPosts())
}

// GET /posts/slugs
func (h *Handler) slugs(c *gin.Context) {
	response.OK(c, h.svc.ListSlugs())
}

// GET /posts/district/:districtId
func (h *Handler) byDistrict(c *gin.Context) {
	id := strings.TrimSpace(c.Param("districtId"))
	response.OK(c, h.svc.PostsByDistrict(id))
}

// GET /posts/:slug
func (h *Handler) get(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	post := h.svc.GetPost(slug)
	if post == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, post)
}
