package coverage

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mission77/core/internal/pkg/response"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, editMW gin.HandlerFunc) {
	rg.GET("/districts", h.list)
	rg.GET("/districts/catalog", h.catalogView)
	rg.POST("/districts/:id/toggle", editMW, h.toggle)
}

// GET /districts — the remote-sourced working list
func (h *Handler) list(c *gin.Context) {
	h.svc.Load(c.Request.Context())
	response.OK(c, h.svc.Districts())
}

// GET /districts/catalog — all 77 districts with the coverage overlay
func (h *Handler) catalogView(c *gin.Context) {
	h.svc.Load(c.Request.Context())
	response.OK(c, h.svc.CatalogView())
}

// POST /districts/:id/toggle
func (h *Handler) toggle(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		response.BadRequest(c, "district id required")
		return
	}

	district, err := h.svc.Toggle(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrUnknownDistrict) {
			response.NotFound(c)
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, district)
}
