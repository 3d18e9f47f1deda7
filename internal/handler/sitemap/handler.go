package sitemap

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	sitemapService "github.com/jwalitptl/directory-web/internal/service/sitemap"
)

type Builder interface {
	Build(ctx context.Context) *sitemapService.URLSet
}

type Handler struct {
	builder Builder
}

func NewHandler(builder Builder) *Handler {
	return &Handler{builder: builder}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/sitemap.xml", h.Sitemap)
}

func (h *Handler) Sitemap(c *gin.Context) {
	body, err := sitemapService.Render(h.builder.Build(c.Request.Context()))
	if err != nil {
		log.Error().Err(err).Msg("failed to encode sitemap")
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
}
