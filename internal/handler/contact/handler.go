package contact

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	contactService "github.com/jwalitptl/directory-web/internal/service/contact"
	apperrors "github.com/jwalitptl/directory-web/pkg/errors"
)

type Handler struct {
	service contactService.ContactServicer
}

func NewHandler(service contactService.ContactServicer) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the relay under the /api group. Errors are rendered
// by middleware.ErrorHandler.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/contact", h.Submit)
}

func (h *Handler) Submit(c *gin.Context) {
	var req contactService.Submission
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.NewInternal(fmt.Errorf("failed to decode contact request: %w", err)))
		return
	}

	if err := h.service.Submit(c.Request.Context(), &req); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
