package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/LumiereBeauty/salon-scheduler/internal/domain/booking"
	"github.com/LumiereBeauty/salon-scheduler/internal/httperr"
	"github.com/LumiereBeauty/salon-scheduler/internal/httpresp"
)

// PublicHandler serves the unauthenticated catalog the booking page renders.
type PublicHandler struct {
	repo domain.Repository
}

func NewPublicHandler(repo domain.Repository) *PublicHandler {
	return &PublicHandler{repo: repo}
}

func (h *PublicHandler) Stylists(c *gin.Context) {
	stylists, err := h.repo.ListActiveStylists(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "list_failed", "Failed to load stylists.")
		return
	}
	httpresp.List(c, stylists)
}

func (h *PublicHandler) Services(c *gin.Context) {
	services, err := h.repo.ListActiveServiceItems(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "list_failed", "Failed to load services.")
		return
	}
	httpresp.List(c, services)
}
