package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/LumiereBeauty/salon-scheduler/internal/domain/booking"
	"github.com/LumiereBeauty/salon-scheduler/internal/httperr"
	"github.com/LumiereBeauty/salon-scheduler/internal/linksign"
	ucBooking "github.com/LumiereBeauty/salon-scheduler/internal/usecase/booking"
)

// QuickActionHandler serves the approve/reject links embedded in admin
// notification emails. The link token is the only credential; no session
// is required.
type QuickActionHandler struct {
	signer         *linksign.Signer
	changeStatusUC *ucBooking.ChangeStatus
}

func NewQuickActionHandler(
	signer *linksign.Signer,
	changeStatusUC *ucBooking.ChangeStatus,
) *QuickActionHandler {
	return &QuickActionHandler{
		signer:         signer,
		changeStatusUC: changeStatusUC,
	}
}

func (h *QuickActionHandler) Approve(c *gin.Context) {
	h.handle(c, linksign.ActionApprove, domain.StatusConfirmed, "Booking confirmed.")
}

func (h *QuickActionHandler) Reject(c *gin.Context) {
	h.handle(c, linksign.ActionReject, domain.StatusCancelled, "Booking refused.")
}

func (h *QuickActionHandler) handle(
	c *gin.Context,
	action string,
	target domain.Status,
	message string,
) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, "Invalid booking id.")
		return
	}

	token := c.Query("token")
	if token == "" {
		httperr.Forbidden(c, "invalid_link", "Invalid or expired link.")
		return
	}

	if err := h.signer.Verify(token, action, uint(id)); err != nil {
		httperr.Forbidden(c, "invalid_link", "Invalid or expired link.")
		return
	}

	res, err := h.changeStatusUC.Execute(c.Request.Context(), uint(id), target, "quick_link")
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeNotFound) {
			httperr.NotFound(c, httperr.CodeNotFound, "Booking not found.")
			return
		}
		httperr.Internal(c, "update_failed", "Failed to process the action.")
		return
	}

	if res.AlreadyProcessed {
		c.JSON(200, gin.H{
			"success":           true,
			"already_processed": true,
			"message":           "This booking has already been processed.",
			"status":            res.Booking.Status,
		})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": message,
		"status":  res.Booking.Status,
	})
}
