package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/finvue/finvue_backend/internal/core/ports/services"
	"github.com/finvue/finvue_backend/internal/dto"
	"github.com/finvue/finvue_backend/internal/middleware"
)

// activityHandler serves the audit trail.
type activityHandler struct {
	activityService portssvc.ActivitySvcFacade
}

// registerActivityRoutes registers the activity log routes.
func registerActivityRoutes(rg *gin.RouterGroup, activityService portssvc.ActivitySvcFacade) {
	h := &activityHandler{activityService: activityService}
	rg.GET("/activity", h.listActivity)
}

// listActivity godoc
// @Summary List activity log entries
// @Description Returns the audit trail, most recent first (admin action).
// @Tags activity
// @Produce json
// @Success 200 {object} dto.ListActivityResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /activity [get]
func (h *activityHandler) listActivity(c *gin.Context) {
	viewer, ok := middleware.GetViewerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logs, err := h.activityService.ListActivity(c.Request.Context(), viewer)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListActivityResponse(logs))
}
