package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/finvue/finvue_backend/internal/core/ports/services"
	"github.com/finvue/finvue_backend/internal/dto"
	"github.com/finvue/finvue_backend/internal/middleware"
)

// insightsHandler serves AI spending tips.
type insightsHandler struct {
	insightsService portssvc.InsightsSvcFacade
}

// registerInsightsRoutes registers the insights routes.
func registerInsightsRoutes(rg *gin.RouterGroup, insightsService portssvc.InsightsSvcFacade) {
	h := &insightsHandler{insightsService: insightsService}
	rg.GET("/insights", h.spendingTips)
}

// spendingTips godoc
// @Summary AI spending tips
// @Description Analyzes the caller's approved expenses and returns categorized suggestions.
// @Tags insights
// @Produce json
// @Success 200 {object} dto.InsightsResponse
// @Failure 400 {object} ErrorResponse "AI insights not configured"
// @Security BearerAuth
// @Router /insights [get]
func (h *insightsHandler) spendingTips(c *gin.Context) {
	viewer, ok := middleware.GetViewerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	suggestions, err := h.insightsService.SpendingTips(c.Request.Context(), viewer)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToInsightsResponse(suggestions))
}
