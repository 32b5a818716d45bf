package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/finvue/finvue_backend/internal/core/ports/services"
	"github.com/finvue/finvue_backend/internal/dto"
	"github.com/finvue/finvue_backend/internal/middleware"
)

// reportingHandler serves the dashboard aggregates.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// registerReportingRoutes registers the reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := &reportingHandler{reportingService: reportingService}

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.summary)
		reports.GET("/categories", h.categoryBreakdown)
	}
}

// summary godoc
// @Summary Dashboard summary
// @Description Income, expenses, balance and per-source balances over approved entries in the caller's scope.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.SummaryResponse
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) summary(c *gin.Context) {
	viewer, ok := middleware.GetViewerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	summary, err := h.reportingService.Summary(c.Request.Context(), viewer)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}

// categoryBreakdown godoc
// @Summary Expense breakdown by category
// @Tags reports
// @Produce json
// @Success 200 {array} dto.CategoryTotalResponse
// @Security BearerAuth
// @Router /reports/categories [get]
func (h *reportingHandler) categoryBreakdown(c *gin.Context) {
	viewer, ok := middleware.GetViewerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	rows, err := h.reportingService.CategoryBreakdown(c.Request.Context(), viewer)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryTotalResponses(rows))
}
