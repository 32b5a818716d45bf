package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/finvue/finvue_backend/internal/core/ports/services"
	"github.com/finvue/finvue_backend/internal/dto"
	"github.com/finvue/finvue_backend/internal/middleware"
)

// syncHandler triggers webhook sync and spreadsheet export.
type syncHandler struct {
	syncService portssvc.SyncSvcFacade
}

// registerSyncRoutes registers the sync and export routes.
func registerSyncRoutes(rg *gin.RouterGroup, syncService portssvc.SyncSvcFacade) {
	h := &syncHandler{syncService: syncService}

	rg.POST("/sync", h.syncNow)               // Admin only
	rg.POST("/sync/export", h.exportToSheets) // Admin only
}

// syncNow godoc
// @Summary Push state to the sheet webhook
// @Description Pushes the full application state to the configured Apps Script webhook (admin action).
// @Tags sync
// @Produce json
// @Success 200 {object} dto.SyncResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "A sync is already running"
// @Failure 502 {object} ErrorResponse "The webhook rejected the payload"
// @Security BearerAuth
// @Router /sync [post]
func (h *syncHandler) syncNow(c *gin.Context) {
	viewer, ok := middleware.GetViewerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	syncedAt, err := h.syncService.SyncNow(c.Request.Context(), viewer)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SyncResponse{LastSynced: syncedAt})
}

// exportToSheets godoc
// @Summary Export the ledger to Google Sheets
// @Tags sync
// @Produce json
// @Success 200 {object} dto.ExportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /sync/export [post]
func (h *syncHandler) exportToSheets(c *gin.Context) {
	viewer, ok := middleware.GetViewerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	rows, err := h.syncService.ExportTransactions(c.Request.Context(), viewer)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ExportResponse{RowsWritten: rows})
}
