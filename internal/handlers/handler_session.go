package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finvue/finvue_backend/internal/core/domain"
	portssvc "github.com/finvue/finvue_backend/internal/core/ports/services"
	"github.com/finvue/finvue_backend/internal/dto"
	"github.com/finvue/finvue_backend/internal/middleware"
)

// sessionHandler serves the authenticated session endpoints.
type sessionHandler struct {
	userService portssvc.UserSvcFacade
	activity    portssvc.ActivityRecorder
}

// registerSessionRoutes sets up the token-protected session routes.
func registerSessionRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade, activity portssvc.ActivityRecorder) {
	h := &sessionHandler{userService: userService, activity: activity}

	auth := rg.Group("/auth")
	{
		auth.GET("/me", h.me)
		auth.POST("/logout", h.logout)
	}
}

// me godoc
// @Summary Current user
// @Description Returns the profile of the authenticated user.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/me [get]
func (h *sessionHandler) me(c *gin.Context) {
	viewer, ok := middleware.GetViewerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), viewer.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// logout godoc
// @Summary User logout
// @Description Records the logout; the token itself simply expires.
// @Tags auth
// @Produce json
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *sessionHandler) logout(c *gin.Context) {
	viewer, ok := middleware.GetViewerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	h.activity.Record(c.Request.Context(), viewer.Username, "Logout", "User logged out", domain.ActivityAuth)
	c.Status(http.StatusNoContent)
}
