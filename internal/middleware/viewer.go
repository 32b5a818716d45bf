package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finvue/finvue_backend/internal/core/domain"
	portssvc "github.com/finvue/finvue_backend/internal/core/ports/services"
)

const viewerKey = contextKey("viewer")

// ViewerMiddleware resolves the authenticated user ID into the session viewer
// the services consume. Must run after AuthMiddleware. Tokens whose user no
// longer exists are rejected here.
func ViewerMiddleware(auth portssvc.AuthSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		viewer, err := auth.ResolveViewer(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(string(viewerKey), viewer)
		c.Next()
	}
}

// GetViewerFromContext retrieves the resolved viewer from the Gin context.
func GetViewerFromContext(c *gin.Context) (domain.Viewer, bool) {
	val, exists := c.Get(string(viewerKey))
	if !exists {
		return domain.Viewer{}, false
	}
	viewer, ok := val.(domain.Viewer)
	return viewer, ok
}
