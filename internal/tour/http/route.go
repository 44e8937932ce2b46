package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers tour catalog routes. Tours are platform-managed,
// so all mutations require admin.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/tours")

	group.GET("", h.List)
	group.GET("/:id", h.Get)

	group.Use(authMiddleware, adminMiddleware)
	{
		group.POST("", h.Create)
		group.PATCH("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}
