package http

import "github.com/gin-gonic/gin"

// RegisterRoutes registers media routes. Serving images is public so catalog
// pages can embed them; uploads require an authenticated owner or admin.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, ownerMiddleware gin.HandlerFunc) {
	group := g.Group("/media")

	group.GET("", h.List)
	group.GET("/:id", h.Serve)
	group.GET("/:id/thumbnail", h.ServeThumbnail)

	group.POST("", authMiddleware, ownerMiddleware, h.Upload)
	group.DELETE("/:id", authMiddleware, h.Delete)
}
