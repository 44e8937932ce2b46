package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers package catalog routes. Listing runs optional auth
// so admins and owners can see unapproved rows.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, optionalAuth, ownerMiddleware gin.HandlerFunc) {
	group := g.Group("/packages")

	group.GET("", optionalAuth, h.List)
	group.GET("/:id", h.Get)

	group.POST("", authMiddleware, ownerMiddleware, h.Create)
	group.PATCH("/:id", authMiddleware, h.Update)
	group.DELETE("/:id", authMiddleware, h.Delete)
}
