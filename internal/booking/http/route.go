package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers booking routes. Every booking route requires
// authentication; listing scope is decided by the route, while per-booking
// read access is enforced in the service.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, ownerMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/bookings", authMiddleware)

	group.POST("", h.Create)
	group.GET("/my", h.ListMine)
	group.GET("/owner", ownerMiddleware, h.ListOwned)
	group.GET("", adminMiddleware, h.ListAll)
	group.GET("/:id", h.Get)
	group.PATCH("/:id/status", h.UpdateStatus)
	group.POST("/:id/cancel", h.Cancel)
	group.DELETE("/:id", adminMiddleware, h.Delete)
}
