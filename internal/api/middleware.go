package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ceylontrails/travel-booking-backend/internal/auth"
	"github.com/ceylontrails/travel-booking-backend/internal/user"
)

// RequireAdmin ensures the authenticated user is an admin.
// It MUST be used after auth.AuthRequired middleware.
func RequireAdmin(userService user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := auth.GetUserID(c)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		// Role is re-read from the database so a demoted admin loses access
		// without waiting for the token to expire.
		u, err := userService.GetByID(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}

		if u.Role != user.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden: admin access required"})
			return
		}

		c.Next()
	}
}

// RequireApprovedOwner ensures the authenticated user holds the vehicle owner
// role and has been approved by an admin. Admins pass through unconditionally.
// It MUST be used after auth.AuthRequired middleware.
func RequireApprovedOwner(userService user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := auth.GetUserID(c)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		u, err := userService.GetByID(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}

		if u.Role == user.RoleAdmin {
			c.Next()
			return
		}

		if u.Role != user.RoleVehicleOwner {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden: owner access required"})
			return
		}
		if !u.Approved {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden: owner account awaiting approval"})
			return
		}

		c.Next()
	}
}
