package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ceylontrails/travel-booking-backend/internal/pkg/apperror"
)

// ErrorResponse defines the JSON structure for error responses.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// Error sends a JSON error response.
// It checks if the error is an AppError to determine the status code.
// Anything else is treated as an internal error and hidden behind a 500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// ValidationError sends a 400 response with per-field problems.
func ValidationError(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message, Details: details})
}
