package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every non-2xx response. Errors holds per-field
// messages and Booking the wizard snapshot when a transition was refused.
type ErrorResponse struct {
	Message string            `json:"message"`
	Details string            `json:"details,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
	Booking any               `json:"booking,omitempty"`
}

// ErrorHandler recovers panics in later handlers and answers with a JSON 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic",
					zap.Any("error", err),
					zap.String("method", c.Request.Method),
					zap.String("route", c.FullPath()),
					zap.String("path", c.Request.URL.Path),
					zap.Stack("stack"),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response.
func JSONError(c *gin.Context, status int, message string, details string) {
	WriteError(c, status, ErrorResponse{Message: message, Details: details})
}

// WriteError logs body at a level matching status and writes it. Client
// errors log at warn, server errors at error.
func WriteError(c *gin.Context, status int, body ErrorResponse) {
	fields := []zap.Field{
		zap.Int("status", status),
		zap.String("route", c.FullPath()),
		zap.String("details", body.Details),
	}
	if len(body.Errors) > 0 {
		fields = append(fields, zap.Any("fields", body.Errors))
	}
	if status >= http.StatusInternalServerError {
		GetLogger().Error(body.Message, fields...)
	} else {
		GetLogger().Warn(body.Message, fields...)
	}
	c.JSON(status, body)
}
