package console

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zra-sdk/zra-demo/internal/middleware"
	"go.uber.org/zap"
)

// sendError is a helper function that combines logging and error response
// It logs the error with the given message and sends a JSON error response
func sendError(c *gin.Context, statusCode int, message string, err error) {
	middleware.LogWithCorrelationID(c.Request.Context()).Warn(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
	)
	c.JSON(statusCode, ErrorResponse{Error: message})
}

// sendSuccess is a helper function that sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// sendList is a helper function that sends a list response
func sendList(c *gin.Context, items interface{}) {
	c.JSON(http.StatusOK, ListResponse{
		Object: "list",
		Data:   items,
	})
}
