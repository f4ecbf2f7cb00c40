package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quotedash/internal/domain/dto"
	"quotedash/internal/logger"
)

// ErrorHandler converts errors attached to the Gin context via
// c.Error(...) into a standardized JSON error response. Handlers that
// already wrote a response are left alone.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	logger.L().Error().Err(err).
		Str("path", c.Request.URL.Path).
		Msg("unhandled request error")

	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", err))
}
