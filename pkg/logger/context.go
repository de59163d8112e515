package logger

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// FromContext retrieves the request-scoped logger stashed in the Echo
// context by the request-id middleware, falling back to the global logger.
func FromContext(c echo.Context) *zap.Logger {
	requestLogger, ok := c.Get("logger").(*zap.Logger)
	if !ok {
		return GetLogger()
	}
	return requestLogger
}
