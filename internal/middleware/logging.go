package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type contextKey string

const loggerKey contextKey = "logger"

// StructuredLoggingMiddleware attaches a request-scoped slog.Logger to the
// request context and emits one summary line per request.
func StructuredLoggingMiddleware(base *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()

		logger := base.With(
			"requestID", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)
		ctx := context.WithValue(c.Request.Context(), loggerKey, logger)
		c.Request = c.Request.WithContext(ctx)
		c.Header("X-Request-ID", requestID)

		c.Next()

		logger.Info("request completed",
			"status", c.Writer.Status(),
			"durationMs", time.Since(start).Milliseconds(),
			"clientIP", c.ClientIP(),
		)
	}
}

// GetLoggerFromCtx returns the request-scoped logger, or the default logger
// when none was attached (background jobs, tests).
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
