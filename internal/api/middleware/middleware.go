package middleware

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-partner-ledger/internal/api/shared/errors"
	"github.com/feral-file/ff-partner-ledger/internal/logger"
	"github.com/feral-file/ff-partner-ledger/internal/metrics"
	"github.com/feral-file/ff-partner-ledger/internal/ratelimit"
)

// Logger returns a gin middleware for structured logging using zap
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		logger.InfoCtx(c.Request.Context(), "API request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
		)
	}
}

// Recovery returns a gin middleware for panic recovery with logging
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.ErrorCtx(c.Request.Context(), fmt.Errorf("panic recovered: %v", err),
					zap.String("path", c.Request.URL.Path),
				)
				abortWithError(c, apierrors.NewInternalError("Internal server error"))
			}
		}()
		c.Next()
	}
}

// Metrics records the status and latency of every request by route template
func Metrics(m *metrics.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveHTTP(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}

// RateLimit throttles requests per caller. Callers are keyed by auth subject
// when authenticated, by client IP otherwise.
func RateLimit(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()
		if subject, ok := c.Get(AUTH_SUBJECT_KEY); ok {
			if s, ok := subject.(string); ok && s != "" {
				key = "sub:" + s
			}
		}

		decision, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			if errors.Is(err, ratelimit.ErrUnavailable) {
				logger.WarnCtx(c.Request.Context(), "Rate limiter unavailable", zap.Error(err))
				abortWithError(c, apierrors.NewServiceError("Rate limiter unavailable"))
				return
			}
			// Canceled request
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		if !decision.Allowed {
			retryAfter := int(math.Ceil(decision.RetryAfter.Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			abortWithError(c, apierrors.NewRateLimitedError("Too many requests"))
			return
		}

		c.Next()
	}
}

// abortWithError stops the chain and writes err with its HTTP status
func abortWithError(c *gin.Context, err *apierrors.APIError) {
	c.AbortWithStatusJSON(err.Status(), err)
}
