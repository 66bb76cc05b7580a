package router

import (
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/goalpost-app/backend/internal/metrics"
	"github.com/goalpost-app/backend/internal/models"
	"github.com/rs/zerolog"
)

// Used instead of the route for requests that do not match any route.
const unmatchedRoute = "unmatched"

func URLMiddleware(url *url.URL) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(models.DBContextURL), strings.TrimRight(url.String(), "/"))
		c.Next()
	}
}

// route returns the route pattern the request matched.
//
// Paths of edit routes contain the edit secret. Paths that do not match any
// route can contain it, too, e.g. with a typo in an edit link. Only the
// route pattern may be logged or used as metric label.
func route(c *gin.Context) string {
	if path := c.FullPath(); path != "" {
		return path
	}

	return unmatchedRoute
}

// hidePath reports if the request path must not be logged.
func hidePath(c *gin.Context) bool {
	path := c.FullPath()
	return path == "" || strings.Contains(path, ":secret")
}

// RedactedLogger logs requests with paths that must not be logged. The
// route pattern is logged instead of the path.
//
// All other requests are passed on without logging, they are logged by
// the request logger.
func RedactedLogger(output io.Writer) gin.HandlerFunc {
	l := zerolog.New(zerolog.ConsoleWriter{Out: output, NoColor: true}).With().Timestamp().Logger()

	return func(c *gin.Context) {
		if !hidePath(c) {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		level := zerolog.InfoLevel
		if c.Writer.Status() >= http.StatusInternalServerError {
			level = zerolog.ErrorLevel
		}

		l.WithLevel(level).
			Str("request-id", requestid.Get(c)).
			Int("status", c.Writer.Status()).
			Str("method", c.Request.Method).
			Str("path", route(c)).
			Dur("latency", time.Since(start)).
			Str("user_agent", c.Request.UserAgent()).
			Int("body_size", c.Writer.Size()).
			Msg("Request")
	}
}

// MetricsMiddleware updates Prometheus metrics.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		elapsed := float64(time.Since(start)) / float64(time.Second)

		// The route pattern keeps the cardinality low and the edit
		// secret out of the metrics
		// https://prometheus.io/docs/practices/naming/#labels
		metrics.RequestDuration.WithLabelValues(status, c.Request.Method, route(c)).Observe(elapsed)
		metrics.RequestCount.WithLabelValues(status, c.Request.Method, route(c)).Inc()
	}
}
