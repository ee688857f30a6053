package handlers

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"leaderboardsvc/leaderboard"
	"leaderboardsvc/metrics"
)

// CORS allows cross-origin requests from any origin.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

// RequestID stamps every response with an X-Request-Id header, generated
// with google/uuid, so an individual request can be traced across logs.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.New().String()
		c.Set("requestId", id)
		c.Header("X-Request-Id", id)
		c.Next()
	}
}

// AccessLog logs one line per request, including its request ID and
// latency. When debug is true the line also includes the raw query string,
// for tracing individual requests during local development.
func AccessLog(debug bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if debug {
			log.Printf("%s %s?%s %s %d %s", c.Request.Method, c.Request.URL.Path,
				c.Request.URL.RawQuery, c.GetString("requestId"), c.Writer.Status(), time.Since(start))
			return
		}
		log.Printf("%s %s %s %d %s", c.Request.Method, c.Request.URL.Path,
			c.GetString("requestId"), c.Writer.Status(), time.Since(start))
	}
}

// Instrument records Prometheus observations for every request and
// refreshes the Registry/Index size gauges from the current service state.
func Instrument(m *metrics.Metrics, service *leaderboard.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.Observe(route, c.Writer.Status(), time.Since(start))

		snap := service.GetMetrics()
		m.SetSizes(snap.TotalCustomers, snap.LeaderboardCustomers)
	}
}
