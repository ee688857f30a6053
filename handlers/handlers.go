// Package handlers contains the Gin HTTP handlers for the leaderboard's
// external interface. Each handler is a thin adapter: parse request
// parameters, call the leaderboard.Service facade, map the result (or
// leaderboard.Error) onto an HTTP response. None of the core's invariants
// or concurrency discipline live here.
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"leaderboardsvc/leaderboard"
	"leaderboardsvc/models"
)

// Handlers holds the dependencies the HTTP layer needs.
type Handlers struct {
	Service *leaderboard.Service
}

// New returns a Handlers bound to the given service.
func New(service *leaderboard.Service) *Handlers {
	return &Handlers{Service: service}
}

// writeError maps a leaderboard.Error onto the status code its Kind
// implies, falling back to 500 for anything else. Internal errors are
// logged here with their full detail and never echoed to the caller, who
// only ever sees a generic message.
func writeError(c *gin.Context, err error) {
	var svcErr *leaderboard.Error
	if errors.As(err, &svcErr) {
		switch svcErr.Kind {
		case leaderboard.KindInvalidArgument:
			c.JSON(http.StatusBadRequest, gin.H{"error": svcErr.Message})
		case leaderboard.KindNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": svcErr.Message})
		default:
			log.Printf("internal error: %s", svcErr.Message)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}
	log.Printf("internal error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

// UpdateScore handles POST /customer/:customerId/score/:score.
func (h *Handlers) UpdateScore(c *gin.Context) {
	customerID, err := parseCustomerID(c.Param("customerId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customerId"})
		return
	}

	delta, err := decimal.NewFromString(c.Param("score"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid score delta"})
		return
	}

	newScore, svcErr := h.Service.UpdateScore(customerID, delta)
	if svcErr != nil {
		writeError(c, svcErr)
		return
	}

	c.String(http.StatusOK, newScore.String())
}

// GetByRank handles GET /leaderboard?start=&end=.
func (h *Handlers) GetByRank(c *gin.Context) {
	start, err1 := parsePositiveInt(c.Query("start"))
	end, err2 := parsePositiveInt(c.Query("end"))
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start and end must be positive integers"})
		return
	}

	rankings, svcErr := h.Service.GetByRank(start, end)
	if svcErr != nil {
		writeError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, orEmpty(rankings))
}

// GetWithNeighbors handles GET /leaderboard/:customerId?high=&low=.
func (h *Handlers) GetWithNeighbors(c *gin.Context) {
	customerID, err := parseCustomerID(c.Param("customerId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customerId"})
		return
	}

	high, err1 := parseNonNegativeInt(c.DefaultQuery("high", "0"))
	low, err2 := parseNonNegativeInt(c.DefaultQuery("low", "0"))
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "high and low must be non-negative integers"})
		return
	}

	rankings, svcErr := h.Service.GetWithNeighbors(customerID, high, low)
	if svcErr != nil {
		writeError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, orEmpty(rankings))
}

// Health handles GET /monitoring/health.
func (h *Handlers) Health(c *gin.Context) {
	c.String(http.StatusOK, "Healthy")
}

// Metrics handles GET /monitoring/metrics.
func (h *Handlers) Metrics(c *gin.Context) {
	m := h.Service.GetMetrics()
	c.JSON(http.StatusOK, gin.H{
		"totalCustomers":       m.TotalCustomers,
		"leaderboardCustomers": m.LeaderboardCustomers,
		"topScore":             m.TopScore.String(),
		"timestamp":            nowRFC3339(),
	})
}

func orEmpty(rankings []models.CustomerRanking) []models.CustomerRanking {
	if rankings == nil {
		return []models.CustomerRanking{}
	}
	return rankings
}
