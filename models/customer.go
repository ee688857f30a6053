// Package models defines the data structures shared across the leaderboard
// service. These are the externally visible shapes produced by the core and
// carried over HTTP by the handlers package.
package models

import "github.com/shopspring/decimal"

// CustomerScore is an immutable (customerId, score) pair ordered by the
// composite key (score descending, customerId ascending). Two CustomerScore
// values compare equal componentwise.
type CustomerScore struct {
	CustomerID int64
	Score      decimal.Decimal
}

// Less reports whether cs sorts before other under the composite order:
// score descending, then customerId ascending.
func (cs CustomerScore) Less(other CustomerScore) bool {
	if !cs.Score.Equal(other.Score) {
		return cs.Score.GreaterThan(other.Score)
	}
	return cs.CustomerID < other.CustomerID
}

// Equal reports componentwise equality.
func (cs CustomerScore) Equal(other CustomerScore) bool {
	return cs.CustomerID == other.CustomerID && cs.Score.Equal(other.Score)
}

// CustomerRanking is a read-only projection produced only by query
// operations: a customer, its current score, and its 1-based rank. Rank 1 is
// the highest-scoring customer.
type CustomerRanking struct {
	CustomerID int64           `json:"customerId"`
	Score      decimal.Decimal `json:"score"`
	Rank       int             `json:"rank"`
}

// ServiceMetrics is a snapshot of service-wide counters.
type ServiceMetrics struct {
	TotalCustomers       int             `json:"totalCustomers"`
	LeaderboardCustomers int             `json:"leaderboardCustomers"`
	TopScore             decimal.Decimal `json:"topScore"`
}
