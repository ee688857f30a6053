// Package registry holds the authoritative customerId -> current score
// mapping, including non-positive scores. It is a plain map with no locking
// of its own: the leaderboard package's concurrency coordinator is the sole
// owner of the lock that makes reads and writes here safe.
package registry

import "github.com/shopspring/decimal"

// Registry is a map from customerId to current score. Entries are never
// deleted one at a time: once a customer is created, it stays in the
// Registry until Clear empties the whole map.
type Registry struct {
	scores map[int64]decimal.Decimal
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{scores: make(map[int64]decimal.Decimal)}
}

// Get returns the customer's current score, or zero if the customer has
// never been seen.
func (r *Registry) Get(customerID int64) decimal.Decimal {
	if s, ok := r.scores[customerID]; ok {
		return s
	}
	return decimal.Zero
}

// Set upserts a customer's current score.
func (r *Registry) Set(customerID int64, score decimal.Decimal) {
	r.scores[customerID] = score
}

// Count returns the number of customers seen by the Registry since it was
// created or last cleared.
func (r *Registry) Count() int {
	return len(r.scores)
}

// Clear removes every entry. Used only by bulk seed initialization.
func (r *Registry) Clear() {
	r.scores = make(map[int64]decimal.Decimal)
}
