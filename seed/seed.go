// Package seed generates the hard-coded sample dataset used by the
// SEED_ON_START administrative bootstrap. The dataset feeds
// leaderboard.Service.InitializeFromSeed directly; this service carries no
// persistence layer of its own.
package seed

import (
	"github.com/shopspring/decimal"

	"leaderboardsvc/leaderboard"
)

// Generate produces a deterministic sample dataset of up to count
// customers. The top 3 have unique scores (5000, 4999, 4998); the
// remainder share scores two-at-a-time on a descending scale, down to a
// floor of 1. Generation stops at the floor, so the dataset never holds
// more than 9997 entries, whatever count is.
func Generate(count int) []leaderboard.SeedEntry {
	entries := make([]leaderboard.SeedEntry, 0, count)

	nextID := int64(1)
	addEntry := func(score int64) {
		entries = append(entries, leaderboard.SeedEntry{
			CustomerID: nextID,
			Score:      decimal.NewFromInt(score),
		})
		nextID++
	}

	if count > 0 {
		addEntry(5000)
	}
	if count > 1 {
		addEntry(4999)
	}
	if count > 2 {
		addEntry(4998)
	}

	currentScore := int64(4997)
	for len(entries) < count && currentScore >= 1 {
		for i := 0; i < 2 && len(entries) < count; i++ {
			addEntry(currentScore)
		}
		currentScore--
	}

	return entries
}
