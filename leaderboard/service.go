// Package leaderboard is the concurrency coordinator and service facade: it
// owns the score registry and ranked index and exposes each public
// operation as a single indivisible step from the caller's point of view.
//
// The single sync.RWMutex here is the entire serialization discipline:
// UpdateScore and InitializeFromSeed hold it exclusively for their whole
// body; GetByRank, GetWithNeighbors and GetMetrics hold it shared for their
// whole body, including the iteration that materializes the returned slice.
// Every mutation lands directly in the ranked index rather than behind a
// debounced rebuild, so a read can never observe a stale snapshot.
package leaderboard

import (
	"sync"

	"github.com/shopspring/decimal"

	"leaderboardsvc/models"
	"leaderboardsvc/rankindex"
	"leaderboardsvc/registry"
)

// maxDelta is the inclusive magnitude bound on a single update's delta.
var maxDelta = decimal.NewFromInt(1000)

// overflowCeiling is a conservative sanity bound on cumulative score
// magnitude. shopspring/decimal is arbitrary-precision so it cannot
// silently wrap the way a fixed-width integer would; this ceiling exists
// so pathological inputs are reported as internal errors rather than
// allowed to grow without bound.
var overflowCeiling = decimal.New(1, 30)

// Service is the leaderboard's concurrency coordinator and facade.
type Service struct {
	mu       sync.RWMutex
	registry *registry.Registry
	index    *rankindex.RankIndex
}

// New returns an empty Service.
func New() *Service {
	return &Service{
		registry: registry.New(),
		index:    rankindex.New(),
	}
}

// UpdateScore applies delta to customerId's current score and returns the
// new total. delta must be in [-1000, 1000]; violations return
// KindInvalidArgument and leave all state untouched.
func (s *Service) UpdateScore(customerID int64, delta decimal.Decimal) (decimal.Decimal, error) {
	if delta.Abs().GreaterThan(maxDelta) {
		return decimal.Decimal{}, invalidArgument("delta %s out of range [-1000, 1000]", delta.String())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	oldScore := s.registry.Get(customerID)
	newScore := oldScore.Add(delta)

	if newScore.Abs().GreaterThan(overflowCeiling) {
		return decimal.Decimal{}, internal("score overflow for customer %d", customerID)
	}

	s.registry.Set(customerID, newScore)

	if oldScore.IsPositive() {
		s.index.Remove(models.CustomerScore{CustomerID: customerID, Score: oldScore})
	}
	if newScore.IsPositive() {
		s.index.Insert(models.CustomerScore{CustomerID: customerID, Score: newScore})
	}

	return newScore, nil
}

// GetByRank returns a snapshot of Index positions [start, min(end, N)] as
// CustomerRanking records whose rank is the absolute position.
func (s *Service) GetByRank(start, end int) ([]models.CustomerRanking, error) {
	if start < 1 || end < start {
		return nil, invalidArgument("invalid range [%d, %d]", start, end)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.rangeLocked(start, end), nil
}

// rangeLocked must be called with s.mu held (read or write).
func (s *Service) rangeLocked(start, end int) []models.CustomerRanking {
	entries := s.index.RangeByRank(start, end)
	result := make([]models.CustomerRanking, len(entries))
	for i, e := range entries {
		result[i] = models.CustomerRanking{
			CustomerID: e.CustomerID,
			Score:      e.Score,
			Rank:       start + i,
		}
	}
	return result
}

// GetWithNeighbors returns a window of up to high+1+low entries centered on
// customerId, clamped to [1, N]. If customerId is not indexed (absent or
// score <= 0), it returns KindNotFound.
func (s *Service) GetWithNeighbors(customerID int64, high, low int) ([]models.CustomerRanking, error) {
	if high < 0 || low < 0 {
		return nil, invalidArgument("high and low must be non-negative, got high=%d low=%d", high, low)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	score := s.registry.Get(customerID)
	if !score.IsPositive() {
		return nil, notFound("customer %d is not on the leaderboard", customerID)
	}

	rank, ok := s.index.RankOf(models.CustomerScore{CustomerID: customerID, Score: score})
	if !ok {
		return nil, notFound("customer %d is not on the leaderboard", customerID)
	}

	n := s.index.Count()
	rangeStart := rank - high
	if rangeStart < 1 {
		rangeStart = 1
	}
	rangeEnd := rank + low
	if rangeEnd > n {
		rangeEnd = n
	}

	return s.rangeLocked(rangeStart, rangeEnd), nil
}

// GetMetrics returns a snapshot of service-wide counters.
func (s *Service) GetMetrics() models.ServiceMetrics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	top := decimal.Zero
	if s.index.Count() > 0 {
		if entries := s.index.RangeByRank(1, 1); len(entries) == 1 {
			top = entries[0].Score
		}
	}

	return models.ServiceMetrics{
		TotalCustomers:       s.registry.Count(),
		LeaderboardCustomers: s.index.Count(),
		TopScore:             top,
	}
}

// SeedEntry is one (customerId, score) pair for bulk initialization.
type SeedEntry struct {
	CustomerID int64
	Score      decimal.Decimal
}

// InitializeFromSeed clears all state, then populates the Registry with
// every entry and the Index with every entry whose score > 0. The resulting
// state is indistinguishable from applying the equivalent sequence of
// UpdateScore calls from empty.
func (s *Service) InitializeFromSeed(entries []SeedEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.registry.Clear()
	s.index = rankindex.New()

	for _, e := range entries {
		s.registry.Set(e.CustomerID, e.Score)
		if e.Score.IsPositive() {
			s.index.Insert(models.CustomerScore{CustomerID: e.CustomerID, Score: e.Score})
		}
	}
}
