// Package rankindex implements the Ranked Index: an order-statistic skip
// list over models.CustomerScore values, ordered by the composite key
// (score descending, customerId ascending).
//
// The design follows the classic span-augmented skip list (Pugh 1990) the
// way it shows up twice in this codebase's lineage: a per-leaderboard rank
// cache built the same way (forward pointers plus span counters, geometric
// random level, O(log n) rank-of / element-at-rank), and a standalone
// concurrent leaderboard skip list with the same Insert/Remove/GetRank/
// GetByRank/GetRange surface. Summing the spans traversed on a descending
// search gives the rank of any node in expected O(log N); the same search,
// driven by target rank instead of target key, gives element-at-rank.
//
// rankindex has no locking of its own — it is a plain, non-concurrency-safe
// structure. Concurrency safety is the job of the leaderboard package's
// Concurrency Coordinator, which wraps every call here in its own
// sync.RWMutex.
package rankindex

import (
	"math/rand"

	"leaderboardsvc/models"
)

const (
	maxLevel    = 32
	probability = 0.5
)

type node struct {
	entry models.CustomerScore
	next  []*node
	span  []int
}

// RankIndex is an order-statistic skip list over CustomerScore values.
type RankIndex struct {
	head   *node
	level  int
	length int
	rng    *rand.Rand
}

// New returns an empty RankIndex.
func New() *RankIndex {
	return &RankIndex{
		head: &node{
			next: make([]*node, maxLevel),
			span: make([]int, maxLevel),
		},
		level: 1,
		rng:   rand.New(rand.NewSource(rand.Int63())),
	}
}

func (ri *RankIndex) randomLevel() int {
	level := 1
	for level < maxLevel && ri.rng.Float64() < probability {
		level++
	}
	return level
}

// Count returns the number of elements currently indexed.
func (ri *RankIndex) Count() int {
	return ri.length
}

// Insert adds cs to the index. inserted is false iff an element with an
// equal composite key (score, customerId) was already present, in which
// case the index is left unchanged and rank is that element's current
// position. Otherwise rank is the 1-based position of the newly inserted
// element.
func (ri *RankIndex) Insert(cs models.CustomerScore) (inserted bool, rank int) {
	update := make([]*node, maxLevel)
	rankAtLevel := make([]int, maxLevel)

	x := ri.head
	traversed := 0
	for i := ri.level - 1; i >= 0; i-- {
		for x.next[i] != nil && x.next[i].entry.Less(cs) {
			traversed += x.span[i]
			x = x.next[i]
		}
		update[i] = x
		rankAtLevel[i] = traversed
	}

	if next := x.next[0]; next != nil && next.entry.Equal(cs) {
		return false, traversed + 1
	}

	newLevel := ri.randomLevel()
	if newLevel > ri.level {
		for i := ri.level; i < newLevel; i++ {
			update[i] = ri.head
			rankAtLevel[i] = 0
			update[i].span[i] = ri.length
		}
		ri.level = newLevel
	}

	n := &node{
		entry: cs,
		next:  make([]*node, newLevel),
		span:  make([]int, newLevel),
	}

	for i := 0; i < newLevel; i++ {
		n.next[i] = update[i].next[i]
		update[i].next[i] = n

		n.span[i] = update[i].span[i] - (traversed - rankAtLevel[i])
		update[i].span[i] = traversed - rankAtLevel[i] + 1
	}
	for i := newLevel; i < ri.level; i++ {
		update[i].span[i]++
	}

	ri.length++
	return true, traversed + 1
}

// Remove deletes the element matching cs's composite key. removed is false
// iff no such element was present, in which case rank is 0. Otherwise rank
// is the position the element occupied immediately before removal.
func (ri *RankIndex) Remove(cs models.CustomerScore) (removed bool, rank int) {
	update := make([]*node, maxLevel)

	x := ri.head
	traversed := 0
	for i := ri.level - 1; i >= 0; i-- {
		for x.next[i] != nil && x.next[i].entry.Less(cs) {
			traversed += x.span[i]
			x = x.next[i]
		}
		update[i] = x
	}

	target := x.next[0]
	if target == nil || !target.entry.Equal(cs) {
		return false, 0
	}

	for i := 0; i < ri.level; i++ {
		if update[i].next[i] == target {
			update[i].span[i] += target.span[i] - 1
			update[i].next[i] = target.next[i]
		} else {
			update[i].span[i]--
		}
	}

	for ri.level > 1 && ri.head.next[ri.level-1] == nil {
		ri.level--
	}

	ri.length--
	return true, traversed + 1
}

// RankOf returns the 1-based position of the element matching cs's
// composite key, or (0, false) if no such element is present.
func (ri *RankIndex) RankOf(cs models.CustomerScore) (rank int, ok bool) {
	x := ri.head
	traversed := 0
	for i := ri.level - 1; i >= 0; i-- {
		for x.next[i] != nil && x.next[i].entry.Less(cs) {
			traversed += x.span[i]
			x = x.next[i]
		}
	}
	target := x.next[0]
	if target == nil || !target.entry.Equal(cs) {
		return 0, false
	}
	return traversed + 1, true
}

// elementAtRank returns the node at the given 1-based rank, or nil if rank
// is out of [1, length].
func (ri *RankIndex) elementAtRank(rank int) *node {
	if rank < 1 || rank > ri.length {
		return nil
	}
	x := ri.head
	traversed := 0
	for i := ri.level - 1; i >= 0; i-- {
		for x.next[i] != nil && traversed+x.span[i] <= rank {
			traversed += x.span[i]
			x = x.next[i]
		}
		if traversed == rank {
			return x
		}
	}
	return nil
}

// RangeByRank returns the elements occupying ranks [start, min(end, N)], in
// ascending rank order. It is empty if start > N or start < 1 or
// start > end.
func (ri *RankIndex) RangeByRank(start, end int) []models.CustomerScore {
	if start < 1 || start > end || start > ri.length {
		return nil
	}
	if end > ri.length {
		end = ri.length
	}

	x := ri.elementAtRank(start)
	if x == nil {
		return nil
	}

	result := make([]models.CustomerScore, 0, end-start+1)
	for i := start; i <= end && x != nil; i++ {
		result = append(result, x.entry)
		x = x.next[0]
	}
	return result
}
