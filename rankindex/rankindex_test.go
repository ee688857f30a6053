package rankindex

import (
	"testing"

	"github.com/shopspring/decimal"

	"leaderboardsvc/models"
)

func cs(id int64, score int64) models.CustomerScore {
	return models.CustomerScore{CustomerID: id, Score: decimal.NewFromInt(score)}
}

func TestInsertTieBreakByCustomerID(t *testing.T) {
	ri := New()
	ri.Insert(cs(2, 50))
	ri.Insert(cs(1, 50))
	ri.Insert(cs(3, 50))

	got := ri.RangeByRank(1, 3)
	want := []int64{1, 2, 3}
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	for i, id := range want {
		if got[i].CustomerID != id {
			t.Errorf("rank %d: expected customer %d, got %d", i+1, id, got[i].CustomerID)
		}
	}
}

func TestInsertRejectsDuplicateCompositeKey(t *testing.T) {
	ri := New()
	inserted, rank := ri.Insert(cs(1, 100))
	if !inserted || rank != 1 {
		t.Fatalf("first insert: expected (true, 1), got (%v, %d)", inserted, rank)
	}

	inserted, rank = ri.Insert(cs(1, 100))
	if inserted {
		t.Fatalf("duplicate insert: expected inserted=false")
	}
	if rank != 1 {
		t.Fatalf("duplicate insert: expected rank 1, got %d", rank)
	}
	if ri.Count() != 1 {
		t.Fatalf("expected count 1 after duplicate insert, got %d", ri.Count())
	}
}

func TestRemoveReturnsPreRemovalRank(t *testing.T) {
	ri := New()
	ri.Insert(cs(1, 300))
	ri.Insert(cs(2, 200))
	ri.Insert(cs(3, 100))

	removed, rank := ri.Remove(cs(2, 200))
	if !removed || rank != 2 {
		t.Fatalf("expected (true, 2), got (%v, %d)", removed, rank)
	}
	if ri.Count() != 2 {
		t.Fatalf("expected count 2 after removal, got %d", ri.Count())
	}

	removed, rank = ri.Remove(cs(99, 1))
	if removed || rank != 0 {
		t.Fatalf("removing absent element: expected (false, 0), got (%v, %d)", removed, rank)
	}
}

func TestRankOf(t *testing.T) {
	ri := New()
	for i := int64(1); i <= 5; i++ {
		ri.Insert(cs(i, 100-i))
	}

	rank, ok := ri.RankOf(cs(3, 97))
	if !ok || rank != 3 {
		t.Fatalf("expected rank 3, got (%d, %v)", rank, ok)
	}

	_, ok = ri.RankOf(cs(42, 0))
	if ok {
		t.Fatalf("expected absent element to report not found")
	}
}

func TestRangeByRankBoundaries(t *testing.T) {
	ri := New()
	for i := int64(1); i <= 10; i++ {
		ri.Insert(cs(i, 1000-i))
	}

	full := ri.RangeByRank(1, 10)
	if len(full) != 10 {
		t.Fatalf("expected 10 entries, got %d", len(full))
	}

	clamped := ri.RangeByRank(1, 100)
	if len(clamped) != 10 {
		t.Fatalf("expected clamp to 10 entries, got %d", len(clamped))
	}

	beyond := ri.RangeByRank(11, 20)
	if len(beyond) != 0 {
		t.Fatalf("expected empty range beyond N, got %d", len(beyond))
	}

	invalid := ri.RangeByRank(5, 2)
	if len(invalid) != 0 {
		t.Fatalf("expected empty range when start > end, got %d", len(invalid))
	}

	zero := ri.RangeByRank(0, 3)
	if len(zero) != 0 {
		t.Fatalf("expected empty range when start < 1, got %d", len(zero))
	}
}

func TestDescendingOrderAndAscendingRanks(t *testing.T) {
	ri := New()
	ri.Insert(cs(5, 10))
	ri.Insert(cs(1, 50))
	ri.Insert(cs(3, 30))
	ri.Insert(cs(2, 50))
	ri.Insert(cs(4, 20))

	got := ri.RangeByRank(1, ri.Count())
	for i := 1; i < len(got); i++ {
		if !got[i-1].Less(got[i]) {
			t.Fatalf("rank order violated between %+v and %+v", got[i-1], got[i])
		}
	}
}
