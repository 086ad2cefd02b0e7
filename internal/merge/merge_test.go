package merge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neurojobs-engine/internal/domain"
	"neurojobs-engine/internal/store"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func posting(id int64, date string) domain.Posting {
	return domain.Posting{ID: id, Date: date, Position: "研究员"}
}

func TestMergeEmptyInputKeepsPostings(t *testing.T) {
	s := store.Store{
		LastUpdated: "2025/06/01 08:00:00",
		Postings:    []domain.Posting{posting(1, "2025-05-30"), posting(2, "2025-05-20")},
	}

	out := Merge(s, nil, now, 100)

	assert.Equal(t, s.Postings, out.Postings)
	assert.Equal(t, "2025/06/15 12:00:00", out.LastUpdated)
}

func TestMergeDedupsById(t *testing.T) {
	s := store.Store{Postings: []domain.Posting{posting(1, "2025-06-01")}}

	out := Merge(s, []domain.Posting{posting(1, "2025-06-14")}, now, 100)

	require.Len(t, out.Postings, 1)
	// the stored posting wins; postings are immutable once accepted
	assert.Equal(t, "2025-06-01", out.Postings[0].Date)
}

func TestMergeDedupsWithinInput(t *testing.T) {
	out := Merge(store.Store{}, []domain.Posting{posting(7, "2025-06-14"), posting(7, "2025-06-14")}, now, 100)
	assert.Len(t, out.Postings, 1)
}

func TestMergePrependsNewestFirst(t *testing.T) {
	s := store.Store{Postings: []domain.Posting{posting(1, "2025-06-01"), posting(2, "2025-05-01")}}

	out := Merge(s, []domain.Posting{posting(3, "2025-06-14"), posting(4, "2025-06-15")}, now, 100)

	require.Len(t, out.Postings, 4)
	var ids []int64
	for _, p := range out.Postings {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int64{3, 4, 1, 2}, ids)
}

func TestMergeTruncatesTail(t *testing.T) {
	var existing []domain.Posting
	for i := int64(1); i <= 5; i++ {
		existing = append(existing, posting(i, "2025-05-01"))
	}
	s := store.Store{Postings: existing}

	out := Merge(s, []domain.Posting{posting(100, "2025-06-15")}, now, 5)

	require.Len(t, out.Postings, 5)
	assert.Equal(t, int64(100), out.Postings[0].ID)
	// the oldest tail entry fell off
	for _, p := range out.Postings {
		assert.NotEqual(t, int64(5), p.ID)
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	existing := []domain.Posting{posting(1, "2025-06-01")}
	s := store.Store{Postings: existing}
	incoming := []domain.Posting{posting(2, "2025-06-14")}

	_ = Merge(s, incoming, now, 1)

	assert.Equal(t, int64(1), existing[0].ID)
	assert.Len(t, s.Postings, 1)
	assert.Equal(t, int64(2), incoming[0].ID)
}

func TestAdded(t *testing.T) {
	s := store.Store{Postings: []domain.Posting{posting(1, "2025-06-01")}}

	added := Added(s, []domain.Posting{posting(1, "2025-06-14"), posting(2, "2025-06-14"), posting(2, "2025-06-14")}, 100)

	require.Len(t, added, 1)
	assert.Equal(t, int64(2), added[0].ID)
}

func TestAddedExcludesTruncatedSurvivors(t *testing.T) {
	incoming := []domain.Posting{
		posting(1, "2025-06-15"), posting(2, "2025-06-15"), posting(3, "2025-06-15"),
	}

	added := Added(store.Store{}, incoming, 2)
	merged := Merge(store.Store{}, incoming, now, 2)

	require.Len(t, added, 2)
	assert.Equal(t, []int64{1, 2}, []int64{added[0].ID, added[1].ID})
	// everything reported as added is actually in the merged store
	for _, p := range added {
		assert.True(t, merged.Has(p.ID))
	}
}
