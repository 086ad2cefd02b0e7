// Package merge folds newly classified postings into the store: dedup by
// id, newest first, history capped.
package merge

import (
	"time"

	"neurojobs-engine/internal/domain"
	"neurojobs-engine/internal/store"
)

// TimestampLayout is the human-readable stamp written to last_updated. It
// is display metadata for the dashboard and is never parsed back.
const TimestampLayout = "2006/01/02 15:04:05"

// Merge produces the updated store value. New postings whose id already
// exists anywhere in the store are discarded; survivors are prepended in
// their input order ahead of the existing sequence, which is then truncated
// to maxPostings from the tail. Merge never mutates its inputs.
func Merge(s store.Store, newPostings []domain.Posting, now time.Time, maxPostings int) store.Store {
	kept := make([]domain.Posting, 0, len(newPostings))
	seen := make(map[int64]bool, len(newPostings))
	for _, p := range newPostings {
		if s.Has(p.ID) || seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		kept = append(kept, p)
	}

	merged := make([]domain.Posting, 0, len(kept)+len(s.Postings))
	merged = append(merged, kept...)
	merged = append(merged, s.Postings...)

	if maxPostings > 0 && len(merged) > maxPostings {
		merged = merged[:maxPostings]
	}

	return store.Store{
		LastUpdated: now.Format(TimestampLayout),
		Postings:    merged,
	}
}

// Added returns the postings from newPostings that actually survive a
// merge into prev, in merge order. Survivors past maxPostings are the ones
// Merge truncates away, so they are excluded too; the notification sink
// must never advertise a posting the store did not retain.
func Added(prev store.Store, newPostings []domain.Posting, maxPostings int) []domain.Posting {
	var out []domain.Posting
	seen := make(map[int64]bool, len(newPostings))
	for _, p := range newPostings {
		if prev.Has(p.ID) || seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		out = append(out, p)
	}
	if maxPostings > 0 && len(out) > maxPostings {
		out = out[:maxPostings]
	}
	return out
}
