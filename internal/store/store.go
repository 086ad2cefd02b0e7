package store

import (
	"neurojobs-engine/internal/domain"
)

// Store is the durable, retention-bounded collection of accepted postings.
// It is a plain value: merge and aggregation take a Store in and hand a
// Store (or statistics) back, and only the file layer touches disk.
type Store struct {
	LastUpdated string           `json:"last_updated"`
	Postings    []domain.Posting `json:"jobs"`
}

// Empty is the recovery value used when no persisted state exists or the
// file on disk cannot be decoded.
func Empty() Store {
	return Store{LastUpdated: "", Postings: []domain.Posting{}}
}

// Has reports whether a posting with the given id is anywhere in the store.
func (s Store) Has(id int64) bool {
	for _, p := range s.Postings {
		if p.ID == id {
			return true
		}
	}
	return false
}
