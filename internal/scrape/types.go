// Package scrape holds the ingestion boundary: fetchers that produce raw
// candidates from external sources. The pipeline treats them as opaque
// producers; nothing here classifies or stores anything.
package scrape

import (
	"context"

	"neurojobs-engine/internal/domain"
)

type Result struct {
	Source     string
	Candidates []domain.Candidate
}

type Fetcher interface {
	Name() string
	Fetch(ctx context.Context) (Result, error)
}

type Status struct {
	LastRunAt string `json:"last_run_at"`
	LastOkAt  string `json:"last_ok_at"`
	LastError string `json:"last_error"`
	LastAdded int    `json:"last_added"`
	Running   bool   `json:"running"`
}
