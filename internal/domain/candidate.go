package domain

import (
	"hash/fnv"
	"strings"
	"time"
)

// Candidate is a raw record proposed by an ingestion source, before
// classification. Sources may leave text fields empty; ingestion defaults
// them so downstream code never sees missing fields.
type Candidate struct {
	Date         string
	Unit         string
	Location     string
	Position     string
	Requirements string
	Description  string // extended free text, classification input only
	URL          string
	Type         Category
	Source       string // which fetcher produced it
}

// Normalize fills defaults once at ingestion: absent text becomes the empty
// string (already the zero value, trimmed here), a missing date becomes
// today.
func (c Candidate) Normalize(now time.Time) Candidate {
	c.Unit = strings.TrimSpace(c.Unit)
	c.Location = strings.TrimSpace(c.Location)
	c.Position = strings.TrimSpace(c.Position)
	c.Requirements = strings.TrimSpace(c.Requirements)
	c.Description = strings.TrimSpace(c.Description)
	c.URL = strings.TrimSpace(c.URL)
	if strings.TrimSpace(c.Date) == "" {
		c.Date = now.Format("2006-01-02")
	}
	return c
}

// Posting converts an accepted candidate into its immutable stored form,
// assigning the posting id.
func (c Candidate) Posting(now time.Time) Posting {
	return Posting{
		ID:           c.postingID(now),
		Date:         c.Date,
		Unit:         c.Unit,
		Location:     c.Location,
		Position:     c.Position,
		Requirements: c.Requirements,
		URL:          c.URL,
		Type:         c.Type,
	}
}

// postingID derives a source-stable id by hashing the URL, so the same
// posting seen on a later run dedups by identity. Candidates without a URL
// get a timestamp id instead.
func (c Candidate) postingID(now time.Time) int64 {
	if c.URL == "" {
		return now.UnixMilli()
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(c.URL))
	// keep ids positive for the JSON consumers
	return int64(h.Sum64() &^ (1 << 63))
}
