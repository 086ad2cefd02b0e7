package classify

import (
	"strings"

	"neurojobs-engine/internal/config"
	"neurojobs-engine/internal/domain"
)

// Classifier decides whether a candidate is topically in scope. It is a
// pure function of the candidate's text fields and the configured keyword
// sets; it neither dedups nor persists.
type Classifier struct {
	primary   []string
	secondary []string
}

func New(cfg config.Config) Classifier {
	return Classifier{
		primary:   lowerAll(cfg.Keywords.Primary),
		secondary: lowerAll(cfg.Keywords.Secondary),
	}
}

// Relevant reports whether the candidate matches the focus areas. One
// primary hit is enough; otherwise at least two distinct secondary terms
// must occur. Matching is case-insensitive substring scanning over the
// concatenated position, requirements and extended description, so a term
// embedded in a longer word still counts.
func (c Classifier) Relevant(cand domain.Candidate) bool {
	text := strings.ToLower(cand.Position + " " + cand.Requirements + " " + cand.Description)

	for _, kw := range c.primary {
		if kw != "" && strings.Contains(text, kw) {
			return true
		}
	}

	hits := 0
	for _, kw := range c.secondary {
		if kw != "" && strings.Contains(text, kw) {
			hits++
			if hits >= 2 {
				return true
			}
		}
	}
	return false
}

// Filter returns the candidates that classify as relevant, preserving
// input order.
func (c Classifier) Filter(cands []domain.Candidate) []domain.Candidate {
	var kept []domain.Candidate
	for _, cand := range cands {
		if c.Relevant(cand) {
			kept = append(kept, cand)
		}
	}
	return kept
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, strings.ToLower(strings.TrimSpace(s)))
	}
	return out
}
