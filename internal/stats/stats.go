// Package stats derives the dashboard statistics from the store. Every
// function here is read-only and deterministic: the clock comes in as an
// argument and the outputs are stably ordered.
package stats

import (
	"sort"
	"time"

	"neurojobs-engine/internal/store"
)

type KeywordCount struct {
	Keyword string `json:"keyword"`
	Weight  int    `json:"weight"`
	Count   int    `json:"count"`
}

type MonthCount struct {
	Month string `json:"month"` // YYYY-MM
	Count int    `json:"count"`
}

type Statistics struct {
	TotalCount  int    `json:"totalCount"`
	RecentCount int    `json:"recentCount"`
	TopRegion   string `json:"topRegion"`
	TopType     string `json:"topType"` // display name

	RegionBreakdown map[string]int `json:"regionBreakdown"`
	TypeBreakdown   map[string]int `json:"typeBreakdown"`

	KeywordFrequency []KeywordCount `json:"keywordFrequency"`
	MonthlyTrend     []MonthCount   `json:"monthlyTrend"`
}

// Aggregate computes the full statistics value for the given store.
// weights is the configured keyword table; now anchors the trailing 7-day
// window and nothing else.
func Aggregate(s store.Store, weights map[string]int, now time.Time) Statistics {
	out := Statistics{
		TotalCount:      len(s.Postings),
		RegionBreakdown: map[string]int{},
		TypeBreakdown:   map[string]int{},
	}

	// Postings dated on or after this calendar day count as recent.
	cutoff := now.AddDate(0, 0, -7).Format("2006-01-02")

	regions := newCounter()
	types := newCounter()
	months := map[string]int{}

	for _, p := range s.Postings {
		regions.add(p.Location)
		types.add(string(p.Type))
		if m := p.Month(); m != "" {
			months[m]++
		}
		if p.Date >= cutoff {
			out.RecentCount++
		}
	}

	out.RegionBreakdown = regions.counts
	out.TypeBreakdown = types.counts
	out.TopRegion = regions.top()
	if topType, ok := types.topValue(); ok {
		out.TopType = displayType(topType)
	}

	out.KeywordFrequency = keywordFrequency(s, weights)
	out.MonthlyTrend = monthlyTrend(months)

	return out
}

// keywordFrequency counts, per configured keyword, how many postings
// mention it in requirements or position. Matching is case-sensitive
// substring search; the source text is not normalized here. Rows are
// ordered by weight descending, then keyword, so output is stable.
func keywordFrequency(s store.Store, weights map[string]int) []KeywordCount {
	out := make([]KeywordCount, 0, len(weights))
	for kw, w := range weights {
		kc := KeywordCount{Keyword: kw, Weight: w}
		for _, p := range s.Postings {
			if contains(p.Requirements, kw) || contains(p.Position, kw) {
				kc.Count++
			}
		}
		out = append(out, kc)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Weight != out[j].Weight {
			return out[i].Weight > out[j].Weight
		}
		return out[i].Keyword < out[j].Keyword
	})
	return out
}

func monthlyTrend(months map[string]int) []MonthCount {
	keys := make([]string, 0, len(months))
	for m := range months {
		keys = append(keys, m)
	}
	sort.Strings(keys)

	out := make([]MonthCount, 0, len(keys))
	for _, m := range keys {
		out = append(out, MonthCount{Month: m, Count: months[m]})
	}
	return out
}
