package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a cleaned copy of the config plus anything a
// caller should surface before saving it.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.TrimSpace(x)
			if x == "" {
				continue
			}
			key := strings.ToLower(x)
			if seen[key] {
				continue
			}
			seen[key] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.Keywords.Primary = trimList(out.Keywords.Primary)
	out.Keywords.Secondary = trimList(out.Keywords.Secondary)
	out.Sources.Mailbox.SearchSubjectAny = trimList(out.Sources.Mailbox.SearchSubjectAny)

	if len(out.Keywords.Primary) == 0 {
		res.addErr("keywords.primary is empty; nothing can ever classify as relevant on a single match")
	}
	if len(out.Keywords.Secondary) < 2 {
		res.addWarn("keywords.secondary has %d terms; the two-hit rule can never fire", len(out.Keywords.Secondary))
	}

	// A term in both lists would make the secondary count meaningless.
	primarySet := map[string]bool{}
	for _, p := range out.Keywords.Primary {
		primarySet[strings.ToLower(p)] = true
	}
	var secondary []string
	for _, s := range out.Keywords.Secondary {
		if primarySet[strings.ToLower(s)] {
			res.addWarn("keyword appears in both primary and secondary: %q", s)
			continue
		}
		secondary = append(secondary, s)
	}
	out.Keywords.Secondary = secondary

	if out.Pipeline.IntervalSeconds > 0 && out.Pipeline.IntervalSeconds < 60 {
		res.addWarn("pipeline.interval_seconds is very low (%d) and may hammer the sources.", out.Pipeline.IntervalSeconds)
	}

	if out.Sources.Mailbox.Enabled && len(out.Sources.Mailbox.SearchSubjectAny) == 0 {
		res.addWarn("sources.mailbox.search_subject_any is empty; mailbox ingestion may find nothing.")
	}

	if !out.Sources.Sciencenet.Enabled && !out.Sources.Gaoxiaojob.Enabled && !out.Sources.Mailbox.Enabled {
		res.addWarn("no live sources enabled; runs will ingest nothing and only restamp the store.")
	}

	return out, res
}
