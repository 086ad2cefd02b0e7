// Package pipeline wires one end-to-end run: fetch raw candidates from
// every enabled source, classify, merge into the persisted store, derive
// statistics, notify. Fetching is concurrent; everything after it is a
// sequence of pure value transformations bracketed by a locked load/save.
package pipeline

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"neurojobs-engine/internal/classify"
	"neurojobs-engine/internal/config"
	"neurojobs-engine/internal/domain"
	"neurojobs-engine/internal/events"
	"neurojobs-engine/internal/logger"
	"neurojobs-engine/internal/merge"
	"neurojobs-engine/internal/notify"
	"neurojobs-engine/internal/scrape"
	"neurojobs-engine/internal/scrape/fallback"
	"neurojobs-engine/internal/stats"
	"neurojobs-engine/internal/store"
)

type Deps struct {
	Cfg      config.Config
	File     *store.File
	Fetchers []scrape.Fetcher
	Hub      *events.Hub // optional

	// Notify delivers the new-postings report; defaults to notify.SendReport.
	Notify func(cfg config.Config, postings []domain.Posting, now time.Time) error
	// Now defaults to time.Now; injected so runs are reproducible in tests.
	Now func() time.Time
}

type RunReport struct {
	Fetched     int              `json:"fetched"`
	Relevant    int              `json:"relevant"`
	Added       int              `json:"added"`
	Fallback    bool             `json:"fallback"`
	Stats       stats.Statistics `json:"stats"`
	NewPostings []domain.Posting `json:"newPostings"`
}

// RunOnce executes a single pipeline run. The run is all-or-nothing around
// persistence: if the store cannot be written, the previous document stays
// in place and the run fails.
func RunOnce(ctx context.Context, deps Deps) (RunReport, error) {
	log := logger.For("pipeline")
	var report RunReport

	now := time.Now()
	if deps.Now != nil {
		now = deps.Now()
	}
	if deps.Hub != nil {
		deps.Hub.Publish(events.TypeRunStarted, nil)
	}

	candidates, fetchErrs := fetchAll(ctx, deps.Fetchers)
	if len(candidates) == 0 && fetchErrs > 0 {
		// Every live source failed; substitute the built-in set rather than
		// merging nothing and hiding the outage.
		log.Warn().Int("failed_sources", fetchErrs).Msg("all sources failed, using fallback candidates")
		candidates = fallback.Candidates()
		report.Fallback = true
	}
	report.Fetched = len(candidates)

	for i := range candidates {
		candidates[i] = candidates[i].Normalize(now)
	}

	classifier := classify.New(deps.Cfg)
	relevant := classifier.Filter(candidates)
	report.Relevant = len(relevant)

	postings := make([]domain.Posting, 0, len(relevant))
	for i, cand := range relevant {
		// offset keeps timestamp-based ids distinct within one run
		postings = append(postings, cand.Posting(now.Add(time.Duration(i)*time.Millisecond)))
	}

	if err := deps.File.Lock(ctx); err != nil {
		return report, err
	}
	defer func() { _ = deps.File.Unlock() }()

	prev := deps.File.Load()
	added := merge.Added(prev, postings, deps.Cfg.Pipeline.MaxPostings)
	merged := merge.Merge(prev, postings, now, deps.Cfg.Pipeline.MaxPostings)

	if err := deps.File.Save(merged); err != nil {
		return report, err
	}
	report.Added = len(added)
	report.NewPostings = added
	report.Stats = stats.Aggregate(merged, deps.Cfg.Keywords.Weights, now)

	if deps.Hub != nil {
		if len(added) > 0 {
			deps.Hub.Publish(events.TypeNewPostings, map[string]int{"count": len(added)})
		}
		deps.Hub.Publish(events.TypeRunFinished, map[string]int{"added": len(added)})
	}

	if deps.Cfg.Notify.Enabled && len(added) > 0 {
		send := deps.Notify
		if send == nil {
			send = notify.SendReport
		}
		if err := send(deps.Cfg, added, now); err != nil {
			// delivery is a sink; a failed mail never rolls back the merge
			log.Error().Err(err).Msg("report mail failed")
		}
	}

	log.Info().
		Int("fetched", report.Fetched).
		Int("relevant", report.Relevant).
		Int("added", report.Added).
		Msg("run complete")

	return report, nil
}

// fetchAll runs every fetcher concurrently and collects all results before
// returning; classification never interleaves with fetching. A failed
// source logs and drops out without cancelling its siblings.
func fetchAll(ctx context.Context, fetchers []scrape.Fetcher) ([]domain.Candidate, int) {
	log := logger.For("fetch")

	var g errgroup.Group
	results := make(chan scrape.Result, len(fetchers))
	errs := make(chan error, len(fetchers))

	for _, f := range fetchers {
		f := f
		g.Go(func() error {
			fctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
			defer cancel()

			log.Info().Str("source", f.Name()).Msg("running")
			res, err := f.Fetch(fctx)
			if err != nil {
				log.Error().Err(err).Str("source", f.Name()).Msg("fetch failed")
				errs <- err
				return nil // best-effort: don't cancel siblings
			}
			results <- res
			return nil
		})
	}

	_ = g.Wait()
	close(results)
	close(errs)

	var out []domain.Candidate
	for res := range results {
		log.Info().Str("source", res.Source).Int("candidates", len(res.Candidates)).Msg("collected")
		out = append(out, res.Candidates...)
	}
	return out, len(errs)
}

// Fetchers builds the enabled source list from config. The mailbox source
// is skipped (with a log line) when its password is not in the keychain.
func Fetchers(cfg config.Config) []scrape.Fetcher {
	log := logger.For("fetch")
	limiter := scrape.NewHostLimiter(1.0, 2)

	var fetchers []scrape.Fetcher
	if cfg.Sources.Sciencenet.Enabled {
		fetchers = append(fetchers, sciencenetFetcher(cfg, limiter))
	}
	if cfg.Sources.Gaoxiaojob.Enabled {
		fetchers = append(fetchers, gaoxiaojobFetcher(cfg, limiter))
	}
	if cfg.Sources.Mailbox.Enabled {
		pw, err := notify.GetIMAPPassword(notify.IMAPKeyringAccount(cfg))
		if err != nil {
			log.Warn().Err(err).Msg("mailbox source enabled but no credentials, skipping")
		} else {
			fetchers = append(fetchers, mailboxFetcher(cfg, pw))
		}
	}
	return fetchers
}
