// Package scrape plans and executes one collection run: it expands the
// configured sources and search terms into an ordered query list, fans the
// queries out over a bounded worker pool, and reduces the raw output through
// dedup and filtering into the records the digest renders.
package scrape

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"jobdigest/internal/config"
	"jobdigest/internal/domain"
	"jobdigest/internal/scrape/email"
	"jobdigest/internal/scrape/indeed"
	"jobdigest/internal/scrape/sitesearch"
	"jobdigest/internal/scrape/types"
	"jobdigest/internal/scrape/util"
	"jobdigest/internal/scrape/wellfound"
)

// BuildQueries expands the enabled sources against the configured terms into
// the run's invocation list. Order is load-bearing: queries run and land in
// this order, and first-seen dedup later means "first in this list".
func BuildQueries(cfg config.Config, imapPassword string) []types.Query {
	fetcher := util.NewFetcher(
		cfg.RequestTimeout(),
		util.NewLimiter(cfg.Pause()),
		cfg.App.UserAgent,
	)

	var queries []types.Query

	if cfg.Sources.Indeed.Enabled {
		src := indeed.New(indeed.Config{}, fetcher)
		for _, kw := range cfg.Search.Keywords {
			queries = append(queries, types.Query{Source: src, Term: kw})
		}
	}

	if cfg.Sources.Wellfound.Enabled {
		src := wellfound.New(wellfound.Config{}, fetcher)
		for _, kw := range cfg.Search.Keywords {
			queries = append(queries, types.Query{Source: src, Term: kw})
		}
	}

	if cfg.Sources.SiteSearch.Enabled {
		// site searches burn a DDG request per (domain, term); the keyword
		// limit keeps the cross product reasonable
		kws := cfg.Search.Keywords
		if n := cfg.Sources.SiteSearch.KeywordLimit; n > 0 && n < len(kws) {
			kws = kws[:n]
		}
		for _, dom := range cfg.Sources.SiteSearch.Domains {
			src := sitesearch.New(sitesearch.Config{Domain: dom}, fetcher)
			for _, kw := range kws {
				queries = append(queries, types.Query{Source: src, Term: kw})
			}
		}
	}

	if cfg.Sources.Email.Enabled && imapPassword != "" {
		src := email.New(email.Config{
			Host:        cfg.Sources.Email.IMAPHost,
			Port:        cfg.Sources.Email.IMAPPort,
			Username:    cfg.Sources.Email.Username,
			Password:    imapPassword,
			Mailbox:     cfg.Sources.Email.Mailbox,
			MaxMessages: cfg.Sources.Email.MaxMessages,
		})
		subjects := cfg.Sources.Email.SubjectAny
		if len(subjects) == 0 {
			subjects = []string{""}
		}
		for _, subj := range subjects {
			queries = append(queries, types.Query{Source: src, Term: subj})
		}
	}

	return queries
}

// CollectAll runs every query with at most maxConcurrent in flight and
// returns the concatenation of their outputs in query order, regardless of
// completion order. A failed invocation logs and contributes nothing; it
// never cancels its siblings.
func CollectAll(ctx context.Context, queries []types.Query, maxConcurrent int) []domain.JobRecord {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}

	results := make([][]domain.JobRecord, len(queries))

	var g errgroup.Group
	g.SetLimit(maxConcurrent)

	for i, q := range queries {
		g.Go(func() error {
			recs, err := q.Source.Search(ctx, q.Term)
			if err != nil {
				log.Printf("[%s] search %q: %v", q.Source.Name(), q.Term, err)
				return nil
			}
			log.Printf("[%s] search %q: %d records", q.Source.Name(), q.Term, len(recs))
			results[i] = recs
			return nil
		})
	}
	_ = g.Wait()

	var out []domain.JobRecord
	for _, recs := range results {
		out = append(out, recs...)
	}
	return out
}
