package types

import (
	"context"

	"jobdigest/internal/domain"
)

// Source is one place jobs come from. A Search call is a single best-effort
// fetch and parse for one term; implementations differ only in how they build
// the request, which selectors locate candidate postings, and how company and
// location fall out of the surrounding markup. Errors mean the invocation
// produced nothing, never that the run should stop.
type Source interface {
	Name() string
	Search(ctx context.Context, term string) ([]domain.JobRecord, error)
}

// Query is one planned (source, term) invocation. The run executes queries
// in slice order and keeps their outputs in that order, which is what makes
// first-seen dedup deterministic.
type Query struct {
	Source Source
	Term   string
}
