package sources

import (
	"context"
	"errors"
	"fmt"
)

const (
	outlookHitsPerQuery = 2
	outlookMaxResults   = 6
)

// OutlookConnector gathers job-outlook data (salary, growth, demand) by
// running several web searches against labor-statistics sources.
type OutlookConnector struct {
	search Searcher
}

// Searcher is the slice of SerperClient the connectors need.
type Searcher interface {
	Search(ctx context.Context, query string) ([]SearchHit, error)
}

func NewOutlookConnector(search Searcher) *OutlookConnector {
	return &OutlookConnector{search: search}
}

// Fetch runs three fixed queries and keeps the top results of each.
// A failed sub-query is skipped; partial results still count as success.
// The connector as a whole fails only when the credential is absent.
func (c *OutlookConnector) Fetch(ctx context.Context, career string) ([]SearchHit, error) {
	queries := []string{
		fmt.Sprintf("%s job outlook salary growth BLS bureau labor statistics", career),
		fmt.Sprintf("%s career prospects future demand 2024 2025", career),
		fmt.Sprintf("%s average salary median pay trends", career),
	}

	var all []SearchHit
	for _, query := range queries {
		hits, err := c.search.Search(ctx, query)
		if errors.Is(err, ErrMissingCredential) {
			return nil, err
		}
		if err != nil {
			continue
		}

		if len(hits) > outlookHitsPerQuery {
			hits = hits[:outlookHitsPerQuery]
		}
		all = append(all, hits...)
	}

	if len(all) > outlookMaxResults {
		all = all[:outlookMaxResults]
	}

	return all, nil
}
