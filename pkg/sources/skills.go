package sources

import (
	"context"
	"fmt"
)

const referenceHits = 3

// SkillsConnector searches job boards for the skills employers currently
// ask of a career.
type SkillsConnector struct {
	search Searcher
}

func NewSkillsConnector(search Searcher) *SkillsConnector {
	return &SkillsConnector{search: search}
}

func (c *SkillsConnector) Fetch(ctx context.Context, career string) ([]Reference, error) {
	query := fmt.Sprintf("Top 10 skills required for %s 2025 site:linkedin.com OR site:indeed.com", career)
	return fetchReferences(ctx, c.search, query)
}

// MajorsConnector searches college-ranking sites for academic majors that
// prepare for a career.
type MajorsConnector struct {
	search Searcher
}

func NewMajorsConnector(search Searcher) *MajorsConnector {
	return &MajorsConnector{search: search}
}

func (c *MajorsConnector) Fetch(ctx context.Context, career string) ([]Reference, error) {
	query := fmt.Sprintf("Best college majors for %s 2025 site:usnews.com OR site:princetonreview.com", career)
	return fetchReferences(ctx, c.search, query)
}

func fetchReferences(ctx context.Context, search Searcher, query string) ([]Reference, error) {
	hits, err := search.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	if len(hits) > referenceHits {
		hits = hits[:referenceHits]
	}

	refs := make([]Reference, 0, len(hits))
	for _, hit := range hits {
		refs = append(refs, Reference{Title: hit.Title, Link: hit.Link})
	}

	return refs, nil
}
