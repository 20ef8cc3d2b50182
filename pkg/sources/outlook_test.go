package sources

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

type fakeSearcher struct {
	hitsPerQuery int
	failQueries  []string
	err          error
	queries      []string
}

func (f *fakeSearcher) Search(ctx context.Context, query string) ([]SearchHit, error) {
	f.queries = append(f.queries, query)

	if f.err != nil {
		return nil, f.err
	}

	for _, failing := range f.failQueries {
		if strings.Contains(query, failing) {
			return nil, errors.New("search unavailable")
		}
	}

	hits := make([]SearchHit, f.hitsPerQuery)
	for i := range hits {
		hits[i] = SearchHit{
			Title: fmt.Sprintf("result %d for %q", i, query),
			Link:  fmt.Sprintf("https://example.com/%d", i),
		}
	}
	return hits, nil
}

func TestOutlookFetchCapsResults(t *testing.T) {
	// Each of the three queries returns more hits than the per-query cap.
	search := &fakeSearcher{hitsPerQuery: 4}
	connector := NewOutlookConnector(search)

	hits, err := connector.Fetch(context.Background(), "Nurse")

	assert.Equal(t, nil, err)
	assert.Equal(t, 3, len(search.queries))
	assert.Equal(t, 6, len(hits))
}

func TestOutlookFetchSkipsFailedQuery(t *testing.T) {
	search := &fakeSearcher{hitsPerQuery: 2, failQueries: []string{"future demand"}}
	connector := NewOutlookConnector(search)

	hits, err := connector.Fetch(context.Background(), "Nurse")

	// Partial results are still a success.
	assert.Equal(t, nil, err)
	assert.Equal(t, 4, len(hits))
}

func TestOutlookFetchMissingCredential(t *testing.T) {
	search := &fakeSearcher{err: ErrMissingCredential}
	connector := NewOutlookConnector(search)

	_, err := connector.Fetch(context.Background(), "Nurse")

	assert.Equal(t, ErrMissingCredential, err)
	// Short-circuits on the first query instead of trying all three.
	assert.Equal(t, 1, len(search.queries))
}

func TestOutlookFetchAllQueriesFail(t *testing.T) {
	search := &fakeSearcher{failQueries: []string{"Nurse"}}
	connector := NewOutlookConnector(search)

	hits, err := connector.Fetch(context.Background(), "Nurse")

	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(hits))
}
