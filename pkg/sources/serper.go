package sources

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const serperURL = "https://google.serper.dev/search"

// SerperClient queries the Serper web-search API. It is shared by the
// job-outlook, skills and majors connectors.
type SerperClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewSerperClient(apiKey string) *SerperClient {
	return &SerperClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// Search runs one query and returns its organic results in relevance order.
func (c *SerperClient) Search(ctx context.Context, query string) ([]SearchHit, error) {
	if c.apiKey == "" {
		return nil, ErrMissingCredential
	}

	body, err := json.Marshal(map[string]string{"q": query})
	if err != nil {
		return nil, fmt.Errorf("serper marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, serperURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("serper request: %w", err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("serper search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("serper search: unexpected status %d", resp.StatusCode)
	}

	var raw serperResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("serper decode: %w", err)
	}

	hits := make([]SearchHit, 0, len(raw.Organic))
	for _, item := range raw.Organic {
		hits = append(hits, SearchHit{
			Title:   item.Title,
			Link:    item.Link,
			Snippet: item.Snippet,
		})
	}

	return hits, nil
}

type serperResponse struct {
	Organic []serperOrganic `json:"organic"`
}

type serperOrganic struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}
