package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const defaultNewsCount = 5

// NewsClient fetches recent news articles about a career from NewsAPI.
type NewsClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewNewsClient(apiKey string) *NewsClient {
	return &NewsClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// Fetch searches for industry news about the career. count <= 0 uses the
// default of 5 articles.
func (c *NewsClient) Fetch(ctx context.Context, career string, count int) ([]Article, error) {
	if c.apiKey == "" {
		return nil, ErrMissingCredential
	}

	if count <= 0 {
		count = defaultNewsCount
	}

	params := url.Values{}
	params.Set("q", fmt.Sprintf("%s jobs career industry trends", career))
	params.Set("sortBy", "relevancy")
	params.Set("pageSize", strconv.Itoa(count))
	params.Set("language", "en")
	params.Set("apiKey", c.apiKey)

	endpoint := "https://newsapi.org/v2/everything?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("newsapi request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("newsapi fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("newsapi fetch: unexpected status %d", resp.StatusCode)
	}

	var raw newsResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("newsapi decode: %w", err)
	}

	articles := make([]Article, 0, len(raw.Articles))
	for _, item := range raw.Articles {
		articles = append(articles, Article{
			Title:       item.Title,
			Description: item.Description,
			URL:         item.URL,
			PublishedAt: item.PublishedAt,
			Source:      item.Source.Name,
		})
	}

	return articles, nil
}

type newsResponse struct {
	Articles []newsArticle `json:"articles"`
}

type newsArticle struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	URL         string     `json:"url"`
	PublishedAt string     `json:"publishedAt"`
	Source      newsSource `json:"source"`
}

type newsSource struct {
	Name string `json:"name"`
}
