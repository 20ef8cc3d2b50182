package sources

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/vartanbeno/go-reddit/v2/reddit"
)

const (
	postsPerSubreddit = 2
	maxRedditPosts    = 5
	maxTopComments    = 3
	minCommentLength  = 20
	maxCommentLength  = 500
)

// RedditConnector searches career-related subreddits for discussion posts
// and pulls the highest-scored top-level comments of each.
type RedditConnector struct {
	clientID     string
	clientSecret string
	userAgent    string

	// newAPI is swapped out in tests.
	newAPI func() (redditAPI, error)
}

// redditAPI is the slice of the go-reddit client the connector uses.
type redditAPI interface {
	SearchPosts(ctx context.Context, subreddit, query string) ([]*reddit.Post, error)
	PostComments(ctx context.Context, postID string) ([]*reddit.Comment, error)
}

func NewRedditConnector(clientID, clientSecret, userAgent string) *RedditConnector {
	c := &RedditConnector{
		clientID:     clientID,
		clientSecret: clientSecret,
		userAgent:    userAgent,
	}
	c.newAPI = c.dial
	return c
}

// dial builds a read-only client. Script credentials gate the connector;
// searches and comment reads go through the public listing API.
func (c *RedditConnector) dial() (redditAPI, error) {
	client, err := reddit.NewReadonlyClient(
		reddit.WithHTTPClient(&http.Client{Timeout: requestTimeout}),
		reddit.WithUserAgent(c.userAgent),
	)
	if err != nil {
		return nil, fmt.Errorf("reddit client: %w", err)
	}
	return &liveRedditAPI{client: client}, nil
}

// RelatedSubreddits derives candidate subreddit names from a career query:
// concatenated and underscored forms, careers/jobs suffixed variants, and
// two catch-all communities. Duplicates are removed, order preserved.
func RelatedSubreddits(query string) []string {
	base := strings.ReplaceAll(strings.ToLower(query), " ", "")
	under := strings.ReplaceAll(strings.ToLower(query), " ", "_")

	candidates := []string{
		base,
		base + "careers",
		base + "jobs",
		under,
		under + "_careers",
		under + "_jobs",
		"careerguidance",
		"jobs",
	}

	seen := make(map[string]bool, len(candidates))
	unique := make([]string, 0, len(candidates))
	for _, name := range candidates {
		if seen[name] {
			continue
		}
		seen[name] = true
		unique = append(unique, name)
	}

	return unique
}

// Fetch searches each candidate subreddit in turn for posts from the past
// year. Subreddits that error or come back empty are skipped. The result is
// capped at 5 posts with at most 3 comments each.
func (c *RedditConnector) Fetch(ctx context.Context, query string) ([]Post, error) {
	if c.clientID == "" || c.clientSecret == "" || c.userAgent == "" {
		return nil, ErrMissingCredential
	}

	api, err := c.newAPI()
	if err != nil {
		return nil, err
	}

	var results []Post
	for _, name := range RelatedSubreddits(query) {
		if len(results) >= maxRedditPosts {
			break
		}

		posts, err := api.SearchPosts(ctx, name, query)
		if err != nil || len(posts) == 0 {
			continue
		}

		for _, p := range posts {
			comments, err := api.PostComments(ctx, p.ID)
			if err != nil {
				comments = nil
			}

			results = append(results, Post{
				Title:     p.Title,
				URL:       permalinkURL(p.Permalink),
				Subreddit: p.SubredditName,
				Score:     p.Score,
				CreatedAt: createdTime(p),
				Comments:  topComments(comments),
			})
		}
	}

	if len(results) > maxRedditPosts {
		results = results[:maxRedditPosts]
	}

	return results, nil
}

// topComments keeps top-level comments longer than 20 characters, sorted
// descending by score, capped at 3, bodies truncated to 500 characters.
func topComments(comments []*reddit.Comment) []Comment {
	var kept []*reddit.Comment
	for _, cm := range comments {
		if utf8.RuneCountInString(cm.Body) > minCommentLength {
			kept = append(kept, cm)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Score > kept[j].Score
	})

	if len(kept) > maxTopComments {
		kept = kept[:maxTopComments]
	}

	out := make([]Comment, 0, len(kept))
	for _, cm := range kept {
		body := cm.Body
		if utf8.RuneCountInString(body) > maxCommentLength {
			body = truncate(body, maxCommentLength) + "..."
		}
		out = append(out, Comment{Body: body, Upvotes: cm.Score})
	}

	return out
}

func permalinkURL(permalink string) string {
	if strings.HasPrefix(permalink, "http") {
		return permalink
	}
	return "https://www.reddit.com" + permalink
}

func createdTime(p *reddit.Post) time.Time {
	if p.Created == nil {
		return time.Time{}
	}
	return p.Created.Time
}

type liveRedditAPI struct {
	client *reddit.Client
}

func (a *liveRedditAPI) SearchPosts(ctx context.Context, subreddit, query string) ([]*reddit.Post, error) {
	posts, _, err := a.client.Subreddit.SearchPosts(ctx, query, subreddit, &reddit.ListPostSearchOptions{
		ListPostOptions: reddit.ListPostOptions{
			ListOptions: reddit.ListOptions{Limit: postsPerSubreddit},
			Time:        "year",
		},
	})
	return posts, err
}

func (a *liveRedditAPI) PostComments(ctx context.Context, postID string) ([]*reddit.Comment, error) {
	pc, _, err := a.client.Post.Get(ctx, postID)
	if err != nil {
		return nil, err
	}
	return pc.Comments, nil
}
