package sources

import (
	"errors"
	"time"
)

// ErrMissingCredential is returned by a connector before any network call
// when the API key it needs was not configured.
var ErrMissingCredential = errors.New("missing API credential")

const requestTimeout = 10 * time.Second

// SearchHit is one organic result from a web search.
type SearchHit struct {
	Title   string
	Link    string
	Snippet string
}

// Article is one news item about the career.
type Article struct {
	Title       string
	Description string
	URL         string
	PublishedAt string
	Source      string
}

// Post is one community discussion thread with its top comments.
type Post struct {
	Title     string
	URL       string
	Subreddit string
	Score     int
	CreatedAt time.Time
	Comments  []Comment
}

type Comment struct {
	Body    string
	Upvotes int
}

// Course is one online course listing.
type Course struct {
	Title string
	URL   string
}

// Reference is a search hit used as both a list item and a citable source,
// produced by the skills and majors connectors.
type Reference struct {
	Title string
	Link  string
}

// truncate shortens s to at most max characters, never splitting a rune.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
