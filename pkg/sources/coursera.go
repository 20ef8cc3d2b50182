package sources

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	courseraBaseURL = "https://www.coursera.org"
	maxCourses      = 5
	maxScanLinks    = 8
	maxTitleLength  = 100

	// Coursera serves a bare page to unknown agents, so present a browser.
	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// Coursera's markup changes between deployments; each selector is tried in
// order and the first one that matches anything wins.
var courseSelectors = []string{
	`div[data-testid="search-filter-group-results"] a`,
	`div.cds-CommonCard-container a`,
	`div.rc-SearchCard a`,
	`a[href*="/learn/"]`,
}

var courseTitleSelectors = []string{
	"h3", "h2", `[data-testid="course-name"]`, ".cds-119", ".card-title",
}

// CourseraClient scrapes the Coursera search results page for courses
// matching a career.
type CourseraClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewCourseraClient() *CourseraClient {
	return &CourseraClient{
		baseURL:    courseraBaseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// Fetch scrapes one search page and returns up to 5 unique course listings.
func (c *CourseraClient) Fetch(ctx context.Context, career string) ([]Course, error) {
	endpoint := fmt.Sprintf("%s/search?query=%s", c.baseURL, url.QueryEscape(career))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("coursera request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("coursera fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("coursera fetch: unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("coursera parse: %w", err)
	}

	return extractCourses(doc, c.baseURL), nil
}

func extractCourses(doc *goquery.Document, baseURL string) []Course {
	var links *goquery.Selection
	for _, selector := range courseSelectors {
		links = doc.Find(selector)
		if links.Length() > 0 {
			break
		}
	}
	if links == nil || links.Length() == 0 {
		return nil
	}

	var courses []Course
	links.EachWithBreak(func(i int, link *goquery.Selection) bool {
		if i >= maxScanLinks {
			return false
		}

		href, _ := link.Attr("href")
		if !strings.HasPrefix(href, "http") {
			href = baseURL + href
		}

		title := courseTitle(link)
		if title == "" || !strings.Contains(href, "/learn/") {
			return true
		}

		courses = append(courses, Course{Title: title, URL: href})
		return true
	})

	return dedupeCourses(courses)
}

func courseTitle(link *goquery.Selection) string {
	for _, selector := range courseTitleSelectors {
		if elem := link.Find(selector); elem.Length() > 0 {
			if title := strings.TrimSpace(elem.First().Text()); title != "" {
				return title
			}
			break
		}
	}

	// Fall back to the link's own text, empty headings included.
	return truncate(strings.TrimSpace(link.Text()), maxTitleLength)
}

func dedupeCourses(courses []Course) []Course {
	seen := make(map[string]bool, len(courses))
	var unique []Course
	for _, course := range courses {
		if seen[course.URL] {
			continue
		}
		seen[course.URL] = true
		unique = append(unique, course)
		if len(unique) == maxCourses {
			break
		}
	}
	return unique
}
