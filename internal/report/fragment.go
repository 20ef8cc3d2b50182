package report

import (
	"fmt"
	"strings"

	"github.com/EliotAmado/career-coach-ai/pkg/sources"
)

// Placeholder text substituted when a source fails or returns nothing.
// Empty results and hard failures read the same to the end user.
const (
	OutlookPlaceholder = "Job outlook not available."
	NewsPlaceholder    = "No recent news found."
	RedditPlaceholder  = "Reddit insights unavailable."
	CoursesPlaceholder = "No relevant courses found."
	SkillsPlaceholder  = "Skills data not available."
	MajorsPlaceholder  = "Major recommendations not available."
)

// Fragments is the complete set of text blocks fed into the report prompt.
// The six named fragments are always non-empty; the two source lists may be
// empty when their connector produced nothing.
type Fragments struct {
	JobOutlook    string
	Courses       string
	Majors        string
	MajorsSources string
	Skills        string
	SkillsSources string
	News          string
	RedditPosts   string
}

func renderOutlook(hits []sources.SearchHit) string {
	if len(hits) == 0 {
		return OutlookPlaceholder
	}

	lines := make([]string, 0, len(hits))
	for _, hit := range hits {
		lines = append(lines, fmt.Sprintf("🔹 %s\n%s", hit.Title, hit.Link))
	}
	return strings.Join(lines, "\n")
}

func renderNews(articles []sources.Article) string {
	if len(articles) == 0 {
		return NewsPlaceholder
	}

	lines := make([]string, 0, len(articles))
	for _, a := range articles {
		lines = append(lines, fmt.Sprintf("📰 %s (%s)\n%s", a.Title, a.Source, a.URL))
	}
	return strings.Join(lines, "\n")
}

func renderPosts(posts []sources.Post) string {
	if len(posts) == 0 {
		return RedditPlaceholder
	}

	var sb strings.Builder
	for i, p := range posts {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "**%s** (%s)\n%s\n", p.Title, p.Subreddit, p.URL)
		for _, cm := range p.Comments {
			fmt.Fprintf(&sb, "> %s (+%d upvotes)\n", cm.Body, cm.Upvotes)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func renderCourses(courses []sources.Course) string {
	if len(courses) == 0 {
		return CoursesPlaceholder
	}

	lines := make([]string, 0, len(courses))
	for _, course := range courses {
		lines = append(lines, fmt.Sprintf("- %s\n  %s", course.Title, course.URL))
	}
	return strings.Join(lines, "\n")
}

func renderSkills(refs []sources.Reference) string {
	if len(refs) == 0 {
		return SkillsPlaceholder
	}

	lines := make([]string, 0, len(refs))
	for i, ref := range refs {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, ref.Title))
	}
	return strings.Join(lines, "\n")
}

func renderMajors(refs []sources.Reference) string {
	if len(refs) == 0 {
		return MajorsPlaceholder
	}

	lines := make([]string, 0, len(refs))
	for _, ref := range refs {
		lines = append(lines, fmt.Sprintf("- %s", ref.Title))
	}
	return strings.Join(lines, "\n")
}

// renderRefSources formats "title - link" citation lines. Unlike the named
// fragments this degrades to an empty string, not a placeholder.
func renderRefSources(refs []sources.Reference) string {
	lines := make([]string, 0, len(refs))
	for _, ref := range refs {
		lines = append(lines, fmt.Sprintf("- %s - %s", ref.Title, ref.Link))
	}
	return strings.Join(lines, "\n")
}
