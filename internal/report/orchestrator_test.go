package report

import (
	"context"
	"errors"
	"testing"

	"github.com/EliotAmado/career-coach-ai/pkg/sources"
	"github.com/go-playground/assert/v2"
)

type fakeConnectors struct {
	hits     []sources.SearchHit
	articles []sources.Article
	posts    []sources.Post
	courses  []sources.Course
	skills   []sources.Reference
	majors   []sources.Reference
	err      error
}

type (
	fakeOutlook fakeConnectors
	fakeNews    fakeConnectors
	fakeReddit  fakeConnectors
	fakeCourses fakeConnectors
	fakeSkills  fakeConnectors
	fakeMajors  fakeConnectors
)

func (f *fakeOutlook) Fetch(ctx context.Context, career string) ([]sources.SearchHit, error) {
	return f.hits, f.err
}

func (f *fakeNews) Fetch(ctx context.Context, career string, count int) ([]sources.Article, error) {
	return f.articles, f.err
}

func (f *fakeReddit) Fetch(ctx context.Context, query string) ([]sources.Post, error) {
	return f.posts, f.err
}

func (f *fakeCourses) Fetch(ctx context.Context, career string) ([]sources.Course, error) {
	return f.courses, f.err
}

func (f *fakeSkills) Fetch(ctx context.Context, career string) ([]sources.Reference, error) {
	return f.skills, f.err
}

func (f *fakeMajors) Fetch(ctx context.Context, career string) ([]sources.Reference, error) {
	return f.majors, f.err
}

func newTestOrchestrator(f fakeConnectors) *Orchestrator {
	return &Orchestrator{
		Outlook: (*fakeOutlook)(&f),
		News:    (*fakeNews)(&f),
		Reddit:  (*fakeReddit)(&f),
		Courses: (*fakeCourses)(&f),
		Skills:  (*fakeSkills)(&f),
		Majors:  (*fakeMajors)(&f),
	}
}

func TestCollectAllSourcesDown(t *testing.T) {
	o := newTestOrchestrator(fakeConnectors{err: errors.New("network outage")})

	frags := o.Collect(context.Background(), "Nurse")

	assert.Equal(t, OutlookPlaceholder, frags.JobOutlook)
	assert.Equal(t, NewsPlaceholder, frags.News)
	assert.Equal(t, RedditPlaceholder, frags.RedditPosts)
	assert.Equal(t, CoursesPlaceholder, frags.Courses)
	assert.Equal(t, SkillsPlaceholder, frags.Skills)
	assert.Equal(t, MajorsPlaceholder, frags.Majors)
	assert.Equal(t, "", frags.SkillsSources)
	assert.Equal(t, "", frags.MajorsSources)
}

func TestCollectMissingCredentials(t *testing.T) {
	o := newTestOrchestrator(fakeConnectors{err: sources.ErrMissingCredential})

	frags := o.Collect(context.Background(), "Nurse")

	assert.Equal(t, OutlookPlaceholder, frags.JobOutlook)
	assert.Equal(t, SkillsPlaceholder, frags.Skills)
	assert.Equal(t, MajorsPlaceholder, frags.Majors)
}

func TestCollectEmptySuccess(t *testing.T) {
	// Zero items on success degrades exactly like a failure.
	o := newTestOrchestrator(fakeConnectors{})

	frags := o.Collect(context.Background(), "Nurse")

	assert.Equal(t, OutlookPlaceholder, frags.JobOutlook)
	assert.Equal(t, NewsPlaceholder, frags.News)
	assert.Equal(t, RedditPlaceholder, frags.RedditPosts)
	assert.Equal(t, CoursesPlaceholder, frags.Courses)
	assert.Equal(t, SkillsPlaceholder, frags.Skills)
	assert.Equal(t, MajorsPlaceholder, frags.Majors)
}

func TestCollectAllSourcesUp(t *testing.T) {
	o := newTestOrchestrator(fakeConnectors{
		hits:     []sources.SearchHit{{Title: "BLS Outlook", Link: "https://bls.gov"}},
		articles: []sources.Article{{Title: "Shortage", Source: "Daily", URL: "https://example.com"}},
		posts:    []sources.Post{{Title: "AMA", Subreddit: "nursing", URL: "https://reddit.com/x"}},
		courses:  []sources.Course{{Title: "Nursing 101", URL: "https://coursera.org/learn/n"}},
		skills:   []sources.Reference{{Title: "Skills", Link: "https://linkedin.com/s"}},
		majors:   []sources.Reference{{Title: "Majors", Link: "https://usnews.com/m"}},
	})

	frags := o.Collect(context.Background(), "Nurse")

	assert.Equal(t, "🔹 BLS Outlook\nhttps://bls.gov", frags.JobOutlook)
	assert.Equal(t, "📰 Shortage (Daily)\nhttps://example.com", frags.News)
	assert.Equal(t, "**AMA** (nursing)\nhttps://reddit.com/x", frags.RedditPosts)
	assert.Equal(t, "- Nursing 101\n  https://coursera.org/learn/n", frags.Courses)
	assert.Equal(t, "1. Skills", frags.Skills)
	assert.Equal(t, "- Skills - https://linkedin.com/s", frags.SkillsSources)
	assert.Equal(t, "- Majors", frags.Majors)
	assert.Equal(t, "- Majors - https://usnews.com/m", frags.MajorsSources)
}

// Every fragment slot must be populated no matter the mix of outcomes.
func TestCollectAlwaysFillsEverySlot(t *testing.T) {
	cases := []fakeConnectors{
		{err: errors.New("boom")},
		{},
		{hits: []sources.SearchHit{{Title: "only outlook", Link: "https://x"}}},
	}

	for _, fc := range cases {
		frags := newTestOrchestrator(fc).Collect(context.Background(), "Data Analyst")

		assert.NotEqual(t, "", frags.JobOutlook)
		assert.NotEqual(t, "", frags.News)
		assert.NotEqual(t, "", frags.RedditPosts)
		assert.NotEqual(t, "", frags.Courses)
		assert.NotEqual(t, "", frags.Skills)
		assert.NotEqual(t, "", frags.Majors)
	}
}
