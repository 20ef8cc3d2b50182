package report

import (
	"context"
	"errors"
	"log/slog"

	"github.com/EliotAmado/career-coach-ai/pkg/sources"
	"golang.org/x/sync/errgroup"
)

// Connector interfaces cover exactly what the orchestrator calls on each
// source client.
type (
	OutlookSource interface {
		Fetch(ctx context.Context, career string) ([]sources.SearchHit, error)
	}
	NewsSource interface {
		Fetch(ctx context.Context, career string, count int) ([]sources.Article, error)
	}
	RedditSource interface {
		Fetch(ctx context.Context, query string) ([]sources.Post, error)
	}
	CourseSource interface {
		Fetch(ctx context.Context, career string) ([]sources.Course, error)
	}
	ReferenceSource interface {
		Fetch(ctx context.Context, career string) ([]sources.Reference, error)
	}
)

// Orchestrator fans out to the six source connectors and assembles their
// normalized fragments. A connector failure degrades its fragment to a
// placeholder; it never prevents the other sources from contributing.
type Orchestrator struct {
	Outlook OutlookSource
	News    NewsSource
	Reddit  RedditSource
	Courses CourseSource
	Skills  ReferenceSource
	Majors  ReferenceSource
}

// Collect runs all connectors concurrently and returns the complete fragment
// set. Every fragment slot is populated before it returns, so report
// generation renders deterministically no matter how many sources were down.
func (o *Orchestrator) Collect(ctx context.Context, career string) Fragments {
	var frags Fragments

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		hits, err := o.Outlook.Fetch(gCtx, career)
		logSourceError("job_outlook", err)
		if err != nil {
			hits = nil
		}
		frags.JobOutlook = renderOutlook(hits)
		return nil
	})

	g.Go(func() error {
		articles, err := o.News.Fetch(gCtx, career, 0)
		logSourceError("news", err)
		if err != nil {
			articles = nil
		}
		frags.News = renderNews(articles)
		return nil
	})

	g.Go(func() error {
		posts, err := o.Reddit.Fetch(gCtx, career)
		logSourceError("reddit", err)
		if err != nil {
			posts = nil
		}
		frags.RedditPosts = renderPosts(posts)
		return nil
	})

	g.Go(func() error {
		courses, err := o.Courses.Fetch(gCtx, career)
		logSourceError("coursera", err)
		if err != nil {
			courses = nil
		}
		frags.Courses = renderCourses(courses)
		return nil
	})

	g.Go(func() error {
		refs, err := o.Skills.Fetch(gCtx, career)
		logSourceError("skills", err)
		if err != nil {
			refs = nil
		}
		frags.Skills = renderSkills(refs)
		frags.SkillsSources = renderRefSources(refs)
		return nil
	})

	g.Go(func() error {
		refs, err := o.Majors.Fetch(gCtx, career)
		logSourceError("majors", err)
		if err != nil {
			refs = nil
		}
		frags.Majors = renderMajors(refs)
		frags.MajorsSources = renderRefSources(refs)
		return nil
	})

	// Connector goroutines never return an error; Wait only joins them.
	g.Wait()

	return frags
}

// logSourceError records why a fragment degraded. A missing credential is
// logged apart from transport failures so the two are distinguishable even
// though the user-facing placeholder is identical.
func logSourceError(source string, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, sources.ErrMissingCredential) {
		slog.Warn("source skipped, credential not configured", "source", source)
		return
	}
	slog.Error("source fetch failed", "source", source, "error", err)
}
