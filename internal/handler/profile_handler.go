package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/EliotAmado/career-coach-ai/internal/report"
	"github.com/EliotAmado/career-coach-ai/pkg/llm"
	"github.com/gin-gonic/gin"
)

// Collector assembles the fragment set for one career topic.
type Collector interface {
	Collect(ctx context.Context, career string) report.Fragments
}

type ProfileHandler struct {
	collector Collector
	generator llm.Generator
}

func NewProfileHandler(collector Collector, generator llm.Generator) *ProfileHandler {
	return &ProfileHandler{collector: collector, generator: generator}
}

// Chat generates a career profile for the career named in the query string.
// Source failures never surface here; only a generation failure returns an
// error response.
func (h *ProfileHandler) Chat(c *gin.Context) {
	career := c.Query("career")
	if career == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "career query parameter is required"})
		return
	}

	frags := h.collector.Collect(c.Request.Context(), career)

	summary, err := h.generator.GenerateProfile(c.Request.Context(), llm.ProfileRequest{
		Career:        career,
		JobOutlook:    frags.JobOutlook,
		Courses:       frags.Courses,
		Majors:        frags.Majors,
		MajorsSources: frags.MajorsSources,
		Skills:        frags.Skills,
		SkillsSources: frags.SkillsSources,
		News:          frags.News,
		RedditPosts:   frags.RedditPosts,
	})
	if err != nil {
		slog.Error("error generating career profile", "career", career, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "LLM error: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

func (h *ProfileHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Career Coach AI API is running!",
	})
}
