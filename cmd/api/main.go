package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/EliotAmado/career-coach-ai/internal/config"
	"github.com/EliotAmado/career-coach-ai/internal/handler"
	"github.com/EliotAmado/career-coach-ai/internal/report"
	"github.com/EliotAmado/career-coach-ai/pkg/llm"
	"github.com/EliotAmado/career-coach-ai/pkg/sources"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()

	serper := sources.NewSerperClient(cfg.SerperAPIKey)

	orchestrator := &report.Orchestrator{
		Outlook: sources.NewOutlookConnector(serper),
		News:    sources.NewNewsClient(cfg.NewsAPIKey),
		Reddit:  sources.NewRedditConnector(cfg.RedditClientID, cfg.RedditClientSecret, cfg.RedditUserAgent),
		Courses: sources.NewCourseraClient(),
		Skills:  sources.NewSkillsConnector(serper),
		Majors:  sources.NewMajorsConnector(serper),
	}

	var generator llm.Generator
	switch cfg.LLMProvider {
	case "anthropic":
		generator = llm.NewAnthropicClient(cfg.AnthropicAPIKey)
	default:
		generator = llm.NewOpenAIClient(cfg.OpenAIAPIKey)
	}

	profileHandler := handler.NewProfileHandler(orchestrator, generator)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"*"},
	}))

	r.POST("/chat", profileHandler.Chat)
	r.GET("/health", profileHandler.GetHealth)

	err := r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
