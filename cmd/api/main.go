package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"newschat/internal/config"
	"newschat/internal/handler"
	"newschat/internal/repository"
	"newschat/pkg/llm"
	"newschat/pkg/news"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()

	newClient, err := llm.NewClientFactory(cfg.Provider, cfg.Model)
	if err != nil {
		log.Fatalf("error configuring LLM provider: %v", err)
	}

	credRepo := repository.NewCredentialRepository(cfg.CredentialFile)
	archiveRepo := repository.NewArchiveRepository(cfg.ArchiveFile)
	gateway := llm.NewGateway(credRepo, newClient)
	searcher := news.NewGoogleNewsClient()

	newsHandler := handler.NewNewsHandler(searcher, gateway)
	archiveHandler := handler.NewArchiveHandler(archiveRepo)
	apiKeyHandler := handler.NewAPIKeyHandler(credRepo, gateway)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.POST("/search", newsHandler.Search)
	r.POST("/summarize", newsHandler.Summarize)
	r.POST("/chat", newsHandler.Chat)
	r.POST("/save", archiveHandler.Save)
	r.GET("/saved", archiveHandler.Saved)
	r.POST("/validate-api", apiKeyHandler.Validate)
	r.POST("/save-api-key", apiKeyHandler.Save)
	r.GET("/health", handler.Health)

	err = r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
