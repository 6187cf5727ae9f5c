package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"pdfsummarizer/internal/api"
	"pdfsummarizer/internal/config"
	"pdfsummarizer/internal/pdf"
	"pdfsummarizer/internal/service/summarizer"
)

func main() {
	// Optional .env file for local development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	summarizerService, err := summarizer.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("init summarizer: %v", err)
	}

	handler := api.NewHandler(pdf.NewExtractor(), summarizerService, cfg.MaxFileSizeMB)

	router := gin.Default()
	handler.RegisterRoutes(router)

	log.Printf("model profile %q, model %q via %s", cfg.Profile, cfg.ModelName, cfg.ModelBaseURL())
	if err := router.Run(cfg.Addr()); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
