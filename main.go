package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"resumematch/config"
	"resumematch/handlers"
	"resumematch/middleware"
	"resumematch/parsers"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	cfg := config.GetAppConfig()

	var tagger parsers.NameTagger
	if cfg.EnableNameTagger {
		tagger = parsers.NewHeuristicTagger()
	}

	analyze := handlers.NewAnalyzeController(tagger)
	report := handlers.NewReportController()
	limiter := middleware.NewRateLimiter(30, time.Minute)

	r := gin.Default()
	r.Use(cors.Default())
	r.Use(middleware.MaxRequestSize(cfg.MaxUploadBytes))

	r.GET("/health", handlers.Health)

	api := r.Group("/api")
	api.Use(limiter.Limit())
	api.POST("/resume/analyze", middleware.ValidateContentType("multipart/form-data"), analyze.Analyze)
	api.POST("/report/docx", middleware.ValidateContentType("application/json"), report.ExportDocx)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
