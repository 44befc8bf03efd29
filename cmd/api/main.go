package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/chensirou3/marketnewsanaylzer/internal/config"
	"github.com/chensirou3/marketnewsanaylzer/internal/handler"
	"github.com/chensirou3/marketnewsanaylzer/internal/storage"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()
	store := storage.New(cfg.DataDir, cfg.ReportsDir)
	reportHandler := handler.NewReportHandler(store)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/assets", reportHandler.GetAssets)
	r.GET("/news/:asset/:date", reportHandler.GetNews)
	r.GET("/reports/:asset/:date", reportHandler.GetReport)
	r.GET("/health", reportHandler.GetHealth)

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	err := r.Run(addr)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
