package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/SyedHashirA/Email-Spam-Detection/internal/config"
	"github.com/SyedHashirA/Email-Spam-Detection/internal/extractor"
	"github.com/SyedHashirA/Email-Spam-Detection/internal/handler"
	"github.com/SyedHashirA/Email-Spam-Detection/internal/inference"
	"github.com/SyedHashirA/Email-Spam-Detection/internal/server"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	logger.Info("Starting PDF spam detection service...")

	// Optional .env for local development; real environments set vars directly.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("configs/config.yml")
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	engine := inference.NewEngine(cfg.Model.Path, logger)
	pdfExtractor := extractor.NewPDFExtractor(logger)
	apiHandler := handler.NewHandler(engine, pdfExtractor, cfg.Model.MetricsPath, logger)

	srv := server.NewServer(apiHandler, logger)
	if err := srv.Run(fmt.Sprintf(":%s", cfg.Server.Port)); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}
