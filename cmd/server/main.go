package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/joho/godotenv"

	"pricecheck_backend/internal/app/di"
	"pricecheck_backend/internal/app/router"
	pricehandler "pricecheck_backend/internal/feature/pricing/transport/handler"
	"pricecheck_backend/internal/platform/config"
	"pricecheck_backend/internal/platform/logging"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	closeLog, err := logging.Setup(logging.LoadConfig())
	if err != nil {
		log.Fatalf("failed to set up logging: %v", err)
	}
	defer func() {
		if err := closeLog(); err != nil {
			log.Println("[ERROR] Failed to close log file:", err)
		}
	}()

	// Usecase
	uc, cleanup, err := di.NewSearchUsecase(context.Background())
	if err != nil {
		slog.Error("failed to build search pipeline", "error", err)
		return
	}
	defer cleanup()

	// Handler
	priceH := pricehandler.NewPriceHandler(uc)

	// ルータ生成
	r := router.NewRouter(router.LoadConfig(), priceH)

	port := config.String("PORT", "5000")
	slog.Info("starting server", "port", port)
	if err := r.Run(":" + port); err != nil {
		slog.Error("server stopped", "error", err)
	}
}
