package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ovenworks/bakeryadmin/internal/config"
	"github.com/ovenworks/bakeryadmin/internal/logging"
	"github.com/ovenworks/bakeryadmin/internal/mockapi"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(cfg.LOG_LEVEL)

	db, err := mockapi.OpenDB(cfg.MOCKAPI_DATABASE_URL, cfg.MOCKAPI_DB_PATH)
	if err != nil {
		logger.Error("database init failed", "error", err)
		os.Exit(1)
	}
	if err := mockapi.Seed(db, cfg.MOCKAPI_ADMIN_PASSWORD); err != nil {
		logger.Error("seed failed", "error", err)
		os.Exit(1)
	}

	srv := mockapi.New(db, []byte(cfg.MOCKAPI_JWT_SECRET), cfg.MOCKAPI_UPLOAD_DIR, logger)

	go func() {
		logger.Info("mockapi listening", "addr", cfg.MOCKAPI_ADDR)
		if err := srv.Start(cfg.MOCKAPI_ADDR); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "error", err)
		os.Exit(1)
	}
	logger.Info("mockapi stopped")
}
