package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"dbstarter/config"
	"dbstarter/internal/api/handler"
	"dbstarter/internal/api/router"
	"dbstarter/internal/repository"
	"dbstarter/internal/seed"
	"dbstarter/internal/service"
	"dbstarter/pkg/database"
	applogger "dbstarter/pkg/logger"
)

func main() {
	// 1. load .env (optional) and configuration
	_ = godotenv.Load()

	cfg, err := config.Load("bookapi", "", 5001)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	// 2. logger
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("book api starting",
		zap.Int("port", cfg.Server.Port),
		zap.String("db", cfg.Database.Path),
	)

	// 3. database
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("unwrap sql.DB", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, "bookapi", logger); err != nil {
		logger.Fatal("run migrations", zap.Error(err))
	}

	// 4. dependency injection: repository → service → handler
	repo := repository.NewRepository(db)
	svc := service.NewService(repo, logger)
	h := handler.NewHandler(svc)

	// 5. first-run sample data
	if err := seed.BookAPI(context.Background(), repo, logger); err != nil {
		logger.Fatal("seed sample data", zap.Error(err))
	}

	// 6. router + HTTP server with graceful shutdown
	engine := router.SetupBookAPI(cfg, h, logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}

	sqlDB.Close()
	logger.Info("server stopped")
}
