package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/rmartins/tabletrack/internal/config"
	"github.com/rmartins/tabletrack/internal/db"
	"github.com/rmartins/tabletrack/internal/server"
)

var migrateOnlyFlag = flag.Bool("migrate-only", false, "Run DB migrations and exit")

func newLogger(env string) *zap.Logger {
	if env == "production" {
		log, _ := zap.NewProduction()
		return log
	}
	log, _ := zap.NewDevelopment()
	return log
}

func main() {
	flag.Parse()
	_ = godotenv.Load()
	cfg := config.Load()
	log := newLogger(cfg.Env)
	defer func() { _ = log.Sync() }()

	dbConn, err := db.ConnectAndMigrate(cfg.DatabaseDSN, log)
	if err != nil {
		log.Fatal("database bootstrap failed", zap.Error(err))
	}
	if *migrateOnlyFlag {
		log.Info("migrations completed, exiting as requested")
		return
	}

	log.Info("starting server", zap.String("env", cfg.Env), zap.String("port", cfg.Port))
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: server.New(dbConn, log)}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("error during shutdown", zap.Error(err))
	}
	log.Info("server gracefully stopped")
}
