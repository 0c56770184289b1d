package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.elastic.co/ecszap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/radhikag0/VisionBoard26/internal/config"
	"github.com/radhikag0/VisionBoard26/internal/db"
	"github.com/radhikag0/VisionBoard26/internal/docstore"
	api "github.com/radhikag0/VisionBoard26/internal/http"
	"github.com/radhikag0/VisionBoard26/migrations"
)

func main() {
	dotenvErr := godotenv.Load()
	initLogger()
	defer func() { _ = zap.L().Sync() }()
	if dotenvErr != nil {
		zap.S().Info("no .env file found, using environment variables")
	}

	cfg := config.Load()
	ctx := context.Background()

	var store docstore.Store
	if cfg.DatabaseURL == "" {
		zap.S().Warn("DATABASE_URL not set, using in-memory store; data will not survive restarts")
		store = docstore.NewMemory()
	} else {
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			zap.S().Fatalf("failed to connect db: %v", err)
		}
		defer pool.Close()
		if err := db.RunMigrations(ctx, pool, migrations.Files); err != nil {
			zap.S().Fatalf("failed to run migrations: %v", err)
		}
		store = docstore.NewPostgres(pool)
	}

	if err := os.MkdirAll(cfg.UploadsDir, 0o755); err != nil {
		zap.S().Fatalf("failed to create uploads dir %s: %v", cfg.UploadsDir, err)
	}

	handler := &api.API{
		Store:      store,
		UploadsDir: cfg.UploadsDir,
		Origins:    strings.Split(cfg.CORSOrigin, ","),
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		zap.S().Infof("server listening on %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.S().Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		zap.S().Errorf("server shutdown error: %v", err)
	}
}

func initLogger() {
	encoderConfig := ecszap.NewDefaultEncoderConfig()
	var core zapcore.Core
	switch os.Getenv("LOGGING_LEVEL") {
	case "DEVELOPMENT":
		core = ecszap.NewCore(encoderConfig, os.Stdout, zap.DebugLevel)
	default:
		core = ecszap.NewCore(encoderConfig, os.Stdout, zap.InfoLevel)
	}
	logger := zap.New(core, zap.AddCaller())
	zap.ReplaceGlobals(logger)
}
