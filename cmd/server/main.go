package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/neighborly/carehub/internal/auth"
	"github.com/neighborly/carehub/internal/config"
	"github.com/neighborly/carehub/internal/domain/activity"
	"github.com/neighborly/carehub/internal/domain/category"
	"github.com/neighborly/carehub/internal/domain/report"
	"github.com/neighborly/carehub/internal/domain/request"
	"github.com/neighborly/carehub/internal/domain/shortlist"
	"github.com/neighborly/carehub/internal/domain/user"
	"github.com/neighborly/carehub/internal/jsonstore"
	"github.com/neighborly/carehub/internal/sqlite"
	"github.com/neighborly/carehub/internal/transport/rest"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	if err := os.MkdirAll(cfg.Data.Dir, 0o755); err != nil {
		logger.Error("failed to prepare data dir", "error", err)
		os.Exit(1)
	}
	if err := ensureDBDir(cfg.Data.ActivityDB); err != nil {
		logger.Error("failed to prepare database path", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.Data.ActivityDB)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	requestStore := jsonstore.NewRequestStore(filepath.Join(cfg.Data.Dir, "requests.json"))
	userStore := jsonstore.NewUserStore(filepath.Join(cfg.Data.Dir, "users.json"))
	categoryStore := jsonstore.NewCategoryStore(filepath.Join(cfg.Data.Dir, "categories.json"))
	shortlistStore := jsonstore.NewShortlistStore(filepath.Join(cfg.Data.Dir, "shortlists.json"))
	activityRepo := sqlite.NewActivityRepository(db)

	activitySvc := activity.NewService(activityRepo, logger)
	requestSvc := request.NewService(requestStore, activityRepo, logger)
	shortlistSvc := shortlist.NewService(shortlistStore, requestStore, activityRepo, logger)
	categorySvc := category.NewService(categoryStore, requestStore, activityRepo, logger)
	userSvc := user.NewService(userStore, activityRepo, logger)
	reportSvc := report.NewService(requestStore, categoryStore, userStore, logger)

	if err := categorySvc.EnsureSeed(context.Background()); err != nil {
		logger.Error("failed to seed categories", "error", err)
		os.Exit(1)
	}

	tokens := auth.NewJWTManager(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.AccessTTL)

	router := rest.NewRouter(rest.Handlers{
		Auth:       rest.NewAuthHandler(userSvc, tokens, logger),
		Requests:   rest.NewRequestHandler(requestSvc, logger),
		PIN:        rest.NewPINHandler(requestSvc, logger),
		CSR:        rest.NewCSRHandler(requestSvc, shortlistSvc, logger),
		Categories: rest.NewCategoryHandler(categorySvc, logger),
		Users:      rest.NewUserHandler(userSvc, logger),
		Reports:    rest.NewReportHandler(reportSvc, logger),
		Activity:   rest.NewActivityHandler(activitySvc, logger),
		Health:     rest.NewHealthHandler(db, version),
	}, tokens, logger)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	waitForShutdown(logger, httpServer)
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func waitForShutdown(logger *slog.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
