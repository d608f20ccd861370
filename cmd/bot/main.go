// Package main is the entrypoint for the Paimonbot player data API.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/paimonbot/paimonbot/internal/cache"
	"github.com/paimonbot/paimonbot/internal/config"
	"github.com/paimonbot/paimonbot/internal/enka"
	"github.com/paimonbot/paimonbot/internal/handler"
	"github.com/paimonbot/paimonbot/internal/hoyo"
	"github.com/paimonbot/paimonbot/internal/metrics"
	"github.com/paimonbot/paimonbot/internal/middleware"
	"github.com/paimonbot/paimonbot/internal/server"
	"github.com/paimonbot/paimonbot/internal/service"
	"github.com/paimonbot/paimonbot/internal/store"
	"github.com/paimonbot/paimonbot/internal/worker"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)

	// Optional Redis cache for showcase payloads.
	var cacheClient *cache.Cache
	if cfg.RedisURL != "" {
		cacheClient, err = cache.New(ctx, cfg.RedisURL, logger)
		if err != nil {
			logger.Error("failed to connect to Redis", "error", err)
			os.Exit(1)
		}
		defer cacheClient.Close()
		logger.Info("connected to Redis")
	}

	metricsRecorder := metrics.NewInMemory()

	// One shared outbound HTTP client keeps the connection pool warm.
	httpClient := hoyo.NewHTTPClient(cfg.ClientTimeout)
	clientOpts := hoyo.Options{
		GameRecordBaseURL: cfg.GameRecordBaseURL,
		AccountBaseURL:    cfg.AccountBaseURL,
		EventBaseURL:      cfg.EventBaseURL,
		HTTPClient:        httpClient,
	}
	clients := func(cookie string) service.AccountAPI {
		return hoyo.New(cookie, clientOpts)
	}
	lister := func(ctx context.Context, cookie string) ([]hoyo.Account, error) {
		return hoyo.New(cookie, clientOpts).GameAccounts(ctx)
	}

	st := store.New(cfg.DataFile, lister, logger)
	metricsRecorder.SetUserCount(st.Len())
	logger.Info("user data loaded", "path", cfg.DataFile, "users", st.Len())

	showcase := enka.New(enka.Options{
		BaseURL: cfg.EnkaBaseURL,
		APIKey:  cfg.EnkaAPIKey,
		Timeout: cfg.ClientTimeout,
		Cache:   cacheClient,
		Metrics: metricsRecorder,
	})

	genshin := service.NewGenshin(service.Options{
		Store:          st,
		Clients:        clients,
		Showcase:       showcase,
		Logger:         logger,
		Metrics:        metricsRecorder,
		Retry:          service.DefaultRetryPolicy(),
		ResinThreshold: cfg.ResinThreshold,
	})

	h := handler.New()
	healthHandler := handler.NewHealthHandler(pingerOrNil(cacheClient), st)
	genshinHandler := handler.NewGenshinHandler(genshin, logger)

	r := setupRouter(h, healthHandler, genshinHandler, cfg, logger)

	srv := server.New(r, cfg.AppPort, cfg.ReadTimeout, cfg.WriteTimeout, cfg.ShutdownTimeout, logger)

	srv.Go("sweeper", worker.NewSweeper(st, logger, metricsRecorder, cfg.SweepInterval, cfg.Retention()).Run)

	if cfg.NotifyWebhookURL != "" {
		notifier := worker.NewWebhookNotifier(httpClient, cfg.NotifyWebhookURL)
		srv.Go("notes-watcher",
			worker.NewNotesWatcher(st, genshin, notifier, logger, cfg.NotesCheckInterval, nil).Run)
		srv.Go("checkin-scheduler",
			worker.NewCheckInScheduler(st, genshin, notifier, logger, cfg.CheckInInterval, nil).Run)
	}

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
		"retention_days", cfg.RetentionDays,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// pingerOrNil avoids handing the health handler a typed nil.
func pingerOrNil(c *cache.Cache) handler.HealthChecker {
	if c == nil {
		return nil
	}
	return c
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	opts := &slog.HandlerOptions{Level: parseLogLevel(cfg.LogLevel)}
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(
	h *handler.Handler,
	healthHandler *handler.HealthHandler,
	genshinHandler *handler.GenshinHandler,
	cfg *config.Config,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))

	// Health endpoints (no auth required)
	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/readyz", healthHandler.Readyz)

	r.Get("/", h.Hello)

	// API v1 routes (require the service token when configured)
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(logger, cfg.APITokenHash))
		genshinHandler.Routes(r)
	})

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}
