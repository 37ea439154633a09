package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"datapulse/internal/config"
	hhttp "datapulse/internal/handler/http"
	"datapulse/internal/handler/http/requestid"
	hdata "datapulse/internal/handler/http/userdata"
	pgRepo "datapulse/internal/infra/adapter/persistence/postgres"
	"datapulse/internal/infra/db"
	"datapulse/internal/observability/logging"
	appmetrics "datapulse/internal/observability/metrics"
	dataUC "datapulse/internal/usecase/userdata"
	"datapulse/pkg/metrics"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	database := initDatabase(logger, cfg.DatabaseURL)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	reg := metrics.New()
	appMetrics := appmetrics.MustNew(reg)
	if err := appmetrics.ObservePool(reg, db.PoolStats(database)); err != nil {
		logger.Error("failed to register pool metrics", slog.Any("error", err))
		os.Exit(1)
	}
	instrumented := db.Instrument(database, appMetrics)

	handler := setupRoutes(reg, instrumented)
	handler = applyMiddleware(logger, cfg, appMetrics, handler)

	runServer(logger, cfg, handler)
}

// initDatabase opens the connection pool and ensures the schema exists.
func initDatabase(logger *slog.Logger, dsn string) *sql.DB {
	ctx := context.Background()

	database, err := db.Open(ctx, dsn)
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	if err := db.Bootstrap(ctx, database); err != nil {
		logger.Error("failed to bootstrap schema", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// setupRoutes builds the mux with the CRUD, health, and metrics routes.
func setupRoutes(reg *metrics.Registry, querier db.Querier) http.Handler {
	mux := http.NewServeMux()

	svc := dataUC.Service{Repo: pgRepo.NewUserDataRepo(querier)}
	hdata.Register(mux, svc)

	mux.Handle("GET /health", &hhttp.HealthHandler{DB: querier})
	mux.Handle("GET /metrics", hhttp.MetricsHandler(reg))

	return mux
}

// applyMiddleware wraps the handler with the middleware chain, applied
// innermost to outermost: metrics, body limit, logging, recovery, rate
// limiting, request ID.
func applyMiddleware(logger *slog.Logger, cfg *config.ServerConfig, m *appmetrics.AppMetrics, handler http.Handler) http.Handler {
	rateLimiter := hhttp.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	chain := handler
	chain = hhttp.MetricsMiddleware(m)(chain)
	chain = hhttp.LimitRequestBody(cfg.MaxBodyBytes)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = rateLimiter.Limit(chain)
	chain = requestid.Middleware(chain)
	return chain
}

// runServer starts the HTTP server and blocks until a shutdown signal
// arrives, then drains in-flight requests.
func runServer(logger *slog.Logger, cfg *config.ServerConfig, handler http.Handler) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting", slog.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
