package server

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"

	"financeflow/internal/domain/auth"
	"financeflow/internal/domain/expense"
	"financeflow/internal/domain/payroll"
	"financeflow/internal/platform/config"
	"financeflow/internal/platform/db"
	"financeflow/internal/platform/logging"
	"financeflow/internal/platform/metrics"
	authhandler "financeflow/internal/transport/http/handlers/auth"
	expensehandler "financeflow/internal/transport/http/handlers/expense"
	payrollhandler "financeflow/internal/transport/http/handlers/payroll"
	"financeflow/internal/transport/http/middleware"
)

func Run() {
	cfg := config.Load()
	logging.Setup(cfg.Environment)

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			slog.Error("migrations failed", "err", err)
			os.Exit(1)
		}
	}

	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			slog.Error("seed failed", "err", err)
			os.Exit(1)
		}
	}

	params, err := payroll.LoadParams(cfg.TaxConfigPath)
	if err != nil {
		slog.Warn("tax config unavailable, using built-in parameters", "path", cfg.TaxConfigPath, "err", err)
		params = payroll.DefaultParams()
	}
	engine := payroll.NewEngine(params)

	collector := metrics.New()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	if cfg.MetricsEnabled {
		router.Use(middleware.Metrics(collector))
	}
	router.Use(middleware.Auth(cfg.JWTSecret))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled {
		router.Method(http.MethodGet, "/metrics", collector.Handler())
	}

	router.Route("/api/v1", func(r chi.Router) {
		authHandler := authhandler.NewHandler(auth.NewStore(pool), cfg.JWTSecret, cfg.SessionTTL)
		r.Post("/auth/register", authHandler.HandleRegister)
		r.Post("/auth/login", authHandler.HandleLogin)
		r.Post("/auth/guest", authHandler.HandleGuest)
		r.Post("/auth/logout", authHandler.HandleLogout)

		payrollHandler := payrollhandler.NewHandler(engine, cfg.MinAnnualSalary, cfg.RothIRALimit)
		payrollHandler.RegisterRoutes(r)

		expenseHandler := expensehandler.NewHandler(expense.NewStore(pool))
		expenseHandler.RegisterRoutes(r)
	})

	slog.Info("financeflow server listening", "addr", cfg.Addr, "taxYear", params.Year)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		slog.Error("server failed", "err", err)
		os.Exit(1)
	}
}
