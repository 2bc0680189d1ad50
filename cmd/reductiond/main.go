package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"

	api "github.com/mind-engage/reductionlab/internal/api/http"
	"github.com/mind-engage/reductionlab/internal/config"
	"github.com/mind-engage/reductionlab/internal/convert"
	"github.com/mind-engage/reductionlab/internal/db"
	"github.com/mind-engage/reductionlab/internal/metrics"
	"github.com/mind-engage/reductionlab/internal/store"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Curve (sampled once, read-only from here on) ---
	ctl, err := convert.New(cfg.ConvertOptions())
	if err != nil {
		slog.Error("build controller", "error", err)
		os.Exit(1)
	}
	chart, err := api.NewChart(ctl, cfg.Chart.Width, cfg.Chart.Height, cfg.Chart.Margins, cfg.Chart.Ticks)
	if err != nil {
		slog.Error("build chart", "error", err)
		os.Exit(1)
	}
	slog.Info("curve sampled",
		"x_max", cfg.Curve.XMax,
		"steps_per_unit", cfg.Curve.StepsPerUnit,
		"points", ctl.Curve().Len(),
	)

	// --- DB (optional) ---
	var curves store.Store
	if cfg.DBDriver != "" {
		dbh, err := openStore(ctx, cfg)
		if err != nil {
			slog.Error("db open failed", "driver", cfg.DBDriver, "error", err)
			os.Exit(1)
		}
		defer dbh.Close()
		sqlStore := store.NewSQLStore(dbh)
		curves = sqlStore
		if cfg.ExportOnStart {
			id, err := sqlStore.SaveCurve(ctx, ctl.Curve(), cfg.Curve.StepsPerUnit, cfg.Curve.XMax)
			if err != nil {
				slog.Error("export curve", "error", err)
				os.Exit(1)
			}
			slog.Info("curve exported", "id", id)
		}
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins(),
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	lat := metrics.NewLatency()
	r.Route("/api", func(ar chi.Router) {
		api.Mount(ar, chart, lat, curves)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	slog.Info("listening", "addr", cfg.HTTPAddr, "mode", cfg.Mode, "db", cfg.DBDriver)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server", "error", err)
		os.Exit(1)
	}
}

func openStore(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	drv, err := db.ParseDriver(cfg.DBDriver)
	if err != nil {
		return nil, err
	}
	openCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return db.Open(openCtx, drv, cfg.DBDSN)
}
