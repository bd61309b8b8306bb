package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/akbarovs/uybaho/internal/api/handlers"
	"github.com/akbarovs/uybaho/internal/api/middleware"
	"github.com/akbarovs/uybaho/internal/config"
	"github.com/akbarovs/uybaho/internal/prune"
	"github.com/akbarovs/uybaho/internal/store"
	"github.com/akbarovs/uybaho/pkg/logger"
	score "github.com/akbarovs/uybaho/pkg/scorer"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and prune scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	st, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	scorer := score.New(score.WithWeights(score.Weights{
		Price:     cfg.Scoring.Weights.Price,
		Location:  cfg.Scoring.Weights.Location,
		Building:  cfg.Scoring.Weights.Building,
		Size:      cfg.Scoring.Weights.Size,
		Amenities: cfg.Scoring.Weights.Amenities,
	}))

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(log))
	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Metrics())
	e.Use(middleware.RateLimit(cfg.RateLimit.PerSecond, cfg.RateLimit.Burst))

	health := handlers.NewHealthHandler(st)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	analyze := handlers.NewAnalyzeHandler(scorer, cfg.Scoring.AnalysisDelay)
	e.POST("/api/v1/analyze", analyze.Detailed)
	e.POST("/api/v1/analyze/quick", analyze.Quick)
	// Path the web form was originally built against.
	e.POST("/api/analyze", analyze.Detailed)

	humaCfg := huma.DefaultConfig("uybaho", Version)
	humaCfg.DocsPath = "/docs"
	api := humaecho.New(e, humaCfg)
	handlers.RegisterSavedRoutes(api, handlers.NewSavedHandler(st))

	sched, err := prune.NewScheduler(
		st,
		cfg.Favorites.PruneInterval,
		cfg.Favorites.TTL,
		log,
	)
	if err != nil {
		return fmt.Errorf("creating prune scheduler: %w", err)
	}
	sched.Start()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr)

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	<-sched.Stop().Done()

	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

// openStore connects to PostgreSQL when the database is enabled, falling
// back to the in-memory store otherwise.
func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	if !cfg.Database.Enabled {
		return store.NewMemoryStore(cfg.Favorites.MaxSaved), nil
	}

	connCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	st, err := store.NewPostgresStore(connCtx, cfg.Database.DSN(), cfg.Favorites.MaxSaved)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return st, nil
}
