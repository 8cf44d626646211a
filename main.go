package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/seasonal-storefront/server/internal/catalog"
	"github.com/seasonal-storefront/server/internal/catalog/datasource"
	"github.com/seasonal-storefront/server/internal/catalog/model"
	"github.com/seasonal-storefront/server/internal/core"
	"github.com/seasonal-storefront/server/internal/graph/tools"
	"github.com/seasonal-storefront/server/internal/httpapi"
	"github.com/seasonal-storefront/server/internal/search"
	logx "github.com/seasonal-storefront/server/pkg/logger"
	pkgredis "github.com/seasonal-storefront/server/pkg/redis"
)

// AppConfig defines all configurable parameters of the storefront server,
// sourced from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Environment core.Environment `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel    string           `envconfig:"LOG_LEVEL"`

	// HTTP
	Addr            string        `envconfig:"HTTP_ADDR" default:":8080"`
	ShutdownTimeout time.Duration `envconfig:"HTTP_SHUTDOWN_TIMEOUT" default:"10s"`

	// Infrastructure
	Redis pkgredis.Config

	// Catalog configs
	Catalog model.CatalogConfig
	Search  model.SearchConfig
}

func main() {
	// Load .env file
	envErr := godotenv.Load(".env")

	// Load structured config from env
	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		logx.Fatal().Err(err).Msg("failed to process environment config")
	}

	logx.Init(logx.LoggerOpts{Environment: cfg.Environment, Level: cfg.LogLevel})
	if envErr != nil {
		logx.Debug().Err(envErr).Msg("no .env file loaded")
	}
	if cfg.Environment.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source, err := newSource(cfg.Catalog)
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to build product source")
	}
	svc := catalog.New(source, catalog.WithSeed(cfg.Catalog.Seed))

	var recent search.RecentSearchStore
	if cfg.Redis.Enabled() {
		rdb, err := cfg.Redis.New()
		if err != nil {
			logx.Warn().Err(err).Msg("redis unavailable, recent searches disabled")
		} else {
			defer rdb.Close()
			recent = search.NewRedisRecentSearches(rdb, cfg.Search.RecentLimit, cfg.Search.RecentTTL)
			logx.Info().Msg("connected to redis")
		}
	}

	toolsHandler, err := httpapi.NewToolsHandler(ctx, tools.GetCatalogTools(svc))
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to build catalog tools")
	}

	opts := httpapi.RouterOpts{
		Catalog: httpapi.NewCatalogHandler(svc, search.NewSuggester(svc, cfg.Search), recent),
		Tools:   toolsHandler,
	}
	if cfg.Catalog.ServeMockBackend {
		opts.Backend = httpapi.NewBackendHandler(datasource.NewMockSource(datasource.WithLatency(cfg.Catalog.MockLatency)))
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpapi.NewRouter(opts),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logx.Info().
			Str("addr", cfg.Addr).
			Str("environment", cfg.Environment.String()).
			Str("source", cfg.Catalog.Source).
			Bool("mock_backend", cfg.Catalog.ServeMockBackend).
			Bool("recent_searches", recent != nil).
			Msg("storefront server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logx.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	logx.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logx.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func newSource(cfg model.CatalogConfig) (datasource.Source, error) {
	switch cfg.Source {
	case model.SourceHTTP:
		return datasource.NewHTTPSource(cfg.BaseURL, cfg.Timeout), nil
	case model.SourceMock, "":
		return datasource.NewMockSource(datasource.WithLatency(cfg.MockLatency)), nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Source)
	}
}
