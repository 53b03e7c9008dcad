// Package server assembles and runs the HTTP process.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/shashiranjanraj/rasoi/app/routes"
	"github.com/shashiranjanraj/rasoi/config"
	"github.com/shashiranjanraj/rasoi/internal/store"
	"github.com/shashiranjanraj/rasoi/pkg/cache"
	"github.com/shashiranjanraj/rasoi/pkg/logger"
	"github.com/shashiranjanraj/rasoi/pkg/metrics"
	"github.com/shashiranjanraj/rasoi/pkg/middleware"
	"github.com/shashiranjanraj/rasoi/pkg/reqid"
	"github.com/shashiranjanraj/rasoi/pkg/router"
)

// Start loads configuration, connects the backing services, and serves HTTP
// until the process exits.
func Start() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("server: load config: %w", err)
	}

	s, err := store.Connect(context.Background())
	if err != nil {
		return err
	}

	// Redis only backs the rate limiter; run without it if unreachable.
	if err := cache.Connect(); err != nil {
		logger.Warn("redis unavailable, rate limiter using in-memory buckets", "error", err)
	}

	// In production, fan logs out to stdout JSON and the Mongo sink.
	if env := config.AppEnv(); env == "production" || env == "prod" {
		mongoSink := logger.NewMongoHandler(s.Collection(store.ColLogs))
		defer mongoSink.Close()
		stdout := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
		logger.SetHandler(logger.NewMultiHandler(stdout, mongoSink))
	}

	r := router.New()
	r.Use(
		metrics.Middleware(),
		reqid.Middleware(),
		middleware.Recovery,
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(300, time.Minute),
	)

	routes.RegisterAPI(r, s)

	addr := ":" + config.AppPort()
	logger.Info("restaurant server running", "addr", addr, "env", config.AppEnv())
	return http.ListenAndServe(addr, r.Handler())
}
