// Command authgated runs the authentication service: the engine behind the
// JSON API, with Prometheus metrics on /metrics.
//
// Configuration comes from the environment:
//
//	AUTHGATE_ADDR        listen address (default ":50051")
//	AUTHGATE_REDIS_ADDR  optional Redis address for the session backend;
//	                     empty keeps sessions in memory
//	AUTHGATE_AUDIT_LOG   when "true", audit events are written to stderr
//	                     as JSON lines
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	authgate "github.com/feliden/authgate"
	"github.com/feliden/authgate/httpapi"
	"github.com/feliden/authgate/metrics/export/prometheus"
)

type serverConfig struct {
	Addr      string `env:"AUTHGATE_ADDR" envDefault:":50051"`
	RedisAddr string `env:"AUTHGATE_REDIS_ADDR"`
	AuditLog  bool   `env:"AUTHGATE_AUDIT_LOG"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var cfg serverConfig
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	engineCfg := authgate.DefaultConfig()
	if cfg.AuditLog {
		engineCfg.Audit.Enabled = true
	}

	builder := authgate.New().WithConfig(engineCfg)
	if cfg.AuditLog {
		builder = builder.WithAuditSink(authgate.NewJSONWriterSink(os.Stderr))
	}

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			return fmt.Errorf("redis ping: %w", err)
		}
		builder = builder.WithRedis(rdb)
		logger.Info("session backend", "kind", "redis", "addr", cfg.RedisAddr)
	} else {
		logger.Info("session backend", "kind", "memory")
	}

	engine, err := builder.Build()
	if err != nil {
		return fmt.Errorf("build engine: %w", err)
	}
	defer engine.Close()

	r := chi.NewRouter()
	r.Mount("/", httpapi.NewHandler(engine, logger))
	r.Method(http.MethodGet, "/metrics", prometheus.NewPrometheusExporter(engine).Handler())

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: r,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server: %w", err)

	case sig := <-shutdown:
		logger.Info("shutting down", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Warn("graceful shutdown incomplete", "error", err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("close server: %w", err)
			}
		}
		logger.Info("stopped")
	}

	return nil
}
