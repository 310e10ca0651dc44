package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/evgeniy-krivenko/notes-api/internal/api"
	"github.com/evgeniy-krivenko/notes-api/internal/config"
	"github.com/evgeniy-krivenko/notes-api/pkg/database"
	"github.com/evgeniy-krivenko/notes-api/pkg/httpserver"
	"github.com/evgeniy-krivenko/notes-api/pkg/logger/slogx"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run app: %v", err)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Parse()
	if err != nil {
		return fmt.Errorf("parse cfg: %v", err)
	}

	if err := slogx.InitGlobal(
		os.Stdout,
		cfg.App.LogLevel,
		cfg.App.Pretty,
		slogx.WithRequestID,
	); err != nil {
		return fmt.Errorf("init logger: %v", err)
	}

	pool, err := database.NewPGX(ctx, database.NewOptions(
		cfg.Database.URL,
		database.WithMaxConns(cfg.Database.MaxConns),
		database.WithRetryAttempts(cfg.Database.PingAttempts),
		database.WithLogger(slogx.Default()),
	))
	if err != nil {
		return fmt.Errorf("connect to database: %v", err)
	}

	db := database.NewDatabase(pool)
	defer db.Close()

	slogx.Info(ctx, "connection to the database was successful",
		slog.Int("max_conns", int(cfg.Database.MaxConns)),
	)

	router, err := api.NewRouter(api.NewRouterOptions(
		db,
		api.WithAllowedOrigins(cfg.CORS.AllowedOrigins...),
	))
	if err != nil {
		return fmt.Errorf("init router: %v", err)
	}

	srv, err := httpserver.New(httpserver.NewOptions(
		cfg.HTTP.Addr(),
		router,
		httpserver.WithReadTimeout(cfg.HTTP.ReadTimeout),
		httpserver.WithWriteTimeout(cfg.HTTP.WriteTimeout),
		httpserver.WithIdleTimeout(cfg.HTTP.IdleTimeout),
		httpserver.WithMaxBodyBytes(cfg.HTTP.MaxBodyBytes),
		httpserver.WithLogger(slogx.Default()),
	))
	if err != nil {
		return fmt.Errorf("init http server: %v", err)
	}

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error { return srv.Run(ctx) })

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("wait app stop: %v", err)
	}

	return nil
}
