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

	"creature-reviews/internal/adapters/cache/rediscache"
	"creature-reviews/internal/adapters/storage/memory"
	"creature-reviews/internal/adapters/storage/mongostore"
	"creature-reviews/internal/adapters/storage/sqlstore"
	"creature-reviews/internal/config"
	"creature-reviews/internal/platform/logger"
	"creature-reviews/internal/platform/metrics"
	"creature-reviews/internal/platform/telemetry"
	"creature-reviews/internal/router"
	"creature-reviews/internal/seed"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v3"
)

func main() {
	root := &cli.Command{
		Name:  "creature-reviews",
		Usage: "API de criaturas, owners y reviews",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Levanta el servidor HTTP (default)",
				Action: func(ctx context.Context, _ *cli.Command) error { return serve(ctx) },
			},
			{
				Name:   "migrate",
				Usage:  "Aplica las migraciones pendientes",
				Action: func(ctx context.Context, _ *cli.Command) error { return migrate(ctx) },
			},
			{
				Name:   "seed",
				Usage:  "Carga el dataset demo (idempotente)",
				Action: func(ctx context.Context, _ *cli.Command) error { return seedData(ctx) },
			},
		},
		Action: func(ctx context.Context, _ *cli.Command) error { return serve(ctx) },
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// deps son los handles de proceso; close los libera en orden inverso.
type deps struct {
	cfg     config.Config
	log     logger.Logger
	opts    router.Options
	closers []func(context.Context) error
}

func (d *deps) close(ctx context.Context) {
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](ctx); err != nil {
			d.log.Warn("close failed", map[string]any{"err": err})
		}
	}
}

// openDB carga config y abre la base con el schema al día. No toca redis ni mongo.
func openDB(ctx context.Context) (*deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	driver, err := cfg.Driver()
	if err != nil {
		return nil, err
	}

	d := &deps{
		cfg: cfg,
		log: logger.FromStrings(cfg.LogLevel, cfg.LogFormat, cfg.AppName),
	}
	d.opts = router.Options{
		Driver:        driver,
		CategoryCache: cfg.CategoryCache(),
		Logger:        d.log,
	}

	db, err := sqlstore.Open(ctx, driver, cfg.DBDSN)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	d.opts.DB = db
	d.closers = append(d.closers, func(context.Context) error { return db.Close() })

	if err := sqlstore.Migrate(ctx, db, driver); err != nil {
		d.close(ctx)
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return d, nil
}

func openDeps(ctx context.Context) (*deps, error) {
	d, err := openDB(ctx)
	if err != nil {
		return nil, err
	}
	cfg := d.cfg

	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			d.close(ctx)
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		d.opts.Cache = rediscache.New(client)
		d.closers = append(d.closers, func(context.Context) error { return client.Close() })
		d.log.Info("category cache on redis", map[string]any{"addr": cfg.RedisAddr})
	} else {
		d.opts.Cache = memory.NewCache()
	}

	if cfg.MongoURI != "" {
		client, err := mongostore.Connect(ctx, cfg.MongoURI)
		if err != nil {
			d.close(ctx)
			return nil, err
		}
		d.opts.Activity = mongostore.NewActivityRepo(client.Database(cfg.MongoDatabase), cfg.MongoActivitiesCollection)
		d.closers = append(d.closers, client.Disconnect)
		d.log.Info("activity log on mongo", map[string]any{"database": cfg.MongoDatabase})
	}

	return d, nil
}

func serve(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	d, err := openDeps(ctx)
	if err != nil {
		return err
	}

	shutdownTracing, err := telemetry.Setup(ctx, d.cfg.AppName, d.cfg.OTELEndpoint)
	if err != nil {
		d.close(context.Background())
		return fmt.Errorf("telemetry: %w", err)
	}
	d.closers = append(d.closers, shutdownTracing)

	m, err := metrics.New(prometheus.DefaultRegisterer)
	if err != nil {
		d.close(context.Background())
		return err
	}
	d.opts.Metrics = m
	d.opts.Gatherer = prometheus.DefaultGatherer

	h, err := router.NewRouter(d.opts)
	if err != nil {
		d.close(context.Background())
		return err
	}

	srv := &http.Server{
		Addr:              d.cfg.Addr(),
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		d.log.Info("starting server", map[string]any{"addr": srv.Addr})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		d.log.Info("shutting down", nil)
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			d.close(context.Background())
			return fmt.Errorf("server error: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), d.cfg.ShutdownTimeout)
	defer cancel()

	err = srv.Shutdown(shutdownCtx)
	d.close(shutdownCtx)
	return err
}

func migrate(ctx context.Context) error {
	// openDB ya migra; acá solo se informa y se cierra.
	d, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer d.close(context.Background())

	d.log.Info("migrations applied", map[string]any{"driver": d.opts.Driver})
	return nil
}

func seedData(ctx context.Context) error {
	d, err := openDeps(ctx)
	if err != nil {
		return err
	}
	defer d.close(context.Background())

	svcs, err := router.NewServices(&d.opts)
	if err != nil {
		return err
	}
	_, err = seed.Run(ctx, svcs, d.log)
	return err
}
