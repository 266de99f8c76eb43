package router

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"creature-reviews/internal/adapters/storage/memory"
	"creature-reviews/internal/adapters/storage/sqlstore"
	_ "creature-reviews/internal/docs"
	"creature-reviews/internal/domain/activity"
	"creature-reviews/internal/domain/categories"
	"creature-reviews/internal/domain/countries"
	"creature-reviews/internal/domain/creatures"
	"creature-reviews/internal/domain/owners"
	"creature-reviews/internal/domain/reviewers"
	"creature-reviews/internal/domain/reviews"
	"creature-reviews/internal/middleware"
	"creature-reviews/internal/platform/logger"
	"creature-reviews/internal/platform/metrics"
	"creature-reviews/internal/ports/cache"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si no viene, sqlite en memoria con el schema aplicado.
	DB     *sql.DB
	Driver string

	// Opcional: si no viene, cache en proceso.
	Cache         cache.Cache
	CategoryCache cache.EntryOptions

	// Opcional: si no viene, activity log en memoria.
	Activity activity.Repository

	Logger logger.Logger

	// Metrics y Gatherer van juntos; si Metrics es nil se usa un registry propio.
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
}

type Services struct {
	Creatures  *creatures.Service
	Categories *categories.Service
	Countries  *countries.Service
	Owners     *owners.Service
	Reviews    *reviews.Service
	Reviewers  *reviewers.Service
	Activity   *activity.Service
}

// NewServices arma repos y services. Completa en opts los defaults que usa.
func NewServices(opts *Options) (*Services, error) {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}

	if opts.DB == nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		db, err := sqlstore.Open(ctx, sqlstore.DriverSQLite, "")
		if err != nil {
			return nil, fmt.Errorf("open in-memory db: %w", err)
		}
		if err := sqlstore.Migrate(ctx, db, sqlstore.DriverSQLite); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrate in-memory db: %w", err)
		}
		opts.DB = db
		opts.Driver = sqlstore.DriverSQLite
	}

	if opts.Cache == nil {
		opts.Cache = memory.NewCache()
	}
	if opts.Activity == nil {
		opts.Activity = memory.NewActivityRepo()
	}
	if opts.Metrics == nil {
		reg := prometheus.NewRegistry()
		m, err := metrics.New(reg)
		if err != nil {
			return nil, fmt.Errorf("metrics: %w", err)
		}
		opts.Metrics = m
		opts.Gatherer = reg
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}

	creatureRepo := sqlstore.NewCreaturesRepo(opts.DB)
	categoryRepo := sqlstore.NewCategoriesRepo(opts.DB)
	countryRepo := sqlstore.NewCountriesRepo(opts.DB)
	ownerRepo := sqlstore.NewOwnersRepo(opts.DB)
	reviewRepo := sqlstore.NewReviewsRepo(opts.DB)
	reviewerRepo := sqlstore.NewReviewersRepo(opts.DB)

	categoryLister := categories.NewCachedLister(categoryRepo, opts.Cache,
		categories.WithExpiration(opts.CategoryCache),
		categories.WithLogger(opts.Logger),
		categories.WithRecorder(opts.Metrics),
	)

	reviewsSvc := reviews.NewService(reviewRepo, creatureRepo, reviewerRepo)

	return &Services{
		Creatures:  creatures.NewService(creatureRepo),
		Categories: categories.NewService(categoryRepo, categoryLister),
		Countries:  countries.NewService(countryRepo, ownerRepo),
		Owners:     owners.NewService(ownerRepo, countryRepo, creatureRepo),
		Reviews:    reviewsSvc,
		Reviewers:  reviewers.NewService(reviewerRepo, reviewsSvc),
		Activity:   activity.NewService(opts.Activity),
	}, nil
}

func NewRouter(opts Options) (http.Handler, error) {
	svcs, err := NewServices(&opts)
	if err != nil {
		return nil, err
	}
	return Mount(svcs, opts), nil
}

// Mount cuelga las rutas de svcs. opts ya tiene que venir completo (ver NewServices).
func Mount(svcs *Services, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(opts.Logger, opts.Metrics))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := opts.DB.PingContext(r.Context()); err != nil {
			http.Error(w, "db unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", metrics.Handler(opts.Gatherer))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api", func(api chi.Router) {
		creatures.RegisterRoutes(api, svcs.Creatures)
		categories.RegisterRoutes(api, svcs.Categories)
		countries.RegisterRoutes(api, svcs.Countries)
		owners.RegisterRoutes(api, svcs.Owners)
		reviews.RegisterRoutes(api, svcs.Reviews)
		reviewers.RegisterRoutes(api, svcs.Reviewers)
		activity.RegisterRoutes(api, svcs.Activity)
	})

	return r
}
