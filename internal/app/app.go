package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/ticket-office/api"
	"github.com/metinatakli/ticket-office/internal/booking"
	"github.com/metinatakli/ticket-office/internal/cache"
	"github.com/metinatakli/ticket-office/internal/domain"
	"github.com/metinatakli/ticket-office/internal/repository"
	appvalidator "github.com/metinatakli/ticket-office/internal/validator"
	"github.com/metinatakli/ticket-office/internal/vcs"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/riandyrn/otelchi"
)

const serviceName = "ticket-office-api"

var (
	version = vcs.Version()
)

type Application struct {
	config    Config
	logger    *slog.Logger
	validator *validator.Validate
	cache     cache.Store
	clock     func() time.Time

	roomRepo     domain.RoomRepository
	movieRepo    domain.MovieRepository
	customerRepo domain.CustomerRepository

	scheduler *booking.Scheduler
	ledger    *booking.Ledger
	views     *booking.Views
}

type Config struct {
	Port             int
	Env              string
	OtelCollectorUrl string
	Migrations       string
	Migrate          bool
	CacheTTL         time.Duration
	DB               DBConfig
	Redis            RedisConfig
}

type DBConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleTime  time.Duration
}

type RedisConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  time.Duration
}

// Repositories groups the storage ports the application is built on.
type Repositories struct {
	Rooms     domain.RoomRepository
	Movies    domain.MovieRepository
	Customers domain.CustomerRepository
	Showtimes domain.ShowtimeRepository
	Tickets   domain.TicketRepository
}

func PostgresRepositories(db *pgxpool.Pool) Repositories {
	return Repositories{
		Rooms:     repository.NewPostgresRoomRepository(db),
		Movies:    repository.NewPostgresMovieRepository(db),
		Customers: repository.NewPostgresCustomerRepository(db),
		Showtimes: repository.NewPostgresShowtimeRepository(db),
		Tickets:   repository.NewPostgresTicketRepository(db),
	}
}

func MemoryRepositories(store *repository.MemoryStore) Repositories {
	return Repositories{
		Rooms:     store.Rooms(),
		Movies:    store.Movies(),
		Customers: store.Customers(),
		Showtimes: store.Showtimes(),
		Tickets:   store.Tickets(),
	}
}

func Run() error {
	var cfg Config

	flag.IntVar(&cfg.Port, "port", 3000, "server port")
	flag.StringVar(&cfg.Env, "env", "dev", "Environment (dev|staging|prod)")

	flag.StringVar(&cfg.DB.DSN, "db-dsn", "", "PostgreSQL DSN (in-memory store when empty)")
	flag.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", 25, "PostgreSQL max open connections")
	flag.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", 15*time.Minute, "PostgreSQL max idle time for connections")
	flag.BoolVar(&cfg.Migrate, "migrate", false, "Apply pending migrations before serving")
	flag.StringVar(&cfg.Migrations, "migrations", "file://migrations", "Migration source URL")

	flag.StringVar(&cfg.Redis.URL, "redis-url", "", "Redis URL (cache disabled when empty)")
	flag.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", 25, "Redis max open connections")
	flag.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", 10, "Redis max idle connections")
	flag.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", 2*time.Minute, "Redis max idle time for connections")
	flag.DurationVar(&cfg.CacheTTL, "cache-ttl", cache.DefaultTTL, "Lifetime of cached rooms, movies and showtimes")

	flag.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", "", "OpenTelemetry collector gRPC endpoint")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	shutdownTelemetry, logger, err := InitTelemetry(cfg, logger)
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	validator := appvalidator.NewValidator()

	var repos Repositories

	if cfg.DB.DSN != "" {
		if cfg.Migrate {
			err = repository.Migrate(cfg.DB.DSN, cfg.Migrations)
			if err != nil {
				return err
			}

			logger.Info("database migrations applied", "source", cfg.Migrations)
		}

		db, err := NewDatabasePool(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		repos = PostgresRepositories(db)
	} else {
		logger.Warn("no database DSN configured, using in-memory store")
		repos = MemoryRepositories(repository.NewMemoryStore())
	}

	var store cache.Store = cache.Noop{}

	if cfg.Redis.URL != "" {
		redisClient, err := NewRedisClient(cfg)
		if err != nil {
			return err
		}
		defer redisClient.Close()

		store = cache.NewRedisStore(redisClient, cfg.CacheTTL)
	}

	app := NewApp(cfg, logger, validator, store, repos)

	return app.run()
}

func NewApp(
	cfg Config,
	logger *slog.Logger,
	validator *validator.Validate,
	store cache.Store,
	repos Repositories) *Application {

	return &Application{
		config:       cfg,
		logger:       logger,
		validator:    validator,
		cache:        store,
		clock:        time.Now,
		roomRepo:     repos.Rooms,
		movieRepo:    repos.Movies,
		customerRepo: repos.Customers,
		scheduler:    booking.NewScheduler(repos.Rooms, repos.Movies, repos.Showtimes),
		ledger:       booking.NewLedger(repos.Tickets, repos.Customers),
		views:        booking.NewViews(repos.Rooms, repos.Movies, repos.Showtimes),
	}
}

func NewRedisClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	err := errors.Join(redisotel.InstrumentTracing(rdb), redisotel.InstrumentMetrics(rdb))
	if err != nil {
		rdb.Close()
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = rdb.Ping(ctx).Err()
	if err != nil {
		rdb.Close()
		return nil, err
	}

	return rdb, nil
}

func NewDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func (app *Application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env, "version", version)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(app.recoverPanic)

	r.Get("/openapi.json", app.GetOpenAPISpec)

	// Legacy path for ticket sales.
	r.Post("/tickets/sale", app.SellTicket)

	return api.HandlerWithOptions(app, api.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: app.badRequestResponse,
	})
}
