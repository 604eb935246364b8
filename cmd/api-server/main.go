package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"sync"
	"time"

	"github.com/protomem/clinic-api/internal/database"
	"github.com/protomem/clinic-api/internal/env"
	"github.com/protomem/clinic-api/internal/service"
	"github.com/protomem/clinic-api/internal/session"
	"github.com/protomem/clinic-api/internal/version"
	"github.com/redis/go-redis/v9"
)

var (
	_cfgFile     = flag.String("cfg", "", "path to config file")
	_showVersion = flag.Bool("version", false, "display version and exit")
)

func main() {
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	err := run(logger)
	if err != nil {
		trace := string(debug.Stack())
		logger.Error(err.Error(), "trace", trace)
		os.Exit(1)
	}
}

type config struct {
	httpHost string
	httpPort int
	db       struct {
		dsn         string
		automigrate bool
	}
	session struct {
		store         string
		ttl           time.Duration
		cookieName    string
		cookieSecure  bool
		sweepInterval time.Duration
	}
	redis struct {
		addr     string
		password string
		db       int
	}
	cors struct {
		allowedOrigins []string
	}
}

type application struct {
	config config
	logger *slog.Logger
	wg     sync.WaitGroup

	sessions     *session.Manager
	accounts     *service.AccountService
	doctors      *service.DoctorService
	appointments *service.AppointmentService
}

func run(logger *slog.Logger) error {
	if *_showVersion {
		fmt.Printf("version: %s\n", version.Get())
		return nil
	}

	if *_cfgFile != "" {
		err := env.Load(*_cfgFile)
		if err != nil {
			return err
		}
	}

	cfg := loadConfig()

	db, err := database.New(logger.With("module", "database"), cfg.db.dsn, cfg.db.automigrate)
	if err != nil {
		return err
	}
	defer db.Close()

	store, closeStore, err := newSessionStore(logger, cfg, db)
	if err != nil {
		return err
	}
	defer closeStore()

	app := newApplication(cfg, logger, db, store)

	return app.serveHTTP()
}

func loadConfig() config {
	var cfg config

	cfg.httpHost = env.GetString("HTTP_HOST", "localhost")
	cfg.httpPort = env.GetInt("HTTP_PORT", 8080)
	cfg.db.dsn = env.GetString("DB_DSN", "postgres:postgres@localhost:5432/postgres")
	cfg.db.automigrate = env.GetBool("DB_AUTOMIGRATE", true)
	cfg.session.store = env.GetString("SESSION_STORE", "memory")
	cfg.session.ttl = env.GetDuration("SESSION_TTL", session.DefaultTTL)
	cfg.session.cookieName = env.GetString("SESSION_COOKIE_NAME", "sid")
	cfg.session.cookieSecure = env.GetBool("SESSION_COOKIE_SECURE", false)
	cfg.session.sweepInterval = env.GetDuration("SESSION_SWEEP_INTERVAL", 10*time.Minute)
	cfg.redis.addr = env.GetString("REDIS_ADDR", "localhost:6379")
	cfg.redis.password = env.GetString("REDIS_PASSWORD", "")
	cfg.redis.db = env.GetInt("REDIS_DB", 0)
	cfg.cors.allowedOrigins = env.GetStrings("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"})

	return cfg
}

func newSessionStore(logger *slog.Logger, cfg config, db *database.DB) (session.Store, func(), error) {
	noop := func() {}

	switch cfg.session.store {
	case "memory":
		return session.NewMemoryStore(), noop, nil

	case "postgres":
		return database.NewSessionDAO(logger, db), noop, nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.redis.addr,
			Password: cfg.redis.password,
			DB:       cfg.redis.db,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()

		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, noop, fmt.Errorf("redis: %w", err)
		}

		return session.NewRedisStore(client), func() { _ = client.Close() }, nil

	default:
		return nil, noop, fmt.Errorf("unknown session store %q", cfg.session.store)
	}
}

func newApplication(cfg config, logger *slog.Logger, db *database.DB, store session.Store) *application {
	sessions := session.NewManager(logger, store, cfg.session.ttl)

	return &application{
		config:       cfg,
		logger:       logger,
		sessions:     sessions,
		accounts:     service.NewAccountService(logger, database.NewPatientDAO(logger, db), sessions),
		doctors:      service.NewDoctorService(logger, database.NewDoctorDAO(logger, db)),
		appointments: service.NewAppointmentService(logger, database.NewAppointmentDAO(logger, db)),
	}
}
