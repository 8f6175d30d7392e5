package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/agnostic-bookmarks/internal/config"
	"github.com/sbilibin2017/agnostic-bookmarks/internal/logger"
	"github.com/sbilibin2017/agnostic-bookmarks/internal/middlewares"
	"github.com/sbilibin2017/agnostic-bookmarks/internal/migrations"
	"github.com/sbilibin2017/agnostic-bookmarks/internal/repositories"
	"github.com/sbilibin2017/agnostic-bookmarks/internal/server"
	"github.com/sbilibin2017/agnostic-bookmarks/internal/services"
	"github.com/sbilibin2017/agnostic-bookmarks/internal/web"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title Agnostic Bookmarks API
// @version 1.0.0
// @description Personal bookmark manager: users, Basic-authenticated bookmark CRUD, search and tags
// @BasePath /api
// @schemes http
// @securityDefinitions.basic BasicAuth
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run connects the stores, wires repositories, services and the router,
// serves HTTP and shuts everything down on a signal or when ctx is done.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel, cfg.LogFormat); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Closed in order after the HTTP server stops.
	var closers []io.Closer
	closeAll := func() {
		for _, c := range closers {
			c.Close()
		}
	}

	// Event publishing
	var events services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := newKafkaWriter(cfg)
		events = w
		closers = append(closers, w)
		logger.Log.Infow("Publishing bookmark events", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	// Tag cache
	var tagCache services.TagCache
	if cfg.RedisEnabled {
		rdb, err := openRedis(ctx, cfg)
		if err != nil {
			closeAll()
			return err
		}
		tagCache = repositories.NewTagCacheRepository(rdb, cfg.TagCacheTTL)
		closers = append(closers, rdb)
	}

	// PostgreSQL
	db, err := openDB(ctx, cfg)
	if err != nil {
		closeAll()
		return err
	}
	closers = append(closers, db)

	if cfg.PGMigrate {
		if err := migrations.Up(db.DB); err != nil {
			closeAll()
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
		logger.Log.Info("Database migrations applied")
	}

	static, err := web.FS(cfg.StaticDir)
	if err != nil {
		closeAll()
		return fmt.Errorf("failed to open static directory: %w", err)
	}

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	bookmarkReadRepo := repositories.NewBookmarkReadRepository(db, middlewares.GetTxFromContext)
	bookmarkWriteRepo := repositories.NewBookmarkWriteRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, cfg.BcryptCost)
	bookmarkService := services.NewBookmarkService(bookmarkReadRepo, bookmarkWriteRepo, tagCache, events)

	router := server.NewRouter(server.Deps{
		DB:        db,
		Auth:      authService,
		Bookmarks: bookmarkService,
		Static:    static,
		Log:       logger.Log,
	})

	srv, err := server.Start(cfg.Addr(), router, closers...)
	if err != nil {
		closeAll()
		return fmt.Errorf("HTTP server failed: %w", err)
	}

	// Graceful shutdown
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	var serveErr error
	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr = <-srv.Err():
		logger.Log.Errorw("HTTP server failed", "error", serveErr)
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	return errors.Join(serveErr, srv.Stop(stopCtx))
}

// openDB connects to PostgreSQL through the pgx driver and sizes the pool.
func openDB(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	db.SetConnMaxIdleTime(5 * time.Minute)

	return db, nil
}

// openRedis connects to Redis and checks it answers.
func openRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr(),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis connection error: %w", err)
	}
	return rdb, nil
}

// newKafkaWriter returns an async producer keyed by bookmark id.
func newKafkaWriter(cfg *config.Config) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaTopic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           10 * time.Millisecond,
		Async:                  true,
		AllowAutoTopicCreation: true,
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			logger.Log.Warnf("kafka: "+msg, args...)
		}),
	}
}
