// Package factory wires the application's stores and services.
package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/ao3101/eurostat/internal/dependencies/clock"
	"github.com/ao3101/eurostat/internal/services/auth"
	"github.com/ao3101/eurostat/internal/services/favorites"
	"github.com/ao3101/eurostat/internal/services/profile"
	"github.com/ao3101/eurostat/internal/services/rating"
	"github.com/ao3101/eurostat/internal/services/views"
	"github.com/ao3101/eurostat/internal/storage"
	"github.com/ao3101/eurostat/internal/storage/memory"
	"github.com/ao3101/eurostat/internal/storage/postgres"
	redisstorage "github.com/ao3101/eurostat/internal/storage/redis"
	"github.com/ao3101/eurostat/internal/storage/sqlite"
)

// Stats store backends
const (
	StatsStoreMemory = "memory"
	StatsStoreRedis  = "redis"
)

// User store backends
const (
	UserStoreMemory   = "memory"
	UserStoreSQLite   = "sqlite"
	UserStorePostgres = "postgres"
)

// App contains all wired application components
type App struct {
	// Stores
	Stats storage.StatsStore
	Users storage.UserStore

	// External dependencies
	Clock clock.Clock

	// Services
	AuthService      *auth.Service
	RatingService    *rating.Service
	FavoritesService *favorites.Service
	ProfileService   *profile.Service
	ViewsService     *views.Service
}

// Config holds configuration for the application factory
type Config struct {
	// StatsStoreType selects the statistics backend ("memory" or
	// "redis"). If empty, defaults to "memory".
	StatsStoreType string
	// RedisConfig holds Redis connection settings (required if
	// StatsStoreType is "redis")
	RedisConfig *redisstorage.Config

	// UserStoreType selects the accounts backend ("memory",
	// "sqlite" or "postgres"). If empty, defaults to "memory".
	UserStoreType string
	// SQLitePath is the database file path (required if
	// UserStoreType is "sqlite")
	SQLitePath string
	// PostgresURL is the connection string (required if
	// UserStoreType is "postgres")
	PostgresURL string

	// AuthConfig holds configuration for the auth service (optional)
	AuthConfig auth.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	stats, err := newStatsStore(cfg)
	if err != nil {
		return nil, err
	}

	users, err := newUserStore(cfg)
	if err != nil {
		return nil, err
	}

	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	return newWithDependencies(stats, users, clock.New(), authCfg, logger), nil
}

func newStatsStore(cfg Config) (storage.StatsStore, error) {
	switch cfg.StatsStoreType {
	case "", StatsStoreMemory:
		return memory.NewStatsStore(), nil
	case StatsStoreRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StatsStoreType is redis")
		}
		return redisstorage.New(*cfg.RedisConfig)
	default:
		return nil, errors.New("invalid StatsStoreType: must be 'memory' or 'redis'")
	}
}

func newUserStore(cfg Config) (storage.UserStore, error) {
	switch cfg.UserStoreType {
	case "", UserStoreMemory:
		return memory.NewUserStore(), nil
	case UserStoreSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("SQLitePath required when UserStoreType is sqlite")
		}
		return sqlite.New(cfg.SQLitePath)
	case UserStorePostgres:
		if cfg.PostgresURL == "" {
			return nil, errors.New("PostgresURL required when UserStoreType is postgres")
		}
		return postgres.New(cfg.PostgresURL)
	default:
		return nil, errors.New("invalid UserStoreType: must be 'memory', 'sqlite' or 'postgres'")
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(stats storage.StatsStore, users storage.UserStore, clk clock.Clock, authCfg auth.Config, logger *slog.Logger) *App {
	authService := auth.New(users, clk, authCfg)
	ratingService := rating.NewService(users)
	favoritesService := favorites.NewService(users)
	profileService := profile.NewService(stats)
	viewsService := views.NewService(stats, ratingService, logger)

	return &App{
		Stats:            stats,
		Users:            users,
		Clock:            clk,
		AuthService:      authService,
		RatingService:    ratingService,
		FavoritesService: favoritesService,
		ProfileService:   profileService,
		ViewsService:     viewsService,
	}
}
