package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"golang.org/x/crypto/bcrypt"

	"github.com/ao3101/eurostat/internal/api"
	"github.com/ao3101/eurostat/internal/factory"
	"github.com/ao3101/eurostat/internal/model"
	"github.com/ao3101/eurostat/internal/storage"
	redisstorage "github.com/ao3101/eurostat/internal/storage/redis"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Build factory config from environment
	cfg := factory.Config{
		Logger:         logger,
		StatsStoreType: os.Getenv("STATS_STORE"),
		UserStoreType:  os.Getenv("USER_STORE"),
		SQLitePath:     os.Getenv("SQLITE_PATH"),
		PostgresURL:    os.Getenv("POSTGRES_URL"),
	}

	if cfg.UserStoreType == factory.UserStoreSQLite && cfg.SQLitePath == "" {
		cfg.SQLitePath = "eurostat.db"
	}

	// Configure Redis if the stats store needs it
	if cfg.StatsStoreType == factory.StatsStoreRedis {
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			logger.Error("REDIS_URL required when STATS_STORE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Seed the default accounts
	if err := seedUsers(context.Background(), app.Users); err != nil {
		logger.Error("failed to seed users", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:           logger,
		AuthService:      app.AuthService,
		ViewsService:     app.ViewsService,
		RatingService:    app.RatingService,
		FavoritesService: app.FavoritesService,
		ProfileService:   app.ProfileService,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			serverConfig.Port = p
		}
	}
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

// seedUsers creates the default demo accounts if they don't exist
func seedUsers(ctx context.Context, users storage.UserStore) error {
	seeds := []struct {
		username string
		password string
		isAdmin  bool
	}{
		{"admin", "admin123", true},
		{"john_doe", "password1", false},
		{"jane_smith", "password2", false},
		{"mike_jordan", "password3", false},
		{"sarah_lee", "password4", false},
		{"alex_brown", "password5", false},
	}

	for _, seed := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		err = users.CreateUser(ctx, &model.User{
			Username:     seed.username,
			PasswordHash: string(hash),
			IsAdmin:      seed.isAdmin,
		})
		if err != nil && !errors.Is(err, model.ErrUsernameExists) {
			return err
		}
	}
	return nil
}
