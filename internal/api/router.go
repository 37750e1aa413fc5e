package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ao3101/eurostat/internal/api/handler"
	"github.com/ao3101/eurostat/internal/api/middleware"
	"github.com/ao3101/eurostat/internal/services/auth"
	"github.com/ao3101/eurostat/internal/services/favorites"
	"github.com/ao3101/eurostat/internal/services/profile"
	"github.com/ao3101/eurostat/internal/services/rating"
	"github.com/ao3101/eurostat/internal/services/views"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger           *slog.Logger
	AuthService      *auth.Service
	ViewsService     *views.Service
	RatingService    *rating.Service
	FavoritesService *favorites.Service
	ProfileService   *profile.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AuthService)
	viewsHandler := handler.NewViewsHandler(cfg.ViewsService)
	ratingHandler := handler.NewRatingHandler(cfg.RatingService)
	favoritesHandler := handler.NewFavoritesHandler(cfg.FavoritesService, cfg.ViewsService)
	adminHandler := handler.NewAdminHandler(cfg.ProfileService)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	optionalAuthMiddleware := middleware.OptionalAuth(cfg.AuthService)
	adminMiddleware := middleware.AdminOnly()
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Account routes (no auth required for registering/logging in)
	api.HandleFunc("/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)

	// Session routes; current_user reports logged_in=false rather
	// than rejecting anonymous callers
	sessionRoutes := api.PathPrefix("").Subrouter()
	sessionRoutes.Use(optionalAuthMiddleware)
	sessionRoutes.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)
	sessionRoutes.HandleFunc("/current_user", authHandler.CurrentUser).Methods(http.MethodGet)

	// Public read models
	api.HandleFunc("/home", viewsHandler.Home).Methods(http.MethodGet)
	api.HandleFunc("/search", viewsHandler.Search).Methods(http.MethodGet)
	api.HandleFunc("/player/{player_id}", viewsHandler.PlayerDetail).Methods(http.MethodGet)
	api.HandleFunc("/team/{team_id}", viewsHandler.TeamDetail).Methods(http.MethodGet)
	api.HandleFunc("/match/{game_id}", viewsHandler.MatchDetail).Methods(http.MethodGet)

	// Rating submission (requires auth)
	rate := api.PathPrefix("/rate").Subrouter()
	rate.Use(authMiddleware)
	rate.HandleFunc("", ratingHandler.Rate).Methods(http.MethodPost)

	// Favorites routes (all require auth)
	favoritesRoutes := api.PathPrefix("/favorites").Subrouter()
	favoritesRoutes.Use(authMiddleware)
	favoritesRoutes.HandleFunc("", favoritesHandler.List).Methods(http.MethodGet)
	favoritesRoutes.HandleFunc("/add", favoritesHandler.Add).Methods(http.MethodPost)
	favoritesRoutes.HandleFunc("/remove", favoritesHandler.Remove).Methods(http.MethodPost)
	favoritesRoutes.HandleFunc("/check", favoritesHandler.Check).Methods(http.MethodGet)

	// Admin routes (require auth + admin flag)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(authMiddleware)
	admin.Use(adminMiddleware)
	admin.HandleFunc("/player/{player_id}", adminHandler.UpdatePlayer).Methods(http.MethodPut)
	admin.HandleFunc("/team/{team_id}", adminHandler.UpdateTeam).Methods(http.MethodPut)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
