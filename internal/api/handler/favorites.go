package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ao3101/eurostat/internal/api/middleware"
	"github.com/ao3101/eurostat/internal/api/request"
	"github.com/ao3101/eurostat/internal/api/response"
	"github.com/ao3101/eurostat/internal/model"
	"github.com/ao3101/eurostat/internal/services/favorites"
	"github.com/ao3101/eurostat/internal/services/views"
)

// FavoritesHandler handles the favorites endpoints
type FavoritesHandler struct {
	favorites *favorites.Service
	views     *views.Service
}

// NewFavoritesHandler creates a new favorites handler
func NewFavoritesHandler(favoritesService *favorites.Service, viewsService *views.Service) *FavoritesHandler {
	return &FavoritesHandler{
		favorites: favoritesService,
		views:     viewsService,
	}
}

// List handles GET /api/favorites
func (h *FavoritesHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	players, teams, err := h.favorites.List(r.Context(), user.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	view, err := h.views.Favorites(r.Context(), append(players, teams...))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, view)
}

// Add handles POST /api/favorites/add
func (h *FavoritesHandler) Add(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	targetID, targetType, err := decodeFavoriteRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.favorites.Add(r.Context(), user.ID, targetID, targetType); err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, response.FavoriteStatus{IsFavorite: true})
}

// Remove handles POST /api/favorites/remove
func (h *FavoritesHandler) Remove(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	targetID, targetType, err := decodeFavoriteRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.favorites.Remove(r.Context(), user.ID, targetID, targetType); err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.FavoriteStatus{IsFavorite: false})
}

// Check handles GET /api/favorites/check?target_id=...&target_type=...
func (h *FavoritesHandler) Check(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	targetID := r.URL.Query().Get("target_id")
	targetType, err := parseTargetType(r.URL.Query().Get("target_type"))
	if err != nil {
		WriteError(w, err)
		return
	}
	if targetID == "" {
		WriteError(w, NewInvalidRequestError("target_id is required"))
		return
	}

	has, err := h.favorites.Check(r.Context(), user.ID, targetID, targetType)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.FavoriteStatus{IsFavorite: has})
}

func decodeFavoriteRequest(r *http.Request) (string, model.TargetType, error) {
	var req request.FavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return "", "", NewInvalidRequestError("invalid request body")
	}
	if req.TargetID == "" {
		return "", "", NewInvalidRequestError("target_id is required")
	}

	targetType, err := parseTargetType(req.TargetType)
	if err != nil {
		return "", "", err
	}
	return req.TargetID, targetType, nil
}

func parseTargetType(raw string) (model.TargetType, error) {
	switch model.TargetType(raw) {
	case model.TargetPlayer:
		return model.TargetPlayer, nil
	case model.TargetTeam:
		return model.TargetTeam, nil
	default:
		return "", NewInvalidRequestError("target_type must be 'player' or 'team'")
	}
}
