package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ao3101/eurostat/internal/api/response"
	"github.com/ao3101/eurostat/internal/model"
	"github.com/ao3101/eurostat/internal/services/views"
)

// ViewsHandler serves the read-model endpoints: leaders, search and
// the detail pages
type ViewsHandler struct {
	views *views.Service
}

// NewViewsHandler creates a new views handler
func NewViewsHandler(viewsService *views.Service) *ViewsHandler {
	return &ViewsHandler{
		views: viewsService,
	}
}

// Home handles GET /api/home
func (h *ViewsHandler) Home(w http.ResponseWriter, r *http.Request) {
	view, err := h.views.Home(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, view)
}

// Search handles GET /api/search?q=...
func (h *ViewsHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	view, err := h.views.Search(r.Context(), query)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, view)
}

// PlayerDetail handles GET /api/player/{player_id}
func (h *ViewsHandler) PlayerDetail(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["player_id"])

	view, err := h.views.PlayerDetail(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, view)
}

// TeamDetail handles GET /api/team/{team_id}
func (h *ViewsHandler) TeamDetail(w http.ResponseWriter, r *http.Request) {
	id := model.TeamID(mux.Vars(r)["team_id"])

	view, err := h.views.TeamDetail(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, view)
}

// MatchDetail handles GET /api/match/{game_id}
func (h *ViewsHandler) MatchDetail(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["game_id"])

	view, err := h.views.MatchDetail(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, view)
}
