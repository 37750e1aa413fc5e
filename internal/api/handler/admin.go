package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ao3101/eurostat/internal/api/request"
	"github.com/ao3101/eurostat/internal/api/response"
	"github.com/ao3101/eurostat/internal/model"
	"github.com/ao3101/eurostat/internal/services/profile"
)

// AdminHandler handles the admin profile-edit endpoints
type AdminHandler struct {
	profiles *profile.Service
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(profileService *profile.Service) *AdminHandler {
	return &AdminHandler{
		profiles: profileService,
	}
}

// UpdatePlayer handles PUT /api/admin/player/{player_id}
func (h *AdminHandler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["player_id"])

	var req request.UpdatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	player, err := h.profiles.UpdatePlayer(r.Context(), id, profile.PlayerUpdate{
		Name:            req.Name,
		PointsPerGame:   req.PointsPerGame,
		AssistsPerGame:  req.AssistsPerGame,
		ReboundsPerGame: req.ReboundsPerGame,
		StealsPerGame:   req.StealsPerGame,
	})
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, player)
}

// UpdateTeam handles PUT /api/admin/team/{team_id}
func (h *AdminHandler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	id := model.TeamID(mux.Vars(r)["team_id"])

	var req request.UpdateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	team, err := h.profiles.UpdateTeam(r.Context(), id, profile.TeamUpdate{
		Name:            req.Name,
		PointsPerGame:   req.PointsPerGame,
		AssistsPerGame:  req.AssistsPerGame,
		ReboundsPerGame: req.ReboundsPerGame,
		StealsPerGame:   req.StealsPerGame,
	})
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, team)
}
