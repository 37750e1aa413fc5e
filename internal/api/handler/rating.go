package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ao3101/eurostat/internal/api/middleware"
	"github.com/ao3101/eurostat/internal/api/request"
	"github.com/ao3101/eurostat/internal/api/response"
	"github.com/ao3101/eurostat/internal/model"
	"github.com/ao3101/eurostat/internal/services/rating"
)

// RatingHandler handles rating submission
type RatingHandler struct {
	ratings *rating.Service
}

// NewRatingHandler creates a new rating handler
func NewRatingHandler(ratingService *rating.Service) *RatingHandler {
	return &RatingHandler{
		ratings: ratingService,
	}
}

// Rate handles POST /api/rate
func (h *RatingHandler) Rate(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	var req request.RateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.TargetID == "" {
		WriteError(w, NewInvalidRequestError("target_id is required"))
		return
	}

	targetType, err := parseTargetType(req.TargetType)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.ratings.Submit(r.Context(), user.ID, req.TargetID, targetType, req.Score); err != nil {
		WriteError(w, err)
		return
	}

	// Return the refreshed community average so the client can
	// update in place
	avg, err := h.ratings.AverageFor(r.Context(), req.TargetID)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, map[string]model.Average{"user_rating": avg})
}
