package request

// RegisterRequest is the request body for registering a user
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RateRequest is the request body for submitting a rating
type RateRequest struct {
	TargetID   string `json:"target_id"`
	TargetType string `json:"target_type"`
	Score      int    `json:"score"`
}

// FavoriteRequest is the request body for adding or removing a favorite
type FavoriteRequest struct {
	TargetID   string `json:"target_id"`
	TargetType string `json:"target_type"`
}

// UpdatePlayerRequest is the request body for an admin player edit.
// Omitted fields are left unchanged.
type UpdatePlayerRequest struct {
	Name            *string  `json:"player,omitempty"`
	PointsPerGame   *float64 `json:"points_per_game,omitempty"`
	AssistsPerGame  *float64 `json:"assists_per_game,omitempty"`
	ReboundsPerGame *float64 `json:"total_rebounds_per_game,omitempty"`
	StealsPerGame   *float64 `json:"steals_per_game,omitempty"`
}

// UpdateTeamRequest is the request body for an admin team edit.
// Omitted fields are left unchanged.
type UpdateTeamRequest struct {
	Name            *string  `json:"team_name,omitempty"`
	PointsPerGame   *float64 `json:"points_per_game,omitempty"`
	AssistsPerGame  *float64 `json:"assists_per_game,omitempty"`
	ReboundsPerGame *float64 `json:"total_rebounds_per_game,omitempty"`
	StealsPerGame   *float64 `json:"steals_per_game,omitempty"`
}
