package model

// PlayerID uniquely identifies a player across the system
type PlayerID string

// Player is a player profile: identity plus season-cumulative
// per-game averages. GamesPlayed is the authoritative count of games
// the player has appeared in; the box-score collection is treated as
// possibly incomplete historical detail. Derived metrics (efficiency
// rating, FG%) are never stored here; they are always recomputed.
type Player struct {
	ID          PlayerID `json:"player_id"`
	Name        string   `json:"player"`
	TeamID      TeamID   `json:"team_id"`
	GamesPlayed int      `json:"games_played"`

	PointsPerGame   float64 `json:"points_per_game"`
	AssistsPerGame  float64 `json:"assists_per_game"`
	ReboundsPerGame float64 `json:"total_rebounds_per_game"`
	StealsPerGame   float64 `json:"steals_per_game"`

	// Season-cumulative shooting totals, used for season FG%
	ShootingSplits
}
