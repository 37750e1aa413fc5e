package model

// TeamID uniquely identifies a team across the system
type TeamID string

// Team is a team profile: identity plus season-cumulative per-game
// averages. The roster is implicit (all players with a matching
// TeamID) and so is the schedule (all games referencing the team).
type Team struct {
	ID   TeamID `json:"team_id"`
	Name string `json:"team_name"`

	PointsPerGame   float64 `json:"points_per_game"`
	AssistsPerGame  float64 `json:"assists_per_game"`
	ReboundsPerGame float64 `json:"total_rebounds_per_game"`
	StealsPerGame   float64 `json:"steals_per_game"`

	// Season-cumulative shooting totals, used for team FG%
	ShootingSplits
}
