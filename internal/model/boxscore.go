package model

// ShootingSplits holds field-goal made/attempted counts, split by
// two- and three-pointers. It appears on individual box-score lines
// and as season-cumulative totals on player and team profiles.
type ShootingSplits struct {
	TwoPointsMade        int `json:"two_points_made"`
	TwoPointsAttempted   int `json:"two_points_attempted"`
	ThreePointsMade      int `json:"three_points_made"`
	ThreePointsAttempted int `json:"three_points_attempted"`
}

// FieldGoalsMade returns total made field goals (2PT + 3PT)
func (s ShootingSplits) FieldGoalsMade() int {
	return s.TwoPointsMade + s.ThreePointsMade
}

// FieldGoalsAttempted returns total attempted field goals (2PT + 3PT)
func (s ShootingSplits) FieldGoalsAttempted() int {
	return s.TwoPointsAttempted + s.ThreePointsAttempted
}

// BoxScore is one player's statistical line in one game.
// Immutable once stored; identified by (PlayerID, GameID).
// Absent numeric fields are zero, never an error.
type BoxScore struct {
	PlayerID PlayerID `json:"player_id"`
	TeamID   TeamID   `json:"team_id"`
	GameID   GameID   `json:"game_id"`
	Game     string   `json:"game,omitempty"`
	Round    int      `json:"round"`
	Minutes  string   `json:"minutes,omitempty"`

	Points int `json:"points"`
	ShootingSplits
	FreeThrowsMade      int `json:"free_throws_made"`
	FreeThrowsAttempted int `json:"free_throws_attempted"`
	OffensiveRebounds   int `json:"offensive_rebounds"`
	DefensiveRebounds   int `json:"defensive_rebounds"`
	TotalRebounds       int `json:"total_rebounds"`
	Steals              int `json:"steals"`
	Assists             int `json:"assists"`
	Blocks              int `json:"blocks_favour"`
	Fouls               int `json:"fouls_committed"`
	Turnovers           int `json:"turnovers"`
	PlusMinus           int `json:"plus_minus"`
}
