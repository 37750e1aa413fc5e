package model

// GameID uniquely identifies a game across the system
type GameID string

// Game is fixture metadata for one game: the two participating teams
// and the round it was played in. Box scores link to it via GameID.
type Game struct {
	ID       GameID `json:"game_id"`
	HomeTeam TeamID `json:"team_id_a"`
	AwayTeam TeamID `json:"team_id_b"`
	Round    int    `json:"round"`
}
