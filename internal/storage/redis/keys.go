package redis

import (
	"fmt"

	"github.com/ao3101/eurostat/internal/model"
)

// Key prefix for all stats data
const keyPrefix = "eurostat"

// Key generation functions for each entity type

// playerKey returns the Redis key for a Player document
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// teamKey returns the Redis key for a Team document
func teamKey(id model.TeamID) string {
	return fmt.Sprintf("%s:team:%s", keyPrefix, id)
}

// gameKey returns the Redis key for a Game document
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// boxScoreKey returns the Redis key for a BoxScore document
func boxScoreKey(playerID model.PlayerID, gameID model.GameID) string {
	return fmt.Sprintf("%s:boxscore:%s:%s", keyPrefix, playerID, gameID)
}

// playersIndexKey returns the SET of all player ids
func playersIndexKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}

// teamsIndexKey returns the SET of all team ids
func teamsIndexKey() string {
	return fmt.Sprintf("%s:idx:teams", keyPrefix)
}

// teamPlayersIndexKey returns the SET of player ids on a team
func teamPlayersIndexKey(teamID model.TeamID) string {
	return fmt.Sprintf("%s:idx:team_players:%s", keyPrefix, teamID)
}

// teamGamesIndexKey returns the SET of game keys involving a team
func teamGamesIndexKey(teamID model.TeamID) string {
	return fmt.Sprintf("%s:idx:team_games:%s", keyPrefix, teamID)
}

// playerBoxScoresIndexKey returns the SET of box-score keys for a player
func playerBoxScoresIndexKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:idx:player_boxscores:%s", keyPrefix, playerID)
}

// gameBoxScoresIndexKey returns the SET of box-score keys for a game
func gameBoxScoresIndexKey(gameID model.GameID) string {
	return fmt.Sprintf("%s:idx:game_boxscores:%s", keyPrefix, gameID)
}

// playersByPPGKey returns the ZSET ranking player ids by points per game
func playersByPPGKey() string {
	return fmt.Sprintf("%s:idx:players_by_ppg", keyPrefix)
}

// teamsByPPGKey returns the ZSET ranking team ids by points per game
func teamsByPPGKey() string {
	return fmt.Sprintf("%s:idx:teams_by_ppg", keyPrefix)
}
