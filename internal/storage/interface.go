package storage

import (
	"context"

	"github.com/ao3101/eurostat/internal/model"
)

// StatsStore is the document-oriented store holding players, teams,
// games and box scores, keyed by domain identifiers. The aggregation
// engine treats its contents as read-only except for profile edits
// and ingest saves.
type StatsStore interface {
	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	PlayersForTeam(ctx context.Context, teamID model.TeamID) ([]*model.Player, error)
	TopPlayersByPointsPerGame(ctx context.Context, limit int) ([]*model.Player, error)
	SearchPlayers(ctx context.Context, query string, limit int) ([]*model.Player, error)

	// Team operations
	SaveTeam(ctx context.Context, team *model.Team) error
	GetTeam(ctx context.Context, id model.TeamID) (*model.Team, error)
	TopTeamsByPointsPerGame(ctx context.Context, limit int) ([]*model.Team, error)
	SearchTeams(ctx context.Context, query string, limit int) ([]*model.Team, error)

	// Game operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	GamesForTeam(ctx context.Context, teamID model.TeamID) ([]*model.Game, error)

	// Box score operations
	SaveBoxScore(ctx context.Context, line *model.BoxScore) error
	BoxScoresForPlayer(ctx context.Context, playerID model.PlayerID) ([]model.BoxScore, error)
	BoxScoresForGame(ctx context.Context, gameID model.GameID) ([]model.BoxScore, error)
}

// UserStore is the relational store holding accounts, per-user 1-5
// ratings and per-user favorites. Favorite uniqueness per
// (user, target, type) is enforced here, before insertion.
type UserStore interface {
	// User operations
	CreateUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id model.UserID) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)

	// Rating operations
	AddRating(ctx context.Context, rating *model.Rating) error
	RatingsForTarget(ctx context.Context, targetID string) ([]model.Rating, error)

	// Favorite operations
	AddFavorite(ctx context.Context, fav *model.Favorite) error
	RemoveFavorite(ctx context.Context, userID model.UserID, targetID string, targetType model.TargetType) error
	HasFavorite(ctx context.Context, userID model.UserID, targetID string, targetType model.TargetType) (bool, error)
	FavoritesForUser(ctx context.Context, userID model.UserID) ([]model.Favorite, error)
}
