// Package profile applies admin edits to player and team profiles.
// Only display fields and the per-game averages are editable; raw
// box-score lines are immutable once ingested.
package profile

import (
	"context"

	"github.com/ao3101/eurostat/internal/model"
	"github.com/ao3101/eurostat/internal/storage"
)

// Service applies whitelisted profile updates
type Service struct {
	stats storage.StatsStore
}

func NewService(stats storage.StatsStore) *Service {
	return &Service{stats: stats}
}

// PlayerUpdate holds the editable player fields. Nil means leave the
// field unchanged.
type PlayerUpdate struct {
	Name            *string
	PointsPerGame   *float64
	AssistsPerGame  *float64
	ReboundsPerGame *float64
	StealsPerGame   *float64
}

func (u PlayerUpdate) empty() bool {
	return u.Name == nil && u.PointsPerGame == nil && u.AssistsPerGame == nil &&
		u.ReboundsPerGame == nil && u.StealsPerGame == nil
}

// TeamUpdate holds the editable team fields. Nil means leave the
// field unchanged.
type TeamUpdate struct {
	Name            *string
	PointsPerGame   *float64
	AssistsPerGame  *float64
	ReboundsPerGame *float64
	StealsPerGame   *float64
}

func (u TeamUpdate) empty() bool {
	return u.Name == nil && u.PointsPerGame == nil && u.AssistsPerGame == nil &&
		u.ReboundsPerGame == nil && u.StealsPerGame == nil
}

// UpdatePlayer applies the update to a player profile and returns the
// stored result
func (s *Service) UpdatePlayer(ctx context.Context, id model.PlayerID, update PlayerUpdate) (*model.Player, error) {
	if update.empty() {
		return nil, model.ErrNoFieldsToUpdate
	}

	player, err := s.stats.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		player.Name = *update.Name
	}
	if update.PointsPerGame != nil {
		player.PointsPerGame = *update.PointsPerGame
	}
	if update.AssistsPerGame != nil {
		player.AssistsPerGame = *update.AssistsPerGame
	}
	if update.ReboundsPerGame != nil {
		player.ReboundsPerGame = *update.ReboundsPerGame
	}
	if update.StealsPerGame != nil {
		player.StealsPerGame = *update.StealsPerGame
	}

	if err := s.stats.SavePlayer(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

// UpdateTeam applies the update to a team profile and returns the
// stored result
func (s *Service) UpdateTeam(ctx context.Context, id model.TeamID, update TeamUpdate) (*model.Team, error) {
	if update.empty() {
		return nil, model.ErrNoFieldsToUpdate
	}

	team, err := s.stats.GetTeam(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		team.Name = *update.Name
	}
	if update.PointsPerGame != nil {
		team.PointsPerGame = *update.PointsPerGame
	}
	if update.AssistsPerGame != nil {
		team.AssistsPerGame = *update.AssistsPerGame
	}
	if update.ReboundsPerGame != nil {
		team.ReboundsPerGame = *update.ReboundsPerGame
	}
	if update.StealsPerGame != nil {
		team.StealsPerGame = *update.StealsPerGame
	}

	if err := s.stats.SaveTeam(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}
