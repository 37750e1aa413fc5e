// Package favorites manages each user's followed players and teams.
package favorites

import (
	"context"

	"github.com/ao3101/eurostat/internal/model"
	"github.com/ao3101/eurostat/internal/storage"
)

// Service manages user favorites
type Service struct {
	users storage.UserStore
}

func NewService(users storage.UserStore) *Service {
	return &Service{users: users}
}

// Add marks a player or team as a favorite of the user. Adding an
// existing favorite returns model.ErrFavoriteExists.
func (s *Service) Add(ctx context.Context, userID model.UserID, targetID string, targetType model.TargetType) error {
	return s.users.AddFavorite(ctx, &model.Favorite{
		UserID:     userID,
		TargetID:   targetID,
		TargetType: targetType,
	})
}

// Remove deletes a favorite. Removing one that does not exist returns
// model.ErrFavoriteNotFound.
func (s *Service) Remove(ctx context.Context, userID model.UserID, targetID string, targetType model.TargetType) error {
	return s.users.RemoveFavorite(ctx, userID, targetID, targetType)
}

// Check reports whether the user has favorited the target
func (s *Service) Check(ctx context.Context, userID model.UserID, targetID string, targetType model.TargetType) (bool, error) {
	return s.users.HasFavorite(ctx, userID, targetID, targetType)
}

// List returns the user's favorites split by target type
func (s *Service) List(ctx context.Context, userID model.UserID) (players []model.Favorite, teams []model.Favorite, err error) {
	all, err := s.users.FavoritesForUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	for _, fav := range all {
		switch fav.TargetType {
		case model.TargetPlayer:
			players = append(players, fav)
		case model.TargetTeam:
			teams = append(teams, fav)
		}
	}
	return players, teams, nil
}
