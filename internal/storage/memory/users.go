package memory

import (
	"context"
	"sync"

	"github.com/ao3101/eurostat/internal/model"
	"github.com/ao3101/eurostat/internal/storage"
)

// UserStore is an in-memory implementation of the relational store
type UserStore struct {
	mu sync.RWMutex

	users         map[model.UserID]*model.User
	usernameIndex map[string]model.UserID
	ratings       []model.Rating
	favorites     []model.Favorite

	nextUserID   model.UserID
	nextRatingID int64
}

// NewUserStore creates a new in-memory user store
func NewUserStore() *UserStore {
	return &UserStore{
		users:         make(map[model.UserID]*model.User),
		usernameIndex: make(map[string]model.UserID),
		nextUserID:    1,
		nextRatingID:  1,
	}
}

// Ensure UserStore implements the interface
var _ storage.UserStore = (*UserStore)(nil)

// User operations

func (s *UserStore) CreateUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.usernameIndex[user.Username]; exists {
		return model.ErrUsernameExists
	}
	user.ID = s.nextUserID
	s.nextUserID++
	s.users[user.ID] = user
	s.usernameIndex[user.Username] = user.ID
	return nil
}

func (s *UserStore) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

func (s *UserStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.usernameIndex[username]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return s.users[id], nil
}

// Rating operations

func (s *UserStore) AddRating(ctx context.Context, rating *model.Rating) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rating.ID = s.nextRatingID
	s.nextRatingID++
	// Duplicates per (user, target) are allowed by design
	s.ratings = append(s.ratings, *rating)
	return nil
}

func (s *UserStore) RatingsForTarget(ctx context.Context, targetID string) ([]model.Rating, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Rating
	for _, r := range s.ratings {
		if r.TargetID == targetID {
			out = append(out, r)
		}
	}
	return out, nil
}

// Favorite operations

func (s *UserStore) AddFavorite(ctx context.Context, fav *model.Favorite) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.favorites {
		if f.UserID == fav.UserID && f.TargetID == fav.TargetID && f.TargetType == fav.TargetType {
			return model.ErrFavoriteExists
		}
	}
	fav.ID = int64(len(s.favorites) + 1)
	s.favorites = append(s.favorites, *fav)
	return nil
}

func (s *UserStore) RemoveFavorite(ctx context.Context, userID model.UserID, targetID string, targetType model.TargetType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, f := range s.favorites {
		if f.UserID == userID && f.TargetID == targetID && f.TargetType == targetType {
			s.favorites = append(s.favorites[:i], s.favorites[i+1:]...)
			return nil
		}
	}
	return model.ErrFavoriteNotFound
}

func (s *UserStore) HasFavorite(ctx context.Context, userID model.UserID, targetID string, targetType model.TargetType) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, f := range s.favorites {
		if f.UserID == userID && f.TargetID == targetID && f.TargetType == targetType {
			return true, nil
		}
	}
	return false, nil
}

func (s *UserStore) FavoritesForUser(ctx context.Context, userID model.UserID) ([]model.Favorite, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Favorite
	for _, f := range s.favorites {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}
