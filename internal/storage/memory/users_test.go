package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/ao3101/eurostat/internal/model"
)

type UserStoreSuite struct {
	suite.Suite
	store *UserStore
	ctx   context.Context
}

func TestUserStoreSuite(t *testing.T) {
	suite.Run(t, new(UserStoreSuite))
}

func (s *UserStoreSuite) SetupTest() {
	s.store = NewUserStore()
	s.ctx = context.Background()
}

func (s *UserStoreSuite) TestCreateAndGetUser() {
	user := &model.User{Username: "john_doe", PasswordHash: "hash"}
	s.Require().NoError(s.store.CreateUser(s.ctx, user))
	s.NotZero(user.ID)

	got, err := s.store.GetUser(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Equal("john_doe", got.Username)

	byName, err := s.store.GetUserByUsername(s.ctx, "john_doe")
	s.Require().NoError(err)
	s.Equal(user.ID, byName.ID)
}

func (s *UserStoreSuite) TestCreateUserDuplicateUsername() {
	s.Require().NoError(s.store.CreateUser(s.ctx, &model.User{Username: "alice"}))
	err := s.store.CreateUser(s.ctx, &model.User{Username: "alice"})
	s.ErrorIs(err, model.ErrUsernameExists)
}

func (s *UserStoreSuite) TestGetUserNotFound() {
	_, err := s.store.GetUser(s.ctx, 999)
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *UserStoreSuite) TestRatingsAllowDuplicates() {
	r1 := &model.Rating{UserID: 1, TargetID: "p1", TargetType: model.TargetPlayer, Score: 4}
	r2 := &model.Rating{UserID: 1, TargetID: "p1", TargetType: model.TargetPlayer, Score: 2}
	s.Require().NoError(s.store.AddRating(s.ctx, r1))
	s.Require().NoError(s.store.AddRating(s.ctx, r2))

	ratings, err := s.store.RatingsForTarget(s.ctx, "p1")
	s.Require().NoError(err)
	s.Len(ratings, 2)
}

func (s *UserStoreSuite) TestRatingsForTargetIgnoresType() {
	// Target ids are the lookup key; the type is not part of it
	_ = s.store.AddRating(s.ctx, &model.Rating{UserID: 1, TargetID: "x1", TargetType: model.TargetPlayer, Score: 5})
	_ = s.store.AddRating(s.ctx, &model.Rating{UserID: 2, TargetID: "x1", TargetType: model.TargetTeam, Score: 3})

	ratings, err := s.store.RatingsForTarget(s.ctx, "x1")
	s.Require().NoError(err)
	s.Len(ratings, 2)
}

func (s *UserStoreSuite) TestAddFavoriteUnique() {
	fav := &model.Favorite{UserID: 1, TargetID: "p1", TargetType: model.TargetPlayer}
	s.Require().NoError(s.store.AddFavorite(s.ctx, fav))

	dup := &model.Favorite{UserID: 1, TargetID: "p1", TargetType: model.TargetPlayer}
	s.ErrorIs(s.store.AddFavorite(s.ctx, dup), model.ErrFavoriteExists)

	// Same target, different type is a distinct favorite
	other := &model.Favorite{UserID: 1, TargetID: "p1", TargetType: model.TargetTeam}
	s.NoError(s.store.AddFavorite(s.ctx, other))
}

func (s *UserStoreSuite) TestRemoveFavorite() {
	_ = s.store.AddFavorite(s.ctx, &model.Favorite{UserID: 1, TargetID: "p1", TargetType: model.TargetPlayer})

	s.Require().NoError(s.store.RemoveFavorite(s.ctx, 1, "p1", model.TargetPlayer))
	s.ErrorIs(s.store.RemoveFavorite(s.ctx, 1, "p1", model.TargetPlayer), model.ErrFavoriteNotFound)
}

func (s *UserStoreSuite) TestHasFavorite() {
	_ = s.store.AddFavorite(s.ctx, &model.Favorite{UserID: 1, TargetID: "t1", TargetType: model.TargetTeam})

	has, err := s.store.HasFavorite(s.ctx, 1, "t1", model.TargetTeam)
	s.Require().NoError(err)
	s.True(has)

	has, err = s.store.HasFavorite(s.ctx, 2, "t1", model.TargetTeam)
	s.Require().NoError(err)
	s.False(has)
}

func (s *UserStoreSuite) TestFavoritesForUser() {
	_ = s.store.AddFavorite(s.ctx, &model.Favorite{UserID: 1, TargetID: "p1", TargetType: model.TargetPlayer})
	_ = s.store.AddFavorite(s.ctx, &model.Favorite{UserID: 1, TargetID: "t1", TargetType: model.TargetTeam})
	_ = s.store.AddFavorite(s.ctx, &model.Favorite{UserID: 2, TargetID: "p1", TargetType: model.TargetPlayer})

	favs, err := s.store.FavoritesForUser(s.ctx, 1)
	s.Require().NoError(err)
	s.Len(favs, 2)
}
