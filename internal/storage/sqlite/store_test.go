package sqlite

import (
	"context"
	"testing"
	"time"

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
	store, err := New(":memory:")
	s.Require().NoError(err)
	s.store = store
	s.ctx = context.Background()
}

func (s *UserStoreSuite) TearDownTest() {
	if s.store != nil {
		_ = s.store.Close()
	}
}

func (s *UserStoreSuite) createUser(username string) *model.User {
	user := &model.User{Username: username, PasswordHash: "hash"}
	s.Require().NoError(s.store.CreateUser(s.ctx, user))
	return user
}

// User tests

func (s *UserStoreSuite) TestCreateAndGetUser() {
	user := &model.User{Username: "alice", PasswordHash: "hash", IsAdmin: true}

	err := s.store.CreateUser(s.ctx, user)
	s.Require().NoError(err)
	s.NotZero(user.ID)

	got, err := s.store.GetUser(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Equal("alice", got.Username)
	s.True(got.IsAdmin)
}

func (s *UserStoreSuite) TestCreateUserDuplicateUsername() {
	s.createUser("alice")

	err := s.store.CreateUser(s.ctx, &model.User{Username: "alice", PasswordHash: "other"})
	s.ErrorIs(err, model.ErrUsernameExists)
}

func (s *UserStoreSuite) TestGetUserNotFound() {
	_, err := s.store.GetUser(s.ctx, 9999)
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *UserStoreSuite) TestGetUserByUsername() {
	created := s.createUser("bob")

	got, err := s.store.GetUserByUsername(s.ctx, "bob")
	s.Require().NoError(err)
	s.Equal(created.ID, got.ID)

	_, err = s.store.GetUserByUsername(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrUserNotFound)
}

// Rating tests

func (s *UserStoreSuite) TestAddRating() {
	user := s.createUser("alice")

	rating := &model.Rating{
		UserID:     user.ID,
		TargetID:   "p1",
		TargetType: model.TargetPlayer,
		Score:      4,
	}
	err := s.store.AddRating(s.ctx, rating)
	s.Require().NoError(err)
	s.NotZero(rating.ID)
}

func (s *UserStoreSuite) TestRatingsForTarget() {
	alice := s.createUser("alice")
	bob := s.createUser("bob")

	_ = s.store.AddRating(s.ctx, &model.Rating{UserID: alice.ID, TargetID: "p1", TargetType: model.TargetPlayer, Score: 3})
	_ = s.store.AddRating(s.ctx, &model.Rating{UserID: bob.ID, TargetID: "p1", TargetType: model.TargetPlayer, Score: 5})
	_ = s.store.AddRating(s.ctx, &model.Rating{UserID: alice.ID, TargetID: "p2", TargetType: model.TargetPlayer, Score: 1})

	ratings, err := s.store.RatingsForTarget(s.ctx, "p1")
	s.Require().NoError(err)
	s.Len(ratings, 2)
}

func (s *UserStoreSuite) TestDuplicateRatingsAllowed() {
	// Re-rating keeps every submission; averages smooth them out
	alice := s.createUser("alice")

	_ = s.store.AddRating(s.ctx, &model.Rating{UserID: alice.ID, TargetID: "p1", TargetType: model.TargetPlayer, Score: 2})
	_ = s.store.AddRating(s.ctx, &model.Rating{UserID: alice.ID, TargetID: "p1", TargetType: model.TargetPlayer, Score: 4})

	ratings, err := s.store.RatingsForTarget(s.ctx, "p1")
	s.Require().NoError(err)
	s.Len(ratings, 2)
}

// Favorite tests

func (s *UserStoreSuite) TestAddAndListFavorites() {
	user := s.createUser("alice")

	fav := &model.Favorite{
		UserID:     user.ID,
		TargetID:   "p1",
		TargetType: model.TargetPlayer,
		AddedAt:    time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC),
	}
	err := s.store.AddFavorite(s.ctx, fav)
	s.Require().NoError(err)
	s.NotZero(fav.ID)

	favorites, err := s.store.FavoritesForUser(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Require().Len(favorites, 1)
	s.Equal("p1", favorites[0].TargetID)
}

func (s *UserStoreSuite) TestAddFavoriteDuplicate() {
	user := s.createUser("alice")

	fav := &model.Favorite{UserID: user.ID, TargetID: "p1", TargetType: model.TargetPlayer}
	s.Require().NoError(s.store.AddFavorite(s.ctx, fav))

	err := s.store.AddFavorite(s.ctx, &model.Favorite{UserID: user.ID, TargetID: "p1", TargetType: model.TargetPlayer})
	s.ErrorIs(err, model.ErrFavoriteExists)
}

func (s *UserStoreSuite) TestSameTargetDifferentTypeAllowed() {
	// A player id and a team id can collide; the type disambiguates
	user := s.createUser("alice")

	s.Require().NoError(s.store.AddFavorite(s.ctx, &model.Favorite{UserID: user.ID, TargetID: "x1", TargetType: model.TargetPlayer}))
	s.Require().NoError(s.store.AddFavorite(s.ctx, &model.Favorite{UserID: user.ID, TargetID: "x1", TargetType: model.TargetTeam}))

	favorites, err := s.store.FavoritesForUser(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Len(favorites, 2)
}

func (s *UserStoreSuite) TestRemoveFavorite() {
	user := s.createUser("alice")
	s.Require().NoError(s.store.AddFavorite(s.ctx, &model.Favorite{UserID: user.ID, TargetID: "p1", TargetType: model.TargetPlayer}))

	err := s.store.RemoveFavorite(s.ctx, user.ID, "p1", model.TargetPlayer)
	s.Require().NoError(err)

	has, err := s.store.HasFavorite(s.ctx, user.ID, "p1", model.TargetPlayer)
	s.Require().NoError(err)
	s.False(has)
}

func (s *UserStoreSuite) TestRemoveFavoriteNotFound() {
	user := s.createUser("alice")

	err := s.store.RemoveFavorite(s.ctx, user.ID, "p1", model.TargetPlayer)
	s.ErrorIs(err, model.ErrFavoriteNotFound)
}

func (s *UserStoreSuite) TestHasFavorite() {
	user := s.createUser("alice")
	s.Require().NoError(s.store.AddFavorite(s.ctx, &model.Favorite{UserID: user.ID, TargetID: "t1", TargetType: model.TargetTeam}))

	has, err := s.store.HasFavorite(s.ctx, user.ID, "t1", model.TargetTeam)
	s.Require().NoError(err)
	s.True(has)

	has, err = s.store.HasFavorite(s.ctx, user.ID, "t1", model.TargetPlayer)
	s.Require().NoError(err)
	s.False(has)
}
