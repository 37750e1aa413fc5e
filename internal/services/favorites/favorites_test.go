package favorites

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/ao3101/eurostat/internal/model"
	"github.com/ao3101/eurostat/internal/storage/memory"
)

type FavoritesServiceSuite struct {
	suite.Suite
	service *Service
	ctx     context.Context
}

func TestFavoritesServiceSuite(t *testing.T) {
	suite.Run(t, new(FavoritesServiceSuite))
}

func (s *FavoritesServiceSuite) SetupTest() {
	s.service = NewService(memory.NewUserStore())
	s.ctx = context.Background()
}

func (s *FavoritesServiceSuite) TestAddAndCheck() {
	err := s.service.Add(s.ctx, 1, "p1", model.TargetPlayer)
	s.Require().NoError(err)

	has, err := s.service.Check(s.ctx, 1, "p1", model.TargetPlayer)
	s.Require().NoError(err)
	s.True(has)
}

func (s *FavoritesServiceSuite) TestAddDuplicate() {
	s.Require().NoError(s.service.Add(s.ctx, 1, "p1", model.TargetPlayer))

	err := s.service.Add(s.ctx, 1, "p1", model.TargetPlayer)
	s.ErrorIs(err, model.ErrFavoriteExists)
}

func (s *FavoritesServiceSuite) TestRemove() {
	s.Require().NoError(s.service.Add(s.ctx, 1, "p1", model.TargetPlayer))

	err := s.service.Remove(s.ctx, 1, "p1", model.TargetPlayer)
	s.Require().NoError(err)

	has, err := s.service.Check(s.ctx, 1, "p1", model.TargetPlayer)
	s.Require().NoError(err)
	s.False(has)
}

func (s *FavoritesServiceSuite) TestRemoveMissing() {
	err := s.service.Remove(s.ctx, 1, "p1", model.TargetPlayer)
	s.ErrorIs(err, model.ErrFavoriteNotFound)
}

func (s *FavoritesServiceSuite) TestListSplitsByType() {
	s.Require().NoError(s.service.Add(s.ctx, 1, "p1", model.TargetPlayer))
	s.Require().NoError(s.service.Add(s.ctx, 1, "p2", model.TargetPlayer))
	s.Require().NoError(s.service.Add(s.ctx, 1, "t1", model.TargetTeam))

	players, teams, err := s.service.List(s.ctx, 1)
	s.Require().NoError(err)
	s.Len(players, 2)
	s.Require().Len(teams, 1)
	s.Equal("t1", teams[0].TargetID)
}

func (s *FavoritesServiceSuite) TestListIsPerUser() {
	s.Require().NoError(s.service.Add(s.ctx, 1, "p1", model.TargetPlayer))
	s.Require().NoError(s.service.Add(s.ctx, 2, "p2", model.TargetPlayer))

	players, teams, err := s.service.List(s.ctx, 1)
	s.Require().NoError(err)
	s.Empty(teams)
	s.Require().Len(players, 1)
	s.Equal("p1", players[0].TargetID)
}
