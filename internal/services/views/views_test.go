package views

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/ao3101/eurostat/internal/model"
	"github.com/ao3101/eurostat/internal/services/rating"
	"github.com/ao3101/eurostat/internal/storage/memory"
	"github.com/ao3101/eurostat/internal/testutil"
)

type ViewsServiceSuite struct {
	suite.Suite
	stats   *memory.StatsStore
	users   *memory.UserStore
	ratings *rating.Service
	service *Service
	ctx     context.Context
}

func TestViewsServiceSuite(t *testing.T) {
	suite.Run(t, new(ViewsServiceSuite))
}

func (s *ViewsServiceSuite) SetupTest() {
	s.stats = memory.NewStatsStore()
	s.users = memory.NewUserStore()
	s.ratings = rating.NewService(s.users)
	s.service = NewService(s.stats, s.ratings, testutil.NopLogger())
	s.ctx = context.Background()
}

// gameALine is a box score with rating 13.5 and FG% 50.0
func gameALine(playerID model.PlayerID, teamID model.TeamID, gameID model.GameID, round int) *model.BoxScore {
	return &model.BoxScore{
		PlayerID: playerID,
		TeamID:   teamID,
		GameID:   gameID,
		Round:    round,
		Points:   20,
		ShootingSplits: model.ShootingSplits{
			TwoPointsMade: 8, TwoPointsAttempted: 15,
			ThreePointsMade: 1, ThreePointsAttempted: 3,
		},
		FreeThrowsMade: 2, FreeThrowsAttempted: 3,
		OffensiveRebounds: 2, DefensiveRebounds: 4, TotalRebounds: 6,
		Steals: 1, Assists: 3, Fouls: 2, Turnovers: 2,
	}
}

// gameBLine is a box score with rating 4.6 and FG% 40.0
func gameBLine(playerID model.PlayerID, teamID model.TeamID, gameID model.GameID, round int) *model.BoxScore {
	return &model.BoxScore{
		PlayerID: playerID,
		TeamID:   teamID,
		GameID:   gameID,
		Round:    round,
		Points:   10,
		ShootingSplits: model.ShootingSplits{
			TwoPointsMade: 4, TwoPointsAttempted: 10,
		},
	}
}

// Home tests

func (s *ViewsServiceSuite) TestHomeTopFive() {
	for i, ppg := range []float64{22.5, 19.0, 17.3, 15.2, 14.4, 12.0, 9.8} {
		player := &model.Player{
			ID:            model.PlayerID(rune('a' + i)),
			PointsPerGame: ppg,
		}
		s.Require().NoError(s.stats.SavePlayer(s.ctx, player))
	}
	s.Require().NoError(s.stats.SaveTeam(s.ctx, &model.Team{ID: "t1", PointsPerGame: 85.0}))
	s.Require().NoError(s.stats.SaveTeam(s.ctx, &model.Team{ID: "t2", PointsPerGame: 90.0}))

	view, err := s.service.Home(s.ctx)
	s.Require().NoError(err)

	s.Require().Len(view.TopPlayers, 5)
	s.Equal(22.5, view.TopPlayers[0].PointsPerGame)
	s.Equal(14.4, view.TopPlayers[4].PointsPerGame)

	s.Require().Len(view.BestTeams, 2)
	s.Equal(model.TeamID("t2"), view.BestTeams[0].ID)
}

// Search tests

func (s *ViewsServiceSuite) TestSearchEmptyQuery() {
	s.Require().NoError(s.stats.SavePlayer(s.ctx, &model.Player{ID: "p1", Name: "Someone"}))

	view, err := s.service.Search(s.ctx, "")
	s.Require().NoError(err)
	s.Empty(view.Players)
	s.Empty(view.Teams)
}

func (s *ViewsServiceSuite) TestSearchMatchesBothTypes() {
	s.Require().NoError(s.stats.SavePlayer(s.ctx, &model.Player{ID: "p1", Name: "Real Deal"}))
	s.Require().NoError(s.stats.SaveTeam(s.ctx, &model.Team{ID: "t1", Name: "Real Madrid"}))
	s.Require().NoError(s.stats.SaveTeam(s.ctx, &model.Team{ID: "t2", Name: "Fenerbahce"}))

	view, err := s.service.Search(s.ctx, "real")
	s.Require().NoError(err)
	s.Len(view.Players, 1)
	s.Len(view.Teams, 1)
}

// PlayerDetail tests

func (s *ViewsServiceSuite) seedPlayerWithTwoGames(gamesPlayed int) {
	s.Require().NoError(s.stats.SavePlayer(s.ctx, &model.Player{
		ID:          "p1",
		Name:        "Vasilije Micic",
		TeamID:      "t1",
		GamesPlayed: gamesPlayed,
		ShootingSplits: model.ShootingSplits{
			TwoPointsMade: 12, TwoPointsAttempted: 25,
			ThreePointsMade: 1, ThreePointsAttempted: 3,
		},
	}))
	s.Require().NoError(s.stats.SaveBoxScore(s.ctx, gameBLine("p1", "t1", "g2", 2)))
	s.Require().NoError(s.stats.SaveBoxScore(s.ctx, gameALine("p1", "t1", "g1", 1)))
}

func (s *ViewsServiceSuite) TestPlayerDetailNotFound() {
	_, err := s.service.PlayerDetail(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ViewsServiceSuite) TestPlayerDetailMatchHistory() {
	s.seedPlayerWithTwoGames(2)

	view, err := s.service.PlayerDetail(s.ctx, "p1")
	s.Require().NoError(err)

	s.Require().Len(view.MatchHistory, 2)
	// Round order, not insertion order
	s.Equal(1, view.MatchHistory[0].Round)
	s.Equal(2, view.MatchHistory[1].Round)

	s.InDelta(50.0, view.MatchHistory[0].FGPercentage, 1e-9)
	s.InDelta(13.5, view.MatchHistory[0].EfficiencyRating, 1e-9)
	s.InDelta(40.0, view.MatchHistory[1].FGPercentage, 1e-9)
	s.InDelta(4.6, view.MatchHistory[1].EfficiencyRating, 1e-9)
}

func (s *ViewsServiceSuite) TestPlayerDetailSeasonRollup() {
	s.seedPlayerWithTwoGames(2)

	view, err := s.service.PlayerDetail(s.ctx, "p1")
	s.Require().NoError(err)

	// (13.5 + 4.6) / 2
	s.InDelta(9.05, view.PlayerDetails.EfficiencyRating, 1e-9)
	// Season FG% comes from the profile's cumulative splits: 13/28
	s.InDelta(46.4, view.PlayerDetails.FGPercentage, 1e-9)
	s.Equal(model.TeamID("t1"), view.TeamLink.TeamID)
}

func (s *ViewsServiceSuite) TestPlayerDetailDividesByGamesPlayedCounter() {
	// Profile reports three games but only two rows are on hand;
	// the profile counter wins and drags the average down
	s.seedPlayerWithTwoGames(3)

	view, err := s.service.PlayerDetail(s.ctx, "p1")
	s.Require().NoError(err)
	s.InDelta(6.03, view.PlayerDetails.EfficiencyRating, 1e-9)
}

func (s *ViewsServiceSuite) TestPlayerDetailNoGames() {
	s.Require().NoError(s.stats.SavePlayer(s.ctx, &model.Player{ID: "p1", TeamID: "t1"}))

	view, err := s.service.PlayerDetail(s.ctx, "p1")
	s.Require().NoError(err)
	s.Empty(view.MatchHistory)
	s.Equal(0.0, view.PlayerDetails.EfficiencyRating)
	s.Equal(0.0, view.PlayerDetails.FGPercentage)
}

func (s *ViewsServiceSuite) TestPlayerDetailUserRating() {
	s.seedPlayerWithTwoGames(2)
	s.Require().NoError(s.ratings.Submit(s.ctx, 1, "p1", model.TargetPlayer, 3))
	s.Require().NoError(s.ratings.Submit(s.ctx, 2, "p1", model.TargetPlayer, 4))
	s.Require().NoError(s.ratings.Submit(s.ctx, 3, "p1", model.TargetPlayer, 5))

	view, err := s.service.PlayerDetail(s.ctx, "p1")
	s.Require().NoError(err)
	s.True(view.UserRating.Valid)
	s.InDelta(4.0, view.UserRating.Value, 1e-9)
}

func (s *ViewsServiceSuite) TestPlayerDetailNoUserRatings() {
	s.seedPlayerWithTwoGames(2)

	view, err := s.service.PlayerDetail(s.ctx, "p1")
	s.Require().NoError(err)
	s.False(view.UserRating.Valid)
}

// TeamDetail tests

func (s *ViewsServiceSuite) TestTeamDetailNotFound() {
	_, err := s.service.TeamDetail(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrTeamNotFound)
}

func (s *ViewsServiceSuite) TestTeamDetailRosterSortedByPointsDesc() {
	s.Require().NoError(s.stats.SaveTeam(s.ctx, &model.Team{ID: "t1", Name: "Efes"}))
	s.Require().NoError(s.stats.SavePlayer(s.ctx, &model.Player{ID: "p1", TeamID: "t1", PointsPerGame: 8.0}))
	s.Require().NoError(s.stats.SavePlayer(s.ctx, &model.Player{ID: "p2", TeamID: "t1", PointsPerGame: 16.5}))
	s.Require().NoError(s.stats.SavePlayer(s.ctx, &model.Player{ID: "p3", TeamID: "t1", PointsPerGame: 11.2}))

	view, err := s.service.TeamDetail(s.ctx, "t1")
	s.Require().NoError(err)

	s.Require().Len(view.Roster, 3)
	s.Equal(model.PlayerID("p2"), view.Roster[0].PlayerID)
	s.Equal(model.PlayerID("p3"), view.Roster[1].PlayerID)
	s.Equal(model.PlayerID("p1"), view.Roster[2].PlayerID)
}

func (s *ViewsServiceSuite) TestTeamDetailRosterRatingUsesRowCount() {
	// GamesPlayed says 3 but only 2 rows exist; the roster scope
	// divides by the rows on hand
	s.Require().NoError(s.stats.SaveTeam(s.ctx, &model.Team{ID: "t1"}))
	s.Require().NoError(s.stats.SavePlayer(s.ctx, &model.Player{ID: "p1", TeamID: "t1", GamesPlayed: 3}))
	s.Require().NoError(s.stats.SaveBoxScore(s.ctx, gameALine("p1", "t1", "g1", 1)))
	s.Require().NoError(s.stats.SaveBoxScore(s.ctx, gameBLine("p1", "t1", "g2", 2)))

	view, err := s.service.TeamDetail(s.ctx, "t1")
	s.Require().NoError(err)
	s.Require().Len(view.Roster, 1)
	s.InDelta(9.05, view.Roster[0].EfficiencyRating, 1e-9)
}

func (s *ViewsServiceSuite) TestTeamDetailRosterPlayerWithoutGames() {
	s.Require().NoError(s.stats.SaveTeam(s.ctx, &model.Team{ID: "t1"}))
	s.Require().NoError(s.stats.SavePlayer(s.ctx, &model.Player{ID: "p1", TeamID: "t1"}))

	view, err := s.service.TeamDetail(s.ctx, "t1")
	s.Require().NoError(err)
	s.Require().Len(view.Roster, 1)
	s.Equal(0.0, view.Roster[0].EfficiencyRating)
}

func (s *ViewsServiceSuite) TestTeamDetailScheduleSortedByRound() {
	s.Require().NoError(s.stats.SaveTeam(s.ctx, &model.Team{ID: "t1"}))
	s.Require().NoError(s.stats.SaveGame(s.ctx, &model.Game{ID: "g2", HomeTeam: "t1", AwayTeam: "t3", Round: 5}))
	s.Require().NoError(s.stats.SaveGame(s.ctx, &model.Game{ID: "g1", HomeTeam: "t2", AwayTeam: "t1", Round: 1}))

	view, err := s.service.TeamDetail(s.ctx, "t1")
	s.Require().NoError(err)
	s.Require().Len(view.Schedule, 2)
	s.Equal(model.GameID("g1"), view.Schedule[0].ID)
	s.Equal(model.GameID("g2"), view.Schedule[1].ID)
}

func (s *ViewsServiceSuite) TestTeamDetailSeasonShooting() {
	s.Require().NoError(s.stats.SaveTeam(s.ctx, &model.Team{
		ID: "t1",
		ShootingSplits: model.ShootingSplits{
			TwoPointsMade: 20, TwoPointsAttempted: 40,
			ThreePointsMade: 10, ThreePointsAttempted: 20,
		},
	}))

	view, err := s.service.TeamDetail(s.ctx, "t1")
	s.Require().NoError(err)
	s.InDelta(50.0, view.TeamDetails.FGPercentage, 1e-9)
}

// MatchDetail tests

func (s *ViewsServiceSuite) TestMatchDetailNotFound() {
	_, err := s.service.MatchDetail(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *ViewsServiceSuite) TestMatchDetailPartition() {
	s.Require().NoError(s.stats.SaveGame(s.ctx, &model.Game{ID: "g1", HomeTeam: "t1", AwayTeam: "t2", Round: 1}))
	s.Require().NoError(s.stats.SaveBoxScore(s.ctx, gameALine("p1", "t1", "g1", 1)))
	s.Require().NoError(s.stats.SaveBoxScore(s.ctx, gameBLine("p2", "t2", "g1", 1)))

	view, err := s.service.MatchDetail(s.ctx, "g1")
	s.Require().NoError(err)

	s.Require().Len(view.HomeTeamBoxScore, 1)
	s.Equal(model.PlayerID("p1"), view.HomeTeamBoxScore[0].PlayerID)
	s.InDelta(13.5, view.HomeTeamBoxScore[0].EfficiencyRating, 1e-9)

	s.Require().Len(view.AwayTeamBoxScore, 1)
	s.Equal(model.PlayerID("p2"), view.AwayTeamBoxScore[0].PlayerID)
}

func (s *ViewsServiceSuite) TestMatchDetailUnmatchedTeamFallsToAway() {
	// A row whose team is neither participant still shows up,
	// in the away bucket
	s.Require().NoError(s.stats.SaveGame(s.ctx, &model.Game{ID: "g1", HomeTeam: "t1", AwayTeam: "t2", Round: 1}))
	s.Require().NoError(s.stats.SaveBoxScore(s.ctx, gameALine("p1", "t9", "g1", 1)))

	view, err := s.service.MatchDetail(s.ctx, "g1")
	s.Require().NoError(err)
	s.Empty(view.HomeTeamBoxScore)
	s.Require().Len(view.AwayTeamBoxScore, 1)
	s.Equal(model.PlayerID("p1"), view.AwayTeamBoxScore[0].PlayerID)
}

// Favorites tests

func (s *ViewsServiceSuite) TestFavoritesPlayerMetrics() {
	s.Require().NoError(s.stats.SavePlayer(s.ctx, &model.Player{
		ID: "p1", Name: "Micic", TeamID: "t1", GamesPlayed: 3,
		ShootingSplits: model.ShootingSplits{TwoPointsMade: 5, TwoPointsAttempted: 10},
	}))
	s.Require().NoError(s.stats.SaveBoxScore(s.ctx, gameALine("p1", "t1", "g1", 1)))
	s.Require().NoError(s.stats.SaveBoxScore(s.ctx, gameBLine("p1", "t1", "g2", 2)))

	view, err := s.service.Favorites(s.ctx, []model.Favorite{
		{UserID: 1, TargetID: "p1", TargetType: model.TargetPlayer},
	})
	s.Require().NoError(err)

	s.Require().Len(view.Players, 1)
	// Row-count divisor, even though GamesPlayed says 3
	s.InDelta(9.05, view.Players[0].EfficiencyRating, 1e-9)
	s.InDelta(50.0, view.Players[0].FGPercentage, 1e-9)
}

func (s *ViewsServiceSuite) TestFavoritesTeam() {
	s.Require().NoError(s.stats.SaveTeam(s.ctx, &model.Team{
		ID: "t1", Name: "Efes",
		ShootingSplits: model.ShootingSplits{TwoPointsMade: 30, TwoPointsAttempted: 60},
	}))

	view, err := s.service.Favorites(s.ctx, []model.Favorite{
		{UserID: 1, TargetID: "t1", TargetType: model.TargetTeam},
	})
	s.Require().NoError(err)

	s.Require().Len(view.Teams, 1)
	s.InDelta(50.0, view.Teams[0].FGPercentage, 1e-9)
}

func (s *ViewsServiceSuite) TestFavoritesSkipsMissingTargets() {
	view, err := s.service.Favorites(s.ctx, []model.Favorite{
		{UserID: 1, TargetID: "ghost", TargetType: model.TargetPlayer},
		{UserID: 1, TargetID: "ghost", TargetType: model.TargetTeam},
	})
	s.Require().NoError(err)
	s.Empty(view.Players)
	s.Empty(view.Teams)
}

func (s *ViewsServiceSuite) TestFavoritesEmpty() {
	view, err := s.service.Favorites(s.ctx, nil)
	s.Require().NoError(err)
	s.Empty(view.Players)
	s.Empty(view.Teams)
}
