// Package views assembles the page-level read models served by the
// API: leaders, search, player/team/match detail and favorites. Each
// assembler augments raw store records with the derived metrics
// (efficiency rating, FG%) which are never stored.
package views

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/ao3101/eurostat/internal/model"
	"github.com/ao3101/eurostat/internal/services/metrics"
	"github.com/ao3101/eurostat/internal/services/rating"
	"github.com/ao3101/eurostat/internal/services/rollup"
	"github.com/ao3101/eurostat/internal/storage"
)

// Number of entries on the leaders page
const leadersLimit = 5

// Default cap on search results per entity type
const searchLimit = 10

// Service assembles read models from the stats store and the rating
// aggregator
type Service struct {
	stats   storage.StatsStore
	ratings *rating.Service
	logger  *slog.Logger
}

func NewService(stats storage.StatsStore, ratings *rating.Service, logger *slog.Logger) *Service {
	return &Service{stats: stats, ratings: ratings, logger: logger}
}

// HomeView is the leaders page: top players and teams by points per game
type HomeView struct {
	TopPlayers []*model.Player `json:"top_players"`
	BestTeams  []*model.Team   `json:"best_teams"`
}

// SearchView lists players and teams matching a name query
type SearchView struct {
	Players []*model.Player `json:"players"`
	Teams   []*model.Team   `json:"teams"`
}

// MatchRow is one game line in a player's match history, augmented
// with the derived metrics
type MatchRow struct {
	GameID    model.GameID `json:"game_id"`
	Game      string       `json:"game"`
	Round     int          `json:"round"`
	Points    int          `json:"points"`
	Assists   int          `json:"assists"`
	Rebounds  int          `json:"rebounds"`
	Steals    int          `json:"steals"`
	Minutes   string       `json:"minutes"`
	PlusMinus int          `json:"plus_minus"`

	FGPercentage     float64 `json:"fg_percentage"`
	EfficiencyRating float64 `json:"eurostat_rating"`
}

// PlayerSeason is a player profile augmented with season-scope
// derived metrics
type PlayerSeason struct {
	model.Player
	FGPercentage     float64 `json:"fg_percentage"`
	EfficiencyRating float64 `json:"eurostat_rating"`
}

// TeamLink is the minimal team reference on a player page
type TeamLink struct {
	TeamID model.TeamID `json:"team_id"`
}

// PlayerDetailView is the player page
type PlayerDetailView struct {
	PlayerDetails PlayerSeason  `json:"player_details"`
	TeamLink      TeamLink      `json:"team_link"`
	MatchHistory  []MatchRow    `json:"match_history"`
	UserRating    model.Average `json:"user_rating"`
}

// TeamSeason is a team profile augmented with season FG%
type TeamSeason struct {
	model.Team
	FGPercentage float64 `json:"fg_percentage"`
}

// RosterEntry is one player on the team page roster
type RosterEntry struct {
	Name            string         `json:"player"`
	PlayerID        model.PlayerID `json:"player_id"`
	GamesPlayed     int            `json:"games_played"`
	PointsPerGame   float64        `json:"points_per_game"`
	AssistsPerGame  float64        `json:"assists_per_game"`
	ReboundsPerGame float64        `json:"rebounds_per_game"`
	StealsPerGame   float64        `json:"steals_per_game"`

	FGPercentage     float64 `json:"fg_percentage"`
	EfficiencyRating float64 `json:"eurostat_rating"`
}

// TeamDetailView is the team page
type TeamDetailView struct {
	TeamDetails TeamSeason    `json:"team_details"`
	Roster      []RosterEntry `json:"roster"`
	Schedule    []*model.Game `json:"schedule"`
	UserRating  model.Average `json:"user_rating"`
}

// BoxScoreRow is one box-score line on a match page, augmented with
// the derived metrics
type BoxScoreRow struct {
	model.BoxScore
	Rebounds         int     `json:"rebounds"`
	FGPercentage     float64 `json:"fg_percentage"`
	EfficiencyRating float64 `json:"eurostat_rating"`
}

// MatchDetailView is the match page: the game header plus each side's
// augmented box score
type MatchDetailView struct {
	GameInfo         *model.Game   `json:"game_info"`
	HomeTeamBoxScore []BoxScoreRow `json:"home_team_boxscore"`
	AwayTeamBoxScore []BoxScoreRow `json:"away_team_boxscore"`
}

// FavoritePlayer is a followed player with season-scope metrics
type FavoritePlayer struct {
	model.Player
	FGPercentage     float64 `json:"fg_percentage"`
	EfficiencyRating float64 `json:"eurostat_rating"`
}

// FavoriteTeam is a followed team with season FG%
type FavoriteTeam struct {
	model.Team
	FGPercentage float64 `json:"fg_percentage"`
}

// FavoritesView is the favorites page
type FavoritesView struct {
	Players []FavoritePlayer `json:"players"`
	Teams   []FavoriteTeam   `json:"teams"`
}

// Home returns the leaders page. The store is responsible for the
// sort and limit; no derived metrics are computed here.
func (s *Service) Home(ctx context.Context) (*HomeView, error) {
	players, err := s.stats.TopPlayersByPointsPerGame(ctx, leadersLimit)
	if err != nil {
		return nil, err
	}

	teams, err := s.stats.TopTeamsByPointsPerGame(ctx, leadersLimit)
	if err != nil {
		return nil, err
	}

	return &HomeView{TopPlayers: players, BestTeams: teams}, nil
}

// Search returns players and teams whose names contain the query,
// case-insensitively. An empty query matches nothing.
func (s *Service) Search(ctx context.Context, query string) (*SearchView, error) {
	if query == "" {
		return &SearchView{Players: []*model.Player{}, Teams: []*model.Team{}}, nil
	}

	players, err := s.stats.SearchPlayers(ctx, query, searchLimit)
	if err != nil {
		return nil, err
	}

	teams, err := s.stats.SearchTeams(ctx, query, searchLimit)
	if err != nil {
		return nil, err
	}

	return &SearchView{Players: players, Teams: teams}, nil
}

// PlayerDetail returns the player page: match history in round order
// with per-row metrics, the season summary with season-scope rollup,
// and the community rating.
func (s *Service) PlayerDetail(ctx context.Context, id model.PlayerID) (*PlayerDetailView, error) {
	player, err := s.stats.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	lines, err := s.stats.BoxScoresForPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	history := make([]MatchRow, 0, len(lines))
	for _, line := range lines {
		history = append(history, MatchRow{
			GameID:           line.GameID,
			Game:             line.Game,
			Round:            line.Round,
			Points:           line.Points,
			Assists:          line.Assists,
			Rebounds:         line.TotalRebounds,
			Steals:           line.Steals,
			Minutes:          line.Minutes,
			PlusMinus:        line.PlusMinus,
			FGPercentage:     metrics.ShootingPercentage(line.ShootingSplits),
			EfficiencyRating: metrics.EfficiencyRating(line),
		})
	}

	// The season rollup divides by the profile's games-played
	// counter, not the number of rows on hand
	seasonRating := rollup.AverageEfficiency(lines, player.GamesPlayed)

	userRating, err := s.ratings.AverageFor(ctx, string(id))
	if err != nil {
		return nil, err
	}

	return &PlayerDetailView{
		PlayerDetails: PlayerSeason{
			Player:           *player,
			FGPercentage:     metrics.ShootingPercentage(player.ShootingSplits),
			EfficiencyRating: seasonRating.Or(0),
		},
		TeamLink:     TeamLink{TeamID: player.TeamID},
		MatchHistory: history,
		UserRating:   userRating,
	}, nil
}

// TeamDetail returns the team page: season summary with FG%, the
// enhanced roster sorted by points per game descending, the schedule
// in round order, and the community rating.
func (s *Service) TeamDetail(ctx context.Context, id model.TeamID) (*TeamDetailView, error) {
	team, err := s.stats.GetTeam(ctx, id)
	if err != nil {
		return nil, err
	}

	players, err := s.stats.PlayersForTeam(ctx, id)
	if err != nil {
		return nil, err
	}

	roster := make([]RosterEntry, 0, len(players))
	for _, player := range players {
		lines, err := s.stats.BoxScoresForPlayer(ctx, player.ID)
		if err != nil {
			return nil, err
		}

		// Roster scope divides by the rows on hand, not the
		// profile counter
		playerRating := rollup.ByRowCount(lines)

		roster = append(roster, RosterEntry{
			Name:             player.Name,
			PlayerID:         player.ID,
			GamesPlayed:      player.GamesPlayed,
			PointsPerGame:    player.PointsPerGame,
			AssistsPerGame:   player.AssistsPerGame,
			ReboundsPerGame:  player.ReboundsPerGame,
			StealsPerGame:    player.StealsPerGame,
			FGPercentage:     metrics.ShootingPercentage(player.ShootingSplits),
			EfficiencyRating: playerRating.Or(0),
		})
	}
	sort.SliceStable(roster, func(i, j int) bool {
		return roster[i].PointsPerGame > roster[j].PointsPerGame
	})

	schedule, err := s.stats.GamesForTeam(ctx, id)
	if err != nil {
		return nil, err
	}

	userRating, err := s.ratings.AverageFor(ctx, string(id))
	if err != nil {
		return nil, err
	}

	return &TeamDetailView{
		TeamDetails: TeamSeason{
			Team:         *team,
			FGPercentage: metrics.ShootingPercentage(team.ShootingSplits),
		},
		Roster:     roster,
		Schedule:   schedule,
		UserRating: userRating,
	}, nil
}

// MatchDetail returns the match page. Box-score rows are partitioned
// by comparing their team id against the game's participants; a row
// matching neither side lands in the away bucket rather than being
// dropped.
func (s *Service) MatchDetail(ctx context.Context, id model.GameID) (*MatchDetailView, error) {
	game, err := s.stats.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	lines, err := s.stats.BoxScoresForGame(ctx, id)
	if err != nil {
		return nil, err
	}

	home := []BoxScoreRow{}
	away := []BoxScoreRow{}
	for _, line := range lines {
		row := BoxScoreRow{
			BoxScore:         line,
			Rebounds:         line.TotalRebounds,
			FGPercentage:     metrics.ShootingPercentage(line.ShootingSplits),
			EfficiencyRating: metrics.EfficiencyRating(line),
		}

		switch line.TeamID {
		case game.HomeTeam:
			home = append(home, row)
		case game.AwayTeam:
			away = append(away, row)
		default:
			// Data-consistency issue: tolerate it, but leave a trace
			s.logger.Warn("box score team matches neither game participant",
				"game_id", game.ID,
				"player_id", line.PlayerID,
				"team_id", line.TeamID)
			away = append(away, row)
		}
	}

	return &MatchDetailView{
		GameInfo:         game,
		HomeTeamBoxScore: home,
		AwayTeamBoxScore: away,
	}, nil
}

// Favorites returns the favorites page for a user. Favorites whose
// underlying profile no longer exists are skipped, not errors.
func (s *Service) Favorites(ctx context.Context, favorites []model.Favorite) (*FavoritesView, error) {
	view := &FavoritesView{
		Players: []FavoritePlayer{},
		Teams:   []FavoriteTeam{},
	}

	for _, fav := range favorites {
		switch fav.TargetType {
		case model.TargetPlayer:
			player, err := s.stats.GetPlayer(ctx, model.PlayerID(fav.TargetID))
			if err != nil {
				if errors.Is(err, model.ErrPlayerNotFound) {
					continue
				}
				return nil, err
			}

			lines, err := s.stats.BoxScoresForPlayer(ctx, player.ID)
			if err != nil {
				return nil, err
			}

			// This path divides by row count, unlike the
			// player page's season rollup; the profile's
			// games-played counter is not consulted here
			playerRating := rollup.ByRowCount(lines)

			view.Players = append(view.Players, FavoritePlayer{
				Player:           *player,
				FGPercentage:     metrics.ShootingPercentage(player.ShootingSplits),
				EfficiencyRating: playerRating.Or(0),
			})

		case model.TargetTeam:
			team, err := s.stats.GetTeam(ctx, model.TeamID(fav.TargetID))
			if err != nil {
				if errors.Is(err, model.ErrTeamNotFound) {
					continue
				}
				return nil, err
			}

			view.Teams = append(view.Teams, FavoriteTeam{
				Team:         *team,
				FGPercentage: metrics.ShootingPercentage(team.ShootingSplits),
			})
		}
	}

	return view, nil
}
