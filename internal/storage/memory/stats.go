package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/ao3101/eurostat/internal/model"
	"github.com/ao3101/eurostat/internal/storage"
)

// StatsStore is an in-memory implementation of the document store
type StatsStore struct {
	mu sync.RWMutex

	players   map[model.PlayerID]*model.Player
	teams     map[model.TeamID]*model.Team
	games     map[model.GameID]*model.Game
	boxScores map[boxScoreKey]*model.BoxScore
}

type boxScoreKey struct {
	playerID model.PlayerID
	gameID   model.GameID
}

// NewStatsStore creates a new in-memory stats store
func NewStatsStore() *StatsStore {
	return &StatsStore{
		players:   make(map[model.PlayerID]*model.Player),
		teams:     make(map[model.TeamID]*model.Team),
		games:     make(map[model.GameID]*model.Game),
		boxScores: make(map[boxScoreKey]*model.BoxScore),
	}
}

// Ensure StatsStore implements the interface
var _ storage.StatsStore = (*StatsStore)(nil)

// Player operations

func (s *StatsStore) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.ID] = player
	return nil
}

func (s *StatsStore) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player, nil
}

func (s *StatsStore) PlayersForTeam(ctx context.Context, teamID model.TeamID) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var players []*model.Player
	for _, p := range s.players {
		if p.TeamID == teamID {
			players = append(players, p)
		}
	}
	return players, nil
}

func (s *StatsStore) TopPlayersByPointsPerGame(ctx context.Context, limit int) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]*model.Player, 0, len(s.players))
	for _, p := range s.players {
		players = append(players, p)
	}
	sort.Slice(players, func(i, j int) bool {
		return players[i].PointsPerGame > players[j].PointsPerGame
	})
	if len(players) > limit {
		players = players[:limit]
	}
	return players, nil
}

func (s *StatsStore) SearchPlayers(ctx context.Context, query string, limit int) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	needle := strings.ToLower(query)
	var players []*model.Player
	for _, p := range s.players {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			players = append(players, p)
		}
	}
	// Stable result order for pagination-free clients
	sort.Slice(players, func(i, j int) bool {
		return players[i].ID < players[j].ID
	})
	if len(players) > limit {
		players = players[:limit]
	}
	return players, nil
}

// Team operations

func (s *StatsStore) SaveTeam(ctx context.Context, team *model.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teams[team.ID] = team
	return nil
}

func (s *StatsStore) GetTeam(ctx context.Context, id model.TeamID) (*model.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	team, ok := s.teams[id]
	if !ok {
		return nil, model.ErrTeamNotFound
	}
	return team, nil
}

func (s *StatsStore) TopTeamsByPointsPerGame(ctx context.Context, limit int) ([]*model.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	teams := make([]*model.Team, 0, len(s.teams))
	for _, t := range s.teams {
		teams = append(teams, t)
	}
	sort.Slice(teams, func(i, j int) bool {
		return teams[i].PointsPerGame > teams[j].PointsPerGame
	})
	if len(teams) > limit {
		teams = teams[:limit]
	}
	return teams, nil
}

func (s *StatsStore) SearchTeams(ctx context.Context, query string, limit int) ([]*model.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	needle := strings.ToLower(query)
	var teams []*model.Team
	for _, t := range s.teams {
		if strings.Contains(strings.ToLower(t.Name), needle) {
			teams = append(teams, t)
		}
	}
	sort.Slice(teams, func(i, j int) bool {
		return teams[i].ID < teams[j].ID
	})
	if len(teams) > limit {
		teams = teams[:limit]
	}
	return teams, nil
}

// Game operations

func (s *StatsStore) SaveGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.ID] = game
	return nil
}

func (s *StatsStore) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return game, nil
}

func (s *StatsStore) GamesForTeam(ctx context.Context, teamID model.TeamID) ([]*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var games []*model.Game
	for _, g := range s.games {
		if g.HomeTeam == teamID || g.AwayTeam == teamID {
			games = append(games, g)
		}
	}
	sort.Slice(games, func(i, j int) bool {
		return games[i].Round < games[j].Round
	})
	return games, nil
}

// Box score operations

func (s *StatsStore) SaveBoxScore(ctx context.Context, line *model.BoxScore) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := boxScoreKey{playerID: line.PlayerID, gameID: line.GameID}
	s.boxScores[key] = line
	return nil
}

func (s *StatsStore) BoxScoresForPlayer(ctx context.Context, playerID model.PlayerID) ([]model.BoxScore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var lines []model.BoxScore
	for key, line := range s.boxScores {
		if key.playerID == playerID {
			lines = append(lines, *line)
		}
	}
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].Round < lines[j].Round
	})
	return lines, nil
}

func (s *StatsStore) BoxScoresForGame(ctx context.Context, gameID model.GameID) ([]model.BoxScore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var lines []model.BoxScore
	for key, line := range s.boxScores {
		if key.gameID == gameID {
			lines = append(lines, *line)
		}
	}
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].PlayerID < lines[j].PlayerID
	})
	return lines, nil
}
