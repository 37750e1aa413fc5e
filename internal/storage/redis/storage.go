package redis

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ao3101/eurostat/internal/model"
	"github.com/ao3101/eurostat/internal/storage"
)

// StatsStore is a Redis-backed implementation of the document store.
// Entities are JSON documents; membership lives in SET indexes and
// the points-per-game leaderboards in ZSETs so top-N reads stay on
// the store side.
type StatsStore struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis stats store
func New(cfg Config) (*StatsStore, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &StatsStore{client: client, cfg: cfg}, nil
}

// NewWithClient creates a stats store with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *StatsStore {
	return &StatsStore{client: client, cfg: cfg}
}

// Close closes the Redis connection
func (s *StatsStore) Close() error {
	return s.client.Close()
}

// Ensure StatsStore implements the interface
var _ storage.StatsStore = (*StatsStore)(nil)

// Player operations

func (s *StatsStore) SavePlayer(ctx context.Context, player *model.Player) error {
	data, err := json.Marshal(player)
	if err != nil {
		return err
	}

	// Pipeline the document write with its index updates
	pipe := s.client.Pipeline()
	pipe.Set(ctx, playerKey(player.ID), data, 0)
	pipe.SAdd(ctx, playersIndexKey(), string(player.ID))
	pipe.SAdd(ctx, teamPlayersIndexKey(player.TeamID), string(player.ID))
	pipe.ZAdd(ctx, playersByPPGKey(), redis.Z{Score: player.PointsPerGame, Member: string(player.ID)})
	_, err = pipe.Exec(ctx)
	return err
}

func (s *StatsStore) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	data, err := s.client.Get(ctx, playerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *StatsStore) PlayersForTeam(ctx context.Context, teamID model.TeamID) ([]*model.Player, error) {
	ids, err := s.client.SMembers(ctx, teamPlayersIndexKey(teamID)).Result()
	if err != nil {
		return nil, err
	}

	players, err := s.fetchPlayers(ctx, ids)
	if err != nil {
		return nil, err
	}

	// The index can hold stale members after a team change;
	// the document is authoritative
	filtered := players[:0]
	for _, p := range players {
		if p.TeamID == teamID {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (s *StatsStore) TopPlayersByPointsPerGame(ctx context.Context, limit int) ([]*model.Player, error) {
	ids, err := s.client.ZRevRange(ctx, playersByPPGKey(), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	return s.fetchPlayers(ctx, ids)
}

func (s *StatsStore) SearchPlayers(ctx context.Context, query string, limit int) ([]*model.Player, error) {
	ids, err := s.client.SMembers(ctx, playersIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	players, err := s.fetchPlayers(ctx, ids)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	matched := players[:0]
	for _, p := range players {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			matched = append(matched, p)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].ID < matched[j].ID
	})
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

// fetchPlayers bulk-loads player documents by id, skipping any that
// have disappeared since the index was read
func (s *StatsStore) fetchPlayers(ctx context.Context, ids []string) ([]*model.Player, error) {
	if len(ids) == 0 {
		return []*model.Player{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = playerKey(model.PlayerID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	players := make([]*model.Player, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var player model.Player
		if err := json.Unmarshal([]byte(val.(string)), &player); err != nil {
			continue
		}
		players = append(players, &player)
	}
	return players, nil
}

// Team operations

func (s *StatsStore) SaveTeam(ctx context.Context, team *model.Team) error {
	data, err := json.Marshal(team)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, teamKey(team.ID), data, 0)
	pipe.SAdd(ctx, teamsIndexKey(), string(team.ID))
	pipe.ZAdd(ctx, teamsByPPGKey(), redis.Z{Score: team.PointsPerGame, Member: string(team.ID)})
	_, err = pipe.Exec(ctx)
	return err
}

func (s *StatsStore) GetTeam(ctx context.Context, id model.TeamID) (*model.Team, error) {
	data, err := s.client.Get(ctx, teamKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrTeamNotFound
		}
		return nil, err
	}

	var team model.Team
	if err := json.Unmarshal(data, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

func (s *StatsStore) TopTeamsByPointsPerGame(ctx context.Context, limit int) ([]*model.Team, error) {
	ids, err := s.client.ZRevRange(ctx, teamsByPPGKey(), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	return s.fetchTeams(ctx, ids)
}

func (s *StatsStore) SearchTeams(ctx context.Context, query string, limit int) ([]*model.Team, error) {
	ids, err := s.client.SMembers(ctx, teamsIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	teams, err := s.fetchTeams(ctx, ids)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	matched := teams[:0]
	for _, t := range teams {
		if strings.Contains(strings.ToLower(t.Name), needle) {
			matched = append(matched, t)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].ID < matched[j].ID
	})
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (s *StatsStore) fetchTeams(ctx context.Context, ids []string) ([]*model.Team, error) {
	if len(ids) == 0 {
		return []*model.Team{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = teamKey(model.TeamID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	teams := make([]*model.Team, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var team model.Team
		if err := json.Unmarshal([]byte(val.(string)), &team); err != nil {
			continue
		}
		teams = append(teams, &team)
	}
	return teams, nil
}

// Game operations

func (s *StatsStore) SaveGame(ctx context.Context, game *model.Game) error {
	data, err := json.Marshal(game)
	if err != nil {
		return err
	}

	key := gameKey(game.ID)

	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, teamGamesIndexKey(game.HomeTeam), key)
	pipe.SAdd(ctx, teamGamesIndexKey(game.AwayTeam), key)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *StatsStore) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	data, err := s.client.Get(ctx, gameKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrGameNotFound
		}
		return nil, err
	}

	var game model.Game
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *StatsStore) GamesForTeam(ctx context.Context, teamID model.TeamID) ([]*model.Game, error) {
	keys, err := s.client.SMembers(ctx, teamGamesIndexKey(teamID)).Result()
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return []*model.Game{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	games := make([]*model.Game, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var game model.Game
		if err := json.Unmarshal([]byte(val.(string)), &game); err != nil {
			continue
		}
		games = append(games, &game)
	}

	sort.Slice(games, func(i, j int) bool {
		return games[i].Round < games[j].Round
	})
	return games, nil
}

// Box score operations

func (s *StatsStore) SaveBoxScore(ctx context.Context, line *model.BoxScore) error {
	data, err := json.Marshal(line)
	if err != nil {
		return err
	}

	key := boxScoreKey(line.PlayerID, line.GameID)

	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, playerBoxScoresIndexKey(line.PlayerID), key)
	pipe.SAdd(ctx, gameBoxScoresIndexKey(line.GameID), key)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *StatsStore) BoxScoresForPlayer(ctx context.Context, playerID model.PlayerID) ([]model.BoxScore, error) {
	lines, err := s.fetchBoxScores(ctx, playerBoxScoresIndexKey(playerID))
	if err != nil {
		return nil, err
	}
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].Round < lines[j].Round
	})
	return lines, nil
}

func (s *StatsStore) BoxScoresForGame(ctx context.Context, gameID model.GameID) ([]model.BoxScore, error) {
	lines, err := s.fetchBoxScores(ctx, gameBoxScoresIndexKey(gameID))
	if err != nil {
		return nil, err
	}
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].PlayerID < lines[j].PlayerID
	})
	return lines, nil
}

func (s *StatsStore) fetchBoxScores(ctx context.Context, indexKey string) ([]model.BoxScore, error) {
	keys, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return []model.BoxScore{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	lines := make([]model.BoxScore, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var line model.BoxScore
		if err := json.Unmarshal([]byte(val.(string)), &line); err != nil {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}
