package results

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/board-bot-discord/internal/domain/game"
	boarderr "github.com/KirkDiggler/board-bot-discord/internal/errors"
)

const (
	resultKeyPrefix      = "result:"
	recentKeyPrefix      = "results:"
	leaderboardKeyPrefix = "leaderboard:"
	playerNamesKey       = "player:names"

	defaultResultTTL = 30 * 24 * time.Hour
	defaultMaxRecent = 50
)

// Data is the stored form of a result
type Data struct {
	GameID    string         `json:"game_id"`
	Ruleset   string         `json:"ruleset"`
	Winners   []string       `json:"winners"`
	Standings []StandingData `json:"standings"`
	Reason    string         `json:"reason"`
	Rounds    int            `json:"rounds"`
	StartedAt time.Time      `json:"started_at"`
	EndedAt   time.Time      `json:"ended_at"`
}

// StandingData is the stored form of a standing
type StandingData struct {
	PlayerID   string `json:"player_id"`
	Name       string `json:"name"`
	Label      string `json:"label"`
	Currency   int    `json:"currency"`
	Properties int    `json:"properties"`
	Eliminated bool   `json:"eliminated"`
	Winner     bool   `json:"winner"`
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client    redis.UniversalClient
	ResultTTL time.Duration
	MaxRecent int
}

type redisRepository struct {
	client    redis.UniversalClient
	resultTTL time.Duration
	maxRecent int
}

// NewRedisRepository creates a Redis-backed results repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}

	ttl := cfg.ResultTTL
	if ttl <= 0 {
		ttl = defaultResultTTL
	}
	maxRecent := cfg.MaxRecent
	if maxRecent <= 0 {
		maxRecent = defaultMaxRecent
	}

	return &redisRepository{
		client:    cfg.Client,
		resultTTL: ttl,
		maxRecent: maxRecent,
	}
}

// NewRedis creates a Redis-backed results repository with default settings
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{Client: client})
}

func resultKey(gameID string) string {
	return resultKeyPrefix + gameID
}

func recentKey(ruleset string) string {
	return recentKeyPrefix + ruleset
}

func leaderboardKey(ruleset string) string {
	return leaderboardKeyPrefix + ruleset
}

func (r *redisRepository) Save(ctx context.Context, result *game.Result) error {
	if err := validate(result); err != nil {
		return err
	}

	data, err := json.Marshal(toData(result))
	if err != nil {
		return boarderr.Wrap(err, "failed to serialize result")
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, resultKey(result.GameID), string(data), r.resultTTL)
	pipe.LPush(ctx, recentKey(result.Ruleset), result.GameID)
	pipe.LTrim(ctx, recentKey(result.Ruleset), 0, int64(r.maxRecent-1))
	for _, winner := range result.Winners {
		pipe.ZIncrBy(ctx, leaderboardKey(result.Ruleset), 1, winner)
	}
	for _, standing := range result.Standings {
		pipe.HSet(ctx, playerNamesKey, standing.PlayerID, standing.Name)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return boarderr.Wrapf(err, "failed to save result %s", result.GameID)
	}
	return nil
}

func (r *redisRepository) Get(ctx context.Context, gameID string) (*game.Result, error) {
	raw, err := r.client.Get(ctx, resultKey(gameID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, boarderr.NotFoundf("result %s not found", gameID)
		}
		return nil, boarderr.Wrapf(err, "failed to get result %s", gameID)
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, boarderr.Wrapf(err, "failed to deserialize result %s", gameID)
	}
	return fromData(&data), nil
}

// ListRecent loads the newest results in parallel. Ids whose result has
// expired are skipped.
func (r *redisRepository) ListRecent(ctx context.Context, ruleset string, limit int) ([]*game.Result, error) {
	if limit <= 0 {
		limit = 10
	}

	ids, err := r.client.LRange(ctx, recentKey(ruleset), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, boarderr.Wrapf(err, "failed to list results for %s", ruleset)
	}

	loaded := make([]*game.Result, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			result, err := r.Get(gctx, id)
			if err != nil {
				if boarderr.IsNotFound(err) {
					return nil
				}
				return err
			}
			loaded[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]*game.Result, 0, len(loaded))
	for _, result := range loaded {
		if result != nil {
			out = append(out, result)
		}
	}
	return out, nil
}

func (r *redisRepository) Top(ctx context.Context, ruleset string, limit int) ([]*Entry, error) {
	if limit <= 0 {
		limit = 10
	}

	scores, err := r.client.ZRevRangeWithScores(ctx, leaderboardKey(ruleset), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, boarderr.Wrapf(err, "failed to read leaderboard for %s", ruleset)
	}
	if len(scores) == 0 {
		return []*Entry{}, nil
	}

	ids := make([]string, len(scores))
	for i, z := range scores {
		ids[i], _ = z.Member.(string)
	}

	names, err := r.client.HMGet(ctx, playerNamesKey, ids...).Result()
	if err != nil {
		return nil, boarderr.Wrap(err, "failed to read player names")
	}

	entries := make([]*Entry, len(scores))
	for i, z := range scores {
		name := ids[i]
		if i < len(names) {
			if n, ok := names[i].(string); ok && n != "" {
				name = n
			}
		}
		entries[i] = &Entry{PlayerID: ids[i], Name: name, Wins: int(z.Score)}
	}
	return entries, nil
}

func toData(result *game.Result) *Data {
	standings := make([]StandingData, len(result.Standings))
	for i, s := range result.Standings {
		standings[i] = StandingData{
			PlayerID:   s.PlayerID,
			Name:       s.Name,
			Label:      s.Label,
			Currency:   s.Currency,
			Properties: s.Properties,
			Eliminated: s.Eliminated,
			Winner:     s.Winner,
		}
	}

	return &Data{
		GameID:    result.GameID,
		Ruleset:   result.Ruleset,
		Winners:   append([]string(nil), result.Winners...),
		Standings: standings,
		Reason:    result.Reason,
		Rounds:    result.Rounds,
		StartedAt: result.StartedAt,
		EndedAt:   result.EndedAt,
	}
}

func fromData(data *Data) *game.Result {
	standings := make([]game.Standing, len(data.Standings))
	for i, s := range data.Standings {
		standings[i] = game.Standing{
			PlayerID:   s.PlayerID,
			Name:       s.Name,
			Label:      s.Label,
			Currency:   s.Currency,
			Properties: s.Properties,
			Eliminated: s.Eliminated,
			Winner:     s.Winner,
		}
	}

	return &game.Result{
		GameID:    data.GameID,
		Ruleset:   data.Ruleset,
		Winners:   append([]string(nil), data.Winners...),
		Standings: standings,
		Reason:    data.Reason,
		Rounds:    data.Rounds,
		StartedAt: data.StartedAt,
		EndedAt:   data.EndedAt,
	}
}
