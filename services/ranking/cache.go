package ranking

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisCache mirrors leaderboard scores into sorted sets so the top of a
// board is one ZREVRANGE away.
type RedisCache struct {
	client *redis.Client
	prefix string
}

func NewRedisCache(addr string, appID string) *RedisCache {
	return NewRedisCacheFromClient(redis.NewClient(&redis.Options{
		Addr: addr,
	}), appID)
}

func NewRedisCacheFromClient(client *redis.Client, appID string) *RedisCache {
	return &RedisCache{
		client: client,
		prefix: fmt.Sprintf("%s:leaderboard:", appID),
	}
}

func (c *RedisCache) rewardsKey() string {
	return c.prefix + "rewards"
}

func (c *RedisCache) gameKey(gameID string) string {
	return c.prefix + "game:" + gameID
}

// builtKey marks a cache that holds every board. A flush or restart of
// Redis drops it together with the sorted sets.
func (c *RedisCache) builtKey() string {
	return c.prefix + "built"
}

// Ready reports whether a full Rebuild finished since Redis last lost its
// data. Until then the sorted sets may hold only the mirrored players.
func (c *RedisCache) Ready(ctx context.Context) (bool, error) {
	n, err := c.client.Exists(ctx, c.builtKey()).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (c *RedisCache) markBuilt(ctx context.Context) error {
	return c.client.Set(ctx, c.builtKey(), time.Now().UTC().Format(time.RFC3339), 0).Err()
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// raise only ever moves a member's score up, matching the ledger.
func (c *RedisCache) raise(ctx context.Context, key, userID string, score int64) error {
	return c.client.ZAddArgs(ctx, key, redis.ZAddArgs{
		GT: true,
		Members: []redis.Z{{
			Score:  float64(score),
			Member: userID,
		}},
	}).Err()
}

func (c *RedisCache) UpdateRewards(ctx context.Context, userID string, total int64) error {
	return c.raise(ctx, c.rewardsKey(), userID, total)
}

func (c *RedisCache) UpdateGame(ctx context.Context, gameID, userID string, level int64) error {
	return c.raise(ctx, c.gameKey(gameID), userID, level)
}

type Score struct {
	UserID string
	Value  int64
}

func (c *RedisCache) topN(ctx context.Context, key string, n int) ([]Score, error) {
	zs, err := c.client.ZRevRangeWithScores(ctx, key, 0, int64(n-1)).Result()
	if err != nil {
		return nil, err
	}
	out := make([]Score, 0, len(zs))
	for _, z := range zs {
		member, ok := z.Member.(string)
		if !ok {
			continue
		}
		out = append(out, Score{UserID: member, Value: int64(z.Score)})
	}
	return out, nil
}

func (c *RedisCache) TopRewards(ctx context.Context, n int) ([]Score, error) {
	return c.topN(ctx, c.rewardsKey(), n)
}

func (c *RedisCache) TopGame(ctx context.Context, gameID string, n int) ([]Score, error) {
	return c.topN(ctx, c.gameKey(gameID), n)
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
