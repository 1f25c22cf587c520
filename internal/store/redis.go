// apps/go-server/internal/store/redis.go
//
// Redis implementation of Store.
// Each game is a JSON value under endgame:game:<id> whose TTL is refreshed on
// every save; Redis expiry replaces Sweep.

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/robalobadob/endgame/apps/go-server/internal/game"
)

const redisKeyPrefix = "endgame:game:"

// Redis stores each game as a JSON value that expires after ttl of inactivity.
type Redis struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedis wraps an existing client. A zero ttl keeps keys forever.
func NewRedis(rdb *redis.Client, ttl time.Duration) *Redis {
	return &Redis{rdb: rdb, ttl: ttl}
}

// DialRedis connects to addr and checks the connection with PING.
func DialRedis(ctx context.Context, addr, password string, db int, ttl time.Duration) (*Redis, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return NewRedis(rdb, ttl), nil
}

// Close releases the client.
func (r *Redis) Close() error { return r.rdb.Close() }

func redisKey(id string) string { return redisKeyPrefix + id }

func (r *Redis) Save(ctx context.Context, g *game.Game) error {
	b, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("encode game %s: %w", g.ID, err)
	}
	if err := r.rdb.Set(ctx, redisKey(g.ID), b, r.ttl).Err(); err != nil {
		return fmt.Errorf("save game %s: %w", g.ID, err)
	}
	return nil
}

func (r *Redis) Get(ctx context.Context, id string) (*game.Game, error) {
	b, err := r.rdb.Get(ctx, redisKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get game %s: %w", id, err)
	}
	var g game.Game
	if err := json.Unmarshal(b, &g); err != nil {
		return nil, fmt.Errorf("decode game %s: %w", id, err)
	}
	return &g, nil
}

func (r *Redis) Delete(ctx context.Context, id string) error {
	if err := r.rdb.Del(ctx, redisKey(id)).Err(); err != nil {
		return fmt.Errorf("delete game %s: %w", id, err)
	}
	return nil
}

// Sweep is a no-op: keys expire on their own.
func (r *Redis) Sweep(ctx context.Context, cutoff time.Time) (int, error) {
	return 0, nil
}
