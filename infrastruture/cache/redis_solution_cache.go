package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/labyrinth-api/domain"
	"github.com/beka-birhanu/labyrinth-api/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	solutionKeyFmt  = "maze:%s:solution"
	solveLockKeyFmt = "maze:%s:solve_lock"
)

// RedisSolutionCache stores solved maze paths in Redis with a TTL and
// serializes concurrent solves of the same maze with a redsync mutex.
type RedisSolutionCache struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisSolutionCache initializes a RedisSolutionCache with the provided Redis client and TTL.
func NewRedisSolutionCache(client *redis.Client, ttlSeconds int) (i.SolutionCache, error) {
	cache := &RedisSolutionCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	cache.locker = redsync.New(pool)
	return cache, nil
}

// Put stores a solution path under the maze's key with the cache TTL.
func (c *RedisSolutionCache) Put(ctx context.Context, mazeID uuid.UUID, path []dmn.Point) error {
	payload, err := json.Marshal(path)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.solutionKey(mazeID), payload, c.ttl).Err()
}

// Get returns the cached solution path, or i.ErrCacheMiss when absent.
func (c *RedisSolutionCache) Get(ctx context.Context, mazeID uuid.UUID) ([]dmn.Point, error) {
	payload, err := c.client.Get(ctx, c.solutionKey(mazeID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, i.ErrCacheMiss
		}
		return nil, err
	}

	var path []dmn.Point
	if err := json.Unmarshal(payload, &path); err != nil {
		return nil, err
	}
	return path, nil
}

// WithLock runs fn while holding the maze's solve lock.
func (c *RedisSolutionCache) WithLock(ctx context.Context, mazeID uuid.UUID, fn func() error) error {
	mutex := c.locker.NewMutex(fmt.Sprintf(solveLockKeyFmt, mazeID))
	if err := mutex.LockContext(ctx); err != nil {
		return err
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	return fn()
}

func (c *RedisSolutionCache) solutionKey(mazeID uuid.UUID) string {
	return fmt.Sprintf(solutionKeyFmt, mazeID)
}
