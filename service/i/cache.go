package i

import (
	"context"
	"errors"

	dmn "github.com/beka-birhanu/labyrinth-api/domain"
	"github.com/google/uuid"
)

// ErrCacheMiss is returned by SolutionCache.Get when no entry exists.
var ErrCacheMiss = errors.New("solution not in cache")

// SolutionCache stores solved paths keyed by maze ID.
type SolutionCache interface {
	// Put stores a solution with the cache's configured TTL.
	Put(ctx context.Context, mazeID uuid.UUID, path []dmn.Point) error

	// Get returns the cached solution or ErrCacheMiss.
	Get(ctx context.Context, mazeID uuid.UUID) ([]dmn.Point, error)

	// WithLock runs fn while holding a distributed lock for the maze,
	// so concurrent solve requests for the same maze are serialized.
	WithLock(ctx context.Context, mazeID uuid.UUID, fn func() error) error
}
