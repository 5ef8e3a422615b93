package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	dmn "github.com/beka-birhanu/labyrinth-api/domain"
	"github.com/beka-birhanu/labyrinth-api/export"
	"github.com/beka-birhanu/labyrinth-api/maze"
	"github.com/beka-birhanu/labyrinth-api/service/i"
	"github.com/google/uuid"
)

const (
	defaultMaxDimension = 101
	minDimension        = 3
)

var (
	ErrDimensionOutOfRange = errors.New("maze dimension out of range")
	ErrUnsolvable          = errors.New("maze has no solution")
)

// MazeOptions configures the maze service.
type MazeOptions struct {
	// MaxDimension caps requested width and height (pre-normalization).
	MaxDimension int

	// RecursiveMaxArea caps width*height for the recursive generator
	// (0 = maze.DefaultRecursiveMaxArea).
	RecursiveMaxArea int
}

// CreateParams are the caller-supplied maze parameters.
type CreateParams struct {
	Width      int
	Height     int
	Generator  string
	Pathfinder string
	Seed       int64
}

// MazeService validates requested parameters, drives the maze core and
// persists the outcome. Solutions are cached in the solution cache and
// written back to the repository.
type MazeService struct {
	repo   i.MazeRepo
	cache  i.SolutionCache
	logger i.Logger
	opts   *MazeOptions
}

// NewMazeService creates a MazeService with the given collaborators.
func NewMazeService(repo i.MazeRepo, cache i.SolutionCache, logger i.Logger, opts *MazeOptions) (*MazeService, error) {
	if opts == nil {
		opts = &MazeOptions{}
	}
	if opts.MaxDimension <= 0 {
		opts.MaxDimension = defaultMaxDimension
	}

	return &MazeService{
		repo:   repo,
		cache:  cache,
		logger: logger,
		opts:   opts,
	}, nil
}

// Create generates a maze for the given owner and persists its record.
func (s *MazeService) Create(ctx context.Context, ownerID uuid.UUID, params CreateParams) (*dmn.MazeRecord, error) {
	if err := s.validateDimensions(params.Width, params.Height); err != nil {
		return nil, err
	}

	generator, err := ResolveGenerator(params.Generator, params.Seed, s.opts.RecursiveMaxArea)
	if err != nil {
		return nil, err
	}
	pathfinder, err := ResolvePathfinder(params.Pathfinder)
	if err != nil {
		return nil, err
	}

	m, err := maze.New(params.Width, params.Height, generator, pathfinder)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Generating %dx%d maze: %v", params.Width, params.Height, err))
		return nil, err
	}

	record := &dmn.MazeRecord{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		Width:      m.Width(),
		Height:     m.Height(),
		Start:      dmn.Point{X: m.Start().X, Y: m.Start().Y},
		End:        dmn.Point{X: m.End().X, Y: m.End().Y},
		Rows:       m.Grid().Rows(),
		Generator:  normalizedGeneratorName(params.Generator),
		Pathfinder: normalizedPathfinderName(params.Pathfinder),
		Seed:       params.Seed,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.Save(ctx, record); err != nil {
		s.logger.Error(fmt.Sprintf("Saving maze %s: %v", record.ID, err))
		return nil, err
	}

	s.logger.Info(fmt.Sprintf("Maze created: ID=%s size=%dx%d generator=%s", record.ID, record.Width, record.Height, record.Generator))
	return record, nil
}

// ByID returns the stored maze record.
func (s *MazeService) ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	return s.repo.ByID(ctx, id)
}

// ByOwner returns all mazes created by the given user.
func (s *MazeService) ByOwner(ctx context.Context, ownerID uuid.UUID) ([]*dmn.MazeRecord, error) {
	return s.repo.ByOwner(ctx, ownerID)
}

// Solve returns the solution path for a stored maze, computing and
// caching it on first request. Returns ErrUnsolvable when the maze's
// pathfinder finds no path.
func (s *MazeService) Solve(ctx context.Context, id uuid.UUID) ([]dmn.Point, error) {
	if path, err := s.cache.Get(ctx, id); err == nil {
		return path, nil
	} else if !errors.Is(err, i.ErrCacheMiss) {
		s.logger.Warning(fmt.Sprintf("Solution cache lookup for %s: %v", id, err))
	}

	var solution []dmn.Point
	err := s.cache.WithLock(ctx, id, func() error {
		// Another request may have solved it while we waited.
		if path, err := s.cache.Get(ctx, id); err == nil {
			solution = path
			return nil
		}

		record, err := s.repo.ByID(ctx, id)
		if err != nil {
			return err
		}

		path, err := s.solveRecord(record)
		if err != nil {
			return err
		}
		solution = path

		record.Solution = path
		if err := s.repo.Save(ctx, record); err != nil {
			s.logger.Warning(fmt.Sprintf("Persisting solution for %s: %v", id, err))
		}
		if err := s.cache.Put(ctx, id, path); err != nil {
			s.logger.Warning(fmt.Sprintf("Caching solution for %s: %v", id, err))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return solution, nil
}

// RenderText renders a stored maze as text, optionally overlaying its
// solution (solving first when needed).
func (s *MazeService) RenderText(ctx context.Context, id uuid.UUID, includeSolution bool) (string, error) {
	record, err := s.repo.ByID(ctx, id)
	if err != nil {
		return "", err
	}

	grid, start, end, err := rebuildGrid(record)
	if err != nil {
		return "", err
	}

	var path []maze.Position
	if includeSolution {
		points, err := s.Solve(ctx, id)
		if err != nil {
			return "", err
		}
		for _, pt := range points {
			path = append(path, maze.Position{X: pt.X, Y: pt.Y})
		}
	}

	return export.Text(grid, start, end, path), nil
}

// Export returns the structured record of a stored maze.
func (s *MazeService) Export(ctx context.Context, id uuid.UUID) (export.MazeRecord, error) {
	record, err := s.repo.ByID(ctx, id)
	if err != nil {
		return export.MazeRecord{}, err
	}

	grid, start, end, err := rebuildGrid(record)
	if err != nil {
		return export.MazeRecord{}, err
	}

	var path []maze.Position
	for _, pt := range record.Solution {
		path = append(path, maze.Position{X: pt.X, Y: pt.Y})
	}
	return export.Record(grid, start, end, path), nil
}

// solveRecord reconstructs the stored grid and runs the maze's
// configured pathfinder over it.
func (s *MazeService) solveRecord(record *dmn.MazeRecord) ([]dmn.Point, error) {
	grid, start, end, err := rebuildGrid(record)
	if err != nil {
		return nil, err
	}

	pathfinder, err := ResolvePathfinder(record.Pathfinder)
	if err != nil {
		return nil, err
	}

	path := pathfinder.FindPath(grid, start, end)
	if path == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsolvable, record.ID)
	}

	points := make([]dmn.Point, len(path))
	for idx, p := range path {
		points[idx] = dmn.Point{X: p.X, Y: p.Y}
	}
	return points, nil
}

func (s *MazeService) validateDimensions(width, height int) error {
	for _, v := range []int{width, height} {
		if v < minDimension || v > s.opts.MaxDimension {
			return fmt.Errorf("%w: %d not in [%d, %d]", ErrDimensionOutOfRange, v, minDimension, s.opts.MaxDimension)
		}
	}
	return nil
}

func rebuildGrid(record *dmn.MazeRecord) (*maze.Grid, maze.Position, maze.Position, error) {
	grid, err := maze.ParseGrid(record.Rows)
	if err != nil {
		return nil, maze.Position{}, maze.Position{}, fmt.Errorf("stored maze %s is corrupt: %w", record.ID, err)
	}
	start := maze.Position{X: record.Start.X, Y: record.Start.Y}
	end := maze.Position{X: record.End.X, Y: record.End.Y}
	return grid, start, end, nil
}

func normalizedGeneratorName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return GeneratorIterative
	}
	return name
}

func normalizedPathfinderName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return PathfinderBFS
	}
	return name
}
