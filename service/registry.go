package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beka-birhanu/labyrinth-api/maze"
)

// Strategy names accepted by the API. The sets are closed: resolving
// anything else is a validation error of this layer, never of the
// maze core.
const (
	GeneratorIterative = "iterative"
	GeneratorRecursive = "recursive"

	PathfinderBFS      = "bfs"
	PathfinderAStar    = "astar"
	PathfinderDijkstra = "dijkstra"
	PathfinderDeadEnd  = "deadend"
)

var (
	ErrUnknownGenerator  = errors.New("unknown generator strategy")
	ErrUnknownPathfinder = errors.New("unknown pathfinder strategy")
)

// GeneratorNames lists the accepted generator strategy names.
func GeneratorNames() []string {
	return []string{GeneratorIterative, GeneratorRecursive}
}

// PathfinderNames lists the accepted pathfinder strategy names.
func PathfinderNames() []string {
	return []string{PathfinderBFS, PathfinderAStar, PathfinderDijkstra, PathfinderDeadEnd}
}

// ResolveGenerator maps a strategy name to a generator seeded with the
// given seed (0 = random). Names are case-insensitive.
func ResolveGenerator(name string, seed int64, recursiveMaxArea int) (maze.Generator, error) {
	opts := &maze.GeneratorOptions{Seed: seed, MaxArea: recursiveMaxArea}
	switch strings.ToLower(strings.TrimSpace(name)) {
	case GeneratorIterative, "":
		return maze.NewIterativeGenerator(opts), nil
	case GeneratorRecursive:
		return maze.NewRecursiveGenerator(opts), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGenerator, name)
	}
}

// ResolvePathfinder maps a strategy name to a pathfinder. Names are
// case-insensitive.
func ResolvePathfinder(name string) (maze.Pathfinder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case PathfinderBFS, "":
		return maze.NewBFSPathfinder(), nil
	case PathfinderAStar:
		return maze.NewAStarPathfinder(), nil
	case PathfinderDijkstra:
		return maze.NewDijkstraPathfinder(), nil
	case PathfinderDeadEnd:
		return maze.NewDeadEndFiller(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPathfinder, name)
	}
}
