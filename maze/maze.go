/*
Package maze provides generation and solving of perfect rectangular
mazes.

A maze is a flat grid of typed cells (wall, empty, start, end) with odd
width and height; corridors are carved by randomized backtracking with
a stride of two cells so that a wall cell always separates two passable
ones. Solving is pluggable: breadth-first search, A*, Dijkstra and a
dead-end filler all implement the Pathfinder interface and agree on the
shortest path length over the same maze.
*/
package maze

import (
	"errors"
	"fmt"
)

var ErrGeneration = errors.New("maze generation failed")

// State tracks whether the maze currently holds a valid solution.
type State byte

const (
	// StateUnsolved means no cached solution exists for the grid.
	StateUnsolved State = iota
	// StateSolved means the cached solution is valid for the grid.
	StateSolved
)

// Maze owns one generated grid and at most one cached solution. The
// generator and pathfinder strategies are fixed at construction;
// regenerating replaces the grid and discards any previous solution.
// A Maze is not safe for concurrent use; each instance belongs to one
// caller at a time.
type Maze struct {
	width      int
	height     int
	start      Position
	end        Position
	grid       *Grid
	generator  Generator
	pathfinder Pathfinder
	solution   []Position
	state      State
}

// New normalizes the dimensions to odd values, fixes the terminals at
// (1,1) and (width-2, height-2), and generates the initial grid.
// Generator failures are propagated wrapped in ErrGeneration.
func New(width, height int, generator Generator, pathfinder Pathfinder) (*Maze, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	m := &Maze{
		width:      ensureOdd(width),
		height:     ensureOdd(height),
		generator:  generator,
		pathfinder: pathfinder,
	}
	m.start = Position{X: 1, Y: 1}
	m.end = Position{X: m.width - 2, Y: m.height - 2}

	if err := m.Regenerate(); err != nil {
		return nil, err
	}
	return m, nil
}

// ensureOdd bumps even dimensions by one. Carving advances two cells
// at a time, so an even dimension would leave the outermost row or
// column without a reliable wall ring.
func ensureOdd(v int) int {
	if v%2 == 1 {
		return v
	}
	return v + 1
}

// Regenerate replaces the grid with a freshly generated one and
// discards any cached solution.
func (m *Maze) Regenerate() error {
	grid, err := m.generator.Generate(m.width, m.height, m.start, m.end)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrGeneration, err)
	}
	m.grid = grid
	m.solution = nil
	m.state = StateUnsolved
	return nil
}

// Solve runs the configured pathfinder against the grid. On success
// the path is cached and returned; when no path exists the cached
// solution is cleared (never left stale) and nil is returned.
func (m *Maze) Solve() []Position {
	path := m.pathfinder.FindPath(m.grid, m.start, m.end)
	if path == nil {
		m.solution = nil
		m.state = StateUnsolved
		return nil
	}
	m.solution = path
	m.state = StateSolved
	return path
}

// SolutionPath returns the cached solution, or nil when unsolved.
func (m *Maze) SolutionPath() []Position { return m.solution }

// Grid returns the generated grid.
func (m *Maze) Grid() *Grid { return m.grid }

// Width returns the normalized (odd) width.
func (m *Maze) Width() int { return m.width }

// Height returns the normalized (odd) height.
func (m *Maze) Height() int { return m.height }

// Start returns the start position.
func (m *Maze) Start() Position { return m.start }

// End returns the end position.
func (m *Maze) End() Position { return m.end }

// State reports whether a valid cached solution exists.
func (m *Maze) State() State { return m.state }
