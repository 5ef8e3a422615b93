package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// DefaultRecursiveMaxArea bounds the recursive generator. Recursion
// depth grows with the number of carved cells, so mazes above this
// area must use the iterative generator instead.
const DefaultRecursiveMaxArea = 101 * 101

var (
	ErrInvalidDimensions = errors.New("maze dimensions must be positive")
	ErrMazeTooLarge      = errors.New("maze area exceeds recursive generator limit")
)

// strideDirections are the four stride-2 carving offsets. Advancing
// two cells at a time leaves the cell in between as the wall to carve.
var strideDirections = [4]Position{{X: 2}, {Y: 2}, {X: -2}, {Y: -2}}

// Generator produces a fully generated maze grid. Implementations are
// stateless between calls: each Generate owns its own grid and random
// source, so instances are safe to reuse across mazes.
type Generator interface {
	// Generate returns a grid of the given dimensions with start and
	// end marked and a spanning set of corridors carved between them.
	// Dimensions must already be normalized to odd values by the
	// caller.
	Generate(width, height int, start, end Position) (*Grid, error)
}

// GeneratorOptions configures maze generation behavior.
type GeneratorOptions struct {
	// Seed for reproducible mazes (0 = time-based).
	Seed int64

	// MaxArea caps width*height for the recursive generator
	// (0 = DefaultRecursiveMaxArea). Ignored by the iterative one.
	MaxArea int
}

// DefaultGeneratorOptions returns standard generator options.
func DefaultGeneratorOptions() *GeneratorOptions {
	return &GeneratorOptions{
		Seed:    0,
		MaxArea: DefaultRecursiveMaxArea,
	}
}

// rng builds a fresh random source so that a fixed seed yields
// byte-identical grids on every Generate call.
func (o *GeneratorOptions) rng() *rand.Rand {
	seed := o.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// IterativeGenerator carves a maze by randomized backtracking over an
// explicit frontier stack. It supports unbounded maze sizes.
type IterativeGenerator struct {
	opts *GeneratorOptions
}

// NewIterativeGenerator creates an iterative backtracking generator
// with the given options.
func NewIterativeGenerator(opts *GeneratorOptions) *IterativeGenerator {
	if opts == nil {
		opts = DefaultGeneratorOptions()
	}
	return &IterativeGenerator{opts: opts}
}

// Generate carves the maze with an explicit stack: peek the top,
// step to a random unvisited stride-2 neighbor carving the wall in
// between, pop when no neighbor remains.
func (g *IterativeGenerator) Generate(width, height int, start, end Position) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	rng := g.opts.rng()
	grid := newWalledGrid(width, height, start, end)

	visited := map[Position]struct{}{start: {}}
	stack := []Position{start}

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		candidates := unvisitedStrideNeighbors(grid, current, visited)
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := candidates[rng.Intn(len(candidates))]
		carve(grid, wallBetween(current, next))
		carve(grid, next)
		visited[next] = struct{}{}
		stack = append(stack, next)
	}

	forceExit(grid, end, rng)
	return grid, nil
}

// RecursiveGenerator carves a maze by randomized backtracking on the
// native call stack. Recursion depth is bounded by the configured
// MaxArea; larger mazes are rejected rather than silently truncated.
type RecursiveGenerator struct {
	opts *GeneratorOptions
}

// NewRecursiveGenerator creates a call-stack-recursive backtracking
// generator with the given options.
func NewRecursiveGenerator(opts *GeneratorOptions) *RecursiveGenerator {
	if opts == nil {
		opts = DefaultGeneratorOptions()
	}
	return &RecursiveGenerator{opts: opts}
}

// Generate carves the maze recursively. Returns ErrMazeTooLarge when
// width*height exceeds the configured cap.
func (g *RecursiveGenerator) Generate(width, height int, start, end Position) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	maxArea := g.opts.MaxArea
	if maxArea <= 0 {
		maxArea = DefaultRecursiveMaxArea
	}
	if width*height > maxArea {
		return nil, fmt.Errorf("%w: %dx%d > %d cells", ErrMazeTooLarge, width, height, maxArea)
	}

	rng := g.opts.rng()
	grid := newWalledGrid(width, height, start, end)

	visited := map[Position]struct{}{start: {}}
	var walk func(current Position)
	walk = func(current Position) {
		for _, i := range rng.Perm(len(strideDirections)) {
			d := strideDirections[i]
			next := Position{X: current.X + d.X, Y: current.Y + d.Y}
			if !grid.InBounds(next.X, next.Y) {
				continue
			}
			if _, seen := visited[next]; seen {
				continue
			}
			carve(grid, wallBetween(current, next))
			carve(grid, next)
			visited[next] = struct{}{}
			walk(next)
		}
	}
	walk(start)

	forceExit(grid, end, rng)
	return grid, nil
}

// newWalledGrid allocates an all-wall grid with the terminals marked.
// Terminals outside the grid are skipped; a degenerate grid (1x1 has
// no interior) still generates, it just carries no start or end cell.
func newWalledGrid(width, height int, start, end Position) *Grid {
	grid := NewGrid(width, height)
	if grid.InBounds(start.X, start.Y) {
		grid.SetKind(start, Start)
	}
	if grid.InBounds(end.X, end.Y) {
		grid.SetKind(end, End)
	}
	return grid
}

// carve clears a cell to Empty. Terminals are never overwritten.
func carve(g *Grid, p Position) {
	if k := g.KindAt(p); k == Start || k == End {
		return
	}
	g.SetKind(p, Empty)
}

// wallBetween returns the cell exactly halfway between two stride-2
// neighbors.
func wallBetween(a, b Position) Position {
	return Position{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// unvisitedStrideNeighbors returns the in-bounds stride-2 neighbors of
// p that have not been visited yet.
func unvisitedStrideNeighbors(g *Grid, p Position, visited map[Position]struct{}) []Position {
	var result []Position
	for _, d := range strideDirections {
		next := Position{X: p.X + d.X, Y: p.Y + d.Y}
		if !g.InBounds(next.X, next.Y) {
			continue
		}
		if _, seen := visited[next]; seen {
			continue
		}
		result = append(result, next)
	}
	return result
}

// forceExit clears one wall adjacent to the end cell, choosing
// uniformly between its left and top neighbor. This runs after every
// carving pass so the end stays reachable even for degenerate grids
// where the backtracker had no room to reach it.
func forceExit(g *Grid, end Position, rng *rand.Rand) {
	if rng.Intn(2) == 0 && end.X > 0 {
		p := Position{X: end.X - 1, Y: end.Y}
		if g.InBounds(p.X, p.Y) && g.KindAt(p) == Wall {
			g.SetKind(p, Empty)
		}
	} else if end.Y > 0 {
		p := Position{X: end.X, Y: end.Y - 1}
		if g.InBounds(p.X, p.Y) && g.KindAt(p) == Wall {
			g.SetKind(p, Empty)
		}
	}
}
