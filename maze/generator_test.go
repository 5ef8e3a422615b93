package maze

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countPassable returns the number of passable cells in the grid.
func countPassable(g *Grid) int {
	count := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.KindAt(Position{X: x, Y: y}).Passable() {
				count++
			}
		}
	}
	return count
}

// countEdges counts adjacent passable pairs, each pair once (right and
// down neighbors only).
func countEdges(g *Grid) int {
	count := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := Position{X: x, Y: y}
			if !g.KindAt(p).Passable() {
				continue
			}
			if g.PassableAt(Position{X: x + 1, Y: y}) {
				count++
			}
			if g.PassableAt(Position{X: x, Y: y + 1}) {
				count++
			}
		}
	}
	return count
}

func terminals(width, height int) (Position, Position) {
	return Position{X: 1, Y: 1}, Position{X: width - 2, Y: height - 2}
}

func TestIterativeGenerator(t *testing.T) {
	t.Run("deterministic for a fixed seed", func(t *testing.T) {
		gen := NewIterativeGenerator(&GeneratorOptions{Seed: 42})
		start, end := terminals(11, 11)

		first, err := gen.Generate(11, 11, start, end)
		require.NoError(t, err)
		second, err := gen.Generate(11, 11, start, end)
		require.NoError(t, err)

		assert.Equal(t, first.Rows(), second.Rows())
	})

	t.Run("different seeds differ", func(t *testing.T) {
		start, end := terminals(21, 21)
		a, err := NewIterativeGenerator(&GeneratorOptions{Seed: 1}).Generate(21, 21, start, end)
		require.NoError(t, err)
		b, err := NewIterativeGenerator(&GeneratorOptions{Seed: 2}).Generate(21, 21, start, end)
		require.NoError(t, err)

		assert.NotEqual(t, a.Rows(), b.Rows())
	})

	t.Run("terminals keep their kinds", func(t *testing.T) {
		start, end := terminals(15, 9)
		grid, err := NewIterativeGenerator(&GeneratorOptions{Seed: 7}).Generate(15, 9, start, end)
		require.NoError(t, err)

		assert.Equal(t, Start, grid.KindAt(start))
		assert.Equal(t, End, grid.KindAt(end))
	})

	t.Run("rejects non-positive dimensions", func(t *testing.T) {
		_, err := NewIterativeGenerator(nil).Generate(0, 11, Position{}, Position{})
		assert.ErrorIs(t, err, ErrInvalidDimensions)
	})

	t.Run("terminates on degenerate sizes", func(t *testing.T) {
		for _, size := range []int{1, 3} {
			grid, err := NewIterativeGenerator(&GeneratorOptions{Seed: 3}).Generate(size, size, Position{X: 1, Y: 1}, Position{X: size - 2, Y: size - 2})
			require.NoError(t, err, "size %d", size)
			require.NotNil(t, grid)
		}
	})

	// A 1x1 grid has no interior: the terminals fall outside it and
	// the result is a single wall cell.
	t.Run("one-cell grid stays walled", func(t *testing.T) {
		grid, err := NewIterativeGenerator(&GeneratorOptions{Seed: 3}).Generate(1, 1, Position{X: 1, Y: 1}, Position{X: -1, Y: -1})
		require.NoError(t, err)
		assert.Equal(t, []string{"#"}, grid.Rows())
	})
}

func TestRecursiveGenerator(t *testing.T) {
	t.Run("deterministic for a fixed seed", func(t *testing.T) {
		gen := NewRecursiveGenerator(&GeneratorOptions{Seed: 42})
		start, end := terminals(11, 11)

		first, err := gen.Generate(11, 11, start, end)
		require.NoError(t, err)
		second, err := gen.Generate(11, 11, start, end)
		require.NoError(t, err)

		assert.Equal(t, first.Rows(), second.Rows())
	})

	t.Run("rejects mazes above the area cap", func(t *testing.T) {
		gen := NewRecursiveGenerator(&GeneratorOptions{Seed: 1, MaxArea: 100})
		start, end := terminals(11, 11)

		_, err := gen.Generate(11, 11, start, end)
		assert.ErrorIs(t, err, ErrMazeTooLarge)
	})

	t.Run("terminals keep their kinds", func(t *testing.T) {
		start, end := terminals(13, 13)
		grid, err := NewRecursiveGenerator(&GeneratorOptions{Seed: 5}).Generate(13, 13, start, end)
		require.NoError(t, err)

		assert.Equal(t, Start, grid.KindAt(start))
		assert.Equal(t, End, grid.KindAt(end))
	})

	t.Run("terminates on degenerate sizes", func(t *testing.T) {
		for _, size := range []int{1, 3} {
			grid, err := NewRecursiveGenerator(&GeneratorOptions{Seed: 3}).Generate(size, size, Position{X: 1, Y: 1}, Position{X: size - 2, Y: size - 2})
			require.NoError(t, err, "size %d", size)
			require.NotNil(t, grid)
		}
	})
}

func TestGenerators_Connectivity(t *testing.T) {
	bfs := NewBFSPathfinder()
	sizes := [][2]int{{5, 5}, {7, 11}, {11, 7}, {21, 21}}

	for name, build := range map[string]func(seed int64) Generator{
		"iterative": func(seed int64) Generator { return NewIterativeGenerator(&GeneratorOptions{Seed: seed}) },
		"recursive": func(seed int64) Generator { return NewRecursiveGenerator(&GeneratorOptions{Seed: seed}) },
	} {
		t.Run(name, func(t *testing.T) {
			for _, size := range sizes {
				for seed := int64(1); seed <= 10; seed++ {
					start, end := terminals(size[0], size[1])
					grid, err := build(seed).Generate(size[0], size[1], start, end)
					require.NoError(t, err)

					path := bfs.FindPath(grid, start, end)
					require.NotNil(t, path, "%dx%d seed %d: end unreachable", size[0], size[1], seed)
				}
			}
		})
	}
}

// The carved corridors form a spanning tree; the forced exit step can
// add at most one extra edge next to the end when the random pick hits
// a wall the backtracker left in place.
func TestGenerators_TreeProperty(t *testing.T) {
	for name, build := range map[string]func(seed int64) Generator{
		"iterative": func(seed int64) Generator { return NewIterativeGenerator(&GeneratorOptions{Seed: seed}) },
		"recursive": func(seed int64) Generator { return NewRecursiveGenerator(&GeneratorOptions{Seed: seed}) },
	} {
		t.Run(name, func(t *testing.T) {
			perfect := 0
			for seed := int64(1); seed <= 40; seed++ {
				start, end := terminals(11, 11)
				grid, err := build(seed).Generate(11, 11, start, end)
				require.NoError(t, err)

				cells := countPassable(grid)
				edges := countEdges(grid)
				require.Contains(t, []int{cells - 1, cells}, edges,
					fmt.Sprintf("seed %d: %d cells, %d edges", seed, cells, edges))
				if edges == cells-1 {
					perfect++
				}
			}
			assert.Positive(t, perfect, "no seed produced a perfect maze")
		})
	}
}
