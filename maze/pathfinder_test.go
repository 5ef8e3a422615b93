package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allPathfinders() map[string]Pathfinder {
	return map[string]Pathfinder{
		"bfs":      NewBFSPathfinder(),
		"astar":    NewAStarPathfinder(),
		"dijkstra": NewDijkstraPathfinder(),
		"deadend":  NewDeadEndFiller(),
	}
}

// seededGrid generates a fixed 11x11 maze used across pathfinder tests.
func seededGrid(t *testing.T, seed int64) (*Grid, Position, Position) {
	t.Helper()
	start, end := terminals(11, 11)
	grid, err := NewIterativeGenerator(&GeneratorOptions{Seed: seed}).Generate(11, 11, start, end)
	require.NoError(t, err)
	return grid, start, end
}

func TestPathfinders_AgreeOnShortestLength(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		grid, start, end := seededGrid(t, seed)

		lengths := map[string]int{}
		for name, pf := range allPathfinders() {
			path := pf.FindPath(grid, start, end)
			require.NotNil(t, path, "%s found no path for seed %d", name, seed)
			assert.Equal(t, start, path[0], name)
			assert.Equal(t, end, path[len(path)-1], name)
			lengths[name] = len(path)
		}

		for name, length := range lengths {
			assert.Equal(t, lengths["bfs"], length, "%s disagrees with bfs on seed %d", name, seed)
		}
	}
}

func TestPathfinders_AdjacencyAndPassability(t *testing.T) {
	grid, start, end := seededGrid(t, 9)

	for name, pf := range allPathfinders() {
		t.Run(name, func(t *testing.T) {
			path := pf.FindPath(grid, start, end)
			require.NotNil(t, path)

			for i, p := range path {
				assert.True(t, grid.PassableAt(p), "position %s not passable", p)
				if i > 0 {
					assert.Equal(t, 1, p.ManhattanTo(path[i-1]),
						"positions %s and %s are not adjacent", path[i-1], p)
				}
			}
		})
	}
}

func TestPathfinders_StartEqualsEnd(t *testing.T) {
	grid, start, _ := seededGrid(t, 2)

	for name, pf := range allPathfinders() {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, []Position{start}, pf.FindPath(grid, start, start))
		})
	}
}

func TestPathfinders_DegenerateGrid(t *testing.T) {
	for name, pf := range allPathfinders() {
		t.Run(name, func(t *testing.T) {
			assert.Nil(t, pf.FindPath(nil, Position{}, Position{X: 1}))
			assert.Nil(t, pf.FindPath(NewGrid(0, 0), Position{}, Position{X: 1}))
		})
	}
}

func TestPathfinders_NoPath(t *testing.T) {
	// Two terminals with only walls in between.
	grid := NewGrid(7, 7)
	start := Position{X: 1, Y: 1}
	end := Position{X: 5, Y: 5}
	grid.SetKind(start, Start)
	grid.SetKind(end, End)

	for name, pf := range allPathfinders() {
		t.Run(name, func(t *testing.T) {
			assert.Nil(t, pf.FindPath(grid, start, end))
		})
	}
}

func TestDeadEndFiller_DoesNotMutateGrid(t *testing.T) {
	grid, start, end := seededGrid(t, 4)
	before := grid.Rows()

	require.NotNil(t, NewDeadEndFiller().FindPath(grid, start, end))
	assert.Equal(t, before, grid.Rows())
}

func TestDeadEndFiller_PrunesToSolutionCorridor(t *testing.T) {
	// A hand-built perfect maze: single corridor plus one dead-end
	// branch. The filler must ignore the branch and return the
	// corridor, identical to what BFS finds.
	rows := []string{
		"#####",
		"#S# #",
		"# # #",
		"#  E#",
		"#####",
	}
	grid, err := ParseGrid(rows)
	require.NoError(t, err)

	start := Position{X: 1, Y: 1}
	end := Position{X: 3, Y: 3}

	fillerPath := NewDeadEndFiller().FindPath(grid, start, end)
	bfsPath := NewBFSPathfinder().FindPath(grid, start, end)
	require.NotNil(t, fillerPath)
	assert.Equal(t, bfsPath, fillerPath)
}
