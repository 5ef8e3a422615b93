package export

import (
	"encoding/json"
	"testing"

	"github.com/beka-birhanu/labyrinth-api/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureGrid(t *testing.T) (*maze.Grid, maze.Position, maze.Position) {
	t.Helper()
	grid, err := maze.ParseGrid([]string{
		"#####",
		"#S# #",
		"# # #",
		"#  E#",
		"#####",
	})
	require.NoError(t, err)
	return grid, maze.Position{X: 1, Y: 1}, maze.Position{X: 3, Y: 3}
}

func TestWriteText(t *testing.T) {
	grid, start, end := fixtureGrid(t)

	t.Run("without solution", func(t *testing.T) {
		expected := "Maze 5x5\n" +
			"Start: (1, 1)\n" +
			"End: (3, 3)\n" +
			"\n" +
			"#####\n" +
			"#S# #\n" +
			"# # #\n" +
			"#  E#\n" +
			"#####\n"
		assert.Equal(t, expected, Text(grid, start, end, nil))
	})

	t.Run("with solution overlay", func(t *testing.T) {
		path := maze.NewBFSPathfinder().FindPath(grid, start, end)
		require.NotNil(t, path)

		expected := "Maze 5x5\n" +
			"Start: (1, 1)\n" +
			"End: (3, 3)\n" +
			"\n" +
			"#####\n" +
			"#S# #\n" +
			"#.# #\n" +
			"#..E#\n" +
			"#####\n"
		assert.Equal(t, expected, Text(grid, start, end, path))
	})
}

func TestRecord(t *testing.T) {
	grid, start, end := fixtureGrid(t)

	t.Run("unsolved serializes a null path", func(t *testing.T) {
		data, err := json.Marshal(Record(grid, start, end, nil))
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.EqualValues(t, 5, decoded["width"])
		assert.EqualValues(t, 5, decoded["height"])
		assert.Nil(t, decoded["solution_path"])
	})

	t.Run("round-trips the grid rows", func(t *testing.T) {
		record := Record(grid, start, end, []maze.Position{start, {X: 1, Y: 2}})
		assert.Equal(t, grid.Rows(), record.Grid)
		assert.Equal(t, PositionRecord{X: 1, Y: 1}, record.StartPosition)
		assert.Equal(t, PositionRecord{X: 3, Y: 3}, record.EndPosition)
		require.Len(t, record.SolutionPath, 2)
		assert.Equal(t, PositionRecord{X: 1, Y: 2}, record.SolutionPath[1])

		parsed, err := maze.ParseGrid(record.Grid)
		require.NoError(t, err)
		assert.Equal(t, grid.Rows(), parsed.Rows())
	})
}
