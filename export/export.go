// Package export renders read-only maze views: a line-oriented text
// form with one character per cell, and a structured record suitable
// for JSON serialization.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/beka-birhanu/labyrinth-api/maze"
)

// PositionRecord is the serialized form of a grid position.
type PositionRecord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// MazeRecord is the structured export of a maze: dimensions,
// terminals, the grid as rows of single-character codes, and the
// solution path when one exists (null otherwise).
type MazeRecord struct {
	Width         int              `json:"width"`
	Height        int              `json:"height"`
	StartPosition PositionRecord   `json:"start_position"`
	EndPosition   PositionRecord   `json:"end_position"`
	Grid          []string         `json:"grid"`
	SolutionPath  []PositionRecord `json:"solution_path"`
}

// Record builds the structured export of a grid and its optional
// solution path.
func Record(g *maze.Grid, start, end maze.Position, path []maze.Position) MazeRecord {
	record := MazeRecord{
		Width:         g.Width,
		Height:        g.Height,
		StartPosition: PositionRecord{X: start.X, Y: start.Y},
		EndPosition:   PositionRecord{X: end.X, Y: end.Y},
		Grid:          g.Rows(),
	}
	for _, p := range path {
		record.SolutionPath = append(record.SolutionPath, PositionRecord{X: p.X, Y: p.Y})
	}
	return record
}

// WriteText writes the maze as text: a short header followed by one
// line per row. When a path is given it is overlaid with the Path code
// on every non-terminal cell it crosses.
func WriteText(w io.Writer, g *maze.Grid, start, end maze.Position, path []maze.Position) error {
	if _, err := fmt.Fprintf(w, "Maze %dx%d\nStart: %s\nEnd: %s\n\n", g.Width, g.Height, start, end); err != nil {
		return err
	}

	onPath := make(map[maze.Position]struct{}, len(path))
	for _, p := range path {
		onPath[p] = struct{}{}
	}

	var b strings.Builder
	for y := 0; y < g.Height; y++ {
		b.Reset()
		for x := 0; x < g.Width; x++ {
			p := maze.Position{X: x, Y: y}
			kind := g.KindAt(p)
			if _, ok := onPath[p]; ok && kind != maze.Start && kind != maze.End {
				b.WriteRune(maze.Path.Rune())
			} else {
				b.WriteRune(kind.Rune())
			}
		}
		b.WriteByte('\n')
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}

// Text is WriteText into a string.
func Text(g *maze.Grid, start, end maze.Position, path []maze.Position) string {
	var b strings.Builder
	_ = WriteText(&b, g, start, end, path)
	return b.String()
}
