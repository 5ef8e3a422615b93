package maze

import (
	"errors"
	"strings"
)

var (
	ErrEmptyGrid       = errors.New("grid has no cells")
	ErrRaggedGrid      = errors.New("grid rows have unequal lengths")
	ErrUnknownCellCode = errors.New("unknown cell code")
)

// Grid is a rectangular maze grid stored as a flat row-major slice of
// cell kinds, indexed y*Width+x. Positions are values, not pointers
// into the grid, which keeps cloning cheap for working copies.
type Grid struct {
	Width  int
	Height int
	cells  []CellKind
}

// NewGrid allocates a width x height grid with every cell set to Wall.
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		Width:  width,
		Height: height,
		cells:  make([]CellKind, width*height),
	}
}

// ParseGrid rebuilds a grid from rows of single-character cell codes,
// the inverse of Rows.
func ParseGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	width := len([]rune(rows[0]))
	g := NewGrid(width, len(rows))
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, ErrRaggedGrid
		}
		for x, r := range runes {
			kind, ok := KindForRune(r)
			if !ok {
				return nil, ErrUnknownCellCode
			}
			g.cells[y*width+x] = kind
		}
	}
	return g, nil
}

// InBounds reports whether (x, y) is inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// KindAt returns the kind of the cell at p. The caller is responsible
// for bounds-checking first.
func (g *Grid) KindAt(p Position) CellKind {
	return g.cells[p.Y*g.Width+p.X]
}

// SetKind sets the kind of the cell at p.
func (g *Grid) SetKind(p Position, k CellKind) {
	g.cells[p.Y*g.Width+p.X] = k
}

// PassableAt reports whether p is in bounds and passable.
func (g *Grid) PassableAt(p Position) bool {
	return g.InBounds(p.X, p.Y) && g.KindAt(p).Passable()
}

// Degenerate reports whether the grid has no usable cells.
func (g *Grid) Degenerate() bool {
	return g == nil || g.Width == 0 || g.Height == 0
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]CellKind, len(g.cells))
	copy(cells, g.cells)
	return &Grid{Width: g.Width, Height: g.Height, cells: cells}
}

// Rows returns the grid as rows of single-character cell codes.
func (g *Grid) Rows() []string {
	rows := make([]string, g.Height)
	var b strings.Builder
	for y := 0; y < g.Height; y++ {
		b.Reset()
		for x := 0; x < g.Width; x++ {
			b.WriteRune(g.cells[y*g.Width+x].Rune())
		}
		rows[y] = b.String()
	}
	return rows
}

// String provides a textual representation of the grid.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}
