package maze

import "fmt"

// CellKind classifies a single cell in the maze grid.
type CellKind byte

// Cell kinds. Path is a transient annotation produced only by the
// dead-end filler over its private working copy; generators never
// emit it.
const (
	Wall CellKind = iota
	Empty
	Start
	End
	Path
)

// Rune returns the one-character code used for text export.
func (k CellKind) Rune() rune {
	switch k {
	case Wall:
		return '#'
	case Empty:
		return ' '
	case Start:
		return 'S'
	case End:
		return 'E'
	case Path:
		return '.'
	default:
		return '?'
	}
}

// KindForRune maps an export code back to its cell kind.
func KindForRune(r rune) (CellKind, bool) {
	switch r {
	case '#':
		return Wall, true
	case ' ':
		return Empty, true
	case 'S':
		return Start, true
	case 'E':
		return End, true
	case '.':
		return Path, true
	default:
		return Wall, false
	}
}

// Passable reports whether a cell of this kind can be walked through.
func (k CellKind) Passable() bool {
	return k != Wall
}

// Position represents a cell position in the maze grid. It is a value
// type: two positions are equal iff their coordinates match, so it can
// be used directly as a map key in visited sets.
type Position struct {
	X int // Column index
	Y int // Row index
}

// String formats the position as "(x, y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// ManhattanTo returns the Manhattan distance to another position.
func (p Position) ManhattanTo(o Position) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
