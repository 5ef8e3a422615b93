package maze

// stepDirections are the four unit moves: right, down, left, up.
var stepDirections = [4]Position{{X: 1}, {Y: 1}, {X: -1}, {Y: -1}}

// Pathfinder finds a path between two cells of a generated grid.
// Implementations are stateless and never retain the grid.
type Pathfinder interface {
	// FindPath returns the positions from start to end inclusive, or
	// nil when no path exists. A nil result is the expected "no
	// solution" outcome, not an error; malformed (empty) grids also
	// yield nil rather than a panic.
	FindPath(g *Grid, start, end Position) []Position
}

// appendPath copies the prefix and appends next, so frontier entries
// never share backing arrays.
func appendPath(prefix []Position, next Position) []Position {
	path := make([]Position, len(prefix), len(prefix)+1)
	copy(path, prefix)
	return append(path, next)
}
