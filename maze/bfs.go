package maze

// BFSPathfinder walks the grid in level order with a FIFO frontier.
// Each frontier entry carries its accumulated path prefix instead of a
// backpointer map; memory stays bounded because a perfect maze has at
// most one simple path between any two cells. Guarantees a shortest
// path under uniform edge cost.
type BFSPathfinder struct{}

// NewBFSPathfinder creates a breadth-first-search pathfinder.
func NewBFSPathfinder() *BFSPathfinder {
	return &BFSPathfinder{}
}

// FindPath implements Pathfinder.
func (*BFSPathfinder) FindPath(g *Grid, start, end Position) []Position {
	if g.Degenerate() {
		return nil
	}

	type entry struct {
		pos  Position
		path []Position
	}

	queue := []entry{{pos: start, path: []Position{start}}}
	visited := map[Position]struct{}{start: {}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current.pos == end {
			return current.path
		}

		for _, d := range stepDirections {
			next := Position{X: current.pos.X + d.X, Y: current.pos.Y + d.Y}
			if _, seen := visited[next]; seen {
				continue
			}
			if !g.PassableAt(next) {
				continue
			}
			visited[next] = struct{}{}
			queue = append(queue, entry{pos: next, path: appendPath(current.path, next)})
		}
	}

	return nil
}
