package maze

// DeadEndFiller solves a maze by repeatedly walling up dead ends in a
// private copy of the grid until a full scan changes nothing, then
// running BFS over what remains. On a perfect maze the fixed point is
// exactly the start-end corridor plus the terminals, which also makes
// the filler usable as a maze-simplification utility. Filling never
// removes a cell that lies on a simple start-end path, so the final
// BFS still returns a shortest path even when a maze carries a cycle.
type DeadEndFiller struct{}

// NewDeadEndFiller creates a dead-end-filling pathfinder.
func NewDeadEndFiller() *DeadEndFiller {
	return &DeadEndFiller{}
}

// FindPath implements Pathfinder. The canonical grid is never mutated.
func (*DeadEndFiller) FindPath(g *Grid, start, end Position) []Position {
	if g.Degenerate() {
		return nil
	}

	work := g.Clone()
	for changed := true; changed; {
		changed = false
		for y := 0; y < work.Height; y++ {
			for x := 0; x < work.Width; x++ {
				p := Position{X: x, Y: y}
				if p == start || p == end {
					continue
				}
				if k := work.KindAt(p); k != Empty && k != Path {
					continue
				}
				if passableNeighborCount(work, p) <= 1 {
					work.SetKind(p, Wall)
					changed = true
				}
			}
		}
	}

	return NewBFSPathfinder().FindPath(work, start, end)
}

// passableNeighborCount counts the passable 4-neighbors of p.
func passableNeighborCount(g *Grid, p Position) int {
	count := 0
	for _, d := range stepDirections {
		if g.PassableAt(Position{X: p.X + d.X, Y: p.Y + d.Y}) {
			count++
		}
	}
	return count
}
