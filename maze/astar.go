package maze

import "container/heap"

// AStarPathfinder orders its frontier by g(n) + h(n) where h is the
// Manhattan distance to the end. Manhattan distance is admissible and
// consistent on a 4-directional unit-cost grid, so the first time the
// end is finalized the path is optimal.
type AStarPathfinder struct{}

// NewAStarPathfinder creates an A* pathfinder.
func NewAStarPathfinder() *AStarPathfinder {
	return &AStarPathfinder{}
}

// FindPath implements Pathfinder.
func (*AStarPathfinder) FindPath(g *Grid, start, end Position) []Position {
	return bestFirstSearch(g, start, end, func(p Position) int {
		return p.ManhattanTo(end)
	})
}

// searchNode is a frontier entry of a best-first search.
type searchNode struct {
	pos      Position
	cost     int // g: cost from start
	priority int // g + h
	order    int // insertion counter, breaks priority ties
	path     []Position
}

// nodeHeap is a min-heap of search nodes ordered by priority, with the
// insertion counter keeping equal priorities stable.
type nodeHeap []*searchNode

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].order < h[j].order
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x any) { *h = append(*h, x.(*searchNode)) }

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return node
}

// bestFirstSearch is the shared engine behind A* and Dijkstra. A node
// whose best-known cost improves before it is finalized is re-pushed
// with the cheaper route; stale heap entries are skipped on pop.
func bestFirstSearch(g *Grid, start, end Position, h func(Position) int) []Position {
	if g.Degenerate() {
		return nil
	}

	open := &nodeHeap{{pos: start, priority: h(start), path: []Position{start}}}
	heap.Init(open)
	costs := map[Position]int{start: 0}
	finalized := map[Position]struct{}{}
	counter := 0

	for open.Len() > 0 {
		current := heap.Pop(open).(*searchNode)
		if _, done := finalized[current.pos]; done {
			continue
		}
		finalized[current.pos] = struct{}{}

		if current.pos == end {
			return current.path
		}

		for _, d := range stepDirections {
			next := Position{X: current.pos.X + d.X, Y: current.pos.Y + d.Y}
			if _, done := finalized[next]; done {
				continue
			}
			if !g.PassableAt(next) {
				continue
			}

			cost := current.cost + 1
			if best, known := costs[next]; known && cost >= best {
				continue
			}
			costs[next] = cost
			counter++
			heap.Push(open, &searchNode{
				pos:      next,
				cost:     cost,
				priority: cost + h(next),
				order:    counter,
				path:     appendPath(current.path, next),
			})
		}
	}

	return nil
}
