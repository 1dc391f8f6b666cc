// Package hydrology implements the erosion, river-tracing, watermap and
// irrigation stages, all of which operate on the world's elevation and
// water layers after ocean initialization.
package hydrology

import (
	"container/heap"
	"math"

	"worldcore/internal/apperrors"
	"worldcore/internal/worldmodel"
)

// astarNode is one entry in the A* open set.
type astarNode struct {
	point     worldmodel.Point
	cost      float64
	heuristic float64
	parent    *astarNode
	index     int
	seq       int // discovery order, used to break score ties
}

type astarQueue []*astarNode

func (q astarQueue) Len() int { return len(q) }
func (q astarQueue) Less(i, j int) bool {
	fi, fj := q[i].cost+q[i].heuristic, q[j].cost+q[j].heuristic
	if fi == fj {
		return q[i].seq < q[j].seq
	}
	return fi < fj
}
func (q astarQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index, q[j].index = i, j
}
func (q *astarQueue) Push(x any) {
	n := x.(*astarNode)
	n.index = len(*q)
	*q = append(*q, n)
}
func (q *astarQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]
	return item
}

const maxAStarIterations = 10_000

// AStar finds a path from start to end over w's elevation grid: movement
// cost per step is the destination cell's elevation, the heuristic is
// Manhattan distance to end. Ties are broken first-discovered: each node
// records the order it was discovered in, and the queue compares that
// order when scores are equal. Returns the path exclusive of start and its
// total cost. Non-wrapping: neighbors are the four in-bounds cardinal
// cells, discovered in the order north, south, east, west.
func AStar(w *worldmodel.World, start, end worldmodel.Point) ([]worldmodel.Point, float64, error) {
	startNode := &astarNode{point: start, cost: 0, heuristic: manhattan(start, end)}
	open := &astarQueue{startNode}
	heap.Init(open)

	visited := make(map[worldmodel.Point]bool)
	cache := make(map[worldmodel.Point]*astarNode)
	cache[start] = startNode
	discovered := 0

	for iterations := 0; open.Len() > 0; iterations++ {
		if iterations >= maxAStarIterations {
			return nil, 0, apperrors.NewPathfinding("exhausted %d iterations between %v and %v", maxAStarIterations, start, end)
		}

		current := heap.Pop(open).(*astarNode)
		if current.point == end {
			return reconstruct(current), current.cost, nil
		}
		visited[current.point] = true

		for _, n := range fourNeighbors(w, current.point) {
			if visited[n] {
				continue
			}
			step := float64(w.Elevation.Get(n.X, n.Y))
			newCost := current.cost + step

			node, seen := cache[n]
			if !seen {
				discovered++
				node = &astarNode{point: n, cost: math.Inf(1), heuristic: manhattan(n, end), seq: discovered}
				cache[n] = node
			}
			if newCost < node.cost {
				node.cost = newCost
				node.parent = current
				if !seen {
					heap.Push(open, node)
				} else {
					heap.Fix(open, node.index)
				}
			}
		}
	}
	return nil, 0, apperrors.NewPathfinding("open set exhausted between %v and %v", start, end)
}

func manhattan(a, b worldmodel.Point) float64 {
	return math.Abs(float64(a.X-b.X)) + math.Abs(float64(a.Y-b.Y))
}

func fourNeighbors(w *worldmodel.World, p worldmodel.Point) []worldmodel.Point {
	candidates := []worldmodel.Point{
		{X: p.X, Y: p.Y - 1},
		{X: p.X, Y: p.Y + 1},
		{X: p.X + 1, Y: p.Y},
		{X: p.X - 1, Y: p.Y},
	}
	out := make([]worldmodel.Point, 0, 4)
	for _, c := range candidates {
		if w.Contains(c.X, c.Y) {
			out = append(out, c)
		}
	}
	return out
}

func reconstruct(n *astarNode) []worldmodel.Point {
	var path []worldmodel.Point
	for cur := n; cur != nil && cur.parent != nil; cur = cur.parent {
		path = append([]worldmodel.Point{cur.point}, path...)
	}
	return path
}
