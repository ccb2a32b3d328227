package maze

import (
	"container/heap"
	"math/rand"
)

const (
	// defaultHeuristicWeight keeps A* admissible, so returned paths are
	// shortest. Weights above 1 trade optimality for search speed.
	defaultHeuristicWeight = 1

	// pathfinderCapFactor bounds A* work at factor·rows·cols expansions.
	pathfinderCapFactor = 2
)

// FindPath searches for a route from start to finish with A* — unit
// edge cost, 4-directional moves, Manhattan-distance heuristic. The
// returned sequence runs from start to finish inclusive; it is nil when
// no route exists or the iteration cap is hit. FindPath never mutates
// the grid, and repeated calls on the same inputs return routes of the
// same length.
func FindPath(g *Grid, start, finish Position) []Position {
	return findPath(g, start, finish, defaultHeuristicWeight, pathfinderCapFactor*g.rows*g.cols)
}

// findPath is the configurable search behind FindPath. heuristicWeight
// must be >= 1; maxIterations bounds node expansions.
func findPath(g *Grid, start, finish Position, heuristicWeight, maxIterations int) []Position {
	if !g.passable(start) || !g.passable(finish) {
		return nil
	}
	if start == finish {
		return []Position{start}
	}

	open := &openQueue{}
	heap.Init(open)

	cameFrom := make(map[Position]Position)
	gScore := map[Position]int{start: 0}
	closed := make(map[Position]bool)

	seq := 0
	heap.Push(open, &openItem{
		pos: start,
		f:   heuristicWeight * manhattan(start, finish),
		seq: seq,
	})

	for iterations := 0; open.Len() > 0; iterations++ {
		if iterations >= maxIterations {
			return nil
		}

		cur := heap.Pop(open).(*openItem)
		if closed[cur.pos] {
			// Stale queue entry superseded by a cheaper one.
			continue
		}
		if cur.pos == finish {
			return reconstruct(cameFrom, start, finish)
		}
		closed[cur.pos] = true

		for _, d := range directions {
			next := Position{Row: cur.pos.Row + d.DRow, Col: cur.pos.Col + d.DCol}
			if !g.passable(next) || closed[next] {
				continue
			}

			tentative := gScore[cur.pos] + 1
			if old, seen := gScore[next]; seen && tentative >= old {
				continue
			}

			cameFrom[next] = cur.pos
			gScore[next] = tentative
			seq++
			heap.Push(open, &openItem{
				pos: next,
				f:   tentative + heuristicWeight*manhattan(next, finish),
				seq: seq,
			})
		}
	}

	return nil
}

// reconstruct walks predecessor links from finish back to start and
// reverses the result.
func reconstruct(cameFrom map[Position]Position, start, finish Position) []Position {
	path := []Position{finish}
	for cur := finish; cur != start; {
		cur = cameFrom[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// manhattan is the |Δrow| + |Δcol| distance, admissible and consistent
// for unit-cost grid movement.
func manhattan(a, b Position) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// RandomWalk samples up to maxSteps uniformly random passable moves
// starting at origin, stopping early when no move is available. The
// returned sequence always begins with origin; an origin that is out
// of bounds or a wall yields an empty sequence. It is a movement
// sampler for automated racers, not a search.
func RandomWalk(g *Grid, origin Position, maxSteps int, rng *rand.Rand) []Position {
	if !g.passable(origin) {
		return nil
	}

	walk := []Position{origin}
	cur := origin
	for step := 0; step < maxSteps; step++ {
		options := Neighbors(g, cur)
		if len(options) == 0 {
			break
		}
		cur = options[rng.Intn(len(options))].Pos
		walk = append(walk, cur)
	}
	return walk
}

// openItem is one A* frontier entry; seq keeps ties in insertion order.
type openItem struct {
	pos Position
	f   int
	seq int
}

// openQueue is a min-heap over f-score implementing heap.Interface.
type openQueue []*openItem

func (q openQueue) Len() int { return len(q) }

func (q openQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}

func (q openQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *openQueue) Push(x any) {
	*q = append(*q, x.(*openItem))
}

func (q *openQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}
