package maze

// FarthestFrom runs a breadth-first traversal over passable cells and
// returns the reachable position with the greatest hop distance from
// origin. Ties break in favor of the first-discovered cell, which is
// deterministic given the package's fixed neighbor ordering.
//
// This is a single-source BFS heuristic for finish placement. It does
// not compute true graph eccentricity, but a far cell is all the race
// needs.
func FarthestFrom(g *Grid, origin Position) Position {
	if !g.passable(origin) {
		return origin
	}

	dist := make([][]int, g.rows)
	for r := range dist {
		dist[r] = make([]int, g.cols)
		for c := range dist[r] {
			dist[r][c] = -1
		}
	}
	dist[origin.Row][origin.Col] = 0

	farthest := origin
	maxDist := 0

	queue := []Position{origin}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, d := range directions {
			next := Position{Row: cur.Row + d.DRow, Col: cur.Col + d.DCol}
			if !g.passable(next) || dist[next.Row][next.Col] >= 0 {
				continue
			}
			dist[next.Row][next.Col] = dist[cur.Row][cur.Col] + 1
			if dist[next.Row][next.Col] > maxDist {
				maxDist = dist[next.Row][next.Col]
				farthest = next
			}
			queue = append(queue, next)
		}
	}

	return farthest
}

// ExistsPath reports whether b is reachable from a through passable
// cells under 4-directional adjacency. This BFS check is the
// authoritative connectivity test in the package; repair and
// difficulty decisions rely on it rather than on A* succeeding.
func ExistsPath(g *Grid, a, b Position) bool {
	if !g.passable(a) || !g.passable(b) {
		return false
	}
	if a == b {
		return true
	}

	visited := make([][]bool, g.rows)
	for r := range visited {
		visited[r] = make([]bool, g.cols)
	}
	visited[a.Row][a.Col] = true

	queue := []Position{a}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, d := range directions {
			next := Position{Row: cur.Row + d.DRow, Col: cur.Col + d.DCol}
			if !g.passable(next) || visited[next.Row][next.Col] {
				continue
			}
			if next == b {
				return true
			}
			visited[next.Row][next.Col] = true
			queue = append(queue, next)
		}
	}

	return false
}
