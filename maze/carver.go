package maze

import (
	"math/rand"
)

// carve digs a spanning-tree maze into a solid-wall grid using
// randomized depth-first carving (recursive backtracking, with an
// explicit stack). Corridors live on cells of odd row/col parity, two
// grid steps apart, with the removed wall at the midpoint — so a wall
// always remains between corridors that the walk never joined. The
// result is a perfect maze: exactly one path between any two carved
// cells.
//
// carve returns the origin cell of the walk, which the generator uses
// as the race start. It is deterministic given a fixed random sequence.
func carve(g *Grid, rng *rand.Rand) Position {
	origin := randomOddPosition(g, rng)
	g.cells[origin.Row][origin.Col] = Empty

	stack := []Position{origin}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		// Enumerate the 2-step neighbors still buried in wall.
		type step struct {
			mid    Position
			target Position
		}
		var frontier []step
		for _, d := range directions {
			target := Position{Row: cur.Row + 2*d.DRow, Col: cur.Col + 2*d.DCol}
			if target.Row < 1 || target.Row > g.rows-2 || target.Col < 1 || target.Col > g.cols-2 {
				continue
			}
			if g.cells[target.Row][target.Col] != Wall {
				continue
			}
			mid := Position{Row: cur.Row + d.DRow, Col: cur.Col + d.DCol}
			frontier = append(frontier, step{mid: mid, target: target})
		}

		if len(frontier) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := frontier[rng.Intn(len(frontier))]
		g.cells[next.mid.Row][next.mid.Col] = Empty
		g.cells[next.target.Row][next.target.Col] = Empty
		stack = append(stack, next.target)
	}

	return origin
}

// randomOddPosition picks a random odd-parity cell within the safe
// interior band 1..dim-3, stepping by 2.
func randomOddPosition(g *Grid, rng *rand.Rand) Position {
	rowChoices := (g.rows - 2) / 2
	colChoices := (g.cols - 2) / 2
	return Position{
		Row: 1 + 2*rng.Intn(rowChoices),
		Col: 1 + 2*rng.Intn(colChoices),
	}
}
