package maze

import "fmt"

// Validate checks a MazeResult against the engine invariants:
//
//  1. the grid carries exactly one Start and one Finish, at the
//     recorded positions, and they differ;
//  2. every perimeter cell is Wall;
//  3. a passable route exists between start and finish;
//  4. start and finish lie strictly inside the boundary.
//
// Generate runs it as a postcondition and Deserialize runs it before
// trusting a reloaded snapshot.
func Validate(res *MazeResult) error {
	if res == nil || res.Grid == nil {
		return fmt.Errorf("%w: missing grid", ErrMalformedSnapshot)
	}
	g := res.Grid

	if g.rows < MinDimension || g.cols < MinDimension {
		return fmt.Errorf("%w: grid is %dx%d", ErrInvalidDimensions, g.rows, g.cols)
	}

	starts, finishes := 0, 0
	for r := range g.cells {
		for c := range g.cells[r] {
			switch g.cells[r][c] {
			case Start:
				starts++
			case Finish:
				finishes++
			}
		}
	}
	if starts != 1 || finishes != 1 {
		return fmt.Errorf("expected exactly one start and one finish, got %d and %d", starts, finishes)
	}

	if res.Start == res.Finish {
		return fmt.Errorf("start and finish coincide at %v", res.Start)
	}
	if cell, err := g.At(res.Start); err != nil || cell != Start {
		return fmt.Errorf("start position %v does not hold a start cell", res.Start)
	}
	if cell, err := g.At(res.Finish); err != nil || cell != Finish {
		return fmt.Errorf("finish position %v does not hold a finish cell", res.Finish)
	}

	if !interior(g, res.Start) || !interior(g, res.Finish) {
		return fmt.Errorf("start %v or finish %v lies on the boundary", res.Start, res.Finish)
	}

	for c := 0; c < g.cols; c++ {
		if g.cells[0][c] != Wall || g.cells[g.rows-1][c] != Wall {
			return fmt.Errorf("boundary row breached at column %d", c)
		}
	}
	for r := 0; r < g.rows; r++ {
		if g.cells[r][0] != Wall || g.cells[r][g.cols-1] != Wall {
			return fmt.Errorf("boundary column breached at row %d", r)
		}
	}

	if !ExistsPath(g, res.Start, res.Finish) {
		return fmt.Errorf("no passable route between start %v and finish %v", res.Start, res.Finish)
	}

	return nil
}

// interior reports whether the position avoids every boundary row and
// column.
func interior(g *Grid, p Position) bool {
	return p.Row >= 1 && p.Row <= g.rows-2 && p.Col >= 1 && p.Col <= g.cols-2
}
