package i

import (
	"github.com/natnael-worku/mazerace/maze"
)

// MazeEngine is the surface the race layer needs from the maze core:
// generation plus route and movement queries.
type MazeEngine interface {
	// Generate builds a fresh maze of the given dimensions and
	// difficulty tier name.
	Generate(rows, cols int, difficulty string) (*maze.MazeResult, error)

	// FindPath returns the A* route from start to finish, or an empty
	// sequence when no route exists.
	FindPath(g *maze.Grid, start, finish maze.Position) []maze.Position

	// RandomWalk samples up to maxSteps random passable moves from
	// origin.
	RandomWalk(g *maze.Grid, origin maze.Position, maxSteps int) []maze.Position
}
