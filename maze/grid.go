/*
Package maze implements the maze engine behind the race tables: grid
generation with randomized depth-first carving, difficulty adjustment,
BFS connectivity analysis, and A* pathfinding.

The package is synchronous and allocation-owned: every generation run
builds and returns its own Grid, and callers read the result through
bounds-checked accessors. Mazes are serialized to JSON snapshots for
persistence and restored with full invariant re-validation.
*/
package maze

import (
	"strings"
)

// CellType identifies what occupies a single grid cell.
type CellType uint8

const (
	// Wall is an impassable cell. The zero value, so a fresh grid is solid rock.
	Wall CellType = iota

	// Empty is a passable corridor cell.
	Empty

	// Start marks the single race starting cell. Passable.
	Start

	// Finish marks the single race finishing cell. Passable.
	Finish

	// Obstacle, Bonus and Trap are reserved for the gameplay layer.
	// The generator never places them.
	Obstacle
	Bonus
	Trap
)

// String returns a one-character marker used by Grid.String.
func (c CellType) String() string {
	switch c {
	case Wall:
		return "#"
	case Empty:
		return " "
	case Start:
		return "S"
	case Finish:
		return "F"
	case Obstacle:
		return "O"
	case Bonus:
		return "B"
	case Trap:
		return "T"
	}
	return "?"
}

// Passable reports whether a racer can stand on this cell type.
func (c CellType) Passable() bool {
	return c != Wall
}

// Position is a 0-indexed (row, col) grid coordinate.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Direction names one of the four orthogonal moves.
type Direction string

const (
	DirUp    Direction = "up"
	DirDown  Direction = "down"
	DirLeft  Direction = "left"
	DirRight Direction = "right"
)

// directions is ordered so every traversal in the package visits
// neighbors deterministically: up, down, left, right.
var directions = []struct {
	Dir  Direction
	DRow int
	DCol int
}{
	{DirUp, -1, 0},
	{DirDown, 1, 0},
	{DirLeft, 0, -1},
	{DirRight, 0, 1},
}

// Grid is a rectangular field of cells. A Grid is exclusively owned by
// the generation run that created it; afterwards callers may read it
// freely but must mutate only through Set so bounds stay checked.
type Grid struct {
	rows  int
	cols  int
	cells [][]CellType
}

// NewGrid returns a rows×cols grid filled entirely with Wall.
func NewGrid(rows, cols int) *Grid {
	cells := make([][]CellType, rows)
	for r := range cells {
		cells[r] = make([]CellType, cols)
	}
	return &Grid{rows: rows, cols: cols, cells: cells}
}

// Rows returns the number of rows in the grid.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid.
func (g *Grid) Cols() int {
	return g.cols
}

// InBounds reports whether the position lies inside the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// At returns the cell type at the given position.
// Returns ErrOutOfBounds for positions outside the grid.
func (g *Grid) At(p Position) (CellType, error) {
	if !g.InBounds(p) {
		return Wall, ErrOutOfBounds
	}
	return g.cells[p.Row][p.Col], nil
}

// Set writes the cell type at the given position.
// Returns ErrOutOfBounds for positions outside the grid.
func (g *Grid) Set(p Position, c CellType) error {
	if !g.InBounds(p) {
		return ErrOutOfBounds
	}
	g.cells[p.Row][p.Col] = c
	return nil
}

// passable reports whether the position is in bounds and not a wall.
func (g *Grid) passable(p Position) bool {
	return g.InBounds(p) && g.cells[p.Row][p.Col].Passable()
}

// Clone returns a deep copy of the grid. Transformation stages work on
// a clone so an abandoned attempt never leaks into the caller's grid.
func (g *Grid) Clone() *Grid {
	clone := NewGrid(g.rows, g.cols)
	for r := range g.cells {
		copy(clone.cells[r], g.cells[r])
	}
	return clone
}

// Equal reports whether both grids have identical dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for r := range g.cells {
		for c := range g.cells[r] {
			if g.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// String provides a textual representation of the grid, one character
// per cell.
func (g *Grid) String() string {
	var output strings.Builder
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			output.WriteString(g.cells[r][c].String())
		}
		output.WriteString("\n")
	}
	return output.String()
}

// Neighbor is a passable cell adjacent to a queried position, tagged
// with the direction leading to it.
type Neighbor struct {
	Pos       Position  `json:"pos"`
	Direction Direction `json:"direction"`
}

// Neighbors returns the passable 4-directional neighbors of a position.
// Positions outside the grid yield an empty result rather than an
// error, so callers can scan across boundaries without ceremony.
func Neighbors(g *Grid, p Position) []Neighbor {
	if !g.InBounds(p) {
		return nil
	}
	var result []Neighbor
	for _, d := range directions {
		n := Position{Row: p.Row + d.DRow, Col: p.Col + d.DCol}
		if g.passable(n) {
			result = append(result, Neighbor{Pos: n, Direction: d.Dir})
		}
	}
	return result
}
