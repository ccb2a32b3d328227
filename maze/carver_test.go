package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarve(t *testing.T) {
	t.Run("deterministic for a fixed seed", func(t *testing.T) {
		g1 := NewGrid(21, 21)
		origin1 := carve(g1, rand.New(rand.NewSource(42)))

		g2 := NewGrid(21, 21)
		origin2 := carve(g2, rand.New(rand.NewSource(42)))

		assert.Equal(t, origin1, origin2)
		assert.True(t, g1.Equal(g2))
	})

	t.Run("origin has odd parity inside the interior band", func(t *testing.T) {
		for seed := int64(0); seed < 20; seed++ {
			g := NewGrid(15, 11)
			origin := carve(g, rand.New(rand.NewSource(seed)))
			assert.Equal(t, 1, origin.Row%2)
			assert.Equal(t, 1, origin.Col%2)
			assert.GreaterOrEqual(t, origin.Row, 1)
			assert.LessOrEqual(t, origin.Row, 12)
			assert.GreaterOrEqual(t, origin.Col, 1)
			assert.LessOrEqual(t, origin.Col, 8)
		}
	})

	t.Run("every carved cell is reachable from the origin", func(t *testing.T) {
		for _, dims := range [][2]int{{5, 5}, {5, 6}, {9, 15}, {21, 21}, {35, 27}} {
			g := NewGrid(dims[0], dims[1])
			origin := carve(g, rand.New(rand.NewSource(7)))

			carved := 0
			for r := 0; r < g.rows; r++ {
				for c := 0; c < g.cols; c++ {
					if g.cells[r][c] == Empty {
						carved++
					}
				}
			}
			require.Greater(t, carved, 0)
			assert.Equal(t, carved, reachableCount(g, origin), "dims %v", dims)
		}
	})

	t.Run("carved maze is a tree", func(t *testing.T) {
		// A spanning tree over passable cells has exactly cells-1
		// adjacencies; any extra edge would mean a cycle.
		g := NewGrid(21, 21)
		carve(g, rand.New(rand.NewSource(11)))

		cells, edges := 0, 0
		for r := 0; r < g.rows; r++ {
			for c := 0; c < g.cols; c++ {
				if g.cells[r][c] != Empty {
					continue
				}
				cells++
				// Count each adjacency once, looking down and right.
				if g.passable(Position{Row: r + 1, Col: c}) {
					edges++
				}
				if g.passable(Position{Row: r, Col: c + 1}) {
					edges++
				}
			}
		}
		assert.Equal(t, cells-1, edges)
	})

	t.Run("boundary stays walled", func(t *testing.T) {
		g := NewGrid(11, 17)
		carve(g, rand.New(rand.NewSource(3)))
		for c := 0; c < g.cols; c++ {
			assert.Equal(t, Wall, g.cells[0][c])
			assert.Equal(t, Wall, g.cells[g.rows-1][c])
		}
		for r := 0; r < g.rows; r++ {
			assert.Equal(t, Wall, g.cells[r][0])
			assert.Equal(t, Wall, g.cells[r][g.cols-1])
		}
	})

	t.Run("minimum size still carves", func(t *testing.T) {
		g := NewGrid(5, 5)
		origin := carve(g, rand.New(rand.NewSource(1)))
		assert.Equal(t, Empty, g.cells[origin.Row][origin.Col])
		assert.Greater(t, reachableCount(g, origin), 1)
	})
}

// reachableCount BFS-counts passable cells reachable from origin.
func reachableCount(g *Grid, origin Position) int {
	visited := map[Position]bool{origin: true}
	queue := []Position{origin}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range Neighbors(g, cur) {
			if !visited[n.Pos] {
				visited[n.Pos] = true
				queue = append(queue, n.Pos)
			}
		}
	}
	return len(visited)
}
