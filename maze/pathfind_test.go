package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindPath(t *testing.T) {
	t.Run("straight corridor", func(t *testing.T) {
		g := corridorGrid(t, 10)
		path := FindPath(g, Position{Row: 1, Col: 1}, Position{Row: 1, Col: 10})

		require.Len(t, path, 10)
		for i, p := range path {
			assert.Equal(t, Position{Row: 1, Col: i + 1}, p)
		}
	})

	t.Run("unreachable finish yields empty path", func(t *testing.T) {
		g := NewGrid(5, 7)
		if err := g.Set(Position{Row: 2, Col: 1}, Empty); err != nil {
			t.Fatal(err)
		}
		if err := g.Set(Position{Row: 2, Col: 5}, Empty); err != nil {
			t.Fatal(err)
		}
		assert.Empty(t, FindPath(g, Position{Row: 2, Col: 1}, Position{Row: 2, Col: 5}))
	})

	t.Run("start equals finish", func(t *testing.T) {
		g := corridorGrid(t, 5)
		p := Position{Row: 1, Col: 3}
		assert.Equal(t, []Position{p}, FindPath(g, p, p))
	})

	t.Run("does not mutate the grid and repeats the same length", func(t *testing.T) {
		g := NewGrid(11, 11)
		carve(g, rand.New(rand.NewSource(5)))
		before := g.Clone()

		start := Position{Row: 1, Col: 1}
		finish := FarthestFrom(g, start)

		first := FindPath(g, start, finish)
		second := FindPath(g, start, finish)

		require.NotEmpty(t, first)
		assert.Equal(t, len(first), len(second))
		assert.True(t, g.Equal(before))
	})

	t.Run("path is shortest with unit heuristic weight", func(t *testing.T) {
		// Open room: the shortest route length equals the Manhattan
		// distance plus one.
		g := NewGrid(9, 9)
		for r := 1; r < 8; r++ {
			for c := 1; c < 8; c++ {
				if err := g.Set(Position{Row: r, Col: c}, Empty); err != nil {
					t.Fatal(err)
				}
			}
		}
		start := Position{Row: 1, Col: 1}
		finish := Position{Row: 7, Col: 7}
		path := FindPath(g, start, finish)
		assert.Len(t, path, manhattan(start, finish)+1)
	})

	t.Run("consecutive steps are orthogonally adjacent", func(t *testing.T) {
		g := NewGrid(15, 15)
		carve(g, rand.New(rand.NewSource(9)))
		start := Position{Row: 1, Col: 1}
		finish := FarthestFrom(g, start)

		path := FindPath(g, start, finish)
		require.NotEmpty(t, path)
		assert.Equal(t, start, path[0])
		assert.Equal(t, finish, path[len(path)-1])
		for i := 1; i < len(path); i++ {
			assert.Equal(t, 1, manhattan(path[i-1], path[i]))
		}
	})

	t.Run("iteration cap cuts the search short", func(t *testing.T) {
		g := corridorGrid(t, 10)
		path := findPath(g, Position{Row: 1, Col: 1}, Position{Row: 1, Col: 10}, 1, 3)
		assert.Empty(t, path)
	})

	t.Run("wall endpoints yield empty path", func(t *testing.T) {
		g := corridorGrid(t, 5)
		assert.Empty(t, FindPath(g, Position{Row: 0, Col: 0}, Position{Row: 1, Col: 3}))
		assert.Empty(t, FindPath(g, Position{Row: 1, Col: 3}, Position{Row: 0, Col: 0}))
	})
}

func TestRandomWalk(t *testing.T) {
	t.Run("starts at origin and keeps adjacency", func(t *testing.T) {
		g := NewGrid(9, 9)
		for r := 1; r < 8; r++ {
			for c := 1; c < 8; c++ {
				if err := g.Set(Position{Row: r, Col: c}, Empty); err != nil {
					t.Fatal(err)
				}
			}
		}
		origin := Position{Row: 4, Col: 4}
		walk := RandomWalk(g, origin, 25, rand.New(rand.NewSource(13)))

		require.Len(t, walk, 26)
		assert.Equal(t, origin, walk[0])
		for i := 1; i < len(walk); i++ {
			assert.Equal(t, 1, manhattan(walk[i-1], walk[i]))
			assert.True(t, g.passable(walk[i]))
		}
	})

	t.Run("stops when boxed in", func(t *testing.T) {
		g := NewGrid(5, 5)
		origin := Position{Row: 2, Col: 2}
		if err := g.Set(origin, Empty); err != nil {
			t.Fatal(err)
		}
		walk := RandomWalk(g, origin, 10, rand.New(rand.NewSource(1)))
		assert.Equal(t, []Position{origin}, walk)
	})

	t.Run("wall origin yields empty walk", func(t *testing.T) {
		g := NewGrid(5, 5)
		assert.Empty(t, RandomWalk(g, Position{Row: 2, Col: 2}, 10, rand.New(rand.NewSource(1))))
	})

	t.Run("zero steps returns only the origin", func(t *testing.T) {
		g := corridorGrid(t, 5)
		origin := Position{Row: 1, Col: 2}
		assert.Equal(t, []Position{origin}, RandomWalk(g, origin, 0, rand.New(rand.NewSource(1))))
	})
}
