package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrid(t *testing.T) {
	t.Run("new grid is solid wall", func(t *testing.T) {
		g := NewGrid(5, 7)
		assert.Equal(t, 5, g.Rows())
		assert.Equal(t, 7, g.Cols())
		for r := 0; r < g.Rows(); r++ {
			for c := 0; c < g.Cols(); c++ {
				cell, err := g.At(Position{Row: r, Col: c})
				assert.NoError(t, err)
				assert.Equal(t, Wall, cell)
			}
		}
	})

	t.Run("set and get round-trip", func(t *testing.T) {
		g := NewGrid(5, 5)
		p := Position{Row: 2, Col: 3}
		assert.NoError(t, g.Set(p, Start))

		cell, err := g.At(p)
		assert.NoError(t, err)
		assert.Equal(t, Start, cell)
	})

	t.Run("out of bounds access", func(t *testing.T) {
		g := NewGrid(5, 5)
		for _, p := range []Position{
			{Row: -1, Col: 0},
			{Row: 0, Col: -1},
			{Row: 5, Col: 0},
			{Row: 0, Col: 5},
		} {
			_, err := g.At(p)
			assert.ErrorIs(t, err, ErrOutOfBounds)
			assert.ErrorIs(t, g.Set(p, Empty), ErrOutOfBounds)
		}
	})

	t.Run("clone is independent", func(t *testing.T) {
		g := NewGrid(5, 5)
		clone := g.Clone()
		assert.True(t, g.Equal(clone))

		assert.NoError(t, clone.Set(Position{Row: 1, Col: 1}, Empty))
		assert.False(t, g.Equal(clone))

		cell, err := g.At(Position{Row: 1, Col: 1})
		assert.NoError(t, err)
		assert.Equal(t, Wall, cell)
	})

	t.Run("string markers", func(t *testing.T) {
		g := NewGrid(5, 5)
		assert.NoError(t, g.Set(Position{Row: 1, Col: 1}, Start))
		assert.NoError(t, g.Set(Position{Row: 3, Col: 3}, Finish))
		assert.NoError(t, g.Set(Position{Row: 2, Col: 2}, Empty))

		s := g.String()
		assert.Contains(t, s, "S")
		assert.Contains(t, s, "F")
		assert.Contains(t, s, "#")
	})
}

func TestNeighbors(t *testing.T) {
	// 5x5 grid with a plus-shaped corridor around (2,2).
	g := NewGrid(5, 5)
	center := Position{Row: 2, Col: 2}
	for _, p := range []Position{center, {Row: 1, Col: 2}, {Row: 3, Col: 2}, {Row: 2, Col: 1}, {Row: 2, Col: 3}} {
		if err := g.Set(p, Empty); err != nil {
			t.Fatal(err)
		}
	}

	t.Run("all four directions tagged", func(t *testing.T) {
		got := Neighbors(g, center)
		assert.Equal(t, []Neighbor{
			{Pos: Position{Row: 1, Col: 2}, Direction: DirUp},
			{Pos: Position{Row: 3, Col: 2}, Direction: DirDown},
			{Pos: Position{Row: 2, Col: 1}, Direction: DirLeft},
			{Pos: Position{Row: 2, Col: 3}, Direction: DirRight},
		}, got)
	})

	t.Run("walled-in cell has none", func(t *testing.T) {
		solid := NewGrid(5, 5)
		if err := solid.Set(center, Empty); err != nil {
			t.Fatal(err)
		}
		assert.Empty(t, Neighbors(solid, center))
	})

	t.Run("out of bounds query yields empty", func(t *testing.T) {
		assert.Empty(t, Neighbors(g, Position{Row: -1, Col: 2}))
		assert.Empty(t, Neighbors(g, Position{Row: 2, Col: 9}))
	})
}
