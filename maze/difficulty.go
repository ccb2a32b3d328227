package maze

import (
	"fmt"
	"math/rand"
)

// Difficulty names a tuning tier for generated mazes.
type Difficulty string

const (
	Easy    Difficulty = "easy"
	Medium  Difficulty = "medium"
	Hard    Difficulty = "hard"
	Extreme Difficulty = "extreme"
)

// DefaultDifficulty is substituted when a caller asks for an
// unrecognized tier.
const DefaultDifficulty = Medium

// TierConfig holds the numeric knobs behind one difficulty tier.
// Exactly one of OpenFraction and SealFraction is non-zero: easier
// tiers open extra passages, harder tiers seal corridors back into
// walls.
type TierConfig struct {
	// OpenFraction of total cells to convert from wall to corridor,
	// adding shortcuts and cycles.
	OpenFraction float64

	// SealFraction of total cells to convert from corridor to wall,
	// kept only when start and finish stay connected.
	SealFraction float64

	// RetryFactor bounds the random attempts at RetryFactor × target,
	// so adjustment terminates even when no eligible cell remains.
	RetryFactor int
}

// DefaultTiers returns the stock difficulty table.
func DefaultTiers() map[Difficulty]TierConfig {
	return map[Difficulty]TierConfig{
		Easy:    {OpenFraction: 0.15, RetryFactor: 3},
		Medium:  {OpenFraction: 0.10, RetryFactor: 3},
		Hard:    {SealFraction: 0.05, RetryFactor: 3},
		Extreme: {SealFraction: 0.10, RetryFactor: 3},
	}
}

// ParseDifficulty maps a tier name to a Difficulty. Unknown names
// return ErrInvalidDifficulty along with the default tier, so callers
// can log and continue.
func ParseDifficulty(name string) (Difficulty, error) {
	switch Difficulty(name) {
	case Easy, Medium, Hard, Extreme:
		return Difficulty(name), nil
	}
	return DefaultDifficulty, fmt.Errorf("%w: %q", ErrInvalidDifficulty, name)
}

// openPassages clones the grid and converts up to target interior wall
// cells into corridors. Only walls with at least two orthogonally
// adjacent passable cells are eligible, so every opening creates a
// shortcut between existing corridors and can never disconnect
// anything.
func openPassages(g *Grid, tier TierConfig, rng *rand.Rand) *Grid {
	out := g.Clone()
	target := int(tier.OpenFraction * float64(g.rows*g.cols))
	opened := 0

	for attempt := 0; attempt < tier.RetryFactor*target && opened < target; attempt++ {
		p := randomInterior(out, rng)
		if out.cells[p.Row][p.Col] != Wall {
			continue
		}

		adjacent := 0
		for _, d := range directions {
			if out.passable(Position{Row: p.Row + d.DRow, Col: p.Col + d.DCol}) {
				adjacent++
			}
		}
		if adjacent < 2 {
			continue
		}

		out.cells[p.Row][p.Col] = Empty
		opened++
	}

	return out
}

// sealWalls clones the grid and converts up to target interior corridor
// cells back into walls. Each seal is tentative: the cell reverts when
// the BFS connectivity check says start and finish would be separated.
func sealWalls(g *Grid, start, finish Position, tier TierConfig, rng *rand.Rand) *Grid {
	out := g.Clone()
	target := int(tier.SealFraction * float64(g.rows*g.cols))
	sealed := 0

	for attempt := 0; attempt < tier.RetryFactor*target && sealed < target; attempt++ {
		p := randomInterior(out, rng)
		if out.cells[p.Row][p.Col] != Empty {
			// Start and finish cells are typed Start/Finish, so this also
			// shields them from sealing.
			continue
		}

		out.cells[p.Row][p.Col] = Wall
		if !ExistsPath(out, start, finish) {
			out.cells[p.Row][p.Col] = Empty
			continue
		}
		sealed++
	}

	return out
}

// randomInterior picks a uniformly random cell strictly inside the
// boundary.
func randomInterior(g *Grid, rng *rand.Rand) Position {
	return Position{
		Row: 1 + rng.Intn(g.rows-2),
		Col: 1 + rng.Intn(g.cols-2),
	}
}
