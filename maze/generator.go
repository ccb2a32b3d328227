package maze

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"sync"
	"time"
)

const (
	// MinDimension is the smallest supported maze side. Below it there is
	// no interior to carve.
	MinDimension = 5

	// defaultMaxDimension is the recommended upper bound. Larger mazes
	// still generate, just slower.
	defaultMaxDimension = 50
)

// Metadata describes a generated maze for snapshots and bookkeeping.
type Metadata struct {
	Rows       int        `json:"rows"`
	Cols       int        `json:"cols"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// MazeResult is the output of one generation run: the finished grid
// plus the start and finish cells. Every returned result satisfies the
// engine invariants: single start, single finish, fully walled
// boundary, interior start/finish, and a passable route between them.
type MazeResult struct {
	Grid   *Grid
	Start  Position
	Finish Position
	Meta   Metadata
}

// Limits carries the size and search bounds for a Generator.
type Limits struct {
	// MaxDimension is the recommended upper bound on rows/cols. Requests
	// beyond it are logged and served anyway.
	MaxDimension int

	// PathfinderCap bounds A* node expansions. Zero means 2·rows·cols,
	// computed per search.
	PathfinderCap int

	// HeuristicWeight scales the A* heuristic. Values above 1 speed up
	// the search at the cost of shortest-path optimality. Zero means 1.
	HeuristicWeight int
}

// Options configures a Generator.
type Options struct {
	// Rand is the random source for carving, difficulty adjustment and
	// random walks. Defaults to a time-seeded source; inject a fixed
	// seed for reproducible mazes.
	Rand *rand.Rand

	// Logger receives generation warnings. Defaults to stderr.
	Logger *log.Logger

	// Tiers maps difficulty names to their numeric settings. Defaults to
	// DefaultTiers.
	Tiers map[Difficulty]TierConfig

	// Limits holds the size and search bounds.
	Limits Limits
}

// Generator produces race mazes. It is safe for concurrent use: every
// Generate call owns its grid, and each randomized run draws its own
// independently-seeded random source from the configured one under a
// mutex, so concurrent runs never share random state.
type Generator struct {
	mu     sync.Mutex
	rng    *rand.Rand
	logger *log.Logger
	tiers  map[Difficulty]TierConfig
	limits Limits
}

// NewGenerator creates a Generator, filling unset options with
// defaults.
func NewGenerator(opts *Options) *Generator {
	if opts == nil {
		opts = &Options{}
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr, "mazegen: ", log.LstdFlags|log.Lshortfile)
	}

	tiers := opts.Tiers
	if tiers == nil {
		tiers = DefaultTiers()
	}

	limits := opts.Limits
	if limits.MaxDimension == 0 {
		limits.MaxDimension = defaultMaxDimension
	}
	if limits.HeuristicWeight == 0 {
		limits.HeuristicWeight = defaultHeuristicWeight
	}

	return &Generator{
		rng:    rng,
		logger: logger,
		tiers:  tiers,
		limits: limits,
	}
}

// Generate builds a fresh maze of the given dimensions and difficulty.
// The stages run in fixed order: carve a perfect maze, place start and
// finish, adjust difficulty, repair the start-finish route, seal the
// boundary. Unknown difficulty names fall back to the medium tier with
// a warning. Fails with ErrInvalidDimensions when either side is below
// MinDimension, and with ErrGenerationFailed when the repair pass
// cannot reconnect start and finish — which a correct build never hits.
func (gen *Generator) Generate(rows, cols int, difficulty string) (*MazeResult, error) {
	if rows < MinDimension || cols < MinDimension {
		return nil, fmt.Errorf("%w: got %dx%d, need at least %dx%d", ErrInvalidDimensions, rows, cols, MinDimension, MinDimension)
	}
	if rows > gen.limits.MaxDimension || cols > gen.limits.MaxDimension {
		gen.logger.Printf("[WARN] maze %dx%d exceeds recommended maximum %d, generation will be slow", rows, cols, gen.limits.MaxDimension)
	}

	tier, err := ParseDifficulty(difficulty)
	if err != nil {
		gen.logger.Printf("[WARN] %v, falling back to %q", err, DefaultDifficulty)
	}
	tierCfg, ok := gen.tiers[tier]
	if !ok {
		tierCfg = DefaultTiers()[tier]
	}

	rng := gen.runRand()

	// Carve the spanning tree; its walk origin becomes the start.
	grid := NewGrid(rows, cols)
	start := carve(grid, rng)

	// Finish goes on the reachable cell farthest from start.
	finish := FarthestFrom(grid, start)
	if finish == start {
		return nil, fmt.Errorf("%w: carved maze has no cell apart from start", ErrGenerationFailed)
	}
	grid.cells[start.Row][start.Col] = Start
	grid.cells[finish.Row][finish.Col] = Finish

	// Difficulty adjustment works on a clone, so a bad pass can never
	// leave the run with a half-modified grid.
	switch {
	case tierCfg.OpenFraction > 0:
		grid = openPassages(grid, tierCfg, rng)
	case tierCfg.SealFraction > 0:
		grid = sealWalls(grid, start, finish, tierCfg, rng)
	}

	if err := gen.repair(grid, start, finish); err != nil {
		return nil, err
	}
	sealBoundary(grid)

	result := &MazeResult{
		Grid:   grid,
		Start:  start,
		Finish: finish,
		Meta: Metadata{
			Rows:       rows,
			Cols:       cols,
			Difficulty: tier,
			CreatedAt:  time.Now().UTC(),
		},
	}

	if err := Validate(result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	return result, nil
}

// repair guarantees a passable route between start and finish. When the
// difficulty pass broke connectivity it re-carves along the A* route,
// or along the straight Bresenham line when A* finds nothing, then
// verifies once more.
func (gen *Generator) repair(g *Grid, start, finish Position) error {
	if ExistsPath(g, start, finish) {
		return nil
	}
	gen.logger.Printf("[WARN] start and finish disconnected after adjustment, re-carving")

	route := gen.FindPath(g, start, finish)
	if len(route) == 0 {
		// The straight line overwrites whatever walls it crosses.
		route = bresenhamLine(start, finish)
	}
	for _, p := range route {
		if p == start || p == finish {
			continue
		}
		g.cells[p.Row][p.Col] = Empty
	}

	if !ExistsPath(g, start, finish) {
		return fmt.Errorf("%w: start and finish disconnected after repair", ErrGenerationFailed)
	}
	return nil
}

// sealBoundary forces every perimeter cell to Wall. It runs last so no
// later step can violate the boundary invariant.
func sealBoundary(g *Grid) {
	for c := 0; c < g.cols; c++ {
		g.cells[0][c] = Wall
		g.cells[g.rows-1][c] = Wall
	}
	for r := 0; r < g.rows; r++ {
		g.cells[r][0] = Wall
		g.cells[r][g.cols-1] = Wall
	}
}

// FindPath runs the A* search with the generator's configured
// heuristic weight and iteration cap.
func (gen *Generator) FindPath(g *Grid, start, finish Position) []Position {
	iterCap := gen.limits.PathfinderCap
	if iterCap == 0 {
		iterCap = pathfinderCapFactor * g.rows * g.cols
	}
	return findPath(g, start, finish, gen.limits.HeuristicWeight, iterCap)
}

// RandomWalk samples random movement using a run-local random source
// drawn from the generator's.
func (gen *Generator) RandomWalk(g *Grid, origin Position, maxSteps int) []Position {
	return RandomWalk(g, origin, maxSteps, gen.runRand())
}

// runRand derives a fresh random source for one randomized run. Only
// the seed draw holds the mutex, so concurrent runs proceed without
// sharing random state, and a fixed configured seed still reproduces
// the same sequence of runs.
func (gen *Generator) runRand() *rand.Rand {
	gen.mu.Lock()
	defer gen.mu.Unlock()
	return rand.New(rand.NewSource(gen.rng.Int63()))
}

// bresenhamLine returns the integer line between two positions,
// endpoints inclusive.
func bresenhamLine(a, b Position) []Position {
	dr := b.Row - a.Row
	if dr < 0 {
		dr = -dr
	}
	dc := b.Col - a.Col
	if dc < 0 {
		dc = -dc
	}

	stepRow, stepCol := 1, 1
	if a.Row > b.Row {
		stepRow = -1
	}
	if a.Col > b.Col {
		stepCol = -1
	}

	line := []Position{a}
	cur := a
	errTerm := dc - dr
	for cur != b {
		double := 2 * errTerm
		if double > -dr {
			errTerm -= dr
			cur.Col += stepCol
		}
		if double < dc {
			errTerm += dc
			cur.Row += stepRow
		}
		line = append(line, cur)
	}
	return line
}
