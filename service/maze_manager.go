package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/natnael-worku/mazerace/config"
	"github.com/natnael-worku/mazerace/maze"
	"github.com/natnael-worku/mazerace/service/i"
)

const (
	defaultMazeRows   = 21
	defaultMazeCols   = 21
	defaultDifficulty = "medium"

	tableLockFmt = "mazerace:lock:table_%s"
)

// MazeManager serves one maze per race table. A maze is generated on
// first request, persisted to the snapshot store, and cached for the
// duration of the race. All methods are safe for concurrent use: each
// generation run owns its grid, the engine hands every randomized run
// its own random source, and the per-table lock keeps two callers from
// generating for the same table at once.
type MazeManager struct {
	engine i.MazeEngine
	store  i.SnapshotStore
	cache  i.SnapshotCache
	locker i.TableLocker
	logger *log.Logger

	rows       int
	cols       int
	difficulty string
}

// Config carries the collaborators and table defaults for a
// MazeManager.
type Config struct {
	Engine i.MazeEngine
	Store  i.SnapshotStore
	Cache  i.SnapshotCache
	Locker i.TableLocker
	Logger *log.Logger

	// Rows, Cols and Difficulty are the per-table defaults; zero values
	// fall back to 21×21 medium.
	Rows       int
	Cols       int
	Difficulty string
}

// NewMazeManager creates a MazeManager from the given config.
func NewMazeManager(c *Config) (*MazeManager, error) {
	if c.Engine == nil {
		return nil, errors.New("maze manager requires an engine")
	}
	if c.Store == nil || c.Cache == nil || c.Locker == nil {
		return nil, errors.New("maze manager requires store, cache and locker")
	}

	logger := c.Logger
	if logger == nil {
		logger = log.New(os.Stderr, "mazemanager: ", log.LstdFlags)
	}

	m := &MazeManager{
		engine:     c.Engine,
		store:      c.Store,
		cache:      c.Cache,
		locker:     c.Locker,
		logger:     logger,
		rows:       c.Rows,
		cols:       c.Cols,
		difficulty: c.Difficulty,
	}
	if m.rows == 0 {
		m.rows = defaultMazeRows
	}
	if m.cols == 0 {
		m.cols = defaultMazeCols
	}
	if m.difficulty == "" {
		m.difficulty = defaultDifficulty
	}
	return m, nil
}

// MazeForTable returns the maze for a race table, generating and
// persisting one on first request. Lookup order: cache, store,
// generate. The store load already re-validates the snapshot, so a
// corrupted record surfaces as an error instead of a broken maze.
func (m *MazeManager) MazeForTable(ctx context.Context, tableID uuid.UUID) (*maze.MazeResult, error) {
	if res, err := m.cache.Get(ctx, tableID); err == nil {
		return res, nil
	} else if !errors.Is(err, i.ErrSnapshotNotFound) {
		m.logger.Printf("%s[ERROR]%s cache lookup for table %s: %s", config.LogErrorColor, config.LogColorReset, tableID, err)
	}

	release, err := m.locker.Acquire(ctx, fmt.Sprintf(tableLockFmt, tableID))
	if err != nil {
		return nil, fmt.Errorf("acquiring generation lock for table %s: %w", tableID, err)
	}
	defer release()

	// Another caller may have generated while we waited on the lock.
	if res, err := m.cache.Get(ctx, tableID); err == nil {
		return res, nil
	}

	if res, err := m.store.ByTable(ctx, tableID); err == nil {
		if cacheErr := m.cache.Set(ctx, tableID, res); cacheErr != nil {
			m.logger.Printf("%s[ERROR]%s caching stored maze for table %s: %s", config.LogErrorColor, config.LogColorReset, tableID, cacheErr)
		}
		return res, nil
	} else if !errors.Is(err, i.ErrSnapshotNotFound) {
		return nil, fmt.Errorf("loading maze for table %s: %w", tableID, err)
	}

	res, err := m.engine.Generate(m.rows, m.cols, m.difficulty)
	if err != nil {
		return nil, fmt.Errorf("generating maze for table %s: %w", tableID, err)
	}

	if err := m.store.Save(ctx, tableID, res); err != nil {
		return nil, fmt.Errorf("persisting maze for table %s: %w", tableID, err)
	}
	if err := m.cache.Set(ctx, tableID, res); err != nil {
		m.logger.Printf("%s[ERROR]%s caching maze for table %s: %s", config.LogErrorColor, config.LogColorReset, tableID, err)
	}

	m.logger.Printf("%s[INFO]%s generated %dx%d %s maze for table %s", config.LogInfoColor, config.LogColorReset, m.rows, m.cols, m.difficulty, tableID)
	return res, nil
}

// RouteForRacer returns the A* route between two cells of a table's
// maze. An empty route means the destination is unreachable.
func (m *MazeManager) RouteForRacer(ctx context.Context, tableID uuid.UUID, from, to maze.Position) ([]maze.Position, error) {
	res, err := m.MazeForTable(ctx, tableID)
	if err != nil {
		return nil, err
	}
	return m.engine.FindPath(res.Grid, from, to), nil
}

// DriftMove samples random movement for an automated racer on a
// table's maze.
func (m *MazeManager) DriftMove(ctx context.Context, tableID uuid.UUID, from maze.Position, maxSteps int) ([]maze.Position, error) {
	res, err := m.MazeForTable(ctx, tableID)
	if err != nil {
		return nil, err
	}
	return m.engine.RandomWalk(res.Grid, from, maxSteps), nil
}

// ForgetTable drops the table's maze from cache and store, typically
// after a race settles.
func (m *MazeManager) ForgetTable(ctx context.Context, tableID uuid.UUID) error {
	if err := m.cache.Evict(ctx, tableID); err != nil {
		m.logger.Printf("%s[ERROR]%s evicting maze for table %s: %s", config.LogErrorColor, config.LogColorReset, tableID, err)
	}
	if err := m.store.Delete(ctx, tableID); err != nil {
		return fmt.Errorf("deleting maze for table %s: %w", tableID, err)
	}
	m.logger.Printf("%s[INFO]%s forgot maze for table %s", config.LogInfoColor, config.LogColorReset, tableID)
	return nil
}
