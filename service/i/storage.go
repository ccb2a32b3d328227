package i

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/natnael-worku/mazerace/maze"
)

// ErrSnapshotNotFound is returned by stores and caches when no
// snapshot exists for a table.
var ErrSnapshotNotFound = errors.New("no maze snapshot for table")

// SnapshotStore persists maze snapshots per race table.
type SnapshotStore interface {
	// Save inserts or replaces the snapshot for a table.
	Save(ctx context.Context, tableID uuid.UUID, res *maze.MazeResult) error

	// ByTable loads and re-validates the snapshot for a table.
	// Returns ErrSnapshotNotFound when none exists.
	ByTable(ctx context.Context, tableID uuid.UUID) (*maze.MazeResult, error)

	// Delete removes the snapshot for a table, if any.
	Delete(ctx context.Context, tableID uuid.UUID) error
}

// SnapshotCache is a fast lookaside over the SnapshotStore for tables
// with a race in progress.
type SnapshotCache interface {
	// Set stores the snapshot for a table with the cache's TTL.
	Set(ctx context.Context, tableID uuid.UUID, res *maze.MazeResult) error

	// Get returns the cached snapshot, or ErrSnapshotNotFound on a miss.
	Get(ctx context.Context, tableID uuid.UUID) (*maze.MazeResult, error)

	// Evict drops the cached snapshot for a table, if any.
	Evict(ctx context.Context, tableID uuid.UUID) error
}

// TableLocker serializes maze generation per table across processes.
type TableLocker interface {
	// Acquire takes the named lock and returns a release function.
	Acquire(ctx context.Context, name string) (release func(), err error)
}
