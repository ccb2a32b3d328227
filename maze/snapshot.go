package maze

import (
	"encoding/json"
	"fmt"
)

// snapshot is the JSON wire form of a MazeResult.
type snapshot struct {
	Grid     [][]CellType `json:"grid"`
	Start    *Position    `json:"start"`
	Finish   *Position    `json:"finish"`
	Metadata Metadata     `json:"metadata"`
}

// Serialize encodes a MazeResult as a JSON snapshot of
// {grid, start, finish, metadata}.
func Serialize(res *MazeResult) ([]byte, error) {
	if res == nil || res.Grid == nil {
		return nil, fmt.Errorf("%w: nothing to serialize", ErrMalformedSnapshot)
	}

	start := res.Start
	finish := res.Finish
	return json.Marshal(snapshot{
		Grid:     res.Grid.cells,
		Start:    &start,
		Finish:   &finish,
		Metadata: res.Meta,
	})
}

// Deserialize decodes a JSON snapshot back into a MazeResult. Payloads
// missing the grid, start or finish fields fail with
// ErrMalformedSnapshot, and the decoded result is re-validated against
// the engine invariants before being returned — a snapshot from an
// external store is never trusted blindly.
func Deserialize(data []byte) (*MazeResult, error) {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}

	if len(snap.Grid) == 0 {
		return nil, fmt.Errorf("%w: missing grid", ErrMalformedSnapshot)
	}
	if snap.Start == nil {
		return nil, fmt.Errorf("%w: missing start", ErrMalformedSnapshot)
	}
	if snap.Finish == nil {
		return nil, fmt.Errorf("%w: missing finish", ErrMalformedSnapshot)
	}

	rows := len(snap.Grid)
	cols := len(snap.Grid[0])
	grid := NewGrid(rows, cols)
	for r, rowCells := range snap.Grid {
		if len(rowCells) != cols {
			return nil, fmt.Errorf("%w: ragged grid row %d", ErrMalformedSnapshot, r)
		}
		copy(grid.cells[r], rowCells)
	}

	res := &MazeResult{
		Grid:   grid,
		Start:  *snap.Start,
		Finish: *snap.Finish,
		Meta:   snap.Metadata,
	}
	if err := Validate(res); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	return res, nil
}
