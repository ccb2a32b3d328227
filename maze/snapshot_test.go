package maze

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	gen := testGenerator(31)
	res, err := gen.Generate(21, 21, "hard")
	require.NoError(t, err)

	data, err := Serialize(res)
	require.NoError(t, err)

	restored, err := Deserialize(data)
	require.NoError(t, err)

	assert.True(t, res.Grid.Equal(restored.Grid))
	assert.Equal(t, res.Start, restored.Start)
	assert.Equal(t, res.Finish, restored.Finish)
	assert.Equal(t, res.Meta.Rows, restored.Meta.Rows)
	assert.Equal(t, res.Meta.Cols, restored.Meta.Cols)
	assert.Equal(t, res.Meta.Difficulty, restored.Meta.Difficulty)
	assert.True(t, res.Meta.CreatedAt.Equal(restored.Meta.CreatedAt))
}

func TestDeserializeRejects(t *testing.T) {
	gen := testGenerator(32)
	res, err := gen.Generate(9, 9, "medium")
	require.NoError(t, err)

	validData, err := Serialize(res)
	require.NoError(t, err)

	// strip removes one top-level field from a valid snapshot payload.
	strip := func(t *testing.T, field string) []byte {
		t.Helper()
		var payload map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(validData, &payload))
		delete(payload, field)
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		return data
	}

	t.Run("missing grid", func(t *testing.T) {
		_, err := Deserialize(strip(t, "grid"))
		assert.ErrorIs(t, err, ErrMalformedSnapshot)
	})

	t.Run("missing start", func(t *testing.T) {
		_, err := Deserialize(strip(t, "start"))
		assert.ErrorIs(t, err, ErrMalformedSnapshot)
	})

	t.Run("missing finish", func(t *testing.T) {
		_, err := Deserialize(strip(t, "finish"))
		assert.ErrorIs(t, err, ErrMalformedSnapshot)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := Deserialize([]byte("{not json"))
		assert.ErrorIs(t, err, ErrMalformedSnapshot)
	})

	t.Run("broken invariants", func(t *testing.T) {
		// Punch a hole in the boundary before re-encoding.
		tampered, err := Deserialize(validData)
		require.NoError(t, err)
		require.NoError(t, tampered.Grid.Set(Position{Row: 0, Col: 0}, Empty))

		data, err := Serialize(tampered)
		require.NoError(t, err)

		_, err = Deserialize(data)
		assert.ErrorIs(t, err, ErrMalformedSnapshot)
	})

	t.Run("ragged grid", func(t *testing.T) {
		var payload map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(validData, &payload))

		var grid [][]CellType
		require.NoError(t, json.Unmarshal(payload["grid"], &grid))
		grid[2] = grid[2][:3]
		raw, err := json.Marshal(grid)
		require.NoError(t, err)
		payload["grid"] = raw

		data, err := json.Marshal(payload)
		require.NoError(t, err)

		_, err = Deserialize(data)
		assert.ErrorIs(t, err, ErrMalformedSnapshot)
	})
}
