package maze

import "errors"

// error types
var (
	// ErrInvalidDimensions rejects generation requests below the 5×5 minimum.
	ErrInvalidDimensions = errors.New("maze dimensions below minimum")

	// ErrInvalidDifficulty marks an unrecognized difficulty tier name.
	// The generator recovers from it by substituting the medium tier.
	ErrInvalidDifficulty = errors.New("unrecognized difficulty tier")

	// ErrGenerationFailed means the repair pass could not reconnect start
	// and finish. It signals an implementation defect, not a user error.
	ErrGenerationFailed = errors.New("maze generation failed")

	// ErrOutOfBounds marks a position outside the grid dimensions.
	ErrOutOfBounds = errors.New("position out of grid bounds")

	// ErrMalformedSnapshot rejects snapshot payloads missing the grid,
	// start or finish fields.
	ErrMalformedSnapshot = errors.New("malformed maze snapshot")
)
