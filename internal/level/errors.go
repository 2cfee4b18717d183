package level

import "errors"

var (
	// ErrLevelNotFound is returned when no record matches a stage and level.
	ErrLevelNotFound = errors.New("level: not found")

	// ErrMalformedLevelData is returned when a level record has no tile data.
	ErrMalformedLevelData = errors.New("level: malformed level data")

	// ErrUnresolvedTileReference marks a cell whose tile id has no usable
	// definition or drawable. The cell is skipped, never surfaced to callers.
	ErrUnresolvedTileReference = errors.New("level: unresolved tile reference")
)
