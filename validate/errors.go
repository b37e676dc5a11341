package validate

import "errors"

// ErrUnknownTileType is returned when a vertex carries a puzzle.TileType
// value outside the known set. It indicates a programming error elsewhere
// in the module — puzzle.NewPuzzleState never produces such a tile.
var ErrUnknownTileType = errors.New("validate: unknown tile type")
