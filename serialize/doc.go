// Package serialize encodes and decodes a PuzzleState to and from the
// plain-text persisted form consumed by external loaders: a handful of
// semicolon-delimited sections carrying a version tag, the grid
// dimensions, and tile characters row-major, with an optional pair of
// further sections (version 2) carrying line-state characters for the
// horizontal and vertical edge grids.
//
// This mirrors solver/serialization.py's PuzzleSerializer, extended with a
// decode path and a second version the original only ever wrote one
// direction: the original serializer has no corresponding reader, and never
// persists line state at all.
package serialize
