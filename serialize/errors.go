package serialize

import "errors"

// Sentinel errors for decoding a persisted blob. Callers MUST use
// errors.Is to branch on semantics; messages are not part of the
// contract.
var (
	// ErrMalformedBlob indicates the blob does not split into the
	// expected number of semicolon-delimited sections, or a section is
	// missing its required prefix.
	ErrMalformedBlob = errors.New("serialize: malformed blob")

	// ErrUnsupportedVersion indicates the v= section names a version
	// this package does not know how to decode.
	ErrUnsupportedVersion = errors.New("serialize: unsupported version")

	// ErrDimensionMismatch indicates the declared s=WxH section disagrees
	// with the number of tile or line characters actually present.
	ErrDimensionMismatch = errors.New("serialize: dimension mismatch")

	// ErrUnknownTileChar indicates a tile section byte is not one of A/C/S.
	ErrUnknownTileChar = errors.New("serialize: unknown tile character")

	// ErrUnknownLineChar indicates a line section byte is not one of A/L/E.
	ErrUnknownLineChar = errors.New("serialize: unknown line character")
)
