package serialize

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/masyu/puzzle"
)

const (
	// VersionTiles persists only the tile grid: v=1;s=WxH;<tiles>.
	VersionTiles = 1
	// VersionFull additionally persists both line-state grids:
	// v=2;s=WxH;<tiles>;<hlines>;<vlines>.
	VersionFull = 2
)

const (
	delim            = ";"
	versionPrefix    = "v="
	dimensionsPrefix = "s="
	dimensionsDelim  = "x"
)

// Marshal encodes state at the requested version. Version must be
// VersionTiles or VersionFull; any other value is a programming error and
// panics rather than returning an error for it.
func Marshal(state *puzzle.PuzzleState, version int) string {
	if version != VersionTiles && version != VersionFull {
		panic("serialize: unsupported version")
	}

	w, h := state.Width(), state.Height()
	sections := []string{
		versionPrefix + strconv.Itoa(version),
		dimensionsPrefix + strconv.Itoa(w) + dimensionsDelim + strconv.Itoa(h),
		marshalTiles(state),
	}
	if version == VersionFull {
		sections = append(sections, marshalHLines(state), marshalVLines(state))
	}

	return strings.Join(sections, delim)
}

func marshalTiles(state *puzzle.PuzzleState) string {
	var b strings.Builder
	w, h := state.Width(), state.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			t, _ := state.GetTile(x, y)
			b.WriteString(t.String())
		}
	}

	return b.String()
}

func marshalHLines(state *puzzle.PuzzleState) string {
	var b strings.Builder
	w, h := state.Width(), state.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w-1; x++ {
			v, _ := state.GetHLine(x, y)
			b.WriteString(v.String())
		}
	}

	return b.String()
}

func marshalVLines(state *puzzle.PuzzleState) string {
	var b strings.Builder
	w, h := state.Width(), state.Height()
	for y := 0; y < h-1; y++ {
		for x := 0; x < w; x++ {
			v, _ := state.GetVLine(x, y)
			b.WriteString(v.String())
		}
	}

	return b.String()
}

// Unmarshal decodes blob into a fresh PuzzleState. Both VersionTiles and
// VersionFull blobs are accepted; a VersionTiles blob leaves every edge at
// its PuzzleState zero value (LineAny). Decoding never returns a partially
// built state: every section is validated before NewPuzzleState is called.
func Unmarshal(blob string) (*puzzle.PuzzleState, error) {
	sections := strings.Split(blob, delim)
	if len(sections) != 3 && len(sections) != 5 {
		return nil, fmt.Errorf("%w: expected 3 or 5 sections, got %d", ErrMalformedBlob, len(sections))
	}

	version, err := parseVersion(sections[0])
	if err != nil {
		return nil, err
	}
	if version == VersionTiles && len(sections) != 3 {
		return nil, fmt.Errorf("%w: version 1 blob must have 3 sections", ErrMalformedBlob)
	}
	if version == VersionFull && len(sections) != 5 {
		return nil, fmt.Errorf("%w: version 2 blob must have 5 sections", ErrMalformedBlob)
	}

	w, h, err := parseDimensions(sections[1])
	if err != nil {
		return nil, err
	}

	tiles, err := parseTiles(sections[2], w, h)
	if err != nil {
		return nil, err
	}

	var hlines, vlines []LineState
	if version == VersionFull {
		hlines, err = parseLines(sections[3], (w-1)*h)
		if err != nil {
			return nil, err
		}
		vlines, err = parseLines(sections[4], w*(h-1))
		if err != nil {
			return nil, err
		}
	}

	state, err := puzzle.NewPuzzleState(w, h)
	if err != nil {
		return nil, err
	}
	applyTiles(state, tiles)
	if version == VersionFull {
		applyHLines(state, hlines)
		applyVLines(state, vlines)
	}

	return state, nil
}

func parseVersion(section string) (int, error) {
	raw := strings.TrimPrefix(section, versionPrefix)
	if raw == section {
		return 0, fmt.Errorf("%w: version section missing %q prefix", ErrMalformedBlob, versionPrefix)
	}

	version, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedBlob, err)
	}
	if version != VersionTiles && version != VersionFull {
		return 0, fmt.Errorf("%w: version %d", ErrUnsupportedVersion, version)
	}

	return version, nil
}

func parseDimensions(section string) (int, int, error) {
	raw := strings.TrimPrefix(section, dimensionsPrefix)
	if raw == section {
		return 0, 0, fmt.Errorf("%w: dimensions section missing %q prefix", ErrMalformedBlob, dimensionsPrefix)
	}

	parts := strings.SplitN(raw, dimensionsDelim, 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: dimensions must be WxH", ErrMalformedBlob)
	}

	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrMalformedBlob, err)
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrMalformedBlob, err)
	}

	return w, h, nil
}

// TileState is a decoded tile character, in row-major order, reusing
// puzzle's own enum so callers never need a translation step.
type TileState = puzzle.TileType

// LineState is a decoded line character, reusing puzzle's own enum so
// callers never need a translation step.
type LineState = puzzle.LineState

func parseTiles(section string, w, h int) ([]TileState, error) {
	if len(section) != w*h {
		return nil, fmt.Errorf("%w: tile section has %d chars, want %d", ErrDimensionMismatch, len(section), w*h)
	}

	out := make([]TileState, len(section))
	for i := 0; i < len(section); i++ {
		t, ok := tileFromChar(section[i])
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTileChar, section[i])
		}
		out[i] = t
	}

	return out, nil
}

func parseLines(section string, want int) ([]LineState, error) {
	if len(section) != want {
		return nil, fmt.Errorf("%w: line section has %d chars, want %d", ErrDimensionMismatch, len(section), want)
	}

	out := make([]LineState, len(section))
	for i := 0; i < len(section); i++ {
		v, ok := lineFromChar(section[i])
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLineChar, section[i])
		}
		out[i] = v
	}

	return out, nil
}

func tileFromChar(c byte) (TileState, bool) {
	switch c {
	case 'A':
		return puzzle.Any, true
	case 'C':
		return puzzle.Corner, true
	case 'S':
		return puzzle.Straight, true
	default:
		return 0, false
	}
}

func lineFromChar(c byte) (LineState, bool) {
	switch c {
	case 'A':
		return puzzle.LineAny, true
	case 'L':
		return puzzle.Line, true
	case 'E':
		return puzzle.Empty, true
	default:
		return 0, false
	}
}

func applyTiles(state *puzzle.PuzzleState, tiles []TileState) {
	w := state.Width()
	for i, t := range tiles {
		if t == puzzle.Any {
			continue
		}
		state.SetTile(i%w, i/w, t)
	}
}

func applyHLines(state *puzzle.PuzzleState, lines []LineState) {
	w := state.Width()
	if w <= 1 {
		return
	}
	for i, v := range lines {
		if v == puzzle.LineAny {
			continue
		}
		state.SetHLine(i%(w-1), i/(w-1), v)
	}
}

func applyVLines(state *puzzle.PuzzleState, lines []LineState) {
	w := state.Width()
	for i, v := range lines {
		if v == puzzle.LineAny {
			continue
		}
		state.SetVLine(i%w, i/w, v)
	}
}
