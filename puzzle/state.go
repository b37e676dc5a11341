package puzzle

// PuzzleState is the grid: a dense tile array plus the two orthogonal edge
// grids carrying ternary line state. It is the only mutable, owned state in
// the solver; every other package computes views over it.
//
// Layout: tiles[y][x] for 0<=x<width, 0<=y<height.
// hlines[y][x] is the horizontal edge between (x,y) and (x+1,y), for
// 0<=x<width-1, 0<=y<height.
// vlines[y][x] is the vertical edge between (x,y) and (x,y+1), for
// 0<=x<width, 0<=y<height-1.
type PuzzleState struct {
	width, height int
	tiles         [][]TileType
	hlines        [][]LineState
	vlines        [][]LineState
	notify        func(kind EdgeKind, x, y int, v LineState)
}

// EdgeKind distinguishes the two edge grids for notification purposes.
type EdgeKind int

const (
	// HLineKind marks a horizontal-edge mutation.
	HLineKind EdgeKind = iota
	// VLineKind marks a vertical-edge mutation.
	VLineKind
)

func (k EdgeKind) String() string {
	if k == VLineKind {
		return "VLINE"
	}

	return "HLINE"
}

// SetNotifier registers fn to be called after every successful SetHLine or
// SetVLine call, with the edge's kind, coordinate, and new state. Passing
// nil disables notification. The zero-value PuzzleState has no notifier and
// pays nothing for this hook.
func (s *PuzzleState) SetNotifier(fn func(kind EdgeKind, x, y int, v LineState)) {
	s.notify = fn
}

// NewPuzzleState constructs a width x height grid with every tile Any and
// every edge LineAny. Returns ErrInvalidDimensions if width or height is not
// positive.
//
// Complexity: O(W x H).
func NewPuzzleState(width, height int) (*PuzzleState, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	s := &PuzzleState{width: width, height: height}
	s.tiles = make([][]TileType, height)
	for y := range s.tiles {
		s.tiles[y] = make([]TileType, width)
	}
	s.hlines = make([][]LineState, height)
	for y := range s.hlines {
		s.hlines[y] = make([]LineState, maxInt(width-1, 0))
	}
	s.vlines = make([][]LineState, maxInt(height-1, 0))
	for y := range s.vlines {
		s.vlines[y] = make([]LineState, width)
	}

	return s, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}

// Width returns the number of tile columns.
func (s *PuzzleState) Width() int { return s.width }

// Height returns the number of tile rows.
func (s *PuzzleState) Height() int { return s.height }

// GetTile returns the tile kind at (x,y) and true, or (Any, false) if the
// coordinate is off-grid. Off-grid queries never panic.
//
// Complexity: O(1).
func (s *PuzzleState) GetTile(x, y int) (TileType, bool) {
	if !s.inBounds(x, y) {
		return Any, false
	}

	return s.tiles[y][x], true
}

// SetTile assigns the tile kind at (x,y). Returns ErrOutOfRange, without
// mutating state, if (x,y) lies outside the grid.
func (s *PuzzleState) SetTile(x, y int, t TileType) error {
	if !s.inBounds(x, y) {
		return ErrOutOfRange
	}
	s.tiles[y][x] = t

	return nil
}

// GetHLine returns the horizontal edge state between (x,y) and (x+1,y) and
// true, or (LineAny, false) if that edge does not exist (x out of
// [0,width-2] or y out of [0,height-1]).
//
// Complexity: O(1).
func (s *PuzzleState) GetHLine(x, y int) (LineState, bool) {
	if x < 0 || x >= s.width-1 || y < 0 || y >= s.height {
		return LineAny, false
	}

	return s.hlines[y][x], true
}

// SetHLine assigns the horizontal edge state between (x,y) and (x+1,y).
// Returns ErrOutOfRange, without mutating state or notifying, if the edge
// does not exist.
func (s *PuzzleState) SetHLine(x, y int, v LineState) error {
	if x < 0 || x >= s.width-1 || y < 0 || y >= s.height {
		return ErrOutOfRange
	}
	s.hlines[y][x] = v
	if s.notify != nil {
		s.notify(HLineKind, x, y, v)
	}

	return nil
}

// GetVLine returns the vertical edge state between (x,y) and (x,y+1) and
// true, or (LineAny, false) if that edge does not exist (x out of
// [0,width-1] or y out of [0,height-2]).
//
// Complexity: O(1).
func (s *PuzzleState) GetVLine(x, y int) (LineState, bool) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height-1 {
		return LineAny, false
	}

	return s.vlines[y][x], true
}

// SetVLine assigns the vertical edge state between (x,y) and (x,y+1).
// Returns ErrOutOfRange, without mutating state or notifying, if the edge
// does not exist.
func (s *PuzzleState) SetVLine(x, y int, v LineState) error {
	if x < 0 || x >= s.width || y < 0 || y >= s.height-1 {
		return ErrOutOfRange
	}
	s.vlines[y][x] = v
	if s.notify != nil {
		s.notify(VLineKind, x, y, v)
	}

	return nil
}

func (s *PuzzleState) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Snapshot is a whole-state value copy used by the search driver's
// backtrack stack. It shares no backing arrays with the PuzzleState it was
// taken from, nor with any other Snapshot.
type Snapshot struct {
	width, height int
	tiles         [][]TileType
	hlines        [][]LineState
	vlines        [][]LineState
}

// Snapshot captures a deep copy of the current state.
//
// Complexity: O(W x H).
func (s *PuzzleState) Snapshot() Snapshot {
	return Snapshot{
		width:  s.width,
		height: s.height,
		tiles:  cloneTiles(s.tiles),
		hlines: cloneLines(s.hlines),
		vlines: cloneLines(s.vlines),
	}
}

// Restore overwrites the state in place from a Snapshot taken from a state
// of the same dimensions.
//
// Complexity: O(W x H).
func (s *PuzzleState) Restore(snap Snapshot) {
	s.width = snap.width
	s.height = snap.height
	s.tiles = cloneTiles(snap.tiles)
	s.hlines = cloneLines(snap.hlines)
	s.vlines = cloneLines(snap.vlines)
}

func cloneTiles(src [][]TileType) [][]TileType {
	dst := make([][]TileType, len(src))
	for i, row := range src {
		dst[i] = append([]TileType(nil), row...)
	}

	return dst
}

func cloneLines(src [][]LineState) [][]LineState {
	dst := make([][]LineState, len(src))
	for i, row := range src {
		dst[i] = append([]LineState(nil), row...)
	}

	return dst
}
