package circdtw

import "errors"

var (
	// ErrEmptyInput indicates one or both input sequences are empty.
	ErrEmptyInput = errors.New("circdtw: input sequences must be non-empty")

	// ErrBadInput indicates an invalid option value (Window < -1).
	ErrBadInput = errors.New("circdtw: invalid options")

	// ErrPathNeedsMatrix indicates ReturnPath=true with MemoryMode != FullMatrix.
	ErrPathNeedsMatrix = errors.New("circdtw: ReturnPath requires MemoryMode=FullMatrix")
)

// MemoryMode controls how DTW stores its DP matrix.
type MemoryMode int

const (
	// FullMatrix mode: store all rows, support path recovery, O(N·M) memory.
	FullMatrix MemoryMode = iota

	// TwoRows mode: keep only two rows, no path recovery, O(min(N,M)) memory.
	TwoRows
)

// Coord is one point of the alignment path: indices into the two inputs.
type Coord struct {
	I, J int
}

// Options configures DTW.
//
// Fields:
//   - Window       — Sakoe–Chiba band: maximum allowed |i-j|.  -1 disables
//     the constraint; 0 forces the diagonal; values < -1 are rejected.
//   - SlopePenalty — extra cost for insertion/deletion steps (locality bias).
//   - ReturnPath   — backtrack and return the optimal warping path.
//     Requires MemoryMode=FullMatrix.
//   - MemoryMode   — FullMatrix or TwoRows storage.
type Options struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultOptions returns the default configuration: no window constraint,
// no slope penalty, no path, full matrix.
func DefaultOptions() Options {
	return Options{Window: -1, SlopePenalty: 0, ReturnPath: false, MemoryMode: FullMatrix}
}
