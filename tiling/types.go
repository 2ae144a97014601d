// Package tiling defines the Mesh record, its building blocks, and the
// sentinel errors shared by all generators.
package tiling

import (
	"errors"
	"math"
)

// Sentinel errors for tiling generation.
var (
	// ErrDimension indicates a negative rows or cols argument.
	ErrDimension = errors.New("tiling: rows and cols must be non-negative")

	// ErrOverflow indicates rows*cols exceeds the VertexKey range, so the
	// lattice cannot be indexed without wrapping.
	ErrOverflow = errors.New("tiling: rows*cols exceeds vertex key range")

	// ErrUnknownTiling indicates ByName received a name that matches none
	// of the eleven uniform tilings.
	ErrUnknownTiling = errors.New("tiling: unknown tiling name")
)

// maxLatticePoints is the largest rows*cols a mesh may hold: VertexKey
// is a uint32, and every key must satisfy key < rows*cols.
const maxLatticePoints = uint64(math.MaxUint32)

// VertexKey is the flat index of a lattice point within a Mesh's point
// slice. For a rows×cols lattice the point at logical cell (x, y) has
// key x + y*cols, with 0 ≤ x < cols and 0 ≤ y < rows.
type VertexKey uint32

// Point is a 2D position. Coordinates are computed in float64 and stored
// in float32; a point has no identity beyond its position.
type Point struct {
	X, Y float32
}

// Face is one polygon: an ordered list of three or more pairwise
// distinct vertex keys, wound counter-clockwise in the tiling's native
// orientation.
type Face []VertexKey

// FaceIndex is the ordered list of faces of one mesh. The order carries
// no meaning but is stable for equal inputs.
type FaceIndex []Face

// Mesh is the immutable result of one generator call: a tiling name, the
// rows×cols lattice points in row-major order, and the interior faces.
// A fresh Mesh is produced per call; no mutation operations exist.
type Mesh struct {
	name       string
	rows, cols int
	points     []Point
	faces      FaceIndex
}

// newMesh packages one generator's output. Callers have already passed
// checkDims, so rows*cols fits the key range.
func newMesh(name string, rows, cols int, points []Point, faces FaceIndex) *Mesh {
	return &Mesh{name: name, rows: rows, cols: cols, points: points, faces: faces}
}

// Name returns the tiling identifier, e.g. "SQUARE" or "SEMI-REGULAR-3".
func (m *Mesh) Name() string { return m.name }

// Rows returns the requested lattice row count.
func (m *Mesh) Rows() int { return m.rows }

// Cols returns the requested lattice column count.
func (m *Mesh) Cols() int { return m.cols }

// Points returns the lattice points in row-major order. The returned
// slice is the mesh's backing storage and must not be modified.
func (m *Mesh) Points() []Point { return m.points }

// Faces returns the face index. The returned slice is the mesh's backing
// storage and must not be modified.
func (m *Mesh) Faces() FaceIndex { return m.faces }

// Index returns the flat vertex key for lattice cell (x, y).
// Valid for 0 ≤ x < Cols() and 0 ≤ y < Rows().
func (m *Mesh) Index(x, y int) VertexKey {
	return VertexKey(x + y*m.cols)
}

// Coordinate inverts Index: it returns the lattice cell (x, y) of the
// given vertex key. A mesh with no columns has no points and therefore
// no valid keys; Coordinate returns (0, 0) for it rather than dividing
// by zero.
func (m *Mesh) Coordinate(key VertexKey) (x, y int) {
	if m.cols == 0 {
		return 0, 0
	}
	return int(key) % m.cols, int(key) / m.cols
}

// checkDims validates a generator's dimensions: both non-negative and a
// lattice small enough to index with VertexKey. It is the only failure
// surface of the generation core.
func checkDims(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return ErrDimension
	}
	// Division form: the product rows*cols can itself wrap uint64 for
	// huge dimensions, so never compute it before this check passes.
	if rows > 0 && uint64(cols) > maxLatticePoints/uint64(rows) {
		return ErrOverflow
	}
	return nil
}
