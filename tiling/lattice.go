package tiling

import "math"

// Irrational edge constants shared by the unit-cell transforms.
// sqrt3 is spelled out to keep the literal identical across builds.
const (
	sqrt2 = math.Sqrt2
	sqrt3 = 1.732050807568877293
)

// latticePoints fills the rows×cols point slice in row-major order,
// y outermost, evaluating the tiling-specific transform in float64 and
// narrowing to float32 for storage.
//
// The transform depends only on (x, y), never on rows or cols, so a
// larger patch reproduces a smaller patch's coordinates exactly.
func latticePoints(rows, cols int, at func(x, y int) (px, py float64)) []Point {
	pts := make([]Point, 0, rows*cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			px, py := at(x, y)
			pts = append(pts, Point{X: float32(px), Y: float32(py)})
		}
	}
	return pts
}

// keyAt returns the flat-index function for a cols-wide lattice.
// Face rules express every corner as keyAt offsets of the cell (x, y)
// they are emitted from; the per-tiling interior margins guarantee the
// results stay within [0, rows*cols).
func keyAt(cols int) func(x, y int) VertexKey {
	return func(x, y int) VertexKey {
		return VertexKey(x + y*cols)
	}
}
