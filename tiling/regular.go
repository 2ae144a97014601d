package tiling

// Mesh names for the three regular tilings.
const (
	NameTriangle = "TRIANGLE"
	NameSquare   = "SQUARE"
	NameHexagon  = "HEXAGON"
)

// Triangle builds the regular triangular tiling (vertex configuration
// 3.3.3.3.3.3) on a rows×cols lattice.
//
// Contract:
//   - Points: rows*cols, at (x + y/2, y·√3/2); a 60° rhombic lattice.
//   - Faces: two triangles per interior cell, for x ≤ cols-2, y ≤ rows-2.
//   - Complexity: O(rows·cols) time and memory.
func Triangle(rows, cols int) (*Mesh, error) {
	if err := checkDims(rows, cols); err != nil {
		return nil, err
	}

	points := latticePoints(rows, cols, func(x, y int) (float64, float64) {
		return float64(x) + 0.5*float64(y), float64(y) * sqrt3 * 0.5
	})

	k := keyAt(cols)
	var faces FaceIndex
	for y := 0; y < rows-1; y++ {
		for x := 0; x < cols-1; x++ {
			faces = append(faces,
				Face{k(x, y), k(x+1, y), k(x, y+1)},
				Face{k(x+1, y), k(x+1, y+1), k(x, y+1)},
			)
		}
	}

	return newMesh(NameTriangle, rows, cols, points, faces), nil
}

// Square builds the regular square tiling (4.4.4.4): the unit grid, one
// quad face per interior cell.
func Square(rows, cols int) (*Mesh, error) {
	if err := checkDims(rows, cols); err != nil {
		return nil, err
	}

	points := latticePoints(rows, cols, func(x, y int) (float64, float64) {
		return float64(x), float64(y)
	})

	k := keyAt(cols)
	var faces FaceIndex
	for y := 0; y < rows-1; y++ {
		for x := 0; x < cols-1; x++ {
			faces = append(faces, Face{k(x, y), k(x+1, y), k(x+1, y+1), k(x, y+1)})
		}
	}

	return newMesh(NameSquare, rows, cols, points, faces), nil
}

// Hexagon builds the regular hexagonal tiling (6.6.6).
//
// The lattice staggers x in a brick pattern: each point shifts by the
// parity of (x+y) within a 3-wide period, and odd rows slide back by
// 1.5, so that alternating columns of each row pair form hexagon walls.
// One hexagon is emitted per matching parity cell, spanning three rows,
// hence the y ≤ rows-3 margin.
func Hexagon(rows, cols int) (*Mesh, error) {
	if err := checkDims(rows, cols); err != nil {
		return nil, err
	}

	points := latticePoints(rows, cols, func(x, y int) (float64, float64) {
		px := float64((x+y%2)/2)*3.0 + float64((x+y)%2) - float64(y%2)*1.5
		return px, float64(y) * sqrt3 * 0.5
	})

	k := keyAt(cols)
	var faces FaceIndex
	for y := 0; y < rows-2; y++ {
		for x := 0; x < cols-1; x++ {
			if (y%2 == 0 && x%2 == 0) || (y%2 == 1 && x%2 == 1) {
				faces = append(faces, Face{
					k(x, y), k(x+1, y),
					k(x+1, y+1), k(x+1, y+2),
					k(x, y+2), k(x, y+1),
				})
			}
		}
	}

	return newMesh(NameHexagon, rows, cols, points, faces), nil
}
