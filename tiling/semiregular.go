package tiling

// Mesh names for the eight semi-regular (Archimedean) tilings, numbered
// as in the variants registry.
const (
	NameSemiRegular1 = "SEMI-REGULAR-1"
	NameSemiRegular2 = "SEMI-REGULAR-2"
	NameSemiRegular3 = "SEMI-REGULAR-3"
	NameSemiRegular4 = "SEMI-REGULAR-4"
	NameSemiRegular5 = "SEMI-REGULAR-5"
	NameSemiRegular6 = "SEMI-REGULAR-6"
	NameSemiRegular7 = "SEMI-REGULAR-7"
	NameSemiRegular8 = "SEMI-REGULAR-8"
)

// SemiRegular1 builds the snub trihexagonal tiling (3.3.3.3.6):
// hexagons floating in a sea of triangles on the triangular lattice.
//
// The repeating unit is 7 cells wide along (x + 3y); the discriminator
// (x+3y) mod 7 selects, per cell, up-triangle, down-triangle, both, a
// hexagon, or nothing. The hexagon reaches one cell left and one row up,
// so emission starts at x=1, y=1.
func SemiRegular1(rows, cols int) (*Mesh, error) {
	if err := checkDims(rows, cols); err != nil {
		return nil, err
	}

	points := latticePoints(rows, cols, func(x, y int) (float64, float64) {
		return float64(x) + 0.5*float64(y), float64(y) * sqrt3 * 0.5
	})

	k := keyAt(cols)
	var faces FaceIndex
	for y := 1; y < rows-1; y++ {
		for x := 1; x < cols-1; x++ {
			i := (x + 3*y) % 7
			if i == 0 || i == 2 || i >= 5 {
				faces = append(faces, Face{k(x, y), k(x+1, y), k(x, y+1)})
			}
			if i == 2 || i >= 4 {
				faces = append(faces, Face{k(x+1, y), k(x+1, y+1), k(x, y+1)})
			}
			if i == 4 {
				faces = append(faces, Face{
					k(x+1, y), k(x, y+1), k(x-1, y+1),
					k(x-1, y), k(x, y-1), k(x+1, y-1),
				})
			}
		}
	}

	return newMesh(NameSemiRegular1, rows, cols, points, faces), nil
}

// SemiRegular2 builds the truncated square tiling (4.8.8): octagons with
// small squares filling the gaps.
//
// Points sit on a 2×2 super-cell: the x and y halves step by 2+√2 and
// 1+√2/2 respectively, with the odd sub-cell offset by one unit edge.
// Octagons span cells (x-1..x+2, y-1..y+2) and so run over the tighter
// interior range; squares only reach one step right and down.
func SemiRegular2(rows, cols int) (*Mesh, error) {
	if err := checkDims(rows, cols); err != nil {
		return nil, err
	}

	points := latticePoints(rows, cols, func(x, y int) (float64, float64) {
		px := float64(x>>1)*(2.0+sqrt2) + float64(x%2) + float64(y>>1)*(1.0+sqrt2*0.5)
		py := float64(y>>1)*(1.0+sqrt2*0.5) + float64(y%2)
		return px, py
	})

	k := keyAt(cols)
	var faces FaceIndex
	for y := 1; y < rows-2; y++ {
		for x := 1; x < cols-2; x++ {
			if x%2 == 1 && y%2 == 0 {
				faces = append(faces, Face{
					k(x, y), k(x+1, y-1), k(x+2, y-1), k(x+1, y),
					k(x+1, y+1), k(x, y+2), k(x-1, y+2), k(x, y+1),
				})
			}
		}
	}
	for y := 0; y < rows-1; y++ {
		for x := 0; x < cols-1; x++ {
			if x%2 == 0 && y%2 == 0 {
				faces = append(faces, Face{k(x, y), k(x+1, y), k(x+1, y+1), k(x, y+1)})
			}
		}
	}

	return newMesh(NameSemiRegular2, rows, cols, points, faces), nil
}

// SemiRegular3 builds the elongated triangular tiling (3.3.3.4.4):
// alternating rows of squares and triangle strips.
//
// Even lattice rows carry one quad per cell; odd rows split each cell
// into an up/down triangle pair. Row pairs step by 1+√3/2, the triangle
// strip shifting by half a cell.
func SemiRegular3(rows, cols int) (*Mesh, error) {
	if err := checkDims(rows, cols); err != nil {
		return nil, err
	}

	points := latticePoints(rows, cols, func(x, y int) (float64, float64) {
		px := float64(x) + 0.5*float64(y>>1)
		py := float64(y>>1)*(1.0+sqrt3*0.5) + float64(y%2)
		return px, py
	})

	k := keyAt(cols)
	var faces FaceIndex
	for y := 0; y < rows-1; y++ {
		for x := 0; x < cols-1; x++ {
			if y%2 == 0 {
				faces = append(faces, Face{k(x, y), k(x+1, y), k(x+1, y+1), k(x, y+1)})
			} else {
				faces = append(faces,
					Face{k(x, y), k(x+1, y), k(x, y+1)},
					Face{k(x+1, y), k(x+1, y+1), k(x, y+1)},
				)
			}
		}
	}

	return newMesh(NameSemiRegular3, rows, cols, points, faces), nil
}

// SemiRegular4 builds the trihexagonal tiling (3.6.3.6): hexagons and
// triangles alternating around every vertex, on the triangular lattice.
//
// Each 2×2 parity class of (x, y) owns one cell type: up-triangles,
// down-triangles, or a hexagon spanning two rows. The hexagon reaches
// x-1 and y+2, so x starts at 1 and y stops at rows-3.
func SemiRegular4(rows, cols int) (*Mesh, error) {
	if err := checkDims(rows, cols); err != nil {
		return nil, err
	}

	points := latticePoints(rows, cols, func(x, y int) (float64, float64) {
		return float64(x) + 0.5*float64(y), float64(y) * sqrt3 * 0.5
	})

	k := keyAt(cols)
	var faces FaceIndex
	for y := 0; y < rows-2; y++ {
		for x := 1; x < cols-1; x++ {
			if x%2 == 0 && y%2 == 0 {
				faces = append(faces, Face{k(x, y), k(x+1, y), k(x, y+1)})
			}
			if x%2 == 0 && y%2 == 1 {
				faces = append(faces, Face{k(x, y), k(x, y+1), k(x-1, y+1)})
			}
			if x%2 == 1 && y%2 == 0 {
				faces = append(faces, Face{
					k(x, y), k(x+1, y), k(x+1, y+1),
					k(x, y+2), k(x-1, y+2), k(x-1, y+1),
				})
			}
		}
	}

	return newMesh(NameSemiRegular4, rows, cols, points, faces), nil
}

// SemiRegular5 builds the snub square tiling (3.3.4.3.4): tilted squares
// separated by triangle pairs.
//
// Points live on a 2×2 super-cell whose halves step by 1+√3/2 and shear
// against each other by half a unit, producing the snub rotation. Every
// parity class emits at least one face; the left-leaning triangle
// reaches x-1, hence the x ≥ 1 margin.
func SemiRegular5(rows, cols int) (*Mesh, error) {
	if err := checkDims(rows, cols); err != nil {
		return nil, err
	}

	points := latticePoints(rows, cols, func(x, y int) (float64, float64) {
		px := float64(x>>1)*(1.0+sqrt3*0.5) + float64(x%2) - float64(y>>1)*0.5
		py := float64(y>>1)*(1.0+sqrt3*0.5) + float64(y%2) + float64(x>>1)*0.5
		return px, py
	})

	k := keyAt(cols)
	var faces FaceIndex
	for y := 0; y < rows-1; y++ {
		for x := 1; x < cols-1; x++ {
			if x%2 == 0 && y%2 == 0 {
				faces = append(faces,
					Face{k(x, y), k(x+1, y), k(x+1, y+1), k(x, y+1)},
					Face{k(x, y), k(x, y+1), k(x-1, y+1)},
				)
			}
			if x%2 == 1 && y%2 == 0 {
				faces = append(faces, Face{k(x, y), k(x+1, y), k(x, y+1)})
			}
			if x%2 == 0 && y%2 == 1 {
				faces = append(faces,
					Face{k(x, y), k(x+1, y), k(x+1, y+1)},
					Face{k(x, y), k(x+1, y+1), k(x, y+1)},
				)
			}
			if x%2 == 1 && y%2 == 1 {
				faces = append(faces, Face{k(x, y), k(x+1, y), k(x+1, y+1), k(x, y+1)})
			}
		}
	}

	return newMesh(NameSemiRegular5, rows, cols, points, faces), nil
}
