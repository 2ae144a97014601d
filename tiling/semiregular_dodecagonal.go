package tiling

// The three dodecagon-bearing Archimedean tilings share a 4-row
// super-cell: y>>2 selects the super-row and y%4 the sub-row offset
// within it. Their face rules reach several rows up and down, which is
// why these three carry the widest interior margins in the package.

// SemiRegular6 builds the truncated hexagonal tiling (3.12.12):
// dodecagons packed edge-to-edge with triangles in the gaps.
//
// Lattice: 2-wide x super-cells stepping by 2+√3, sheared by the y
// super-row; sub-rows 1 and 2 shift right by a half unit. The dodecagon
// spans offsets x..x+3 and y-1..y+4, so emission runs for
// 1 ≤ y ≤ rows-5 and x ≤ cols-4.
func SemiRegular6(rows, cols int) (*Mesh, error) {
	if err := checkDims(rows, cols); err != nil {
		return nil, err
	}

	points := latticePoints(rows, cols, func(x, y int) (float64, float64) {
		px := float64(x>>1)*(2.0+sqrt3) + float64(x%2) + float64(y>>2)*(1.0+sqrt3*0.5)
		py := float64(y>>2) * (1.5 + sqrt3)
		switch y % 4 {
		case 1:
			px += 0.5
			py += sqrt3 * 0.5
		case 2:
			px += 0.5
			py += 1.0 + sqrt3*0.5
		case 3:
			py += 1.0 + sqrt3
		}
		return px, py
	})

	k := keyAt(cols)
	var faces FaceIndex
	for y := 1; y < rows-4; y++ {
		for x := 0; x < cols-3; x++ {
			if x%2 == 0 && y%4 == 0 {
				faces = append(faces, Face{
					k(x+1, y), k(x+2, y-1), k(x+3, y-1), k(x+2, y),
					k(x+2, y+1), k(x+2, y+2), k(x+2, y+3), k(x+1, y+4),
					k(x, y+4), k(x+1, y+3), k(x, y+2), k(x, y+1),
				})
				faces = append(faces, Face{k(x, y), k(x+1, y), k(x, y+1)})
			}
			if x%2 == 0 && y%4 == 2 {
				faces = append(faces, Face{k(x, y), k(x+1, y+1), k(x, y+1)})
			}
		}
	}

	return newMesh(NameSemiRegular6, rows, cols, points, faces), nil
}

// SemiRegular7 builds the rhombitrihexagonal tiling (3.4.6.4): each
// hexagon ringed by squares and triangles.
//
// Odd x sub-cells sit a full √3 to the right; sub-rows 0 and 3 swing out
// by √3/2 to form the hexagon flanks. Rules reach from x-2 to x+2 and
// y-2 to y+3, giving the 2-cell margins on every side.
func SemiRegular7(rows, cols int) (*Mesh, error) {
	if err := checkDims(rows, cols); err != nil {
		return nil, err
	}

	points := latticePoints(rows, cols, func(x, y int) (float64, float64) {
		px := float64(x>>1)*(1.0+sqrt3) + float64(x%2)*sqrt3 + float64(y>>2)*(0.5+sqrt3*0.5)
		py := float64(y>>2) * (1.5 + sqrt3*0.5)
		switch y % 4 {
		case 0:
			px += sqrt3 * 0.5
			py -= 0.5
		case 2:
			py += 1.0
		case 3:
			px += sqrt3 * 0.5
			py += 1.5
		}
		return px, py
	})

	k := keyAt(cols)
	var faces FaceIndex
	for y := 2; y < rows-3; y++ {
		for x := 2; x < cols-2; x++ {
			if x%2 == 0 && y%4 == 0 {
				faces = append(faces, Face{
					k(x, y), k(x+1, y+1), k(x+1, y+2),
					k(x, y+3), k(x, y+2), k(x, y+1),
				})
				faces = append(faces, Face{k(x, y), k(x+2, y-2), k(x+2, y-1), k(x+1, y+1)})
				faces = append(faces, Face{k(x+1, y+1), k(x+2, y-1), k(x+2, y+1)})
			}
			if x%2 == 1 && y%4 == 1 {
				faces = append(faces, Face{k(x, y), k(x+1, y), k(x+1, y+1), k(x, y+1)})
			}
			if x%2 == 1 && y%4 == 2 {
				faces = append(faces, Face{k(x, y), k(x-1, y+2), k(x-1, y+3), k(x-1, y+1)})
			}
			if x%2 == 0 && y%4 == 2 {
				faces = append(faces, Face{k(x-1, y), k(x, y), k(x-2, y+2)})
			}
		}
	}

	return newMesh(NameSemiRegular7, rows, cols, points, faces), nil
}

// SemiRegular8 builds the truncated trihexagonal tiling (4.6.12): the
// richest uniform tiling, mixing dodecagons, hexagons, and squares.
//
// Both axes use super-cells: x%4 picks one of four column offsets inside
// a 3+3√3 period, y%4 the sub-row as in SemiRegular7. The dodecagon rule
// reaches from x-3 to x+3 and y-3 to y+4, the widest span in the
// package, so both axes keep a 3-cell lead margin.
func SemiRegular8(rows, cols int) (*Mesh, error) {
	if err := checkDims(rows, cols); err != nil {
		return nil, err
	}

	points := latticePoints(rows, cols, func(x, y int) (float64, float64) {
		px := float64(x>>2)*(3.0+3.0*sqrt3) + float64(y>>2)*(1.5+1.5*sqrt3)
		py := float64(y>>2) * (1.5 + sqrt3*0.5)
		switch y % 4 {
		case 0:
			px += sqrt3 * 0.5
			py -= 0.5
		case 2:
			py += 1.0
		case 3:
			px += sqrt3 * 0.5
			py += 1.5
		}
		switch x % 4 {
		case 1:
			px += sqrt3
		case 2:
			px += 1.0 + sqrt3
		case 3:
			px += 1.0 + 2.0*sqrt3
		}
		return px, py
	})

	k := keyAt(cols)
	var faces FaceIndex
	for y := 3; y < rows-4; y++ {
		for x := 3; x < cols-3; x++ {
			if x%2 == 0 && y%4 == 0 {
				faces = append(faces, Face{
					k(x, y), k(x+1, y+1), k(x+1, y+2),
					k(x, y+3), k(x, y+2), k(x, y+1),
				})
			}
			if x%4 == 1 && y%4 == 1 {
				faces = append(faces, Face{k(x, y), k(x+1, y), k(x+1, y+1), k(x, y+1)})
			}
			if x%4 == 3 && y%4 == 2 {
				faces = append(faces, Face{k(x, y), k(x-3, y+2), k(x-3, y+3), k(x-1, y+1)})
			}
			if x%4 == 0 && y%4 == 2 {
				faces = append(faces, Face{k(x, y+1), k(x-1, y+3), k(x-2, y+2), k(x, y)})
			}
			if x%4 == 3 && y%4 == 1 {
				faces = append(faces, Face{
					k(x, y), k(x+1, y-2), k(x+2, y-3), k(x+3, y-3),
					k(x+3, y-2), k(x+1, y), k(x+1, y+1), k(x-1, y+3),
					k(x-1, y+4), k(x-2, y+4), k(x-3, y+3), k(x, y+1),
				})
			}
		}
	}

	return newMesh(NameSemiRegular8, rows, cols, points, faces), nil
}
