package tiling_test

import (
	"testing"

	"github.com/katalvlaran/tessella/tiling"
)

//----------------------------------------------------------------------------//
// Cross-variant invariants: these hold for all eleven uniform tilings.
//----------------------------------------------------------------------------//

// TestPointCount verifies len(points) == rows*cols for every variant and
// a spread of dimensions, including degenerate ones.
func TestPointCount(t *testing.T) {
	dims := [][2]int{{0, 0}, {0, 7}, {7, 0}, {1, 1}, {5, 3}, {16, 16}}
	for _, v := range tiling.Variants() {
		t.Run(v.Name, func(t *testing.T) {
			for _, d := range dims {
				m, err := v.Generate(d[0], d[1])
				if err != nil {
					t.Fatalf("Generate(%d,%d) error: %v", d[0], d[1], err)
				}
				if got, want := len(m.Points()), d[0]*d[1]; got != want {
					t.Errorf("Generate(%d,%d): %d points; want %d", d[0], d[1], got, want)
				}
			}
		})
	}
}

// TestFaceKeysInBoundsAndDistinct verifies that every face of every
// variant references only valid point indices, never repeats a key, and
// has at least three vertices.
func TestFaceKeysInBoundsAndDistinct(t *testing.T) {
	const rows, cols = 17, 14
	for _, v := range tiling.Variants() {
		t.Run(v.Name, func(t *testing.T) {
			m, err := v.Generate(rows, cols)
			if err != nil {
				t.Fatalf("Generate error: %v", err)
			}
			limit := tiling.VertexKey(rows * cols)
			for fi, face := range m.Faces() {
				if len(face) < 3 {
					t.Fatalf("face %d has %d vertices; want ≥ 3", fi, len(face))
				}
				seen := make(map[tiling.VertexKey]bool, len(face))
				for _, key := range face {
					if key >= limit {
						t.Fatalf("face %d key %d out of bounds (limit %d)", fi, key, limit)
					}
					if seen[key] {
						t.Fatalf("face %d repeats key %d", fi, key)
					}
					seen[key] = true
				}
			}
		})
	}
}

// TestDeterminism verifies that two calls with equal dimensions yield
// bit-identical points and faces.
func TestDeterminism(t *testing.T) {
	for _, v := range tiling.Variants() {
		t.Run(v.Name, func(t *testing.T) {
			a, err := v.Generate(12, 11)
			if err != nil {
				t.Fatalf("first call: %v", err)
			}
			b, err := v.Generate(12, 11)
			if err != nil {
				t.Fatalf("second call: %v", err)
			}
			if len(a.Points()) != len(b.Points()) || len(a.Faces()) != len(b.Faces()) {
				t.Fatalf("calls disagree on sizes: %d/%d points, %d/%d faces",
					len(a.Points()), len(b.Points()), len(a.Faces()), len(b.Faces()))
			}
			for i := range a.Points() {
				if a.Points()[i] != b.Points()[i] {
					t.Fatalf("point %d differs: %v vs %v", i, a.Points()[i], b.Points()[i])
				}
			}
			for i := range a.Faces() {
				fa, fb := a.Faces()[i], b.Faces()[i]
				if len(fa) != len(fb) {
					t.Fatalf("face %d length differs", i)
				}
				for j := range fa {
					if fa[j] != fb[j] {
						t.Fatalf("face %d key %d differs: %d vs %d", i, j, fa[j], fb[j])
					}
				}
			}
		})
	}
}

// TestPatchConsistency verifies that point positions depend only on
// (x, y), never on patch size: a larger patch reproduces the smaller
// patch's coordinates at every shared cell.
func TestPatchConsistency(t *testing.T) {
	const (
		r1, c1 = 8, 9
		r2, c2 = 12, 14
	)
	for _, v := range tiling.Variants() {
		t.Run(v.Name, func(t *testing.T) {
			small, err := v.Generate(r1, c1)
			if err != nil {
				t.Fatalf("small patch: %v", err)
			}
			large, err := v.Generate(r2, c2)
			if err != nil {
				t.Fatalf("large patch: %v", err)
			}
			for y := 0; y < r1; y++ {
				for x := 0; x < c1; x++ {
					ps := small.Points()[small.Index(x, y)]
					pl := large.Points()[large.Index(x, y)]
					if ps != pl {
						t.Fatalf("cell (%d,%d): %v in %dx%d vs %v in %dx%d",
							x, y, ps, r1, c1, pl, r2, c2)
					}
				}
			}
		})
	}
}

// TestDegenerateDimensions verifies sub-margin patches produce no faces
// and no error.
func TestDegenerateDimensions(t *testing.T) {
	dims := [][2]int{{0, 0}, {0, 7}, {7, 0}, {1, 1}}
	for _, v := range tiling.Variants() {
		t.Run(v.Name, func(t *testing.T) {
			for _, d := range dims {
				m, err := v.Generate(d[0], d[1])
				if err != nil {
					t.Fatalf("Generate(%d,%d) error: %v", d[0], d[1], err)
				}
				if len(m.Faces()) != 0 {
					t.Errorf("Generate(%d,%d): %d faces; want 0", d[0], d[1], len(m.Faces()))
				}
			}
		})
	}
}

// TestVariantsOrder pins the canonical registry order and that each
// variant stamps its own name on the mesh.
func TestVariantsOrder(t *testing.T) {
	want := []string{
		tiling.NameTriangle, tiling.NameSquare, tiling.NameHexagon,
		tiling.NameSemiRegular1, tiling.NameSemiRegular2, tiling.NameSemiRegular3,
		tiling.NameSemiRegular4, tiling.NameSemiRegular5, tiling.NameSemiRegular6,
		tiling.NameSemiRegular7, tiling.NameSemiRegular8,
	}
	vs := tiling.Variants()
	if len(vs) != len(want) {
		t.Fatalf("Variants() length = %d; want %d", len(vs), len(want))
	}
	for i, v := range vs {
		if v.Name != want[i] {
			t.Errorf("Variants()[%d].Name = %q; want %q", i, v.Name, want[i])
		}
		m, err := v.Generate(6, 6)
		if err != nil {
			t.Fatalf("%s: %v", v.Name, err)
		}
		if m.Name() != v.Name {
			t.Errorf("mesh name %q; want %q", m.Name(), v.Name)
		}
	}
}
