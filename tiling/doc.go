// Package tiling builds planar meshes for the eleven uniform tilings of
// the Euclidean plane: the regular triangle, square, and hexagon
// tilings, and the eight semi-regular (Archimedean) tilings.
//
// What:
//
//   - Each generator maps a (rows, cols) patch size to an immutable Mesh:
//     a name, a flat point slice, and a face index.
//   - Points occupy a rows×cols lattice in row-major order; the point for
//     logical cell (x, y) always sits at flat key x + y*cols. Every face
//     rule computes its neighbor keys by offset arithmetic on this
//     invariant.
//   - Faces are emitted only for interior lattice cells, with per-tiling
//     margins sized to the rule's largest neighbor offset, so every key
//     in every face is in range by construction. Boundary cells stay
//     unfaced rather than clamped.
//   - The polygon mix per tiling is fixed by modular-arithmetic
//     discriminators over (x, y); these encode the combinatorial
//     structure of each tiling and are constant tables, not derived
//     geometry.
//
// Why:
//
//   - Procedural geometry: seed meshes for terrain, boards, and panels.
//   - Reference lattices: exact unit-edge Archimedean patterns with the
//     true √2/√3 offsets.
//   - Export: pair with package obj to write any mesh as Wavefront OBJ.
//
// Complexity:
//
//   - Every generator: O(rows·cols) time and memory. No hidden state;
//     repeated calls with equal dimensions are bit-identical, and a
//     larger patch reproduces the smaller patch's coordinates for all
//     shared (x, y).
//
// Errors:
//
//   - ErrDimension: rows or cols is negative.
//   - ErrOverflow: rows*cols does not fit the VertexKey range.
//   - ErrUnknownTiling: ByName received an unrecognized tiling name.
//
// Degenerate dimensions (zero, or below a tiling's interior margin) are
// valid inputs and yield a mesh with few or no faces, never an error.
package tiling
