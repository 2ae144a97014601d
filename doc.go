// Package tessella generates 2D meshes for every uniform tiling of the
// Euclidean plane — the three regular tilings and all eight semi-regular
// (Archimedean) tilings.
//
// 🚀 What is tessella?
//
//	A small, deterministic library that turns a (rows, cols) patch size
//	into a planar mesh:
//		• Regular tilings: triangle, square, hexagon
//		• Semi-regular tilings: all eight Archimedean patterns, from the
//		  truncated square (4.8.8) up to the truncated trihexagonal (4.6.12)
//		• One shared output contract: {name, points, faces} with flat
//		  row-major vertex keys (x + y*cols)
//		• Wavefront OBJ export for any generated mesh
//
// ✨ Why choose tessella?
//
//   - Deterministic – same dimensions in, bit-identical mesh out
//   - Pure functions – no shared state, safe to call concurrently
//   - Exact lattices – unit-length edges with the true √2/√3 offsets
//   - Boundary-safe – interior face emission never indexes out of range
//
// Everything is organized under three packages:
//
//	tiling/ — mesh record, the eleven generators, named-variant registry
//	obj/    — Wavefront OBJ text encoder for generated meshes
//	cmd/    — the tessella CLI (generate patches, list variants)
//
// Quick ASCII example:
//
//	    0───1───2
//	    │   │   │
//	    3───4───5
//
//	tiling.Square(2, 3) yields six points and two quad faces,
//	[0 1 4 3] and [1 2 5 4].
//
//	go get github.com/katalvlaran/tessella
package tessella
