// Package obj serializes tiling meshes as Wavefront OBJ text.
//
// What:
//
//   - Encode streams a mesh to an io.Writer; Marshal returns the bytes.
//   - Layout: one "o <name>-tiling" header, one "v <x> <y> 0" line per
//     point (the tiling is planar, z is fixed at 0), one "f" line per
//     face with 1-based vertex indices.
//   - The reverse flag emits each face's indices in reversed order,
//     flipping the perceived normal without changing which vertices
//     belong to a face.
//
// Errors:
//
//   - ErrNilMesh: Encode/Marshal received a nil mesh.
//   - Write failures on the underlying stream are wrapped with context
//     and propagated; nothing is retried.
//
// Complexity: O(points + Σ face sizes) time, O(1) extra memory beyond
// the write buffer.
package obj
