// Package commands defines the tessella CLI.
//
// Commands
//
//   - list       Print the names of the eleven uniform tilings
//   - generate   Generate a tiling patch and write it as Wavefront OBJ
//
// # Implementation
//
// generate resolves the tiling through the registry (tiling.ByName),
// builds the mesh, and streams it with obj.Encode — to stdout by
// default, or to the file named by --out with the handle closed on
// every path. All failures surface through RunE as non-zero exits.
package commands
