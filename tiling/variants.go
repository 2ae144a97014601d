package tiling

import "strings"

// Generator produces the mesh for one uniform tiling at the requested
// patch size. All eleven generators in this package satisfy it.
type Generator func(rows, cols int) (*Mesh, error)

// Variant pairs a tiling's canonical mesh name with its generator, so
// callers can enumerate or look up tilings without hard-coding the
// function set.
type Variant struct {
	// Name is the mesh identifier the generator stamps on its output,
	// e.g. "HEXAGON" or "SEMI-REGULAR-5".
	Name string

	// Generate builds the tiling's mesh.
	Generate Generator
}

// variants lists the eleven uniform tilings in canonical order: the
// three regular tilings first, then the semi-regular tilings 1-8.
var variants = []Variant{
	{NameTriangle, Triangle},
	{NameSquare, Square},
	{NameHexagon, Hexagon},
	{NameSemiRegular1, SemiRegular1},
	{NameSemiRegular2, SemiRegular2},
	{NameSemiRegular3, SemiRegular3},
	{NameSemiRegular4, SemiRegular4},
	{NameSemiRegular5, SemiRegular5},
	{NameSemiRegular6, SemiRegular6},
	{NameSemiRegular7, SemiRegular7},
	{NameSemiRegular8, SemiRegular8},
}

// Variants returns all eleven uniform tilings in canonical order. The
// returned slice is a copy; callers may reorder it freely.
func Variants() []Variant {
	out := make([]Variant, len(variants))
	copy(out, variants)
	return out
}

// ByName looks up a tiling by its canonical name, case-insensitively.
// Unknown names return ErrUnknownTiling.
func ByName(name string) (Variant, error) {
	want := strings.ToUpper(strings.TrimSpace(name))
	for _, v := range variants {
		if v.Name == want {
			return v, nil
		}
	}
	return Variant{}, ErrUnknownTiling
}
