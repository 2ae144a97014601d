package obj_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tessella/obj"
	"github.com/katalvlaran/tessella/tiling"
)

// failWriter rejects every write, standing in for a broken stream.
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("stream closed")
}

// TestMarshalSquareGolden pins the exact OBJ text for a 2×2 square
// patch: integer vertices, 1-based face indices.
func TestMarshalSquareGolden(t *testing.T) {
	m, err := tiling.Square(2, 2)
	require.NoError(t, err)

	got, err := obj.Marshal(m, false)
	require.NoError(t, err)

	want := "o SQUARE-tiling\n" +
		"v 0 0 0\n" +
		"v 1 0 0\n" +
		"v 0 1 0\n" +
		"v 1 1 0\n" +
		"f 1 2 4 3\n"
	require.Equal(t, want, string(got))
}

// TestMarshalReversedWinding verifies reverse flips face order only: the
// vertex block is untouched and each face lists the same indices
// back-to-front.
func TestMarshalReversedWinding(t *testing.T) {
	m, err := tiling.Triangle(2, 2)
	require.NoError(t, err)

	fwd, err := obj.Marshal(m, false)
	require.NoError(t, err)
	rev, err := obj.Marshal(m, true)
	require.NoError(t, err)

	fwdLines := strings.Split(strings.TrimSuffix(string(fwd), "\n"), "\n")
	revLines := strings.Split(strings.TrimSuffix(string(rev), "\n"), "\n")
	require.Len(t, fwdLines, 1+4+2)
	require.Equal(t, fwdLines[:5], revLines[:5], "header and vertex block must not change")

	require.Equal(t, "f 1 2 3", fwdLines[5])
	require.Equal(t, "f 2 4 3", fwdLines[6])
	require.Equal(t, "f 3 2 1", revLines[5])
	require.Equal(t, "f 3 4 2", revLines[6])
}

// TestEncodeHeader checks the object naming convention for a
// semi-regular mesh.
func TestEncodeHeader(t *testing.T) {
	m, err := tiling.SemiRegular6(8, 8)
	require.NoError(t, err)

	out, err := obj.Marshal(m, false)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(out), "o SEMI-REGULAR-6-tiling\n"))
}

// TestEncodeWriteFailure propagates stream errors instead of retrying.
func TestEncodeWriteFailure(t *testing.T) {
	m, err := tiling.Square(64, 64)
	require.NoError(t, err)

	err = obj.Encode(failWriter{}, m, false)
	require.Error(t, err)
	require.Contains(t, err.Error(), "obj:")
}

// TestEncodeNilMesh rejects a nil mesh with the sentinel.
func TestEncodeNilMesh(t *testing.T) {
	err := obj.Encode(&strings.Builder{}, nil, false)
	require.ErrorIs(t, err, obj.ErrNilMesh)
}
