package obj

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/tessella/tiling"
)

// ErrNilMesh indicates Encode or Marshal was handed a nil mesh.
var ErrNilMesh = errors.New("obj: nil mesh")

// Encode writes m to w in Wavefront OBJ text form. Points keep their
// stored float32 precision (shortest round-trip formatting); vertex
// indices are 1-based per the OBJ format. With reverse set, each face's
// indices are emitted back-to-front.
//
// The writer is buffered internally; the buffer is flushed before
// returning and any write or flush error is propagated.
func Encode(w io.Writer, m *tiling.Mesh, reverse bool) error {
	if m == nil {
		return ErrNilMesh
	}

	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "o %s-tiling\n", m.Name()); err != nil {
		return fmt.Errorf("obj: write header: %w", err)
	}

	for _, p := range m.Points() {
		if err := writeVertex(bw, p); err != nil {
			return err
		}
	}

	for _, face := range m.Faces() {
		if err := writeFace(bw, face, reverse); err != nil {
			return err
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("obj: flush: %w", err)
	}

	return nil
}

// Marshal renders m to a byte slice using Encode.
func Marshal(m *tiling.Mesh, reverse bool) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, m, reverse); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// writeVertex emits one "v <x> <y> 0" line. 'g' with precision -1 is the
// shortest representation that round-trips the stored float32.
func writeVertex(bw *bufio.Writer, p tiling.Point) error {
	line := make([]byte, 0, 32)
	line = append(line, 'v', ' ')
	line = strconv.AppendFloat(line, float64(p.X), 'g', -1, 32)
	line = append(line, ' ')
	line = strconv.AppendFloat(line, float64(p.Y), 'g', -1, 32)
	line = append(line, ' ', '0', '\n')
	if _, err := bw.Write(line); err != nil {
		return fmt.Errorf("obj: write vertex: %w", err)
	}

	return nil
}

// writeFace emits one "f <i> <i> ..." line with 1-based indices, reversed
// when requested.
func writeFace(bw *bufio.Writer, face tiling.Face, reverse bool) error {
	line := make([]byte, 0, 64)
	line = append(line, 'f')
	if reverse {
		for i := len(face) - 1; i >= 0; i-- {
			line = append(line, ' ')
			line = strconv.AppendUint(line, uint64(face[i])+1, 10)
		}
	} else {
		for _, key := range face {
			line = append(line, ' ')
			line = strconv.AppendUint(line, uint64(key)+1, 10)
		}
	}
	line = append(line, '\n')
	if _, err := bw.Write(line); err != nil {
		return fmt.Errorf("obj: write face: %w", err)
	}

	return nil
}
