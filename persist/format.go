// SPDX-License-Identifier: MIT

package persist

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/lvnet/matrix"
	"github.com/katalvlaran/lvnet/network"
)

// MaxElements bounds rows*columns of a single stored matrix.
const MaxElements = 1 << 26

// MaxLayers bounds the stored layer count.
const MaxLayers = 1 << 16

// readChunk is the number of float64 values decoded per read. Value buffers
// grow only as data arrives, so a short stream costs at most one chunk.
const readChunk = 4096

var byteOrder = binary.LittleEndian

// Encode writes the weights of n to w in the persist layout.
func Encode(w io.Writer, n *network.Network) error {
	if n == nil {
		return fmt.Errorf("Encode: %w", ErrNilNetwork)
	}

	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, byteOrder, int32(n.NumLayers())); err != nil {
		return fmt.Errorf("Encode: header: %w", err)
	}
	for l := 1; l < n.NumLayers(); l++ {
		wl, err := n.Weights(l)
		if err != nil {
			return fmt.Errorf("Encode: layer %d: %w", l, err)
		}
		shape, err := shapeHeader(wl.Rows(), wl.Cols())
		if err != nil {
			return fmt.Errorf("Encode: layer %d: %w", l, err)
		}
		if err = binary.Write(bw, byteOrder, shape); err != nil {
			return fmt.Errorf("Encode: layer %d shape: %w", l, err)
		}
		if err = binary.Write(bw, byteOrder, wl.RawData()); err != nil {
			return fmt.Errorf("Encode: layer %d values: %w", l, err)
		}
	}

	return bw.Flush()
}

// Decode reads a network written by Encode. It never returns a partially
// built network: every failure yields nil and an error wrapping ErrCorrupt.
func Decode(r io.Reader) (*network.Network, error) {
	br := bufio.NewReader(r)

	var layers int32
	if err := binary.Read(br, byteOrder, &layers); err != nil {
		return nil, corruptf("layer count: %v", err)
	}
	if layers < 2 || layers > MaxLayers {
		return nil, corruptf("layer count %d, want 2..%d", layers, MaxLayers)
	}

	weights := make([]*matrix.Dense, 0, layers-1)
	for l := int32(1); l < layers; l++ {
		var shape [2]int32
		if err := binary.Read(br, byteOrder, &shape); err != nil {
			return nil, corruptf("layer %d shape: %v", l, err)
		}
		rows, cols := int64(shape[0]), int64(shape[1])
		if rows < 1 || cols < 1 || rows*cols > MaxElements {
			return nil, corruptf("layer %d shape %dx%d", l, rows, cols)
		}
		if n := len(weights); n > 0 && int64(weights[n-1].Cols()) != rows {
			return nil, corruptf("layer %d has %d rows, previous layer has %d nodes", l, rows, weights[n-1].Cols())
		}

		values, err := readValues(br, int(rows*cols))
		if err != nil {
			return nil, corruptf("layer %d values: %v", l, err)
		}
		m, err := matrix.NewDenseFrom(int(rows), int(cols), values)
		if err != nil {
			return nil, corruptf("layer %d: %v", l, err)
		}
		weights = append(weights, m)
	}

	n, err := network.FromWeights(weights)
	if err != nil {
		return nil, corruptf("%v", err)
	}

	return n, nil
}

// shapeHeader converts a matrix shape to its on-disk int32 pair.
func shapeHeader(rows, cols int) ([2]int32, error) {
	if rows > math.MaxInt32 || cols > math.MaxInt32 {
		return [2]int32{}, fmt.Errorf("shape %dx%d: %w", rows, cols, ErrShapeOverflow)
	}

	return [2]int32{int32(rows), int32(cols)}, nil
}

// readValues decodes count little-endian float64 values in readChunk steps.
func readValues(r io.Reader, count int) ([]float64, error) {
	values := make([]float64, 0, min(count, readChunk))
	chunk := make([]float64, min(count, readChunk))
	for len(values) < count {
		part := chunk[:min(count-len(values), readChunk)]
		if err := binary.Read(r, byteOrder, part); err != nil {
			return nil, err
		}
		values = append(values, part...)
	}

	return values, nil
}

func corruptf(format string, args ...interface{}) error {
	return fmt.Errorf("Decode: %s: %w", fmt.Sprintf(format, args...), ErrCorrupt)
}
