// SPDX-License-Identifier: MIT

package network_test

import (
	"testing"

	"github.com/katalvlaran/lvnet/matrix"
	"github.com/katalvlaran/lvnet/network"
	"github.com/stretchr/testify/require"
)

// bounds is an open interval (lo, hi).
type bounds struct{ lo, hi float64 }

func TestInfer_Fixture231(t *testing.T) {
	n := fixture231(t)
	in := xorInputs(t)
	before := in.RawData()

	out, err := n.Infer(in)
	require.NoError(t, err)
	require.Equal(t, 4, out.Rows())
	require.Equal(t, 1, out.Cols())

	want := []bounds{{0.499, 0.501}, {0.462, 0.463}, {0.681, 0.682}, {0.611, 0.612}}
	for e, b := range want {
		requireBetween(t, b.lo, b.hi, mustAt(t, out, e, 0), "example %d", e)
	}

	require.Equal(t, before, in.RawData())
	require.Nil(t, n.Activations(), "Infer must not populate the cache")
}

func TestInferForTraining_CachesActivations(t *testing.T) {
	n := fixture231(t)
	in := xorInputs(t)

	out, err := n.InferForTraining(in)
	require.NoError(t, err)

	acts := n.Activations()
	require.Len(t, acts, 3)
	require.Equal(t, in.RawData(), acts[0].RawData())
	require.Equal(t, out.RawData(), acts[2].RawData())

	hidden := [][]bounds{
		{{0.499, 0.501}, {0.499, 0.501}, {0.499, 0.501}},
		{{0.268, 0.269}, {0.731, 0.732}, {0.119, 0.120}},
		{{0.119, 0.120}, {0.499, 0.501}, {0.880, 0.881}},
		{{0.047, 0.048}, {0.731, 0.732}, {0.499, 0.501}},
	}
	for e, row := range hidden {
		for j, b := range row {
			requireBetween(t, b.lo, b.hi, mustAt(t, acts[1], e, j), "activation[1][%d][%d]", e, j)
		}
	}
}

func TestInferForTraining_InputsArePrivate(t *testing.T) {
	n := fixture231(t)
	in := xorInputs(t)

	_, err := n.InferForTraining(in)
	require.NoError(t, err)
	require.NoError(t, in.Set(0, 0, 99))

	require.Equal(t, 0.0, mustAt(t, n.Activations()[0], 0, 0))

	// Activations hands out copies as well.
	n.Activations()[1].Apply(func(_, _ int, _ float64) float64 { return -1 })
	require.NotEqual(t, -1.0, mustAt(t, n.Activations()[1], 0, 0))
}

func TestInferForTraining_ResetsCache(t *testing.T) {
	n := fixture231(t)
	_, err := n.InferForTraining(xorInputs(t))
	require.NoError(t, err)

	single, err := matrix.NewDenseFrom(1, 2, []float64{1, 0})
	require.NoError(t, err)
	_, err = n.InferForTraining(single)
	require.NoError(t, err)

	for l, a := range n.Activations() {
		require.Equal(t, 1, a.Rows(), "layer %d still holds the old batch", l)
	}

	n.ClearActivations()
	require.Nil(t, n.Activations())
}

func TestInferValues(t *testing.T) {
	n := fixture231(t)
	out, err := n.InferValues([]float64{1, 1})
	require.NoError(t, err)
	requireBetween(t, 0.611, 0.612, mustAt(t, out, 0, 0))

	_, err = n.InferValues([]float64{1})
	require.ErrorIs(t, err, network.ErrInputShape)
}

func TestInfer_ShapeErrors(t *testing.T) {
	n := fixture231(t)
	bad, err := matrix.NewDense(4, 3)
	require.NoError(t, err)

	_, err = n.Infer(bad)
	require.ErrorIs(t, err, network.ErrInputShape)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = n.InferForTraining(bad)
	require.ErrorIs(t, err, network.ErrInputShape)

	_, err = n.Infer(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
