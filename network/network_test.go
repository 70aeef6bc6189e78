// SPDX-License-Identifier: MIT

package network_test

import (
	"testing"

	"github.com/katalvlaran/lvnet/matrix"
	"github.com/katalvlaran/lvnet/network"
	"github.com/stretchr/testify/require"
)

func TestNewFromLayout_Shapes(t *testing.T) {
	n, err := network.NewFromLayout("2, 3, 1")
	require.NoError(t, err)

	require.Equal(t, 3, n.NumLayers())
	require.Equal(t, 2, n.NumInputs())
	require.Equal(t, 1, n.NumOutputs())
	require.Equal(t, []int{2, 3, 1}, n.Layout())
	require.Equal(t, "Network(2, 3, 1)", n.String())

	for layer, want := range []int{2, 3, 1} {
		got, err := n.NodeCount(layer)
		require.NoError(t, err)
		require.Equal(t, want, got, "layer %d", layer)
	}

	w1, err := n.Weights(1)
	require.NoError(t, err)
	r, c := w1.Shape()
	require.Equal(t, [2]int{2, 3}, [2]int{r, c})
	require.Equal(t, make([]float64, 6), w1.RawData())

	w2, err := n.Weights(2)
	require.NoError(t, err)
	r, c = w2.Shape()
	require.Equal(t, [2]int{3, 1}, [2]int{r, c})
}

func TestNew_InvalidLayout(t *testing.T) {
	for _, layout := range [][]int{nil, {3}, {2, 0, 1}, {-1, 2}} {
		_, err := network.New(layout)
		require.ErrorIs(t, err, network.ErrInvalidLayout, "layout %v", layout)
	}
}

func TestLayerIndexErrors(t *testing.T) {
	n := fixture231(t)

	_, err := n.NodeCount(-1)
	require.ErrorIs(t, err, network.ErrLayerIndex)
	_, err = n.NodeCount(3)
	require.ErrorIs(t, err, network.ErrLayerIndex)

	_, err = n.Weights(0)
	require.ErrorIs(t, err, network.ErrLayerIndex)
	_, err = n.Weights(3)
	require.ErrorIs(t, err, network.ErrLayerIndex)

	require.ErrorIs(t, n.SetWeights(0, []float64{1}), network.ErrLayerIndex)
	require.ErrorIs(t, n.SetWeights(1, []float64{1, 2}), matrix.ErrValueCount)
}

func TestWeightsReturnsCopy(t *testing.T) {
	n := fixture231(t)
	w, err := n.Weights(1)
	require.NoError(t, err)
	require.NoError(t, w.Set(0, 0, 100))

	again, err := n.Weights(1)
	require.NoError(t, err)
	require.Equal(t, []float64{-2, 0, 2, -1, 1, -2}, again.RawData())
}

func TestFromWeights(t *testing.T) {
	w1, err := matrix.NewDenseFrom(2, 3, []float64{-2, 0, 2, -1, 1, -2})
	require.NoError(t, err)
	w2, err := matrix.NewDenseFrom(3, 1, []float64{-1, 0, 1})
	require.NoError(t, err)

	n, err := network.FromWeights([]*matrix.Dense{w1, w2})
	require.NoError(t, err)
	require.Equal(t, []int{2, 3, 1}, n.Layout())

	// the network owns copies
	require.NoError(t, w1.Set(0, 0, 42))
	got, err := n.Weights(1)
	require.NoError(t, err)
	require.Equal(t, -2.0, mustAt(t, got, 0, 0))

	want, err := fixture231(t).Infer(xorInputs(t))
	require.NoError(t, err)
	out, err := n.Infer(xorInputs(t))
	require.NoError(t, err)
	require.Equal(t, want.RawData(), out.RawData())
}

func TestFromWeights_Invalid(t *testing.T) {
	_, err := network.FromWeights(nil)
	require.ErrorIs(t, err, network.ErrInvalidLayout)

	a, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	b, err := matrix.NewDense(2, 1)
	require.NoError(t, err)

	_, err = network.FromWeights([]*matrix.Dense{a, b})
	require.ErrorIs(t, err, network.ErrInvalidLayout)

	_, err = network.FromWeights([]*matrix.Dense{a, nil})
	require.ErrorIs(t, err, network.ErrInvalidLayout)
}

func TestClone(t *testing.T) {
	n := fixture232(t)
	_, err := n.Train(xorInputs(t), xorTargets2(t), 0.3)
	require.NoError(t, err)

	c := n.Clone()
	require.Nil(t, c.Activations())
	require.NoError(t, c.SetWeights(2, []float64{0, 0, 0, 0, 0, 0}))

	orig, err := n.Weights(2)
	require.NoError(t, err)
	require.NotEqual(t, make([]float64, 6), orig.RawData())
}

func TestActivationFunctions(t *testing.T) {
	require.Equal(t, 0.5, network.Sigmoid(0))
	require.InDelta(t, 0.7310585786, network.Sigmoid(1), 1e-9)
	require.Equal(t, 0.25, network.SigmoidDerivative(0.5, 123))
	require.Equal(t, 0.25, network.Cost(0.5, 1))
	require.Equal(t, 1.0, network.CostDerivative(0.5, 1))
	require.Equal(t, -1.0, network.CostDerivative(0.5, 0))
}
