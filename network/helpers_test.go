// SPDX-License-Identifier: MIT

package network_test

import (
	"testing"

	"github.com/katalvlaran/lvnet/matrix"
	"github.com/katalvlaran/lvnet/network"
	"github.com/stretchr/testify/require"
)

// xorInputs is the four-example XOR input batch.
func xorInputs(t testing.TB) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(4, 2, []float64{
		0, 0,
		0, 1,
		1, 0,
		1, 1,
	})
	require.NoError(t, err)

	return m
}

// fixture231 is the 2-3-1 network with hand-picked weights.
func fixture231(t testing.TB) *network.Network {
	t.Helper()
	n, err := network.NewFromLayout("2, 3, 1")
	require.NoError(t, err)
	require.NoError(t, n.SetWeights(1, []float64{-2, 0, 2, -1, 1, -2}))
	require.NoError(t, n.SetWeights(2, []float64{-1, 0, 1}))

	return n
}

// fixture232 shares layer 1 with fixture231 and has two outputs.
func fixture232(t testing.TB) *network.Network {
	t.Helper()
	n, err := network.NewFromLayout("2, 3, 2")
	require.NoError(t, err)
	require.NoError(t, n.SetWeights(1, []float64{-2, 0, 2, -1, 1, -2}))
	require.NoError(t, n.SetWeights(2, []float64{-1, 2, 0, -2, 1, -1}))

	return n
}

// requireBetween asserts lo < v < hi.
func requireBetween(t *testing.T, lo, hi, v float64, msgAndArgs ...interface{}) {
	t.Helper()
	require.Greater(t, v, lo, msgAndArgs...)
	require.Less(t, v, hi, msgAndArgs...)
}

func mustAt(t *testing.T, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}
