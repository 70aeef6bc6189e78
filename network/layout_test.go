// SPDX-License-Identifier: MIT

package network_test

import (
	"testing"

	"github.com/katalvlaran/lvnet/network"
	"github.com/stretchr/testify/require"
)

func TestParseLayout(t *testing.T) {
	tests := []struct {
		in   string
		want []int
	}{
		{"2, 3, 1", []int{2, 3, 1}},
		{"2,3,1", []int{2, 3, 1}},
		{" 4 ,\t8, 8 , 2 ", []int{4, 8, 8, 2}},
		{"1,1", []int{1, 1}},
	}
	for _, tc := range tests {
		got, err := network.ParseLayout(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseLayout_Invalid(t *testing.T) {
	for _, in := range []string{"", "3", "2,,1", "2, x, 1", "2, 0, 1", "2, -3", "2.5, 1", "2, 3,"} {
		_, err := network.ParseLayout(in)
		require.ErrorIs(t, err, network.ErrInvalidLayout, "input %q", in)
	}
}

func TestFormatLayout(t *testing.T) {
	require.Equal(t, "2, 3, 1", network.FormatLayout([]int{2, 3, 1}))

	parsed, err := network.ParseLayout(network.FormatLayout([]int{5, 4, 3, 2}))
	require.NoError(t, err)
	require.Equal(t, []int{5, 4, 3, 2}, parsed)
}
