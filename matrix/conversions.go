// SPDX-License-Identifier: MIT

// Package matrix provides converters between Dense and gonum's mat.Dense,
// so weights and activations can be handed to gonum routines (and back)
// without hand-copying.
package matrix

import (
	"gonum.org/v1/gonum/mat"
)

// ToGonum returns a gonum *mat.Dense holding a copy of m.
// The result does not alias m's storage.
//
// Errors: ErrNilMatrix.
// Time Complexity: O(r*c)
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	// Dense fast-path: hand gonum a private copy of the flat buffer.
	if d, ok := m.(*Dense); ok {
		return mat.NewDense(d.r, d.c, d.RawData()), nil
	}

	r, c := m.Rows(), m.Cols()
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opToGonum, err)
			}
			out.Set(i, j, v)
		}
	}

	return out, nil
}

// FromGonum copies any gonum mat.Matrix into a new *Dense.
// gonum allows empty matrices; Dense does not, so a zero dimension is
// reported as ErrInvalidDimensions.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions.
// Time Complexity: O(r*c)
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := g.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	for i := 0; i < r; i++ {
		base := i * c
		for j := 0; j < c; j++ {
			out.data[base+j] = g.At(i, j)
		}
	}

	return out, nil
}
