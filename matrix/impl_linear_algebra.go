// SPDX-License-Identifier: MIT
// Package matrix provides the product kernels of the engine: the dot product
// (optionally followed by an element-wise transform) and transpose. All
// functions perform strict fail-fast validation and return clear errors on
// dimension mismatches.
//
// Purpose:
//   - Implement the canonical product kernels used by the network forward pass.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Public facades live in api.go; kernels here are the single implementation.
//   - All kernels use central validators and wrap via matrixErrorf.

package matrix

import "fmt"

// ZeroSum is the initial accumulator value for dot products and reductions.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opDot       = "DotProduct"
	opDotApply  = "DotProductThenApply"
	opTranspose = "Transpose"
	opCombine   = "CombineWithTransforms"
	opUpdate    = "UpdateEachElement"
	opAverage   = "AverageOfPairwiseFunction"
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// dotProduct computes out[i,j] = f(Σ_k a[i,k]·b[k,j]) into a fresh Dense.
// MAIN DESCRIPTION:
//   - Shared kernel for DotProduct (f == nil) and DotProductThenApply.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); allocate Dense(a.Rows, b.Cols).
//   - Stage 2: fast path if both are *Dense (flat offsets); otherwise At-based
//     fallback with the same i→j→k order.
//   - Stage 3: apply f to each finished cell before storing it.
//
// Behavior highlights:
//   - Every cell sums k = 0..K-1 in ascending order starting from ZeroSum, in
//     both paths, so results are bit-identical across paths and runs.
//   - No zero-skipping: 0·Inf yields NaN exactly as IEEE-754 prescribes.
//   - Operands are never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from ValidateMulCompatible).
//
// Complexity:
//   - Time O(r·K·c), Space O(r·c) for the result.
func dotProduct(a, b Matrix, f UnaryFunc, opTag string) (*Dense, error) {
	// Validate inputs via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Allocate result Dense
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	var (
		i, j, k int // loop iterators
		total   float64
	)

	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for j = 0; j < bCols; j++ {
					total = ZeroSum
					for k = 0; k < aCols; k++ {
						total += da.data[rowOffsetA+k] * db.data[k*bCols+j]
					}
					if f != nil {
						total = f(total)
					}
					res.data[rowOffsetR+j] = total
				}
			}
			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	var av, bv float64
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			total = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opTag, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opTag, err)
				}
				total += av * bv // accumulate product
			}
			if f != nil {
				total = f(total)
			}
			res.data[i*bCols+j] = total
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Input is validated non-nil; the original matrix is never mutated.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(cols, rows).
//   - Stage 2: If m is *Dense, use flat indexing; else generic i→j loop.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	r, c := m.Rows(), m.Cols()
	res, err := NewDense(c, r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if d, ok := m.(*Dense); ok {
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				res.data[j*r+i] = d.data[i*c+j]
			}
		}
		return res, nil
	}

	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*r+i] = v
		}
	}

	return res, nil
}
