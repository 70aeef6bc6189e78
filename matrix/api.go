// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for the engine operations.
//   - Avoid logic duplication: each facade delegates to the canonical kernel.
//   - Keep function names explicit and intention-revealing.
//
// Determinism & Policy:
//   - Facades never change the loop orders of underlying kernels.
//   - Facades check function arguments (ErrNilFunc); kernels check matrices.

package matrix

// ---------- Constructors & Utilities ----------

// ZerosLike returns a zero matrix with the same shape as m.
// Complexity: O(r*c).
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense(m.Rows(), m.Cols())
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// Thin wrapper over Matrix.Clone for API discoverability.
// Complexity: O(r*c) copy for dense; implementation-defined otherwise.
func CloneMatrix(m Matrix) Matrix {
	if m == nil {
		return nil
	}

	return m.Clone()
}

// CopyDense returns an independent *Dense copy of any Matrix.
// *Dense inputs take the flat-copy fast path; other implementations are read
// through At in row-major order.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrOutOfRange (from a faulty At).
// Complexity: O(r*c).
func CopyDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		return d.CloneDense(), nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// ---------- Products ----------

// DotProduct returns a·b, an a.Rows()×b.Cols() matrix with
// out[i,j] = Σ_k a[i,k]·b[k,j].
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (a.Cols() != b.Rows()).
// Complexity: O(r·K·c).
func DotProduct(a, b Matrix) (*Dense, error) {
	return dotProduct(a, b, nil, opDot)
}

// DotProductThenApply returns a·b with f applied to every finished cell.
// A nil f behaves exactly like DotProduct.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r·K·c).
func DotProductThenApply(a, b Matrix, f UnaryFunc) (*Dense, error) {
	return dotProduct(a, b, f, opDotApply)
}

// ---------- Element-wise ----------

// CombineWithTransforms returns out[i] = fa(a[i], b[i]) · fb(a[i], b[i]) for
// every position i of two same-shaped matrices.
//
// This is a fused multiply of two transforms, not a generic combinator: both
// transforms see the same pair and their results are multiplied.
//
// Errors: ErrNilFunc, ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func CombineWithTransforms(a, b Matrix, fa, fb BinaryFunc) (*Dense, error) {
	if fa == nil || fb == nil {
		return nil, matrixErrorf(opCombine, ErrNilFunc)
	}
	out, err := ewCombine(a, b, fa, fb)
	if err != nil {
		return nil, matrixErrorf(opCombine, err)
	}

	return out, nil
}

// UpdateEachElement replaces every element of m with f(element), in place.
//
// Errors: ErrNilFunc, ErrNilMatrix.
// Complexity: O(r*c).
func UpdateEachElement(m Matrix, f UnaryFunc) error {
	if f == nil {
		return matrixErrorf(opUpdate, ErrNilFunc)
	}
	if err := ewUpdate(m, f); err != nil {
		return matrixErrorf(opUpdate, err)
	}

	return nil
}

// ---------- Reductions ----------

// AverageOfPairwiseFunction returns (1/(rows·cols)) · Σ f(a[i], b[i]) over all
// positions of two same-shaped matrices.
//
// Example: a = {0,1,2,3}, b = {4,5,6,7} (2×2), f = a+b gives 7.
//
// Errors: ErrNilFunc, ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func AverageOfPairwiseFunction(a, b Matrix, f BinaryFunc) (float64, error) {
	if f == nil {
		return 0, matrixErrorf(opAverage, ErrNilFunc)
	}
	avg, err := ewAveragePairwise(a, b, f)
	if err != nil {
		return 0, matrixErrorf(opAverage, err)
	}

	return avg, nil
}
