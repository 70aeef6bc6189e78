// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* element-wise kernels (ew*) behind the public
//     facades in api.go: fused combine, in-place update, pairwise average.
//   - Keep all loops deterministic and cache-friendly with Dense fast-paths.
//
// Design:
//   - All ew* are UNEXPORTED (internal micro-kernels).
//   - Facades validate nil functions; kernels validate matrices.
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1 on Dense, i→j in the fallback, which is
//     the same visiting order for row-major storage).
//   - No hidden allocations beyond the output Dense.

package matrix

// ewCombine computes out[i,j] = fa(a[i,j], b[i,j]) * fb(a[i,j], b[i,j]).
// Time: O(r*c). Space: O(r*c).
//
// The backward pass uses it to fuse the cost derivative and the activation
// derivative into one sweep.
func ewCombine(a, b Matrix, fa, fb BinaryFunc) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, err
	}
	r, c := a.Rows(), a.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}

	// Dense fast-path: single pass over the flat row-major buffers.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var av, bv float64
			for i := range out.data {
				av, bv = da.data[i], db.data[i]
				out.data[i] = fa(av, bv) * fb(av, bv)
			}
			return out, nil
		}
	}

	// Generic fallback via At (still deterministic).
	var av, bv float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, err
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*c+j] = fa(av, bv) * fb(av, bv)
		}
	}

	return out, nil
}

// ewUpdate replaces every element of m with f(element), in place.
// Time: O(r*c). Space: O(1).
func ewUpdate(m Matrix, f UnaryFunc) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	// Dense fast-path.
	if d, ok := m.(*Dense); ok {
		for i, v := range d.data {
			d.data[i] = f(v)
		}
		return nil
	}

	// Generic fallback.
	r, c := m.Rows(), m.Cols()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return err
			}
			if err = m.Set(i, j, f(v)); err != nil {
				return err
			}
		}
	}

	return nil
}

// ewAveragePairwise returns (1/(r*c)) · Σ f(a[i,j], b[i,j]).
// Time: O(r*c). Space: O(1).
//
// The sum runs over the flat index in ascending order and is divided once at
// the end, so the result matches a naive sequential reference bit-for-bit.
func ewAveragePairwise(a, b Matrix, f BinaryFunc) (float64, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return 0, err
	}
	r, c := a.Rows(), a.Cols()
	total := ZeroSum

	// Dense fast-path.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for i := range da.data {
				total += f(da.data[i], db.data[i])
			}
			return total / float64(r*c), nil
		}
	}

	// Generic fallback.
	var av, bv float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return 0, err
			}
			if bv, err = b.At(i, j); err != nil {
				return 0, err
			}
			total += f(av, bv)
		}
	}

	return total / float64(r*c), nil
}
