// SPDX-License-Identifier: MIT

// Package matrix is the dense linear-algebra engine behind lvnet.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 container with bounds-checked At/Set.
//   - DotProduct and DotProductThenApply for layer forward passes.
//   - CombineWithTransforms, which fuses two element-wise transforms into a
//     single product (used for the output-layer delta of backpropagation).
//   - UpdateEachElement for in-place maps and AverageOfPairwiseFunction for
//     scalar reductions such as mean squared error.
//   - ToGonum / FromGonum converters for interop with gonum.org/v1/gonum/mat.
//
// All kernels validate shapes up front and return sentinel errors (see
// errors.go); none of them panic on user input. Loop orders are fixed, so the
// same inputs always produce bit-identical outputs.
//
// Values follow IEEE-754 semantics: NaN and ±Inf are stored and propagated
// like any other float64.
package matrix
