// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by Dense and the engine kernels.
// Errors live in errors.go, shape checks in validators.go.
package matrix

// UnaryFunc maps a single element to a new value (e.g. an activation function).
// A nil UnaryFunc passed to DotProductThenApply means identity.
type UnaryFunc func(v float64) float64

// BinaryFunc maps a pair of aligned elements, one from each operand, to a value.
// Used by CombineWithTransforms and AverageOfPairwiseFunction. Implementations
// are free to ignore either argument.
type BinaryFunc func(a, b float64) float64

// Matrix represents a two-dimensional mutable array of float64 values.
// Kernels accept this interface; *Dense unlocks flat-slice fast paths.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
