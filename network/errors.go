// SPDX-License-Identifier: MIT

package network

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvnet/matrix"
)

// Sentinel errors. Every message is prefixed with "network: ...".
var (
	// ErrInvalidLayout indicates a malformed layout descriptor, fewer than two
	// layers, a non-positive node count, or weight matrices that do not chain.
	ErrInvalidLayout = errors.New("network: invalid layout")

	// ErrLayerIndex indicates a layer index outside the valid range.
	ErrLayerIndex = errors.New("network: layer index out of range")

	// ErrInputShape indicates that inputs do not have numberOfInputs columns.
	// It wraps matrix.ErrDimensionMismatch.
	ErrInputShape = fmt.Errorf("network: input shape: %w", matrix.ErrDimensionMismatch)

	// ErrTargetShape indicates that targets do not match the example count or
	// the output layer width. It wraps matrix.ErrDimensionMismatch.
	ErrTargetShape = fmt.Errorf("network: target shape: %w", matrix.ErrDimensionMismatch)

	// ErrNilRand indicates that RandomizeWeights was given a nil source.
	ErrNilRand = errors.New("network: nil random source")

	// ErrInvalidRange indicates min > max or a non-finite bound.
	ErrInvalidRange = errors.New("network: invalid weight range")
)

// networkErrorf tags err with the failing operation, keeping errors.Is intact.
func networkErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
